// Package scaffold wires the pipeline together: load the tag map, compute
// the substitution order, clone the template skeleton, rewrite file contents.
package scaffold

import (
	"fmt"
	"strings"

	"github.com/pfrenyo/legendary-replace-tool/internal/clone"
	"github.com/pfrenyo/legendary-replace-tool/internal/ignore"
	"github.com/pfrenyo/legendary-replace-tool/internal/log"
	"github.com/pfrenyo/legendary-replace-tool/internal/paths"
	"github.com/pfrenyo/legendary-replace-tool/internal/rewrite"
	"github.com/pfrenyo/legendary-replace-tool/internal/tagmap"
)

// Options configures a single run. Source, Out, and TagFile are paths as
// given by the user; they are validated and resolved here.
type Options struct {
	Source    string
	Out       string
	TagFile   string
	Direction tagmap.Direction
	Ignore    ignore.Matcher

	// Tags, when non-nil, is used instead of loading TagFile. The
	// interactive flow loads and edits the map before running.
	Tags tagmap.TagMap
}

// Result aggregates what a run did.
type Result struct {
	Cloned  bool // false when source and out are the same tree
	Clone   clone.Stats
	Rewrite *rewrite.Report
}

// Run executes the full pipeline.
//
// The tag map is loaded and validated before anything touches the
// filesystem, so a bad tag resource can never leave a partial output tree
// behind. When source and out resolve to the same location the clone step is
// skipped entirely and the existing tree is rewritten in place. Cloning and
// rewriting errors propagate; only binary-file skips are recovered (recorded
// in the result's rewrite report).
func Run(opts Options) (*Result, error) {
	if opts.Ignore == nil {
		opts.Ignore = ignore.Default()
	}

	tags := opts.Tags
	if tags == nil {
		var err error
		tags, err = tagmap.Load(opts.TagFile)
		if err != nil {
			return nil, err
		}
	}

	if opts.Direction == tagmap.Reverse {
		warnDuplicateValues(tags)
	}

	rules := tagmap.NewRuleset(tags, opts.Direction)

	src, err := paths.ValidateSourceDir(opts.Source)
	if err != nil {
		return nil, err
	}
	out, err := paths.ValidateOutDir(opts.Out)
	if err != nil {
		return nil, err
	}

	result := &Result{}

	if paths.Same(src, out) {
		log.Debugf("Source and output are the same tree, skipping clone: %s", out)
	} else {
		log.Debugf("Cloning %s -> %s", src, out)
		stats, err := clone.Tree(src, out, rules, opts.Ignore)
		if err != nil {
			return nil, fmt.Errorf("cloning template: %w", err)
		}
		result.Cloned = true
		result.Clone = stats
	}

	log.Debugf("Rewriting contents under %s (%s)", out, rules.Direction)
	report, err := rewrite.Tree(out, rules, opts.Ignore)
	if err != nil {
		return nil, fmt.Errorf("rewriting contents: %w", err)
	}
	result.Rewrite = report

	return result, nil
}

// warnDuplicateValues flags tags that share a value. A template
// reconstructed from such a map needs manual revision, because every
// occurrence of the shared value maps back to a single arbitrary tag.
func warnDuplicateValues(tags tagmap.TagMap) {
	for value, keys := range tags.DuplicateValues() {
		log.Warnf("Tags %s share the value %q; the reversed template will need manual revision",
			strings.Join(keys, ", "), value)
	}
}
