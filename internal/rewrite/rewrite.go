// Package rewrite walks an output tree and substitutes tags inside every
// text file, in precedence order, forward or reverse. Files that do not
// decode as text are left untouched and reported, never fatal.
package rewrite

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/pfrenyo/legendary-replace-tool/internal/ignore"
	"github.com/pfrenyo/legendary-replace-tool/internal/log"
	"github.com/pfrenyo/legendary-replace-tool/internal/tagmap"
)

// Report aggregates what a rewrite pass did. Skipped files are collected so
// the caller can print them all at the end of a run instead of losing the
// notices in the middle of the walk.
type Report struct {
	Rewritten    int
	Unchanged    int
	Skipped      []string // binary files left as-is
	BytesWritten int64
}

// Tree rewrites every text file under root in place.
//
// Entries matched by skip are not visited; skipped directories are not
// descended into. Each file is opened, fully read or written, and closed
// before the walk moves on. Binary content (invalid UTF-8) is recorded in
// the report with a per-file notice; filesystem errors abort the walk.
func Tree(root string, rules *tagmap.Ruleset, skip ignore.Matcher) (*Report, error) {
	report := &Report{}
	if err := rewriteDir(root, rules, skip, report); err != nil {
		return report, err
	}
	return report, nil
}

func rewriteDir(dir string, rules *tagmap.Ruleset, skip ignore.Matcher, report *Report) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", dir, err)
	}

	for _, entry := range entries {
		if skip(entry.Name()) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if err := rewriteDir(path, rules, skip, report); err != nil {
				return err
			}
			continue
		}
		if !entry.Type().IsRegular() {
			continue
		}
		if err := rewriteFile(path, rules, report); err != nil {
			return err
		}
	}

	return nil
}

// rewriteFile substitutes tags in a single file, overwriting it in place.
// The file's own permission bits are preserved by writing through the
// existing inode's mode.
func rewriteFile(path string, rules *tagmap.Ruleset, report *Report) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	if !utf8.Valid(data) {
		log.Warnf("Could not apply tag substitution to binary file: %s", path)
		report.Skipped = append(report.Skipped, path)
		return nil
	}

	replaced := rules.Apply(string(data))
	if replaced == string(data) {
		report.Unchanged++
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(replaced), info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	report.Rewritten++
	report.BytesWritten += int64(len(replaced))
	return nil
}
