package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/docker/go-units"
	"github.com/spf13/cobra"

	"github.com/pfrenyo/legendary-replace-tool/internal/config"
	"github.com/pfrenyo/legendary-replace-tool/internal/ignore"
	"github.com/pfrenyo/legendary-replace-tool/internal/interactive"
	"github.com/pfrenyo/legendary-replace-tool/internal/log"
	"github.com/pfrenyo/legendary-replace-tool/internal/scaffold"
	"github.com/pfrenyo/legendary-replace-tool/internal/tagmap"
)

// runGenerate is the default action when no subcommand is given.
// It merges config files and flags, then runs the scaffold pipeline.
func runGenerate(cmd *cobra.Command, args []string) error {
	f := cmd.Flags()

	// Apply quiet mode before anything else
	if quiet, _ := f.GetBool("quiet"); quiet {
		log.EnableQuietMode()
	} else if verbose, _ := f.GetBool("verbose"); verbose {
		log.SetLevel(log.LevelDebug)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("cannot determine working directory: %w", err)
	}
	cfg := config.Load(workDir)

	// Config-file behavior settings apply only when the flag was not given.
	if !f.Changed("quiet") && cfg.Quiet != nil && *cfg.Quiet {
		log.EnableQuietMode()
	}
	if !f.Changed("verbose") && cfg.Verbose != nil && *cfg.Verbose && !log.IsQuiet() {
		log.SetLevel(log.LevelDebug)
	}

	flagOut, _ := f.GetString("out")
	flagTags, _ := f.GetString("tags")
	flagSource, _ := f.GetString("source")
	reverse, _ := f.GetBool("reverse")
	interactiveMode, _ := f.GetBool("interactive")
	extraIgnore, _ := f.GetStringArray("ignore")

	out := firstNonEmpty(flagOut, cfg.Out, config.DefaultOut())
	tagFile := firstNonEmpty(flagTags, cfg.Tags, config.DefaultTags())
	source := firstNonEmpty(flagSource, cfg.Source, config.DefaultSource())

	direction := tagmap.Forward
	if reverse {
		direction = tagmap.Reverse
	}

	opts := scaffold.Options{
		Source:    source,
		Out:       out,
		TagFile:   tagFile,
		Direction: direction,
		Ignore:    ignore.Default(append(cfg.Ignore, extraIgnore...)...),
	}

	if interactiveMode {
		tags, err := tagmap.Load(tagFile)
		if err != nil {
			return err
		}
		edited, err := interactive.ReviewTags(tags, direction)
		if err != nil {
			if errors.Is(err, interactive.ErrAborted) {
				log.Warn("Aborted, nothing generated")
				return nil
			}
			return err
		}
		opts.Tags = edited
	}

	log.Infof("Template:  %s", source)
	log.Infof("Tag map:   %s", tagFile)
	log.Infof("Output:    %s  (%s mode)", out, direction)

	result, err := scaffold.Run(opts)
	if err != nil {
		return err
	}

	printSummary(result, out)
	return nil
}

// printSummary reports what the run did, including every binary file that
// was skipped, aggregated at the end instead of scattered through the walk.
func printSummary(result *scaffold.Result, out string) {
	log.Newline()

	if result.Cloned {
		log.Infof("Copied %d file(s) across %d new dir(s), %s",
			result.Clone.FilesCopied,
			result.Clone.DirsCreated,
			units.HumanSize(float64(result.Clone.BytesCopied)))
	} else {
		log.Info("Source and output are the same tree; rewrote it in place")
	}

	log.Infof("Rewrote %d file(s), %d already clean",
		result.Rewrite.Rewritten, result.Rewrite.Unchanged)

	if n := len(result.Rewrite.Skipped); n > 0 {
		log.Warnf("Skipped %d binary file(s):", n)
		for _, path := range result.Rewrite.Skipped {
			log.Warn("  " + path)
		}
	}

	log.Success("Done: " + out)
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
