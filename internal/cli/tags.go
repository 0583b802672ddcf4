package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pfrenyo/legendary-replace-tool/internal/config"
	"github.com/pfrenyo/legendary-replace-tool/internal/log"
	"github.com/pfrenyo/legendary-replace-tool/internal/tagmap"
)

var tagsCmd = &cobra.Command{
	Use:   "tags [path]",
	Short: "Validate a tag map and show its substitution order",
	Long: `Loads a tag map file, checks that it is a flat string-to-string JSON
object, and prints the tags in the order they will be applied. Tags sharing
a value are flagged: they make --reverse lossy.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.DefaultTags()
		if len(args) == 1 {
			path = args[0]
		}
		reverse, _ := cmd.Flags().GetBool("reverse")

		tags, err := tagmap.Load(path)
		if err != nil {
			return err
		}

		direction := tagmap.Forward
		if reverse {
			direction = tagmap.Reverse
		}
		rules := tagmap.NewRuleset(tags, direction)

		log.Bold(fmt.Sprintf("Tag map: %s", path))
		log.Dim(fmt.Sprintf("%d tag(s), %s substitution order (longest first)", len(rules.Keys), direction))
		log.Newline()

		// Align on the longest tag name.
		maxName := 0
		for _, key := range rules.Keys {
			if len(key) > maxName {
				maxName = len(key)
			}
		}

		for _, key := range rules.Keys {
			name := log.Style.Cyan(fmt.Sprintf("  %-*s", maxName+2, key))
			log.Raw(name + " -> " + tags[key])
		}

		dupes := tags.DuplicateValues()
		if len(dupes) > 0 {
			log.Newline()
			for value, keys := range dupes {
				log.Warnf("Tags %s share the value %q; --reverse cannot tell them apart",
					strings.Join(keys, ", "), value)
			}
		} else {
			log.Newline()
			log.Success("All values unique: safe for --reverse")
		}

		return nil
	},
}

func init() {
	tagsCmd.Flags().Bool("reverse", false, "Show the reverse-mode order (sorted by value length)")
}
