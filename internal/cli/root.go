// Package cli defines the lrt command-line interface using cobra.
//
// The root command IS the generate command -- running "lrt" clones the
// template source into the output directory and substitutes tags in names
// and contents. Subcommands (tags, init, clean, update) are registered
// separately.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/pfrenyo/legendary-replace-tool/internal/log"
)

// Version, Commit, and Date are set via ldflags at build time.
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

var rootCmd = &cobra.Command{
	Use:   "lrt",
	Short: "Generate a project from a template by replacing tags",
	Long: `lrt stamps out a concrete project from a template directory: every tag
from the tag map is replaced in file contents and in file and directory
names, longest tag first. With --reverse it reconstructs a template from a
finished project instead (contents only; names are never reversed).

Tag maps are flat JSON objects: {"PROJECTNAME": "Acme", "AUTHOR": "Jo"}.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("lrt v{{.Version}}\n")
	rootCmd.SetGlobalNormalizationFunc(normalizeFlagName)

	// --- Persistent flags (available to all subcommands) ---
	pf := rootCmd.PersistentFlags()
	pf.BoolP("quiet", "q", false, "Suppress all output (exit code only)")
	pf.BoolP("verbose", "v", false, "Show per-entry actions while processing")

	// --- Local flags (root/generate command only) ---
	f := rootCmd.Flags()
	f.StringP("out", "o", "", "Output directory (default: GENERATED_OUTPUT next to the binary)")
	f.StringP("tags", "t", "", "Tag map JSON file (default: bundled sample, see 'lrt init')")
	f.StringP("source", "s", "", "Template source directory (default: bundled sample template)")
	f.Bool("reverse", false, "Rebuild a template from a finished project (contents only)")
	f.BoolP("interactive", "i", false, "Review and edit tag values before generating")
	f.StringArray("ignore", nil, "Extra entry names to skip (repeatable)")

	// --- Subcommands ---
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(updateCmd)
}

// normalizeFlagName maps the historic --REVERSE spelling onto --reverse so
// invocations written for the original tool keep working.
func normalizeFlagName(f *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "REVERSE" {
		name = "reverse"
	}
	return pflag.NormalizedName(name)
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
