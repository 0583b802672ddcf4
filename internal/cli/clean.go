package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pfrenyo/legendary-replace-tool/internal/config"
	"github.com/pfrenyo/legendary-replace-tool/internal/log"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the default generated output directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")

		out := config.DefaultOut()
		info, err := os.Stat(out)
		if os.IsNotExist(err) {
			log.Info("Nothing to clean: " + out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("cannot access %s: %w", out, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("refusing to remove non-directory: %s", out)
		}

		if !yes {
			log.Yellow("This will remove the generated output directory:")
			log.Info("  " + out)
			log.Info("Re-run with --yes to confirm.")
			return nil
		}

		if err := os.RemoveAll(out); err != nil {
			return fmt.Errorf("removing %s: %w", out, err)
		}

		log.Success("Removed " + out)
		return nil
	},
}

func init() {
	cleanCmd.Flags().BoolP("yes", "y", false, "Remove without confirmation")
}
