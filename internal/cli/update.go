package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pfrenyo/legendary-replace-tool/internal/log"
	"github.com/pfrenyo/legendary-replace-tool/internal/upgrade"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update lrt to the latest version",
	Long:  "Checks GitHub releases for a newer version and optionally applies the update.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		force, _ := cmd.Flags().GetBool("force")

		log.Debugf("Current build: %s", upgrade.VersionString(Version, Commit, Date))
		log.Dim("Checking for updates...")

		info, err := upgrade.CheckUpdate(ctx, Version)
		if err != nil {
			return fmt.Errorf("failed to check for updates: %w", err)
		}

		if info == nil {
			log.Success("Already up to date (v" + Version + ")")
			return nil
		}

		log.Infof("New version available: %s -> %s", Version, info.Version)

		if !force {
			log.Info("Run with --force to apply the update automatically.")
			return nil
		}

		log.Dim("Downloading and applying update...")
		if err := upgrade.PerformUpdate(ctx, info); err != nil {
			return fmt.Errorf("update failed: %w", err)
		}

		log.Success("Updated to v" + info.Version)
		return nil
	},
}

func init() {
	updateCmd.Flags().Bool("force", false, "Apply update without confirmation")
}
