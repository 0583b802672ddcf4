package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pfrenyo/legendary-replace-tool/embedded"
	"github.com/pfrenyo/legendary-replace-tool/internal/config"
	"github.com/pfrenyo/legendary-replace-tool/internal/log"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write the bundled sample template and tag map to disk",
	Long: `Materializes the embedded sample template and sample tag map so the
default --source and --tags paths work out of the box. Without an argument
the samples are written next to the lrt binary; pass a directory to write
them somewhere else.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		baseDir := config.ExecDir()
		if len(args) == 1 {
			baseDir = args[0]
		}

		tagPath := filepath.Join(baseDir, filepath.FromSlash(config.TagFileRel))
		if err := writeSample(tagPath, embedded.SampleTags, 0o644, force); err != nil {
			return err
		}

		templateDir := filepath.Join(baseDir, filepath.FromSlash(config.SourceDirRel))
		if err := extractTemplate(templateDir, force); err != nil {
			return err
		}

		log.Success("Sample files written")
		log.Infof("Tag map:   %s", tagPath)
		log.Infof("Template:  %s", templateDir)
		log.Dim("Edit the tag values, then run 'lrt' to generate.")
		return nil
	},
}

func init() {
	initCmd.Flags().BoolP("force", "f", false, "Overwrite existing sample files")
}

// extractTemplate writes the embedded sample template tree under dir.
func extractTemplate(dir string, force bool) error {
	return fs.WalkDir(embedded.Templates, embedded.TemplateRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel := strings.TrimPrefix(path, embedded.TemplateRoot)
		rel = strings.TrimPrefix(rel, "/")
		target := filepath.Join(dir, filepath.FromSlash(rel))

		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}

		data, err := fs.ReadFile(embedded.Templates, path)
		if err != nil {
			return fmt.Errorf("reading embedded %s: %w", path, err)
		}
		return writeSample(target, data, 0o644, force)
	})
}

// writeSample writes one sample file, refusing to clobber existing files
// unless force is set.
func writeSample(path string, data []byte, mode os.FileMode, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			log.Dim(fmt.Sprintf("Exists, skipping: %s (use --force to overwrite)", path))
			return nil
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, mode); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
