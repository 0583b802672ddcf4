// Package clone copies a template tree to a destination, substituting tags
// in directory and file names as it goes. Contents are copied byte-for-byte;
// tag substitution inside files is the rewriter's job, afterwards.
package clone

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pfrenyo/legendary-replace-tool/internal/ignore"
	"github.com/pfrenyo/legendary-replace-tool/internal/log"
	"github.com/pfrenyo/legendary-replace-tool/internal/paths"
	"github.com/pfrenyo/legendary-replace-tool/internal/tagmap"
)

// Stats summarizes what a clone pass did.
type Stats struct {
	DirsCreated int
	FilesCopied int
	BytesCopied int64
}

// Tree recursively clones src into dest.
//
// Every entry name under src has tag substitution applied (forward direction,
// regardless of the ruleset's mode) before it is created under dest. Source
// file permission bits are copied onto each destination file. Entries matched
// by skip are not cloned; skipped directories are not descended into.
//
// Re-running into an existing destination overwrites files but never deletes
// destination entries absent from the source. A destination file that turns
// out to be the source file itself is silently left alone; any other
// filesystem error aborts the clone.
func Tree(src, dest string, rules *tagmap.Ruleset, skip ignore.Matcher) (Stats, error) {
	var stats Stats
	if err := cloneDir(src, dest, rules, skip, &stats); err != nil {
		return stats, err
	}
	return stats, nil
}

func cloneDir(src, dest string, rules *tagmap.Ruleset, skip ignore.Matcher, stats *Stats) error {
	if _, err := os.Stat(dest); os.IsNotExist(err) {
		stats.DirsCreated++
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dest, err)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}

	for _, entry := range entries {
		if skip(entry.Name()) {
			log.Debugf("Ignoring %s", filepath.Join(src, entry.Name()))
			continue
		}

		name := paths.NormalizeSegment(rules.ApplyName(entry.Name()))
		srcPath := filepath.Join(src, entry.Name())
		destPath := filepath.Join(dest, name)

		switch {
		case entry.IsDir():
			if err := cloneDir(srcPath, destPath, rules, skip, stats); err != nil {
				return err
			}
		case entry.Type().IsRegular():
			if err := copyFile(srcPath, destPath, stats); err != nil {
				return err
			}
		default:
			// Sockets, devices, symlinks: a template has no business
			// containing them, and following a symlink out of the template
			// tree would copy arbitrary files.
			log.Warnf("Skipping non-regular file: %s", srcPath)
		}
	}

	return nil
}

// copyFile copies src to dest and applies src's permission bits to dest.
// The copy-to-self case is detected up front and silently skipped.
func copyFile(src, dest string, stats *Stats) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}
	if destInfo, err := os.Stat(dest); err == nil && os.SameFile(srcInfo, destInfo) {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dest, err)
	}

	n, err := io.Copy(out, in)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("copying %s: %w", dest, err)
	}

	// Same permission bits as the source, mainly useful for executables.
	if err := os.Chmod(dest, srcInfo.Mode().Perm()); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", dest, err)
	}

	stats.FilesCopied++
	stats.BytesCopied += n
	return nil
}
