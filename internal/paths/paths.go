// Package paths provides path validation and normalization for lrt.
//
// Substituted names come straight out of user-supplied tag values, so the
// output side normalizes and sanity-checks them before anything touches the
// filesystem.
package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// PathError represents a path validation or access error.
type PathError struct {
	Message string
}

func (e *PathError) Error() string {
	return e.Message
}

// --- Path validation ---

// ValidateSourceDir validates and resolves a template source directory.
// Returns the resolved absolute path or an error if the path is invalid.
func ValidateSourceDir(path string) (string, error) {
	src, err := filepath.Abs(path)
	if err != nil {
		return "", &PathError{Message: fmt.Sprintf("Cannot resolve path: %s", path)}
	}

	info, err := os.Stat(src)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", &PathError{Message: fmt.Sprintf("Template source does not exist: %s", src)}
		}
		return "", &PathError{Message: fmt.Sprintf("Cannot access path: %s: %v", src, err)}
	}

	if !info.IsDir() {
		return "", &PathError{Message: fmt.Sprintf("Template source must be a directory: %s", src)}
	}

	return src, nil
}

// ValidateTagFile validates and resolves a tag map file path.
func ValidateTagFile(path string) (string, error) {
	tagPath, err := filepath.Abs(path)
	if err != nil {
		return "", &PathError{Message: fmt.Sprintf("Cannot resolve path: %s", path)}
	}

	info, err := os.Stat(tagPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", &PathError{Message: fmt.Sprintf("Tag map file does not exist: %s", tagPath)}
		}
		return "", &PathError{Message: fmt.Sprintf("Cannot access path: %s: %v", tagPath, err)}
	}

	if info.IsDir() {
		return "", &PathError{Message: fmt.Sprintf("Tag map path is not a file: %s", tagPath)}
	}

	return tagPath, nil
}

// ValidateOutDir resolves an output directory path. The directory does not
// have to exist yet, but an existing non-directory is rejected.
func ValidateOutDir(path string) (string, error) {
	out, err := filepath.Abs(path)
	if err != nil {
		return "", &PathError{Message: fmt.Sprintf("Cannot resolve path: %s", path)}
	}

	info, err := os.Stat(out)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return out, nil
		}
		return "", &PathError{Message: fmt.Sprintf("Cannot access path: %s: %v", out, err)}
	}

	if !info.IsDir() {
		return "", &PathError{Message: fmt.Sprintf("Output path exists and is not a directory: %s", out)}
	}

	return out, nil
}

// --- Path identity ---

// Same reports whether two paths refer to the same location. Existing paths
// are compared by file identity (os.SameFile, which sees through symlinks);
// otherwise the cleaned absolute forms are compared.
func Same(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA == nil && errB == nil && absA == absB {
		return true
	}

	infoA, errA := os.Stat(a)
	infoB, errB := os.Stat(b)
	if errA != nil || errB != nil {
		return false
	}
	return os.SameFile(infoA, infoB)
}

// --- Name normalization ---

// NormalizeSegment normalizes a substituted path segment for cross-platform
// output: Unicode NFC form, null bytes and path separators stripped.
// Tag values containing separators would silently fan a single name out into
// nested directories, so they are flattened instead.
func NormalizeSegment(name string) string {
	normalized := norm.NFC.String(name)
	normalized = strings.ReplaceAll(normalized, "\x00", "")
	normalized = strings.ReplaceAll(normalized, "/", "-")
	normalized = strings.ReplaceAll(normalized, "\\", "-")
	return normalized
}
