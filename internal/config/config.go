// Package config provides configuration types, constants, and default path
// resolution for lrt.
package config

import (
	"os"
	"path/filepath"
)

// --- Config model ---

// Config represents the lrt configuration model.
// All fields are optional (zero value = not set). CLI flags take precedence.
type Config struct {
	// Paths
	Out    string `yaml:"out,omitempty"`
	Tags   string `yaml:"tags,omitempty"`
	Source string `yaml:"source,omitempty"`

	// Extra entry names to ignore on top of the built-in artifact list.
	Ignore []string `yaml:"ignore,omitempty"`

	// Behavior (pointers distinguish unset from false)
	Quiet   *bool `yaml:"quiet,omitempty"`
	Verbose *bool `yaml:"verbose,omitempty"`
}

// --- Default locations ---
//
// Defaults live next to the installed binary, mirroring the bundled-sample
// layout. `lrt init` materializes the embedded samples into these paths.

const (
	// OutDirName is the default output directory name.
	OutDirName = "GENERATED_OUTPUT"
	// TagFileRel is the default tag map file, relative to the executable.
	TagFileRel = "tags_templates/tags_template.json"
	// SourceDirRel is the default template source, relative to the executable.
	SourceDirRel = "source_code_templates/legendary_template_default"
)

// ExecDir returns the directory containing the running binary, or "." if it
// cannot be determined.
func ExecDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// DefaultOut returns the default output directory path.
func DefaultOut() string {
	return filepath.Join(ExecDir(), OutDirName)
}

// DefaultTags returns the default tag map file path.
func DefaultTags() string {
	return filepath.Join(ExecDir(), filepath.FromSlash(TagFileRel))
}

// DefaultSource returns the default template source directory path.
func DefaultSource() string {
	return filepath.Join(ExecDir(), filepath.FromSlash(SourceDirRel))
}
