package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func boolPtr(b bool) *bool { return &b }

func TestMergeConfigs(t *testing.T) {
	tests := []struct {
		name    string
		configs []*Config
		want    Config
	}{
		{
			name:    "nil configs skipped",
			configs: []*Config{nil, nil},
			want:    Config{},
		},
		{
			name: "later path wins",
			configs: []*Config{
				{Out: "global-out", Tags: "global-tags"},
				{Out: "project-out"},
			},
			want: Config{Out: "project-out", Tags: "global-tags"},
		},
		{
			name: "ignore lists accumulate",
			configs: []*Config{
				{Ignore: []string{"node_modules"}},
				{Ignore: []string{".venv"}},
			},
			want: Config{Ignore: []string{"node_modules", ".venv"}},
		},
		{
			name: "bool pointer overrides only when set",
			configs: []*Config{
				{Quiet: boolPtr(true)},
				{Verbose: boolPtr(true)},
			},
			want: Config{Quiet: boolPtr(true), Verbose: boolPtr(true)},
		},
		{
			name: "explicit false overrides true",
			configs: []*Config{
				{Quiet: boolPtr(true)},
				{Quiet: boolPtr(false)},
			},
			want: Config{Quiet: boolPtr(false)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mergeConfigs(tt.configs...)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("mergeConfigs() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "lrt.yaml")
	content := "out: build/generated\nignore:\n  - node_modules\nquiet: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := loadConfigFile(path)
	if cfg == nil {
		t.Fatal("loadConfigFile returned nil for a valid file")
	}
	if cfg.Out != "build/generated" {
		t.Errorf("Out = %q", cfg.Out)
	}
	if len(cfg.Ignore) != 1 || cfg.Ignore[0] != "node_modules" {
		t.Errorf("Ignore = %v", cfg.Ignore)
	}
	if cfg.Quiet == nil || !*cfg.Quiet {
		t.Error("Quiet should parse as true")
	}
}

func TestLoadConfigFileMissingOrInvalid(t *testing.T) {
	dir := t.TempDir()

	if cfg := loadConfigFile(filepath.Join(dir, "absent.yaml")); cfg != nil {
		t.Error("missing file should yield nil config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte(":\n\t- not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if cfg := loadConfigFile(bad); cfg != nil {
		t.Error("unparseable file should yield nil config")
	}
}

func TestLoadProjectConfigPrecedence(t *testing.T) {
	dir := t.TempDir()

	// .lrtrc present but lrt.yaml should win.
	if err := os.WriteFile(filepath.Join(dir, ".lrtrc"), []byte("out: from-rc\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "lrt.yaml"), []byte("out: from-yaml\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := loadProjectConfig(dir)
	if cfg == nil {
		t.Fatal("loadProjectConfig returned nil")
	}
	if cfg.Out != "from-yaml" {
		t.Errorf("Out = %q, want lrt.yaml to take precedence", cfg.Out)
	}
}
