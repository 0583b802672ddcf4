package clone

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/pfrenyo/legendary-replace-tool/internal/ignore"
	"github.com/pfrenyo/legendary-replace-tool/internal/tagmap"
)

func writeFile(t *testing.T, path, content string, mode os.FileMode) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func forwardRules(tags tagmap.TagMap) *tagmap.Ruleset {
	return tagmap.NewRuleset(tags, tagmap.Forward)
}

func TestTreeRenamesFilesAndDirs(t *testing.T) {
	src := t.TempDir()
	dest := filepath.Join(t.TempDir(), "out")
	writeFile(t, filepath.Join(src, "PROJECTNAME", "PROJECTNAME_main.py"), "# by AUTHOR\n", 0o644)
	writeFile(t, filepath.Join(src, "README.md"), "plain\n", 0o644)

	rules := forwardRules(tagmap.TagMap{"PROJECTNAME": "Acme", "AUTHOR": "Jo"})
	stats, err := Tree(src, dest, rules, ignore.None)
	if err != nil {
		t.Fatal(err)
	}

	// Names substituted, contents untouched (rewriting is a separate pass).
	if got := readFile(t, filepath.Join(dest, "Acme", "Acme_main.py")); got != "# by AUTHOR\n" {
		t.Errorf("cloned content = %q, want original bytes", got)
	}
	if got := readFile(t, filepath.Join(dest, "README.md")); got != "plain\n" {
		t.Errorf("README content = %q", got)
	}
	if stats.FilesCopied != 2 {
		t.Errorf("FilesCopied = %d, want 2", stats.FilesCopied)
	}
	if stats.BytesCopied == 0 {
		t.Error("BytesCopied should be > 0")
	}
}

func TestTreeNeverRenamesInReverse(t *testing.T) {
	src := t.TempDir()
	dest := filepath.Join(t.TempDir(), "out")
	writeFile(t, filepath.Join(src, "Acme_main.py"), "body\n", 0o644)

	rules := tagmap.NewRuleset(tagmap.TagMap{"PROJECTNAME": "Acme"}, tagmap.Reverse)
	if _, err := Tree(src, dest, rules, ignore.None); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(filepath.Join(dest, "Acme_main.py")); err != nil {
		t.Errorf("reverse clone should keep concrete names: %v", err)
	}
}

func TestTreePreservesPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits not meaningful on windows")
	}

	src := t.TempDir()
	dest := filepath.Join(t.TempDir(), "out")
	writeFile(t, filepath.Join(src, "run.sh"), "#!/bin/sh\n", 0o755)

	rules := forwardRules(tagmap.TagMap{})
	if _, err := Tree(src, dest, rules, ignore.None); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(filepath.Join(dest, "run.sh"))
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm()&0o111 == 0 {
		t.Errorf("executable bit lost: mode = %v", info.Mode())
	}
}

func TestTreeSkipsIgnoredEntries(t *testing.T) {
	src := t.TempDir()
	dest := filepath.Join(t.TempDir(), "out")
	writeFile(t, filepath.Join(src, ".DS_Store"), "junk", 0o644)
	writeFile(t, filepath.Join(src, "__pycache__", "mod.pyc"), "junk", 0o644)
	writeFile(t, filepath.Join(src, "keep.txt"), "keep", 0o644)

	rules := forwardRules(tagmap.TagMap{})
	stats, err := Tree(src, dest, rules, ignore.Default())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(filepath.Join(dest, ".DS_Store")); !os.IsNotExist(err) {
		t.Error(".DS_Store should not be cloned")
	}
	if _, err := os.Stat(filepath.Join(dest, "__pycache__")); !os.IsNotExist(err) {
		t.Error("__pycache__ should not be cloned or descended into")
	}
	if stats.FilesCopied != 1 {
		t.Errorf("FilesCopied = %d, want 1", stats.FilesCopied)
	}
}

func TestTreeOverwritesButNeverDeletes(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()
	writeFile(t, filepath.Join(src, "a.txt"), "new", 0o644)
	writeFile(t, filepath.Join(dest, "a.txt"), "old", 0o644)
	writeFile(t, filepath.Join(dest, "extra.txt"), "kept", 0o644)

	rules := forwardRules(tagmap.TagMap{})
	if _, err := Tree(src, dest, rules, ignore.None); err != nil {
		t.Fatal(err)
	}

	if got := readFile(t, filepath.Join(dest, "a.txt")); got != "new" {
		t.Errorf("existing file should be overwritten, got %q", got)
	}
	if got := readFile(t, filepath.Join(dest, "extra.txt")); got != "kept" {
		t.Errorf("extra destination file should survive, got %q", got)
	}
}

func TestTreeCopyToSelfIsSilentNoop(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "content", 0o644)

	rules := forwardRules(tagmap.TagMap{})
	stats, err := Tree(dir, dir, rules, ignore.None)
	if err != nil {
		t.Fatal(err)
	}

	if stats.FilesCopied != 0 {
		t.Errorf("FilesCopied = %d, want 0 for copy-to-self", stats.FilesCopied)
	}
	if got := readFile(t, filepath.Join(dir, "a.txt")); got != "content" {
		t.Errorf("content should survive copy-to-self, got %q", got)
	}
}

func TestTreePropagatesFilesystemErrors(t *testing.T) {
	src := filepath.Join(t.TempDir(), "missing")
	dest := filepath.Join(t.TempDir(), "out")

	rules := forwardRules(tagmap.TagMap{})
	if _, err := Tree(src, dest, rules, ignore.None); err == nil {
		t.Fatal("cloning a missing source should fail")
	}
}
