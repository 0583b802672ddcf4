// Package ignore decides which directory entries the cloner and rewriter
// skip. The matcher is injected into both so the substitution engine stays
// decoupled from any particular toolchain's artifact conventions.
package ignore

// defaultNames are hidden OS/IDE/tooling artifacts that would otherwise
// spam the output with binary-skip notices.
var defaultNames = []string{
	".DS_Store",
	".idea",
	"__pycache__",
}

// Matcher reports whether a directory entry name should be skipped.
type Matcher func(name string) bool

// None matches nothing; every entry is processed.
func None(string) bool {
	return false
}

// Default returns a matcher for the built-in artifact names plus any
// caller-supplied extras. Matching is by exact entry name.
func Default(extra ...string) Matcher {
	names := make(map[string]bool, len(defaultNames)+len(extra))
	for _, n := range defaultNames {
		names[n] = true
	}
	for _, n := range extra {
		if n != "" {
			names[n] = true
		}
	}
	return func(name string) bool {
		return names[name]
	}
}
