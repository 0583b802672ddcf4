package tagmap

import (
	"sort"
	"strings"
)

// Direction selects which way substitution runs.
type Direction int

const (
	// Forward replaces tags with their values (template -> concrete project).
	Forward Direction = iota
	// Reverse replaces values with their tags (concrete project -> template).
	// Reverse only ever applies to file contents, never to names.
	Reverse
)

func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}
	return "forward"
}

// Ruleset bundles a tag map with its precomputed substitution order.
// It is the single value threaded through the cloner and rewriter;
// construct it once per run and treat it as read-only.
type Ruleset struct {
	Tags      TagMap
	Keys      []string // ordered: longest relevant string first
	Direction Direction
}

// NewRuleset computes the substitution order for the given direction.
//
// Keys are sorted by descending length of the key (Forward) or of the mapped
// value (Reverse), so that a longer tag is always substituted before any
// shorter tag it contains as a substring. Equal-length entries are ordered by
// ascending byte-wise key comparison: Go maps carry no insertion order, so
// lexicographic key order is the deterministic tiebreak. Pure function.
func NewRuleset(tags TagMap, dir Direction) *Ruleset {
	keys := make([]string, 0, len(tags))
	for key := range tags {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	length := func(key string) int {
		if dir == Reverse {
			return len(tags[key])
		}
		return len(key)
	}
	// Stable on an already lexicographically sorted slice, so equal-length
	// keys keep their byte-wise order.
	sort.SliceStable(keys, func(i, j int) bool {
		return length(keys[i]) > length(keys[j])
	})

	return &Ruleset{Tags: tags, Keys: keys, Direction: dir}
}

// Apply substitutes every tag in s according to the ruleset's direction.
//
// Each key is applied as one global, non-overlapping, left-to-right literal
// replacement; the result of one key's pass is the input to the next key's
// pass, in precedence order.
func (r *Ruleset) Apply(s string) string {
	for _, key := range r.Keys {
		old, repl := key, r.Tags[key]
		if r.Direction == Reverse {
			old, repl = repl, old
		}
		// A tag with an empty value has nothing to match in reverse.
		if old == "" {
			continue
		}
		s = strings.ReplaceAll(s, old, repl)
	}
	return s
}

// ApplyName substitutes tags in a path segment. Renaming always runs in the
// forward direction: a reverse run still walks a concrete tree whose names
// carry values, and those names are left alone.
func (r *Ruleset) ApplyName(s string) string {
	for _, key := range r.Keys {
		s = strings.ReplaceAll(s, key, r.Tags[key])
	}
	return s
}
