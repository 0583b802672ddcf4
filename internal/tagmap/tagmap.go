// Package tagmap loads tag dictionaries and computes the substitution order
// used when stamping a template into a concrete project.
//
// A tag map is a flat JSON object mapping tag strings to replacement values:
//
//	{"PROJECTNAME": "Acme", "AUTHOR": "Jo"}
//
// Keys are unique by construction (JSON object). Values need not be unique,
// but duplicate values degrade reverse-mode fidelity: two tags mapping to the
// same value cannot be told apart when reconstructing a template.
package tagmap

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// TagMap maps tag strings to their replacement values.
// Loaded once at startup and treated as immutable afterwards.
type TagMap map[string]string

// ResourceError reports a tag map resource that is missing, unreadable,
// or not a flat string-to-string JSON object.
type ResourceError struct {
	Path   string
	Reason string
	Err    error
}

func (e *ResourceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tag map %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("tag map %s: %s", e.Path, e.Reason)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

// Load reads and parses a tag map from a JSON file.
//
// The file must contain a single flat object whose values are all strings.
// Nested objects, arrays, numbers, booleans, and null are rejected, as are
// empty tag keys (an empty key would match everywhere). No side effects
// beyond reading the file.
func Load(path string) (TagMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ResourceError{Path: path, Reason: "cannot read", Err: err}
	}

	// Decode into raw messages first so a non-string value produces a
	// "not flat" diagnostic rather than a generic type error.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ResourceError{Path: path, Reason: "not a JSON object", Err: err}
	}

	tags := make(TagMap, len(raw))
	for key, msg := range raw {
		if key == "" {
			return nil, &ResourceError{Path: path, Reason: "empty tag key"}
		}
		var value string
		if err := json.Unmarshal(msg, &value); err != nil {
			return nil, &ResourceError{
				Path:   path,
				Reason: fmt.Sprintf("value for tag %q is not a string (flat string-to-string mapping required)", key),
			}
		}
		tags[key] = value
	}

	return tags, nil
}

// DuplicateValues returns the values that appear under more than one tag,
// each with the sorted list of tags sharing it. Templates reconstructed with
// --reverse from such maps need manual revision, so callers surface these
// as warnings.
func (m TagMap) DuplicateValues() map[string][]string {
	byValue := make(map[string][]string)
	for key, value := range m {
		byValue[value] = append(byValue[value], key)
	}

	dupes := make(map[string][]string)
	for value, keys := range byValue {
		if len(keys) > 1 {
			sort.Strings(keys)
			dupes[value] = keys
		}
	}
	return dupes
}
