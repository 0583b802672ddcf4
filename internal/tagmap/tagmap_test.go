package tagmap

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeTagFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tags.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    TagMap
		wantErr bool
	}{
		{
			name:    "flat mapping",
			content: `{"PROJECTNAME": "Acme", "AUTHOR": "Jo"}`,
			want:    TagMap{"PROJECTNAME": "Acme", "AUTHOR": "Jo"},
		},
		{
			name:    "empty object",
			content: `{}`,
			want:    TagMap{},
		},
		{
			name:    "empty value allowed",
			content: `{"TODO_MARKER": ""}`,
			want:    TagMap{"TODO_MARKER": ""},
		},
		{
			name:    "invalid JSON",
			content: `{"PROJECTNAME": `,
			wantErr: true,
		},
		{
			name:    "top-level array",
			content: `["PROJECTNAME"]`,
			wantErr: true,
		},
		{
			name:    "nested object value",
			content: `{"PROJECTNAME": {"name": "Acme"}}`,
			wantErr: true,
		},
		{
			name:    "numeric value",
			content: `{"VERSION": 2}`,
			wantErr: true,
		},
		{
			name:    "null value",
			content: `{"PROJECTNAME": null}`,
			wantErr: true,
		},
		{
			name:    "empty key",
			content: `{"": "Acme"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTagFile(t, tt.content)
			got, err := Load(path)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Load(%q) should fail", tt.content)
				}
				var resErr *ResourceError
				if !errors.As(err, &resErr) {
					t.Errorf("error should be a *ResourceError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Load() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("Load of a missing file should fail")
	}
	var resErr *ResourceError
	if !errors.As(err, &resErr) {
		t.Fatalf("error should be a *ResourceError, got %T", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("ResourceError should wrap the underlying os.ErrNotExist")
	}
}

func TestDuplicateValues(t *testing.T) {
	tests := []struct {
		name string
		tags TagMap
		want map[string][]string
	}{
		{
			name: "all unique",
			tags: TagMap{"PROJECTNAME": "Acme", "AUTHOR": "Jo"},
			want: map[string][]string{},
		},
		{
			name: "one value shared by three tags",
			tags: TagMap{"A": "example", "B": "example", "C": "example", "D": "other"},
			want: map[string][]string{"example": {"A", "B", "C"}},
		},
		{
			name: "two duplicate groups",
			tags: TagMap{"A": "x", "B": "x", "C": "y", "D": "y"},
			want: map[string][]string{"x": {"A", "B"}, "y": {"C", "D"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.tags.DuplicateValues()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DuplicateValues() = %v, want %v", got, tt.want)
			}
		})
	}
}
