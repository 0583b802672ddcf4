// Package interactive provides the --interactive tag review form: every tag
// value is shown in an editable field before anything is generated.
package interactive

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/pfrenyo/legendary-replace-tool/internal/tagmap"
)

// ErrAborted is returned when the user declines the confirmation step.
var ErrAborted = fmt.Errorf("generation aborted")

// ReviewTags presents the loaded tag map for editing and returns the
// (possibly modified) map. Tags are listed in substitution order so the
// precedence the run will use is visible up front. The original map is not
// mutated.
func ReviewTags(tags tagmap.TagMap, dir tagmap.Direction) (tagmap.TagMap, error) {
	rules := tagmap.NewRuleset(tags, dir)

	values := make([]string, len(rules.Keys))
	fields := make([]huh.Field, 0, len(rules.Keys)+1)

	fields = append(fields, huh.NewNote().
		Title("Review tags").
		Description(fmt.Sprintf("%d tag(s), applied longest-first in %s mode. Edit any value, then confirm.",
			len(rules.Keys), dir)))

	for i, key := range rules.Keys {
		values[i] = tags[key]
		fields = append(fields, huh.NewInput().
			Title(key).
			Value(&values[i]))
	}

	confirmed := false
	form := huh.NewForm(
		huh.NewGroup(fields...),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Generate with these tags?").
				Affirmative("Generate").
				Negative("Abort").
				Value(&confirmed),
		),
	)

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("tag review form: %w", err)
	}
	if !confirmed {
		return nil, ErrAborted
	}

	edited := make(tagmap.TagMap, len(tags))
	for i, key := range rules.Keys {
		edited[key] = values[i]
	}
	return edited, nil
}
