package core

import (
	"fmt"
	"sort"
	"strings"
)

// CombineTags joins a monster's tags into one display string: free tags
// alphabetically sorted, then organization tags, then size tags, the
// category groups separated by " ~ ". Returns "" when the record has no
// tags. When formatted is true the result is wrapped in emphasis markup.
//
// The record is never modified; free tags are copied before sorting.
func CombineTags(m *Monster, formatted bool) string {
	var parts []string
	if len(m.TagsDesc) > 0 {
		desc := append([]string(nil), m.TagsDesc...)
		sort.Strings(desc)
		parts = append(parts, strings.Join(desc, ", "))
	}
	if len(m.TagsOrg) > 0 {
		parts = append(parts, strings.Join(m.TagsOrg, ", "))
	}
	if len(m.TagsSize) > 0 {
		parts = append(parts, strings.Join(m.TagsSize, ", "))
	}
	if len(parts) == 0 {
		return ""
	}
	combined := strings.Join(parts, " ~ ")
	if formatted {
		combined = "<i>" + combined + "</i>"
	}
	return combined
}

// CombineWeapon builds the "Name (Damage)" display string followed by
// the weapon's tag summary (free tags in input order, then range tags,
// separated by " ~ "). Returns "" unless both name and damage are set.
// In formatted mode the tag summary follows a line break in emphasis
// markup; in plain mode it follows a single space.
func CombineWeapon(m *Monster, formatted bool) string {
	w := m.Weapon
	if w.Name == "" || w.Damage == "" {
		return ""
	}
	weapon := fmt.Sprintf("%s (%s)", w.Name, w.Damage)
	var parts []string
	if len(w.TagsDesc) > 0 {
		parts = append(parts, strings.Join(w.TagsDesc, ", "))
	}
	if len(w.TagsRange) > 0 {
		parts = append(parts, strings.Join(w.TagsRange, ", "))
	}
	if len(parts) == 0 {
		return weapon
	}
	tags := strings.Join(parts, " ~ ")
	if formatted {
		return weapon + "<br /><i>" + tags + "</i>"
	}
	return weapon + " " + tags
}
