// Package tags classifies free-text monster tags into the fixed,
// ordered category vocabularies used throughout the game text.
// Tokens outside every vocabulary are kept as free-form tags; nothing
// is ever rejected.
package tags

import "strings"

// The vocabulary order is the display order: combined tag strings list
// category tags in this order no matter how the source ordered them.
var (
	Organization = []string{"Solitary", "Group", "Horde"}
	Size         = []string{"Tiny", "Small", "Large", "Huge"}
	WeaponRange  = []string{"Hand", "Close", "Reach", "Near", "Far"}
)

// ClassifyMonster partitions a comma-separated tag string into
// organization tags, size tags, and the remaining free-form tags.
// Category partitions come back in vocabulary order; free tags keep
// their input order, trimmed of surrounding whitespace.
func ClassifyMonster(raw string) (org, size, free []string) {
	tokens := split(raw)
	org, rest := partition(tokens, Organization)
	size, free = partition(rest, Size)
	return org, size, free
}

// ClassifyWeapon partitions a comma-separated tag string into range
// tags (vocabulary order) and free-form tags (input order).
func ClassifyWeapon(raw string) (rng, free []string) {
	return partition(split(raw), WeaponRange)
}

// split tokenizes on commas, trims each token, and drops empties.
func split(raw string) []string {
	var tokens []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// partition splits tokens into vocabulary matches (re-ordered to the
// vocabulary order) and the rest (input order preserved).
func partition(tokens, vocab []string) (matched, rest []string) {
	seen := make(map[string]bool, len(vocab))
	for _, t := range tokens {
		if inVocab(t, vocab) {
			seen[t] = true
		} else {
			rest = append(rest, t)
		}
	}
	for _, v := range vocab {
		if seen[v] {
			matched = append(matched, v)
		}
	}
	return matched, rest
}

func inVocab(token string, vocab []string) bool {
	for _, v := range vocab {
		if v == token {
			return true
		}
	}
	return false
}
