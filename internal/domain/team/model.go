package team

import (
	"errors"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var ErrEmptyTeamList = errors.New("team list is empty")

// MinForSchedule is the smallest team count that yields any match.
const MinForSchedule = 2

// Normalize trims every name, drops blanks and removes duplicates. Duplicate
// detection is case-insensitive and the first spelling wins; order is kept.
func Normalize(raw []string) []string {
	lower := cases.Lower(language.Und)
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		name := strings.TrimSpace(item)
		if name == "" {
			continue
		}
		key := lower.String(name)
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, name)
	}

	return out
}

// ParseList normalizes newline separated text, one team per line.
func ParseList(text string) []string {
	return Normalize(strings.Split(text, "\n"))
}

// FormatList is the inverse of ParseList for an already normalized list.
func FormatList(names []string) string {
	return strings.Join(names, "\n")
}

// CanSchedule reports whether the list is large enough to produce fixtures.
func CanSchedule(names []string) bool {
	return len(names) >= MinForSchedule
}
