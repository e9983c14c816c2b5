package fixture

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/riskibarqy/school-tournament/internal/domain/competition"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	idSeparator   = "__"
	slugSeparator = '-'
)

// combiningMarks is the Combining Diacritical Marks block (U+0300..U+036F).
var combiningMarks = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}},
}

// MatchID derives the stable key for a match. Distinct names that slugify to
// the same value produce the same id; that collision is not guarded against.
func MatchID(comp competition.Competition, round int, home, away string) string {
	return strings.Join([]string{
		comp.String(),
		strconv.Itoa(round),
		Slugify(home),
		Slugify(away),
	}, idSeparator)
}

// Slugify decomposes the value, drops combining marks and collapses every run
// of characters outside [a-zA-Z0-9] into a single '-', lowercased and trimmed.
func Slugify(value string) string {
	stripped, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(combiningMarks))),
		value,
	)
	if err != nil {
		stripped = value
	}

	var b strings.Builder
	b.Grow(len(stripped))
	pendingSeparator := false
	for _, r := range stripped {
		if !isASCIIAlnum(r) {
			pendingSeparator = b.Len() > 0
			continue
		}
		if pendingSeparator {
			b.WriteByte(slugSeparator)
			pendingSeparator = false
		}
		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
