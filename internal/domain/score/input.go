package score

import (
	"regexp"
	"strconv"
	"strings"
)

var goalsPattern = regexp.MustCompile(`^[0-9]+$`)

// Input is a validated pair of raw score fields. Clear is set when both
// fields were blank, meaning any stored score should be removed.
type Input struct {
	Clear bool
	Score Score
}

// ParseInput validates the two raw goal fields entered for a match.
func ParseInput(rawHome, rawAway string) (Input, error) {
	home := strings.TrimSpace(rawHome)
	away := strings.TrimSpace(rawAway)

	if home == "" && away == "" {
		return Input{Clear: true}, nil
	}
	if home == "" || away == "" {
		return Input{}, ErrPartialScore
	}
	if !goalsPattern.MatchString(home) || !goalsPattern.MatchString(away) {
		return Input{}, ErrInvalidScore
	}

	homeGoals, err := strconv.Atoi(home)
	if err != nil {
		return Input{}, ErrInvalidScore
	}
	awayGoals, err := strconv.Atoi(away)
	if err != nil {
		return Input{}, ErrInvalidScore
	}

	s, err := New(homeGoals, awayGoals)
	if err != nil {
		return Input{}, err
	}
	return Input{Score: s}, nil
}

// Apply records or clears the parsed input against the book.
func (in Input) Apply(book Book, matchID string) error {
	if in.Clear {
		book.Clear(matchID)
		return nil
	}
	return book.Set(matchID, in.Score)
}
