package fixture

import "errors"

var ErrMatchNotFound = errors.New("match not found")

// Match is one pairing inside a round. ID is a pure function of
// (competition, round, home, away).
type Match struct {
	ID    string `json:"id"`
	Round int    `json:"round"`
	Home  string `json:"home"`
	Away  string `json:"away"`
}

// Round groups the matches sharing a round number, in slot order.
type Round struct {
	Number  int     `json:"round"`
	Matches []Match `json:"matches"`
}

// FindMatch looks a match up by id across the whole schedule.
func FindMatch(schedule []Round, matchID string) (Match, bool) {
	for _, round := range schedule {
		for _, item := range round.Matches {
			if item.ID == matchID {
				return item, true
			}
		}
	}
	return Match{}, false
}

// Matches flattens a schedule in round then slot order.
func Matches(schedule []Round) []Match {
	total := 0
	for _, round := range schedule {
		total += len(round.Matches)
	}

	out := make([]Match, 0, total)
	for _, round := range schedule {
		out = append(out, round.Matches...)
	}
	return out
}

// CloneSchedule deep-copies rounds so callers cannot alias stored state.
func CloneSchedule(schedule []Round) []Round {
	out := make([]Round, 0, len(schedule))
	for _, round := range schedule {
		matches := make([]Match, len(round.Matches))
		copy(matches, round.Matches)
		out = append(out, Round{Number: round.Number, Matches: matches})
	}
	return out
}
