package competition

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownCompetition = errors.New("unknown competition")

// Competition is one division of the tournament. Schedules and scores are
// kept fully separate per competition.
type Competition string

const (
	Boys  Competition = "boys"
	Girls Competition = "girls"
)

// All lists every competition in display order.
var All = []Competition{Boys, Girls}

func (c Competition) Valid() bool {
	switch c {
	case Boys, Girls:
		return true
	default:
		return false
	}
}

// Title is the heading prefix used by schedule and standings views.
func (c Competition) Title() string {
	if c == Girls {
		return "Girls"
	}
	return "Boys"
}

func (c Competition) String() string {
	return string(c)
}

func Parse(value string) (Competition, error) {
	c := Competition(strings.ToLower(strings.TrimSpace(value)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCompetition, value)
	}
	return c, nil
}

// ParseOrDefault falls back to Boys for anything that is not a known tag.
func ParseOrDefault(value string) Competition {
	c := Competition(value)
	if !c.Valid() {
		return Boys
	}
	return c
}
