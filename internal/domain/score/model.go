package score

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	ErrPartialScore = errors.New("enter both scores, or leave both blank")
	ErrInvalidScore = errors.New("scores must be non-negative integers")
)

var validate = validator.New()

// Score is the final result of a played match.
type Score struct {
	HomeGoals int `json:"homeGoals" validate:"gte=0"`
	AwayGoals int `json:"awayGoals" validate:"gte=0"`
}

type Outcome int

const (
	Draw Outcome = iota
	HomeWin
	AwayWin
)

func New(homeGoals, awayGoals int) (Score, error) {
	s := Score{HomeGoals: homeGoals, AwayGoals: awayGoals}
	if err := s.Validate(); err != nil {
		return Score{}, err
	}
	return s, nil
}

func (s Score) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScore, err)
	}
	return nil
}

func (s Score) Outcome() Outcome {
	switch {
	case s.HomeGoals > s.AwayGoals:
		return HomeWin
	case s.HomeGoals < s.AwayGoals:
		return AwayWin
	default:
		return Draw
	}
}
