package tournament

import (
	"time"

	"github.com/riskibarqy/school-tournament/internal/domain/competition"
	"github.com/riskibarqy/school-tournament/internal/domain/fixture"
	"github.com/riskibarqy/school-tournament/internal/domain/score"
	"github.com/sourcegraph/conc/iter"
)

const DefaultStorageKey = "school-football-tournament-v1"

// DefaultSchools seeds a fresh tournament.
var DefaultSchools = []string{
	"Pegasus",
	"Kúlan",
	"Dimma",
	"Jemen",
	"Fönix",
	"Ekkó",
	"Igló",
	"Þeba",
	"Kjarninn",
}

// CompetitionState holds one division's fixtures and recorded scores.
type CompetitionState struct {
	Schedule []fixture.Round
	Scores   score.Book
}

// State is the whole tournament: the shared school list, the selected
// division and each division's schedule and scores.
type State struct {
	Schools           []string
	ActiveCompetition competition.Competition
	Competitions      map[competition.Competition]CompetitionState
	LastSaved         *time.Time
}

// NewDefault builds a fresh tournament for the given schools with schedules
// generated for every competition and no scores.
func NewDefault(schools []string) State {
	s := State{
		Schools:           append([]string(nil), schools...),
		ActiveCompetition: competition.Boys,
	}
	return Regenerate(s)
}

// Regenerate rebuilds every competition's schedule from the current school
// list and drops all recorded scores.
func Regenerate(s State) State {
	out := s.Clone()
	schedules := iter.Map(competition.All, func(c *competition.Competition) []fixture.Round {
		return fixture.GenerateRoundRobin(out.Schools, *c)
	})

	out.Competitions = make(map[competition.Competition]CompetitionState, len(competition.All))
	for i, c := range competition.All {
		out.Competitions[c] = CompetitionState{
			Schedule: schedules[i],
			Scores:   score.NewBook(),
		}
	}
	return out
}

// WithSchools replaces the school list and regenerates every competition.
func WithSchools(s State, schools []string) State {
	out := s.Clone()
	out.Schools = append([]string(nil), schools...)
	return Regenerate(out)
}

// Competition returns the division's state, empty when it was never set.
func (s State) Competition(c competition.Competition) CompetitionState {
	cs, ok := s.Competitions[c]
	if !ok {
		return CompetitionState{Schedule: []fixture.Round{}, Scores: score.NewBook()}
	}
	if cs.Schedule == nil {
		cs.Schedule = []fixture.Round{}
	}
	if cs.Scores == nil {
		cs.Scores = score.NewBook()
	}
	return cs
}

// Clone deep-copies the state so a mutation never leaks into a caller's copy.
func (s State) Clone() State {
	out := State{
		Schools:           append([]string(nil), s.Schools...),
		ActiveCompetition: s.ActiveCompetition,
		Competitions:      make(map[competition.Competition]CompetitionState, len(s.Competitions)),
	}
	if out.Schools == nil {
		out.Schools = []string{}
	}
	for c, cs := range s.Competitions {
		out.Competitions[c] = CompetitionState{
			Schedule: fixture.CloneSchedule(cs.Schedule),
			Scores:   cs.Scores.Clone(),
		}
	}
	if s.LastSaved != nil {
		saved := *s.LastSaved
		out.LastSaved = &saved
	}
	return out
}

// SaveStatus is the human readable persistence indicator.
func (s State) SaveStatus() string {
	if s.LastSaved == nil {
		return "Not saved yet"
	}
	return "Saved • Last saved " + s.LastSaved.Format(time.RFC1123)
}
