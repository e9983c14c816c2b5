package httpapi

import (
	"time"

	"github.com/riskibarqy/school-tournament/internal/domain/competition"
	"github.com/riskibarqy/school-tournament/internal/domain/fixture"
	"github.com/riskibarqy/school-tournament/internal/domain/leaguestanding"
	"github.com/riskibarqy/school-tournament/internal/domain/score"
	"github.com/riskibarqy/school-tournament/internal/domain/team"
	"github.com/riskibarqy/school-tournament/internal/domain/tournament"
	"github.com/riskibarqy/school-tournament/internal/usecase"
)

type setActiveCompetitionRequest struct {
	Competition string `json:"competition" validate:"required"`
}

type applySchoolsRequest struct {
	SchoolsText string `json:"schools_text" validate:"max=20000"`
	Confirm     bool   `json:"confirm"`
}

type confirmRequest struct {
	Confirm bool `json:"confirm"`
}

// recordScoreRequest carries the goal fields exactly as typed; blank means
// "no score".
type recordScoreRequest struct {
	HomeGoals string `json:"home_goals" validate:"max=12"`
	AwayGoals string `json:"away_goals" validate:"max=12"`
}

type tournamentDTO struct {
	Schools           []string                `json:"schools"`
	SchoolsText       string                  `json:"schools_text"`
	ActiveCompetition string                  `json:"active_competition"`
	LastSaved         *string                 `json:"last_saved"`
	SaveStatus        string                  `json:"save_status"`
	Competitions      []competitionSummaryDTO `json:"competitions"`
}

type competitionSummaryDTO struct {
	Competition   string `json:"competition"`
	Title         string `json:"title"`
	Rounds        int    `json:"rounds"`
	Matches       int    `json:"matches"`
	ScoredMatches int    `json:"scored_matches"`
}

type scheduleDTO struct {
	Competition  string     `json:"competition"`
	Title        string     `json:"title"`
	EmptyMessage string     `json:"empty_message,omitempty"`
	Rounds       []roundDTO `json:"rounds"`
}

type roundDTO struct {
	Round   int        `json:"round"`
	Matches []matchDTO `json:"matches"`
}

type matchDTO struct {
	ID        string `json:"id"`
	Home      string `json:"home"`
	Away      string `json:"away"`
	HomeGoals *int   `json:"home_goals"`
	AwayGoals *int   `json:"away_goals"`
}

type scoreDTO struct {
	Competition string `json:"competition"`
	MatchID     string `json:"match_id"`
	Cleared     bool   `json:"cleared"`
	HomeGoals   *int   `json:"home_goals"`
	AwayGoals   *int   `json:"away_goals"`
}

type standingsDTO struct {
	Competition  string        `json:"competition"`
	Title        string        `json:"title"`
	EmptyMessage string        `json:"empty_message,omitempty"`
	Rows         []standingDTO `json:"rows"`
}

type standingDTO struct {
	Position       int    `json:"position"`
	Team           string `json:"team"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Draw           int    `json:"draw"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
}

func tournamentToDTO(state tournament.State) tournamentDTO {
	out := tournamentDTO{
		Schools:           append([]string{}, state.Schools...),
		SchoolsText:       team.FormatList(state.Schools),
		ActiveCompetition: state.ActiveCompetition.String(),
		SaveStatus:        state.SaveStatus(),
		Competitions:      make([]competitionSummaryDTO, 0, len(competition.All)),
	}
	if state.LastSaved != nil {
		saved := state.LastSaved.UTC().Format(time.RFC3339)
		out.LastSaved = &saved
	}

	for _, c := range competition.All {
		cs := state.Competition(c)
		out.Competitions = append(out.Competitions, competitionSummaryDTO{
			Competition:   c.String(),
			Title:         c.Title(),
			Rounds:        len(cs.Schedule),
			Matches:       len(fixture.Matches(cs.Schedule)),
			ScoredMatches: len(cs.Scores),
		})
	}
	return out
}

func scheduleToDTO(schedule usecase.CompetitionSchedule) scheduleDTO {
	out := scheduleDTO{
		Competition:  schedule.Competition.String(),
		Title:        schedule.Title,
		EmptyMessage: schedule.EmptyMessage,
		Rounds:       make([]roundDTO, 0, len(schedule.Rounds)),
	}
	for _, round := range schedule.Rounds {
		item := roundDTO{
			Round:   round.Number,
			Matches: make([]matchDTO, 0, len(round.Matches)),
		}
		for _, match := range round.Matches {
			row := matchDTO{ID: match.ID, Home: match.Home, Away: match.Away}
			if s, ok := schedule.Scores.Get(match.ID); ok {
				row.HomeGoals, row.AwayGoals = goalsPtr(s)
			}
			item.Matches = append(item.Matches, row)
		}
		out.Rounds = append(out.Rounds, item)
	}
	return out
}

func scoreToDTO(comp, matchID string, input score.Input) scoreDTO {
	out := scoreDTO{
		Competition: comp,
		MatchID:     matchID,
		Cleared:     input.Clear,
	}
	if !input.Clear {
		out.HomeGoals, out.AwayGoals = goalsPtr(input.Score)
	}
	return out
}

func standingsToDTO(standings usecase.CompetitionStandings) standingsDTO {
	out := standingsDTO{
		Competition:  standings.Competition.String(),
		Title:        standings.Title,
		EmptyMessage: standings.EmptyMessage,
		Rows:         make([]standingDTO, 0, len(standings.Rows)),
	}
	for _, row := range standings.Rows {
		out.Rows = append(out.Rows, standingToDTO(row))
	}
	return out
}

func standingToDTO(row leaguestanding.Standing) standingDTO {
	return standingDTO{
		Position:       row.Position,
		Team:           row.Team,
		Played:         row.Played,
		Won:            row.Won,
		Draw:           row.Draw,
		Lost:           row.Lost,
		GoalsFor:       row.GoalsFor,
		GoalsAgainst:   row.GoalsAgainst,
		GoalDifference: row.GoalDifference,
		Points:         row.Points,
	}
}

func goalsPtr(s score.Score) (*int, *int) {
	home := s.HomeGoals
	away := s.AwayGoals
	return &home, &away
}
