package leaguestanding

import (
	"sort"

	"github.com/riskibarqy/school-tournament/internal/domain/fixture"
	"github.com/riskibarqy/school-tournament/internal/domain/score"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Compute folds the schedule and recorded scores into a ranked table with one
// row per team. Ordering is points, goal difference and goals for (all
// descending), then team name ascending. Matches naming a team outside teams
// are skipped.
func Compute(teams []string, schedule []fixture.Round, scores score.Book) []Standing {
	index := make(map[string]*Standing, len(teams))
	rows := make([]*Standing, 0, len(teams))
	for _, name := range teams {
		if _, exists := index[name]; exists {
			continue
		}
		row := &Standing{Team: name}
		index[name] = row
		rows = append(rows, row)
	}

	for _, round := range schedule {
		for _, match := range round.Matches {
			result, ok := scores[match.ID]
			if !ok {
				continue
			}
			home := index[match.Home]
			away := index[match.Away]
			if home == nil || away == nil {
				continue
			}
			applyResult(home, away, result)
		}
	}

	out := make([]Standing, 0, len(rows))
	for _, row := range rows {
		row.GoalDifference = row.GoalsFor - row.GoalsAgainst
		out = append(out, *row)
	}

	collator := collate.New(language.Und)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		return collator.CompareString(a.Team, b.Team) < 0
	})

	for i := range out {
		out[i].Position = i + 1
	}
	return out
}

func applyResult(home, away *Standing, result score.Score) {
	home.Played++
	away.Played++
	home.GoalsFor += result.HomeGoals
	home.GoalsAgainst += result.AwayGoals
	away.GoalsFor += result.AwayGoals
	away.GoalsAgainst += result.HomeGoals

	switch result.Outcome() {
	case score.HomeWin:
		home.Won++
		home.Points += PointsForWin
		away.Lost++
	case score.AwayWin:
		away.Won++
		away.Points += PointsForWin
		home.Lost++
	default:
		home.Draw++
		away.Draw++
		home.Points += PointsForDraw
		away.Points += PointsForDraw
	}
}
