package leaguestanding

// Standing represents a league table row for one team. Rows are derived from
// the schedule and recorded scores and never stored.
type Standing struct {
	Team           string
	Position       int
	Played         int
	Won            int
	Draw           int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
}

const (
	PointsForWin  = 3
	PointsForDraw = 1
)
