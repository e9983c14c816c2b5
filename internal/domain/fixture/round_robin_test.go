package fixture

import (
	"fmt"
	"testing"

	"github.com/riskibarqy/school-tournament/internal/domain/competition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRoundRobin_FourTeams(t *testing.T) {
	got := GenerateRoundRobin([]string{"A", "B", "C", "D"}, competition.Boys)

	want := []Round{
		{Number: 1, Matches: []Match{
			{ID: "boys__1__a__d", Round: 1, Home: "A", Away: "D"},
			{ID: "boys__1__b__c", Round: 1, Home: "B", Away: "C"},
		}},
		{Number: 2, Matches: []Match{
			{ID: "boys__2__c__a", Round: 2, Home: "C", Away: "A"},
			{ID: "boys__2__b__d", Round: 2, Home: "B", Away: "D"},
		}},
		{Number: 3, Matches: []Match{
			{ID: "boys__3__a__b", Round: 3, Home: "A", Away: "B"},
			{ID: "boys__3__c__d", Round: 3, Home: "C", Away: "D"},
		}},
	}
	assert.Equal(t, want, got)
}

func TestGenerateRoundRobin_TooFewTeams(t *testing.T) {
	assert.Empty(t, GenerateRoundRobin(nil, competition.Boys))
	assert.Empty(t, GenerateRoundRobin([]string{"Solo"}, competition.Girls))
	assert.NotNil(t, GenerateRoundRobin(nil, competition.Boys))
}

func TestGenerateRoundRobin_Properties(t *testing.T) {
	for n := 2; n <= 12; n++ {
		t.Run(fmt.Sprintf("%d teams", n), func(t *testing.T) {
			teams := make([]string, 0, n)
			for i := 0; i < n; i++ {
				teams = append(teams, fmt.Sprintf("Team %d", i+1))
			}

			schedule := GenerateRoundRobin(teams, competition.Girls)

			wantRounds := n - 1
			if n%2 != 0 {
				wantRounds = n
			}
			require.Len(t, schedule, wantRounds)

			pairs := make(map[[2]string]int)
			ids := make(map[string]struct{})
			for idx, round := range schedule {
				require.Equal(t, idx+1, round.Number)
				require.Len(t, round.Matches, n/2)

				seen := make(map[string]struct{})
				for _, m := range round.Matches {
					require.NotEqual(t, m.Home, m.Away)
					require.Equal(t, round.Number, m.Round)
					for _, side := range []string{m.Home, m.Away} {
						_, dup := seen[side]
						require.Falsef(t, dup, "team %s plays twice in round %d", side, round.Number)
						seen[side] = struct{}{}
					}

					_, dupID := ids[m.ID]
					require.Falsef(t, dupID, "duplicate match id %s", m.ID)
					ids[m.ID] = struct{}{}

					key := [2]string{m.Home, m.Away}
					if key[0] > key[1] {
						key[0], key[1] = key[1], key[0]
					}
					pairs[key]++
				}

				if n%2 != 0 {
					require.Len(t, seen, n-1, "exactly one team rests each round")
				}
			}

			require.Len(t, pairs, n*(n-1)/2)
			for pair, count := range pairs {
				require.Equalf(t, 1, count, "pair %v met %d times", pair, count)
			}
		})
	}
}

func TestGenerateRoundRobin_HomeAwayBalanced(t *testing.T) {
	teams := []string{"A", "B", "C", "D", "E", "F"}
	home := make(map[string]int)
	for _, m := range Matches(GenerateRoundRobin(teams, competition.Boys)) {
		home[m.Home]++
	}
	for _, name := range teams {
		assert.GreaterOrEqual(t, home[name], 1, "team %s never plays at home", name)
		assert.LessOrEqual(t, home[name], 4, "team %s plays too many home games", name)
	}
}

func TestGenerateRoundRobin_Deterministic(t *testing.T) {
	teams := []string{"Pegasus", "Kúlan", "Dimma", "Jemen", "Fönix"}
	assert.Equal(t, GenerateRoundRobin(teams, competition.Boys), GenerateRoundRobin(teams, competition.Boys))

	boys := Matches(GenerateRoundRobin(teams, competition.Boys))
	girls := Matches(GenerateRoundRobin(teams, competition.Girls))
	require.Equal(t, len(boys), len(girls))
	for i := range boys {
		assert.NotEqual(t, boys[i].ID, girls[i].ID)
	}
}

func TestGenerateRoundRobin_TeamNamedByeIsScheduled(t *testing.T) {
	schedule := GenerateRoundRobin([]string{"BYE", "A", "B"}, competition.Boys)
	assert.Len(t, Matches(schedule), 3)
}

func TestFindMatch(t *testing.T) {
	schedule := GenerateRoundRobin([]string{"A", "B", "C"}, competition.Boys)
	first := schedule[0].Matches[0]

	got, ok := FindMatch(schedule, first.ID)
	require.True(t, ok)
	assert.Equal(t, first, got)

	_, ok = FindMatch(schedule, "boys__9__x__y")
	assert.False(t, ok)
}

func TestCloneSchedule(t *testing.T) {
	schedule := GenerateRoundRobin([]string{"A", "B"}, competition.Boys)
	clone := CloneSchedule(schedule)
	clone[0].Matches[0].Home = "Z"
	assert.Equal(t, "A", schedule[0].Matches[0].Home)
}
