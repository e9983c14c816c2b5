package tournament

import (
	"testing"
	"time"

	"github.com/riskibarqy/school-tournament/internal/domain/competition"
	"github.com/riskibarqy/school-tournament/internal/domain/fixture"
	"github.com/riskibarqy/school-tournament/internal/domain/score"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefault(t *testing.T) {
	s := NewDefault(DefaultSchools)

	assert.Equal(t, DefaultSchools, s.Schools)
	assert.Equal(t, competition.Boys, s.ActiveCompetition)
	assert.Nil(t, s.LastSaved)
	for _, c := range competition.All {
		cs := s.Competition(c)
		// Nine schools pad to ten slots: nine rounds of four matches.
		require.Len(t, cs.Schedule, 9)
		assert.Len(t, fixture.Matches(cs.Schedule), 36)
		assert.Empty(t, cs.Scores)
	}

	s.Schools[0] = "Changed"
	assert.Equal(t, "Pegasus", DefaultSchools[0])
}

func TestRegenerate_ClearsScoresForBothCompetitions(t *testing.T) {
	s := NewDefault([]string{"A", "B", "C"})
	boysMatch := s.Competition(competition.Boys).Schedule[0].Matches[0]
	girlsMatch := s.Competition(competition.Girls).Schedule[0].Matches[0]
	require.NoError(t, s.Competitions[competition.Boys].Scores.Set(boysMatch.ID, score.Score{HomeGoals: 1}))
	require.NoError(t, s.Competitions[competition.Girls].Scores.Set(girlsMatch.ID, score.Score{AwayGoals: 2}))

	next := Regenerate(s)

	assert.Empty(t, next.Competition(competition.Boys).Scores)
	assert.Empty(t, next.Competition(competition.Girls).Scores)
	assert.Equal(t, s.Competition(competition.Boys).Schedule, next.Competition(competition.Boys).Schedule)
	// The input is left untouched.
	assert.Len(t, s.Competition(competition.Boys).Scores, 1)
}

func TestWithSchools(t *testing.T) {
	s := NewDefault([]string{"A", "B"})
	next := WithSchools(s, []string{"X", "Y", "Z", "W"})

	assert.Equal(t, []string{"A", "B"}, s.Schools)
	assert.Equal(t, []string{"X", "Y", "Z", "W"}, next.Schools)
	assert.Len(t, next.Competition(competition.Girls).Schedule, 3)
}

func TestWithSchools_SingleSchoolHasNoSchedule(t *testing.T) {
	next := WithSchools(NewDefault(DefaultSchools), []string{"Only"})
	for _, c := range competition.All {
		assert.Empty(t, next.Competition(c).Schedule)
	}
}

func TestCompetition_MissingEntryIsEmpty(t *testing.T) {
	var s State
	cs := s.Competition(competition.Girls)
	assert.NotNil(t, cs.Schedule)
	assert.NotNil(t, cs.Scores)
}

func TestSaveStatus(t *testing.T) {
	var s State
	assert.Equal(t, "Not saved yet", s.SaveStatus())

	stamp := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	s.LastSaved = &stamp
	assert.Equal(t, "Saved • Last saved Sun, 01 Mar 2026 10:30:00 UTC", s.SaveStatus())
}
