package postgres

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectTournamentRecordQuery(t *testing.T) {
	query, args, err := selectTournamentRecordQuery("school-football-tournament-v1")
	require.NoError(t, err)

	assert.Equal(t, "SELECT storage_key, payload, updated_at FROM tournament_records WHERE storage_key = $1 LIMIT 1", query)
	assert.Equal(t, []any{"school-football-tournament-v1"}, args)
}

func TestUpsertTournamentRecordQuery(t *testing.T) {
	updatedAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	query, args, err := upsertTournamentRecordQuery(tournamentRecordTableModel{
		StorageKey: "k1",
		Payload:    []byte(`{"schools":[]}`),
		UpdatedAt:  updatedAt,
	})
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO tournament_records (storage_key, payload, updated_at) VALUES ($1, $2, $3) "+
			"ON CONFLICT (storage_key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at",
		query,
	)
	require.Len(t, args, 3)
	assert.Equal(t, "k1", args[0])
	assert.Equal(t, `{"schools":[]}`, args[1])
	assert.Equal(t, updatedAt, args[2])
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(sql.ErrNoRows))
	assert.True(t, isNotFound(fmt.Errorf("get: %w", sql.ErrNoRows)))
	assert.False(t, isNotFound(fmt.Errorf("pq: relation tournament_records does not exist")))
}
