package postgres

import "time"

const tournamentRecordsTable = "tournament_records"

type tournamentRecordTableModel struct {
	StorageKey string    `db:"storage_key"`
	Payload    []byte    `db:"payload"`
	UpdatedAt  time.Time `db:"updated_at"`
}
