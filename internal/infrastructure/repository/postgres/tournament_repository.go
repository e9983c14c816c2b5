package postgres

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/school-tournament/internal/platform/resilience"
	qb "github.com/riskibarqy/school-tournament/internal/platform/querybuilder"
)

// TournamentRepository stores encoded tournament records keyed by storage
// key in the tournament_records table.
type TournamentRepository struct {
	db      *sqlx.DB
	breaker *resilience.CircuitBreaker
	now     func() time.Time
}

func NewTournamentRepository(db *sqlx.DB, breaker *resilience.CircuitBreaker) *TournamentRepository {
	return &TournamentRepository{
		db:      db,
		breaker: breaker,
		now:     time.Now,
	}
}

func (r *TournamentRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query, args, err := selectTournamentRecordQuery(key)
	if err != nil {
		return nil, false, crerr.Wrap(err, "build select tournament record query")
	}

	var (
		row    tournamentRecordTableModel
		exists = true
	)
	err = r.breaker.Execute(func() error {
		if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
			if isNotFound(err) {
				exists = false
				return nil
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, false, crerr.Wrapf(err, "select tournament record key=%s", key)
	}
	if !exists {
		return nil, false, nil
	}

	return row.Payload, true, nil
}

func (r *TournamentRepository) Put(ctx context.Context, key string, value []byte) error {
	query, args, err := upsertTournamentRecordQuery(tournamentRecordTableModel{
		StorageKey: key,
		Payload:    value,
		UpdatedAt:  r.now().UTC(),
	})
	if err != nil {
		return crerr.Wrap(err, "build upsert tournament record query")
	}

	err = r.breaker.Execute(func() error {
		_, err := r.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		return crerr.Wrapf(err, "upsert tournament record key=%s", key)
	}

	return nil
}

func selectTournamentRecordQuery(key string) (string, []any, error) {
	return qb.Select("storage_key", "payload", "updated_at").
		From(tournamentRecordsTable).
		Where(qb.Eq("storage_key", key)).
		Limit(1).
		ToSQL()
}

func upsertTournamentRecordQuery(row tournamentRecordTableModel) (string, []any, error) {
	return qb.InsertInto(tournamentRecordsTable).
		Columns("storage_key", "payload", "updated_at").
		Values(row.StorageKey, string(row.Payload), row.UpdatedAt).
		OnConflictUpdate([]string{"storage_key"}, "payload", "updated_at").
		ToSQL()
}
