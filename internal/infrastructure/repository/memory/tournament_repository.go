package memory

import (
	"context"
	"sync"
)

// TournamentRepository keeps encoded tournament records in process memory.
type TournamentRepository struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func NewTournamentRepository(seed map[string][]byte) *TournamentRepository {
	records := make(map[string][]byte, len(seed))
	for key, value := range seed {
		records[key] = cloneBytes(value)
	}

	return &TournamentRepository{records: records}
}

func (r *TournamentRepository) Get(_ context.Context, key string) ([]byte, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.records[key]
	if !ok {
		return nil, false, nil
	}
	return cloneBytes(value), true, nil
}

func (r *TournamentRepository) Put(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[key] = cloneBytes(value)
	return nil
}

func cloneBytes(in []byte) []byte {
	out := make([]byte, len(in))
	copy(out, in)
	return out
}
