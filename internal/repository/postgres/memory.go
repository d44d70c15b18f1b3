package postgres

import (
	"context"
	"sync"

	"github.com/rupeerewind/backend/internal/domain"
)

// MemoryRepository implements domain.DataRepository in process memory.
// Used when no database is configured and in tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	prefs map[string]map[string]string
	logs  []domain.CalculationLog
}

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{prefs: make(map[string]map[string]string)}
}

// GetPreference reads one preference value for a client
func (r *MemoryRepository) GetPreference(ctx context.Context, clientID, key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.prefs[clientID][key]
	return v, ok, nil
}

// SetPreference stores one preference value for a client
func (r *MemoryRepository) SetPreference(ctx context.Context, clientID, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.prefs[clientID] == nil {
		r.prefs[clientID] = make(map[string]string)
	}
	r.prefs[clientID][key] = value
	return nil
}

// SaveCalculationLog appends the entry
func (r *MemoryRepository) SaveCalculationLog(ctx context.Context, entry domain.CalculationLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.logs = append(r.logs, entry)
	return nil
}

// CalculationLogs returns a copy of the saved entries
func (r *MemoryRepository) CalculationLogs() []domain.CalculationLog {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.CalculationLog, len(r.logs))
	copy(out, r.logs)
	return out
}

// Health always returns nil in memory mode
func (r *MemoryRepository) Health(ctx context.Context) error {
	return nil
}
