package postgres

import (
	"context"
	"sync"

	"github.com/weathercard/backend/internal/domain"
)

// MockRepository implements domain.PreferenceStore in memory for demo mode.
// Values live only as long as the process.
type MockRepository struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMockRepository creates a new mock repository
func NewMockRepository() *MockRepository {
	return &MockRepository{values: make(map[string]string)}
}

// GetPreference returns the in-memory value
func (r *MockRepository) GetPreference(ctx context.Context, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.values[key]
	if !ok {
		return "", domain.ErrPreferenceNotFound
	}
	return value, nil
}

// SavePreference stores the value in memory
func (r *MockRepository) SavePreference(ctx context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
	return nil
}

// Health always returns nil in mock mode
func (r *MockRepository) Health(ctx context.Context) error {
	return nil
}

// Close is a no-op in mock mode
func (r *MockRepository) Close() error {
	return nil
}
