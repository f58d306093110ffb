package domain

import (
	"context"
)

// ThemePreferenceKey is the preference key holding the JSON-encoded dark mode flag
const ThemePreferenceKey = "darkMode"

// PreferenceStore defines the interface for durable UI preferences.
// This follows the Dependency Inversion Principle - domain defines the interface
type PreferenceStore interface {
	// GetPreference returns the stored value, or ErrPreferenceNotFound
	GetPreference(ctx context.Context, key string) (string, error)

	// SavePreference writes a value; last write wins
	SavePreference(ctx context.Context, key, value string) error

	// Health checks storage connectivity
	Health(ctx context.Context) error

	// Close releases the underlying connection
	Close() error
}
