package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/weathercard/backend/internal/domain"
)

// ThemeService owns the persisted dark mode preference
type ThemeService struct {
	store PreferenceStore

	// writeMu serializes change, persist and notify so the stored value
	// always matches the in-memory one
	writeMu sync.Mutex

	mu        sync.Mutex
	dark      bool
	observers []func(dark bool)
}

// NewThemeService creates a theme service defaulting to the light theme
func NewThemeService(store PreferenceStore) *ThemeService {
	return &ThemeService{store: store}
}

// OnChange registers fn to be called with the new value after every change,
// including the initial load. fn must not change the theme itself.
func (s *ThemeService) OnChange(fn func(dark bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// Dark reports whether the dark theme is active
func (s *ThemeService) Dark() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dark
}

// Load reads the stored preference. Missing or unreadable values fall back
// to the light theme; Load never fails.
func (s *ThemeService) Load(ctx context.Context) bool {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	dark := false

	raw, err := s.store.GetPreference(ctx, domain.ThemePreferenceKey)
	switch {
	case errors.Is(err, domain.ErrPreferenceNotFound):
		log.Debug().Msg("no stored theme preference, using light theme")
	case err != nil:
		log.Warn().Err(err).Msg("failed to read theme preference, using light theme")
	default:
		if decodeErr := json.Unmarshal([]byte(raw), &dark); decodeErr != nil {
			log.Warn().Str("value", raw).Msg("ignoring undecodable theme preference")
			dark = false
		}
	}

	// errors are logged by apply; the session continues either way
	_ = s.apply(ctx, dark)
	return dark
}

// Toggle flips the theme, persists it and notifies observers.
// The in-memory value changes even if persisting fails.
func (s *ThemeService) Toggle(ctx context.Context) (bool, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	dark := !s.Dark()
	return dark, s.apply(ctx, dark)
}

// Set assigns the theme explicitly
func (s *ThemeService) Set(ctx context.Context, dark bool) (bool, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	return dark, s.apply(ctx, dark)
}

// apply must be called with writeMu held
func (s *ThemeService) apply(ctx context.Context, dark bool) error {
	s.mu.Lock()
	s.dark = dark
	observers := make([]func(bool), len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	var persistErr error
	value, _ := json.Marshal(dark)
	if err := s.store.SavePreference(ctx, domain.ThemePreferenceKey, string(value)); err != nil {
		log.Error().Err(err).Bool("dark", dark).Msg("failed to persist theme preference")
		persistErr = fmt.Errorf("theme: failed to persist preference: %w", err)
	}

	for _, fn := range observers {
		fn(dark)
	}

	return persistErr
}
