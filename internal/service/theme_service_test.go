package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/weathercard/backend/internal/domain"
)

// MockPreferenceStore implements PreferenceStore for testing
type MockPreferenceStore struct {
	mu      sync.Mutex
	values  map[string]string
	getErr  error
	saveErr error
	saves   int

	// delayNextSave stalls the next SavePreference call once
	delayNextSave time.Duration
}

func newMockPreferenceStore() *MockPreferenceStore {
	return &MockPreferenceStore{values: make(map[string]string)}
}

func (m *MockPreferenceStore) GetPreference(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return "", m.getErr
	}
	v, ok := m.values[key]
	if !ok {
		return "", domain.ErrPreferenceNotFound
	}
	return v, nil
}

func (m *MockPreferenceStore) SavePreference(ctx context.Context, key, value string) error {
	m.mu.Lock()
	delay := m.delayNextSave
	m.delayNextSave = 0
	m.mu.Unlock()
	time.Sleep(delay)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.values[key] = value
	return nil
}

func (m *MockPreferenceStore) Health(ctx context.Context) error { return nil }

func (m *MockPreferenceStore) Close() error { return nil }

func (m *MockPreferenceStore) stored() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[domain.ThemePreferenceKey]
}

func TestThemeLoad_DefaultsAndPersists(t *testing.T) {
	store := newMockPreferenceStore()
	svc := NewThemeService(store)

	var notified []bool
	svc.OnChange(func(dark bool) { notified = append(notified, dark) })

	if dark := svc.Load(context.Background()); dark {
		t.Error("expected light theme by default")
	}
	if got := store.stored(); got != "false" {
		t.Errorf("expected default to be written as %q, got %q", "false", got)
	}
	if len(notified) != 1 || notified[0] {
		t.Errorf("expected one notification with false, got %v", notified)
	}
}

func TestThemeLoad_FallsBackOnBadValues(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		getErr error
	}{
		{"not json", "yes please", nil},
		{"json string", `"true"`, nil},
		{"empty", "", nil},
		{"read error", "", errors.New("disk unplugged")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMockPreferenceStore()
			store.values[domain.ThemePreferenceKey] = tt.stored
			store.getErr = tt.getErr

			svc := NewThemeService(store)
			if svc.Load(context.Background()) {
				t.Error("expected fallback to light theme")
			}
			if svc.Dark() {
				t.Error("expected Dark() to be false")
			}
		})
	}
}

func TestThemeToggle_DoubleToggleIsIdentity(t *testing.T) {
	store := newMockPreferenceStore()
	svc := NewThemeService(store)
	ctx := context.Background()
	initial := svc.Load(ctx)

	first, err := svc.Toggle(ctx)
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if first == initial {
		t.Error("expected first toggle to flip the theme")
	}

	second, err := svc.Toggle(ctx)
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if second != initial {
		t.Errorf("expected double toggle to restore %v, got %v", initial, second)
	}
	if got := store.stored(); got != "false" {
		t.Errorf("expected stored value false, got %q", got)
	}
}

func TestThemeToggle_SurvivesRestart(t *testing.T) {
	store := newMockPreferenceStore()
	ctx := context.Background()

	session1 := NewThemeService(store)
	session1.Load(ctx)
	written, err := session1.Toggle(ctx)
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}

	session2 := NewThemeService(store)
	if read := session2.Load(ctx); read != written {
		t.Errorf("expected restarted session to read %v, got %v", written, read)
	}
}

func TestThemeToggle_PersistFailureStillFlips(t *testing.T) {
	store := newMockPreferenceStore()
	svc := NewThemeService(store)
	ctx := context.Background()
	svc.Load(ctx)

	store.saveErr = errors.New("read-only")

	var notified bool
	svc.OnChange(func(dark bool) { notified = dark })

	dark, err := svc.Toggle(ctx)
	if err == nil {
		t.Error("expected persistence error to be returned")
	}
	if !dark || !svc.Dark() {
		t.Error("expected in-memory theme to flip despite the error")
	}
	if !notified {
		t.Error("expected observers to be notified")
	}
}

func TestThemeSet(t *testing.T) {
	store := newMockPreferenceStore()
	svc := NewThemeService(store)

	if _, err := svc.Set(context.Background(), true); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if !svc.Dark() {
		t.Error("expected dark theme")
	}
	if got := store.stored(); got != "true" {
		t.Errorf("expected stored value true, got %q", got)
	}
}

func TestThemeToggle_ConcurrentTogglesStayConsistent(t *testing.T) {
	store := newMockPreferenceStore()
	svc := NewThemeService(store)
	ctx := context.Background()
	initial := svc.Load(ctx)

	store.mu.Lock()
	store.delayNextSave = 100 * time.Millisecond
	store.mu.Unlock()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, _ = svc.Toggle(ctx)
	}()
	time.Sleep(20 * time.Millisecond)
	go func() {
		defer wg.Done()
		_, _ = svc.Toggle(ctx)
	}()
	wg.Wait()

	if svc.Dark() != initial {
		t.Errorf("expected two toggles to restore %v, got %v", initial, svc.Dark())
	}
	if got, want := store.stored(), "false"; got != want {
		t.Errorf("stored value %q does not match in-memory theme %q", got, want)
	}

	reloaded := NewThemeService(store)
	if dark := reloaded.Load(ctx); dark != svc.Dark() {
		t.Errorf("expected restart to read %v, got %v", svc.Dark(), dark)
	}
}
