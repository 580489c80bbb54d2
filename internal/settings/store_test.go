package settings

import (
	"context"
	"path/filepath"
	"testing"

	hosterrors "aperture/internal/infrastructure/errors"
	"aperture/internal/infrastructure/logging"
	"aperture/internal/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store := NewStore(logging.NewLogger(logging.LevelError))
	cfg := &Config{
		Path:          filepath.Join(t.TempDir(), "settings.db"),
		BusyTimeoutMs: 1000,
	}
	if err := store.Open(context.Background(), cfg); err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

func TestLoadFromEmptyStoreReturnsZeroState(t *testing.T) {
	store := openTestStore(t)

	state, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !state.IsZero() {
		t.Errorf("Load() from empty store = %+v, want zero state", state)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := openTestStore(t)

	want := types.WindowState{Width: 1024, Height: 768, X: 100, Y: 50, Maximized: true}
	if err := store.Save(context.Background(), want); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got != want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestSaveOverwritesPreviousState(t *testing.T) {
	store := openTestStore(t)

	first := types.WindowState{Width: 800, Height: 600}
	second := types.WindowState{Width: 1920, Height: 1080, X: 10, Y: 20}

	if err := store.Save(context.Background(), first); err != nil {
		t.Fatalf("Save(first) failed: %v", err)
	}
	if err := store.Save(context.Background(), second); err != nil {
		t.Fatalf("Save(second) failed: %v", err)
	}

	got, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got != second {
		t.Errorf("Load() = %+v, want %+v (single-row upsert)", got, second)
	}
}

func TestHealth(t *testing.T) {
	store := openTestStore(t)

	if err := store.Health(context.Background()); err != nil {
		t.Errorf("Health() on open store failed: %v", err)
	}
}

func TestOperationsOnClosedStore(t *testing.T) {
	store := NewStore(logging.NewLogger(logging.LevelError))

	if err := store.Health(context.Background()); !hosterrors.IsConnection(err) {
		t.Errorf("Health() on unopened store = %v, want connection error", err)
	}
	if _, err := store.Load(context.Background()); !hosterrors.IsConnection(err) {
		t.Errorf("Load() on unopened store = %v, want connection error", err)
	}
	if err := store.Save(context.Background(), types.WindowState{}); !hosterrors.IsConnection(err) {
		t.Errorf("Save() on unopened store = %v, want connection error", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("Close() on unopened store = %v, want nil", err)
	}
}

func TestOpenCreatesParentDirectory(t *testing.T) {
	store := NewStore(logging.NewLogger(logging.LevelError))
	cfg := &Config{
		Path:          filepath.Join(t.TempDir(), "nested", "dir", "settings.db"),
		BusyTimeoutMs: 1000,
	}
	if err := store.Open(context.Background(), cfg); err != nil {
		t.Fatalf("Open() with missing parent directory failed: %v", err)
	}
	store.Close()
}

func TestReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{Path: filepath.Join(dir, "settings.db"), BusyTimeoutMs: 1000}
	logger := logging.NewLogger(logging.LevelError)

	store := NewStore(logger)
	if err := store.Open(context.Background(), cfg); err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	want := types.WindowState{Width: 640, Height: 480}
	if err := store.Save(context.Background(), want); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	reopened := NewStore(logger)
	if err := reopened.Open(context.Background(), cfg); err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() after reopen failed: %v", err)
	}
	if got != want {
		t.Errorf("Load() after reopen = %+v, want %+v", got, want)
	}
}

func TestConfigForEnvironment(t *testing.T) {
	tests := []struct {
		environment string
		wantName    string
	}{
		{"production", "settings.db"},
		{"development", "settings-development.db"},
		{"test", "settings-test.db"},
	}

	for _, tt := range tests {
		cfg := ConfigForEnvironment(tt.environment, "/home/u/.config/app")
		if got := filepath.Base(cfg.Path); got != tt.wantName {
			t.Errorf("ConfigForEnvironment(%q) path base = %q, want %q",
				tt.environment, got, tt.wantName)
		}
		if cfg.BusyTimeoutMs <= 0 {
			t.Errorf("ConfigForEnvironment(%q) busy timeout = %d, want positive",
				tt.environment, cfg.BusyTimeoutMs)
		}
	}
}
