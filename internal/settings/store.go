package settings

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	hosterrors "aperture/internal/infrastructure/errors"
	"aperture/internal/infrastructure/logging"
	"aperture/internal/types"
)

// schema is the complete settings schema. A single-row table is enough for a
// single-window shell; the CHECK keeps it that way.
const schema = `
CREATE TABLE IF NOT EXISTS window_state (
	id         INTEGER PRIMARY KEY CHECK (id = 1),
	width      INTEGER NOT NULL,
	height     INTEGER NOT NULL,
	x          INTEGER NOT NULL,
	y          INTEGER NOT NULL,
	maximized  INTEGER NOT NULL,
	updated_at TEXT NOT NULL DEFAULT (datetime('now'))
);`

// Store persists window state in a local SQLite database.
//
// Lifecycle:
//  1. Create with NewStore()
//  2. Open() connects and migrates
//  3. Load()/Save() as needed
//  4. Close() releases the connection
type Store struct {
	db     *sql.DB
	config *Config
	logger logging.Logger
	retry  *hosterrors.RetryConfig
	mu     sync.Mutex
}

// NewStore creates a new settings store
func NewStore(logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return &Store{
		logger: logger,
		retry:  hosterrors.DefaultRetryConfig(),
	}
}

// Open connects to the settings database, creating the parent directory and
// schema as needed. An already-open store is closed first.
func (s *Store) Open(ctx context.Context, config *Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("Failed to close existing settings database", "error", err)
		}
		s.db = nil
	}

	if err := os.MkdirAll(filepath.Dir(config.Path), 0o755); err != nil {
		return hosterrors.NewHostErrorWithContext("Open", err, hosterrors.ErrCodeConnection,
			map[string]string{"path": config.Path})
	}

	db, err := sql.Open("sqlite3", config.ConnectionString())
	if err != nil {
		return hosterrors.NewStoreError("Open", err)
	}

	// SQLite serializes writers anyway; a single connection avoids
	// SQLITE_BUSY between our own connections.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return hosterrors.NewStoreError("Open", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return hosterrors.NewHostErrorWithContext("Open", err, hosterrors.ErrCodeSchema,
			map[string]string{"path": config.Path})
	}

	s.db = db
	s.config = config
	s.logger.Info("Opened settings store", "path", config.Path)
	return nil
}

// Close closes the settings database
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return hosterrors.NewStoreError("Close", err)
	}
	s.db = nil
	s.logger.Info("Closed settings store")
	return nil
}

// Health checks the store connection
func (s *Store) Health(ctx context.Context) error {
	s.mu.Lock()
	db := s.db
	s.mu.Unlock()

	if db == nil {
		return hosterrors.NewHostError("Health",
			fmt.Errorf("settings store not open"), hosterrors.ErrCodeConnection)
	}

	var result int
	if err := db.QueryRowContext(ctx, "SELECT 1").Scan(&result); err != nil {
		return hosterrors.NewStoreError("Health", err)
	}
	return nil
}

// Load returns the saved window state. A store that has never saved anything
// returns the zero state and no error.
func (s *Store) Load(ctx context.Context) (types.WindowState, error) {
	s.mu.Lock()
	db := s.db
	s.mu.Unlock()

	if db == nil {
		return types.WindowState{}, hosterrors.NewHostError("Load",
			fmt.Errorf("settings store not open"), hosterrors.ErrCodeConnection)
	}

	var state types.WindowState
	var maximized int

	err := db.QueryRowContext(ctx,
		"SELECT width, height, x, y, maximized FROM window_state WHERE id = 1").
		Scan(&state.Width, &state.Height, &state.X, &state.Y, &maximized)
	if err == sql.ErrNoRows {
		return types.WindowState{}, nil
	}
	if err != nil {
		return types.WindowState{}, hosterrors.NewStoreError("Load", err)
	}

	state.Maximized = maximized != 0
	return state, nil
}

// Save upserts the window state, retrying transient busy/locked failures
func (s *Store) Save(ctx context.Context, state types.WindowState) error {
	s.mu.Lock()
	db := s.db
	retry := s.retry
	s.mu.Unlock()

	if db == nil {
		return hosterrors.NewHostError("Save",
			fmt.Errorf("settings store not open"), hosterrors.ErrCodeConnection)
	}

	maximized := 0
	if state.Maximized {
		maximized = 1
	}

	return hosterrors.WithRetry(ctx, retry, func() error {
		_, err := db.ExecContext(ctx, `
			INSERT INTO window_state (id, width, height, x, y, maximized, updated_at)
			VALUES (1, ?, ?, ?, ?, ?, datetime('now'))
			ON CONFLICT(id) DO UPDATE SET
				width = excluded.width,
				height = excluded.height,
				x = excluded.x,
				y = excluded.y,
				maximized = excluded.maximized,
				updated_at = excluded.updated_at`,
			state.Width, state.Height, state.X, state.Y, maximized)
		if err != nil {
			return hosterrors.NewStoreError("Save", err)
		}
		return nil
	})
}
