package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/logging"
)

// ErrDatabaseClosed is returned by LazyDB.DB after Close.
var ErrDatabaseClosed = errors.New("layout database closed")

// LazyDB opens the layout store on first use. Commands like `config path`
// never pay for the WASM runtime or the migrations.
type LazyDB struct {
	path string

	mu     sync.Mutex
	db     *sql.DB
	err    error
	closed bool
}

var _ port.DatabaseProvider = (*LazyDB)(nil)

// NewLazyDB returns a provider for the database at path. Nothing is opened yet.
func NewLazyDB(path string) *LazyDB {
	return &LazyDB{path: path}
}

// DB opens and migrates the database the first time it is called and
// returns the same handle afterwards. A failed open is not retried.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch {
	case l.closed:
		return nil, ErrDatabaseClosed
	case l.db != nil:
		return l.db, nil
	case l.err != nil:
		return nil, l.err
	}

	log := logging.FromContext(ctx)
	db, err := NewConnection(ctx, l.path)
	if err != nil {
		l.err = fmt.Errorf("open layout database %s: %w", l.path, err)
		log.Error().Err(err).Str("path", l.path).Msg("layout database unavailable")
		return nil, l.err
	}
	l.db = db
	return db, nil
}

// Close releases the connection. Later DB calls fail with ErrDatabaseClosed.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
	db := l.db
	l.db = nil
	return Close(db)
}

// IsInitialized reports whether the database is open.
func (l *LazyDB) IsInitialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.db != nil
}

// Path returns the database file.
func (l *LazyDB) Path() string {
	return l.path
}
