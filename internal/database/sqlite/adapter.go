package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Lumos-Labs-HQ/kons-seed/internal/database/common"
	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

var pragmas = []string{
	"PRAGMA journal_mode=WAL",
	"PRAGMA foreign_keys=ON",
	"PRAGMA busy_timeout=5000",
}

type Adapter struct {
	*common.Store
	driver string
}

// New returns an adapter on the cgo driver (mattn/go-sqlite3).
func New() *Adapter {
	return NewWithDriver("sqlite3")
}

// NewWithDriver selects the database/sql driver: "sqlite3" for
// mattn/go-sqlite3 or "sqlite" for the pure Go modernc.org/sqlite.
func NewWithDriver(driver string) *Adapter {
	return &Adapter{driver: driver}
}

func Quote(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (s *Adapter) Connect(ctx context.Context, url string) error {
	dbPath := strings.TrimPrefix(url, "sqlite://")

	path := dbPath
	if idx := strings.Index(path, "?"); idx > 0 {
		path = path[:idx]
	}

	if dir := filepath.Dir(path); path != ":memory:" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create database directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open(s.driver, dbPath)
	if err != nil {
		return fmt.Errorf("failed to open SQLite connection: %w", err)
	}

	// A single connection keeps the pragmas in effect and avoids SQLITE_BUSY
	// between a unit transaction and the handle.
	db.SetMaxOpenConns(1)

	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			db.Close()
			return fmt.Errorf("failed to exec %q: %w", p, err)
		}
	}

	s.Store = common.NewStore(db, common.Dialect{
		Name:        "sqlite",
		Placeholder: squirrel.Question,
		Quote:       Quote,
	})
	return nil
}

func (s *Adapter) Close() error {
	if s.Store == nil {
		return nil
	}
	return s.Store.Close()
}
