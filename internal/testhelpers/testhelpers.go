package testhelpers

import (
	"context"
	_ "embed"
	"path/filepath"
	"testing"

	"github.com/Lumos-Labs-HQ/kons-seed/internal/database/sqlite"
)

//go:embed schema.sql
var Schema string

// NewTestAdapter returns a SQLite adapter on a fresh file in t.TempDir with
// the shop schema applied. It uses the pure Go driver so tests run without
// cgo. The adapter is closed when the test completes.
func NewTestAdapter(t *testing.T) *sqlite.Adapter {
	t.Helper()

	adapter := sqlite.NewWithDriver("sqlite")
	url := "sqlite://" + filepath.Join(t.TempDir(), "db", "db.sqlite")
	if err := adapter.Connect(context.Background(), url); err != nil {
		t.Fatalf("open test database: %v", err)
	}

	t.Cleanup(func() {
		_ = adapter.Close()
	})

	if err := adapter.ExecScript(context.Background(), Schema); err != nil {
		t.Fatalf("apply schema: %v", err)
	}

	return adapter
}

// CountRows fails the test if the table cannot be counted.
func CountRows(t *testing.T, adapter *sqlite.Adapter, table string) int {
	t.Helper()

	n, err := adapter.CountRows(context.Background(), table)
	if err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}
