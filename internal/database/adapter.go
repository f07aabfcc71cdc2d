package database

import (
	"context"

	"github.com/Lumos-Labs-HQ/kons-seed/internal/database/common"
	"github.com/Lumos-Labs-HQ/kons-seed/internal/types"
)

// Tx is a unit of work. Rows inserted through it become visible on Commit.
type Tx = common.Tx

type DatabaseAdapter interface {
	Connect(ctx context.Context, url string) error
	Close() error

	Begin(ctx context.Context) (Tx, error)

	// Prerequisite lookups
	ListUserIDs(ctx context.Context) ([]int64, error)
	ListProducts(ctx context.Context) ([]types.ProductRow, error)
	CountRows(ctx context.Context, table string) (int, error)

	// ExecScript runs a semicolon separated SQL script statement by statement.
	ExecScript(ctx context.Context, script string) error
}
