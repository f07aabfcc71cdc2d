package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Lumos-Labs-HQ/kons-seed/internal/database/common"
	"github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/lib/pq"
)

type Adapter struct {
	*common.Store
}

func New() *Adapter {
	return &Adapter{}
}

// Quote quotes an identifier. The shop schema uses mixed case names and a
// table called User, so every identifier is quoted.
func Quote(name string) string {
	return pq.QuoteIdentifier(name)
}

func (p *Adapter) Connect(ctx context.Context, url string) error {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return fmt.Errorf("failed to open PostgreSQL connection: %w", err)
	}

	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(15 * time.Minute)
	db.SetConnMaxIdleTime(3 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	p.Store = common.NewStore(db, common.Dialect{
		Name:        "postgresql",
		Placeholder: squirrel.Dollar,
		Quote:       Quote,
		Returning:   true,
	})
	return nil
}

func (p *Adapter) Close() error {
	if p.Store == nil {
		return nil
	}
	return p.Store.Close()
}
