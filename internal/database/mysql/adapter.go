package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Lumos-Labs-HQ/kons-seed/internal/database/common"
	"github.com/Masterminds/squirrel"
	_ "github.com/go-sql-driver/mysql"
)

var sslModes = strings.NewReplacer(
	"ssl-mode=REQUIRED", "tls=skip-verify",
	"ssl-mode=DISABLED", "tls=false",
	"ssl-mode=VERIFY_CA", "tls=true",
	"ssl-mode=VERIFY_IDENTITY", "tls=true",
	"sslmode=require", "tls=skip-verify",
	"sslmode=disable", "tls=false",
	"sslmode=verify-ca", "tls=true",
	"sslmode=verify-full", "tls=true",
)

type Adapter struct {
	*common.Store
}

func New() *Adapter {
	return &Adapter{}
}

func Quote(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

// ParseDSN turns a mysql:// URL into a go-sql-driver DSN. Plain DSNs are
// returned unchanged.
func ParseDSN(url string) string {
	if !strings.HasPrefix(url, "mysql://") {
		return url
	}

	dsn := strings.TrimPrefix(url, "mysql://")
	atIndex := strings.LastIndex(dsn, "@")
	if atIndex <= 0 {
		return dsn
	}

	credentials := dsn[:atIndex]
	remainder := dsn[atIndex+1:]

	slashIndex := strings.Index(remainder, "/")
	if slashIndex <= 0 {
		return dsn
	}

	hostPort := remainder[:slashIndex]
	dbAndParams := sslModes.Replace(remainder[slashIndex+1:])

	return fmt.Sprintf("%s@tcp(%s)/%s", credentials, hostPort, dbAndParams)
}

func (m *Adapter) Connect(ctx context.Context, url string) error {
	db, err := sql.Open("mysql", ParseDSN(url))
	if err != nil {
		return fmt.Errorf("failed to open MySQL connection: %w", err)
	}

	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(15 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("failed to connect to MySQL: %w", err)
	}

	m.Store = common.NewStore(db, common.Dialect{
		Name:        "mysql",
		Placeholder: squirrel.Question,
		Quote:       Quote,
	})
	return nil
}

func (m *Adapter) Close() error {
	if m.Store == nil {
		return nil
	}
	return m.Store.Close()
}
