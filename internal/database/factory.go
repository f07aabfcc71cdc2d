package database

import (
	"github.com/Lumos-Labs-HQ/kons-seed/internal/config"
	"github.com/Lumos-Labs-HQ/kons-seed/internal/database/mysql"
	"github.com/Lumos-Labs-HQ/kons-seed/internal/database/postgres"
	"github.com/Lumos-Labs-HQ/kons-seed/internal/database/sqlite"
)

func NewAdapter(provider string) DatabaseAdapter {
	switch provider {
	case "postgresql", "postgres":
		return postgres.New()
	case "mysql":
		return mysql.New()
	case "sqlite", "sqlite3":
		return sqlite.New()
	default:
		return sqlite.New()
	}
}

// NewAdapterFromConfig is NewAdapter honouring database.driver for sqlite.
func NewAdapterFromConfig(cfg *config.Config) DatabaseAdapter {
	if cfg.IsSQLite() && cfg.Database.Driver != "" {
		return sqlite.NewWithDriver(cfg.Database.Driver)
	}
	return NewAdapter(cfg.Database.Provider)
}
