package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const DefaultSQLiteURL = "sqlite://db/db.sqlite"

type Config struct {
	Database   Database   `json:"database" mapstructure:"database"`
	Assets     Assets     `json:"assets" mapstructure:"assets"`
	Images     Images     `json:"images" mapstructure:"images"`
	Generation Generation `json:"generation" mapstructure:"generation"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
	Driver   string `json:"driver,omitempty" mapstructure:"driver"` // sqlite only: "sqlite3" (cgo) or "sqlite" (pure Go)
}

type Assets struct {
	ProductsFile string `json:"products_file" mapstructure:"products_file"`
	NamesFile    string `json:"names_file" mapstructure:"names_file"`
}

type Images struct {
	Endpoint    string `json:"endpoint" mapstructure:"endpoint"`
	Dir         string `json:"dir" mapstructure:"dir"`
	Size        int    `json:"size" mapstructure:"size"`
	Format      string `json:"format" mapstructure:"format"`
	ScratchFile string `json:"scratch_file" mapstructure:"scratch_file"`
	Timeout     int    `json:"timeout,omitempty" mapstructure:"timeout"` // seconds, 0 = no timeout
}

type Generation struct {
	MaxProducts        int     `json:"max_products" mapstructure:"max_products"`
	MaxStock           int     `json:"max_stock" mapstructure:"max_stock"`
	EmailSuffix        string  `json:"email_suffix" mapstructure:"email_suffix"`
	DepositProbability float64 `json:"deposit_probability" mapstructure:"deposit_probability"`
	DepositMin         int     `json:"deposit_min" mapstructure:"deposit_min"`
	DepositMax         int     `json:"deposit_max" mapstructure:"deposit_max"`
	MaxItems           int     `json:"max_items" mapstructure:"max_items"`
	MaxQuantity        int     `json:"max_quantity" mapstructure:"max_quantity"`
	BackdateDays       int     `json:"backdate_days" mapstructure:"backdate_days"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Database.Provider == "" {
		c.Database.Provider = "sqlite"
	}
	if c.Database.URLEnv == "" {
		c.Database.URLEnv = "DATABASE_URL"
	}
	if c.Database.Driver == "" && c.IsSQLite() {
		c.Database.Driver = "sqlite3"
	}

	if c.Assets.ProductsFile == "" {
		c.Assets.ProductsFile = "scripts/dogs_metadata.json"
	}
	if c.Assets.NamesFile == "" {
		c.Assets.NamesFile = "scripts/names.json"
	}

	if c.Images.Endpoint == "" {
		c.Images.Endpoint = "https://dog.ceo/api/breeds/image/random"
	}
	if c.Images.Dir == "" {
		c.Images.Dir = "db/uploads/images/product"
	}
	if c.Images.Size == 0 {
		c.Images.Size = 512
	}
	if c.Images.Format == "" {
		c.Images.Format = "webp"
	}
	c.Images.Format = strings.ToLower(c.Images.Format)
	if c.Images.ScratchFile == "" {
		c.Images.ScratchFile = filepath.Join(os.TempDir(), "kons-seed-image")
	}

	g := &c.Generation
	if g.MaxProducts == 0 {
		g.MaxProducts = 70
	}
	if g.MaxStock == 0 && !viper.IsSet("generation.max_stock") {
		g.MaxStock = 100
	}
	if g.EmailSuffix == "" {
		g.EmailSuffix = "@example.com"
	}
	if g.DepositProbability == 0 && !viper.IsSet("generation.deposit_probability") {
		g.DepositProbability = 0.2
	}
	if g.DepositMin == 0 {
		g.DepositMin = 50
	}
	if g.DepositMax == 0 {
		g.DepositMax = 500
	}
	if g.MaxItems == 0 {
		g.MaxItems = 3
	}
	if g.MaxQuantity == 0 {
		g.MaxQuantity = 3
	}
	if g.BackdateDays == 0 && !viper.IsSet("generation.backdate_days") {
		g.BackdateDays = 90
	}
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		if c.IsSQLite() {
			return DefaultSQLiteURL, nil
		}
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

func (c *Config) Validate() error {
	supportedProviders := []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"}
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	if c.IsSQLite() && c.Database.Driver != "sqlite3" && c.Database.Driver != "sqlite" {
		return fmt.Errorf("unsupported sqlite driver: %s (use sqlite3 or sqlite)", c.Database.Driver)
	}

	if c.Images.Format != "webp" && c.Images.Format != "png" {
		return fmt.Errorf("unsupported image format: %s (use webp or png)", c.Images.Format)
	}
	if c.Images.Size <= 0 {
		return fmt.Errorf("images.size must be positive, got %d", c.Images.Size)
	}
	if c.Images.Timeout < 0 {
		return fmt.Errorf("images.timeout cannot be negative")
	}

	g := c.Generation
	if g.DepositProbability < 0 || g.DepositProbability > 1 {
		return fmt.Errorf("generation.deposit_probability must be within [0, 1], got %v", g.DepositProbability)
	}
	if g.DepositMin <= 0 || g.DepositMax < g.DepositMin {
		return fmt.Errorf("generation deposit range [%d, %d] is invalid", g.DepositMin, g.DepositMax)
	}
	if g.MaxProducts <= 0 || g.MaxStock < 0 || g.MaxItems <= 0 || g.MaxQuantity <= 0 || g.BackdateDays < 0 {
		return fmt.Errorf("generation limits must be positive")
	}

	return nil
}

func (c *Config) IsSQLite() bool {
	return c.Database.Provider == "sqlite" || c.Database.Provider == "sqlite3"
}

// ImageExt is the file extension written for product thumbnails.
func (c *Config) ImageExt() string {
	return c.Images.Format
}

// EnsureDirectories creates the image output directory.
func (c *Config) EnsureDirectories() error {
	if c.Images.Dir == "" || c.Images.Dir == "." {
		return nil
	}
	if err := os.MkdirAll(c.Images.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", c.Images.Dir, err)
	}
	return nil
}
