package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/Lumos-Labs-HQ/kons-seed/internal/config"
	"github.com/Lumos-Labs-HQ/kons-seed/internal/database"
	"github.com/Lumos-Labs-HQ/kons-seed/internal/seeder"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	dataType string
	randSeed int64
	verbose  bool
	Version  = "0.3.0"
)

var rootCmd = &cobra.Command{
	Use:   "seed --type {product|user|transaction} <count>",
	Short: "Fill the kons shop database with mock data",
	Long: `
Seed generates mock products, users and store transactions for the kons shop.

Products get a square thumbnail made from a random dog photo and are limited
to 70 per run. Transactions need existing users and products, so seed those
first:

  seed --type user 50
  seed --type product 40
  seed --type transaction 500`,
	Args:          validateArgs,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion, _ := cmd.Flags().GetBool("version"); showVersion {
			fmt.Printf("seed version %s\n", Version)
			return nil
		}

		err := runSeed(cmd, args)
		// Usage is only worth printing when the arguments were wrong.
		cmd.SilenceUsage = err == nil || !seeder.IsUsageError(err)
		return err
	},
}

func runSeed(cmd *cobra.Command, args []string) error {
	kind, count, err := parseRequest(dataType, args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts := []seeder.Option{seeder.WithLogger(newLogger())}
	if cmd.Flags().Changed("seed") {
		opts = append(opts, seeder.WithSeed(randSeed))
	}

	adapter := database.NewAdapterFromConfig(cfg)
	s := seeder.New(cfg, adapter, opts...)
	if err := s.Validate(kind, count); err != nil {
		return err
	}

	ctx := cmd.Context()
	if err := connect(ctx, cfg, adapter); err != nil {
		return err
	}
	defer adapter.Close()

	summary, err := s.Run(ctx, kind, count)
	if err != nil {
		return err
	}

	color.Green("🌱 Seeded %d %s(s)", summary.Inserted, summary.Kind)
	return nil
}

// Execute runs the root command. Usage is printed for argument errors only.
func Execute() error {
	return rootCmd.Execute()
}

func validateArgs(cmd *cobra.Command, args []string) error {
	if showVersion, _ := cmd.Flags().GetBool("version"); showVersion {
		return nil
	}
	_, _, err := parseRequest(dataType, args)
	return err
}

func parseRequest(typeFlag string, args []string) (seeder.Kind, int, error) {
	if typeFlag == "" {
		return "", 0, fmt.Errorf("%w: --type is required", seeder.ErrUnknownKind)
	}
	kind, err := seeder.ParseKind(typeFlag)
	if err != nil {
		return "", 0, err
	}

	if len(args) != 1 {
		return "", 0, fmt.Errorf("%w: expected exactly one count argument, got %d", seeder.ErrInvalidCount, len(args))
	}
	count, err := strconv.Atoi(args[0])
	if err != nil || count <= 0 {
		return "", 0, fmt.Errorf("%w, got %q", seeder.ErrInvalidCount, args[0])
	}

	return kind, count, nil
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func openAdapter(ctx context.Context, cfg *config.Config) (database.DatabaseAdapter, error) {
	adapter := database.NewAdapterFromConfig(cfg)
	if err := connect(ctx, cfg, adapter); err != nil {
		return nil, err
	}
	return adapter, nil
}

func connect(ctx context.Context, cfg *config.Config, adapter database.DatabaseAdapter) error {
	dbURL, err := cfg.GetDatabaseURL()
	if err != nil {
		return err
	}
	return adapter.Connect(ctx, dbURL)
}

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./seed.config.json)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log every generated row to stderr")

	rootCmd.Flags().StringVarP(&dataType, "type", "t", "", "Kind of data to generate: product, user or transaction")
	rootCmd.Flags().Int64Var(&randSeed, "seed", 0, "Random seed for a reproducible run")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env")
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("seed.config")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			fmt.Fprintln(os.Stderr, color.YellowString("⚠️  Could not read %s: %v", cfgFile, err))
		}
	}
}
