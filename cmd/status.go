package cmd

import (
	"fmt"

	"github.com/Lumos-Labs-HQ/kons-seed/internal/database/common"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show how many rows each shop table holds",
	Long: `Show the row count of the User, Product, StoreTransaction and
TransactionItem tables. Transactions can only be generated once users and
products exist.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		adapter, err := openAdapter(ctx, cfg)
		if err != nil {
			return err
		}
		defer adapter.Close()

		cmd.SilenceUsage = true

		counts := make(map[string]int, len(common.Tables))
		color.Cyan("📊 Database status (%s)", cfg.Database.Provider)
		for _, table := range common.Tables {
			n, err := adapter.CountRows(ctx, table)
			if err != nil {
				return err
			}
			counts[table] = n
			fmt.Printf("   %-18s %d\n", table, n)
		}

		fmt.Println()
		switch {
		case counts[common.TableUser] == 0:
			color.Yellow("💡 No users yet: seed --type user <count>")
		case counts[common.TableProduct] == 0:
			color.Yellow("💡 No products yet: seed --type product <count>")
		default:
			color.Green("✅ Ready for transactions")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
