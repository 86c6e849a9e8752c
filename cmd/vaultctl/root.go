package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dimitrije/sharevault/internal/database"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	flagConfigFile string
	flagJSON       bool

	settings *viper.Viper
)

var rootCmd = &cobra.Command{
	Use:           "vaultctl",
	Short:         "Administer a sharevault ledger",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v, err := loadSettings(cmd, flagConfigFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		settings = v
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigFile, "config", "", "config file (default: ./vaultctl.yaml)")
	rootCmd.PersistentFlags().String("database-url", "", "PostgreSQL connection string (env DATABASE_URL)")
	rootCmd.PersistentFlags().String("jwt-secret", "", "token signing secret (env JWT_SECRET)")
	rootCmd.PersistentFlags().Duration("jwt-expiry", 0, "access token lifetime (env JWT_ACCESS_EXPIRY)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(accountCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(assetCmd)
	rootCmd.AddCommand(mintCmd)
}

// openDB connects with the resolved database URL. The caller closes it.
func openDB(ctx context.Context) (*database.DB, error) {
	url := settings.GetString(keyDatabaseURL)
	if url == "" {
		return nil, fmt.Errorf("database url not set: use --database-url or DATABASE_URL")
	}
	return database.New(ctx, url)
}

// printResult writes v as JSON when --json is set, otherwise the text line.
func printResult(cmd *cobra.Command, v any, text string) error {
	out := cmd.OutOrStdout()
	if flagJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(out, text)
	return err
}
