package main

import (
	"fmt"

	"github.com/dimitrije/sharevault/internal/services"
	"github.com/spf13/cobra"
)

var accountName string

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage ledger accounts",
}

var accountCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an account",
	Long: `Create adds an account that can hold coins, shares and admin capabilities.

Example:
  vaultctl account create --name alice`,
	Args: cobra.NoArgs,
	RunE: runAccountCreate,
}

func init() {
	accountCreateCmd.Flags().StringVar(&accountName, "name", "", "display name (required)")
	_ = accountCreateCmd.MarkFlagRequired("name")

	accountCmd.AddCommand(accountCreateCmd)
}

func runAccountCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	db, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	account, err := services.NewAccountService(db).Create(ctx, accountName)
	if err != nil {
		return err
	}
	return printResult(cmd, account, fmt.Sprintf("Created account %s (%s)", account.ID, account.Name))
}
