package main

import (
	"fmt"

	"github.com/dimitrije/sharevault/internal/services"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var tokenAccount string

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage API access tokens",
}

var tokenIssueCmd = &cobra.Command{
	Use:   "issue",
	Short: "Issue an access token for an account",
	Long: `Issue signs a bearer token for the account with the configured JWT secret.

Example:
  vaultctl token issue --account 6c1f3c9e-8b0e-4f5e-9a55-0d8a2b9b1d11`,
	Args: cobra.NoArgs,
	RunE: runTokenIssue,
}

func init() {
	tokenIssueCmd.Flags().StringVar(&tokenAccount, "account", "", "account id (required)")
	_ = tokenIssueCmd.MarkFlagRequired("account")

	tokenCmd.AddCommand(tokenIssueCmd)
}

func runTokenIssue(cmd *cobra.Command, args []string) error {
	accountID, err := uuid.Parse(tokenAccount)
	if err != nil {
		return fmt.Errorf("invalid account id %q: %w", tokenAccount, err)
	}

	secret := settings.GetString(keyJWTSecret)
	if secret == "" {
		return fmt.Errorf("jwt secret not set: use --jwt-secret or JWT_SECRET")
	}

	ctx := cmd.Context()
	db, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	account, err := services.NewAccountService(db).GetByID(ctx, accountID)
	if err != nil {
		return err
	}

	jwtService := services.NewJWTService(secret, settings.GetDuration(keyJWTExpiry))
	token, err := jwtService.GenerateAccessToken(account.ID, account.Name)
	if err != nil {
		return fmt.Errorf("sign token: %w", err)
	}
	return printResult(cmd, token, token.Token)
}
