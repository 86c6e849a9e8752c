package main

import (
	"fmt"

	"github.com/dimitrije/sharevault/internal/services"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	mintAccount string
	mintAsset   string
	mintAmount  uint64
)

var mintCmd = &cobra.Command{
	Use:   "mint",
	Short: "Issue a new coin of a base asset",
	Long: `Mint creates a coin worth amount of the asset and gives it to the account.
The asset is named by symbol.

Example:
  vaultctl mint --account 6c1f3c9e-8b0e-4f5e-9a55-0d8a2b9b1d11 --asset USDC --amount 100`,
	Args: cobra.NoArgs,
	RunE: runMint,
}

func init() {
	mintCmd.Flags().StringVar(&mintAccount, "account", "", "recipient account id (required)")
	mintCmd.Flags().StringVar(&mintAsset, "asset", "", "asset symbol (required)")
	mintCmd.Flags().Uint64Var(&mintAmount, "amount", 0, "coin value in base units (required)")
	_ = mintCmd.MarkFlagRequired("account")
	_ = mintCmd.MarkFlagRequired("asset")
	_ = mintCmd.MarkFlagRequired("amount")
}

func runMint(cmd *cobra.Command, args []string) error {
	ownerID, err := uuid.Parse(mintAccount)
	if err != nil {
		return fmt.Errorf("invalid account id %q: %w", mintAccount, err)
	}

	ctx := cmd.Context()
	db, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	assets := services.NewAssetService(db)
	asset, err := assets.GetBySymbol(ctx, mintAsset)
	if err != nil {
		return fmt.Errorf("%s: %w", mintAsset, err)
	}

	coin, err := assets.Mint(ctx, asset.ID, ownerID, mintAmount)
	if err != nil {
		return err
	}
	return printResult(cmd, coin, fmt.Sprintf("Minted coin %s: %d %s", coin.ID, coin.Value, asset.Symbol))
}
