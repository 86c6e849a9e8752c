package main

import (
	"fmt"

	"github.com/dimitrije/sharevault/internal/services"
	"github.com/spf13/cobra"
)

var (
	assetSymbol   string
	assetDecimals int16
)

var assetCmd = &cobra.Command{
	Use:   "asset",
	Short: "Manage base assets",
}

var assetRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a base asset",
	Long: `Register adds a fungible base asset. Each asset can back exactly one vault.

Example:
  vaultctl asset register --symbol USDC --decimals 6`,
	Args: cobra.NoArgs,
	RunE: runAssetRegister,
}

var assetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered assets",
	Args:  cobra.NoArgs,
	RunE:  runAssetList,
}

func init() {
	assetRegisterCmd.Flags().StringVar(&assetSymbol, "symbol", "", "ticker symbol (required)")
	assetRegisterCmd.Flags().Int16Var(&assetDecimals, "decimals", 0, "display decimals")
	_ = assetRegisterCmd.MarkFlagRequired("symbol")

	assetCmd.AddCommand(assetRegisterCmd)
	assetCmd.AddCommand(assetListCmd)
}

func runAssetRegister(cmd *cobra.Command, args []string) error {
	if assetDecimals < 0 {
		return fmt.Errorf("decimals must not be negative")
	}

	ctx := cmd.Context()
	db, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	asset, err := services.NewAssetService(db).Register(ctx, assetSymbol, assetDecimals)
	if err != nil {
		return err
	}
	return printResult(cmd, asset, fmt.Sprintf("Registered %s (%s)", asset.Symbol, asset.ID))
}

func runAssetList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	db, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	assets, err := services.NewAssetService(db).List(ctx)
	if err != nil {
		return err
	}

	if flagJSON {
		return printResult(cmd, assets, "")
	}
	for _, a := range assets {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d\n", a.ID, a.Symbol, a.Decimals)
	}
	return nil
}
