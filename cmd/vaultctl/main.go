// Command vaultctl administers a sharevault database: schema migration,
// accounts, access tokens, asset registration and minting.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
