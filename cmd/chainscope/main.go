// Package main provides the chainscope CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "chainscope",
		Short: "Decentralization scoring for blockchain networks",
		Long: `Chainscope scores blockchain networks on chain decentralization,
control decentralization, and fairness, fetches live network metrics,
and archives daily score snapshots.`,
		Version: version,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "chainscope.yaml", "Path to config file")

	rootCmd.AddCommand(
		newScoreCmd(),
		newFetchCmd(),
		newArchiveCmd(),
		newSparklinesCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
