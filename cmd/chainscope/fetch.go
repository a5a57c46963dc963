package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chainscope/chainscope/internal/fetcher"
	"github.com/chainscope/chainscope/internal/store"
)

func newFetchCmd() *cobra.Command {
	var projectID string

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch live network metrics and store them",
		Long:  `Queries the public chain APIs for validator and staking metrics and writes the results to the live-metrics database.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd.Context(), projectID)
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Fetch a single project (default: all with a live integration)")

	return cmd
}

func runFetch(ctx context.Context, projectID string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	db, err := openDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	client := fetcher.NewClient()
	fetchers := []fetcher.Fetcher{
		fetcher.NewEthereum(client, cfg.Fetch.EthereumAPI),
		fetcher.NewSolana(client, cfg.Fetch.SolanaRPC),
		fetcher.NewCosmos(client, cfg.Fetch.CosmosLCD),
	}

	if projectID != "" {
		var matched []fetcher.Fetcher
		for _, f := range fetchers {
			if f.ProjectID() == projectID {
				matched = append(matched, f)
			}
		}
		if len(matched) == 0 {
			return fmt.Errorf("no fetcher for project %q", projectID)
		}
		fetchers = matched
	}

	sum := fetcher.RunAll(ctx, store.NewPostgresStore(db), log, fetchers...)
	log.Info().
		Int("succeeded", sum.Succeeded).
		Int("partial", sum.Partial).
		Int("failed", sum.Failed).
		Msg("fetch run complete")

	if sum.Succeeded == 0 && sum.Partial == 0 {
		return fmt.Errorf("all %d fetchers failed", sum.Failed)
	}
	return nil
}
