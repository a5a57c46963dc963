package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chainscope/chainscope/internal/archive"
	"github.com/chainscope/chainscope/internal/store"
)

func newArchiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Archive today's scores and metrics to object storage",
		Long:  `Writes one dated snapshot per project with stored live metrics. Re-running on the same day overwrites that day's snapshots.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArchive(cmd.Context())
		},
	}
	return cmd
}

func runArchive(ctx context.Context) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	registry, _, err := buildRegistry(cfg)
	if err != nil {
		return err
	}

	objects, err := buildObjectStore(ctx, cfg)
	if err != nil {
		return err
	}
	if objects == nil {
		return fmt.Errorf("no storage backend configured")
	}

	db, err := openDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	svc := archive.NewService(objects, store.NewPostgresStore(db), registry, log)
	run, err := svc.ArchiveToday(ctx)
	if err != nil {
		return err
	}

	log.Info().
		Str("run_id", run.RunID).
		Str("date", run.Date).
		Int("archived", run.Archived).
		Msg("archive run complete")
	return nil
}
