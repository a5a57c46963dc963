package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chainscope/chainscope/internal/archive"
	"github.com/chainscope/chainscope/internal/store"
)

func newSparklinesCmd() *cobra.Command {
	var (
		days       int
		projectIDs string
		outputFmt  string
	)

	cmd := &cobra.Command{
		Use:   "sparklines",
		Short: "Show score trends from archived snapshots",
		Long:  `Reads the archived daily snapshots and prints one score series per project. Projects with fewer than two archived days are omitted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSparklines(cmd.Context(), days, projectIDs, outputFmt)
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Number of trailing days to read")
	cmd.Flags().StringVar(&projectIDs, "projects", "", "Comma-separated project IDs (default: all)")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")

	return cmd
}

func runSparklines(ctx context.Context, days int, projectIDs, outputFmt string) error {
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

	var ids []string
	if projectIDs != "" {
		ids = strings.Split(projectIDs, ",")
	}

	// Sparklines read object storage only; no live database needed.
	svc := archive.NewService(objects, store.NewMemoryStore(), registry, log)
	lines, err := svc.BuildSparklines(ctx, ids, days)
	if err != nil {
		return err
	}

	if outputFmt == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(lines)
	}

	if lines.Count == 0 {
		fmt.Println("No projects with enough archived snapshots.")
		return nil
	}

	fmt.Printf("Score trends over %s .. %s\n\n",
		lines.Dates[0], lines.Dates[len(lines.Dates)-1])

	names := make([]string, 0, len(lines.Projects))
	for id := range lines.Projects {
		names = append(names, id)
	}
	sort.Strings(names)

	for _, id := range names {
		points := lines.Projects[id]
		parts := make([]string, len(points))
		for i, p := range points {
			parts[i] = fmt.Sprintf("%.1f", p)
		}
		fmt.Printf("  %-12s %s\n", id, strings.Join(parts, " -> "))
	}
	return nil
}
