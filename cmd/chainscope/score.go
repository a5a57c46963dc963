package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chainscope/chainscope/pkg/surface"
)

func newScoreCmd() *cobra.Command {
	var (
		projectID string
		outputFmt string
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score tracked projects and print the leaderboard",
		Long:  `Resolves every criterion for the tracked projects, aggregates category and total scores, and renders the result.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(projectID, outputFmt)
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Show the per-criterion breakdown for one project")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")

	return cmd
}

func runScore(projectID, outputFmt string) error {
	cfg, _, err := setup()
	if err != nil {
		return err
	}

	registry, catalog, err := buildRegistry(cfg)
	if err != nil {
		return err
	}

	var renderer surface.Renderer
	switch outputFmt {
	case "json":
		renderer = &surface.JSONRenderer{}
	default:
		renderer = surface.NewTerminalRenderer(catalog)
	}

	if projectID != "" {
		p, ok := registry.ByID(projectID)
		if !ok {
			return fmt.Errorf("unknown project %q", projectID)
		}
		return renderer.RenderProject(os.Stdout, &p)
	}

	return renderer.Render(os.Stdout, registry.All())
}
