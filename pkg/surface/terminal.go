package surface

import (
	"fmt"
	"io"
	"os"

	"github.com/chainscope/chainscope/pkg/projects"
	"github.com/chainscope/chainscope/pkg/scoring"
)

// TerminalRenderer renders scored projects as colored terminal output.
// The catalog supplies criterion names for the per-project breakdown.
type TerminalRenderer struct {
	Catalog scoring.Catalog
}

// NewTerminalRenderer returns a renderer backed by the given catalog.
func NewTerminalRenderer(catalog scoring.Catalog) *TerminalRenderer {
	return &TerminalRenderer{Catalog: catalog}
}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

func scoreColor(score float64) string {
	if noColor() {
		return ""
	}
	switch {
	case score >= 7:
		return colorGreen
	case score >= 4:
		return colorYellow
	default:
		return colorRed
	}
}

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func bold(s string) string {
	if noColor() {
		return s
	}
	return colorBold + s + colorReset
}

func dim(s string) string {
	if noColor() {
		return s
	}
	return colorDim + s + colorReset
}

func colored(s, color string) string {
	if noColor() || color == "" {
		return s
	}
	return color + s + colorReset
}

func (r *TerminalRenderer) Render(w io.Writer, ps []projects.Project) error {
	fmt.Fprintf(w, "%s\n\n", bold("Chainscope: decentralization scores"))

	fmt.Fprintf(w, "  %-4s %-12s %-6s %6s %8s %9s %7s\n",
		"#", "Project", "", "Chain", "Control", "Fairness", "Total")

	for i, p := range ps {
		s := p.Scores
		total := fmt.Sprintf("%.1f", s.TotalScore)

		fmt.Fprintf(w, "  %-4d %-12s %-6s %6.1f %8.1f %9.1f %7s",
			i+1, p.Name, dim(p.Symbol),
			s.ChainScore, s.ControlScore, s.FairnessScore,
			colored(total, scoreColor(s.TotalScore)))

		if s.KillSwitchActive {
			fmt.Fprintf(w, "  %s", colored("kill switch", colorRed))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w)
	return nil
}

func (r *TerminalRenderer) RenderProject(w io.Writer, p *projects.Project) error {
	s := p.Scores
	total := fmt.Sprintf("%.1f", s.TotalScore)

	fmt.Fprintf(w, "%s\n", bold(fmt.Sprintf("%s (%s) — Total %s",
		p.Name, p.Symbol, colored(total, scoreColor(s.TotalScore)))))
	if s.KillSwitchActive {
		fmt.Fprintf(w, "%s (uncapped %.1f)\n",
			colored("Kill switch active: total capped at 1.0", colorRed),
			s.UncappedTotalScore)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Chain: %.1f  Control: %.1f  Fairness: %.1f\n\n",
		s.ChainScore, s.ControlScore, s.FairnessScore)

	byID := make(map[string]*float64, len(s.CriterionScores))
	for _, cs := range s.CriterionScores {
		byID[cs.CriterionID] = cs.Score
	}

	var lastCategory scoring.Category
	for _, c := range r.Catalog {
		if c.Category != lastCategory {
			fmt.Fprintf(w, "%s\n", bold(string(c.Category)))
			lastCategory = c.Category
		}

		score, ok := byID[c.ID]
		switch {
		case !ok || score == nil:
			fmt.Fprintf(w, "  %-4s %-40s %s\n", c.ID, c.Name, dim("—"))
		default:
			v := fmt.Sprintf("%.1f", *score)
			fmt.Fprintf(w, "  %-4s %-40s %s\n", c.ID, c.Name,
				colored(v, scoreColor(*score)))
		}
	}

	if p.Notes != "" {
		fmt.Fprintf(w, "\n%s\n", dim(p.Notes))
	}
	fmt.Fprintln(w)
	return nil
}
