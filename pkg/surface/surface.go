// Package surface defines output rendering for Chainscope score results.
// Implementations handle different output targets: terminal and JSON.
package surface

import (
	"io"

	"github.com/chainscope/chainscope/pkg/projects"
)

// Renderer produces formatted output from scored projects.
type Renderer interface {
	// Render writes the full leaderboard to the writer.
	Render(w io.Writer, projects []projects.Project) error

	// RenderProject writes the per-criterion breakdown for one project.
	RenderProject(w io.Writer, project *projects.Project) error
}
