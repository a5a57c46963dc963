package surface

import (
	"encoding/json"
	"io"

	"github.com/chainscope/chainscope/pkg/projects"
)

// JSONRenderer marshals projects to indented JSON.
type JSONRenderer struct{}

func (r *JSONRenderer) Render(w io.Writer, ps []projects.Project) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ps)
}

func (r *JSONRenderer) RenderProject(w io.Writer, p *projects.Project) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}
