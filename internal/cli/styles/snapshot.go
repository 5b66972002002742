package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/hyprisland/internal/application/usecase"
)

// SnapshotRenderer renders the outcome of a snapshot run.
type SnapshotRenderer struct {
	theme *Theme
}

// NewSnapshotRenderer creates a new snapshot renderer with the given theme.
func NewSnapshotRenderer(theme *Theme) *SnapshotRenderer {
	return &SnapshotRenderer{theme: theme}
}

// RenderResults lists every written image with its region summary.
func (r *SnapshotRenderer) RenderResults(results []usecase.SnapshotResult) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	var sb strings.Builder
	sb.WriteString("\n")
	for _, res := range results {
		fmt.Fprintf(&sb, "  %s %s %s %s\n",
			iconStyle.Render(IconImage),
			r.theme.Highlight.Render(res.Dest),
			r.theme.Subtle.Render(fmt.Sprintf("%gx%g", res.Size.W, res.Size.H)),
			r.theme.BadgeMuted.Render(fmt.Sprintf("%s %d regions, box %d selected", IconPane, res.RegionCount, res.Selected+1)),
		)
	}
	return sb.String()
}
