package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/scenelab/internal/core"
	"github.com/vovakirdan/scenelab/internal/examples"
	"github.com/vovakirdan/scenelab/internal/scene"
	"github.com/vovakirdan/scenelab/internal/sim"
)

const fillWidth = 20

// nodeRow formats one node for the table. Cells stay plain text; the
// colored swatch is drawn next to the status line for the selected row.
func nodeRow(n *scene.Node) table.Row {
	kind := n.Kind.String()
	switch n.Kind {
	case scene.KindMesh:
		kind = "mesh/" + n.Shape.String()
	case scene.KindLight:
		kind = fmt.Sprintf("light x%.1f", n.Intensity)
	}
	return table.Row{
		fmt.Sprintf("%d", n.ID),
		n.Name,
		kind,
		formatVec(n.Position),
		formatVec(n.Rotation),
		n.Color().Hex(),
		fmt.Sprintf("%d", len(n.Points)),
	}
}

func formatVec(v mgl64.Vec3) string {
	return fmt.Sprintf("%6.2f %6.2f %6.2f", v[0], v[1], v[2])
}

// swatch renders a two-cell block filled with c.
func swatch(c sim.Color) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Render("  ")
}

// fillBar renders frac of fillWidth cells as a bar.
func fillBar(frac float64) string {
	n := int(core.ClampF(frac, 0, 1)*fillWidth + 0.5)
	return "[" + strings.Repeat("#", n) + strings.Repeat(".", fillWidth-n) + "]"
}

// statusLine shows the clock, the digest, the selected node color and
// whatever the example reports about its simulation.
func (m Model) statusLine() string {
	state := "running"
	if m.paused {
		state = "paused"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-7s t=%7.2fs  tick %-6d  digest %016x",
		state, m.scene.Time(), m.scene.Ticks(), m.scene.Digest())

	nodes := m.scene.Nodes()
	if i := m.table.Cursor(); i >= 0 && i < len(nodes) {
		b.WriteString("  ")
		b.WriteString(swatch(nodes[i].Color()))
	}

	if st, ok := m.example.(examples.Statuser); ok {
		b.WriteString("\n")
		b.WriteString(st.Status())
	}
	if p, ok := m.example.(*examples.Particles); ok && p.Emitter() != nil {
		e := p.Emitter()
		fmt.Fprintf(&b, "  %s", fillBar(float64(e.Len())/float64(e.Capacity())))
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(m.err.Error()))
	}
	return b.String()
}
