package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/gridpack/pkg/grid"
	"github.com/matzehuels/gridpack/pkg/gridio"
	"github.com/matzehuels/gridpack/pkg/pipeline"
	"github.com/matzehuels/gridpack/pkg/render/text"
)

// Editor styles
var (
	editorEmptyStyle   = lipgloss.NewStyle().Foreground(colorDim)
	editorOverlapStyle = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	editorCursorStyle  = lipgloss.NewStyle().Reverse(true).Bold(true)
	editorStaticStyle  = lipgloss.NewStyle().Foreground(colorGray)
	editorErrorStyle   = lipgloss.NewStyle().Foreground(colorRed)

	editorPalette = []lipgloss.Color{"36", "75", "35", "220", "176", "209", "114", "141"}
)

// =============================================================================
// EditorModel - Interactive layout editing
// =============================================================================

// EditorModel is the bubbletea model behind "gridpack edit". Every edit goes
// through the pipeline runner, so the editor behaves exactly like the move,
// resize, and compact commands.
type EditorModel struct {
	ctx    context.Context
	runner *pipeline.Runner
	opts   pipeline.Options

	Doc    *gridio.Document
	Path   string
	Cols   int
	Cursor int

	// Dirty is set by any edit and cleared by a write.
	Dirty  bool
	status string
	err    error
}

// NewEditorModel creates an editor for doc's base layout. Writes go to path.
func NewEditorModel(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options, doc *gridio.Document, path string, cols int) EditorModel {
	return EditorModel{
		ctx:    ctx,
		runner: runner,
		opts:   opts,
		Doc:    doc,
		Path:   path,
		Cols:   cols,
		status: "ready",
	}
}

func (m EditorModel) Init() tea.Cmd {
	return nil
}

func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		m.cycle(1)
	case "shift+tab":
		m.cycle(-1)
	case "up", "k":
		m.move(0, -1)
	case "down", "j":
		m.move(0, 1)
	case "left", "h":
		m.move(-1, 0)
	case "right", "l":
		m.move(1, 0)
	case "shift+up", "K":
		m.resize(0, -1)
	case "shift+down", "J":
		m.resize(0, 1)
	case "shift+left", "H":
		m.resize(-1, 0)
	case "shift+right", "L":
		m.resize(1, 0)
	case "c":
		m.apply("compacted", func() (grid.Layout, error) {
			return m.runner.Compact(m.ctx, m.Doc.Layout, m.opts)
		})
	case "b":
		opts := m.opts
		opts.Cols = m.Cols
		m.apply(fmt.Sprintf("fitted to %d columns", m.Cols), func() (grid.Layout, error) {
			return m.runner.CorrectBounds(m.ctx, m.Doc.Layout, opts)
		})
	case "v":
		m.opts.VerticalCompact = !m.opts.VerticalCompact
		m.status = fmt.Sprintf("vertical compaction %s", onOff(m.opts.VerticalCompact))
	case "w":
		m.write()
	}
	return m, nil
}

func (m *EditorModel) selected() (grid.Item, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.Doc.Layout) {
		return grid.Item{}, false
	}
	return m.Doc.Layout[m.Cursor], true
}

func (m *EditorModel) cycle(step int) {
	n := len(m.Doc.Layout)
	if n == 0 {
		return
	}
	m.Cursor = ((m.Cursor+step)%n + n) % n
}

func (m *EditorModel) move(dx, dy int) {
	it, ok := m.selected()
	if !ok {
		return
	}
	x := min(max(it.X+dx, 0), max(m.Cols-it.W, 0))
	y := max(it.Y+dy, 0)
	if x == it.X && y == it.Y {
		return
	}
	m.apply(fmt.Sprintf("moved %s to (%d,%d)", it.ID, x, y), func() (grid.Layout, error) {
		return m.runner.Move(m.ctx, m.Doc.Layout, it.ID, x, y, m.opts)
	})
}

func (m *EditorModel) resize(dw, dh int) {
	it, ok := m.selected()
	if !ok {
		return
	}
	w := min(max(it.W+dw, 1), max(m.Cols-it.X, 1))
	h := max(it.H+dh, 1)
	if w == it.W && h == it.H {
		return
	}
	m.apply(fmt.Sprintf("resized %s to %dx%d", it.ID, w, h), func() (grid.Layout, error) {
		return m.runner.Resize(m.ctx, m.Doc.Layout, it.ID, w, h, m.opts)
	})
}

// apply replaces the layout with the result of op.
func (m *EditorModel) apply(status string, op func() (grid.Layout, error)) {
	out, err := op()
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.Doc.Layout = out
	m.Dirty = true
	m.status = status
}

func (m *EditorModel) write() {
	if err := gridio.WriteFile(m.Path, m.Doc); err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.Dirty = false
	m.status = "wrote " + m.Path
}

func (m EditorModel) View() string {
	var b strings.Builder

	title := "Edit " + m.Path
	if m.Dirty {
		title += " *"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(editorEmptyStyle.Render("tab select  arrows move  shift+arrows resize  c compact  b fit  v vertical  w write  q quit"))
	b.WriteString("\n\n")

	b.WriteString(m.renderGrid())
	b.WriteString("\n")

	if it, ok := m.selected(); ok {
		line := fmt.Sprintf("%c %s  %dx%d at (%d,%d)", text.Symbol(m.Cursor), it.ID, it.W, it.H, it.X, it.Y)
		if it.Static {
			line += "  static"
		}
		b.WriteString(StyleHighlight.Render(line))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(editorErrorStyle.Render(iconError + " " + m.err.Error()))
	} else {
		b.WriteString(StyleDim.Render(iconInfo + " " + m.status))
	}
	b.WriteString("\n")
	return b.String()
}

// renderGrid draws the layout with one color per item and the selected item
// in reverse video.
func (m EditorModel) renderGrid() string {
	var b strings.Builder
	for _, row := range text.Cells(m.Doc.Layout, m.Cols) {
		for _, idx := range row {
			switch idx {
			case text.Empty:
				b.WriteString(editorEmptyStyle.Render("."))
			case text.Overlap:
				b.WriteString(editorOverlapStyle.Render("#"))
			default:
				b.WriteString(m.cellStyle(idx).Render(string(text.Symbol(idx))))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m EditorModel) cellStyle(idx int) lipgloss.Style {
	if idx == m.Cursor {
		return editorCursorStyle.Foreground(editorPalette[idx%len(editorPalette)])
	}
	if m.Doc.Layout[idx].Static {
		return editorStaticStyle
	}
	return lipgloss.NewStyle().Foreground(editorPalette[idx%len(editorPalette)])
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
