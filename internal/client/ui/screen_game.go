package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/yourusername/botfield/internal/client/render"
)

// viewGame renders the status bar, the scrolled map window and the controls
func (m Model) viewGame() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderStatusBar(),
		gameBoxStyle.Render(m.renderWorld()),
		m.renderControls(),
	)
}

// renderStatusBar renders the three status regions plus loop counters
func (m Model) renderStatusBar() string {
	hud := m.loop.HUD()
	stats := m.loop.Stats()

	parts := []string{
		titleStyle.Render("botfield"),
		labelStyle.Render("Status: ") + statusStyle(hud.Status).Render(hud.Status),
		labelStyle.Render("Position: ") + valueStyle.Render(hud.Position),
		labelStyle.Render("Bots: ") + valueStyle.Render(hud.BotCount),
		mutedStyle.Render("frames " + humanize.Comma(int64(stats.Frames)) + "  moves " + humanize.Comma(int64(stats.MovesSent))),
	}
	return strings.Join(parts, "  •  ")
}

// renderWorld renders the part of the cell grid inside the camera window.
// Runs of equal cells share one lipgloss render call.
func (m Model) renderWorld() string {
	cols, rows := m.viewCells()
	col0, row0 := m.grid.CellOffset(m.frame.Offset.X, m.frame.Offset.Y)
	styles := map[render.Paint]lipgloss.Style{}

	var b strings.Builder
	for y := 0; y < rows; y++ {
		var run strings.Builder
		var runCell render.Cell
		flush := func() {
			if run.Len() == 0 {
				return
			}
			b.WriteString(cellStyle(styles, runCell).Render(run.String()))
			run.Reset()
		}

		for x := 0; x < cols; x++ {
			cell, _ := m.grid.At(col0+x, row0+y)
			if cell != runCell {
				flush()
				runCell = cell
			}
			if cell.Set {
				run.WriteRune(cell.Paint.Glyph)
			} else {
				run.WriteRune(' ')
			}
		}
		flush()
		if y < rows-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func cellStyle(cache map[render.Paint]lipgloss.Style, cell render.Cell) lipgloss.Style {
	if !cell.Set {
		return lipgloss.NewStyle()
	}
	if s, ok := cache[cell.Paint]; ok {
		return s
	}
	ground := hexColor(render.Ground.Color)
	s := lipgloss.NewStyle().Background(ground).Foreground(hexColor(cell.Paint.Color)).Bold(true)
	if cell.Paint == render.Ground {
		s = lipgloss.NewStyle().Background(ground)
	}
	cache[cell.Paint] = s
	return s
}

// renderControls renders the bottom instructions line
func (m Model) renderControls() string {
	line := instructionStyle.Render("WASD: move  •  Q/ESC: quit  •  " + m.opts.ServerURL)
	if m.err != nil {
		line += "  " + errorStyle.Render("✗ "+m.err.Error())
	}
	return line
}
