package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yourusername/botfield/internal/client/camera"
	"github.com/yourusername/botfield/internal/client/game"
	"github.com/yourusername/botfield/internal/client/render"
)

// Connector dials and closes the server connection
type Connector interface {
	Connect(ctx context.Context) error
	Close() error
}

// Options configures the terminal UI
type Options struct {
	ServerURL  string
	FPS        int
	HoldWindow time.Duration
	ScaleX     float64 // world units per terminal column
	ScaleY     float64 // world units per terminal row
}

// header, footer and the panel border
const chromeRows = 4
const chromeCols = 2

// Model is the main Bubble Tea model
type Model struct {
	loop  *game.Loop
	conn  Connector
	grid  *render.CellGrid
	frame game.Frame
	opts  Options

	width  int
	height int
	err    error
}

// NewModel creates the terminal UI over a loop and its connection
func NewModel(loop *game.Loop, conn Connector, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.ScaleX <= 0 {
		opts.ScaleX = 10
	}
	if opts.ScaleY <= 0 {
		opts.ScaleY = 2 * opts.ScaleX
	}
	return Model{
		loop:   loop,
		conn:   conn,
		grid:   render.NewCellGrid(0, opts.ScaleX, opts.ScaleY),
		opts:   opts,
		width:  80,
		height: 24,
	}
}

// Init starts the dial and the frame loop
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		connectCmd(m.conn),
		frameCmd(m.interval()),
	)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.loop.Stop()
			m.conn.Close()
			return m, tea.Quit
		}
		m.loop.Input().PressKey(msg.String(), time.Now())
		return m, nil

	case connectResultMsg:
		m.err = msg.err
		return m, nil

	case frameMsg:
		if m.loop.Stopped() {
			return m, nil
		}
		now := time.Time(msg)
		m.loop.Input().ExpireBefore(now.Add(-m.opts.HoldWindow))
		m.frame = m.loop.Frame(m.grid, m.viewSize())
		return m, frameCmd(m.interval())
	}

	return m, nil
}

// View renders the current view
func (m Model) View() string {
	return m.viewGame()
}

func (m Model) interval() time.Duration {
	return time.Second / time.Duration(m.opts.FPS)
}

// viewCells is the map window size in terminal cells
func (m Model) viewCells() (cols, rows int) {
	cols = m.width - chromeCols
	rows = m.height - chromeRows
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

// viewSize is the map window size in world units
func (m Model) viewSize() camera.Size {
	cols, rows := m.viewCells()
	return camera.Size{W: float64(cols) * m.opts.ScaleX, H: float64(rows) * m.opts.ScaleY}
}
