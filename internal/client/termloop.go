package client

import (
	"fmt"
	"time"

	tl "github.com/JoelOtter/termloop"

	"github.com/yourusername/botfield/internal/client/camera"
	"github.com/yourusername/botfield/internal/client/game"
	"github.com/yourusername/botfield/internal/client/render"
)

// TermloopGame hosts the loop inside a termloop game
type TermloopGame struct {
	game *tl.Game
	view *WorldEntity
}

// NewTermloopGame creates a new termloop game instance
func NewTermloopGame(loop *game.Loop, opts TermOptions) *TermloopGame {
	opts = opts.withDefaults()

	g := tl.NewGame()
	level := tl.NewBaseLevel(tl.Cell{
		Bg: tl.ColorBlack,
		Fg: tl.ColorWhite,
		Ch: ' ',
	})
	g.Screen().SetLevel(level)
	g.Screen().SetFps(float64(opts.FPS))

	view := NewWorldEntity(loop, opts)
	level.AddEntity(view)

	return &TermloopGame{game: g, view: view}
}

// Start runs the termloop game until the end key (Ctrl+C) is pressed
func (tg *TermloopGame) Start() {
	tg.game.Start()
	tg.view.loop.Stop()
}

// TermOptions configures the terminal hosts
type TermOptions struct {
	FPS        int
	HoldWindow time.Duration
	ScaleX     float64
	ScaleY     float64
}

func (o TermOptions) withDefaults() TermOptions {
	if o.FPS <= 0 {
		o.FPS = 60
	}
	if o.ScaleX <= 0 {
		o.ScaleX = 10
	}
	if o.ScaleY <= 0 {
		o.ScaleY = 2 * o.ScaleX
	}
	return o
}

// WorldEntity runs one loop frame per termloop draw and paints the visible
// part of the cell grid plus a one-line status bar.
type WorldEntity struct {
	loop  *game.Loop
	grid  *render.CellGrid
	opts  TermOptions
	frame game.Frame
}

// NewWorldEntity creates the entity driving loop
func NewWorldEntity(loop *game.Loop, opts TermOptions) *WorldEntity {
	opts = opts.withDefaults()
	return &WorldEntity{
		loop: loop,
		grid: render.NewCellGrid(0, opts.ScaleX, opts.ScaleY),
		opts: opts,
	}
}

// Draw runs a frame and renders it
func (we *WorldEntity) Draw(screen *tl.Screen) {
	if we.loop.Stopped() {
		return
	}
	cols, rows := screen.Size()
	rows-- // status bar
	if cols < 1 || rows < 1 {
		return
	}

	we.loop.Input().ExpireBefore(time.Now().Add(-we.opts.HoldWindow))
	we.frame = we.loop.Frame(we.grid, camera.Size{
		W: float64(cols) * we.opts.ScaleX,
		H: float64(rows) * we.opts.ScaleY,
	})

	hud := we.loop.HUD()
	info := fmt.Sprintf("%s | Pos: %s | Bots: %s | WASD to move, Ctrl+C to quit",
		hud.Status, hud.Position, hud.BotCount)
	for i, ch := range []rune(info) {
		if i >= cols {
			break
		}
		screen.RenderCell(i, 0, &tl.Cell{Fg: tl.ColorWhite, Bg: tl.ColorBlack, Ch: ch})
	}

	col0, row0 := we.grid.CellOffset(we.frame.Offset.X, we.frame.Offset.Y)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			cell, ok := we.grid.At(col0+x, row0+y)
			if !ok || !cell.Set {
				continue
			}
			screen.RenderCell(x, y+1, termCell(cell.Paint))
		}
	}
}

// Tick feeds key presses into the input tracker
func (we *WorldEntity) Tick(event tl.Event) {
	if event.Type != tl.EventKey || event.Ch == 0 {
		return
	}
	we.loop.Input().PressKey(string(event.Ch), time.Now())
}

// Position returns the entity position
func (we *WorldEntity) Position() (int, int) {
	return 0, 0
}

// Size returns the entity size
func (we *WorldEntity) Size() (int, int) {
	return we.grid.Dims()
}

// termCell maps a paint onto the 8 base terminal colours
func termCell(p render.Paint) *tl.Cell {
	switch p {
	case render.Player:
		return &tl.Cell{Fg: tl.ColorRed, Bg: tl.ColorGreen, Ch: p.Glyph}
	case render.Bot:
		return &tl.Cell{Fg: tl.ColorYellow, Bg: tl.ColorGreen, Ch: p.Glyph}
	}
	return &tl.Cell{Fg: tl.ColorWhite, Bg: tl.ColorGreen, Ch: p.Glyph}
}
