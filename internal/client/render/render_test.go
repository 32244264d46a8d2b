package render

import (
	"image/color"
	"testing"

	"github.com/yourusername/botfield/internal/protocol"
)

func TestCanvasResize(t *testing.T) {
	c := NewCanvas(1000)
	if c.Size() != 1000 || c.Image().Bounds().Dx() != 1000 || c.Image().Bounds().Dy() != 1000 {
		t.Fatalf("expected a 1000x1000 canvas, got %v", c.Image().Bounds())
	}
	c.Resize(200)
	if c.Size() != 200 || c.Image().Bounds().Dx() != 200 {
		t.Fatalf("expected a 200x200 canvas, got %v", c.Image().Bounds())
	}
}

func TestCanvasDrawsCircles(t *testing.T) {
	c := NewCanvas(100)
	c.Clear()
	if got := c.Image().RGBAAt(50, 50); got != (color.RGBA{}) {
		t.Fatalf("expected transparent after clear, got %v", got)
	}

	c.Fill(Ground)
	c.FillCircle(protocol.Point{X: 20, Y: 20}, BotRadius, Bot)
	c.FillCircle(protocol.Point{X: 60, Y: 70}, PlayerRadius, Player)

	checks := []struct {
		x, y int
		want color.RGBA
	}{
		{20, 20, Bot.Color},
		{22, 21, Bot.Color},
		{60, 70, Player.Color},
		{66, 70, Player.Color},
		{5, 5, Ground.Color},
		{20, 30, Ground.Color},
		{60, 85, Ground.Color},
	}
	for _, ck := range checks {
		if got := c.Image().RGBAAt(ck.x, ck.y); got != ck.want {
			t.Errorf("pixel (%d,%d): expected %v, got %v", ck.x, ck.y, ck.want, got)
		}
	}
}

func TestCanvasClipsCircles(t *testing.T) {
	c := NewCanvas(50)
	c.Fill(Ground)
	c.FillCircle(protocol.Point{X: -2, Y: 25}, PlayerRadius, Player)
	c.FillCircle(protocol.Point{X: 500, Y: 500}, PlayerRadius, Player)

	if got := c.Image().RGBAAt(2, 25); got != Player.Color {
		t.Fatalf("expected the visible part of a clipped circle, got %v", got)
	}
	if got := c.Image().RGBAAt(49, 49); got != Ground.Color {
		t.Fatalf("off-surface circle must not paint, got %v", got)
	}
}

func TestCellGridDims(t *testing.T) {
	g := NewCellGrid(1000, 10, 20)
	cols, rows := g.Dims()
	if cols != 100 || rows != 50 || g.Size() != 1000 {
		t.Fatalf("expected 100x50 cells, got %dx%d", cols, rows)
	}
	g.Resize(105)
	cols, rows = g.Dims()
	if cols != 11 || rows != 6 {
		t.Fatalf("expected partial cells to round up, got %dx%d", cols, rows)
	}
}

func TestCellGridPaints(t *testing.T) {
	g := NewCellGrid(100, 10, 20)
	g.Clear()
	if cell, _ := g.At(0, 0); cell.Set {
		t.Fatalf("expected cleared cell")
	}

	g.Fill(Ground)
	g.FillCircle(protocol.Point{X: 55, Y: 45}, BotRadius, Bot)
	g.FillCircle(protocol.Point{X: 15, Y: 15}, PlayerRadius, Player)

	if cell, ok := g.At(5, 2); !ok || cell.Paint != Bot {
		t.Fatalf("expected bot in cell (5,2), got %+v", cell)
	}
	if cell, _ := g.At(1, 0); cell.Paint != Player {
		t.Fatalf("expected player in cell (1,0), got %+v", cell)
	}
	if cell, _ := g.At(9, 4); cell.Paint != Ground || !cell.Set {
		t.Fatalf("expected ground in cell (9,4), got %+v", cell)
	}
	if _, ok := g.At(10, 0); ok {
		t.Fatalf("expected out of range cell")
	}

	// off-grid circles are ignored
	g.FillCircle(protocol.Point{X: -500, Y: 20}, PlayerRadius, Player)
}

func TestCellOffset(t *testing.T) {
	g := NewCellGrid(1000, 10, 20)
	col, row := g.CellOffset(-205, -400)
	if col != 20 || row != 20 {
		t.Fatalf("expected (20,20), got (%d,%d)", col, row)
	}
	col, row = g.CellOffset(0, 0)
	if col != 0 || row != 0 {
		t.Fatalf("expected (0,0), got (%d,%d)", col, row)
	}
}

func TestResizeIgnoresOversizedMaps(t *testing.T) {
	c := NewCanvas(100)
	c.Resize(2000000000)
	if c.Size() != 100 || c.Image().Bounds().Dx() != 100 {
		t.Fatalf("expected the canvas to keep 100x100, got %v", c.Image().Bounds())
	}
	c.Resize(MaxSize + 1)
	if c.Size() != 100 {
		t.Fatalf("expected MaxSize+1 to be ignored, got %d", c.Size())
	}

	g := NewCellGrid(100, 10, 20)
	g.Resize(2000000000)
	if cols, rows := g.Dims(); g.Size() != 100 || cols != 10 || rows != 5 {
		t.Fatalf("expected the grid to keep 10x5 cells, got %dx%d", cols, rows)
	}

	// a grid created oversized stays empty instead of allocating
	g = NewCellGrid(MaxSize+1, 1, 1)
	if cols, rows := g.Dims(); cols != 0 || rows != 0 {
		t.Fatalf("expected an empty grid, got %dx%d", cols, rows)
	}
	g.Fill(Ground)
	g.FillCircle(protocol.Point{X: 1, Y: 1}, PlayerRadius, Player)

	c = NewCanvas(MaxSize + 1)
	if c.Size() != 0 || !c.Image().Bounds().Empty() {
		t.Fatalf("expected an empty canvas, got %v", c.Image().Bounds())
	}
	c.Clear()
	c.Fill(Ground)
	c.FillCircle(protocol.Point{X: 1, Y: 1}, PlayerRadius, Player)
}
