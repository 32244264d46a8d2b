// Package render holds the drawing surfaces the frame loop paints on.
package render

import (
	"image/color"

	"github.com/yourusername/botfield/internal/protocol"
)

const (
	PlayerRadius = 10
	BotRadius    = 5
)

// MaxSize is the largest side length a surface will allocate
const MaxSize = 8192

// Paint is a fill colour plus the glyph terminal surfaces use for it
type Paint struct {
	Color color.RGBA
	Glyph rune
}

var (
	Ground = Paint{Color: color.RGBA{R: 0x22, G: 0x55, B: 0x22, A: 0xff}, Glyph: ' '}
	Bot    = Paint{Color: color.RGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff}, Glyph: 'o'}
	Player = Paint{Color: color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}, Glyph: '@'}
)

// Surface is a square drawing surface sized to the map
type Surface interface {
	// Size returns the current side length in world units
	Size() int
	// Resize makes the surface mapSize x mapSize. Sizes above MaxSize are
	// ignored and the surface keeps its current size.
	Resize(mapSize int)
	// Clear erases the whole surface
	Clear()
	// Fill paints the whole surface
	Fill(p Paint)
	// FillCircle paints a filled circle in world coordinates. Circles outside
	// the surface are clipped, not rejected.
	FillCircle(center protocol.Point, radius float64, p Paint)
}
