// Package camera maps the player's world position to a viewport offset.
package camera

import (
	"math"

	"github.com/yourusername/botfield/internal/protocol"
)

// Size is the visible viewport size in world units
type Size struct {
	W, H float64
}

// Offset is the translation applied to the world so the player is centered
type Offset struct {
	X, Y float64
}

// Follow centers the viewport on player and clamps the offset to
// [view - mapSize, 0] on each axis, so the map edges never scroll into view.
// When the map is smaller than the viewport the offset is pinned at 0.
func Follow(view Size, player protocol.Point, mapSize int) Offset {
	m := float64(mapSize)
	return Offset{
		X: clampAxis(view.W, player.X, m),
		Y: clampAxis(view.H, player.Y, m),
	}
}

func clampAxis(view, pos, mapSize float64) float64 {
	centered := view/2 - pos
	return math.Min(0, math.Max(centered, view-mapSize))
}
