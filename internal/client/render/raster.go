package render

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/yourusername/botfield/internal/protocol"
)

// kappa places cubic control points so four curves approximate a circle
const kappa = 0.5522847498

// Canvas is a pixel surface backed by an RGBA image, one pixel per world unit
type Canvas struct {
	img  *image.RGBA
	size int
	ras  *vector.Rasterizer
}

// NewCanvas creates a canvas of mapSize x mapSize pixels
func NewCanvas(mapSize int) *Canvas {
	c := &Canvas{
		img: image.NewRGBA(image.Rectangle{}),
		ras: vector.NewRasterizer(0, 0),
	}
	c.Resize(mapSize)
	return c
}

func (c *Canvas) Size() int { return c.size }

// Image returns the backing image; valid until the next Resize
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Resize(mapSize int) {
	if mapSize < 0 {
		mapSize = 0
	}
	if mapSize > MaxSize {
		return
	}
	if mapSize == c.size {
		return
	}
	c.size = mapSize
	c.img = image.NewRGBA(image.Rect(0, 0, mapSize, mapSize))
}

func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

func (c *Canvas) Fill(p Paint) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(p.Color), image.Point{}, draw.Src)
}

func (c *Canvas) FillCircle(center protocol.Point, radius float64, p Paint) {
	if radius <= 0 || c.size == 0 {
		return
	}
	// rasterize only the circle's bounding box
	box := image.Rect(
		int(math.Floor(center.X-radius)), int(math.Floor(center.Y-radius)),
		int(math.Ceil(center.X+radius)), int(math.Ceil(center.Y+radius)),
	).Intersect(c.img.Bounds())
	if box.Empty() {
		return
	}

	x := float32(center.X) - float32(box.Min.X)
	y := float32(center.Y) - float32(box.Min.Y)
	r := float32(radius)
	k := r * kappa

	c.ras.Reset(box.Dx(), box.Dy())
	c.ras.DrawOp = draw.Over
	c.ras.MoveTo(x+r, y)
	c.ras.CubeTo(x+r, y+k, x+k, y+r, x, y+r)
	c.ras.CubeTo(x-k, y+r, x-r, y+k, x-r, y)
	c.ras.CubeTo(x-r, y-k, x-k, y-r, x, y-r)
	c.ras.CubeTo(x+k, y-r, x+r, y-k, x+r, y)
	c.ras.ClosePath()
	c.ras.Draw(c.img, box, image.NewUniform(p.Color), image.Point{})
}
