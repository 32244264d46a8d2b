// Package window hosts the loop in a desktop window using Ebitengine.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/yourusername/botfield/internal/client/camera"
	"github.com/yourusername/botfield/internal/client/game"
	"github.com/yourusername/botfield/internal/client/render"
	"github.com/yourusername/botfield/internal/protocol"
)

const (
	screenWidth  = 800
	screenHeight = 600
)

// Surface is an offscreen ebiten image sized to the map
type Surface struct {
	img  *ebiten.Image
	size int
}

// NewSurface creates an empty surface; the first frame sizes it
func NewSurface() *Surface {
	return &Surface{}
}

func (s *Surface) Size() int { return s.size }

// Image returns the backing image, nil before the first Resize to a non-empty map
func (s *Surface) Image() *ebiten.Image { return s.img }

func (s *Surface) Resize(mapSize int) {
	if mapSize < 0 {
		mapSize = 0
	}
	if mapSize > render.MaxSize {
		return
	}
	if s.img != nil && mapSize == s.size {
		return
	}
	if s.img != nil {
		s.img.Deallocate()
		s.img = nil
	}
	s.size = mapSize
	if mapSize > 0 {
		s.img = ebiten.NewImage(mapSize, mapSize)
	}
}

func (s *Surface) Clear() {
	if s.img != nil {
		s.img.Clear()
	}
}

func (s *Surface) Fill(p render.Paint) {
	if s.img != nil {
		s.img.Fill(p.Color)
	}
}

func (s *Surface) FillCircle(center protocol.Point, radius float64, p render.Paint) {
	if s.img == nil || radius <= 0 {
		return
	}
	vector.DrawFilledCircle(s.img, float32(center.X), float32(center.Y), float32(radius), p.Color, true)
}

// Game implements ebiten.Game around a frame loop
type Game struct {
	loop    *game.Loop
	surface *Surface
	frame   game.Frame
	width   int
	height  int
}

// NewGame creates the window host
func NewGame(loop *game.Loop) *Game {
	return &Game{
		loop:    loop,
		surface: NewSurface(),
		width:   screenWidth,
		height:  screenHeight,
	}
}

var movementKeys = []struct {
	key ebiten.Key
	dir protocol.Direction
}{
	{ebiten.KeyW, protocol.DirUp},
	{ebiten.KeyS, protocol.DirDown},
	{ebiten.KeyA, protocol.DirLeft},
	{ebiten.KeyD, protocol.DirRight},
}

// Update polls the keyboard; ebiten reports real key releases so the hold
// window is not needed here.
func (g *Game) Update() error {
	if g.loop.Stopped() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.loop.Stop()
		return ebiten.Termination
	}
	now := time.Now()
	for _, mk := range movementKeys {
		g.loop.Input().Set(mk.dir, ebiten.IsKeyPressed(mk.key), now)
	}
	return nil
}

// Draw runs one loop frame and blits the visible part of the map
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.frame = g.loop.Frame(g.surface, camera.Size{W: float64(g.width), H: float64(g.height)})

	if img := g.surface.Image(); img != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(g.frame.Offset.X, g.frame.Offset.Y)
		screen.DrawImage(img, op)
	}

	hud := g.loop.HUD()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Status: %s\nPosition: %s\nBots: %s\nFPS: %0.1f",
		hud.Status, hud.Position, hud.BotCount, ebiten.ActualFPS()))
}

// Layout follows the window size so the camera always fills the view
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed
func Run(loop *game.Loop, title string) error {
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(NewGame(loop))
	loop.Stop()
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
