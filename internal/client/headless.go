// Package client wires the frame loop into its terminal and headless hosts.
package client

import (
	"context"
	"fmt"
	"image/png"
	"os"

	"go.uber.org/zap"

	"github.com/yourusername/botfield/internal/client/camera"
	"github.com/yourusername/botfield/internal/client/game"
	"github.com/yourusername/botfield/internal/client/render"
)

// HeadlessOptions configures RunHeadless
type HeadlessOptions struct {
	FPS      int
	View     camera.Size
	Snapshot string // PNG path for the last frame, empty to skip
}

// RunHeadless drives the loop on an offscreen raster canvas until ctx is
// done or the loop is stopped. Frames are logged at debug level.
func RunHeadless(ctx context.Context, loop *game.Loop, opts HeadlessOptions, logger *zap.SugaredLogger) error {
	if opts.View.W <= 0 || opts.View.H <= 0 {
		opts.View = camera.Size{W: 800, H: 600}
	}
	sched := game.NewTickerScheduler(opts.FPS)
	defer sched.Stop()

	canvas := render.NewCanvas(0)
	lastHUD := loop.HUD()
	err := loop.Run(ctx, sched, canvas, func() camera.Size { return opts.View }, func(f game.Frame) {
		if hud := loop.HUD(); hud != lastHUD {
			logger.Infow("status", "status", hud.Status, "position", hud.Position, "bots", hud.BotCount)
			lastHUD = hud
		}
		logger.Debugw("frame", "seq", f.Seq, "offset_x", f.Offset.X, "offset_y", f.Offset.Y, "dir", string(f.Direction), "sent", f.Sent)
	})
	if err != nil {
		return err
	}

	if opts.Snapshot != "" {
		if err := WritePNG(canvas, opts.Snapshot); err != nil {
			return err
		}
		logger.Infow("wrote snapshot", "path", opts.Snapshot)
	}
	return nil
}

// WritePNG saves the canvas to path
func WritePNG(c *render.Canvas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := png.Encode(f, c.Image()); err != nil {
		f.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return f.Close()
}
