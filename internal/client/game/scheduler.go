package game

import (
	"context"
	"errors"
	"time"

	"github.com/yourusername/botfield/internal/client/camera"
	"github.com/yourusername/botfield/internal/client/render"
)

// Scheduler blocks until the next frame should run
type Scheduler interface {
	Next(ctx context.Context) error
}

// TickerScheduler paces frames with a time.Ticker
type TickerScheduler struct {
	ticker *time.Ticker
}

// NewTickerScheduler creates a scheduler firing fps times per second
func NewTickerScheduler(fps int) *TickerScheduler {
	if fps <= 0 {
		fps = 60
	}
	return &TickerScheduler{ticker: time.NewTicker(time.Second / time.Duration(fps))}
}

func (s *TickerScheduler) Next(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ticker.C:
		return nil
	}
}

// Stop releases the ticker
func (s *TickerScheduler) Stop() {
	s.ticker.Stop()
}

// Run drives the loop from sched until Stop is called or ctx is cancelled.
// onFrame, if set, sees every frame after it ran.
func (l *Loop) Run(ctx context.Context, sched Scheduler, s render.Surface, view func() camera.Size, onFrame func(Frame)) error {
	for !l.Stopped() {
		f := l.Frame(s, view())
		if onFrame != nil {
			onFrame(f)
		}
		if l.Stopped() {
			break
		}
		if err := sched.Next(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}
	}
	return nil
}
