package client

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/yourusername/botfield/internal/client/camera"
	"github.com/yourusername/botfield/internal/client/connection"
	"github.com/yourusername/botfield/internal/client/game"
	"github.com/yourusername/botfield/internal/client/input"
	"github.com/yourusername/botfield/internal/client/world"
	"github.com/yourusername/botfield/internal/protocol"
)

type stubConn struct {
	events chan connection.Event
}

func (c *stubConn) Events() <-chan connection.Event  { return c.events }
func (c *stubConn) State() connection.State          { return connection.StateOpen }
func (c *stubConn) SendMove(protocol.Direction) bool { return true }

func TestRunHeadlessWritesSnapshot(t *testing.T) {
	conn := &stubConn{events: make(chan connection.Event, 4)}
	msg, err := protocol.Decode([]byte(`{"type":"update","player":{"x":50,"y":50},"bots":[{"x":10,"y":10}]}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	conn.events <- connection.MessageEvent{Message: msg}

	loop := game.NewLoop(conn, world.NewStore(), input.NewTracker(), zap.NewNop().Sugar())
	path := filepath.Join(t.TempDir(), "frame.png")

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	err = RunHeadless(ctx, loop, HeadlessOptions{FPS: 60, View: camera.Size{W: 200, H: 200}, Snapshot: path}, zap.NewNop().Sugar())
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open snapshot: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if got := img.Bounds().Dx(); got != world.DefaultMapSize {
		t.Fatalf("expected a %d px snapshot, got %d", world.DefaultMapSize, got)
	}
	r, g, b, _ := img.At(50, 50).RGBA()
	if r>>8 != 0xff || g>>8 != 0 || b>>8 != 0 {
		t.Fatalf("expected the player drawn red at its position, got %d,%d,%d", r>>8, g>>8, b>>8)
	}
	if loop.Stats().Frames == 0 {
		t.Fatalf("expected frames to run")
	}
}
