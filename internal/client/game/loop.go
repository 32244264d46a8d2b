// Package game runs the client's render/update loop.
package game

import (
	"fmt"
	"math"
	"strconv"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/yourusername/botfield/internal/client/camera"
	"github.com/yourusername/botfield/internal/client/connection"
	"github.com/yourusername/botfield/internal/client/input"
	"github.com/yourusername/botfield/internal/client/render"
	"github.com/yourusername/botfield/internal/client/world"
	"github.com/yourusername/botfield/internal/protocol"
)

// Conn is the part of the connection manager the loop needs
type Conn interface {
	Events() <-chan connection.Event
	State() connection.State
	SendMove(dir protocol.Direction) bool
}

// HUD holds the three status texts shown next to the map
type HUD struct {
	Status   string
	Position string
	BotCount string
}

// Frame describes what one invocation of Loop.Frame did
type Frame struct {
	Seq       uint64
	Snapshot  world.Snapshot
	Offset    camera.Offset
	Direction protocol.Direction
	Sent      bool
}

// Loop is the render/update loop. Frame, Dispatch and the accessors other
// than Stats and Stopped must all be called from the same goroutine.
type Loop struct {
	conn    Conn
	store   *world.Store
	input   *input.Tracker
	log     *zap.SugaredLogger
	stats   counters
	hud     HUD
	seq     uint64
	stopped atomic.Bool

	// limits "discarding message" lines when a server repeats a bad message
	rejectLog *rate.Limiter
}

// NewLoop creates a loop over an existing connection, store and tracker
func NewLoop(conn Conn, store *world.Store, tracker *input.Tracker, logger *zap.SugaredLogger) *Loop {
	snap := store.Snapshot()
	return &Loop{
		conn:      conn,
		store:     store,
		input:     tracker,
		log:       logger,
		rejectLog: rate.NewLimiter(rate.Every(time.Second), 1),
		hud: HUD{
			Status:   conn.State().Status(),
			Position: formatPosition(snap.Player),
			BotCount: strconv.Itoa(store.BotCount()),
		},
	}
}

// Input returns the tracker hosts feed key events into
func (l *Loop) Input() *input.Tracker { return l.input }

// HUD returns the current status texts
func (l *Loop) HUD() HUD { return l.hud }

// Stats returns the loop counters
func (l *Loop) Stats() Stats { return l.stats.snapshot() }

// Stop asks hosts not to schedule another frame
func (l *Loop) Stop() { l.stopped.Store(true) }

// Stopped reports whether Stop was called
func (l *Loop) Stopped() bool { return l.stopped.Load() }

// Frame performs one frame: apply pending server messages, redraw the scene,
// compute the camera and send the current movement intent. Scheduling the
// next frame is left to the host.
func (l *Loop) Frame(s render.Surface, view camera.Size) Frame {
	l.drain()

	snap := l.store.Snapshot()

	if s.Size() != snap.MapSize {
		s.Resize(snap.MapSize)
	}
	s.Clear()
	s.Fill(render.Ground)
	for _, bot := range snap.Bots {
		s.FillCircle(bot, render.BotRadius, render.Bot)
	}
	s.FillCircle(snap.Player, render.PlayerRadius, render.Player)

	offset := camera.Follow(view, snap.Player, snap.MapSize)

	dir := l.input.CurrentDirection()
	sent := false
	if dir != protocol.DirNone {
		sent = l.conn.SendMove(dir)
		if sent {
			l.stats.movesSent.Add(1)
		}
	}

	l.seq++
	l.stats.frames.Add(1)

	return Frame{
		Seq:       l.seq,
		Snapshot:  snap,
		Offset:    offset,
		Direction: dir,
		Sent:      sent,
	}
}

// drain applies every event queued by the connection without blocking
func (l *Loop) drain() {
	events := l.conn.Events()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			l.Dispatch(ev)
		default:
			return
		}
	}
}

// Dispatch applies one connection event. Hosts and tests may also inject
// synthetic events through it.
func (l *Loop) Dispatch(ev connection.Event) {
	switch e := ev.(type) {
	case connection.StateChangedEvent:
		l.hud.Status = e.To.Status()
		if e.Error != nil {
			l.log.Warnw("connection lost", "state", e.To.String(), "err", e.Error)
		}

	case connection.MessageEvent:
		if err := l.store.Apply(e.Message); err != nil {
			l.stats.messagesRejected.Add(1)
			if l.rejectLog.Allow() {
				l.log.Warnw("discarding message", "err", err, "rejected", l.stats.messagesRejected.Load())
			}
			return
		}
		l.stats.messagesApplied.Add(1)

		switch m := e.Message.(type) {
		case protocol.InitMessage:
			l.hud.Position = formatPosition(m.PlayerPos)
			l.hud.BotCount = strconv.Itoa(m.BotCount)
		case protocol.UpdateMessage:
			l.hud.Position = formatPosition(m.Player)
		}
	}
}

// formatPosition renders "x, y" with each value rounded half away from zero
func formatPosition(p protocol.Point) string {
	return fmt.Sprintf("%d, %d", int64(math.Round(p.X)), int64(math.Round(p.Y)))
}
