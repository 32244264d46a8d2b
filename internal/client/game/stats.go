package game

import "sync/atomic"

// Stats counts loop activity; safe to read from any goroutine
type Stats struct {
	Frames           uint64
	MovesSent        uint64
	MessagesApplied  uint64
	MessagesRejected uint64
}

type counters struct {
	frames           atomic.Uint64
	movesSent        atomic.Uint64
	messagesApplied  atomic.Uint64
	messagesRejected atomic.Uint64
}

func (c *counters) snapshot() Stats {
	return Stats{
		Frames:           c.frames.Load(),
		MovesSent:        c.movesSent.Load(),
		MessagesApplied:  c.messagesApplied.Load(),
		MessagesRejected: c.messagesRejected.Load(),
	}
}
