package connection

import "github.com/yourusername/botfield/internal/protocol"

// Event represents events from the connection manager
type Event interface {
	isEvent()
}

// StateChangedEvent is sent on every lifecycle transition
type StateChangedEvent struct {
	From  State
	To    State
	Error error // set when To is StateErrored
}

func (StateChangedEvent) isEvent() {}

// MessageEvent carries one decoded server message
type MessageEvent struct {
	Message protocol.Inbound
}

func (MessageEvent) isEvent() {}
