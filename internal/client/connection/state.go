package connection

// State is the lifecycle state of the server connection
type State int

const (
	StateConnecting State = iota
	StateOpen
	StateClosed
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	case StateErrored:
		return "errored"
	}
	return "unknown"
}

// Status returns the text shown in the status indicator
func (s State) Status() string {
	switch s {
	case StateConnecting:
		return "CONNECTING"
	case StateOpen:
		return "CONNECTED"
	case StateClosed:
		return "DISCONNECTED"
	case StateErrored:
		return "ERROR"
	}
	return "UNKNOWN"
}

// CanTransition reports whether the state machine allows moving from s to next.
// Closed is terminal except for an error; Connecting may close directly when
// the client shuts down before the dial finished.
func (s State) CanTransition(next State) bool {
	if next == StateErrored {
		return s != StateErrored
	}
	switch s {
	case StateConnecting:
		return next == StateOpen || next == StateClosed
	case StateOpen:
		return next == StateClosed
	case StateErrored:
		return next == StateClosed
	}
	return false
}
