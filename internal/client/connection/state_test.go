package connection

import "testing"

func TestStateTransitions(t *testing.T) {
	tests := []struct {
		from, to State
		want     bool
	}{
		{StateConnecting, StateOpen, true},
		{StateConnecting, StateErrored, true},
		{StateConnecting, StateClosed, true},
		{StateOpen, StateClosed, true},
		{StateOpen, StateErrored, true},
		{StateOpen, StateConnecting, false},
		{StateErrored, StateClosed, true},
		{StateErrored, StateOpen, false},
		{StateErrored, StateErrored, false},
		{StateClosed, StateOpen, false},
		{StateClosed, StateConnecting, false},
		{StateClosed, StateErrored, true},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransition(tt.to); got != tt.want {
			t.Errorf("%s -> %s: expected %v, got %v", tt.from, tt.to, tt.want, got)
		}
	}
}

func TestStateStatusText(t *testing.T) {
	want := map[State]string{
		StateConnecting: "CONNECTING",
		StateOpen:       "CONNECTED",
		StateClosed:     "DISCONNECTED",
		StateErrored:    "ERROR",
	}
	for state, text := range want {
		if got := state.Status(); got != text {
			t.Errorf("%s: expected %q, got %q", state, text, got)
		}
	}
}
