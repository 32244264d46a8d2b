// Package input tracks which movement keys are held.
package input

import (
	"strings"
	"time"

	"github.com/yourusername/botfield/internal/protocol"
)

// DefaultHoldWindow is how long a terminal key counts as held after its last
// press or auto-repeat. Terminals report no key releases.
const DefaultHoldWindow = 200 * time.Millisecond

// precedence order used by CurrentDirection
var precedence = [...]protocol.Direction{
	protocol.DirUp,
	protocol.DirDown,
	protocol.DirLeft,
	protocol.DirRight,
}

// KeyDirection maps w/a/s/d, in either case, to a direction
func KeyDirection(key string) (protocol.Direction, bool) {
	switch strings.ToLower(key) {
	case "w":
		return protocol.DirUp, true
	case "s":
		return protocol.DirDown, true
	case "a":
		return protocol.DirLeft, true
	case "d":
		return protocol.DirRight, true
	}
	return protocol.DirNone, false
}

func slot(dir protocol.Direction) int {
	for i, d := range precedence {
		if d == dir {
			return i
		}
	}
	return -1
}

// Tracker holds the pressed/released state of the four movement keys
type Tracker struct {
	held     [len(precedence)]bool
	lastSeen [len(precedence)]time.Time
}

// NewTracker creates a tracker with nothing held
func NewTracker() *Tracker {
	return &Tracker{}
}

// Press marks dir as held. Pressing a held key only refreshes its timestamp.
func (t *Tracker) Press(dir protocol.Direction, now time.Time) {
	i := slot(dir)
	if i < 0 {
		return
	}
	t.held[i] = true
	t.lastSeen[i] = now
}

// Release marks dir as not held
func (t *Tracker) Release(dir protocol.Direction) {
	if i := slot(dir); i >= 0 {
		t.held[i] = false
	}
}

// Set presses or releases dir; used by hosts that poll key state
func (t *Tracker) Set(dir protocol.Direction, held bool, now time.Time) {
	if held {
		t.Press(dir, now)
		return
	}
	t.Release(dir)
}

// PressKey presses the direction bound to key and reports whether key is a movement key
func (t *Tracker) PressKey(key string, now time.Time) bool {
	dir, ok := KeyDirection(key)
	if ok {
		t.Press(dir, now)
	}
	return ok
}

// ExpireBefore releases every key whose last press is older than cutoff
func (t *Tracker) ExpireBefore(cutoff time.Time) {
	for i := range t.held {
		if t.held[i] && t.lastSeen[i].Before(cutoff) {
			t.held[i] = false
		}
	}
}

// Held reports whether dir is held
func (t *Tracker) Held(dir protocol.Direction) bool {
	i := slot(dir)
	return i >= 0 && t.held[i]
}

// CurrentDirection returns the first held key in up, down, left, right
// order, or DirNone. Only one direction is ever produced per frame: holding
// up and down together yields up.
func (t *Tracker) CurrentDirection() protocol.Direction {
	for i, dir := range precedence {
		if t.held[i] {
			return dir
		}
	}
	return protocol.DirNone
}
