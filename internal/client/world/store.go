package world

import (
	"errors"
	"fmt"
	"sync"

	"github.com/yourusername/botfield/internal/protocol"
)

// DefaultMapSize is used until the server's init message arrives
const DefaultMapSize = 1000

// MaxMapSize bounds the map size an init message may announce; the raster
// surface holds MaxMapSize x MaxMapSize RGBA pixels.
const MaxMapSize = 8192

// ErrInvalidMapSize is returned for an init message with a map size outside 1..MaxMapSize
var ErrInvalidMapSize = errors.New("invalid map size")

// Snapshot is the replace-in-one-step view of the world the loop renders.
// Bots must be treated as read-only; the store never mutates a stored slice.
type Snapshot struct {
	Player  protocol.Point
	Bots    []protocol.Point
	MapSize int
}

// Store holds the latest snapshot plus the session values from init
type Store struct {
	snap     Snapshot
	botCount int
	mu       sync.RWMutex
}

// NewStore creates a store with explicit defaults: player at the origin,
// no bots, default map size.
func NewStore() *Store {
	return &Store{
		snap: Snapshot{
			Bots:    []protocol.Point{},
			MapSize: DefaultMapSize,
		},
	}
}

// Apply dispatches one decoded server message into the store.
// A rejected message leaves the store untouched.
func (s *Store) Apply(msg protocol.Inbound) error {
	switch m := msg.(type) {
	case protocol.InitMessage:
		if m.MapSize <= 0 || m.MapSize > MaxMapSize {
			return fmt.Errorf("%w: %d", ErrInvalidMapSize, m.MapSize)
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		// repeated inits overwrite; bots are left for the next update
		s.snap = Snapshot{
			Player:  m.PlayerPos,
			Bots:    s.snap.Bots,
			MapSize: m.MapSize,
		}
		s.botCount = m.BotCount
		return nil

	case protocol.UpdateMessage:
		bots := m.Bots
		if bots == nil {
			bots = []protocol.Point{}
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		s.snap = Snapshot{
			Player:  m.Player,
			Bots:    bots,
			MapSize: s.snap.MapSize,
		}
		return nil

	case nil:
		return fmt.Errorf("%w: nil message", protocol.ErrMalformed)

	default:
		return fmt.Errorf("%w: %q", protocol.ErrUnknownType, msg.Type())
	}
}

// Snapshot returns the current snapshot
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// BotCount returns the bot count announced by init
func (s *Store) BotCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.botCount
}
