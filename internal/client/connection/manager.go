package connection

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/yourusername/botfield/internal/protocol"
)

// ErrAlreadyStarted is returned by Connect on a manager that already dialed
var ErrAlreadyStarted = errors.New("connection already started")

// Options configures a Manager
type Options struct {
	ServerURL        string
	HandshakeTimeout time.Duration // zero means no timeout
	WriteWait        time.Duration // zero means no write deadline
	SendBuffer       int
	EventBuffer      int
}

// Manager manages the WebSocket connection to the game server.
// There is exactly one dial per Manager; once the connection is closed or
// errored the manager stays that way.
type Manager struct {
	opts      Options
	log       *zap.SugaredLogger
	sessionID string

	conn    *websocket.Conn
	state   State
	started bool
	closing bool
	mu      sync.RWMutex

	events    chan Event
	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once

	// limits "bad frame" log lines when a server floods us with garbage
	badFrameLog *rate.Limiter
}

// NewManager creates a new connection manager in state Connecting
func NewManager(opts Options, logger *zap.SugaredLogger) *Manager {
	if opts.SendBuffer <= 0 {
		opts.SendBuffer = 16
	}
	if opts.EventBuffer <= 0 {
		opts.EventBuffer = 256
	}
	sessionID := uuid.New().String()
	return &Manager{
		opts:        opts,
		log:         logger.With("session", sessionID),
		sessionID:   sessionID,
		state:       StateConnecting,
		events:      make(chan Event, opts.EventBuffer),
		send:        make(chan []byte, opts.SendBuffer),
		done:        make(chan struct{}),
		badFrameLog: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

// SessionID identifies this connection attempt in logs
func (m *Manager) SessionID() string {
	return m.sessionID
}

// Events returns the channel decoded messages and state changes are pushed to
func (m *Manager) Events() <-chan Event {
	return m.events
}

// State returns the current connection state
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Connect establishes the WebSocket connection to the server
func (m *Manager) Connect(ctx context.Context) error {
	m.mu.Lock()
	if m.started || m.closing {
		m.mu.Unlock()
		return ErrAlreadyStarted
	}
	m.started = true
	m.mu.Unlock()

	dialer := websocket.Dialer{
		HandshakeTimeout: m.opts.HandshakeTimeout,
	}

	m.log.Infow("connecting", "url", m.opts.ServerURL)
	conn, _, err := dialer.DialContext(ctx, m.opts.ServerURL, nil)
	if err != nil {
		err = fmt.Errorf("dial %s: %w", m.opts.ServerURL, err)
		m.fail(err)
		return err
	}

	m.mu.Lock()
	if m.closing {
		// Close raced with the dial
		m.mu.Unlock()
		conn.Close()
		return ErrAlreadyStarted
	}
	m.conn = conn
	m.mu.Unlock()

	if !m.transition(StateOpen, nil) {
		conn.Close()
		return ErrAlreadyStarted
	}
	m.log.Infow("connected", "url", m.opts.ServerURL)

	go m.readPump(conn)
	go m.writePump(conn)

	return nil
}

// SendMove queues a move command. It reports whether the frame was queued;
// moves are dropped while the connection is not open or the queue is full.
func (m *Manager) SendMove(dir protocol.Direction) bool {
	if !dir.Valid() || m.State() != StateOpen {
		return false
	}

	msg, err := protocol.EncodeMove(dir)
	if err != nil {
		return false
	}

	select {
	case m.send <- msg:
		return true
	case <-m.done:
		return false
	default:
		m.log.Debugw("send queue full, dropping move", "direction", dir)
		return false
	}
}

// Close closes the WebSocket connection. Safe to call more than once.
func (m *Manager) Close() error {
	var err error
	m.closeOnce.Do(func() {
		m.mu.Lock()
		m.closing = true
		conn := m.conn
		m.mu.Unlock()

		close(m.done)

		if conn != nil {
			deadline := time.Now().Add(time.Second)
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
			err = conn.Close()
		}
		m.transition(StateClosed, nil)
	})
	return err
}

// transition moves the state machine and publishes the change
func (m *Manager) transition(next State, cause error) bool {
	m.mu.Lock()
	prev := m.state
	if !prev.CanTransition(next) {
		m.mu.Unlock()
		return false
	}
	m.state = next
	m.mu.Unlock()

	m.log.Infow("connection state changed", "from", prev.String(), "to", next.String())
	m.publishState(StateChangedEvent{From: prev, To: next, Error: cause})
	return true
}

// fail records a transport error unless we are already shutting down
func (m *Manager) fail(err error) {
	m.mu.RLock()
	closing := m.closing
	state := m.state
	m.mu.RUnlock()
	if closing || state == StateClosed {
		return
	}

	m.log.Errorw("websocket error", "err", err)
	m.transition(StateErrored, err)
}

// publishState never blocks; lifecycle events are rare and the buffer is large
func (m *Manager) publishState(ev Event) {
	select {
	case m.events <- ev:
	default:
		m.log.Warnw("event queue full, dropping state change")
	}
}

// publishMessage applies backpressure to the read pump until Close
func (m *Manager) publishMessage(ev Event) bool {
	select {
	case m.events <- ev:
		return true
	case <-m.done:
		return false
	}
}

// readPump reads messages from the WebSocket connection
func (m *Manager) readPump(conn *websocket.Conn) {
	defer conn.Close()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			m.handleReadError(err)
			return
		}

		msg, err := protocol.Decode(data)
		if err != nil {
			if m.badFrameLog.Allow() {
				m.log.Warnw("discarding message", "err", err)
			}
			continue
		}

		if !m.publishMessage(MessageEvent{Message: msg}) {
			return
		}
	}
}

func (m *Manager) handleReadError(err error) {
	m.mu.RLock()
	closing := m.closing
	m.mu.RUnlock()
	if closing {
		return
	}

	if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		m.log.Infow("server closed connection", "err", err)
		m.transition(StateClosed, nil)
		return
	}
	m.fail(err)
}

// writePump writes queued messages to the WebSocket connection
func (m *Manager) writePump(conn *websocket.Conn) {
	for {
		select {
		case <-m.done:
			return
		case msg := <-m.send:
			if m.opts.WriteWait > 0 {
				conn.SetWriteDeadline(time.Now().Add(m.opts.WriteWait))
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				m.fail(fmt.Errorf("write: %w", err))
				return
			}
		}
	}
}
