package protocol //handles communication protocol between client and game server
// WebSocket message types and payloads
import (
	"encoding/json"
	"errors"
	"fmt"
)

// MessageType is the "type" discriminator carried by every message
type MessageType string

const (
	// Server -> Client
	MsgInit   MessageType = "init"   // one-time session bootstrap
	MsgUpdate MessageType = "update" // per-tick snapshot

	// Client -> Server
	MsgMove MessageType = "move"
)

var (
	// ErrMalformed is returned for frames that are not valid messages
	ErrMalformed = errors.New("malformed message")
	// ErrUnknownType is returned for well-formed frames with an unhandled type
	ErrUnknownType = errors.New("unknown message type")
	// ErrInvalidDirection is returned when encoding a move without a direction
	ErrInvalidDirection = errors.New("invalid direction")
)

// Direction is a movement intent sent to the server
type Direction string

const (
	DirNone  Direction = ""
	DirUp    Direction = "up"
	DirDown  Direction = "down"
	DirLeft  Direction = "left"
	DirRight Direction = "right"
)

// Valid reports whether d is one of the four movement directions
func (d Direction) Valid() bool {
	switch d {
	case DirUp, DirDown, DirLeft, DirRight:
		return true
	}
	return false
}

// Point is a position in world coordinates
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Inbound is a decoded server -> client message
type Inbound interface {
	Type() MessageType
}

// InitMessage bootstraps a session
type InitMessage struct {
	PlayerPos Point
	MapSize   int
	BotCount  int
}

func (InitMessage) Type() MessageType { return MsgInit }

// UpdateMessage carries the full player and bot state for one server tick
type UpdateMessage struct {
	Player Point
	Bots   []Point
}

func (UpdateMessage) Type() MessageType { return MsgUpdate }

// MovePayload is the outbound movement command
type MovePayload struct {
	Type      MessageType `json:"type"`
	Direction Direction   `json:"direction"`
}

// envelope is only used to read the discriminator
type envelope struct {
	Type MessageType `json:"type"`
}

// wire shapes; pointers let us tell a missing field from a zero value
type initWire struct {
	PlayerPos *Point `json:"player_pos"`
	MapSize   *int   `json:"map_size"`
	BotCount  *int   `json:"bot_count"`
}

type updateWire struct {
	Player *Point   `json:"player"`
	Bots   *[]Point `json:"bots"`
}

// Decode parses one text frame into a typed message
func Decode(data []byte) (Inbound, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	switch env.Type {
	case MsgInit:
		var w initWire
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, fmt.Errorf("%w: init: %v", ErrMalformed, err)
		}
		if w.PlayerPos == nil || w.MapSize == nil || w.BotCount == nil {
			return nil, fmt.Errorf("%w: init: missing player_pos, map_size or bot_count", ErrMalformed)
		}
		return InitMessage{
			PlayerPos: *w.PlayerPos,
			MapSize:   *w.MapSize,
			BotCount:  *w.BotCount,
		}, nil

	case MsgUpdate:
		var w updateWire
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, fmt.Errorf("%w: update: %v", ErrMalformed, err)
		}
		if w.Player == nil || w.Bots == nil || *w.Bots == nil {
			return nil, fmt.Errorf("%w: update: missing player or bots", ErrMalformed)
		}
		return UpdateMessage{Player: *w.Player, Bots: *w.Bots}, nil

	case "":
		return nil, fmt.Errorf("%w: missing type", ErrMalformed)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, env.Type)
	}
}

// EncodeMove encodes a move command
func EncodeMove(dir Direction) ([]byte, error) {
	if !dir.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDirection, dir)
	}
	return json.Marshal(MovePayload{Type: MsgMove, Direction: dir})
}
