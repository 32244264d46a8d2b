package protocol

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestDecodeInit(t *testing.T) {
	msg, err := Decode([]byte(`{"type":"init","player_pos":{"x":500,"y":500},"map_size":1000,"bot_count":2}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	im, ok := msg.(InitMessage)
	if !ok {
		t.Fatalf("expected InitMessage, got %T", msg)
	}
	if im.PlayerPos != (Point{X: 500, Y: 500}) || im.MapSize != 1000 || im.BotCount != 2 {
		t.Fatalf("unexpected init: %#v", im)
	}
}

func TestDecodeUpdateIgnoresBotIDs(t *testing.T) {
	msg, err := Decode([]byte(`{"type":"update","player":{"x":510,"y":500},"bots":[{"id":"bot_0","x":100,"y":100},{"id":"bot_1","x":900,"y":900}]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	update, ok := msg.(UpdateMessage)
	if !ok {
		t.Fatalf("expected UpdateMessage, got %T", msg)
	}
	if update.Player != (Point{X: 510, Y: 500}) {
		t.Fatalf("unexpected player: %#v", update.Player)
	}
	want := []Point{{X: 100, Y: 100}, {X: 900, Y: 900}}
	if len(update.Bots) != len(want) {
		t.Fatalf("expected %d bots, got %d", len(want), len(update.Bots))
	}
	for i := range want {
		if update.Bots[i] != want[i] {
			t.Fatalf("bot %d: expected %v, got %v", i, want[i], update.Bots[i])
		}
	}
}

func TestDecodeUpdateWithNoBots(t *testing.T) {
	msg, err := Decode([]byte(`{"type":"update","player":{"x":1,"y":2},"bots":[]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bots := msg.(UpdateMessage).Bots; bots == nil || len(bots) != 0 {
		t.Fatalf("expected empty non-nil bot list, got %#v", bots)
	}
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"not json", `hello`, ErrMalformed},
		{"no type", `{"player":{"x":1,"y":1}}`, ErrMalformed},
		{"unknown type", `{"type":"chat","text":"hi"}`, ErrUnknownType},
		{"init missing map size", `{"type":"init","player_pos":{"x":1,"y":1},"bot_count":3}`, ErrMalformed},
		{"init fractional map size", `{"type":"init","player_pos":{"x":1,"y":1},"map_size":10.5,"bot_count":3}`, ErrMalformed},
		{"update missing bots", `{"type":"update","player":{"x":1,"y":1}}`, ErrMalformed},
		{"update null bots", `{"type":"update","player":{"x":1,"y":1},"bots":null}`, ErrMalformed},
		{"update missing player", `{"type":"update","bots":[]}`, ErrMalformed},
		{"update bad coordinate", `{"type":"update","player":{"x":"a","y":1},"bots":[]}`, ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := Decode([]byte(tt.data))
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got msg=%v err=%v", tt.want, msg, err)
			}
		})
	}
}

func TestEncodeMove(t *testing.T) {
	for _, dir := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		data, err := EncodeMove(dir)
		if err != nil {
			t.Fatalf("encode %q: %v", dir, err)
		}
		var got map[string]string
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("encoded move is not json: %v", err)
		}
		if got["type"] != "move" || got["direction"] != string(dir) || len(got) != 2 {
			t.Fatalf("unexpected move frame: %s", data)
		}
	}
}

func TestEncodeMoveRejectsNone(t *testing.T) {
	if _, err := EncodeMove(DirNone); !errors.Is(err, ErrInvalidDirection) {
		t.Fatalf("expected ErrInvalidDirection, got %v", err)
	}
	if _, err := EncodeMove("north"); !errors.Is(err, ErrInvalidDirection) {
		t.Fatalf("expected ErrInvalidDirection, got %v", err)
	}
}
