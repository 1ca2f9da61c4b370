package web

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Message types. The browser sends click, key, restart and giveup; the
// server answers every state change with a state message.
//
//	{"type":"click","x":420,"y":680}   pointer press in canvas pixels
//	{"type":"key","dir":"up"}          keyboard direction
//	{"type":"restart"}                 restart a finished game
//	{"type":"giveup"}                  end the running game
//	{"type":"state","session":"..","state":{..}}
const (
	MsgClick   = "click"
	MsgKey     = "key"
	MsgRestart = "restart"
	MsgGiveUp  = "giveup"
	MsgState   = "state"
)

// ErrBadMessage is returned for client messages that cannot be applied.
var ErrBadMessage = errors.New("bad client message")

// ClientMessage is an incoming message from the browser.
type ClientMessage struct {
	Type string `json:"type"`
	X    int    `json:"x,omitempty"`
	Y    int    `json:"y,omitempty"`
	Dir  string `json:"dir,omitempty"`
}

// StateMsg carries a snapshot to the browser.
type StateMsg struct {
	Type    string         `json:"type"`
	Session string         `json:"session"`
	State   snake.Snapshot `json:"state"`
}

// decodeMessage parses and validates a raw client message.
func decodeMessage(raw []byte) (ClientMessage, error) {
	var msg ClientMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return msg, fmt.Errorf("%w: %v", ErrBadMessage, err)
	}

	switch msg.Type {
	case MsgClick, MsgRestart, MsgGiveUp:
	case MsgKey:
		if core.ActionFromName(msg.Dir) == core.ActionNone {
			return msg, fmt.Errorf("%w: unknown direction %q", ErrBadMessage, msg.Dir)
		}
	default:
		return msg, fmt.Errorf("%w: unknown type %q", ErrBadMessage, msg.Type)
	}
	return msg, nil
}

// apply routes the message into the game, mirroring the terminal controls.
func (m ClientMessage) apply(g *snake.GameState) {
	switch m.Type {
	case MsgClick:
		snake.Click(g, m.X, m.Y)
	case MsgKey:
		snake.ApplyAction(g, core.ActionFromName(m.Dir))
	case MsgRestart:
		snake.ApplyAction(g, core.ActionRestart)
	case MsgGiveUp:
		snake.ApplyAction(g, core.ActionGiveUp)
	}
}
