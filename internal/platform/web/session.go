package web

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

const (
	writeWait   = 5 * time.Second
	inboxSize   = 16
	maxReadSize = 1024
)

// session drives one browser game. Only run touches the GameState and the
// socket writer; readLoop only decodes.
type session struct {
	id     string
	ws     *websocket.Conn
	game   *snake.GameState
	tick   time.Duration
	logger *log.Logger
}

// run ticks the game and applies client messages until ctx is cancelled or
// the connection drops. A snapshot is sent after every change.
func (s *session) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	inbox := make(chan ClientMessage, inboxSize)
	go s.readLoop(ctx, cancel, inbox)

	// Closing the socket unblocks the reader
	go func() {
		<-ctx.Done()
		s.ws.Close()
	}()

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	if err := s.send(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case msg := <-inbox:
			s.handle(msg)

		case <-ticker.C:
			res := s.game.Tick()
			if !res.Moved {
				continue
			}
			if res.Ate {
				s.logger.Debug("food eaten", "head", res.Head, "score", s.game.Score())
			}
		}

		if err := s.send(); err != nil {
			return err
		}
	}
}

// handle applies one client message and logs the state transitions.
func (s *session) handle(msg ClientMessage) {
	wasTerminal := s.game.Terminal()
	msg.apply(s.game)

	switch {
	case wasTerminal && !s.game.Terminal():
		s.logger.Info("restart", "via", msg.Type)
	case !wasTerminal && s.game.Terminal():
		s.logger.Info("gave up", "score", s.game.Score())
	}
}

// readLoop decodes client messages into out until the connection fails.
// Malformed messages are logged and dropped.
func (s *session) readLoop(ctx context.Context, cancel context.CancelFunc, out chan<- ClientMessage) {
	defer cancel()

	s.ws.SetReadLimit(maxReadSize)
	for {
		_, raw, err := s.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("read error", "error", err)
			}
			return
		}

		msg, err := decodeMessage(raw)
		if err != nil {
			s.logger.Warn("dropping message", "error", err)
			continue
		}

		select {
		case out <- msg:
		case <-ctx.Done():
			return
		}
	}
}

// send writes the current snapshot.
func (s *session) send() error {
	if err := s.ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return s.ws.WriteJSON(StateMsg{
		Type:    MsgState,
		Session: s.id,
		State:   s.game.Snapshot(),
	})
}
