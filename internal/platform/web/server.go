// Package web serves the snake game to browsers: an embedded canvas page and
// a WebSocket endpoint that runs one game per connection.
package web

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

//go:embed static/index.html
var indexHTML []byte

// WebSocketPath is where the page connects.
const WebSocketPath = "/ws"

// ServerConfig holds configuration for the web server.
type ServerConfig struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// Game is the playfield and clock configuration every session starts with.
	Game config.SnakeConfig
}

// DefaultServerConfig returns a config with sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Address: ":8080",
		Game:    config.DefaultSnakeConfig(),
	}
}

// Server hosts browser sessions.
type Server struct {
	config   ServerConfig
	http     *http.Server
	upgrader websocket.Upgrader
	logger   *log.Logger

	// ctx is cancelled on shutdown to stop every session loop
	ctx    context.Context
	cancel context.CancelFunc

	// mu guards closed so no session is added once Shutdown waits
	mu       sync.Mutex
	closed   bool
	sessions sync.WaitGroup
}

// NewServer creates a web server with the given configuration.
func NewServer(cfg ServerConfig) (*Server, error) {
	if err := cfg.Game.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	srv := &Server{
		config: cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		logger: log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "snake-web",
		}),
		ctx:    ctx,
		cancel: cancel,
	}

	srv.http = &http.Server{
		Addr:              cfg.Address,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv, nil
}

// Handler returns the HTTP routes: the page at "/" and the socket at /ws.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc(WebSocketPath, s.handleSocket)
	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}

// handleSocket upgrades the request and plays one game until the
// connection closes or the server shuts down.
func (s *Server) handleSocket(w http.ResponseWriter, r *http.Request) {
	if !s.admit() {
		http.Error(w, "server is shutting down", http.StatusServiceUnavailable)
		return
	}
	defer s.sessions.Done()

	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied with an HTTP error
		s.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer ws.Close()

	game, err := s.newGame()
	if err != nil {
		// Config was validated at startup
		s.logger.Error("cannot create game", "error", err)
		return
	}

	id := uuid.NewString()
	logger := s.logger.With("session", id)
	logger.Info("session started", "remote", r.RemoteAddr)
	start := time.Now()

	sess := &session{
		id:     id,
		ws:     ws,
		game:   game,
		tick:   s.config.Game.TickInterval(),
		logger: logger,
	}
	if err := sess.run(s.ctx); err != nil {
		logger.Warn("session error", "error", err)
	}

	logger.Info("session ended",
		"score", game.Score(),
		"duration", time.Since(start).Round(time.Second),
	)
}

// admit registers a new session unless the server is shutting down.
func (s *Server) admit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.sessions.Add(1)
	return true
}

// newGame builds a fresh game. A zero seed means time based.
func (s *Server) newGame() (*snake.GameState, error) {
	seed := s.config.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return snake.New(s.config.Game.Options(rand.New(rand.NewSource(seed))))
}

// ListenAndServe starts the web server and blocks until shutdown.
func (s *Server) ListenAndServe() error {
	s.logger.Info("starting web server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errc := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- fmt.Errorf("web server: %w", err)
		}
	}()

	select {
	case <-done:
	case err := <-errc:
		s.cancel()
		return err
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown stops accepting connections, ends every session and waits for
// them to finish.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.cancel()
	err := s.http.Shutdown(ctx)

	// Hijacked connections are not tracked by http.Server
	finished := make(chan struct{})
	go func() {
		s.sessions.Wait()
		close(finished)
	}()
	select {
	case <-finished:
	case <-ctx.Done():
		return ctx.Err()
	}
	return err
}

// Addr returns the server's listen address string.
func (s *Server) Addr() string {
	return s.config.Address
}
