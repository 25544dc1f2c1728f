// Package tui hosts mission sessions in the terminal: a Bubble Tea console
// for local play, a mission log viewer and an SSH server via Wish.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-trek/internal/config"
	"github.com/vovakirdan/tui-trek/internal/core"
	"github.com/vovakirdan/tui-trek/internal/platform/console"
	"github.com/vovakirdan/tui-trek/internal/storage"
	"github.com/vovakirdan/tui-trek/internal/trek"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.trek/host_key.
	HostKeyPath string

	// DBPath is the path to the mission database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Game is the mission configuration every session plays with.
	Game config.TrekConfig

	// Difficulty is recorded with every mission.
	Difficulty string

	// RateLimit bounds how often one host may open sessions.
	RateLimit RateLimitConfig

	// Logger receives server and engine logs. Nil logs to stderr.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.trek/missions.db",
		IdleTimeout: 30 * time.Minute,
		Game:        config.DefaultTrekConfig(),
		Difficulty:  string(config.DifficultyNormal),
		RateLimit:   DefaultRateLimitConfig(),
	}
}

// SSHServer wraps a Wish SSH server. Every connection commands its own
// ship; missions are recorded in a shared database.
type SSHServer struct {
	config  SSHServerConfig
	server  *ssh.Server
	store   *storage.Store
	limiter *ConnLimiter
	logger  *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "trek-ssh",
		})
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open mission database", "error", err)
		store = nil
	}

	srv := &SSHServer{
		config:  cfg,
		store:   store,
		limiter: NewConnLimiter(cfg.RateLimit),
		logger:  logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("tui: cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".trek", "host_key")
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", mkdirErr)
	}

	// Middlewares run last to first: rate limit, log, then Bubble Tea
	// for PTY sessions, then the line console for everything else.
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			srv.lineMiddleware,
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
			srv.rateLimitMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea console for each PTY session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		return nil, nil
	}

	model := NewModel(s.play(sshSession.User()), pty.Window.Width, pty.Window.Height)

	// A dropped connection never answers the pending prompt.
	go func() {
		<-sshSession.Context().Done()
		model.bridge.Close()
	}()

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// lineMiddleware plays over the raw channel when no PTY was requested,
// e.g. `ssh -T host` or piped input.
func (s *SSHServer) lineMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		if _, _, ok := sshSession.Pty(); ok {
			next(sshSession)
			return
		}

		con := console.New(sshSession, sshSession)
		s.play(sshSession.User())(con)
		if err := con.Flush(); err != nil {
			s.logger.Warn("could not flush session output", "user", sshSession.User(), "error", err)
		}
		next(sshSession)
	}
}

// play returns the session loop for one player.
func (s *SSHServer) play(user string) PlayFunc {
	return func(con core.Console) {
		session := &trek.Session{
			Config:  s.config.Game,
			Console: con,
			Options: []trek.Option{trek.WithLogger(s.logger.With("user", user))},
			OnMission: func(seed int64, g *trek.Game) {
				s.record(user, seed, g.Result())
			},
		}
		played := session.Run()
		s.logger.Debug("session over", "user", user, "missions", played)
	}
}

// record stores a finished mission. Failures are logged, never fatal.
func (s *SSHServer) record(user string, seed int64, r trek.Result) {
	s.logger.Info("mission ended",
		"user", user,
		"outcome", r.Status,
		"klingons", r.KlingonsDestroyed,
		"efficiency", fmt.Sprintf("%.2f", r.Efficiency),
	)

	if s.store == nil {
		return
	}
	if _, err := s.store.SaveResult(user, seed, s.config.Difficulty, r); err != nil {
		s.logger.Warn("could not save mission", "user", user, "error", err)
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
