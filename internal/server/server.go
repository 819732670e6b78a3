// Package server exposes word generation over HTTP: an HTML page that
// updates itself through datastar, and a small JSON API.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrymomot/namesmith/pkg/logger"
	"github.com/dmitrymomot/namesmith/pkg/shortlist"
	"github.com/dmitrymomot/namesmith/pkg/wordgen"
)

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.log = logger.OrDiscard(l) }
}

// WithShortlist uses an existing list of saved words.
func WithShortlist(l *shortlist.List) Option {
	return func(s *Server) {
		if l != nil {
			s.saved = l
		}
	}
}

// Server serves one Generator.
type Server struct {
	cfg   Config
	gen   *wordgen.Generator
	saved *shortlist.List
	log   *slog.Logger

	once   sync.Once
	mu     sync.Mutex
	srv    *http.Server
	closed bool
}

// New returns a Server for gen.
func New(cfg Config, gen *wordgen.Generator, opts ...Option) *Server {
	s := &Server{
		cfg:   cfg.withDefaults(),
		gen:   gen,
		saved: shortlist.New(),
		log:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("http"))
	return s
}

// Run listens on the configured address and blocks until ctx is done, the
// process receives SIGINT or SIGTERM, or Shutdown is called. A server that
// was shut down cannot be run again.
func (s *Server) Run(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return errors.Join(ErrStart, http.ErrServerClosed)
	}
	if s.srv != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, errors.New("server already running"))
	}
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
	}
	s.srv = srv
	s.mu.Unlock()

	s.log.InfoContext(ctx, "http server starting", slog.String("addr", s.cfg.Addr))

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	var runErr error
	select {
	case <-ctx.Done():
		runErr = s.shutdownAndWait(errCh)
	case <-stop:
		runErr = s.shutdownAndWait(errCh)
	case runErr = <-errCh:
	}

	if runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
		s.log.ErrorContext(ctx, "http server failed", logger.Error(runErr))
		return errors.Join(ErrStart, runErr)
	}
	return nil
}

func (s *Server) shutdownAndWait(errCh <-chan error) error {
	if err := s.Shutdown(context.Background()); err != nil {
		return err
	}
	return <-errCh
}

// Shutdown stops the server gracefully. It is safe to call more than once,
// and before Run, in which case a later Run fails with ErrStart.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	var err error
	s.once.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
		defer cancel()
		err = srv.Shutdown(ctx)
		s.log.InfoContext(ctx, "http server stopped")
	})

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}
