package http

import (
	"context"
	"errors"
	"net"
	stdhttp "net/http"
	"time"

	"almanac/internal/platform/config"
	"almanac/internal/platform/logger"
)

// ServerOptions controls the listener and its timeouts
type ServerOptions struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	ShutdownGrace     time.Duration
}

// ServerOptionsFromConfig reads PORT, WRITE_TIMEOUT and SHUTDOWN_GRACE under cfg's prefix
func ServerOptionsFromConfig(cfg config.Conf) ServerOptions {
	return ServerOptions{
		Addr:              cfg.MayPort("PORT", ":4000"),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.MayDuration("WRITE_TIMEOUT", 60*time.Second),
		ShutdownGrace:     cfg.MayDuration("SHUTDOWN_GRACE", 10*time.Second),
	}
}

// Server owns a Router and the stdlib server that serves it
type Server struct {
	opt    ServerOptions
	router Router
	srv    *stdhttp.Server
}

// NewServer builds a server around a fresh chi router
func NewServer(opt ServerOptions) *Server {
	r := NewRouter()
	return &Server{
		opt:    opt,
		router: r,
		srv: &stdhttp.Server{
			Addr:              opt.Addr,
			Handler:           r.Mux(),
			ReadHeaderTimeout: opt.ReadHeaderTimeout,
			WriteTimeout:      opt.WriteTimeout,
		},
	}
}

// Router is where modules mount
func (s *Server) Router() Router { return s.router }

// Addr is the configured listen address
func (s *Server) Addr() string { return s.opt.Addr }

// Run listens until ctx is cancelled, then drains within ShutdownGrace
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opt.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run over an existing listener
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	log := logger.Named("http")
	errc := make(chan error, 1)
	go func() { errc <- s.srv.Serve(ln) }()
	log.Info().Str("addr", ln.Addr().String()).Msg("http listening")

	select {
	case err := <-errc:
		if errors.Is(err, stdhttp.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	grace := s.opt.ShutdownGrace
	if grace <= 0 {
		grace = 10 * time.Second
	}
	sctx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	log.Info().Dur("grace", grace).Msg("http shutting down")
	if err := s.srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
		return err
	}
	return nil
}
