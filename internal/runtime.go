package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/contactform/pkg/logger"
)

// lifecycle drives one HTTP server from listen to drained.
type lifecycle struct {
	cfg    *runConfig
	log    *slog.Logger
	server *http.Server
}

func newLifecycle(h http.Handler, cfg *runConfig) *lifecycle {
	log := cfg.logger
	if log == nil {
		log = logger.NewNope()
	}
	return &lifecycle{
		cfg: cfg,
		log: log,
		server: &http.Server{
			Handler:           h,
			ReadTimeout:       defaultReadTimeout,
			WriteTimeout:      defaultWriteTimeout,
			IdleTimeout:       defaultIdleTimeout,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
			MaxHeaderBytes:    defaultMaxHeaderBytes,
		},
	}
}

// run serves until the base context ends or SIGINT/SIGTERM arrives, then
// drains in-flight requests and runs the shutdown hooks.
func (l *lifecycle) run() error {
	baseCtx := l.cfg.baseCtx
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	stopCtx, stop := signal.NotifyContext(baseCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", l.cfg.address)
	if err != nil {
		return fmt.Errorf("listen %s: %w", l.cfg.address, err)
	}
	addr := ln.Addr().String()

	serveErr := make(chan error, 1)
	go func() {
		defer close(serveErr)
		if err := l.server.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()
	l.log.Info("contact form server listening", slog.String("address", addr))

	if l.cfg.ready != nil {
		l.cfg.ready(addr)
	}

	select {
	case err := <-serveErr:
		return err
	case <-stopCtx.Done():
		return l.drain()
	}
}

// drain stops accepting connections and waits for handlers (and so for any
// mail delivery in progress) within the shutdown timeout. Hooks share the
// same deadline.
func (l *lifecycle) drain() error {
	l.log.Info("draining server", slog.Duration("timeout", l.cfg.shutdownTimeout))

	ctx, cancel := context.WithTimeout(context.Background(), l.cfg.shutdownTimeout)
	defer cancel()

	err := l.server.Shutdown(ctx)
	for i, hook := range l.cfg.shutdownHooks {
		if herr := hook(ctx); herr != nil {
			l.log.Error("shutdown hook failed", slog.Int("hook", i), slog.String("error", herr.Error()))
			err = errors.Join(err, herr)
		}
	}
	if err != nil {
		return err
	}

	l.log.Info("server stopped")
	return nil
}
