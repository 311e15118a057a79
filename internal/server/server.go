// Package server binds the port and runs the HTTP lifecycle.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/shashiranjanraj/foodshop/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

// Start serves handler on addr until ctx is cancelled, then drains
// in-flight requests for up to shutdownTimeout.
func Start(ctx context.Context, handler http.Handler, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return Serve(ctx, handler, ln)
}

// Serve is Start on an existing listener.
func Serve(ctx context.Context, handler http.Handler, ln net.Listener) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}
