package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Run serves HTTP and blocks until SIGINT/SIGTERM, then shuts down gracefully.
func (srv *HTTPServer) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.Serve(ctx)
}

// Serve serves HTTP until ctx is done.
func (srv *HTTPServer) Serve(ctx context.Context) error {
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", srv.host, srv.port),
		Handler:           srv.gin,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1 MB
	}

	errCh := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "HTTP server started on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			srv.l.Errorf(ctx, "HTTP server error: %v", err)
		}
		return err
	case <-ctx.Done():
	}

	srv.l.Info(context.Background(), "Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), srv.shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		srv.l.Errorf(shutdownCtx, "HTTP server shutdown error: %v", err)
		return err
	}
	srv.l.Info(shutdownCtx, "Server shutdown complete")
	return nil
}
