package berkas

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
)

// StartServer menjalankan HTTP server dengan graceful shutdown.
// Server berhenti saat menerima SIGINT/SIGTERM atau saat context dibatalkan,
// lalu menunggu request yang sedang berjalan selesai sampai ShutdownTimeout.
//
// Parameters:
//   - ctx: context untuk mengontrol lifetime server
//   - config: ServerConfig berisi port dan timeouts
//   - handler: http.Handler yang akan dilayani (biasanya Router)
//
// Returns:
//   - error: error jika server gagal start atau shutdown gagal
//
// Example:
//
//	if err := StartServer(ctx, config.Server, router); err != nil {
//	    log.Fatal(err)
//	}
func StartServer(ctx context.Context, config ServerConfig, handler http.Handler) error {
	addr := config.Port
	if addr == "" {
		addr = ":8080"
	} else if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	// Default timeouts for safety if not configured
	if config.ReadTimeout == 0 {
		config.ReadTimeout = 10 * time.Second
	}
	if config.WriteTimeout == 0 {
		config.WriteTimeout = 10 * time.Second
	}
	if config.IdleTimeout == 0 {
		config.IdleTimeout = 120 * time.Second
	}
	if config.ShutdownTimeout == 0 {
		config.ShutdownTimeout = 10 * time.Second
	}

	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	// Bind explicitly so a port conflict surfaces before the listening log line
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to bind port %s: %w", addr, err)
	}

	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("server listening", "addr", addr)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		signal.Stop(shutdown)
		slog.Info("shutdown signal received", "signal", sig.String())

	case <-ctx.Done():
		slog.Info("context cancelled, shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}
