// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/petar-djukic/script-info/internal/server"
)

const (
	serverRequestTimeout   = 10 * time.Second
	serverReadTimeout      = 10 * time.Second
	serverWriteTimeout     = 15 * time.Second
	serverIdleTimeout      = 60 * time.Second
	defaultGracefulTimeout = 30 * time.Second
)

// newServeCmd creates the "serve" command.
func newServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve filter metadata over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, svc, err := setup(cmd, v)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			router := server.NewServer(svc,
				server.WithLogger(logger),
				server.WithMiddlewares(
					middleware.RequestID,
					middleware.RealIP,
					middleware.Recoverer,
					middleware.Timeout(serverRequestTimeout),
					server.LoggingMiddleware(logger),
				),
			)

			srv := &http.Server{
				Addr:         v.GetString("addr"),
				Handler:      router,
				ReadTimeout:  serverReadTimeout,
				WriteTimeout: serverWriteTimeout,
				IdleTimeout:  serverIdleTimeout,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return listenAndServe(ctx, srv, logger)
		},
	}

	cmd.Flags().String("addr", ":8080", "Address to listen on")
	_ = v.BindPFlag("addr", cmd.Flags().Lookup("addr"))

	return cmd
}

// listenAndServe runs srv until ctx is done, then shuts it down gracefully.
func listenAndServe(ctx context.Context, srv *http.Server, logger *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("starting server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultGracefulTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	logger.Info("server shutdown complete")
	return nil
}
