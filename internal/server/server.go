// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package server provides the HTTP API over filter class metadata.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/petar-djukic/script-info/pkg/types"
)

// Service is the metadata source the handlers query.
type Service interface {
	Filters() []string
	SourceLink(name string) (types.SourceLink, error)
	MethodsAvailable(name string) ([]types.MethodInfo, error)
}

// Option configures the router.
type Option func(*serverConfig)

type serverConfig struct {
	middlewares []func(http.Handler) http.Handler
	logger      *zap.Logger
}

// WithMiddlewares adds middleware to the router.
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(cfg *serverConfig) {
		cfg.middlewares = append(cfg.middlewares, mw...)
	}
}

// WithLogger sets the logger used by handlers.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *serverConfig) {
		cfg.logger = logger
	}
}

// NewServer returns a router serving svc.
func NewServer(svc Service, opts ...Option) *chi.Mux {
	cfg := &serverConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(cfg)
	}

	r := chi.NewRouter()
	for _, mw := range cfg.middlewares {
		r.Use(mw)
	}

	routes := &Routes{service: svc, logger: cfg.logger}
	r.Get("/health", routes.health)
	r.Route("/filters", func(r chi.Router) {
		r.Get("/", routes.listFilters)
		r.Get("/{name}/methods", routes.listMethods)
		r.Get("/{name}/source", routes.sourceLink)
	})

	return r
}

// LoggingMiddleware logs one debug line per request.
func LoggingMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Debug("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
