// SPDX-License-Identifier: MIT

// Package server exposes a route.Planner over HTTP with gin.
//
// Endpoints:
//
//	GET /health                                  liveness and graph size
//	GET /metrics                                 Prometheus exposition
//	GET /v1/route?from=&to=&strategy=&max_depth= one search → route.Report
//	GET /v1/compare?from=&to=&max_depth=         all five strategies
//	GET /v1/nodes/:id                            neighbours and coordinate
//
// Status mapping: unknown node → 404, bad parameter or strategy → 400,
// missing coordinates for an informed strategy → 422, no route → 200 with
// "found": false. Every response carries an X-Request-ID header.
//
// Identical concurrent queries are coalesced with singleflight: each search
// is deterministic, so one result can answer all of them.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/singleflight"

	"github.com/A-Alhammadi/Intro-to-AI/route"
)

// Options configures a Server.
type Options struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownGrace   time.Duration
	DefaultStrategy route.Strategy // used when ?strategy= is absent
	MaxDepth        int            // used when ?max_depth= is absent
	Logger          *slog.Logger
}

// DefaultOptions returns listen address ":8080", A* and modest timeouts.
func DefaultOptions() Options {
	return Options{
		Addr:            ":8080",
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    10 * time.Second,
		ShutdownGrace:   5 * time.Second,
		DefaultStrategy: route.AStar,
		Logger:          slog.Default(),
	}
}

// Server is the HTTP front end of a Planner.
type Server struct {
	planner *route.Planner
	opts    Options
	logger  *slog.Logger
	router  *gin.Engine
	flight  singleflight.Group
}

// New builds a Server and registers its routes. Zero-valued fields of opts
// fall back to DefaultOptions.
func New(p *route.Planner, opts Options) *Server {
	def := DefaultOptions()
	if opts.Addr == "" {
		opts.Addr = def.Addr
	}
	if opts.ReadTimeout <= 0 {
		opts.ReadTimeout = def.ReadTimeout
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = def.WriteTimeout
	}
	if opts.ShutdownGrace <= 0 {
		opts.ShutdownGrace = def.ShutdownGrace
	}
	if !opts.DefaultStrategy.Valid() {
		opts.DefaultStrategy = def.DefaultStrategy
	}
	if opts.Logger == nil {
		opts.Logger = def.Logger
	}

	s := &Server{
		planner: p,
		opts:    opts,
		logger:  opts.Logger,
		router:  gin.New(),
	}
	s.registerRoutes()

	return s
}

// Handler returns the HTTP handler of s.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully within
// Options.ShutdownGrace.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.opts.Addr,
		Handler:      s.router,
		ReadTimeout:  s.opts.ReadTimeout,
		WriteTimeout: s.opts.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logger.Info("listening", "addr", s.opts.Addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownGrace)
	defer cancel()

	s.logger.Info("shutting down", "grace", s.opts.ShutdownGrace)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}

	return nil
}
