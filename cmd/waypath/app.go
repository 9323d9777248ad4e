package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/A-Alhammadi/Intro-to-AI/config"
	"github.com/A-Alhammadi/Intro-to-AI/loader"
	"github.com/A-Alhammadi/Intro-to-AI/logging"
	"github.com/A-Alhammadi/Intro-to-AI/route"
	"github.com/A-Alhammadi/Intro-to-AI/telemetry"
)

// app holds what every data-backed command needs.
type app struct {
	cfg      config.Config
	logger   *slog.Logger
	shutdown func(context.Context) error
}

// settings loads the config file and environment, then applies flags.
func (g *globalFlags) settings() (config.Config, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return cfg, err
	}

	for dst, v := range map[*string]string{
		&cfg.Data.Edges:       g.edges,
		&cfg.Data.Coordinates: g.coords,
		&cfg.Log.Level:        g.logLevel,
		&cfg.Log.Format:       g.logFormat,
		&cfg.Trace.Exporter:   g.trace,
	} {
		if v != "" {
			*dst = v
		}
	}

	return cfg, cfg.Validate()
}

// newApp resolves settings, builds the logger on stderr and installs the
// tracer provider. Callers must defer a.close.
func newApp(cmd *cobra.Command, g *globalFlags) (*app, error) {
	cfg, err := g.settings()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	shutdown, err := telemetry.Init(cmd.Context(), cfg.Trace.Exporter, version, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, logger: logger, shutdown: shutdown}, nil
}

// close flushes pending spans.
func (a *app) close(ctx context.Context) {
	if err := a.shutdown(ctx); err != nil {
		a.logger.Warn("telemetry shutdown", "error", err)
	}
}

// planner loads the dataset and returns a Planner over it.
func (a *app) planner() (*route.Planner, error) {
	ds, err := loader.Load(a.cfg.Data.Edges, a.cfg.Data.Coordinates, loader.WithLogger(a.logger))
	if err != nil {
		return nil, err
	}
	a.logger.Debug("dataset loaded",
		"vertices", ds.Graph.VertexCount(),
		"edges", ds.Graph.EdgeCount(),
		"coordinates", ds.Coordinates.Loaded,
		"skipped", ds.Coordinates.Skipped,
	)

	return route.NewPlanner(ds.Graph, ds.Geo,
		route.WithLogger(a.logger),
		route.WithReopenClosed(a.cfg.Search.ReopenClosed),
		route.WithTraceExpansions(a.cfg.Search.TraceExpansions),
	), nil
}
