package route

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/A-Alhammadi/Intro-to-AI/core"
	"github.com/A-Alhammadi/Intro-to-AI/geo"
)

// Request describes one planned search.
//
// MaxDepth bounds IterativeDeepening; 0 means "number of nodes in the graph",
// which is always enough to reach any reachable goal.
type Request struct {
	Strategy Strategy `json:"strategy"`
	From     string   `json:"from"`
	To       string   `json:"to"`
	MaxDepth int      `json:"max_depth,omitempty"`
}

// Planner runs searches against one graph and geo model and produces
// Reports. It is safe for concurrent use: every Plan call owns its search
// state and the graph and model are only read.
type Planner struct {
	graph           *core.Graph
	geo             *geo.Model
	logger          *slog.Logger
	reopen          bool
	traceExpansions bool
}

// PlannerOption configures a Planner.
type PlannerOption func(*Planner)

// WithLogger sets the logger; nil keeps slog.Default().
func WithLogger(l *slog.Logger) PlannerOption {
	return func(p *Planner) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithReopenClosed lets A* reopen closed nodes reached more cheaply.
func WithReopenClosed(on bool) PlannerOption {
	return func(p *Planner) {
		p.reopen = on
	}
}

// WithTraceExpansions logs every expanded node at DEBUG level.
func WithTraceExpansions(on bool) PlannerOption {
	return func(p *Planner) {
		p.traceExpansions = on
	}
}

// NewPlanner returns a Planner over g and m. m may be nil, in which case
// informed strategies fail with ErrGeoRequired and reports carry no distance.
func NewPlanner(g *core.Graph, m *geo.Model, opts ...PlannerOption) *Planner {
	p := &Planner{graph: g, geo: m, logger: slog.Default()}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Graph returns the graph searched by p.
func (p *Planner) Graph() *core.Graph { return p.graph }

// Geo returns the geo model of p, possibly nil.
func (p *Planner) Geo() *geo.Model { return p.geo }

// Plan runs one search, times it and fills a Report with the route, its
// total distance and the expansion counters.
//
// A route that is not found is returned as a Report with Found == false and
// a nil error. The context carries the trace span and is checked once before
// the search starts; a running search is not interrupted.
func (p *Planner) Plan(ctx context.Context, req Request) (*Report, error) {
	ctx, span := tracer.Start(ctx, "route.Planner.Plan",
		trace.WithAttributes(
			attribute.String("strategy", req.Strategy.String()),
			attribute.String("from", req.From),
			attribute.String("to", req.To),
		),
	)
	defer span.End()

	if err := ctx.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	maxDepth := req.MaxDepth
	if maxDepth == 0 && p.graph != nil {
		maxDepth = p.graph.VertexCount()
	}

	opts := []SearchOption{WithReopen(p.reopen)}
	if p.traceExpansions {
		opts = append(opts, WithExpandHook(func(id string) {
			p.logger.DebugContext(ctx, "expand", "strategy", req.Strategy.String(), "node", id)
		}))
	}

	began := time.Now()
	res, err := Search(req.Strategy, p.graph, p.geo, req.From, req.To, maxDepth, opts...)
	elapsed := time.Since(began)
	if err != nil {
		return nil, p.fail(ctx, span, req, elapsed, err)
	}

	rep := newReport(req.Strategy, req.From, req.To, res, elapsed)
	if res.Found && p.geo != nil {
		km, err := Cost(res.Path, p.geo)
		if err != nil {
			return nil, p.fail(ctx, span, req, elapsed, err)
		}
		rep.DistanceKm = km
	}

	outcome := outcomeNotFound
	if rep.Found {
		outcome = outcomeFound
	}
	recordSearch(req.Strategy, outcome, elapsed, rep.Expanded)

	span.SetAttributes(
		attribute.Bool("found", rep.Found),
		attribute.Int("hops", rep.Hops),
		attribute.Float64("distance_km", rep.DistanceKm),
		attribute.Int("expanded", rep.Expanded),
		attribute.Int("generated", rep.Generated),
	)
	span.SetStatus(codes.Ok, "")

	p.logger.DebugContext(ctx, "search complete",
		"strategy", req.Strategy.String(),
		"from", req.From,
		"to", req.To,
		"found", rep.Found,
		"hops", rep.Hops,
		"distance_km", rep.DistanceKm,
		"expanded", rep.Expanded,
		"elapsed", elapsed,
	)

	return rep, nil
}

// fail records a failed search on metrics, span and log and returns err.
func (p *Planner) fail(ctx context.Context, span trace.Span, req Request, elapsed time.Duration, err error) error {
	recordSearch(req.Strategy, outcomeError, elapsed, 0)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	p.logger.WarnContext(ctx, "search failed",
		"strategy", req.Strategy.String(),
		"from", req.From,
		"to", req.To,
		"error", err,
	)

	return err
}

// Compare runs every strategy in menu order for the same query.
//
// Unknown endpoints fail the whole comparison with core.ErrUnknownNode.
// Any other per-strategy failure, such as a missing coordinate for an
// informed strategy, is recorded in that Report's Error field and the
// remaining strategies still run.
func (p *Planner) Compare(ctx context.Context, from, to string, maxDepth int) ([]*Report, error) {
	if p.graph == nil {
		return nil, errors.New("route: planner has no graph")
	}
	for _, id := range [...]string{from, to} {
		if !p.graph.HasVertex(id) {
			return nil, fmt.Errorf("route: %w: %q", core.ErrUnknownNode, id)
		}
	}

	reports := make([]*Report, 0, len(Strategies()))
	for _, s := range Strategies() {
		rep, err := p.Plan(ctx, Request{Strategy: s, From: from, To: to, MaxDepth: maxDepth})
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			rep = newReport(s, from, to, nil, 0)
			rep.Error = err.Error()
		}
		reports = append(reports, rep)
	}

	return reports, nil
}
