// Package waypath finds routes between towns of a road network and compares
// five classic search strategies on the same query.
//
// What is in the box?
//
//	• Graph index: undirected, insertion-ordered adjacency over string IDs
//	• Geo model: latitude/longitude per town, great-circle distance
//	• Uninformed search: Breadth-first, Depth-first, Iterative-deepening DFS
//	• Informed search: Greedy best-first, A* (haversine heuristic)
//	• Route reporter: total distance, hops, expansion counters, timing
//
// Everything is organized into subpackages:
//
//	core/       Graph, Edge, Path and Result
//	geo/        Coordinate, Model, Haversine
//	bfs/        breadth-first search
//	dfs/        depth-first search and iterative deepening
//	bestfirst/  greedy best-first and A* over a shared heap frontier
//	route/      strategy selection, Planner, Report, metrics and spans
//	loader/     edge-list and coordinate file I/O
//	builder/    synthetic grid, chain and random networks with coordinates
//	config/     YAML configuration with environment overrides
//	logging/    slog logger construction
//	telemetry/  OpenTelemetry tracer provider
//	server/     HTTP API
//	cmd/waypath command-line interface
//
// Quick example:
//
//	Arad───Sibiu───Fagaras───Bucharest
//	          │                  │
//	     Rimnicu Vilcea───Pitesti
//
//	waypath route --from Arad --to Bucharest --strategy bfs
//	Route: Arad -> Sibiu -> Fagaras -> Bucharest
//
// A* follows Sibiu → Rimnicu Vilcea → Pitesti instead, the shorter road.
package waypath
