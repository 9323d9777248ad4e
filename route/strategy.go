// SPDX-License-Identifier: MIT

// Package route is the entry point of the search engine. It dispatches a
// query to one of the five strategies, turns the resulting path into a
// distance report and, through Planner, times, logs, traces and counts
// every search.
//
// Strategies:
//
//	BreadthFirst       fewest edges                     (bfs)
//	DepthFirst         first path found, not minimal    (dfs)
//	IterativeDeepening fewest edges, O(depth) memory    (dfs)
//	GreedyBestFirst    straight line to goal only       (bestfirst)
//	AStar              shortest distance                (bestfirst)
//
// The two informed strategies need a geo.Model; the uninformed ones ignore
// it. Not finding a route is not an error: the Result or Report has
// Found == false. Cost refuses an empty path with ErrNoRoute so that "no
// route" is never confused with a zero-length route.
package route

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the route package.
var (
	// ErrNoRoute indicates that there is no path to report on.
	ErrNoRoute = errors.New("route: no route found")

	// ErrUnknownStrategy indicates a strategy name or number that is not recognised.
	ErrUnknownStrategy = errors.New("route: unknown strategy")

	// ErrGeoRequired indicates an informed strategy was called without a geo model.
	ErrGeoRequired = errors.New("route: geo model required for informed strategy")
)

// Strategy selects a search algorithm.
type Strategy int

// The numbering matches the interactive menu (1–5).
const (
	BreadthFirst Strategy = iota + 1
	DepthFirst
	IterativeDeepening
	GreedyBestFirst
	AStar
)

// strategyNames holds the canonical short name of each strategy.
var strategyNames = map[Strategy]string{
	BreadthFirst:       "bfs",
	DepthFirst:         "dfs",
	IterativeDeepening: "iddfs",
	GreedyBestFirst:    "greedy",
	AStar:              "astar",
}

// strategyTitles holds the human-readable menu label of each strategy.
var strategyTitles = map[Strategy]string{
	BreadthFirst:       "Breadth-first search",
	DepthFirst:         "Depth-first search",
	IterativeDeepening: "ID-DFS search",
	GreedyBestFirst:    "Best-first search",
	AStar:              "A* search",
}

// strategyAliases maps every accepted spelling to its Strategy.
var strategyAliases = map[string]Strategy{
	"1": BreadthFirst, "bfs": BreadthFirst, "breadth-first": BreadthFirst, "breadth_first": BreadthFirst,
	"2": DepthFirst, "dfs": DepthFirst, "depth-first": DepthFirst, "depth_first": DepthFirst,
	"3": IterativeDeepening, "iddfs": IterativeDeepening, "id-dfs": IterativeDeepening,
	"iterative-deepening": IterativeDeepening, "iterative_deepening": IterativeDeepening,
	"4": GreedyBestFirst, "greedy": GreedyBestFirst, "best-first": GreedyBestFirst,
	"best_first": GreedyBestFirst, "greedy-best-first": GreedyBestFirst,
	"5": AStar, "astar": AStar, "a*": AStar, "a-star": AStar,
}

// Strategies returns every strategy in menu order.
func Strategies() []Strategy {
	return []Strategy{BreadthFirst, DepthFirst, IterativeDeepening, GreedyBestFirst, AStar}
}

// ParseStrategy resolves a strategy name ("bfs", "a*", "iterative-deepening", ...)
// or a menu number ("1"–"5"). Matching ignores case and surrounding space.
func ParseStrategy(s string) (Strategy, error) {
	if st, ok := strategyAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return st, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// String returns the canonical short name, e.g. "astar".
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}

	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Title returns the menu label, e.g. "A* search".
func (s Strategy) Title() string {
	if t, ok := strategyTitles[s]; ok {
		return t
	}

	return s.String()
}

// Valid reports whether s is one of the five strategies.
func (s Strategy) Valid() bool {
	_, ok := strategyNames[s]

	return ok
}

// Informed reports whether s needs coordinates.
func (s Strategy) Informed() bool {
	return s == GreedyBestFirst || s == AStar
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}

	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	st, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = st

	return nil
}
