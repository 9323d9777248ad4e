// SPDX-License-Identifier: MIT

// Command waypath finds routes between towns of a road network with five
// classic search strategies and serves them over HTTP.
//
// Usage:
//
//	waypath route   --from Arad --to Bucharest --strategy astar
//	waypath compare --from Arad --to Bucharest
//	waypath serve   --addr :8080
//	waypath generate --kind grid --rows 20 --cols 20
//
// Data comes from an edge list (one "a b" pair per line) and a coordinate
// CSV ("node,lat,lon"), located by --edges/--coords or the config file.
package main

import (
	"context"
	"os"
)

// version is stamped at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
