package main

import (
	"github.com/spf13/cobra"
)

// globalFlags are the persistent flags shared by every subcommand. Empty
// values leave the configuration untouched.
type globalFlags struct {
	configPath string
	edges      string
	coords     string
	logLevel   string
	logFormat  string
	trace      string
}

// newRootCmd assembles the command tree.
func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:     "waypath",
		Short:   "Find routes between towns with five classic search strategies",
		Version: version,
		Long: `waypath loads a road network (edge list plus town coordinates) and
searches it with breadth-first, depth-first, iterative-deepening,
greedy best-first or A* search.`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&g.edges, "edges", "", "edge-list file (overrides data.edges)")
	pf.StringVar(&g.coords, "coords", "", "coordinate CSV file (overrides data.coordinates)")
	pf.StringVar(&g.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.StringVar(&g.logFormat, "log-format", "", "log format: text or json")
	pf.StringVar(&g.trace, "trace", "", "span exporter: none or stdout")

	root.AddCommand(
		newRouteCmd(g),
		newCompareCmd(g),
		newServeCmd(g),
		newGenerateCmd(),
	)

	return root
}
