package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/A-Alhammadi/Intro-to-AI/core"
	"github.com/A-Alhammadi/Intro-to-AI/route"
)

func newCompareCmd(g *globalFlags) *cobra.Command {
	f := &routeFlags{}
	cmd := &cobra.Command{
		Use:     "compare",
		Short:   "Run all five strategies on one query and tabulate the results",
		Example: "  waypath compare --from Arad --to Bucharest",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCompare(cmd, g, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.from, "from", "f", "", "starting town")
	fl.StringVarP(&f.to, "to", "t", "", "destination town")
	fl.IntVar(&f.maxDepth, "max-depth", 0, "depth bound for iddfs, 0 = number of towns")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runCompare(cmd *cobra.Command, g *globalFlags, f *routeFlags) error {
	a, err := newApp(cmd, g)
	if err != nil {
		return err
	}
	defer a.close(cmd.Context())

	p, err := a.planner()
	if err != nil {
		return err
	}

	maxDepth := a.cfg.Search.MaxDepth
	if cmd.Flags().Changed("max-depth") {
		if f.maxDepth < 0 {
			return fmt.Errorf("--max-depth must be >= 0, got %d", f.maxDepth)
		}
		maxDepth = f.maxDepth
	}

	out := cmd.OutOrStdout()
	reports, err := p.Compare(cmd.Context(), f.from, f.to, maxDepth)
	if err != nil {
		if errors.Is(err, core.ErrUnknownNode) {
			fmt.Fprintln(out, "One or both towns are not in the database.")
		}
		return err
	}

	printComparison(out, reports)

	return nil
}

// printComparison renders one row per strategy.
func printComparison(w io.Writer, reports []*route.Report) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Strategy", "Found", "Hops", "Distance (km)", "Expanded", "Time (ms)", "Route")

	for _, r := range reports {
		found, hops, dist, path := "no", "-", "-", "-"
		switch {
		case r.Error != "":
			found, path = "error", r.Error
		case r.Found:
			found = "yes"
			hops = strconv.Itoa(r.Hops)
			dist = strconv.FormatFloat(r.DistanceKm, 'f', 3, 64)
			path = r.Path.String()
		}
		t.Row(
			r.Strategy.Title(),
			found,
			hops,
			dist,
			strconv.Itoa(r.Expanded),
			strconv.FormatFloat(r.ElapsedMS, 'f', 3, 64),
			path,
		)
	}

	fmt.Fprintln(w, t.Render())
}
