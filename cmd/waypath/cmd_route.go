package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/A-Alhammadi/Intro-to-AI/core"
	"github.com/A-Alhammadi/Intro-to-AI/route"
)

// errNeedEndpoints is returned when --from/--to are missing and stdin
// cannot host the interactive form.
var errNeedEndpoints = errors.New("--from and --to are required when stdin is not a terminal")

type routeFlags struct {
	from     string
	to       string
	strategy string
	maxDepth int
}

// prompter asks for whatever part of a route request is missing.
type prompter interface {
	Route(towns []string, req *route.Request, askStrategy bool) error
}

// prompt and isInteractive are replaced in tests.
var (
	prompt        prompter = formPrompter{}
	isInteractive          = interactive
)

func newRouteCmd(g *globalFlags) *cobra.Command {
	f := &routeFlags{}
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Search one route and print it with its length and timing",
		Long: `Search one route. Without --from/--to an interactive form asks for the
towns and the search method.`,
		Example: `  waypath route --from Arad --to Bucharest --strategy astar
  waypath route --from Arad --to Bucharest --strategy 3 --max-depth 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRoute(cmd, g, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.from, "from", "f", "", "starting town")
	fl.StringVarP(&f.to, "to", "t", "", "destination town")
	fl.StringVarP(&f.strategy, "strategy", "s", "", "bfs, dfs, iddfs, greedy, astar or 1-5 (default from config)")
	fl.IntVar(&f.maxDepth, "max-depth", 0, "depth bound for iddfs, 0 = number of towns")

	return cmd
}

func runRoute(cmd *cobra.Command, g *globalFlags, f *routeFlags) error {
	a, err := newApp(cmd, g)
	if err != nil {
		return err
	}
	defer a.close(cmd.Context())

	p, err := a.planner()
	if err != nil {
		return err
	}

	req := route.Request{
		Strategy: a.cfg.Strategy(),
		From:     f.from,
		To:       f.to,
		MaxDepth: a.cfg.Search.MaxDepth,
	}
	if cmd.Flags().Changed("max-depth") {
		if f.maxDepth < 0 {
			return fmt.Errorf("--max-depth must be >= 0, got %d", f.maxDepth)
		}
		req.MaxDepth = f.maxDepth
	}
	if f.strategy != "" {
		if req.Strategy, err = route.ParseStrategy(f.strategy); err != nil {
			return err
		}
	}

	if req.From == "" || req.To == "" {
		if !isInteractive(cmd.InOrStdin()) {
			return errNeedEndpoints
		}
		towns := p.Graph().Vertices()
		slices.Sort(towns)
		if err := prompt.Route(towns, &req, f.strategy == ""); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	rep, err := p.Plan(cmd.Context(), req)
	if err != nil {
		if errors.Is(err, core.ErrUnknownNode) {
			fmt.Fprintln(out, "One or both towns are not in the database.")
		}
		return err
	}

	printReport(out, rep, p.Geo() != nil)

	return nil
}

// printReport writes the route, the search time and the total distance.
func printReport(w io.Writer, rep *route.Report, withDistance bool) {
	if !rep.Found {
		fmt.Fprintln(w, "No route found.")
		return
	}
	fmt.Fprintf(w, "Route: %s\n", rep.Path)
	fmt.Fprintf(w, "Time taken: %.6f seconds\n", rep.Elapsed.Seconds())
	if withDistance {
		fmt.Fprintf(w, "Total distance: %.3f km\n", rep.DistanceKm)
	}
}

// interactive reports whether r is a terminal.
func interactive(r io.Reader) bool {
	f, ok := r.(*os.File)

	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// formPrompter asks with a huh form.
type formPrompter struct{}

func (formPrompter) Route(towns []string, req *route.Request, askStrategy bool) error {
	var fields []huh.Field
	if req.From == "" {
		fields = append(fields, huh.NewSelect[string]().
			Title("Enter starting town").
			Options(huh.NewOptions(towns...)...).
			Filtering(true).
			Height(10).
			Value(&req.From))
	}
	if req.To == "" {
		fields = append(fields, huh.NewSelect[string]().
			Title("Enter ending town").
			Options(huh.NewOptions(towns...)...).
			Filtering(true).
			Height(10).
			Value(&req.To))
	}
	if askStrategy {
		opts := make([]huh.Option[route.Strategy], 0, len(route.Strategies()))
		for _, s := range route.Strategies() {
			opts = append(opts, huh.NewOption(fmt.Sprintf("%d. %s", int(s), s.Title()), s))
		}
		fields = append(fields, huh.NewSelect[route.Strategy]().
			Title("Select search method").
			Options(opts...).
			Value(&req.Strategy))
	}

	return huh.NewForm(huh.NewGroup(fields...)).Run()
}
