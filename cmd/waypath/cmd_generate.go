package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/A-Alhammadi/Intro-to-AI/builder"
	"github.com/A-Alhammadi/Intro-to-AI/geo"
	"github.com/A-Alhammadi/Intro-to-AI/loader"
)

type generateFlags struct {
	kind      string
	rows      int
	cols      int
	n         int
	p         float64
	seed      int64
	ids       string
	spacing   float64
	lat       float64
	lon       float64
	outEdges  string
	outCoords string
}

func newGenerateCmd() *cobra.Command {
	f := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic road network as edge-list and coordinate files",
		Example: `  waypath generate --kind grid --rows 20 --cols 20
  waypath generate --kind random --n 500 --p 0.01 --seed 7 --ids excel
  waypath generate --kind chain --n 10 --out-edges - --out-coords ""`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.kind, "kind", "grid", "topology: grid, chain or random")
	fl.IntVar(&f.rows, "rows", 10, "grid rows")
	fl.IntVar(&f.cols, "cols", 10, "grid columns")
	fl.IntVar(&f.n, "n", 100, "node count for chain and random")
	fl.Float64Var(&f.p, "p", 0.05, "edge probability for random")
	fl.Int64Var(&f.seed, "seed", 1, "random seed")
	fl.StringVar(&f.ids, "ids", "decimal", "node IDs for chain and random: decimal, alnum or excel")
	fl.Float64Var(&f.spacing, "spacing", builder.DefaultSpacingKm, "distance between neighbouring nodes in km")
	fl.Float64Var(&f.lat, "lat", builder.DefaultOrigin.Lat, "latitude of the layout origin")
	fl.Float64Var(&f.lon, "lon", builder.DefaultOrigin.Lon, "longitude of the layout origin")
	fl.StringVar(&f.outEdges, "out-edges", "edges.txt", `edge-list output, "-" for stdout`)
	fl.StringVar(&f.outCoords, "out-coords", "coordinates.csv", `coordinate output, "-" for stdout, empty to skip`)

	return cmd
}

// options validates f and turns it into builder options. The builder
// option constructors panic on bad input, so every value is checked here.
func (f *generateFlags) options() ([]builder.BuilderOption, builder.Constructor, error) {
	idFn, ok := builder.IDScheme(f.ids)
	if !ok {
		return nil, nil, fmt.Errorf("unknown --ids %q", f.ids)
	}
	if !(f.spacing > 0) {
		return nil, nil, fmt.Errorf("--spacing must be > 0, got %g", f.spacing)
	}
	origin := geo.Coordinate{Lat: f.lat, Lon: f.lon}
	if !origin.Valid() {
		return nil, nil, fmt.Errorf("origin %s: %w", origin, geo.ErrBadCoordinate)
	}

	var cons builder.Constructor
	switch f.kind {
	case "grid":
		cons = builder.Grid(f.rows, f.cols)
	case "chain":
		cons = builder.Chain(f.n)
	case "random":
		cons = builder.RandomSparse(f.n, f.p)
	default:
		return nil, nil, fmt.Errorf("unknown --kind %q", f.kind)
	}

	return []builder.BuilderOption{
		builder.WithIDScheme(idFn),
		builder.WithSpacingKm(f.spacing),
		builder.WithOrigin(origin),
		builder.WithSeed(f.seed),
	}, cons, nil
}

func runGenerate(cmd *cobra.Command, f *generateFlags) error {
	if f.outEdges == "" {
		return errors.New("--out-edges must not be empty")
	}
	bopts, cons, err := f.options()
	if err != nil {
		return err
	}

	net, err := builder.Build(bopts, cons)
	if err != nil {
		return err
	}

	if err := writeOutput(cmd.OutOrStdout(), f.outEdges, func(w io.Writer) error {
		return loader.WriteEdges(w, net.Graph)
	}); err != nil {
		return err
	}
	if f.outCoords != "" {
		if err := writeOutput(cmd.OutOrStdout(), f.outCoords, func(w io.Writer) error {
			return loader.WriteCoordinates(w, net.Geo)
		}); err != nil {
			return err
		}
	}

	if f.outEdges != "-" && f.outCoords != "-" {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d nodes and %d edges\n",
			net.Graph.VertexCount(), net.Graph.EdgeCount())
	}

	return nil
}

// writeOutput runs write against stdout for "-" or a freshly created file.
func writeOutput(stdout io.Writer, path string, write func(io.Writer) error) (err error) {
	if path == "-" {
		return write(stdout)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	return write(file)
}
