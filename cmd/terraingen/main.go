// Command terraingen renders a terrain recipe to an ASCII STL file.
//
//	terraingen -preset outpost -o outpost.stl
//	terraingen -recipe my.yaml -res 0.25 -preview bays.png -catalog builds.db
//	terraingen -list
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/terrain/catalog"
	"github.com/katalvlaran/terrain/internal/monitoring"
	"github.com/katalvlaran/terrain/preview"
	"github.com/katalvlaran/terrain/recipe"
	"github.com/katalvlaran/terrain/stl"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatalf("terraingen: %v", err)
	}
}

type options struct {
	preset, recipe string
	out            string
	resolution     float64
	maxCells       int
	preview        string
	catalog        string
	list, quiet    bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	o := &options{}
	fs := flag.NewFlagSet("terraingen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.preset, "preset", "", "embedded preset name (see -list)")
	fs.StringVar(&o.recipe, "recipe", "", "path to a YAML recipe")
	fs.StringVar(&o.out, "o", "", "output STL path (default <name>.stl)")
	fs.Float64Var(&o.resolution, "res", stl.DefaultResolution, "mesh cell size in mm")
	fs.IntVar(&o.maxCells, "max-cells", stl.DefaultMaxCells, "largest mesh grid accepted")
	fs.StringVar(&o.preview, "preview", "", "also write a bay map image (png, svg, pdf) for bunkers")
	fs.StringVar(&o.catalog, "catalog", "", "record the build in this SQLite catalog")
	fs.BoolVar(&o.list, "list", false, "list presets and exit")
	fs.BoolVar(&o.quiet, "quiet", false, "suppress progress logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	switch {
	case o.list:
	case (o.preset == "") == (o.recipe == ""):
		return nil, fmt.Errorf("exactly one of -preset and -recipe is required")
	case o.resolution <= 0:
		return nil, fmt.Errorf("-res %g must be > 0", o.resolution)
	case o.maxCells <= 0:
		return nil, fmt.Errorf("-max-cells %d must be > 0", o.maxCells)
	}
	return o, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if o.list {
		for _, name := range recipe.Presets() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}
	if o.quiet {
		monitoring.SetLogger(nil)
	}

	var r *recipe.Recipe
	if o.preset != "" {
		r, err = recipe.Preset(o.preset)
	} else {
		r, err = recipe.Load(o.recipe)
	}
	if err != nil {
		return err
	}
	p, err := r.Make()
	if err != nil {
		return err
	}

	out := o.out
	if out == "" {
		out = r.Title() + ".stl"
	}
	rep, err := stl.MeshReport(p.Solid, stl.WithResolution(o.resolution), stl.WithMaxCells(o.maxCells))
	if err != nil {
		return err
	}
	if err := writeSTL(out, r.Title(), rep.Facets); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s: %d facets -> %s\n", r.Title(), len(rep.Facets), out)
	if len(rep.Islands) > 1 {
		fmt.Fprintf(stderr, "%s: warning: %d separate parts at %g mm (cells %v)\n",
			r.Title(), len(rep.Islands), o.resolution, rep.Islands)
	}

	if o.preview != "" {
		if p.Bunker == nil {
			return fmt.Errorf("-preview: %s is a %s, not a bunker", r.Title(), r.Piece())
		}
		if err := preview.Save(o.preview, p.Bunker); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s: bay map -> %s\n", r.Title(), o.preview)
	}

	if o.catalog != "" {
		if err := record(ctx, o.catalog, p, len(rep.Facets), out); err != nil {
			return err
		}
	}
	return ctx.Err()
}

func writeSTL(path, name string, facets []stl.Facet) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return stl.WriteFacets(f, name, facets)
}

func record(ctx context.Context, path string, p *recipe.Product, facets int, file string) error {
	c, err := catalog.Open(ctx, path)
	if err != nil {
		return err
	}
	defer c.Close()

	e, err := catalog.NewEntry(p)
	if err != nil {
		return err
	}
	e.Facets, e.File = facets, file
	return c.Add(ctx, e)
}
