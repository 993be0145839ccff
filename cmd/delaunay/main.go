package main

import (
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/delaunay"
	"github.com/osuushi/delaunay/dbg"
	"github.com/pkg/errors"
	"golang.org/x/term"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Triangulates a point set read from a file or stdin, and prints the
// triangles and their neighbors. Status lines go to stderr, coloured when it
// is a terminal.
//
// Exit status is 0 on success, 1 when triangulation or checking fails, and 2
// for bad usage or unreadable input.
func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	app := kingpin.New("delaunay", "Delaunay triangulation of a planar point set.")
	app.Version(delaunay.KernelVersion())
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)

	var flags Flags
	configPath := app.Flag("config", "YAML file with default settings.").String()
	app.Flag("format", "Input format.").EnumVar(&flags.Format, "text", "svg")
	app.Flag("format-out", "Output format.").EnumVar(&flags.Output, "text", "json")
	app.Flag("check", "Verify the triangulation before printing it.").BoolVar(&flags.Check)
	app.Flag("png", "Render the triangulation to a PNG file.").StringVar(&flags.PNG)
	app.Flag("imgcat", "Preview the triangulation in an iTerm compatible terminal.").BoolVar(&flags.Imgcat)
	app.Flag("labels", "Label triangles in renders.").BoolVar(&flags.Labels)
	app.Flag("scale", "Render scale in pixels per unit.").Float64Var(&flags.Scale)
	app.Flag("verbose", "Show kernel diagnostics.").Short('v').BoolVar(&flags.Verbose)
	app.Flag("diagnostics", "Append kernel diagnostics to a file.").StringVar(&flags.Diagnostics)
	app.Flag("trace-facets", "Dump every kernel facet with the diagnostics.").BoolVar(&flags.TraceFacets)
	inputPath := app.Arg("file", "Points to triangulate. Reads stdin when omitted.").String()

	au := aurora.NewAurora(isTerminal(stderr))
	fail := func(status int, err error) int {
		fmt.Fprintln(stderr, au.Red("error:"), err)
		return status
	}

	if _, err := app.Parse(args); err != nil {
		return fail(2, err)
	}

	var cfg Config
	if *configPath != "" {
		var err error
		if cfg, err = Load(*configPath); err != nil {
			return fail(2, err)
		}
	}
	if err := cfg.Resolve(flags); err != nil {
		return fail(2, err)
	}

	in := stdin
	if *inputPath != "" {
		f, err := os.Open(*inputPath)
		if err != nil {
			return fail(2, err)
		}
		defer f.Close()
		in = f
	}
	x, y, err := readPoints(in, cfg.Format)
	if err != nil {
		return fail(2, err)
	}

	opts := []delaunay.Option{
		delaunay.WithVerbose(cfg.Verbose),
		delaunay.WithFacetTrace(cfg.TraceFacets),
		delaunay.WithWarningHandler(func(w error) {
			fmt.Fprintln(stderr, au.Yellow("warning:"), w)
		}),
	}
	switch {
	case cfg.Diagnostics != "":
		opts = append(opts, delaunay.WithDiagnosticsFile(cfg.Diagnostics))
	case cfg.Verbose:
		opts = append(opts, delaunay.WithDiagnostics(stderr))
	}

	tri, err := delaunay.Triangulate(x, y, opts...)
	if err != nil {
		return fail(1, err)
	}
	fmt.Fprintf(stderr, "%s %d points, %d triangles\n", au.Cyan("delaunay:"), len(x), len(tri.Triangles))

	if cfg.Check {
		if err := tri.Check(x, y); err != nil {
			return fail(1, err)
		}
		fmt.Fprintln(stderr, au.Green("check: ok"))
	}

	if cfg.Output == "json" {
		err = writeJSON(stdout, tri)
	} else {
		err = writeText(stdout, tri)
	}
	if err != nil {
		return fail(1, errors.Wrap(err, "write output"))
	}

	drawOpts := dbg.DrawOptions{Scale: cfg.Scale, Labels: cfg.Labels}
	if cfg.PNG != "" {
		if err := dbg.SavePNG(cfg.PNG, x, y, tri.Triangles, tri.Neighbors, drawOpts); err != nil {
			return fail(1, errors.Wrap(err, "render png"))
		}
	}
	if cfg.Imgcat {
		if err := dbg.Preview(stdout, x, y, tri.Triangles, tri.Neighbors, drawOpts); err != nil {
			return fail(1, errors.Wrap(err, "preview"))
		}
	}
	return 0
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
