// facefinder reads a set of strokes and prints the closed faces they enclose.
//
//	facefinder drawing.txt
//	facefinder --png out.png --imgcat drawing.svg
//
// Text input has one stroke per line: x1 y1 x2 y2.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"

	planarfacefinder "github.com/farkasseb/PlanarFaceFinder"
	"github.com/farkasseb/PlanarFaceFinder/dbg"
	"github.com/farkasseb/PlanarFaceFinder/render"
	"github.com/farkasseb/PlanarFaceFinder/strokes"
)

type options struct {
	input   string
	format  string
	png     string
	svg     string
	imgcat  bool
	style   string
	markers bool
	color   bool
}

func main() {
	app := kingpin.New("facefinder", "Find the closed faces enclosed by a set of strokes.")
	var opts options
	app.Arg("input", "Stroke file. Reads stdin when omitted or -.").StringVar(&opts.input)
	app.Flag("format", "Input format. auto picks svg for .svg files and text otherwise.").
		Short('f').Default("auto").EnumVar(&opts.format, "auto", "text", "svg")
	app.Flag("png", "Write a PNG rendering to this file.").StringVar(&opts.png)
	app.Flag("svg", "Write an SVG rendering to this file.").StringVar(&opts.svg)
	app.Flag("imgcat", "Show the rendering inline in the terminal.").BoolVar(&opts.imgcat)
	app.Flag("style", "YAML render style.").Envar("FACEFINDER_STYLE").StringVar(&opts.style)
	app.Flag("markers", "Draw the trisection markers.").BoolVar(&opts.markers)
	app.Flag("color", "Colorize output.").Default("true").BoolVar(&opts.color)
	debug := app.Flag("debug", "Log splits and tracing attempts to stderr.").Bool()
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if *debug {
		dbg.Enable(os.Stderr)
	}
	app.FatalIfError(run(opts, os.Stdin, os.Stdout), "")
}

func run(opts options, stdin io.Reader, stdout io.Writer) error {
	au := aurora.NewAurora(opts.color)

	style, err := render.LoadStyleFile(opts.style)
	if err != nil {
		return err
	}
	if opts.markers {
		style.ShowMarkers = true
	}

	segments, err := readStrokes(opts, stdin)
	if err != nil {
		return err
	}

	finder := planarfacefinder.New()
	for _, s := range segments {
		if err := finder.Insert(s.Start, s.End); err != nil {
			return errors.Wrapf(err, "inserting %v", s)
		}
	}
	scene := finder.Scene()

	fmt.Fprintf(stdout, "%s %d  %s %d  %s %d\n",
		au.Bold("vertices"), len(scene.Vertices),
		au.Bold("segments"), len(scene.Segments),
		au.Bold("faces"), au.Green(len(scene.Faces)))
	for i, face := range scene.Faces {
		points := make([]string, len(face))
		for j, p := range face {
			points[j] = fmt.Sprintf("(%g, %g)", p.X, p.Y)
		}
		fmt.Fprintf(stdout, "%s %s\n", au.Cyan(fmt.Sprintf("%3d", i+1)), strings.Join(points, " "))
	}

	if opts.png != "" {
		if err := render.SavePNG(opts.png, scene, style); err != nil {
			return err
		}
	}
	if opts.svg != "" {
		f, err := os.Create(opts.svg)
		if err != nil {
			return errors.Wrap(err, "creating svg output")
		}
		if err := render.WriteSVG(f, scene, style); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return errors.Wrap(err, "closing svg output")
		}
	}
	if opts.imgcat {
		return render.Preview(stdout, scene, style)
	}
	return nil
}

func readStrokes(opts options, stdin io.Reader) ([]planarfacefinder.Segment, error) {
	r := stdin
	if opts.input != "" && opts.input != "-" {
		f, err := os.Open(opts.input)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer f.Close()
		r = f
	}

	format := opts.format
	if format == "auto" || format == "" {
		format = "text"
		if strings.EqualFold(filepath.Ext(opts.input), ".svg") {
			format = "svg"
		}
	}

	var (
		segments []planarfacefinder.Segment
		err      error
	)
	if format == "svg" {
		segments, err = strokes.ParseSVG(r)
	} else {
		segments, err = strokes.ParseText(r)
	}
	return segments, errors.Wrapf(err, "reading %s strokes", format)
}
