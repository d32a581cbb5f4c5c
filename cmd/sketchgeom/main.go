// Command sketchgeom transfers the contours of a sketch document onto a
// plane and reports the resulting BREP edges and ellipse probe results.
//
// Usage:
//
//	sketchgeom -in part.yaml -format json
//	sketchgeom -config plane.yaml -reverse < part.yaml
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/brep"
	"github.com/gogpu/sketch/internal/config"
	applog "github.com/gogpu/sketch/internal/log"
	"github.com/gogpu/sketch/internal/sketchio"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "sketchgeom:", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("sketchgeom", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "YAML config file")
		input      = fs.String("in", "-", "sketch document, - for stdin")
		output     = fs.String("out", "-", "report file, - for stdout")
		format     = fs.String("format", "", "report format: yaml or json (overrides config)")
		reverse    = fs.Bool("reverse", false, "reverse every contour before transfer")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *format != "" {
		cfg.Output.Format = strings.ToLower(strings.TrimSpace(*format))
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger, closer := applog.New(stderr, applog.Options{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.Source,
		File:      cfg.Logging.File,
	})
	defer closer.Close()
	sketch.SetLogger(logger)

	in := stdin
	if *input != "-" {
		f, err := os.Open(*input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	doc, err := sketchio.Decode(in)
	if err != nil {
		return err
	}
	sk, err := sketchio.Build(doc)
	if err != nil {
		return err
	}

	rep := transfer(logger, sk, cfg, *reverse)

	out := stdout
	if *output != "-" {
		f, err := os.Create(*output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return sketchio.EncodeEdges(out, cfg.Output.Format, rep)
}

// transfer projects every contour and probes every ellipse. Per-contour
// failures are recorded in the report rather than aborting the run.
func transfer(logger *slog.Logger, sk *sketchio.Sketch, cfg config.Config, reverse bool) *sketchio.Report {
	surface := cfg.Surface()
	var opts []sketch.TransferOption
	if m := cfg.Sketch.Matrix(); !m.IsIdentity() {
		opts = append(opts, sketch.WithTransform2D(m))
	}
	rep := &sketchio.Report{}

	for _, nc := range sk.Contours {
		if reverse {
			nc.Contour.Reverse()
		}
		edges, err := nc.Contour.TransferOnSurface(surface, opts...)
		if err == nil {
			err = brep.CheckLoop(edges, cfg.Tolerance)
		}
		if err != nil {
			logger.Warn("contour not transferred", slog.String("contour", nc.ID), slog.Any("error", err))
		}
		rep.Contours = append(rep.Contours, sketchio.NewContourReport(nc.ID, edges, err))
	}

	for _, ne := range sk.Ellipses {
		for _, p := range ne.Probes {
			rep.Probes = append(rep.Probes, sketchio.NewProbeReport(ne.ID, ne.Shape, p))
		}
	}

	logger.Info("sketch transferred",
		slog.Int("contours", len(rep.Contours)),
		slog.Int("probes", len(rep.Probes)))
	return rep
}
