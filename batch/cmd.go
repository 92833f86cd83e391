package batch

import (
	"fmt"
	"log/slog"
	"math"
	"path/filepath"
	"strings"
	"time"

	"imgresize/scale"
	"imgresize/sink"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Source  string  `help:"Source folder to scan recursively for .png, .jpg and .jpeg files" default:"images" env:"IMGRESIZE_SOURCE"`
	Dest    string  `help:"Destination folder for resized JPEG files. Emptied of files before every run." default:"output" env:"IMGRESIZE_DEST"`
	Scale   float64 `help:"Uniform scale factor applied to width and height" default:"2.0" env:"IMGRESIZE_SCALE"`
	Filter  string  `help:"Resample filter" enum:"catmullrom,bilinear,lanczos,mitchell" default:"catmullrom" env:"IMGRESIZE_FILTER"`
	Quality int     `help:"JPEG quality (1-100), 0 for the encoder default" default:"0" env:"IMGRESIZE_QUALITY"`
	Workers int     `help:"Maximum concurrent jobs, 0 starts one job per file" default:"0" env:"IMGRESIZE_WORKERS"`

	resampler scale.Resampler
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	srcDir, err := filepath.Abs(c.Source)
	if err != nil {
		return fmt.Errorf("invalid source path %q: %w", c.Source, err)
	}
	c.Source = srcDir

	destDir, err := filepath.Abs(c.Dest)
	if err != nil {
		return fmt.Errorf("invalid destination path %q: %w", c.Dest, err)
	}
	c.Dest = destDir

	if within(c.Source, c.Dest) {
		return fmt.Errorf("destination %q must not contain source %q", c.Dest, c.Source)
	}

	switch {
	case math.IsNaN(c.Scale) || math.IsInf(c.Scale, 0) || c.Scale <= 0:
		return fmt.Errorf("invalid scale: %v", c.Scale)
	case c.Quality < 0 || c.Quality > 100:
		return fmt.Errorf("invalid quality: %d", c.Quality)
	case c.Workers < 0:
		return fmt.Errorf("invalid workers: %d", c.Workers)
	}

	if c.resampler, err = scale.Lookup(c.Filter); err != nil {
		return err
	}
	return nil
}

// within reports whether path is dir or lies below it.
func within(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

func (c *CLICmd) Run(sig *Signal) error {
	start := time.Now()
	defer func() {
		slog.Info("elapsed", "ms", time.Since(start).Milliseconds())
	}()

	if err := sink.Clean(c.Dest); err != nil {
		return fmt.Errorf("unable to prepare destination folder %q: %w", c.Dest, err)
	}

	runner := New(Options{
		Scale:     c.Scale,
		Resampler: c.resampler,
		Quality:   c.Quality,
		Workers:   c.Workers,
	})
	res, err := runner.Run(c.Source, c.Dest, sig)
	if err != nil {
		return err
	}

	slog.Info("stats", "status", res.Status, "processed", res.Processed, "errors", res.Failed(),
		"canceled", res.CanceledEarly, "total", res.Found)

	if res.Status == Canceled {
		slog.Info("resize canceled, destination output removed", "dir", c.Dest)
	}

	if n := res.Failed(); n > 0 {
		return fmt.Errorf("error processing %d files", n)
	}
	return nil
}
