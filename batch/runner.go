// Package batch resizes every image of a source tree into a destination
// folder, one concurrent job per file.
package batch

import (
	"fmt"
	"image/jpeg"
	"log/slog"
	"time"

	"imgresize/parallel"
	"imgresize/scale"
	"imgresize/scan"
	"imgresize/sink"
)

type Options struct {
	// Scale multiplies both width and height of every image.
	Scale     float64
	Resampler scale.Resampler
	Quality   int

	// Workers caps concurrent jobs. Zero starts every job at once.
	Workers int
	Logger  *slog.Logger

	// OnDone, when set, is called from the job's goroutine as soon as the
	// job reaches a terminal state.
	OnDone func(Outcome)
}

type Runner struct {
	opts Options
}

func New(opts Options) *Runner {
	if opts.Resampler == nil {
		opts.Resampler = scale.Default
	}
	if opts.Quality == 0 {
		opts.Quality = jpeg.DefaultQuality
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Runner{opts: opts}
}

// Run resizes every image under srcDir into destDir with default options.
func Run(srcDir, destDir string, s float64, sig *Signal) (*Result, error) {
	return New(Options{Scale: s}).Run(srcDir, destDir, sig)
}

// Run enumerates srcDir, runs one job per image and waits for all of
// them. When sig is set by then, everything in destDir is removed and the
// result is Canceled. Only enumeration errors are returned; per-file
// failures are reported in the Result.
func (r *Runner) Run(srcDir, destDir string, sig *Signal) (*Result, error) {
	start := time.Now()

	files, err := scan.FindImages(srcDir)
	if err != nil {
		return nil, err
	}
	r.opts.Logger.Info("found images", "dir", srcDir, "count", len(files))

	names := outputNames(files)
	outcomes := make([]Outcome, len(files))

	pool := parallel.Start(r.opts.Workers)
	for i, path := range files {
		i := i
		if names[i] != stem(path) {
			r.opts.Logger.Warn("output name collision, renamed", "file", path, "name", names[i]+sink.Ext)
		}
		job := Job{
			Path:  path,
			Name:  names[i],
			Scale: r.opts.Scale,
			Dest:  destDir,
			Sig:   sig,
		}
		pool.Do(func() {
			outcomes[i] = r.process(job)
			if outcomes[i].State == Failed {
				r.opts.Logger.Error("could not resize image", "file", job.Path, "error", outcomes[i].Err)
			}
			if r.opts.OnDone != nil {
				r.opts.OnDone(outcomes[i])
			}
		})
	}
	pool.Wait()

	res := &Result{Status: Completed, Found: len(files)}
	for _, o := range outcomes {
		res.add(o)
	}

	if sig.Canceled() {
		res.Status = Canceled
		if err := sink.Clean(destDir); err != nil {
			res.Elapsed = time.Since(start)
			return res, fmt.Errorf("could not clean canceled output: %w", err)
		}
		res.Cleaned = true
	}

	res.Elapsed = time.Since(start)
	return res, nil
}
