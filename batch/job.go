package batch

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"

	"imgresize/scale"
	"imgresize/sink"
)

type State int

const (
	Pending State = iota
	CanceledEarly
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case CanceledEarly:
		return "canceled"
	case Done:
		return "done"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Job is the unit of work for one source file.
type Job struct {
	Path  string
	Name  string
	Scale float64
	Dest  string
	Sig   *Signal
}

// Outcome is the terminal state of a Job.
type Outcome struct {
	Job    Job
	State  State
	Output string
	Err    error
}

type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("could not decode image %q: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func (r *Runner) process(j Job) (out Outcome) {
	out = Outcome{Job: j, State: Pending}
	logger := r.opts.Logger.With("file", j.Path)

	// the only cancellation checkpoint
	if j.Sig.Canceled() {
		logger.Debug("skipped, run canceled")
		out.State = CanceledEarly
		return out
	}

	defer func() {
		if p := recover(); p != nil {
			out.State = Failed
			out.Output = ""
			out.Err = fmt.Errorf("panic processing %q: %v", j.Path, p)
		}
	}()

	output, err := r.resizeFile(logger, j)
	if err != nil {
		out.State = Failed
		out.Err = err
		return out
	}
	out.State = Done
	out.Output = output
	return out
}

func (r *Runner) resizeFile(logger *slog.Logger, j Job) (string, error) {
	imgFile, err := os.Open(j.Path)
	if err != nil {
		return "", &sink.IOError{Op: "open image", Path: j.Path, Err: err}
	}
	img, _, err := image.Decode(imgFile)
	if closeErr := imgFile.Close(); closeErr != nil {
		logger.Error("could not close image", "error", closeErr)
	}
	if err != nil {
		return "", &DecodeError{Path: j.Path, Err: err}
	}

	b := img.Bounds()
	width, height, err := scale.TargetSize(b.Dx(), b.Dy(), j.Scale)
	if err != nil {
		return "", err
	}

	logger.Debug("start resize", "width", width, "height", height)
	resized, err := scale.ScaleWith(img, width, height, r.opts.Resampler)
	if err != nil {
		return "", err
	}
	logger.Debug("end resize")

	var buf bytes.Buffer
	if err := sink.EncodeJPEG(&buf, resized, r.opts.Quality); err != nil {
		return "", &sink.IOError{Op: "encode", Path: j.Path, Err: err}
	}

	output, err := sink.Write(j.Dest, j.Name, buf.Bytes())
	if err != nil {
		return "", err
	}
	logger.Debug("saved", "output", output)
	return output, nil
}
