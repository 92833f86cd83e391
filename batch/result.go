package batch

import (
	"time"
)

type Status int

const (
	Completed Status = iota
	Canceled
)

func (s Status) String() string {
	if s == Canceled {
		return "canceled"
	}
	return "completed"
}

type Failure struct {
	Path string
	Err  error
}

// Result aggregates the outcomes of one run.
type Result struct {
	Status        Status
	Found         int
	Processed     int
	CanceledEarly int
	Failures      []Failure

	// Outputs lists files written by finished jobs. After a canceled run
	// they have been removed again.
	Outputs []string
	Cleaned bool
	Elapsed time.Duration
}

func (r *Result) Failed() int {
	return len(r.Failures)
}

func (r *Result) add(o Outcome) {
	switch o.State {
	case Done:
		r.Processed++
		r.Outputs = append(r.Outputs, o.Output)
	case Failed:
		r.Failures = append(r.Failures, Failure{Path: o.Job.Path, Err: o.Err})
	case CanceledEarly:
		r.CanceledEarly++
	}
}
