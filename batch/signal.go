package batch

import (
	"context"
)

// Signal is a set-once cancellation handle owned by the caller of Run.
// Jobs only read it. A nil *Signal is never canceled.
type Signal struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// NewSignal returns a Signal that is also set when parent is done.
func NewSignal(parent context.Context) *Signal {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	return &Signal{ctx: ctx, cancel: cancel}
}

func (s *Signal) Cancel() {
	if s != nil {
		s.cancel()
	}
}

func (s *Signal) Canceled() bool {
	return s != nil && s.ctx.Err() != nil
}

func (s *Signal) Done() <-chan struct{} {
	if s == nil {
		return nil
	}
	return s.ctx.Done()
}

func (s *Signal) Context() context.Context {
	if s == nil {
		return context.Background()
	}
	return s.ctx
}
