package parallel

import (
	"golang.org/x/sync/errgroup"
)

// Pool runs submitted functions concurrently. With no limit every call to
// Do gets its own goroutine; with a limit Do blocks until a slot frees up.
type Pool struct {
	g     errgroup.Group
	limit int
}

func Start(limit int) *Pool {
	pool := &Pool{limit: limit}
	if limit > 0 {
		pool.g.SetLimit(limit)
	}
	return pool
}

func (p *Pool) Limit() int {
	return p.limit
}

func (p *Pool) Do(f func()) {
	p.g.Go(func() error {
		f()
		return nil
	})
}

func (p *Pool) Wait() {
	_ = p.g.Wait()
}
