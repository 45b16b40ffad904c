// Package parallel runs independent jobs on a bounded set of worker
// goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Pool bounds the number of jobs running at once. The zero value is not
// usable; construct with New.
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	workers int
}

// New creates a pool running at most workers jobs concurrently. If
// workers is zero or negative, GOMAXPROCS is used.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Pool{workers: workers}
}

// Workers returns the pool's concurrency bound.
func (p *Pool) Workers() int {
	return p.workers
}

// Run executes every job and blocks until all have finished. The
// returned slice holds each job's result at the job's input position,
// so callers can report failures in input order regardless of
// completion order. One failing job does not stop the others.
func (p *Pool) Run(jobs []func() error) []error {
	errs := make([]error, len(jobs))
	if len(jobs) == 0 {
		return errs
	}

	workers := p.workers
	if workers > len(jobs) {
		workers = len(jobs)
	}

	next := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range next {
				errs[i] = jobs[i]()
			}
		}()
	}
	for i := range jobs {
		next <- i
	}
	close(next)
	wg.Wait()
	return errs
}
