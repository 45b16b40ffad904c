package parallel

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestPool_RunAll(t *testing.T) {
	var ran [16]atomic.Bool
	jobs := make([]func() error, len(ran))
	for i := range jobs {
		i := i
		jobs[i] = func() error {
			ran[i].Store(true)
			return nil
		}
	}

	errs := New(4).Run(jobs)
	for i := range ran {
		if !ran[i].Load() {
			t.Errorf("job %d did not run", i)
		}
		if errs[i] != nil {
			t.Errorf("errs[%d] = %v, want nil", i, errs[i])
		}
	}
}

func TestPool_ErrorsKeepInputOrder(t *testing.T) {
	boom := errors.New("boom")
	jobs := []func() error{
		func() error { return nil },
		func() error { return boom },
		func() error { return nil },
	}

	errs := New(2).Run(jobs)
	if errs[0] != nil || errs[2] != nil {
		t.Errorf("errs = %v, want failures only at position 1", errs)
	}
	if !errors.Is(errs[1], boom) {
		t.Errorf("errs[1] = %v, want boom", errs[1])
	}
}

func TestPool_OneFailureDoesNotStopOthers(t *testing.T) {
	var completed atomic.Int32
	jobs := make([]func() error, 8)
	for i := range jobs {
		i := i
		jobs[i] = func() error {
			completed.Add(1)
			if i == 0 {
				return errors.New("first job fails")
			}
			return nil
		}
	}

	New(1).Run(jobs)
	if got := completed.Load(); got != 8 {
		t.Errorf("completed = %d, want 8", got)
	}
}

func TestPool_BoundsConcurrency(t *testing.T) {
	const workers = 3
	var inFlight, peak atomic.Int32
	gate := make(chan struct{})

	jobs := make([]func() error, 12)
	for i := range jobs {
		jobs[i] = func() error {
			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			<-gate
			inFlight.Add(-1)
			return nil
		}
	}

	// Release jobs only after every worker has had a chance to pick one
	// up, so the peak reflects true simultaneous execution.
	go func() {
		for range jobs {
			gate <- struct{}{}
		}
	}()

	New(workers).Run(jobs)
	if got := peak.Load(); got > workers {
		t.Errorf("peak concurrency = %d, want at most %d", got, workers)
	}
}

func TestPool_DefaultsWorkers(t *testing.T) {
	if New(0).Workers() <= 0 {
		t.Error("New(0) should fall back to a positive worker count")
	}
	if got := New(-5).Workers(); got <= 0 {
		t.Errorf("New(-5).Workers() = %d, want positive", got)
	}
}

func TestPool_EmptyJobs(t *testing.T) {
	if errs := New(2).Run(nil); len(errs) != 0 {
		t.Errorf("Run(nil) = %v, want empty", errs)
	}
}
