package ga

import "golang.org/x/sync/errgroup"

// An executor runs a batch of independent tasks, either on the calling
// goroutine or fanned out across a bounded worker pool, and reports the
// first error encountered. Population's sequential and parallel variants
// (spec.md §5) are the same engine against the same phase code, differing
// only in which executor they're built with — so ParallelPopulation is not
// a separate implementation to keep in sync with Population, it is
// Population wired to a parallelExecutor.
type executor interface {
	run(tasks []func() error) error
}

type sequentialExecutor struct{}

func (sequentialExecutor) run(tasks []func() error) error {
	for _, t := range tasks {
		if err := t(); err != nil {
			return err
		}
	}
	return nil
}

// parallelExecutor fans tasks out across at most threads goroutines at a
// time, using golang.org/x/sync/errgroup for bounded concurrency and
// first-error propagation (SPEC_FULL.md §10) — the idiomatic replacement
// for the teacher's ad-hoc sync.WaitGroup fan-out.
type parallelExecutor struct {
	threads int
}

func (pe parallelExecutor) run(tasks []func() error) error {
	if len(tasks) == 0 {
		return nil
	}
	g := new(errgroup.Group)
	g.SetLimit(pe.threads)
	for _, t := range tasks {
		t := t
		g.Go(t)
	}
	return g.Wait()
}
