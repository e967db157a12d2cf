package dxa

import (
	"sync"

	"github.com/rodyherrera/dxa/config"
)

// Run drives a sequence of frames through RunFrame, distributing them
// across a bounded pool of workers goroutines (clamped to at least 1) and
// invoking progress once per completed frame from this call's own
// goroutine — never concurrently, regardless of how many frames ran in
// parallel, matching spec.md §5's "progress callback invoked ... on a
// coordinator thread". Results and errors are returned indexed by each
// frame's position in inputs, not completion order.
//
// When continueOnError is false, a failing frame stops any frame not yet
// dispatched to a worker (frames already in flight still finish); when
// true, every frame runs regardless of earlier failures, matching
// spec.md §6's "a multi-frame run may choose to continue with subsequent
// frames". Cancellation here is between-frame only: RunFrame itself never
// checks for it mid-stage, consistent with spec.md §5's "stages do not
// suspend".
func Run(cfg config.Config, inputs []FrameInput, workers int, continueOnError bool, progress ProgressFunc) ([]*FrameResult, []error) {
	if workers < 1 {
		workers = 1
	}
	if workers > len(inputs) {
		workers = len(inputs)
	}
	results := make([]*FrameResult, len(inputs))
	errs := make([]error, len(inputs))
	if len(inputs) == 0 {
		return results, errs
	}

	type outcome struct {
		index  int
		result *FrameResult
		err    error
	}

	jobs := make(chan int)
	done := make(chan outcome)
	stopped := make(chan struct{})
	var stopOnce sync.Once

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				r, err := RunFrame(cfg, inputs[idx])
				select {
				case done <- outcome{index: idx, result: r, err: err}:
				case <-stopped:
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i := range inputs {
			select {
			case jobs <- i:
			case <-stopped:
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(done)
	}()

	completed := 0
	for o := range done {
		results[o.index] = o.result
		errs[o.index] = o.err
		completed++
		if o.err != nil && !continueOnError {
			stopOnce.Do(func() { close(stopped) })
		}
		if progress != nil {
			progress(completed, len(inputs), o.result)
		}
	}
	stabilizeTrajectory(results)
	return results, errs
}

// stabilizeTrajectory walks results in input order — necessarily serial,
// since each frame's segment identities are only meaningful relative to
// the previous frame's — and rewrites each frame's Segments' IDs to match
// the prior frame's via TrackSegments, so a segment migrating or
// reshaping slightly between frames keeps one stable ID across the run
// instead of a fresh one assigned by that frame's own collectSegments.
func stabilizeTrajectory(results []*FrameResult) {
	var prev []SegmentOutput
	for _, r := range results {
		if r == nil {
			continue
		}
		if prev != nil {
			r.Segments = TrackSegments(prev, r.Segments)
		}
		prev = r.Segments
	}
}
