package nmd

import (
	"runtime"
	"sync"

	"github.com/varnote/nmdscan/internal/transcript"
)

// WorkItem holds one (transcript, variant) pair ready for annotation.
type WorkItem struct {
	Seq        int
	Transcript *transcript.Transcript
	Variant    *Variant
}

// WorkResult holds the annotation outcome for a single pair. OK mirrors
// Predictor.Annotate: false with a nil Err means the call was declined.
type WorkResult struct {
	Seq        int
	Transcript *transcript.Transcript
	Variant    *Variant
	Annotation string
	OK         bool
	Err        error
}

// ParallelAnnotate annotates work items using a pool of workers. Each
// call is independent and stateless, so no ordering dependency exists
// between calls; results arrive in completion order. Use OrderedCollect
// to consume them in sequence-number order. If workers is 0,
// runtime.NumCPU() is used.
func (p *Predictor) ParallelAnnotate(items <-chan WorkItem, workers int) <-chan WorkResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make(chan WorkResult, 2*workers)

	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		go func() {
			defer wg.Done()
			for item := range items {
				ann, ok, err := p.Annotate(item.Transcript, item.Variant)
				results <- WorkResult{
					Seq:        item.Seq,
					Transcript: item.Transcript,
					Variant:    item.Variant,
					Annotation: ann,
					OK:         ok,
					Err:        err,
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

// OrderedCollect calls fn for each result in sequence-number order.
// It buffers out-of-order results in a pending map and emits them as soon
// as the next expected sequence number is available. Blocks until the
// results channel is closed.
func OrderedCollect(results <-chan WorkResult, fn func(WorkResult) error) error {
	pending := make(map[int]WorkResult)
	nextSeq := 0

	for r := range results {
		pending[r.Seq] = r

		for {
			rr, ok := pending[nextSeq]
			if !ok {
				break
			}
			delete(pending, nextSeq)
			nextSeq++
			if err := fn(rr); err != nil {
				// Drain remaining results to unblock workers.
				for range results {
				}
				return err
			}
		}
	}

	return nil
}
