package stream

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// errSignal is the only state blocks share during a parallel pass.
//
// It is write-once-wins: the first error sticks and later ones are dropped.
// The raised flag is advisory, not a cancellation primitive: workers consult
// it before claiming another block, and blocks already being processed run to
// completion.
type errSignal struct {
	raised atomic.Bool
	once   sync.Once
	err    error
}

func (s *errSignal) signal(err error) {
	s.once.Do(func() {
		s.err = err
		s.raised.Store(true)
	})
}

func (s *errSignal) triggered() bool {
	return s.raised.Load()
}

// forEachBlock runs fn over block indices [0, n) on a greedy worker pool.
//
// Workers claim the next unprocessed index from a shared atomic cursor until
// none remain or the error signal is raised. The first signaled error is
// returned after every in-flight block has settled; on success the return is
// nil only after all n blocks completed.
//
// fn must derive all writes from the block index alone (disjoint output
// ranges), which makes the result independent of scheduling: any worker count
// produces identical output.
func forEachBlock(n, workers int, fn func(i int) error) error {
	if n == 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}

	var (
		sig    errSignal
		cursor atomic.Int64
		wg     sync.WaitGroup
	)

	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()

			for !sig.triggered() {
				i := int(cursor.Add(1)) - 1
				if i >= n {
					return
				}
				if err := fn(i); err != nil {
					sig.signal(err)
					return
				}
			}
		}()
	}
	wg.Wait()

	return sig.err
}
