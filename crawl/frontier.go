package crawl

import (
	"sync"

	"github.com/fwojciec/gdndoc"
	"github.com/fwojciec/gdndoc/bloom"
)

// Frontier is an in-memory FIFO work queue with Bloom filter
// deduplication by page URL. First-seen order is preserved, which is
// what keeps output and manifest ordering deterministic across runs
// against an unchanged site. It is safe for concurrent use.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	queue []gdndoc.WorkUnit
}

// NewFrontier creates a Frontier sized for n expected work units with
// the given false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		seen: bloom.NewFilter(n, fpRate),
	}
}

// Push adds a work unit to the frontier.
// Returns false if a unit with the same URL has already been seen.
func (f *Frontier) Push(unit gdndoc.WorkUnit) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.seen.Test(unit.URL) {
		return false
	}
	f.seen.Add(unit.URL)

	f.queue = append(f.queue, unit)
	return true
}

// Pop returns the next work unit in first-seen order.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (gdndoc.WorkUnit, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return gdndoc.WorkUnit{}, false
	}
	unit := f.queue[0]
	f.queue = f.queue[1:]
	return unit, true
}

// Drain removes and returns all queued work units in first-seen order.
func (f *Frontier) Drain() []gdndoc.WorkUnit {
	f.mu.Lock()
	defer f.mu.Unlock()

	units := f.queue
	f.queue = nil
	return units
}

// Len returns the number of work units in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Seen returns true if a unit with the URL has been queued before.
func (f *Frontier) Seen(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Test(url)
}
