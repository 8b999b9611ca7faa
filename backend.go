package pixfilter

import (
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// RowFunc filters the rows [y0, y1) of a width x height src buffer into dst.
// It must only write the bytes of those rows and must never write src.
type RowFunc func(dst, src []uint8, width, height, y0, y1 int)

// Backend executes a RowFunc over a whole image. Backends are interchangeable:
// for the same input every backend must produce the same bytes.
type Backend interface {
	Name() string
	Run(dst, src []uint8, width, height int, fn RowFunc)
}

// Sequential runs the filter on the calling goroutine in a single pass.
type Sequential struct{}

// Name implements [Backend].
func (Sequential) Name() string { return "sequential" }

// Run implements [Backend].
func (Sequential) Run(dst, src []uint8, width, height int, fn RowFunc) {
	fn(dst, src, width, height, 0, height)
}

// Parallel splits the image into horizontal bands processed concurrently.
// Each band reads from the untouched source and writes disjoint rows of the destination.
type Parallel struct {
	// Workers is the maximum number of bands processed at once.
	// Zero or a negative value means runtime.GOMAXPROCS(0).
	Workers int
}

// Name implements [Backend].
func (*Parallel) Name() string { return "parallel" }

// Run implements [Backend]. It returns once all the bands are done.
func (p *Parallel) Run(dst, src []uint8, width, height int, fn RowFunc) {
	workers := p.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = Min(workers, height)
	if workers <= 1 {
		fn(dst, src, width, height, 0, height)
		return
	}
	band := (height + workers - 1) / workers

	var g errgroup.Group
	for y0 := 0; y0 < height; y0 += band {
		y0, y1 := y0, Min(y0+band, height)
		g.Go(func() error {
			fn(dst, src, width, height, y0, y1)
			return nil
		})
	}
	_ = g.Wait()
}

// ParseBackend returns the backend registered under name.
func ParseBackend(name string, workers int) (Backend, bool) {
	switch name {
	case "", "sequential":
		return Sequential{}, true
	case "parallel":
		return &Parallel{Workers: workers}, true
	}
	return nil, false
}

var (
	backendMu sync.RWMutex
	backend   Backend = Sequential{}
)

// SetBackend selects the backend used by Apply. Passing nil restores the sequential backend.
func SetBackend(b Backend) {
	if b == nil {
		b = Sequential{}
	}
	backendMu.Lock()
	backend = b
	backendMu.Unlock()

	Logger().Debug("pixfilter: backend selected", "backend", b.Name())
}

// CurrentBackend returns the backend used by Apply.
func CurrentBackend() Backend {
	backendMu.RLock()
	defer backendMu.RUnlock()
	return backend
}
