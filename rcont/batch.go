package rcont

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// GenerateBatch samples count independent tables satisfying m into one
// contiguous buffer of count row-major blocks.
//
// The index range [0, count) is partitioned statically and contiguously
// across cfg.Workers workers. Each worker owns a stream derived from the
// root seed and its worker index, and writes only into its pre-assigned
// blocks, so workers share no mutable state. Reproducibility is therefore
// per worker-slot: a fixed (seed, workers) pair reproduces the batch
// exactly, while changing the worker count reassigns streams to tables.
//
// The call is synchronous and atomic: it blocks until every worker
// finishes, and on any error no batch is returned.
func GenerateBatch[T Count](count int, m *Margins[T], cfg Config) (*Batch[T], error) {
	out := make([]T, count*m.NRows()*m.NCols())
	return GenerateBatchInto(count, m, cfg, out)
}

// GenerateBatchInto is GenerateBatch writing into a caller-supplied buffer
// of at least count*NRows*NCols entries. The returned Batch is a view over
// out; on error the buffer contents are unspecified.
func GenerateBatchInto[T Count](count int, m *Margins[T], cfg Config, out []T) (*Batch[T], error) {
	if count < 1 {
		return nil, fmt.Errorf("rcont: table count must be positive, got %d", count)
	}
	block := m.NRows() * m.NCols()
	if len(out) < count*block {
		return nil, fmt.Errorf("%w: have %d entries, need %d", ErrShortBuffer, len(out), count*block)
	}

	logFact, err := cfg.logFactorials(m.total)
	if err != nil {
		return nil, err
	}
	root, err := cfg.rootStream()
	if err != nil {
		return nil, err
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > count {
		workers = count
	}

	logrus.Debugf("rcont: generating %d tables (%dx%d, total=%d) across %d workers",
		count, m.NRows(), m.NCols(), m.total, workers)
	start := time.Now()

	// Static contiguous partition; the first count%workers workers take
	// one extra table.
	per := count / workers
	extra := count % workers

	var wg sync.WaitGroup
	errs := make([]error, workers)
	next := 0
	for w := 0; w < workers; w++ {
		size := per
		if w < extra {
			size++
		}
		hi := next + size

		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			stream := root.Derive(uint64(w))
			for i := lo; i < hi; i++ {
				if err := sampleTable(m, logFact, stream, out[i*block:(i+1)*block]); err != nil {
					errs[w] = fmt.Errorf("table %d: %w", i, err)
					return
				}
			}
		}(w, next, hi)
		next = hi
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	logrus.Debugf("rcont: batch of %d tables done in %s", count, time.Since(start))
	return &Batch[T]{data: out[:count*block], nRows: m.NRows(), nCols: m.NCols(), count: count}, nil
}
