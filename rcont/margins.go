// Package rcont samples random two-way contingency tables with prescribed
// row and column sums, weighted by their exact combinatorial likelihood
// (Patefield's algorithm AS 159). Tables are produced one conditional cell
// at a time against a shared log-factorial lookup table; batches fan out
// across workers with independently derived random streams.
package rcont

import (
	"fmt"

	"github.com/samber/lo"
)

// Count constrains the integer width of margins and table entries. Both
// widths share one generic implementation; only the representable range of
// sums differs.
type Count interface {
	~int32 | ~int64
}

// Margins holds validated row and column sums. Immutable after
// construction; a single Margins value may be shared by any number of
// concurrent generations.
type Margins[T Count] struct {
	rowSums []T
	colSums []T
	total   int64
}

// NewMargins validates and captures the given row and column sums.
// It requires at least 2 rows and 2 columns, strictly positive entries,
// and matching grand totals. The slices are copied, so callers may reuse
// or mutate their own afterwards.
func NewMargins[T Count](rowSums, colSums []T) (*Margins[T], error) {
	if len(rowSums) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewRows, len(rowSums))
	}
	if len(colSums) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewCols, len(colSums))
	}
	for i, v := range rowSums {
		if v <= 0 {
			return nil, fmt.Errorf("%w: row %d has sum %d", ErrNonPositiveMargin, i, v)
		}
	}
	for j, v := range colSums {
		if v <= 0 {
			return nil, fmt.Errorf("%w: column %d has sum %d", ErrNonPositiveMargin, j, v)
		}
	}

	rowTotal := lo.SumBy(rowSums, func(v T) int64 { return int64(v) })
	colTotal := lo.SumBy(colSums, func(v T) int64 { return int64(v) })
	if rowTotal != colTotal {
		return nil, fmt.Errorf("%w: rows total %d, columns total %d", ErrTotalMismatch, rowTotal, colTotal)
	}

	m := &Margins[T]{
		rowSums: make([]T, len(rowSums)),
		colSums: make([]T, len(colSums)),
		total:   rowTotal,
	}
	copy(m.rowSums, rowSums)
	copy(m.colSums, colSums)
	return m, nil
}

// NRows returns the number of rows a generated table will have.
func (m *Margins[T]) NRows() int { return len(m.rowSums) }

// NCols returns the number of columns a generated table will have.
func (m *Margins[T]) NCols() int { return len(m.colSums) }

// Total returns the grand total shared by the row and column sums.
func (m *Margins[T]) Total() int64 { return m.total }

// RowSum returns the prescribed sum for row i.
func (m *Margins[T]) RowSum(i int) T { return m.rowSums[i] }

// ColSum returns the prescribed sum for column j.
func (m *Margins[T]) ColSum(j int) T { return m.colSums[j] }
