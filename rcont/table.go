package rcont

import "fmt"

// Table is a dense nRows x nCols integer matrix over a flat buffer.
//
// The buffer is row-major: entry (i, j) lives at data[i*nCols+j]. This is
// the only layout the package produces; callers needing the column-major
// convention of the original FORTRAN/C lineage should use ColumnMajor.
type Table[T Count] struct {
	data  []T
	nRows int
	nCols int
}

// TableOver wraps an existing row-major buffer as a Table without copying.
// The buffer must hold at least nRows*nCols entries.
func TableOver[T Count](data []T, nRows, nCols int) (*Table[T], error) {
	if nRows < 1 || nCols < 1 {
		return nil, fmt.Errorf("rcont: table dimensions %dx%d are not positive", nRows, nCols)
	}
	if len(data) < nRows*nCols {
		return nil, fmt.Errorf("%w: have %d entries, need %d", ErrShortBuffer, len(data), nRows*nCols)
	}
	return &Table[T]{data: data[:nRows*nCols], nRows: nRows, nCols: nCols}, nil
}

// NRows returns the number of rows.
func (t *Table[T]) NRows() int { return t.nRows }

// NCols returns the number of columns.
func (t *Table[T]) NCols() int { return t.nCols }

// At returns the entry at row i, column j.
func (t *Table[T]) At(i, j int) T { return t.data[i*t.nCols+j] }

// Row returns row i as a slice aliasing the table's buffer.
func (t *Table[T]) Row(i int) []T { return t.data[i*t.nCols : (i+1)*t.nCols] }

// Data returns the table's row-major buffer. The slice aliases the table;
// mutating it mutates the table.
func (t *Table[T]) Data() []T { return t.data }

// ColumnMajor returns a copy of the table in column-major order, the
// layout emitted by the historical AS 159 implementations. Row-major and
// column-major buffers are not interchangeable; use this helper rather
// than reinterpreting Data.
func (t *Table[T]) ColumnMajor() []T {
	out := make([]T, len(t.data))
	for i := 0; i < t.nRows; i++ {
		for j := 0; j < t.nCols; j++ {
			out[i+j*t.nRows] = t.data[i*t.nCols+j]
		}
	}
	return out
}

// Batch is a sequence of tables generated against one Margins, laid out as
// count contiguous row-major blocks of nRows*nCols entries in a single
// buffer.
type Batch[T Count] struct {
	data  []T
	nRows int
	nCols int
	count int
}

// Count returns the number of tables in the batch.
func (b *Batch[T]) Count() int { return b.count }

// Table returns a view over the i-th table's block. No copy is made.
func (b *Batch[T]) Table(i int) *Table[T] {
	block := b.nRows * b.nCols
	return &Table[T]{data: b.data[i*block : (i+1)*block], nRows: b.nRows, nCols: b.nCols}
}

// Data returns the whole batch buffer: count blocks of nRows*nCols entries.
func (b *Batch[T]) Data() []T { return b.data }
