// Package testutil provides shared assertion helpers for the rcont test
// packages: margin-invariant checks over generated tables and batches.
package testutil

import "testing"

// Count mirrors rcont.Count; redeclared here so the helper package does
// not import its consumer.
type Count interface {
	~int32 | ~int64
}

// AssertMargins fails t unless the row-major table data (nRows x nCols)
// has non-negative entries, row sums equal to rowSums, and column sums
// equal to colSums.
func AssertMargins[T Count](t *testing.T, data []T, rowSums, colSums []T) {
	t.Helper()
	nRows, nCols := len(rowSums), len(colSums)
	if len(data) != nRows*nCols {
		t.Fatalf("table has %d entries, want %d", len(data), nRows*nCols)
	}

	for i, v := range data {
		if v < 0 {
			t.Fatalf("entry %d is negative: %d", i, v)
		}
	}

	for i := 0; i < nRows; i++ {
		var sum T
		for j := 0; j < nCols; j++ {
			sum += data[i*nCols+j]
		}
		if sum != rowSums[i] {
			t.Errorf("row %d sums to %d, want %d", i, sum, rowSums[i])
		}
	}

	for j := 0; j < nCols; j++ {
		var sum T
		for i := 0; i < nRows; i++ {
			sum += data[i*nCols+j]
		}
		if sum != colSums[j] {
			t.Errorf("column %d sums to %d, want %d", j, sum, colSums[j])
		}
	}
}
