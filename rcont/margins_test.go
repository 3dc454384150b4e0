package rcont

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMargins_Valid(t *testing.T) {
	m, err := NewMargins([]int64{3, 2}, []int64{4, 1})
	require.NoError(t, err)
	assert.Equal(t, 2, m.NRows())
	assert.Equal(t, 2, m.NCols())
	assert.Equal(t, int64(5), m.Total())
	assert.Equal(t, int64(3), m.RowSum(0))
	assert.Equal(t, int64(1), m.ColSum(1))
}

func TestNewMargins_Int32(t *testing.T) {
	m, err := NewMargins([]int32{10, 20, 30}, []int32{15, 15, 30})
	require.NoError(t, err)
	assert.Equal(t, int64(60), m.Total())
}

func TestNewMargins_RejectsSingleRow(t *testing.T) {
	_, err := NewMargins([]int64{5}, []int64{3, 2})
	assert.ErrorIs(t, err, ErrTooFewRows)
}

func TestNewMargins_RejectsSingleColumn(t *testing.T) {
	_, err := NewMargins([]int64{3, 2}, []int64{5})
	assert.ErrorIs(t, err, ErrTooFewCols)
}

func TestNewMargins_RejectsZeroColumnEntry(t *testing.T) {
	_, err := NewMargins([]int64{3, 2}, []int64{5, 0})
	assert.ErrorIs(t, err, ErrNonPositiveMargin)
}

func TestNewMargins_RejectsNegativeRowEntry(t *testing.T) {
	_, err := NewMargins([]int64{-3, 2}, []int64{-2, 1})
	assert.ErrorIs(t, err, ErrNonPositiveMargin)
}

func TestNewMargins_RejectsMismatchedTotals(t *testing.T) {
	// 3+2 = 5 on the rows, 4+2 = 6 on the columns.
	_, err := NewMargins([]int64{3, 2}, []int64{4, 2})
	assert.ErrorIs(t, err, ErrTotalMismatch)
}

func TestNewMargins_CopiesInput(t *testing.T) {
	rows := []int64{3, 2}
	cols := []int64{4, 1}
	m, err := NewMargins(rows, cols)
	require.NoError(t, err)

	rows[0] = 99
	cols[0] = 99
	assert.Equal(t, int64(3), m.RowSum(0))
	assert.Equal(t, int64(4), m.ColSum(0))
}
