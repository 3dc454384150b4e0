package rcont

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableOver_Accessors(t *testing.T) {
	// 2x3, row-major: [[1,2,3],[4,5,6]].
	table, err := TableOver([]int64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)

	assert.Equal(t, 2, table.NRows())
	assert.Equal(t, 3, table.NCols())
	assert.Equal(t, int64(1), table.At(0, 0))
	assert.Equal(t, int64(6), table.At(1, 2))
	assert.Equal(t, []int64{4, 5, 6}, table.Row(1))
}

func TestTableOver_ShortBuffer(t *testing.T) {
	_, err := TableOver([]int64{1, 2, 3}, 2, 2)
	assert.ErrorIs(t, err, ErrShortBuffer)
}

func TestTableOver_BadDimensions(t *testing.T) {
	_, err := TableOver([]int64{1, 2}, 0, 2)
	assert.Error(t, err)
}

func TestTable_ColumnMajor(t *testing.T) {
	table, err := TableOver([]int64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)

	// Column-major walks columns first: (0,0),(1,0),(0,1),(1,1),(0,2),(1,2).
	assert.Equal(t, []int64{1, 4, 2, 5, 3, 6}, table.ColumnMajor())
	// The original buffer is untouched.
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6}, table.Data())
}

func TestTable_RowAliasesBuffer(t *testing.T) {
	buf := []int32{1, 2, 3, 4}
	table, err := TableOver(buf, 2, 2)
	require.NoError(t, err)

	table.Row(0)[1] = 9
	assert.Equal(t, int32(9), buf[1])
}
