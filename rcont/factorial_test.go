package rcont

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLogFactorialTable_CumulativeDifferences(t *testing.T) {
	table := BuildLogFactorialTable(200)
	require.Len(t, table, 201)
	assert.Zero(t, table[0])
	for i := 1; i <= 200; i++ {
		assert.InDelta(t, math.Log(float64(i)), table[i]-table[i-1], 1e-11, "entry %d", i)
	}
}

func TestBuildLogFactorialTable_KnownValues(t *testing.T) {
	table := BuildLogFactorialTable(10)
	assert.Zero(t, table[1]) // ln(1!) = 0
	assert.InDelta(t, math.Log(120), table[5], 1e-12)
	assert.InDelta(t, math.Log(3628800), table[10], 1e-10)
}

func TestBuildLogFactorialTable_NegativeTotal(t *testing.T) {
	assert.Nil(t, BuildLogFactorialTable(-1))
}

func TestBuildLogFactorialTable_ZeroTotal(t *testing.T) {
	table := BuildLogFactorialTable(0)
	require.Len(t, table, 1)
	assert.Zero(t, table[0])
}
