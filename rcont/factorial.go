package rcont

import "math"

// BuildLogFactorialTable returns the cumulative log-factorial table for
// grand totals up to total: entry i holds ln(i!), with entry 0 equal to 0.
// The table is a pure function of total and is safe to share, read-only,
// across any number of concurrent generations whose margins sum to at most
// total. Returns nil for a negative total.
func BuildLogFactorialTable(total int64) []float64 {
	if total < 0 {
		return nil
	}
	table := make([]float64, total+1)
	x := 0.0
	for i := int64(1); i <= total; i++ {
		x += math.Log(float64(i))
		table[i] = x
	}
	return table
}
