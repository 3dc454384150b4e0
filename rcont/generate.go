package rcont

import "fmt"

// Config groups the knobs shared by Generate and GenerateBatch. The zero
// value asks for OS entropy, one worker, and a freshly built log-factorial
// table.
type Config struct {
	// Seed is the root seed for the random stream. A zero seed falls back
	// to OS entropy, matching the historical calling convention.
	Seed uint64

	// OSEntropy forces the root seed to be drawn from the operating
	// system regardless of Seed. This makes the entropy fallback an
	// explicit choice rather than a magic value.
	OSEntropy bool

	// Workers is the number of concurrent workers for GenerateBatch.
	// Values below 1 mean 1; Generate ignores it.
	Workers int

	// LogFactorials optionally supplies a pre-built table from
	// BuildLogFactorialTable, letting callers amortize it across calls
	// that share a grand total. It must cover at least the margins'
	// total; when nil, a table is built per call.
	LogFactorials []float64
}

// rootStream builds the root random stream selected by the config.
func (c Config) rootStream() (*Stream, error) {
	if c.OSEntropy || c.Seed == 0 {
		return NewOSStream()
	}
	return NewStream(c.Seed), nil
}

// logFactorials resolves the log-factorial table for the given grand
// total, validating a caller-supplied one.
func (c Config) logFactorials(total int64) ([]float64, error) {
	if c.LogFactorials == nil {
		return BuildLogFactorialTable(total), nil
	}
	if int64(len(c.LogFactorials)) < total+1 {
		return nil, fmt.Errorf("%w: factorial table has %d entries, margins total %d needs %d",
			ErrUnrealizableMargins, len(c.LogFactorials), total, total+1)
	}
	return c.LogFactorials, nil
}

// Generate samples one table satisfying m. With a non-zero cfg.Seed and
// cfg.OSEntropy unset the result is deterministic across runs.
func Generate[T Count](m *Margins[T], cfg Config) (*Table[T], error) {
	out := make([]T, m.NRows()*m.NCols())
	return GenerateInto(m, cfg, out)
}

// GenerateInto samples one table satisfying m into the caller-supplied
// row-major buffer out, which must hold at least NRows*NCols entries. The
// returned Table is a view over out. On error the buffer contents are
// unspecified and no table is returned.
func GenerateInto[T Count](m *Margins[T], cfg Config, out []T) (*Table[T], error) {
	if len(out) < m.NRows()*m.NCols() {
		return nil, fmt.Errorf("%w: have %d entries, need %d", ErrShortBuffer, len(out), m.NRows()*m.NCols())
	}
	logFact, err := cfg.logFactorials(m.total)
	if err != nil {
		return nil, err
	}
	stream, err := cfg.rootStream()
	if err != nil {
		return nil, err
	}
	if err := sampleTable(m, logFact, stream, out); err != nil {
		return nil, err
	}
	return &Table[T]{data: out[:m.NRows()*m.NCols()], nRows: m.NRows(), nCols: m.NCols()}, nil
}
