package rcont

import "errors"

// Sentinel errors returned by margin validation and table generation.
// Callers can test for them with errors.Is; the wrapped messages carry
// the offending indices and values.
var (
	// ErrTooFewRows is returned when the margins describe fewer than 2 rows.
	ErrTooFewRows = errors.New("rcont: margins must have at least 2 rows")

	// ErrTooFewCols is returned when the margins describe fewer than 2 columns.
	ErrTooFewCols = errors.New("rcont: margins must have at least 2 columns")

	// ErrNonPositiveMargin is returned when a row or column sum is <= 0.
	ErrNonPositiveMargin = errors.New("rcont: margin entries must be positive")

	// ErrTotalMismatch is returned when the row sums and column sums do not
	// add up to the same grand total.
	ErrTotalMismatch = errors.New("rcont: row sums and column sums disagree")

	// ErrUnrealizableMargins is returned when a probability evaluation would
	// index outside the log-factorial table. With margins built through
	// NewMargins this only happens when a caller-supplied table is sized
	// below the margins' grand total.
	ErrUnrealizableMargins = errors.New("rcont: margins exceed the log-factorial table range")

	// ErrShortBuffer is returned when a caller-supplied output buffer cannot
	// hold the requested tables.
	ErrShortBuffer = errors.New("rcont: output buffer too small")
)
