package rcont

import "math"

// sampleTable fills out (row-major, len >= NRows*NCols) with one random
// table satisfying m, drawing entropy from stream and evaluating every
// probability against logFact (see BuildLogFactorialTable).
//
// Cells are visited row-major over rows 0..nRows-2 and, within a row,
// columns 0..nCols-2. Each interior cell is drawn from the reduced central
// hypergeometric distribution conditional on everything placed so far; the
// row's last column and the whole last row are then closed out from
// explicit residual budgets. The quantities tracked per cell follow
// Patefield's AS 159:
//
//	ia — the row's still-unassigned budget
//	id — the column's still-unassigned budget (colRem)
//	ie — the unassigned grand total before placing this cell
//	ib — ie - ia
//	ii — ib - id
func sampleTable[T Count](m *Margins[T], logFact []float64, stream *Stream, out []T) error {
	nRows := m.NRows()
	nCols := m.NCols()

	// Remaining budgets of the interior columns; the last column is always
	// closed out from the row residual instead.
	colRem := make([]int64, nCols-1)
	for j := 0; j < nCols-1; j++ {
		colRem[j] = int64(m.colSums[j])
	}

	// Unassigned total over the rows not yet visited.
	rowsRem := m.total

	for l := 0; l < nRows-1; l++ {
		ia := int64(m.rowSums[l])
		ic := rowsRem
		rowsRem -= ia

		for c := 0; c < nCols-1; c++ {
			id := colRem[c]
			ie := ic
			ic -= id
			ib := ie - ia
			ii := ib - id

			// Everything from this cell to the end of the row is forced
			// to zero once the unassigned total runs out. The interior
			// column budgets stay untouched; later rows consume them.
			if ie == 0 {
				ia = 0
				for j := c; j < nCols; j++ {
					out[l*nCols+j] = 0
				}
				break
			}

			v, err := sampleCell(ia, ib, ic, id, ie, ii, logFact, stream)
			if err != nil {
				return err
			}
			out[l*nCols+c] = T(v)
			ia -= v
			colRem[c] -= v
		}

		// Row close-out: the last column takes the residual row budget.
		out[l*nCols+nCols-1] = T(ia)
	}

	// Last-row close-out: the interior columns take the remaining column
	// budgets, and the final cell takes the residual of the last row's
	// prescribed sum.
	last := nRows - 1
	residual := int64(m.rowSums[last])
	for j := 0; j < nCols-1; j++ {
		out[last*nCols+j] = T(colRem[j])
		residual -= colRem[j]
	}
	out[last*nCols+nCols-1] = T(residual)
	return nil
}

// sampleCell draws one cell value by inverse-CDF sampling over the reduced
// hypergeometric distribution parameterized by (ia, ib, ic, id, ie, ii),
// without materializing the distribution: the mode's mass is evaluated in
// closed form through logFact, then trial values walk outward from the
// mode in both directions with cheap multiplicative mass updates until the
// accumulated mass covers the uniform draw.
func sampleCell(ia, ib, ic, id, ie, ii int64, logFact []float64, stream *Stream) (int64, error) {
	// Every lookup below indexes logFact by a value in [0, ie]. Margins
	// that went through NewMargins keep ie within the table built for
	// their total; an undersized caller-supplied table or inconsistent
	// internal state is caught here rather than read out of bounds.
	if ib < 0 || ic < 0 || ie >= int64(len(logFact)) {
		return 0, ErrUnrealizableMargins
	}

	r := stream.openFloat64()
	for {
		// Mode of the distribution and its mass. The pmf is a ratio of
		// factorials; summing and subtracting log-factorial entries and
		// exponentiating once keeps it in range.
		nlm := int64(float64(ia*id)/float64(ie) + 0.5)
		if nlm < 0 || nlm > ia || nlm > id || ii+nlm < 0 {
			return 0, ErrUnrealizableMargins
		}
		x := math.Exp(logFact[ia] + logFact[ib] + logFact[ic] + logFact[id] -
			logFact[ie] - logFact[nlm] - logFact[id-nlm] - logFact[ia-nlm] - logFact[ii+nlm])
		if r <= x {
			return nlm, nil
		}

		// Walk outward from the mode, one step up then one step down per
		// round, updating each direction's mass by its integer ratio. A
		// direction stops when its next numerator hits zero (support
		// boundary); once one side stops, the other drains alone.
		sumprb := x
		y := x
		nll := nlm
		upDone := false
		downDone := false
		for !upDone {
			if j := (id-nlm)*(ia-nlm); j == 0 {
				upDone = true
			} else {
				nlm++
				x *= float64(j) / float64(nlm*(ii+nlm))
				sumprb += x
				if r <= sumprb {
					return nlm, nil
				}
			}

			for !downDone {
				j := nll * (ii + nll)
				if j == 0 {
					downDone = true
					break
				}
				nll--
				y *= float64(j) / float64((id-nll)*(ia-nll))
				sumprb += y
				if r <= sumprb {
					return nll, nil
				}
				if !upDone {
					break
				}
			}
		}

		// Both directions exhausted without covering r: the accumulated
		// mass fell below 1 through underflow. Rescale the draw into the
		// observed mass and search again.
		r = sumprb * stream.openFloat64()
	}
}
