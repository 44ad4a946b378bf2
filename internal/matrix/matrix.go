// Package matrix provides the small set of dense-matrix operations the
// network needs on top of gonum's mat.Dense: row-vector broadcasting,
// elementwise maps, row-wise softmax and reductions.
//
// All functions return freshly allocated matrices and never mutate their
// inputs. Shape violations are reported as errors wrapping ErrShapeMismatch
// before any gonum call, so callers see a wrapped error rather than a
// library panic.
package matrix

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ErrShapeMismatch reports inconsistent matrix dimensions between operands.
var ErrShapeMismatch = errors.New("shape mismatch")

// AddRowVec returns m with the 1×c row vector added to every row.
//
// This is the broadcast used to apply a bias row to a batch of activations.
func AddRowVec(m, row *mat.Dense) (*mat.Dense, error) {
	r, c := m.Dims()
	rr, rc := row.Dims()
	if rr != 1 || rc != c {
		return nil, fmt.Errorf("matrix: add row vector %dx%d to %dx%d: %w", rr, rc, r, c, ErrShapeMismatch)
	}

	out := mat.NewDense(r, c, nil)
	rowData := row.RawRowView(0)
	for i := 0; i < r; i++ {
		src := m.RawRowView(i)
		dst := out.RawRowView(i)
		floats.AddTo(dst, src, rowData)
	}
	return out, nil
}

// Apply returns f applied elementwise to m.
func Apply(f func(float64) float64, m *mat.Dense) *mat.Dense {
	r, c := m.Dims()
	out := mat.NewDense(r, c, nil)
	out.Apply(func(_, _ int, v float64) float64 { return f(v) }, m)
	return out
}

// SoftmaxRows returns the row-wise softmax of m.
//
// Each row's maximum is subtracted before exponentiation. Without that shift
// a logit above ~709 overflows float64 and the whole row becomes NaN.
func SoftmaxRows(m *mat.Dense) *mat.Dense {
	r, c := m.Dims()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		src := m.RawRowView(i)
		dst := out.RawRowView(i)

		max := floats.Max(src)
		var sum float64
		for j, v := range src {
			e := math.Exp(v - max)
			dst[j] = e
			sum += e
		}
		floats.Scale(1/sum, dst)
	}
	return out
}

// SumRows returns the column sums of m as a 1×c matrix.
func SumRows(m *mat.Dense) *mat.Dense {
	r, c := m.Dims()
	out := mat.NewDense(1, c, nil)
	dst := out.RawRowView(0)
	for i := 0; i < r; i++ {
		floats.Add(dst, m.RawRowView(i))
	}
	return out
}

// ArgmaxRows returns the index of the maximum entry of each row.
// Ties resolve to the lowest index (floats.MaxIdx convention).
func ArgmaxRows(m *mat.Dense) []int {
	r, _ := m.Dims()
	idx := make([]int, r)
	for i := 0; i < r; i++ {
		idx[i] = floats.MaxIdx(m.RawRowView(i))
	}
	return idx
}

// CheckMul verifies that a (ra×ca) can left-multiply b (rb×cb).
func CheckMul(a, b *mat.Dense) error {
	_, ca := a.Dims()
	rb, _ := b.Dims()
	if ca != rb {
		ra, _ := a.Dims()
		_, cb := b.Dims()
		return fmt.Errorf("matrix: multiply %dx%d by %dx%d: %w", ra, ca, rb, cb, ErrShapeMismatch)
	}
	return nil
}

// CheckSame verifies that a and b have identical dimensions.
func CheckSame(a, b *mat.Dense) error {
	ra, ca := a.Dims()
	rb, cb := b.Dims()
	if ra != rb || ca != cb {
		return fmt.Errorf("matrix: want %dx%d, got %dx%d: %w", ra, ca, rb, cb, ErrShapeMismatch)
	}
	return nil
}
