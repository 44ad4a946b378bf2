package nn

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/digitnet-ml/digitnet/internal/matrix"
)

// Cost computes the mean categorical cross-entropy over a batch.
//
// a2 holds the predicted row-wise probability distributions, y the one-hot
// labels. The per-sample loss is −log of the probability predicted for the
// true class; the cost is the mean over all samples.
//
// Known numerical edge case: a predicted probability of exactly 0 for a true
// class makes the cost +Inf. That degeneracy is deliberately not clamped;
// callers see the infinite cost rather than a silently patched value.
func Cost(a2, y *mat.Dense) (float64, error) {
	if err := matrix.CheckSame(a2, y); err != nil {
		return 0, fmt.Errorf("nn: cost: %w", err)
	}

	n, _ := a2.Dims()
	truth := matrix.ArgmaxRows(y)

	var total float64
	for i, class := range truth {
		total -= math.Log(a2.At(i, class))
	}
	return total / float64(n), nil
}
