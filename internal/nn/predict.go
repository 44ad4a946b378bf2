package nn

import (
	"gonum.org/v1/gonum/mat"

	"github.com/digitnet-ml/digitnet/internal/matrix"
)

// Predict runs a forward pass and returns the most probable class index for
// every row of x. Ties resolve to the lowest index.
func Predict(x *mat.Dense, p *Params) ([]int, error) {
	acts, err := Forward(x, p)
	if err != nil {
		return nil, err
	}
	return matrix.ArgmaxRows(acts.A2), nil
}
