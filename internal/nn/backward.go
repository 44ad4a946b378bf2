package nn

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/digitnet-ml/digitnet/internal/matrix"
)

// Grads holds the loss gradients for every parameter, shape-matched to
// Params. They are consumed by the optimizer step and discarded.
type Grads struct {
	W1 *mat.Dense
	B1 *mat.Dense
	W2 *mat.Dense
	B2 *mat.Dense
}

// Backward computes the gradients of the mean cross-entropy loss with
// respect to all parameters, averaged over the batch.
//
// The softmax and cross-entropy derivatives combine into dZ2 = A2 − Y, which
// is why Backward needs the labels but not the cost value:
//
//	dZ2 = A2 − Y
//	dW2 = A1ᵀ·dZ2 / N        db2 = colsum(dZ2) / N
//	dA1 = dZ2·W2ᵀ
//	dZ1 = dA1 ⊙ sigmoid′(Z1)
//	dW1 = Xᵀ·dZ1 / N         db1 = colsum(dZ1) / N
//
// Pure function: x, y, acts and p are not modified.
func Backward(x, y *mat.Dense, acts *Activations, p *Params) (*Grads, error) {
	if err := matrix.CheckSame(acts.A2, y); err != nil {
		return nil, fmt.Errorf("nn: backward labels: %w", err)
	}
	n, _ := x.Dims()
	if yn, _ := y.Dims(); yn != n {
		return nil, fmt.Errorf("nn: backward: %d feature rows vs %d label rows: %w",
			n, yn, matrix.ErrShapeMismatch)
	}
	inv := 1 / float64(n)

	var dz2 mat.Dense
	dz2.Sub(acts.A2, y)

	var dw2 mat.Dense
	dw2.Mul(acts.A1.T(), &dz2)
	dw2.Scale(inv, &dw2)

	db2 := matrix.SumRows(&dz2)
	db2.Scale(inv, db2)

	var da1 mat.Dense
	da1.Mul(&dz2, p.W2.T())

	var dz1 mat.Dense
	dz1.MulElem(&da1, matrix.Apply(sigmoidPrime, acts.Z1))

	var dw1 mat.Dense
	dw1.Mul(x.T(), &dz1)
	dw1.Scale(inv, &dw1)

	db1 := matrix.SumRows(&dz1)
	db1.Scale(inv, db1)

	return &Grads{W1: &dw1, B1: db1, W2: &dw2, B2: db2}, nil
}
