package nn

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/digitnet-ml/digitnet/internal/matrix"
)

// Activations holds the per-batch intermediate matrices of one forward pass.
//
// All four matrices have one row per input sample. They are consumed by
// Backward and discarded afterwards; nothing retains them across iterations.
type Activations struct {
	Z1 *mat.Dense // pre-activation of the hidden layer
	A1 *mat.Dense // sigmoid(Z1)
	Z2 *mat.Dense // pre-activation of the output layer (logits)
	A2 *mat.Dense // row-wise softmax(Z2), each row a probability distribution
}

// Forward computes the activations for a batch.
//
//	Z1 = X·W1 + B1
//	A1 = sigmoid(Z1)
//	Z2 = A1·W2 + B2
//	A2 = softmax(Z2) row-wise
//
// x must be N×inputSize. Returns an error wrapping matrix.ErrShapeMismatch
// if x does not conform to the parameter shapes.
func Forward(x *mat.Dense, p *Params) (*Activations, error) {
	if err := matrix.CheckMul(x, p.W1); err != nil {
		return nil, fmt.Errorf("nn: forward hidden layer: %w", err)
	}

	var xw mat.Dense
	xw.Mul(x, p.W1)
	z1, err := matrix.AddRowVec(&xw, p.B1)
	if err != nil {
		return nil, fmt.Errorf("nn: forward hidden bias: %w", err)
	}
	a1 := matrix.Apply(sigmoid, z1)

	var aw mat.Dense
	aw.Mul(a1, p.W2)
	z2, err := matrix.AddRowVec(&aw, p.B2)
	if err != nil {
		return nil, fmt.Errorf("nn: forward output bias: %w", err)
	}
	a2 := matrix.SoftmaxRows(z2)

	return &Activations{Z1: z1, A1: a1, Z2: z2, A2: a2}, nil
}

// sigmoid is the hidden-layer nonlinearity, 1/(1+e^-z).
func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}

// sigmoidPrime is the derivative of sigmoid, s·(1−s).
func sigmoidPrime(z float64) float64 {
	s := sigmoid(z)
	return s * (1 - s)
}
