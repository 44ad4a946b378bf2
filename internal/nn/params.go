// Package nn implements a two-layer fully-connected classifier trained by
// full-batch gradient descent: sigmoid hidden layer, softmax output, and
// categorical cross-entropy loss.
//
// Parameters are held in an explicit Params struct that the caller threads
// through training; the package keeps no state of its own. Forward, Cost and
// Backward are pure functions of their inputs.
package nn

import (
	"errors"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// WeightScale is the factor applied to the initial random weights.
//
// Small initial weights keep the sigmoid hidden units away from their
// saturated regions at the start of training.
const WeightScale = 0.01

// ErrInvalidDimension reports a non-positive layer size at initialization.
var ErrInvalidDimension = errors.New("invalid dimension")

// Params holds the trainable parameters of the network.
//
// Shapes: W1 is input×hidden, B1 is 1×hidden, W2 is hidden×output,
// B2 is 1×output. The bias rows are broadcast onto every batch row during
// the forward pass.
type Params struct {
	W1 *mat.Dense
	B1 *mat.Dense
	W2 *mat.Dense
	B2 *mat.Dense
}

// NewParams initializes parameters for an inputSize→hiddenSize→outputSize
// network.
//
// Weights are drawn from a seeded normal distribution scaled by WeightScale;
// biases start at zero. The same seed always produces bit-identical
// parameters.
//
// Returns an error wrapping ErrInvalidDimension if any size is not positive.
func NewParams(inputSize, hiddenSize, outputSize int, seed int64) (*Params, error) {
	for _, d := range []struct {
		name string
		size int
	}{
		{"input", inputSize},
		{"hidden", hiddenSize},
		{"output", outputSize},
	} {
		if d.size <= 0 {
			return nil, fmt.Errorf("nn: %s size %d: %w", d.name, d.size, ErrInvalidDimension)
		}
	}

	rng := rand.New(rand.NewSource(seed))
	return &Params{
		W1: randDense(rng, inputSize, hiddenSize),
		B1: mat.NewDense(1, hiddenSize, nil),
		W2: randDense(rng, hiddenSize, outputSize),
		B2: mat.NewDense(1, outputSize, nil),
	}, nil
}

// Dims returns the input, hidden and output sizes implied by the parameter
// shapes.
func (p *Params) Dims() (inputSize, hiddenSize, outputSize int) {
	inputSize, hiddenSize = p.W1.Dims()
	_, outputSize = p.W2.Dims()
	return inputSize, hiddenSize, outputSize
}

// Clone returns a deep copy of the parameters.
func (p *Params) Clone() *Params {
	return &Params{
		W1: mat.DenseCopyOf(p.W1),
		B1: mat.DenseCopyOf(p.B1),
		W2: mat.DenseCopyOf(p.W2),
		B2: mat.DenseCopyOf(p.B2),
	}
}

func randDense(rng *rand.Rand, r, c int) *mat.Dense {
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.NormFloat64() * WeightScale
	}
	return mat.NewDense(r, c, data)
}
