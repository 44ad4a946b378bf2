// Package optim implements the parameter update rule for training.
//
// Only plain full-batch gradient descent is provided; the training loop
// applies one Step per iteration to all parameters simultaneously.
package optim

import (
	"gonum.org/v1/gonum/mat"

	"github.com/digitnet-ml/digitnet/internal/nn"
)

// SGD applies the gradient-descent update rule:
//
//	param = param − lr · gradient
//
// Example:
//
//	opt := optim.NewSGD(optim.SGDConfig{LR: 0.5})
//	opt.Step(params, grads)
type SGD struct {
	lr float64
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR float64 // learning rate (default: 0.01)
}

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{lr: config.LR}
}

// Step updates every parameter in place from its gradient.
//
// Gradients must be shape-matched to the parameters, which Backward
// guarantees. All four parameters are updated in the same step.
func (s *SGD) Step(p *nn.Params, g *nn.Grads) {
	s.update(p.W1, g.W1)
	s.update(p.B1, g.B1)
	s.update(p.W2, g.W2)
	s.update(p.B2, g.B2)
}

func (s *SGD) update(param, grad *mat.Dense) {
	var scaled mat.Dense
	scaled.Scale(s.lr, grad)
	param.Sub(param, &scaled)
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
