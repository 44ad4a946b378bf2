// Package trainer orchestrates full-batch gradient-descent training.
//
// Each iteration runs forward → cost → backward → SGD update on the entire
// training batch. There is no early stopping and no convergence check: the
// loop runs exactly the configured number of iterations regardless of the
// cost trend, and cost reporting is diagnostic output only.
package trainer

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/digitnet-ml/digitnet/internal/matrix"
	"github.com/digitnet-ml/digitnet/internal/metrics"
	"github.com/digitnet-ml/digitnet/internal/nn"
	"github.com/digitnet-ml/digitnet/internal/optim"
)

// DefaultLogEvery is the reporting cadence when RunConfig.LogEvery is unset.
const DefaultLogEvery = 100

// RunConfig captures the knobs required by the training loop.
type RunConfig struct {
	HiddenSize   int
	LearningRate float64
	Iterations   int
	LogEvery     int   // log cadence in iterations; defaults to DefaultLogEvery
	Seed         int64 // parameter initialization seed

	// Optional held-out set. Used only for accuracy reporting at the log
	// cadence, never for parameter selection.
	EvalX *mat.Dense
	EvalY *mat.Dense
}

// Train initializes parameters once and runs the configured number of
// full-batch iterations, returning the trained parameters.
//
// With Iterations == 0 the initial parameters are returned unchanged; that
// is a valid run, not an error. Any shape inconsistency between x, y and the
// parameters aborts the run immediately.
func Train(x, y *mat.Dense, cfg RunConfig) (*nn.Params, error) {
	if cfg.LearningRate <= 0 {
		return nil, fmt.Errorf("trainer: learning rate must be > 0 (got %v)", cfg.LearningRate)
	}
	if cfg.Iterations < 0 {
		return nil, fmt.Errorf("trainer: iterations must be >= 0 (got %d)", cfg.Iterations)
	}
	if cfg.LogEvery <= 0 {
		cfg.LogEvery = DefaultLogEvery
	}

	n, inputSize := x.Dims()
	yRows, outputSize := y.Dims()
	if n != yRows {
		return nil, fmt.Errorf("trainer: %d feature rows vs %d label rows: %w",
			n, yRows, matrix.ErrShapeMismatch)
	}

	params, err := nn.NewParams(inputSize, cfg.HiddenSize, outputSize, cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("trainer: init: %w", err)
	}

	opt := optim.NewSGD(optim.SGDConfig{LR: cfg.LearningRate})
	var window metrics.Window

	for iter := 0; iter < cfg.Iterations; iter++ {
		start := time.Now()

		acts, err := nn.Forward(x, params)
		if err != nil {
			return nil, fmt.Errorf("trainer: iteration %d: %w", iter, err)
		}
		cost, err := nn.Cost(acts.A2, y)
		if err != nil {
			return nil, fmt.Errorf("trainer: iteration %d: %w", iter, err)
		}
		grads, err := nn.Backward(x, y, acts, params)
		if err != nil {
			return nil, fmt.Errorf("trainer: iteration %d: %w", iter, err)
		}
		opt.Step(params, grads)

		window.Record(n, time.Since(start), cost)

		if iter%cfg.LogEvery == 0 {
			logProgress(iter, &window, params, cfg)
		}
	}

	return params, nil
}

// logProgress emits one diagnostic line, including held-out accuracy when an
// eval set was configured.
func logProgress(iter int, window *metrics.Window, params *nn.Params, cfg RunConfig) {
	snap := window.Snapshot()

	if cfg.EvalX == nil || cfg.EvalY == nil {
		log.Printf("iter=%d cost=%.6f samples_per_sec=%.0f compute_ms=%.2f",
			iter, snap.LastCost, snap.SamplesPerSec, snap.AvgComputeMS)
		return
	}

	acc, err := evalAccuracy(cfg.EvalX, cfg.EvalY, params)
	if err != nil {
		log.Printf("iter=%d cost=%.6f eval_error=%q", iter, snap.LastCost, err)
		return
	}
	log.Printf("iter=%d cost=%.6f eval_acc=%.4f samples_per_sec=%.0f",
		iter, snap.LastCost, acc, snap.SamplesPerSec)
}

func evalAccuracy(x, y *mat.Dense, params *nn.Params) (float64, error) {
	pred, err := nn.Predict(x, params)
	if err != nil {
		return 0, err
	}
	truth := matrix.ArgmaxRows(y)
	acc, err := metrics.Accuracy(pred, truth)
	if err != nil {
		return 0, err
	}
	return acc, nil
}

// Evaluate runs the trained parameters over a labelled split and returns the
// classification accuracy.
func Evaluate(x, y *mat.Dense, params *nn.Params) (float64, error) {
	if x == nil || y == nil {
		return 0, errors.New("trainer: evaluate needs both features and labels")
	}
	return evalAccuracy(x, y, params)
}
