package trainer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/digitnet-ml/digitnet/internal/dataset"
	"github.com/digitnet-ml/digitnet/internal/matrix"
	"github.com/digitnet-ml/digitnet/internal/nn"
)

func TestTrain_ZeroIterationsReturnsInitialParams(t *testing.T) {
	split, err := dataset.Synthetic(6, 3, 2, 21)
	require.NoError(t, err)

	got, err := Train(split.X, split.Y, RunConfig{
		HiddenSize:   4,
		LearningRate: 0.5,
		Iterations:   0,
		Seed:         21,
	})
	require.NoError(t, err)

	want, err := nn.NewParams(3, 4, 2, 21)
	require.NoError(t, err)

	assert.True(t, mat.Equal(want.W1, got.W1), "zero iterations must leave W1 untouched")
	assert.True(t, mat.Equal(want.B1, got.B1))
	assert.True(t, mat.Equal(want.W2, got.W2))
	assert.True(t, mat.Equal(want.B2, got.B2))
}

func TestTrain_CostDecreasesEndToEnd(t *testing.T) {
	split, err := dataset.Synthetic(10, 5, 2, 7)
	require.NoError(t, err)

	cfg := RunConfig{
		HiddenSize:   4,
		LearningRate: 0.5,
		Iterations:   50,
		Seed:         7,
	}

	initial, err := nn.NewParams(5, cfg.HiddenSize, 2, cfg.Seed)
	require.NoError(t, err)
	costBefore := costOf(t, split.X, split.Y, initial)

	trained, err := Train(split.X, split.Y, cfg)
	require.NoError(t, err)
	costAfter := costOf(t, split.X, split.Y, trained)

	assert.Less(t, costAfter, costBefore,
		"50 iterations on a well-conditioned synthetic problem must lower the cost")
}

func TestTrain_RunsExactIterationCount(t *testing.T) {
	// Two runs with the same seed but different iteration counts must
	// diverge: the loop has no convergence-based early exit.
	split, err := dataset.Synthetic(8, 3, 2, 5)
	require.NoError(t, err)

	cfg := RunConfig{HiddenSize: 3, LearningRate: 0.5, Seed: 5}

	cfg.Iterations = 10
	ten, err := Train(split.X, split.Y, cfg)
	require.NoError(t, err)

	cfg.Iterations = 20
	twenty, err := Train(split.X, split.Y, cfg)
	require.NoError(t, err)

	assert.False(t, mat.Equal(ten.W1, twenty.W1))
}

func TestTrain_InvalidLearningRate(t *testing.T) {
	split, err := dataset.Synthetic(4, 3, 2, 1)
	require.NoError(t, err)

	_, err = Train(split.X, split.Y, RunConfig{HiddenSize: 2, LearningRate: 0, Iterations: 1})
	assert.Error(t, err)

	_, err = Train(split.X, split.Y, RunConfig{HiddenSize: 2, LearningRate: -0.1, Iterations: 1})
	assert.Error(t, err)
}

func TestTrain_NegativeIterations(t *testing.T) {
	split, err := dataset.Synthetic(4, 3, 2, 1)
	require.NoError(t, err)

	_, err = Train(split.X, split.Y, RunConfig{HiddenSize: 2, LearningRate: 0.1, Iterations: -1})
	assert.Error(t, err)
}

func TestTrain_RowCountMismatch(t *testing.T) {
	x := mat.NewDense(4, 3, nil)
	y := mat.NewDense(5, 2, nil)

	_, err := Train(x, y, RunConfig{HiddenSize: 2, LearningRate: 0.1, Iterations: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, matrix.ErrShapeMismatch)
}

func TestTrain_InvalidHiddenSize(t *testing.T) {
	split, err := dataset.Synthetic(4, 3, 2, 1)
	require.NoError(t, err)

	_, err = Train(split.X, split.Y, RunConfig{HiddenSize: 0, LearningRate: 0.1, Iterations: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, nn.ErrInvalidDimension)
}

func TestEvaluate_TrainedBeatsChance(t *testing.T) {
	split, err := dataset.Synthetic(40, 5, 2, 13)
	require.NoError(t, err)

	trained, err := Train(split.X, split.Y, RunConfig{
		HiddenSize:   6,
		LearningRate: 0.5,
		Iterations:   300,
		Seed:         13,
	})
	require.NoError(t, err)

	acc, err := Evaluate(split.X, split.Y, trained)
	require.NoError(t, err)
	assert.Greater(t, acc, 0.5, "training accuracy on separable clusters should beat chance")
}

func costOf(t *testing.T, x, y *mat.Dense, p *nn.Params) float64 {
	t.Helper()
	acts, err := nn.Forward(x, p)
	require.NoError(t, err)
	cost, err := nn.Cost(acts.A2, y)
	require.NoError(t, err)
	return cost
}
