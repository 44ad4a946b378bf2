// Package metrics provides evaluation and training-progress accounting.
package metrics

import (
	"fmt"
	"time"
)

// Accuracy returns the fraction of positions where pred and truth agree,
// a value in [0, 1].
func Accuracy(pred, truth []int) (float64, error) {
	if len(pred) != len(truth) {
		return 0, fmt.Errorf("metrics: %d predictions vs %d labels", len(pred), len(truth))
	}
	if len(pred) == 0 {
		return 0, fmt.Errorf("metrics: empty label sequences")
	}

	var hits int
	for i := range pred {
		if pred[i] == truth[i] {
			hits++
		}
	}
	return float64(hits) / float64(len(pred)), nil
}

// Window accumulates per-iteration stats between log lines.
type Window struct {
	samples  int
	compute  time.Duration
	steps    int
	lastCost float64
}

// Record adds one training iteration to the window.
func (w *Window) Record(batchSize int, computeTime time.Duration, cost float64) {
	w.samples += batchSize
	w.compute += computeTime
	w.steps++
	w.lastCost = cost
}

// Snapshot returns aggregated metrics and resets the window.
func (w *Window) Snapshot() Snapshot {
	snap := Snapshot{LastCost: w.lastCost}
	if w.compute > 0 {
		snap.SamplesPerSec = float64(w.samples) / w.compute.Seconds()
	}
	if w.steps > 0 {
		snap.AvgComputeMS = (w.compute.Seconds() * 1000) / float64(w.steps)
	}

	w.samples = 0
	w.compute = 0
	w.steps = 0
	return snap
}

// Snapshot represents loggable training metrics.
type Snapshot struct {
	SamplesPerSec float64
	AvgComputeMS  float64
	LastCost      float64
}
