package dataset

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Synthetic generates a deterministic, well-separated dataset: one random
// cluster center per class inside [0,1]^features, samples drawn around the
// centers with small noise and clipped back into [0,1].
//
// Used by the end-to-end tests and as demo data when no MNIST directory is
// configured. The same seed always yields the same dataset.
func Synthetic(n, features, classes int, seed int64) (*Split, error) {
	if n <= 0 || features <= 0 || classes <= 0 {
		return nil, fmt.Errorf("dataset: synthetic(%d, %d, %d): sizes must be positive", n, features, classes)
	}

	rng := rand.New(rand.NewSource(seed))

	centers := make([][]float64, classes)
	for c := range centers {
		centers[c] = make([]float64, features)
		for j := range centers[c] {
			centers[c][j] = rng.Float64()
		}
	}

	x := mat.NewDense(n, features, nil)
	labels := make([]int, n)
	for i := 0; i < n; i++ {
		class := i % classes
		labels[i] = class
		row := x.RawRowView(i)
		for j := range row {
			row[j] = clamp01(centers[class][j] + rng.NormFloat64()*0.05)
		}
	}

	y, err := OneHot(labels, classes)
	if err != nil {
		return nil, err
	}
	return &Split{X: x, Y: y, Labels: labels}, nil
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
