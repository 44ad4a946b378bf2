// Package dataset supplies feature/label matrix pairs to the trainer.
//
// It fulfils the loader contract the network expects: features normalized to
// [0,1] and flattened to one fixed-width row per sample, labels one-hot
// encoded with NumClasses columns and exactly one 1 per row.
package dataset

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// NumClasses is the number of digit classes.
const NumClasses = 10

// Split is one portion of a dataset (training or test).
type Split struct {
	X      *mat.Dense // n×features, values in [0,1]
	Y      *mat.Dense // n×NumClasses one-hot
	Labels []int      // class index per row, same order as X
}

// Len returns the number of samples in the split.
func (s *Split) Len() int {
	n, _ := s.X.Dims()
	return n
}

// OneHot encodes class indices as an n×classes matrix with a single 1 per
// row.
func OneHot(labels []int, classes int) (*mat.Dense, error) {
	if classes <= 0 {
		return nil, fmt.Errorf("dataset: one-hot with %d classes", classes)
	}
	out := mat.NewDense(len(labels), classes, nil)
	for i, c := range labels {
		if c < 0 || c >= classes {
			return nil, fmt.Errorf("dataset: label %d at row %d outside [0,%d)", c, i, classes)
		}
		out.Set(i, c, 1)
	}
	return out, nil
}
