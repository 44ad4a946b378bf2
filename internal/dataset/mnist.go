package dataset

import (
	"fmt"

	"github.com/petar/GoMNIST"
	"gonum.org/v1/gonum/mat"
)

// LoadMNIST reads the official gzipped IDX files from dir and returns the
// training and test splits with pixels normalized to [0,1] and labels
// one-hot encoded.
//
// Expected files (as distributed at yann.lecun.com/exdb/mnist):
//
//	train-images-idx3-ubyte.gz  train-labels-idx1-ubyte.gz
//	t10k-images-idx3-ubyte.gz   t10k-labels-idx1-ubyte.gz
func LoadMNIST(dir string) (train, test *Split, err error) {
	trainSet, testSet, err := GoMNIST.Load(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("dataset: load mnist from %s: %w", dir, err)
	}

	train, err = FromSet(trainSet)
	if err != nil {
		return nil, nil, fmt.Errorf("dataset: training set: %w", err)
	}
	test, err = FromSet(testSet)
	if err != nil {
		return nil, nil, fmt.Errorf("dataset: test set: %w", err)
	}
	return train, test, nil
}

// FromSet converts a GoMNIST set into a Split: each image becomes one
// flattened row with pixel intensities scaled from 0..255 to [0,1].
func FromSet(s *GoMNIST.Set) (*Split, error) {
	n := len(s.Images)
	if n == 0 {
		return nil, fmt.Errorf("dataset: empty image set")
	}
	if n != len(s.Labels) {
		return nil, fmt.Errorf("dataset: %d images vs %d labels", n, len(s.Labels))
	}

	features := s.NRow * s.NCol
	x := mat.NewDense(n, features, nil)
	labels := make([]int, n)

	for i, img := range s.Images {
		if len(img) != features {
			return nil, fmt.Errorf("dataset: image %d has %d pixels, want %d", i, len(img), features)
		}
		row := x.RawRowView(i)
		for j, px := range img {
			row[j] = float64(px) / 255.0
		}
		labels[i] = int(s.Labels[i])
	}

	y, err := OneHot(labels, NumClasses)
	if err != nil {
		return nil, err
	}
	return &Split{X: x, Y: y, Labels: labels}, nil
}
