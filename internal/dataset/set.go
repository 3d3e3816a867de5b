package dataset

import (
	"fmt"
	"path/filepath"

	"github.com/born-ml/mlp/internal/linalg"
)

// Standard MNIST file names.
const (
	TrainImagesFile = "train-images-idx3-ubyte"
	TrainLabelsFile = "train-labels-idx1-ubyte"
	TestImagesFile  = "t10k-images-idx3-ubyte"
	TestLabelsFile  = "t10k-labels-idx1-ubyte"
)

// Set is a list of input vectors paired with one-hot label vectors.
type Set struct {
	Inputs []*linalg.Vector
	Labels []*linalg.Vector
}

// Len returns the number of samples.
func (s *Set) Len() int {
	return len(s.Inputs)
}

// Load reads the MNIST training or test split from dir.
//
// Parameters:
//   - dir: Directory containing the four standard IDX files
//   - train: Load the training split if true, the test split otherwise
//   - classes: One-hot label width
//   - limit: Maximum number of samples (0 = all)
func Load(dir string, train bool, classes, limit int) (*Set, error) {
	imageFile, labelFile := TestImagesFile, TestLabelsFile
	if train {
		imageFile, labelFile = TrainImagesFile, TrainLabelsFile
	}

	images, err := LoadImages(filepath.Join(dir, imageFile), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load images: %w", err)
	}
	labels, err := LoadLabels(filepath.Join(dir, labelFile), classes, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load labels: %w", err)
	}
	if len(images) != len(labels) {
		return nil, fmt.Errorf("image count (%d) != label count (%d)", len(images), len(labels))
	}

	return &Set{Inputs: images, Labels: labels}, nil
}

// XOR returns the four-sample XOR problem with a single output unit.
func XOR() *Set {
	in := [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	out := []float64{0, 1, 1, 0}
	s := &Set{}
	for i := range in {
		s.Inputs = append(s.Inputs, linalg.FromSlice(in[i]))
		s.Labels = append(s.Labels, linalg.FromSlice([]float64{out[i]}))
	}
	return s
}
