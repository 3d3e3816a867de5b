// Package dataset loads IDX image/label files into vectors and produces
// shuffled mini-batch orderings.
package dataset

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/born-ml/mlp/internal/linalg"
	"github.com/born-ml/mlp/internal/parallel"
)

// IDX magic numbers.
const (
	MagicImages = 0x00000803 // 2051
	MagicLabels = 0x00000801 // 2049
)

// ErrInvalidMagic is returned when an IDX header has the wrong magic number.
var ErrInvalidMagic = errors.New("invalid IDX magic number")

// ErrLabelRange is returned when a label does not fit the one-hot width.
var ErrLabelRange = errors.New("label out of range")

// ErrHeaderTooLarge is returned when an IDX header declares more data than
// the reader accepts.
var ErrHeaderTooLarge = errors.New("IDX header exceeds size limits")

// Header limits. MNIST needs 60000 images of 28×28.
const (
	MaxSamples     = 1 << 24
	MaxImagePixels = 1 << 20
	MaxImageBytes  = 1 << 31
)

// ReadImages reads an IDX image file.
//
// IDX file format for images:
//
//	magic number: 0x00000803 (2051)
//	number of images: 4 bytes
//	number of rows: 4 bytes
//	number of cols: 4 bytes
//	pixel data: unsigned bytes (0-255)
//
// Each image becomes a flattened vector of rows·cols pixels scaled to [0, 1].
// limit > 0 stops after that many images.
func ReadImages(r io.Reader, limit int) ([]*linalg.Vector, error) {
	br := bufio.NewReader(r)

	var header [4]uint32
	if err := binary.Read(br, binary.BigEndian, &header); err != nil {
		return nil, fmt.Errorf("read image header: %w", err)
	}
	if header[0] != MagicImages {
		return nil, fmt.Errorf("%w: got %#08x, want %#08x", ErrInvalidMagic, header[0], MagicImages)
	}

	count := clampCount(int(header[1]), limit)
	pixels := uint64(header[2]) * uint64(header[3])
	if count > MaxSamples || pixels > MaxImagePixels || uint64(count)*pixels > MaxImageBytes {
		return nil, fmt.Errorf("%w: %d images of %dx%d", ErrHeaderTooLarge, count, header[2], header[3])
	}
	size := int(pixels)

	// Grow with the data actually present instead of trusting the header.
	raw, err := io.ReadAll(io.LimitReader(br, int64(count*size)))
	if err != nil {
		return nil, fmt.Errorf("read images: %w", err)
	}
	if len(raw) < count*size {
		return nil, fmt.Errorf("read image %d: %w", len(raw)/size, io.ErrUnexpectedEOF)
	}

	images := make([]*linalg.Vector, count)
	parallel.For(count, func(i int) {
		v := linalg.Zeros(size)
		data := v.Data()
		for j, px := range raw[i*size : (i+1)*size] {
			data[j] = float64(px) / 255
		}
		images[i] = v
	}, parallel.DefaultConfig())

	return images, nil
}

// ReadLabels reads an IDX label file.
//
// IDX file format for labels:
//
//	magic number: 0x00000801 (2049)
//	number of labels: 4 bytes
//	label data: unsigned bytes
//
// Each label becomes a one-hot vector of length classes. limit > 0 stops
// after that many labels.
func ReadLabels(r io.Reader, classes, limit int) ([]*linalg.Vector, error) {
	br := bufio.NewReader(r)

	var header [2]uint32
	if err := binary.Read(br, binary.BigEndian, &header); err != nil {
		return nil, fmt.Errorf("read label header: %w", err)
	}
	if header[0] != MagicLabels {
		return nil, fmt.Errorf("%w: got %#08x, want %#08x", ErrInvalidMagic, header[0], MagicLabels)
	}

	count := clampCount(int(header[1]), limit)
	if count > MaxSamples {
		return nil, fmt.Errorf("%w: %d labels", ErrHeaderTooLarge, count)
	}
	raw, err := io.ReadAll(io.LimitReader(br, int64(count)))
	if err != nil {
		return nil, fmt.Errorf("read labels: %w", err)
	}
	if len(raw) < count {
		return nil, fmt.Errorf("read label %d: %w", len(raw), io.ErrUnexpectedEOF)
	}

	labels := make([]*linalg.Vector, len(raw))
	for i, c := range raw {
		v, err := OneHot(int(c), classes)
		if err != nil {
			return nil, fmt.Errorf("label %d: %w", i, err)
		}
		labels[i] = v
	}

	return labels, nil
}

// OneHot returns a vector of length classes with a 1 at class.
func OneHot(class, classes int) (*linalg.Vector, error) {
	if class < 0 || class >= classes {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrLabelRange, class, classes)
	}
	v := linalg.Zeros(classes)
	v.SetAt(class, 1)
	return v, nil
}

// LoadImages reads the IDX image file at path.
func LoadImages(path string, limit int) ([]*linalg.Vector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadImages(f, limit)
}

// LoadLabels reads the IDX label file at path.
func LoadLabels(path string, classes, limit int) ([]*linalg.Vector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLabels(f, classes, limit)
}

func clampCount(n, limit int) int {
	if limit > 0 && n > limit {
		return limit
	}
	return n
}
