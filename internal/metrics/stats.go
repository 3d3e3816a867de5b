// Package metrics aggregates training loss and evaluation accuracy for logging.
package metrics

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Window accumulates per-batch measurements between log lines.
type Window struct {
	losses  []float64
	samples int
	compute time.Duration
}

// Record adds one batch's mean loss, size and compute time.
func (w *Window) Record(batchSize int, compute time.Duration, loss float64) {
	w.losses = append(w.losses, loss)
	w.samples += batchSize
	w.compute += compute
}

// Snapshot returns aggregated metrics and resets the window.
func (w *Window) Snapshot() Snapshot {
	snap := Snapshot{Batches: len(w.losses)}
	if len(w.losses) > 0 {
		snap.MeanLoss = stat.Mean(w.losses, nil)
		snap.LastLoss = w.losses[len(w.losses)-1]
	}
	if w.compute > 0 {
		snap.SamplesPerSec = float64(w.samples) / w.compute.Seconds()
	}

	w.losses = w.losses[:0]
	w.samples = 0
	w.compute = 0
	return snap
}

// Snapshot represents loggable metrics.
type Snapshot struct {
	Batches       int
	MeanLoss      float64
	LastLoss      float64
	SamplesPerSec float64
}

// Accuracy counts correct predictions.
type Accuracy struct {
	Correct int
	Total   int
}

// Add records one prediction.
func (a *Accuracy) Add(correct bool) {
	a.Total++
	if correct {
		a.Correct++
	}
}

// Percent returns the share of correct predictions in [0, 100].
func (a Accuracy) Percent() float64 {
	if a.Total == 0 {
		return 0
	}
	return float64(a.Correct) / float64(a.Total) * 100
}

// String formats the accuracy as "97.12% (9712 / 10000)".
func (a Accuracy) String() string {
	return fmt.Sprintf("%.2f%% (%d / %d)", a.Percent(), a.Correct, a.Total)
}
