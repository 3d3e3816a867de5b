// Package trainer drives mini-batch training and evaluation of an MLP.
package trainer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/born-ml/mlp/internal/config"
	"github.com/born-ml/mlp/internal/dataset"
	"github.com/born-ml/mlp/internal/metrics"
	"github.com/born-ml/mlp/internal/nn"
	"github.com/born-ml/mlp/internal/optim"
	"github.com/born-ml/mlp/internal/parallel"
)

// pcgStream is the second PCG word; only the seed varies between runs.
const pcgStream = 0x9e3779b97f4a7c15

// Options configures a Trainer.
type Options struct {
	BatchSize int
	LogEvery  int
	Src       rand.Source
	Logger    *log.Logger
	RunID     string
}

// Trainer runs epochs of mini-batch gradient descent on one network.
//
// It owns the two gradient buffers of a batch: scratch receives each
// sample's gradient and acc sums them until the optimizer step.
type Trainer struct {
	net     *nn.MLP
	opt     optim.Optimizer
	acc     *nn.Gradient
	scratch *nn.Gradient
	opts    Options
}

// New creates a Trainer for net.
func New(net *nn.MLP, opt optim.Optimizer, opts Options) *Trainer {
	if opts.LogEvery <= 0 {
		opts.LogEvery = 1
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	return &Trainer{
		net:     net,
		opt:     opt,
		acc:     nn.NewGradient(net),
		scratch: nn.NewGradient(net),
		opts:    opts,
	}
}

// TrainEpoch shuffles set, runs every full batch and returns the mean
// per-sample loss over the epoch. The loss of each sample is measured
// before the update of its batch.
func (t *Trainer) TrainEpoch(ctx context.Context, set *dataset.Set, epoch int) (float64, error) {
	if t.opts.BatchSize <= 0 {
		return 0, fmt.Errorf("trainer: %w: %d", optim.ErrInvalidBatch, t.opts.BatchSize)
	}
	batches := dataset.Batches(dataset.Shuffle(set.Len(), t.opts.Src), t.opts.BatchSize)
	if len(batches) == 0 {
		return 0, fmt.Errorf("trainer: %d samples do not fill one batch of %d", set.Len(), t.opts.BatchSize)
	}

	var window metrics.Window
	var total float64
	for b, batch := range batches {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		start := time.Now()
		var batchLoss float64
		for _, i := range batch {
			loss, err := optim.Accumulate(t.net, t.acc, t.scratch, set.Inputs[i], set.Labels[i])
			if err != nil {
				t.acc.Clear()
				return 0, fmt.Errorf("epoch %d batch %d sample %d: %w", epoch, b+1, i, err)
			}
			batchLoss += loss
		}
		if err := t.opt.Step(t.net, t.acc, len(batch)); err != nil {
			t.acc.Clear()
			return 0, fmt.Errorf("epoch %d batch %d: %w", epoch, b+1, err)
		}
		total += batchLoss
		window.Record(len(batch), time.Since(start), batchLoss/float64(len(batch)))

		if (b+1)%t.opts.LogEvery == 0 || b+1 == len(batches) {
			probe, err := t.probeLoss(set)
			if err != nil {
				return 0, err
			}
			snap := window.Snapshot()
			t.opts.Logger.Printf("run=%s epoch=%d batch=%d/%d loss=%.6f probe_loss=%.6f samples_per_sec=%.1f",
				t.opts.RunID,
				epoch,
				b+1,
				len(batches),
				snap.MeanLoss,
				probe,
				snap.SamplesPerSec,
			)
		}
	}

	return total / float64(len(batches)*t.opts.BatchSize), nil
}

// probeLoss evaluates the current network on the first sample of set.
func (t *Trainer) probeLoss(set *dataset.Set) (float64, error) {
	if err := t.net.Forward(set.Inputs[0]); err != nil {
		return 0, fmt.Errorf("probe: %w", err)
	}
	return t.net.Loss(set.Labels[0])
}

// Evaluate counts correct predictions of net over set.
//
// For a multi-unit output a prediction is correct when the label is 1 at the
// arg-max of the output. A single output unit is thresholded at 0.5.
func Evaluate(net *nn.MLP, set *dataset.Set) (metrics.Accuracy, error) {
	var acc metrics.Accuracy
	for i := range set.Inputs {
		pred, err := net.Predict(set.Inputs[i])
		if err != nil {
			return acc, fmt.Errorf("sample %d: %w", i, err)
		}
		label := set.Labels[i]
		if net.OutputSize() == 1 {
			acc.Add((net.Output().At(0) >= 0.5) == (label.At(0) >= 0.5))
			continue
		}
		acc.Add(label.At(pred) == 1)
	}
	return acc, nil
}

// Build creates the network described by cfg and applies Xavier
// initialization from src.
func Build(cfg *config.Config, src rand.Source) (*nn.MLP, error) {
	act, err := nn.ParseActivation(cfg.Activation)
	if err != nil {
		return nil, err
	}
	outAct := act
	if cfg.OutputActivation != "" {
		if outAct, err = nn.ParseActivation(cfg.OutputActivation); err != nil {
			return nil, err
		}
	}
	loss, err := nn.ParseLoss(cfg.Loss)
	if err != nil {
		return nil, err
	}

	n := len(cfg.Layers) - 1
	if n < 1 {
		return nil, nn.ErrEmptyNetwork
	}
	layers := make([]*nn.FCLayer, n)
	for i := range layers {
		a := act
		if i == n-1 {
			a = outAct
		}
		if layers[i], err = nn.NewFCLayer(cfg.Layers[i], cfg.Layers[i+1], nil, nil, a); err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
	}

	net, err := nn.NewMLP(layers, loss)
	if err != nil {
		return nil, err
	}
	net.InitXavier(src)
	return net, nil
}

// Report summarizes a completed run.
type Report struct {
	RunID      string
	Seed       uint64
	Epochs     int
	EpochLoss  []float64
	Accuracy   metrics.Accuracy
	Duration   time.Duration
	TrainCount int
	TestCount  int
}

// Run loads the data described by cfg, trains for cfg.Epochs and evaluates
// on the test split.
func Run(ctx context.Context, cfg *config.Config, logger *log.Logger) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	src := rand.NewPCG(seed, pcgStream)
	report := &Report{RunID: uuid.NewString(), Seed: seed, Epochs: cfg.Epochs}
	started := time.Now()

	train, test, err := loadSets(cfg)
	if err != nil {
		return nil, err
	}
	report.TrainCount, report.TestCount = train.Len(), test.Len()

	net, err := Build(cfg, src)
	if err != nil {
		return nil, fmt.Errorf("build network: %w", err)
	}
	if train.Inputs[0].Len() != net.InputSize() || train.Labels[0].Len() != net.OutputSize() {
		return nil, fmt.Errorf("network %v does not fit samples with %d inputs and %d outputs",
			cfg.Layers, train.Inputs[0].Len(), train.Labels[0].Len())
	}

	logger.Printf("run=%s seed=%d layers=%v activation=%s loss=%s batch_size=%d lr=%g train=%d test=%d",
		report.RunID, seed, cfg.Layers, cfg.Activation, cfg.Loss, cfg.BatchSize, cfg.LearningRate,
		train.Len(), test.Len())
	logger.Printf("run=%s %s", report.RunID, parallel.Describe())

	tr := New(net, optim.NewSGD(optim.SGDConfig{LR: cfg.LearningRate}), Options{
		BatchSize: cfg.BatchSize,
		LogEvery:  cfg.LogEvery,
		Src:       src,
		Logger:    logger,
		RunID:     report.RunID,
	})
	for epoch := 1; epoch <= cfg.Epochs; epoch++ {
		loss, err := tr.TrainEpoch(ctx, train, epoch)
		if err != nil {
			return nil, err
		}
		report.EpochLoss = append(report.EpochLoss, loss)
		logger.Printf("run=%s epoch=%d done mean_loss=%.6f", report.RunID, epoch, loss)
	}

	if report.Accuracy, err = Evaluate(net, test); err != nil {
		return nil, fmt.Errorf("evaluate: %w", err)
	}
	report.Duration = time.Since(started)
	logger.Printf("run=%s accuracy=%s duration=%s", report.RunID, report.Accuracy, report.Duration.Round(time.Millisecond))

	return report, nil
}

func loadSets(cfg *config.Config) (train, test *dataset.Set, err error) {
	if cfg.Synthetic {
		return dataset.XOR(), dataset.XOR(), nil
	}
	classes := cfg.Layers[len(cfg.Layers)-1]
	if train, err = dataset.Load(cfg.DataDir, true, classes, cfg.TrainLimit); err != nil {
		return nil, nil, fmt.Errorf("training set: %w", err)
	}
	if test, err = dataset.Load(cfg.DataDir, false, classes, cfg.TestLimit); err != nil {
		return nil, nil, fmt.Errorf("test set: %w", err)
	}
	if train.Len() == 0 || test.Len() == 0 {
		return nil, nil, errors.New("dataset is empty")
	}
	return train, test, nil
}
