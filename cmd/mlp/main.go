// Package main provides the mlp training CLI.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/born-ml/mlp/internal/config"
	"github.com/born-ml/mlp/internal/trainer"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("mlp %s\n", version)
		return
	}

	cfgPath := flag.String("config", "", "Path to YAML config (defaults to the built-in MNIST run)")
	dataDir := flag.String("data", "", "Override directory holding the IDX files")
	epochs := flag.Int("epochs", 0, "Number of epochs")
	batchSize := flag.Int("batch", 0, "Mini-batch size")
	lr := flag.Float64("lr", 0, "Learning rate")
	seed := flag.Uint64("seed", 0, "PRNG seed (0 picks one at random)")
	synthetic := flag.Bool("synthetic", false, "Train on the built-in XOR problem instead of IDX files")
	trainLimit := flag.Int("train-limit", 0, "Use at most N training samples")
	testLimit := flag.Int("test-limit", 0, "Use at most N test samples")
	logEvery := flag.Int("log-every", 0, "Log every N batches")

	flag.Parse()

	cfg, err := loadConfig(*cfgPath, *synthetic)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	cfg.ApplyOverrides(config.Overrides{
		DataDir:      *dataDir,
		Synthetic:    *synthetic,
		BatchSize:    *batchSize,
		LearningRate: *lr,
		Epochs:       *epochs,
		Seed:         *seed,
		LogEvery:     *logEvery,
		TrainLimit:   *trainLimit,
		TestLimit:    *testLimit,
	})

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := trainer.Run(ctx, cfg, log.Default())
	if errors.Is(err, context.Canceled) {
		log.Printf("training interrupted")
		os.Exit(130)
	}
	if err != nil {
		log.Fatalf("training failed: %v", err)
	}

	fmt.Printf("run:      %s\n", report.RunID)
	fmt.Printf("seed:     %d\n", report.Seed)
	fmt.Printf("samples:  train=%d test=%d\n", report.TrainCount, report.TestCount)
	if n := len(report.EpochLoss); n > 0 {
		fmt.Printf("loss:     %.6f (epoch %d)\n", report.EpochLoss[n-1], n)
	}
	fmt.Printf("accuracy: %s\n", report.Accuracy)
	fmt.Printf("duration: %s\n", report.Duration)
}

// loadConfig reads path when set. Without a file, -synthetic selects the XOR
// preset and anything else the MNIST defaults.
func loadConfig(path string, synthetic bool) (*config.Config, error) {
	switch {
	case path != "":
		return config.Load(path)
	case synthetic:
		return config.SyntheticDefault(), nil
	default:
		return config.Default(), nil
	}
}
