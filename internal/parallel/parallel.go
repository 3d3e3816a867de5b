// Package parallel splits index ranges across goroutines.
package parallel

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/klauspost/cpuid/v2"
)

// Config controls how work is split.
type Config struct {
	Workers  int // Goroutines to use; <= 1 runs inline.
	MinChunk int // Smallest range handed to one goroutine.
}

// DefaultConfig uses one worker per physical core, falling back to the
// logical CPU count when the core count is unknown.
func DefaultConfig() Config {
	workers := cpuid.CPU.PhysicalCores
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return Config{
		Workers:  workers,
		MinChunk: 256,
	}
}

// Describe summarizes the host CPU for run logs.
func Describe() string {
	return fmt.Sprintf("cpu=%q cores=%d threads=%d avx2=%t",
		cpuid.CPU.BrandName,
		cpuid.CPU.PhysicalCores,
		cpuid.CPU.LogicalCores,
		cpuid.CPU.Supports(cpuid.AVX2),
	)
}

// Ranges splits [0, n) into at most cfg.Workers contiguous [start, end)
// ranges of at least cfg.MinChunk items each (the last may be shorter).
func Ranges(n int, cfg Config) [][2]int {
	if n <= 0 {
		return nil
	}
	workers := max(cfg.Workers, 1)
	chunk := max((n+workers-1)/workers, cfg.MinChunk, 1)
	out := make([][2]int, 0, (n+chunk-1)/chunk)
	for start := 0; start < n; start += chunk {
		out = append(out, [2]int{start, min(start+chunk, n)})
	}
	return out
}

// For calls f(i) for every i in [0, n). Calls for distinct i may run
// concurrently, so f must only touch state owned by index i.
func For(n int, f func(i int), cfg Config) {
	ranges := Ranges(n, cfg)
	if len(ranges) <= 1 {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	for _, r := range ranges {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				f(i)
			}
		}(r[0], r[1])
	}
	wg.Wait()
}
