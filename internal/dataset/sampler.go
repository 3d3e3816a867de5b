package dataset

import "math/rand/v2"

// Shuffle returns a random permutation of [0, n) using Fisher-Yates.
// A nil src uses the global math/rand/v2 source.
func Shuffle(n int, src rand.Source) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	swap := func(i, j int) { order[i], order[j] = order[j], order[i] }
	if src == nil {
		rand.Shuffle(n, swap)
	} else {
		rand.New(src).Shuffle(n, swap)
	}
	return order
}

// Batches splits order into consecutive batches of batchSize indices.
// A trailing partial batch is dropped.
func Batches(order []int, batchSize int) [][]int {
	if batchSize <= 0 {
		return nil
	}
	batches := make([][]int, 0, len(order)/batchSize)
	for start := 0; start+batchSize <= len(order); start += batchSize {
		batches = append(batches, order[start:start+batchSize])
	}
	return batches
}
