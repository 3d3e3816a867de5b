package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRanges(t *testing.T) {
	assert.Nil(t, Ranges(0, DefaultConfig()))
	assert.Equal(t, [][2]int{{0, 10}}, Ranges(10, Config{Workers: 4, MinChunk: 16}))
	assert.Equal(t, [][2]int{{0, 3}, {3, 6}, {6, 9}, {9, 10}}, Ranges(10, Config{Workers: 4}))
	assert.Equal(t, [][2]int{{0, 5}}, Ranges(5, Config{}))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.GreaterOrEqual(t, cfg.Workers, 1)
	assert.Contains(t, Describe(), "cores=")
}

func TestFor_VisitsEveryIndexOnce(t *testing.T) {
	for _, cfg := range []Config{
		DefaultConfig(),
		{Workers: 3, MinChunk: 1},
		{Workers: 1},
	} {
		const n = 1000
		var hits [n]int32
		For(n, func(i int) {
			atomic.AddInt32(&hits[i], 1)
		}, cfg)
		for i := range hits {
			assert.Equal(t, int32(1), hits[i], "index %d with %+v", i, cfg)
		}
	}
}

func BenchmarkFor(b *testing.B) {
	const n = 60000 * 784
	data := make([]float64, n)
	scale := func(i int) { data[i] = float64(i&0xff) / 255 }

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			For(n, scale, DefaultConfig())
		}
	})
	b.Run("sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			For(n, scale, Config{Workers: 1})
		}
	})
}
