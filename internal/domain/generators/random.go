package generators

import (
	"math"
	"math/rand"
)

// NewRand devolve a fonte pseudoaleatória usada pelos geradores. A mesma seed reproduz a mesma saída.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// uniform amostra em [min, max).
func uniform(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

// intBetween amostra um inteiro em [min, max] (inclusivo).
func intBetween(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}

func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

func clamp(v, min, max float64) float64 {
	return math.Max(min, math.Min(max, v))
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}

func ptr[T any](v T) *T {
	return &v
}
