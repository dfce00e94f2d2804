package services

// WeightedEntry pairs a reward outcome with its weight. The same draw routine
// backs the daily reward, the spin wheel and the mystery box so the boundary
// behavior is implemented (and tested) exactly once.
type WeightedEntry struct {
	Reward Reward
	Weight float64
}

// pickIndex selects the first index whose cumulative weight strictly exceeds
// r, for r in [0, total). A draw landing exactly on a boundary belongs to the
// next entry; the last entry absorbs any float drift.
func pickIndex(weights []float64, r float64) int {
	cum := 0.0
	for i, w := range weights {
		cum += w
		if r < cum {
			return i
		}
	}
	return len(weights) - 1
}

func drawIndex(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	return pickIndex(weights, drawRand.Float64()*total)
}

func drawWeighted(entries []WeightedEntry) Reward {
	weights := make([]float64, len(entries))
	for i, e := range entries {
		weights[i] = e.Weight
	}
	return entries[drawIndex(weights)].Reward
}
