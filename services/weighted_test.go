package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickIndexBoundaries(t *testing.T) {
	weights := []float64{70, 30}

	tests := []struct {
		name string
		r    float64
		want int
	}{
		{"zero", 0, 0},
		{"inside first", 69.999, 0},
		{"exact boundary goes to next", 70, 1},
		{"inside second", 99.9, 1},
		{"float drift falls back to last", 100, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pickIndex(weights, tt.r))
		})
	}
}

func TestPickIndexSingleEntry(t *testing.T) {
	weights := []float64{5}
	assert.Equal(t, 0, pickIndex(weights, 0))
	assert.Equal(t, 0, pickIndex(weights, 4.999))
	assert.Equal(t, 0, pickIndex(weights, 5))
}

func TestDrawWeightedCoversAllEntries(t *testing.T) {
	seedRand(t, 42)

	entries := []WeightedEntry{
		{Reward: Reward{Kind: "usdt", Amount: 1}, Weight: 50},
		{Reward: Reward{Kind: "eggs", Count: 2}, Weight: 50},
	}

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		seen[drawWeighted(entries).Kind] = true
	}
	assert.True(t, seen["usdt"])
	assert.True(t, seen["eggs"])
}
