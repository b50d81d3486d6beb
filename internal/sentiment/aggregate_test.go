package sentiment

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/sentiquery/internal/models"
)

func scoredFrom(scores ...float64) []models.ScoredSnippet {
	out := make([]models.ScoredSnippet, 0, len(scores))
	for _, s := range scores {
		out = append(out, models.ScoredSnippet{Score: s})
	}
	return out
}

func TestAggregate_Empty(t *testing.T) {
	label, average := Aggregate(nil)

	assert.Equal(t, models.LABEL_POSITIVE, label)
	assert.Zero(t, average)

	label, average = Aggregate([]models.ScoredSnippet{})

	assert.Equal(t, models.LABEL_POSITIVE, label)
	assert.Zero(t, average)
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name        string
		scores      []float64
		wantLabel   models.Label
		wantAverage float64
	}{
		{"single positive", []float64{0.9}, models.LABEL_POSITIVE, 0.9},
		{"single negative", []float64{-0.4}, models.LABEL_NEGATIVE, -0.4},
		{"mixed negative", []float64{0.9, -0.8, -0.6}, models.LABEL_NEGATIVE, -0.1666667},
		{"tie is positive", []float64{0.5, -0.5}, models.LABEL_POSITIVE, 0},
		{"all zero", []float64{0, 0, 0}, models.LABEL_POSITIVE, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, average := Aggregate(scoredFrom(tt.scores...))

			assert.Equal(t, tt.wantLabel, label)
			assert.InDelta(t, tt.wantAverage, average, 1e-6)
		})
	}
}

func TestAggregate_MeanProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		n := 1 + rng.Intn(30)
		scores := make([]float64, n)
		var total float64
		for j := range scores {
			scores[j] = rng.Float64()*2 - 1
			total += scores[j]
		}
		mean := total / float64(n)

		label, average := Aggregate(scoredFrom(scores...))

		require.InDelta(t, mean, average, 1e-9)
		require.Equal(t, mean >= 0, label == models.LABEL_POSITIVE)
	}
}

func TestAggregate_OrderIndependent(t *testing.T) {
	forward := scoredFrom(0.9, -0.8, -0.6, 0.1)
	backward := scoredFrom(0.1, -0.6, -0.8, 0.9)

	labelA, avgA := Aggregate(forward)
	labelB, avgB := Aggregate(backward)

	assert.Equal(t, labelA, labelB)
	assert.InDelta(t, avgA, avgB, 1e-12)
}
