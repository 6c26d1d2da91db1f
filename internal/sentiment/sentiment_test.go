package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromScore(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  Sentiment
	}{
		{"zero", 0, Negative},
		{"low", 0.1, Negative},
		{"just below lower bound", 0.3999, Negative},
		{"lower bound", 0.4, Neutral},
		{"middle", 0.5, Neutral},
		{"upper bound", 0.6, Neutral},
		{"just above upper bound", 0.6001, Positive},
		{"high", 0.9, Positive},
		{"one", 1, Positive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromScore(tt.score))
		})
	}
}

func TestSentimentString(t *testing.T) {
	assert.Equal(t, "Positivo", Positive.String())
	assert.Equal(t, "Neutro", Neutral.String())
	assert.Equal(t, "Negativo", Negative.String())
	assert.Equal(t, "Desconocido", Sentiment(7).String())
}
