package inference

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spacesedan/sentiresponder/internal/tokenizer"
)

// Model scores a padded token sequence.
type Model interface {
	Predict(ctx context.Context, sequence []int) (float64, error)
}

// Encoder converts text into word indices.
type Encoder interface {
	TextToSequence(text string) []int
}

// SequenceScorer tokenizes text, fixes its length at tokenizer.MaxLen and
// scores it with the model.
type SequenceScorer struct {
	encoder Encoder
	model   Model
}

func NewSequenceScorer(encoder Encoder, model Model) *SequenceScorer {
	return &SequenceScorer{encoder: encoder, model: model}
}

func (s *SequenceScorer) Score(ctx context.Context, text string) (float64, error) {
	seq := s.encoder.TextToSequence(text)
	padded := tokenizer.PadSequence(seq, tokenizer.MaxLen, tokenizer.PadValue)

	score, err := s.model.Predict(ctx, padded)
	if err != nil {
		return 0, fmt.Errorf("model prediction failed: %w", err)
	}

	slog.Debug("[SequenceScorer] Text scored",
		slog.Int("tokens", len(seq)),
		slog.Float64("score", score))
	return score, nil
}
