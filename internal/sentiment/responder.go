package sentiment

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"
)

const outOfRangeReply = "Error: Clase fuera de rango."

// Translator moves text into the language the scorer was trained on.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// Scorer maps translated text to a score in [0, 1].
type Scorer interface {
	Score(ctx context.Context, text string) (float64, error)
}

type Prediction struct {
	Sentiment Sentiment
	Reply     string
	Score     float64
}

// Responder runs the classify pipeline. It holds no per-request state and
// is safe for concurrent use as long as its collaborators are.
type Responder struct {
	translator Translator
	scorer     Scorer
	replies    ReplyTable
	picker     Picker
}

type Option func(*Responder)

func WithReplies(replies ReplyTable) Option {
	return func(r *Responder) { r.replies = replies }
}

func WithPicker(p Picker) Option {
	return func(r *Responder) { r.picker = p }
}

func NewResponder(translator Translator, scorer Scorer, opts ...Option) *Responder {
	r := &Responder{
		translator: translator,
		scorer:     scorer,
		replies:    DefaultReplies(),
		picker:     RandomPicker{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Classify translates, scores and buckets text, then picks a reply for the
// resulting class. Every returned error is an *Error.
func (r *Responder) Classify(ctx context.Context, text string) (Prediction, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Prediction{}, badRequest(EmptyTextMessage)
	}

	start := time.Now()
	translated, err := r.translator.Translate(ctx, text)
	if err != nil {
		slog.Error("[Responder] Translation failed",
			slog.String("error", err.Error()),
			slog.Duration("elapsed", time.Since(start)))
		return Prediction{}, Internal(err)
	}
	slog.Debug("[Responder] Text translated",
		slog.String("translated", translated),
		slog.Duration("elapsed", time.Since(start)))

	score, err := r.scorer.Score(ctx, translated)
	if err != nil {
		slog.Error("[Responder] Scoring failed",
			slog.String("error", err.Error()))
		return Prediction{}, Internal(err)
	}
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return Prediction{}, Internalf("model returned a non-finite score: %v", score)
	}

	class := FromScore(score)
	return Prediction{
		Sentiment: class,
		Reply:     r.reply(class),
		Score:     score,
	}, nil
}

func (r *Responder) reply(class Sentiment) string {
	candidates := r.replies[class]
	if len(candidates) == 0 {
		return outOfRangeReply
	}
	return r.picker.Pick(candidates)
}
