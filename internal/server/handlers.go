package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spacesedan/sentiresponder/internal/metrics"
	"github.com/spacesedan/sentiresponder/internal/models"
	"github.com/spacesedan/sentiresponder/internal/sentiment"
)

// Classifier is the core classify operation.
type Classifier interface {
	Classify(ctx context.Context, text string) (sentiment.Prediction, error)
}

type healthInfo struct {
	Scorer     string
	Translator string
}

type Handler struct {
	classifier Classifier
	metrics    *metrics.PredictionMetrics
	health     healthInfo
}

// predictBody keeps text raw so a missing or null field can be told apart
// from one of the wrong type.
type predictBody struct {
	Text json.RawMessage `json:"text"`
}

// Predict handles POST /predict/
func (h *Handler) Predict(c *gin.Context) {
	text, err := readText(c)
	if err != nil {
		h.respondError(c, sentiment.Internal(err))
		return
	}

	prediction, err := h.classifier.Classify(c.Request.Context(), text)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.metrics.ObservePrediction(prediction.Sentiment.String(), prediction.Score)
	c.JSON(http.StatusOK, models.PredictResponse{
		Sentimiento: prediction.Sentiment.String(),
		Respuesta:   prediction.Reply,
		Score:       prediction.Score,
	})
}

// Health handles GET /health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:     "ok",
		Scorer:     h.health.Scorer,
		Translator: h.health.Translator,
	})
}

// readText returns the text field, or "" when the body or field is absent.
func readText(c *gin.Context) (string, error) {
	var body predictBody
	if err := c.ShouldBindJSON(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return "", nil
		}
		return "", err
	}

	if len(body.Text) == 0 || string(body.Text) == "null" {
		return "", nil
	}

	var text string
	if err := json.Unmarshal(body.Text, &text); err != nil {
		return "", errors.New("text must be a string")
	}
	return text, nil
}

func (h *Handler) respondError(c *gin.Context, err error) {
	var classifyErr *sentiment.Error
	if !errors.As(err, &classifyErr) {
		classifyErr = sentiment.Internal(err)
	}

	status := statusFor(classifyErr.Kind)
	h.metrics.ObserveError(string(classifyErr.Kind))
	if status >= http.StatusInternalServerError {
		slog.Error("[Handler] Prediction failed",
			slog.String("error", classifyErr.Message),
			slog.String("request_id", c.GetString(requestIDKey)))
	}

	c.JSON(status, models.ErrorResponse{Error: classifyErr.Message})
}

func statusFor(kind sentiment.Kind) int {
	switch kind {
	case sentiment.KindBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
