package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/sentiresponder/config"
	"github.com/spacesedan/sentiresponder/internal/models"
	"github.com/spacesedan/sentiresponder/internal/sentiment"
)

type stubTranslator struct {
	err error
}

func (s stubTranslator) Translate(_ context.Context, text string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "translated: " + text, nil
}

type stubScorer struct {
	score float64
}

func (s stubScorer) Score(context.Context, string) (float64, error) {
	return s.score, nil
}

type panicClassifier struct{}

func (panicClassifier) Classify(context.Context, string) (sentiment.Prediction, error) {
	panic("boom")
}

func testConfig() *config.Config {
	return &config.Config{
		AppEnv:           "test",
		Host:             "127.0.0.1",
		Port:             8080,
		CORSAllowOrigins: []string{"*"},
		Scorer:           config.ScorerModel,
		Translator:       config.TranslatorGoogle,
	}
}

func setupTestRouter(classifier Classifier) http.Handler {
	return NewServer(testConfig(), classifier, prometheus.NewRegistry()).Handler()
}

func newResponder(score float64, translateErr error) *sentiment.Responder {
	return sentiment.NewResponder(stubTranslator{err: translateErr}, stubScorer{score: score})
}

func postPredict(t *testing.T, h http.Handler, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/predict/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w, resp
}

func TestPredict_Success(t *testing.T) {
	tests := []struct {
		score float64
		want  string
		class sentiment.Sentiment
	}{
		{0.9, "Positivo", sentiment.Positive},
		{0.5, "Neutro", sentiment.Neutral},
		{0.1, "Negativo", sentiment.Negative},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			router := setupTestRouter(newResponder(tt.score, nil))

			body, err := json.Marshal(models.PredictRequest{Text: "Hoy es un día cualquiera"})
			require.NoError(t, err)

			w, resp := postPredict(t, router, string(body))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, resp["sentimiento"])
			assert.Equal(t, tt.score, resp["score"])
			assert.Contains(t, sentiment.DefaultReplies()[tt.class], resp["respuesta"])
			assert.NotContains(t, resp, "error")
		})
	}
}

func TestPredict_EmptyText(t *testing.T) {
	for name, body := range map[string]string{
		"empty string":  `{"text": ""}`,
		"whitespace":    `{"text": "   "}`,
		"missing field": `{}`,
		"null field":    `{"text": null}`,
		"empty body":    ``,
	} {
		t.Run(name, func(t *testing.T) {
			router := setupTestRouter(newResponder(0.9, nil))

			w, resp := postPredict(t, router, body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, map[string]any{"error": "Texto vacío o no enviado."}, resp)
		})
	}
}

func TestPredict_TranslationFailure(t *testing.T) {
	router := setupTestRouter(newResponder(0.9, errors.New("translation service unavailable")))

	w, resp := postPredict(t, router, `{"text": "hola"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, map[string]any{"error": "translation service unavailable"}, resp)
}

func TestPredict_MalformedBody(t *testing.T) {
	for name, body := range map[string]string{
		"invalid json":    `{"text": `,
		"not an object":   `["hola"]`,
		"text not string": `{"text": 42}`,
	} {
		t.Run(name, func(t *testing.T) {
			router := setupTestRouter(newResponder(0.9, nil))

			w, resp := postPredict(t, router, body)

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.NotEmpty(t, resp["error"])
			assert.NotContains(t, resp, "sentimiento")
		})
	}
}

func TestPredict_PanicIsRecovered(t *testing.T) {
	router := setupTestRouter(panicClassifier{})

	w, resp := postPredict(t, router, `{"text": "hola"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "boom", resp["error"])
}

func TestPredict_RequestID(t *testing.T) {
	router := setupTestRouter(newResponder(0.9, nil))

	req := httptest.NewRequest(http.MethodPost, "/predict/", strings.NewReader(`{"text": "hola"}`))
	req.Header.Set(requestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/predict/", strings.NewReader(`{"text": "hola"}`)))
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}

func TestHealth(t *testing.T) {
	router := setupTestRouter(newResponder(0.9, nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok", "scorer": "model", "translator": "google"}`, w.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	router := setupTestRouter(newResponder(0.9, nil))
	postPredict(t, router, `{"text": "hola"}`)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `sentiresponder_predict_predictions_total{sentiment="Positivo"} 1`)
}
