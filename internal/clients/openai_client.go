package clients

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

var languageNames = map[string]string{
	"en": "English",
	"es": "Spanish",
}

// OpenAITranslator translates with a single chat completion.
type OpenAITranslator struct {
	Client     *openai.Client
	model      string
	sourceLang string
	targetLang string
}

// NewOpenAITranslator builds a translator. An empty baseURL uses the public
// OpenAI API.
func NewOpenAITranslator(apiKey, baseURL, model, sourceLang, targetLang string, timeout time.Duration) *OpenAITranslator {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	config.HTTPClient = &http.Client{Timeout: timeout}

	slog.Info("[OpenAIClient] OpenAI translator initialized",
		slog.String("model", model),
		slog.Duration("timeout", timeout))

	return &OpenAITranslator{
		Client:     openai.NewClientWithConfig(config),
		model:      model,
		sourceLang: sourceLang,
		targetLang: targetLang,
	}
}

func (o *OpenAITranslator) Translate(ctx context.Context, text string) (string, error) {
	if o.sourceLang == o.targetLang {
		return text, nil
	}
	if err := checkLength(text); err != nil {
		return "", err
	}

	start := time.Now()
	resp, err := o.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: 0,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: o.systemPrompt()},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		slog.Error("[OpenAIClient] Translation request failed",
			slog.String("error", err.Error()),
			slog.Duration("elapsed", time.Since(start)))
		return "", fmt.Errorf("translation request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("translation response has no choices")
	}

	slog.Debug("[OpenAIClient] Translation successful",
		slog.Duration("elapsed", time.Since(start)),
		slog.Int("total_tokens", resp.Usage.TotalTokens))
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (o *OpenAITranslator) systemPrompt() string {
	return fmt.Sprintf(
		"Translate the user's message from %s to %s. Reply with the translation only, without quotes or notes.",
		languageName(o.sourceLang), languageName(o.targetLang))
}

func languageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return code
}
