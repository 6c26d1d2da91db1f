package clients

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

const GOOGLE_TRANSLATE_ENDPOINT = "https://translate.googleapis.com/translate_a/single"

// GoogleTranslateClient calls the public Google Translate endpoint for a
// fixed language pair.
type GoogleTranslateClient struct {
	Client     *http.Client
	endpoint   string
	sourceLang string
	targetLang string
}

func NewGoogleTranslateClient(endpoint, sourceLang, targetLang string, timeout time.Duration) *GoogleTranslateClient {
	if endpoint == "" {
		endpoint = GOOGLE_TRANSLATE_ENDPOINT
	}
	slog.Info("[GoogleTranslateClient] Initializing Client",
		slog.String("source", sourceLang),
		slog.String("target", targetLang),
		slog.Duration("timeout", timeout))

	return &GoogleTranslateClient{
		Client:     &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		sourceLang: sourceLang,
		targetLang: targetLang,
	}
}

func (g *GoogleTranslateClient) Translate(ctx context.Context, text string) (string, error) {
	if g.sourceLang == g.targetLang {
		return text, nil
	}
	if err := checkLength(text); err != nil {
		return "", err
	}

	start := time.Now()
	body, err := g.get(ctx, text)
	if err != nil {
		slog.Error("[GoogleTranslateClient] Translation request failed",
			slog.String("error", err.Error()),
			slog.Duration("elapsed", time.Since(start)))
		return "", err
	}

	translated, err := parseTranslation(body)
	if err != nil {
		slog.Error("[GoogleTranslateClient] Failed to parse response",
			slog.String("error", err.Error()),
			getPreview(body))
		return "", err
	}

	slog.Debug("[GoogleTranslateClient] Translation successful",
		slog.Duration("elapsed", time.Since(start)))
	return translated, nil
}

func (g *GoogleTranslateClient) get(ctx context.Context, text string) ([]byte, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", g.sourceLang)
	params.Set("tl", g.targetLang)
	params.Set("dt", "t")
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("translation request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		slog.Warn("[GoogleTranslateClient] Unexpected status",
			slog.Int("status", resp.StatusCode),
			getPreview(body))
		return nil, fmt.Errorf("translation service returned status code %d", resp.StatusCode)
	}

	return body, nil
}

// parseTranslation joins the translated segments of a response shaped like
// [[["Hello","Hola",...],["world","mundo",...]],null,"es",...].
func parseTranslation(body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("failed to unmarshal translation response")
	}

	segments := gjson.GetBytes(body, "0")
	if !segments.IsArray() {
		return "", fmt.Errorf("unexpected translation response shape")
	}

	var b strings.Builder
	segments.ForEach(func(_, segment gjson.Result) bool {
		b.WriteString(segment.Get("0").String())
		return true
	})

	return b.String(), nil
}

func checkLength(text string) error {
	if n := utf8.RuneCountInString(text); n > MAX_TRANSLATE_CHARS {
		return fmt.Errorf("text must be at most %d characters to translate, got %d", MAX_TRANSLATE_CHARS, n)
	}
	return nil
}

func getPreview(respBody []byte) slog.Attr {
	raw := string(respBody)
	if len(raw) > 50 {
		raw = raw[:50]
	}
	return slog.String("raw_response", raw)
}
