package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go-simpler.org/env"
)

const (
	ScorerModel = "model"
	ScorerVader = "vader"

	TranslatorGoogle = "google"
	TranslatorOpenAI = "openai"
)

type Config struct {
	AppEnv   string `env:"APP_ENV" default:"dev"`
	Host     string `env:"HOST" default:"0.0.0.0"`
	Port     int    `env:"PORT" default:"8080"`
	LogLevel string `env:"LOG_LEVEL" default:"info"`

	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" default:"*"`

	Scorer        string `env:"SCORER" default:"model"`
	ModelPath     string `env:"MODEL_PATH" default:"modelo_sentimiento.onnx"`
	TokenizerPath string `env:"TOKENIZER_PATH" default:"tokenizer.json"`
	ORTLibPath    string `env:"ONNXRUNTIME_LIB_PATH"`

	ArtifactBucket string `env:"ARTIFACT_BUCKET"`
	ModelKey       string `env:"ARTIFACT_MODEL_KEY" default:"modelo_sentimiento.onnx"`
	TokenizerKey   string `env:"ARTIFACT_TOKENIZER_KEY" default:"tokenizer.json"`
	AWSRegion      string `env:"AWS_REGION" default:"us-west-2"`
	AWSEndpoint    string `env:"AWS_ENDPOINT"`

	Translator       string        `env:"TRANSLATOR" default:"google"`
	SourceLang       string        `env:"SOURCE_LANG" default:"es"`
	TargetLang       string        `env:"TARGET_LANG" default:"en"`
	TranslateURL     string        `env:"TRANSLATE_URL" default:"https://translate.googleapis.com/translate_a/single"`
	TranslateTimeout time.Duration `env:"TRANSLATE_TIMEOUT" default:"10s"`

	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`
	OpenAIModel   string `env:"OPENAI_MODEL" default:"gpt-4o-mini"`
}

// Load reads the configuration from the environment. Call LoadEnv first
// to pull in the env file for the current APP_ENV.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Load(&cfg, &env.Options{SliceSep: ","}); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// UseS3Artifacts reports whether the artifacts are downloaded before loading.
func (c *Config) UseS3Artifacts() bool {
	return c.ArtifactBucket != ""
}

func validate(cfg *Config) error {
	cfg.Scorer = strings.ToLower(cfg.Scorer)
	cfg.Translator = strings.ToLower(cfg.Translator)

	switch cfg.Scorer {
	case ScorerModel:
		if cfg.ModelPath == "" || cfg.TokenizerPath == "" {
			return errors.New("MODEL_PATH and TOKENIZER_PATH are required when SCORER=model")
		}
	case ScorerVader:
	default:
		return fmt.Errorf("SCORER must be %q or %q, got %q", ScorerModel, ScorerVader, cfg.Scorer)
	}

	switch cfg.Translator {
	case TranslatorGoogle:
	case TranslatorOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return errors.New("OPENAI_API_KEY is required when TRANSLATOR=openai")
		}
	default:
		return fmt.Errorf("TRANSLATOR must be %q or %q, got %q", TranslatorGoogle, TranslatorOpenAI, cfg.Translator)
	}

	if cfg.SourceLang == "" || cfg.TargetLang == "" {
		return errors.New("SOURCE_LANG and TARGET_LANG are required")
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", cfg.Port)
	}

	return nil
}
