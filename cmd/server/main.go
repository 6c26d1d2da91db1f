package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spacesedan/sentiresponder/config"
	"github.com/spacesedan/sentiresponder/internal/artifacts"
	"github.com/spacesedan/sentiresponder/internal/clients"
	"github.com/spacesedan/sentiresponder/internal/inference"
	"github.com/spacesedan/sentiresponder/internal/logging"
	"github.com/spacesedan/sentiresponder/internal/metrics"
	"github.com/spacesedan/sentiresponder/internal/sentiment"
	"github.com/spacesedan/sentiresponder/internal/server"
	"github.com/spacesedan/sentiresponder/internal/tokenizer"
)

func main() {
	config.LoadEnv(config.AppEnv())

	cfg, err := config.Load()
	if err != nil {
		slog.Error("[Main] Invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logging.InitLogger(cfg.LogLevel)

	if err := run(cfg); err != nil {
		slog.Error("[Main] Exiting", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.UseS3Artifacts() && cfg.Scorer == config.ScorerModel {
		if err := fetchArtifacts(ctx, cfg); err != nil {
			return err
		}
	}

	scorer, cleanup, err := newScorer(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	responder := sentiment.NewResponder(newTranslator(cfg), scorer)
	srv := server.NewServer(cfg, responder, metrics.NewRegistry())

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		slog.Info("[Main] Shutdown signal received, cleaning up...")
	}

	return srv.Stop(context.Background())
}

func fetchArtifacts(ctx context.Context, cfg *config.Config) error {
	awsCfg, err := clients.GetAWSConfig(ctx, cfg.AWSRegion)
	if err != nil {
		return err
	}

	fetcher := artifacts.NewFetcher(clients.GetS3Client(awsCfg, cfg.AWSEndpoint), cfg.ArtifactBucket)
	err = fetcher.FetchAll(ctx, map[string]string{
		cfg.ModelKey:     cfg.ModelPath,
		cfg.TokenizerKey: cfg.TokenizerPath,
	})
	if err != nil {
		return fmt.Errorf("failed to fetch artifacts: %w", err)
	}
	return nil
}

// newScorer loads the artifacts for the configured scorer. The returned
// cleanup releases the model and the runtime.
func newScorer(cfg *config.Config) (sentiment.Scorer, func(), error) {
	if cfg.Scorer == config.ScorerVader {
		slog.Warn("[Main] Using VADER scorer, model artifacts are not loaded")
		return sentiment.NewVaderScorer(), func() {}, nil
	}

	tok, err := tokenizer.Load(cfg.TokenizerPath)
	if err != nil {
		return nil, nil, err
	}

	if err := inference.InitRuntime(cfg.ORTLibPath); err != nil {
		return nil, nil, err
	}

	model, err := inference.LoadONNXModel(cfg.ModelPath, tokenizer.MaxLen)
	if err != nil {
		inference.DestroyRuntime()
		return nil, nil, err
	}

	cleanup := func() {
		if err := model.Close(); err != nil {
			slog.Warn("[Main] Failed to close model", slog.String("error", err.Error()))
		}
		inference.DestroyRuntime()
	}
	return inference.NewSequenceScorer(tok, model), cleanup, nil
}

func newTranslator(cfg *config.Config) sentiment.Translator {
	if cfg.Translator == config.TranslatorOpenAI {
		return clients.NewOpenAITranslator(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel,
			cfg.SourceLang, cfg.TargetLang, cfg.TranslateTimeout)
	}
	return clients.NewGoogleTranslateClient(cfg.TranslateURL, cfg.SourceLang, cfg.TargetLang, cfg.TranslateTimeout)
}
