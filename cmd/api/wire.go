package main

import (
	"context"
	"net/http"

	"github.com/goodudetheboy/Floowy-backend/internal/adapters/lyrics"
	"github.com/goodudetheboy/Floowy-backend/internal/adapters/ollama"
	"github.com/goodudetheboy/Floowy-backend/internal/adapters/openai"
	"github.com/goodudetheboy/Floowy-backend/internal/adapters/preview"
	"github.com/goodudetheboy/Floowy-backend/internal/adapters/rest"
	"github.com/goodudetheboy/Floowy-backend/internal/adapters/spotify"
	"github.com/goodudetheboy/Floowy-backend/internal/adapters/suno"
	"github.com/goodudetheboy/Floowy-backend/internal/config"
	"github.com/goodudetheboy/Floowy-backend/internal/core/ports"
	"github.com/goodudetheboy/Floowy-backend/internal/core/services"
)

// buildHandler injects the configured adapters into the core service and
// wraps it in the HTTP adapter.
func buildHandler(ctx context.Context, cfg config.Config) http.Handler {
	catalog := spotify.NewClient(ctx, spotify.Config{
		ClientID:     cfg.SpotifyClientID,
		ClientSecret: cfg.SpotifyClientSecret,
		BaseURL:      cfg.SpotifyBaseURL,
		TokenURL:     cfg.SpotifyTokenURL,
		Timeout:      cfg.SpotifyTimeout,
		MaxRetries:   cfg.SpotifyMaxRetries,
		RetryBackoff: cfg.SpotifyRetryBackoff,
	})

	generator := suno.NewClient(suno.Config{
		BaseURL: cfg.SunoAPIURL,
		APIKey:  cfg.SunoAPIKey,
		Timeout: cfg.SunoTimeout,
	})

	opts := []services.Option{services.WithTracksPerGenre(cfg.TracksPerGenre)}
	if cfg.PreviewEnergy {
		opts = append(opts, services.WithPreviewAnalyzer(preview.NewAnalyzer(cfg.PreviewTimeout)))
	}

	svc := services.NewOrchestrator(
		catalog,
		newTextCompleter(cfg),
		generator,
		lyrics.NewClient(cfg.LyricsAPIURL, cfg.LyricsTimeout),
		opts...,
	)

	return rest.NewHandler(svc)
}

func newTextCompleter(cfg config.Config) ports.TextCompleter {
	if cfg.LLMProvider == config.ProviderOllama {
		return ollama.NewClient(cfg.OllamaHost, cfg.OllamaModel, cfg.LLMTimeout)
	}
	return openai.NewClient(openai.Config{
		APIKey:      cfg.OpenAIAPIKey,
		BaseURL:     cfg.OpenAIBaseURL,
		Model:       cfg.OpenAIModel,
		Temperature: cfg.OpenAITemperature,
		Timeout:     cfg.LLMTimeout,
	})
}
