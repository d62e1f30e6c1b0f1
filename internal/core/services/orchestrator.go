package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodudetheboy/Floowy-backend/internal/core/domain"
	"github.com/goodudetheboy/Floowy-backend/internal/core/ports"
)

// Collaborator names used in ExternalServiceError messages.
const (
	serviceCatalog   = "Spotify"
	serviceLLM       = "LLM"
	serviceGenerator = "Suno"
)

const defaultTracksPerGenre = 2

// Orchestrator coordinates the catalog, language model, song generator and
// lyrics collaborators. It holds no per-request state.
type Orchestrator struct {
	catalog   ports.CatalogProvider
	llm       ports.TextCompleter
	generator ports.SongGenerator
	lyrics    ports.LyricsProvider
	previews  ports.PreviewAnalyzer

	tracksPerGenre int
}

// Option customizes an Orchestrator.
type Option func(*Orchestrator)

// WithPreviewAnalyzer enables best-effort preview energy on analyzed tracks.
func WithPreviewAnalyzer(p ports.PreviewAnalyzer) Option {
	return func(o *Orchestrator) {
		o.previews = p
	}
}

// WithTracksPerGenre sets how many search results are analyzed per genre.
func WithTracksPerGenre(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.tracksPerGenre = n
		}
	}
}

// NewOrchestrator constructs an Orchestrator.
func NewOrchestrator(
	catalog ports.CatalogProvider,
	llm ports.TextCompleter,
	generator ports.SongGenerator,
	lyrics ports.LyricsProvider,
	opts ...Option,
) *Orchestrator {
	o := &Orchestrator{
		catalog:        catalog,
		llm:            llm,
		generator:      generator,
		lyrics:         lyrics,
		tracksPerGenre: defaultTracksPerGenre,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// external classifies a collaborator failure. Replies of the wrong shape and
// cancellations stay plain errors so they surface as unexpected faults.
func external(service string, err error) error {
	if errors.Is(err, domain.ErrMalformedResponse) ||
		errors.Is(err, context.Canceled) {
		return fmt.Errorf("service: %s: %w", service, err)
	}
	return &domain.ExternalServiceError{Service: service, Err: err}
}
