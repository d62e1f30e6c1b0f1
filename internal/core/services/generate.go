package services

import (
	"context"
	"fmt"

	"github.com/goodudetheboy/Floowy-backend/internal/core/domain"
)

// GenerateSong asks the song generator for a vocal track matching the
// listener's mood, activity and personal details and returns the first two
// variants.
func (o *Orchestrator) GenerateSong(ctx context.Context, req domain.GenerationRequest) ([]domain.GeneratedClip, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	clips, err := o.generator.Generate(ctx, req.Prompt(), false)
	if err != nil {
		return nil, external(serviceGenerator, err)
	}

	if len(clips) < domain.GenerationVariants {
		return nil, fmt.Errorf("service: generator returned %d clips, want %d: %w", len(clips), domain.GenerationVariants, domain.ErrMalformedResponse)
	}

	return clips[:domain.GenerationVariants], nil
}
