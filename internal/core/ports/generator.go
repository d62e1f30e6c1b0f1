package ports

import (
	"context"

	"github.com/goodudetheboy/Floowy-backend/internal/core/domain"
)

type SongGenerator interface {
	Generate(ctx context.Context, prompt string, instrumental bool) ([]domain.GeneratedClip, error)
}
