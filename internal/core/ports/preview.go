package ports

import "context"

// PreviewAnalyzer measures the loudness energy of a preview clip in [0,1].
type PreviewAnalyzer interface {
	Energy(ctx context.Context, previewURL string) (float64, error)
}
