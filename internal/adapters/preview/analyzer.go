// Package preview measures the loudness energy of MP3 preview clips.
package preview

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/hajimehoshi/go-mp3"

	"github.com/goodudetheboy/Floowy-backend/internal/core/ports"
)

const (
	defaultTimeout = 15 * time.Second
	// 30s previews are well under this.
	maxPreviewBytes = 8 << 20
)

var errNoSamples = errors.New("preview contains no samples")

// Analyzer downloads a preview clip and returns its RMS energy in [0,1].
type Analyzer struct {
	httpClient *http.Client
}

var _ ports.PreviewAnalyzer = (*Analyzer)(nil)

func NewAnalyzer(timeout time.Duration) *Analyzer {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Analyzer{httpClient: &http.Client{Timeout: timeout}}
}

func (a *Analyzer) Energy(ctx context.Context, previewURL string) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, previewURL, nil)
	if err != nil {
		return 0, fmt.Errorf("preview: build request: %w", err)
	}

	// #nosec G107 -- URL is a preview URL from the catalog API response
	resp, err := a.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("preview: fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("preview: fetch status %d", resp.StatusCode)
	}

	decoder, err := mp3.NewDecoder(io.LimitReader(resp.Body, maxPreviewBytes))
	if err != nil {
		return 0, fmt.Errorf("preview: decode failed: %w", err)
	}

	energy, err := rmsEnergy(decoder)
	if err != nil {
		return 0, fmt.Errorf("preview: %w", err)
	}
	return energy, nil
}

// rmsEnergy reads 16-bit little-endian PCM and returns its RMS normalized to
// [0,1].
func rmsEnergy(pcm io.Reader) (float64, error) {
	buf := make([]byte, 4096)
	var sumSquares float64
	var count float64
	var carry []byte

	for {
		n, err := pcm.Read(buf)
		if n > 0 {
			chunk := append(carry, buf[:n]...)
			i := 0
			for ; i+1 < len(chunk); i += 2 {
				sample := int16(chunk[i]) | int16(chunk[i+1])<<8
				val := float64(sample)
				sumSquares += val * val
				count++
			}
			carry = append(carry[:0], chunk[i:]...)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return 0, fmt.Errorf("read failed: %w", err)
		}
	}

	if count == 0 {
		return 0, errNoSamples
	}

	rms := math.Sqrt(sumSquares / count)
	return math.Min(1, math.Max(0, rms/32768.0)), nil
}
