package lyrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goodudetheboy/Floowy-backend/internal/core/domain"
	"github.com/goodudetheboy/Floowy-backend/internal/core/ports"
)

func TestClient_Lyrics(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		responseBody string
		want         string
		wantErrIs    error
		wantErr      bool
	}{
		{
			name:         "found",
			status:       http.StatusOK,
			responseBody: `{"lyrics":"Line one\r\nLine two\r\n"}`,
			want:         "Line one\nLine two",
		},
		{
			name:         "attribution line dropped",
			status:       http.StatusOK,
			responseBody: `{"lyrics":"Paroles de la chanson Hello par Adele\r\nHello, it's me"}`,
			want:         "Hello, it's me",
		},
		{
			name:         "not found",
			status:       http.StatusNotFound,
			responseBody: `{"error":"No lyrics found"}`,
			wantErrIs:    ports.ErrLyricsNotFound,
			wantErr:      true,
		},
		{
			name:         "blank lyrics",
			status:       http.StatusOK,
			responseBody: `{"lyrics":"  "}`,
			wantErrIs:    ports.ErrLyricsNotFound,
			wantErr:      true,
		},
		{
			name:         "server error",
			status:       http.StatusServiceUnavailable,
			responseBody: `oops`,
			wantErr:      true,
		},
		{
			name:         "malformed body",
			status:       http.StatusOK,
			responseBody: `{"lyrics":`,
			wantErrIs:    domain.ErrMalformedResponse,
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.EscapedPath()
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.responseBody))
			}))
			defer srv.Close()

			got, err := NewClient(srv.URL, 0).Lyrics(context.Background(), "Simon & Garfunkel", "The Sound of Silence")

			assert.Equal(t, "/v1/Simon%20&%20Garfunkel/The%20Sound%20of%20Silence", gotPath)
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantErrIs != nil {
					assert.ErrorIs(t, err, tt.wantErrIs)
				} else {
					assert.NotErrorIs(t, err, ports.ErrLyricsNotFound)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_Lyrics_BlankInputSkipsRequest(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, 0).Lyrics(context.Background(), " ", "Title")
	assert.ErrorIs(t, err, ports.ErrLyricsNotFound)
	assert.False(t, called)
}
