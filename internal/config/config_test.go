package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, ProviderOpenAI, cfg.LLMProvider)
	assert.Equal(t, 1, cfg.SpotifyMaxRetries)
	assert.Equal(t, 500*time.Millisecond, cfg.SpotifyRetryBackoff)
	assert.Equal(t, 5*time.Minute, cfg.SunoTimeout)
	assert.Equal(t, 2, cfg.TracksPerGenre)
	assert.True(t, cfg.PreviewEnergy)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("SPOTIFY_CLIENT_ID", "id-from-env")
	t.Setenv("SPOTIFY_MAX_RETRIES", "3")
	t.Setenv("LLM_PROVIDER", "Ollama")
	t.Setenv("SUNO_TIMEOUT", "90s")
	t.Setenv("PREVIEW_ENERGY", "false")

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "id-from-env", cfg.SpotifyClientID)
	assert.Equal(t, 3, cfg.SpotifyMaxRetries)
	assert.Equal(t, ProviderOllama, cfg.LLMProvider)
	assert.Equal(t, 90*time.Second, cfg.SunoTimeout)
	assert.False(t, cfg.PreviewEnergy)
}

func TestLoad_FileThenEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "floowy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http_addr: ":9090"
openai_model: gpt-4o
tracks_per_genre: 3
`), 0o600))
	t.Setenv("TRACKS_PER_GENRE", "4")

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "gpt-4o", cfg.OpenAIModel)
	assert.Equal(t, 4, cfg.TracksPerGenre, "environment wins over the file")
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		file    string
		wantErr string
	}{
		{
			name:    "unknown provider",
			env:     map[string]string{"LLM_PROVIDER": "bard"},
			wantErr: "llm_provider",
		},
		{
			name:    "zero retries",
			env:     map[string]string{"SPOTIFY_MAX_RETRIES": "0"},
			wantErr: "spotify_max_retries",
		},
		{
			name:    "tracks per genre out of range",
			env:     map[string]string{"TRACKS_PER_GENRE": "99"},
			wantErr: "tracks_per_genre",
		},
		{
			name:    "missing file",
			file:    "/does/not/exist.yaml",
			wantErr: "config: read",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(New(), tt.file)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_MissingCredentials(t *testing.T) {
	cfg := Config{LLMProvider: ProviderOpenAI}
	assert.Equal(t, []string{"SPOTIFY_CLIENT_ID", "SPOTIFY_CLIENT_SECRET", "OPENAI_API_KEY"}, cfg.MissingCredentials())

	cfg = Config{LLMProvider: ProviderOllama, SpotifyClientID: "id", SpotifyClientSecret: "secret"}
	assert.Empty(t, cfg.MissingCredentials())
}
