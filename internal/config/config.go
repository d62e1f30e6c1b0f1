// Package config loads service settings from defaults, an optional YAML file
// and environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

// Config is the validated service configuration. Keys double as environment
// variable names in upper case (e.g. spotify_client_id -> SPOTIFY_CLIENT_ID).
type Config struct {
	HTTPAddr        string        `mapstructure:"http_addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	SpotifyClientID     string        `mapstructure:"spotify_client_id"`
	SpotifyClientSecret string        `mapstructure:"spotify_client_secret"`
	SpotifyBaseURL      string        `mapstructure:"spotify_base_url"`
	SpotifyTokenURL     string        `mapstructure:"spotify_token_url"`
	SpotifyTimeout      time.Duration `mapstructure:"spotify_timeout"`
	SpotifyMaxRetries   int           `mapstructure:"spotify_max_retries"`
	SpotifyRetryBackoff time.Duration `mapstructure:"spotify_retry_backoff"`

	LLMProvider       string        `mapstructure:"llm_provider"`
	LLMTimeout        time.Duration `mapstructure:"llm_timeout"`
	OpenAIAPIKey      string        `mapstructure:"openai_api_key"`
	OpenAIBaseURL     string        `mapstructure:"openai_base_url"`
	OpenAIModel       string        `mapstructure:"openai_model"`
	OpenAITemperature float64       `mapstructure:"openai_temperature"`
	OllamaHost        string        `mapstructure:"ollama_host"`
	OllamaModel       string        `mapstructure:"ollama_model"`

	SunoAPIURL  string        `mapstructure:"suno_api_url"`
	SunoAPIKey  string        `mapstructure:"suno_api_key"`
	SunoTimeout time.Duration `mapstructure:"suno_timeout"`

	LyricsAPIURL  string        `mapstructure:"lyrics_api_url"`
	LyricsTimeout time.Duration `mapstructure:"lyrics_timeout"`

	PreviewEnergy  bool          `mapstructure:"preview_energy"`
	PreviewTimeout time.Duration `mapstructure:"preview_timeout"`

	TracksPerGenre int `mapstructure:"tracks_per_genre"`
}

var defaults = map[string]any{
	"http_addr":        ":8080",
	"shutdown_timeout": "10s",

	"spotify_client_id":     "",
	"spotify_client_secret": "",
	"spotify_base_url":      "https://api.spotify.com/v1",
	"spotify_token_url":     "https://accounts.spotify.com/api/token",
	"spotify_timeout":       "15s",
	"spotify_max_retries":   1,
	"spotify_retry_backoff": "500ms",

	"llm_provider":       ProviderOpenAI,
	"llm_timeout":        "60s",
	"openai_api_key":     "",
	"openai_base_url":    "https://api.openai.com/v1",
	"openai_model":       "gpt-4o-mini",
	"openai_temperature": 0.2,
	"ollama_host":        "http://localhost:11434",
	"ollama_model":       "llama3.1:8b",

	"suno_api_url": "http://localhost:3000",
	"suno_api_key": "",
	"suno_timeout": "5m",

	"lyrics_api_url": "https://api.lyrics.ovh",
	"lyrics_timeout": "10s",

	"preview_energy":  true,
	"preview_timeout": "15s",

	"tracks_per_genre": 2,
}

// New returns a viper instance carrying the defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configFile when given, merges the environment over it and
// validates the result.
func Load(v *viper.Viper, configFile string) (Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	cfg.LLMProvider = strings.ToLower(strings.TrimSpace(cfg.LLMProvider))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks settings that have no usable fallback.
func (c Config) Validate() error {
	var errs []error
	if c.HTTPAddr == "" {
		errs = append(errs, errors.New("http_addr is empty"))
	}
	switch c.LLMProvider {
	case ProviderOpenAI, ProviderOllama:
	default:
		errs = append(errs, fmt.Errorf("llm_provider %q is not one of %s, %s", c.LLMProvider, ProviderOpenAI, ProviderOllama))
	}
	if c.SpotifyMaxRetries < 1 {
		errs = append(errs, fmt.Errorf("spotify_max_retries must be at least 1, got %d", c.SpotifyMaxRetries))
	}
	if c.TracksPerGenre < 1 || c.TracksPerGenre > 50 {
		errs = append(errs, fmt.Errorf("tracks_per_genre must be within [1,50], got %d", c.TracksPerGenre))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// MissingCredentials names the credentials the selected collaborators need
// but that are unset. Requests that reach those collaborators will fail.
func (c Config) MissingCredentials() []string {
	var missing []string
	if c.SpotifyClientID == "" {
		missing = append(missing, "SPOTIFY_CLIENT_ID")
	}
	if c.SpotifyClientSecret == "" {
		missing = append(missing, "SPOTIFY_CLIENT_SECRET")
	}
	if c.LLMProvider == ProviderOpenAI && c.OpenAIAPIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	return missing
}
