package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

const (
	SEARCH_SOURCE_PULLPUSH = "pullpush"
	SEARCH_SOURCE_REDDIT   = "reddit"

	SCORER_HUGGINGFACE = "huggingface"
	SCORER_VADER       = "vader"
)

type Config struct {
	AppEnv   string
	Port     string
	LogLevel string

	HuggingFaceAPIKey string
	InferenceURL      string
	Scorer            string

	SearchSource       string
	SearchURL          string
	RedditClientID     string
	RedditClientSecret string

	CorpusLimit     int
	ScorerWorkers   int
	ScorerRateLimit float64
	FetchTimeout    time.Duration
	ScoreTimeout    time.Duration
}

// Load reads the typed configuration from the environment. Malformed numbers
// and durations fall back to their defaults so a bad value never stops the
// service from starting.
func Load() *Config {
	env := AppEnv()

	// the inference service cold-starts slowly outside production
	scoreTimeout := 60 * time.Second
	if env == "production" {
		scoreTimeout = 10 * time.Second
	}

	return &Config{
		AppEnv:   env,
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		HuggingFaceAPIKey: os.Getenv("HUGGINGFACE_API_KEY"),
		InferenceURL:      os.Getenv("INFERENCE_URL"),
		Scorer:            getEnv("SCORER", SCORER_HUGGINGFACE),

		SearchSource:       getEnv("SEARCH_SOURCE", SEARCH_SOURCE_PULLPUSH),
		SearchURL:          os.Getenv("SEARCH_URL"),
		RedditClientID:     os.Getenv("REDDIT_CLIENT_ID"),
		RedditClientSecret: os.Getenv("REDDIT_CLIENT_SECRET"),

		CorpusLimit:     getInt("CORPUS_LIMIT", 25),
		ScorerWorkers:   getInt("SCORER_WORKERS", 4),
		ScorerRateLimit: getFloat("SCORER_RATE_LIMIT", 0),
		FetchTimeout:    getDuration("FETCH_TIMEOUT", 10*time.Second),
		ScoreTimeout:    getDuration("SCORE_TIMEOUT", scoreTimeout),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		slog.Warn("[Config] Invalid integer, using default",
			slog.String("key", key),
			slog.String("value", raw),
			slog.Int("default", fallback))
		return fallback
	}
	return v
}

func getFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		slog.Warn("[Config] Invalid number, using default",
			slog.String("key", key),
			slog.String("value", raw),
			slog.Float64("default", fallback))
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v <= 0 {
		slog.Warn("[Config] Invalid duration, using default",
			slog.String("key", key),
			slog.String("value", raw),
			slog.Duration("default", fallback))
		return fallback
	}
	return v
}
