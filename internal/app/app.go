package app

import (
	"context"
	"fmt"

	"github.com/spacesedan/sentiquery/config"
	"github.com/spacesedan/sentiquery/internal/clients"
	"github.com/spacesedan/sentiquery/internal/monitoring"
	"github.com/spacesedan/sentiquery/internal/sentiment"
)

type App struct {
	Analyzer *sentiment.Analyzer
	Health   monitoring.HealthChecker
}

// New builds the pipeline selected by cfg: a corpus source, a scorer and the
// analyzer that drives them.
func New(cfg *config.Config) (*App, error) {
	var fetcher sentiment.CorpusFetcher
	switch cfg.SearchSource {
	case config.SEARCH_SOURCE_PULLPUSH:
		fetcher = clients.NewPullPushClient(cfg.SearchURL, cfg.FetchTimeout)
	case config.SEARCH_SOURCE_REDDIT:
		if cfg.RedditClientID == "" || cfg.RedditClientSecret == "" {
			return nil, fmt.Errorf("SEARCH_SOURCE=%s requires REDDIT_CLIENT_ID and REDDIT_CLIENT_SECRET", cfg.SearchSource)
		}
		fetcher = clients.NewRedditClient(clients.RedditConfig{
			ClientID:     cfg.RedditClientID,
			ClientSecret: cfg.RedditClientSecret,
			APIURL:       cfg.SearchURL,
			Timeout:      cfg.FetchTimeout,
		})
	default:
		return nil, fmt.Errorf("unknown SEARCH_SOURCE %q", cfg.SearchSource)
	}

	var scorer sentiment.SnippetScorer
	var health monitoring.HealthChecker
	switch cfg.Scorer {
	case config.SCORER_HUGGINGFACE:
		hf := clients.NewHuggingFaceClient(cfg.InferenceURL, cfg.HuggingFaceAPIKey, cfg.ScoreTimeout,
			clients.WithRateLimit(cfg.ScorerRateLimit, cfg.ScorerWorkers))
		scorer, health = hf, hf
	case config.SCORER_VADER:
		scorer, health = sentiment.NewVaderScorer(), localHealth{}
	default:
		return nil, fmt.Errorf("unknown SCORER %q", cfg.Scorer)
	}

	analyzer := sentiment.NewAnalyzer(fetcher, scorer,
		sentiment.WithSourceName(cfg.SearchSource),
		sentiment.WithCorpusLimit(cfg.CorpusLimit),
		sentiment.WithWorkers(cfg.ScorerWorkers),
		sentiment.WithScoreTimeout(cfg.ScoreTimeout),
	)

	return &App{Analyzer: analyzer, Health: health}, nil
}

// localHealth is the health checker for in-process scoring.
type localHealth struct{}

func (localHealth) HealthCheck(context.Context) bool { return true }
