package sentiment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/spacesedan/sentiquery/internal/clients"
	"github.com/spacesedan/sentiquery/internal/metrics"
	"github.com/spacesedan/sentiquery/internal/models"
)

const (
	DEFAULT_CORPUS_LIMIT   = 25
	DEFAULT_SCORER_WORKERS = 4
	DEFAULT_SCORE_TIMEOUT  = 10 * time.Second
)

var ErrEmptySubject = errors.New("query subject is empty")

type CorpusFetcher interface {
	FetchCorpus(ctx context.Context, query string, limit int) ([]models.Snippet, error)
}

type SnippetScorer interface {
	Score(ctx context.Context, snippet models.Snippet) (models.ScoredSnippet, error)
}

type Analyzer struct {
	fetcher      CorpusFetcher
	scorer       SnippetScorer
	source       string
	corpusLimit  int
	workers      int
	scoreTimeout time.Duration
}

type Option func(*Analyzer)

func WithCorpusLimit(limit int) Option {
	return func(a *Analyzer) {
		if limit > 0 {
			a.corpusLimit = limit
		}
	}
}

func WithWorkers(workers int) Option {
	return func(a *Analyzer) {
		if workers > 0 {
			a.workers = workers
		}
	}
}

// WithScoreTimeout bounds each individual scoring call.
func WithScoreTimeout(timeout time.Duration) Option {
	return func(a *Analyzer) {
		if timeout > 0 {
			a.scoreTimeout = timeout
		}
	}
}

// WithSourceName labels fetch metrics with the corpus source.
func WithSourceName(source string) Option {
	return func(a *Analyzer) {
		a.source = source
	}
}

func NewAnalyzer(fetcher CorpusFetcher, scorer SnippetScorer, opts ...Option) *Analyzer {
	a := &Analyzer{
		fetcher:      fetcher,
		scorer:       scorer,
		source:       "search",
		corpusLimit:  DEFAULT_CORPUS_LIMIT,
		workers:      DEFAULT_SCORER_WORKERS,
		scoreTimeout: DEFAULT_SCORE_TIMEOUT,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// BuildQuery joins subject and qualifier into one search string.
func BuildQuery(subject, qualifier string) string {
	return strings.TrimSpace(strings.TrimSpace(subject) + " " + strings.TrimSpace(qualifier))
}

// AnalyzeQuery fetches a corpus for subject and qualifier, scores every
// snippet and aggregates the ones that scored. Fetch errors are returned as
// is; scoring errors never are.
func (a *Analyzer) AnalyzeQuery(ctx context.Context, subject, qualifier string) (*models.SentimentSummary, error) {
	start := time.Now()
	if strings.TrimSpace(subject) == "" {
		return nil, ErrEmptySubject
	}
	query := BuildQuery(subject, qualifier)

	snippets, err := a.fetcher.FetchCorpus(ctx, query, a.corpusLimit)
	if err != nil {
		metrics.CorpusFetchTotal.WithLabelValues(a.source, fetchOutcome(err)).Inc()
		metrics.AnalyzeDuration.WithLabelValues(metrics.STATUS_FAILED).Observe(time.Since(start).Seconds())
		slog.Error("[Analyzer] Failed to fetch corpus",
			slog.String("query", query),
			slog.String("error", err.Error()))
		return nil, err
	}
	metrics.CorpusFetchTotal.WithLabelValues(a.source, "success").Inc()
	metrics.CorpusSize.Observe(float64(len(snippets)))

	scored := a.scoreAll(ctx, snippets)
	if err := ctx.Err(); err != nil {
		metrics.AnalyzeDuration.WithLabelValues(metrics.STATUS_FAILED).Observe(time.Since(start).Seconds())
		return nil, fmt.Errorf("analyze %q: %w", query, err)
	}

	overall, average := Aggregate(scored)
	summary := &models.SentimentSummary{
		Query:        subject,
		Snippets:     scored,
		OverallLabel: overall,
		AverageScore: average,
	}

	metrics.AnalyzeDuration.WithLabelValues(metrics.STATUS_SUCCESS).Observe(time.Since(start).Seconds())
	slog.Info("[Analyzer] Query analyzed",
		slog.String("query", query),
		slog.Int("corpus", len(snippets)),
		slog.Int("scored", len(scored)),
		slog.String("overall", string(overall)),
		slog.Float64("average", average),
		slog.Duration("elapsed", time.Since(start)))

	return summary, nil
}

type scoreResult struct {
	scored models.ScoredSnippet
	ok     bool
}

// scoreAll scores snippets on a bounded pool. Each worker owns one slot of
// results, so the merge needs no locking and keeps fetch order.
func (a *Analyzer) scoreAll(ctx context.Context, snippets []models.Snippet) []models.ScoredSnippet {
	results := make([]scoreResult, len(snippets))

	var g errgroup.Group
	g.SetLimit(a.workers)
	for i, snippet := range snippets {
		g.Go(func() error {
			results[i] = a.scoreOne(ctx, i, snippet)
			return nil
		})
	}
	_ = g.Wait()

	scored := make([]models.ScoredSnippet, 0, len(snippets))
	for _, r := range results {
		if r.ok {
			scored = append(scored, r.scored)
		}
	}
	return scored
}

func (a *Analyzer) scoreOne(ctx context.Context, index int, snippet models.Snippet) (result scoreResult) {
	ctx, cancel := context.WithTimeout(ctx, a.scoreTimeout)
	defer cancel()
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			metrics.SnippetScoringTotal.WithLabelValues(metrics.STATUS_FAILED).Inc()
			slog.Error("[Analyzer] Scorer panicked, dropping snippet",
				slog.Int("index", index),
				slog.Any("panic", r))
			result = scoreResult{}
		}
	}()

	scored, err := a.scorer.Score(ctx, snippet)
	metrics.SnippetScoringDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SnippetScoringTotal.WithLabelValues(metrics.STATUS_FAILED).Inc()
		slog.Warn("[Analyzer] Dropping snippet that failed to score",
			slog.Int("index", index),
			slog.String("error", err.Error()))
		return scoreResult{}
	}

	metrics.SnippetScoringTotal.WithLabelValues(metrics.STATUS_SUCCESS).Inc()
	return scoreResult{scored: scored, ok: true}
}

func fetchOutcome(err error) string {
	switch {
	case errors.Is(err, clients.ErrMalformedResponse):
		return "malformed"
	case errors.Is(err, clients.ErrSourceUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}
