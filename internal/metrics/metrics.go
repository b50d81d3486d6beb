package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	STATUS_SUCCESS = "success"
	STATUS_FAILED  = "failed"
)

var (
	// CorpusFetchTotal tracks search requests by source and outcome
	// (success, unavailable, malformed).
	CorpusFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentiquery_corpus_fetch_total",
			Help: "Total corpus fetches by source and outcome",
		},
		[]string{"source", "outcome"},
	)

	// CorpusSize tracks how many snippets each fetch produced.
	CorpusSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sentiquery_corpus_size",
			Help:    "Number of snippets returned per corpus fetch",
			Buckets: []float64{0, 1, 5, 10, 15, 20, 25, 50, 100},
		},
	)

	// SnippetScoringTotal tracks per-snippet classification attempts. Failed
	// snippets are dropped from the summary, so this is the only place they
	// show up.
	SnippetScoringTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentiquery_snippet_scoring_total",
			Help: "Total snippet scoring attempts by status",
		},
		[]string{"status"},
	)

	// SnippetScoringDuration tracks the latency of one classification call.
	SnippetScoringDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sentiquery_snippet_scoring_duration_seconds",
			Help:    "Snippet scoring duration in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	// AnalyzeDuration tracks end-to-end AnalyzeQuery latency by outcome.
	AnalyzeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sentiquery_analyze_duration_seconds",
			Help:    "AnalyzeQuery duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status"},
	)

	// ScorerHealthy is 1 while the inference service answers health probes.
	ScorerHealthy = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sentiquery_scorer_healthy",
			Help: "Whether the inference service passed its last health probe (1) or not (0)",
		},
	)
)
