// Package sentiment turns a free-text query into a sentiment verdict.
//
// An Analyzer fetches a bounded corpus of snippets from a CorpusFetcher,
// scores every snippet independently through a SnippetScorer and averages
// whatever scored successfully. A failed fetch fails the query; a failed
// snippet is counted and dropped.
package sentiment
