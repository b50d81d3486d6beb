package models

// Label is the polarity class reported by the classification service.
type Label string

const (
	LABEL_POSITIVE Label = "POSITIVE"
	LABEL_NEGATIVE Label = "NEGATIVE"

	// MAX_SNIPPET_LENGTH bounds every snippet, in characters, before scoring.
	MAX_SNIPPET_LENGTH = 512
)

// Snippet is one length-bounded piece of text pulled from the search service.
type Snippet struct {
	Text string `json:"text"`
}

// ScoredSnippet is a snippet together with its classification. Score carries
// the confidence magnitude signed by label: negative for NEGATIVE, positive
// for anything else.
type ScoredSnippet struct {
	Snippet
	Label Label   `json:"label"`
	Score float64 `json:"score"`
}

// SentimentSummary is the aggregate answer to one query. Snippets keeps the
// order the search service returned them in, minus the ones that failed to
// score.
type SentimentSummary struct {
	Query        string          `json:"query_title"`
	Snippets     []ScoredSnippet `json:"comments"`
	OverallLabel Label           `json:"overall_sentiment"`
	AverageScore float64         `json:"average_score"`
}
