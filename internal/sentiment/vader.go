package sentiment

import (
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"

	"github.com/spacesedan/sentiquery/internal/clients"
	"github.com/spacesedan/sentiquery/internal/models"
)

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
	tagPattern  = regexp.MustCompile(`<[^>]*>`)
)

func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text
	return urlPattern.ReplaceAllString(input, "")
}

// ConvertMarkdownToText renders Reddit markdown and flattens it back to plain
// words, dropping links and whitespace runs.
func ConvertMarkdownToText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plainText := html.UnescapeString(tagPattern.ReplaceAllString(string(output), " "))

	return strings.Join(strings.Fields(RemoveLinks(plainText)), " ")
}

// VaderScorer scores snippets in-process with VADER instead of calling the
// inference service. The compound score is already signed, so it is used as is.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *VaderScorer) Score(ctx context.Context, snippet models.Snippet) (models.ScoredSnippet, error) {
	if err := ctx.Err(); err != nil {
		return models.ScoredSnippet{}, fmt.Errorf("%w: %w", clients.ErrScoringFailed, err)
	}

	plainText := ConvertMarkdownToText(snippet.Text)
	if plainText == "" {
		return models.ScoredSnippet{}, fmt.Errorf("%w: no text left after markdown cleanup", clients.ErrScoringFailed)
	}

	score := v.analyzer.PolarityScores(plainText).Compound
	return models.ScoredSnippet{
		Snippet: snippet,
		Label:   OverallLabel(score),
		Score:   score,
	}, nil
}
