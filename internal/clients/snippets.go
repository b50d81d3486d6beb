package clients

import (
	"unicode/utf8"

	"github.com/spacesedan/sentiquery/internal/models"
)

// TruncateToMaxLength cuts text to at most maxLength characters. It counts
// runes, so multi-byte characters are never split.
func TruncateToMaxLength(text string, maxLength int) string {
	if utf8.RuneCountInString(text) <= maxLength {
		return text
	}

	count := 0
	for i := range text {
		if count == maxLength {
			return text[:i]
		}
		count++
	}
	return text
}

// snippetsFromBodies skips empty bodies, truncates the rest and keeps at most
// limit of them in their original order.
func snippetsFromBodies(bodies []string, limit int) []models.Snippet {
	snippets := make([]models.Snippet, 0, min(len(bodies), limit))
	for _, body := range bodies {
		if len(snippets) == limit {
			break
		}
		if body == "" {
			continue
		}
		snippets = append(snippets, models.Snippet{
			Text: TruncateToMaxLength(body, models.MAX_SNIPPET_LENGTH),
		})
	}
	return snippets
}
