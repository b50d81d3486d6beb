package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/sentiquery/internal/models"
)

func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	return cmd, buf
}

func TestPrintTable(t *testing.T) {
	cmd, buf := newTestCmd()

	printTable(cmd, &models.SentimentSummary{
		Query: "Inception",
		Snippets: []models.ScoredSnippet{
			{Snippet: models.Snippet{Text: "loved it"}, Label: models.LABEL_POSITIVE, Score: 0.9},
			{Snippet: models.Snippet{Text: strings.Repeat("long ", 30)}, Label: models.LABEL_NEGATIVE, Score: -0.8},
		},
		OverallLabel: models.LABEL_POSITIVE,
		AverageScore: 0.05,
	})

	out := buf.String()
	assert.Contains(t, out, "Inception: POSITIVE (0.0500)")
	assert.Contains(t, out, "[1] POSITIVE +0.900  loved it")
	assert.Contains(t, out, "...")
}

func TestPrintTable_Empty(t *testing.T) {
	cmd, buf := newTestCmd()

	printTable(cmd, &models.SentimentSummary{Query: "Nobody", OverallLabel: models.LABEL_POSITIVE})

	assert.Contains(t, buf.String(), "No comments could be scored.")
}

func TestPrintJSON(t *testing.T) {
	cmd, buf := newTestCmd()

	err := printJSON(cmd, &models.SentimentSummary{
		Query:        "Inception",
		Snippets:     []models.ScoredSnippet{},
		OverallLabel: models.LABEL_NEGATIVE,
		AverageScore: -0.1667,
	})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"overall_sentiment": "NEGATIVE"`)
	assert.Contains(t, buf.String(), `"comments": []`)
}

func TestRootCmd_RequiresSubject(t *testing.T) {
	err := rootCmd.Args(rootCmd, nil)

	require.Error(t, err)
}
