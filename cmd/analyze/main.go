package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spacesedan/sentiquery/config"
	"github.com/spacesedan/sentiquery/internal/app"
	"github.com/spacesedan/sentiquery/internal/logging"
	"github.com/spacesedan/sentiquery/internal/models"
)

var (
	outputJSON bool
	scorerName string
	sourceName string
)

var rootCmd = &cobra.Command{
	Use:   "analyze <subject> [qualifier]",
	Short: "Score public sentiment about a subject",
	Long: `Searches for comments about the subject, scores every comment with the
configured classifier and prints the overall verdict and average score.`,
	Args:          cobra.RangeArgs(1, 2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runAnalyze,
}

func init() {
	rootCmd.Flags().BoolVar(&outputJSON, "json", false, "output the summary as JSON")
	rootCmd.Flags().StringVar(&scorerName, "scorer", "", "override SCORER (huggingface or vader)")
	rootCmd.Flags().StringVar(&sourceName, "source", "", "override SEARCH_SOURCE (pullpush or reddit)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	config.LoadEnv(config.AppEnv())
	cfg := config.Load()
	logging.InitLogger(cfg.LogLevel)

	if scorerName != "" {
		cfg.Scorer = scorerName
	}
	if sourceName != "" {
		cfg.SearchSource = sourceName
	}

	pipeline, err := app.New(cfg)
	if err != nil {
		return err
	}

	qualifier := ""
	if len(args) == 2 {
		qualifier = args[1]
	}

	summary, err := pipeline.Analyzer.AnalyzeQuery(context.Background(), args[0], qualifier)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if outputJSON {
		return printJSON(cmd, summary)
	}
	printTable(cmd, summary)
	return nil
}

func printJSON(cmd *cobra.Command, summary *models.SentimentSummary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func printTable(cmd *cobra.Command, summary *models.SentimentSummary) {
	cmd.Printf("%s: %s (%.4f)\n", summary.Query, summary.OverallLabel, summary.AverageScore)
	if len(summary.Snippets) == 0 {
		cmd.Println("No comments could be scored.")
		return
	}

	cmd.Println()
	for i, s := range summary.Snippets {
		text := s.Text
		if len(text) > 80 {
			text = text[:77] + "..."
		}
		cmd.Printf("  [%d] %-8s %+.3f  %s\n", i+1, s.Label, s.Score, text)
	}
}
