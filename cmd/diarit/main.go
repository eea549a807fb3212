// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/poiesic/diarit"
	"github.com/poiesic/diarit/ai"
	"github.com/poiesic/diarit/ai/openai"
	"github.com/poiesic/diarit/core"
	"github.com/poiesic/diarit/ingestion"
	"github.com/poiesic/diarit/reembed"
	"github.com/poiesic/diarit/storage/badger"
	"github.com/urfave/cli/v2"
)

func main() {
	dbFlag := &cli.StringFlag{
		Name:     "db",
		Aliases:  []string{"d"},
		Usage:    "Path to BadgerDB database directory",
		Required: true,
	}
	userFlag := &cli.StringFlag{
		Name:    "user",
		Aliases: []string{"u"},
		Usage:   "User ID owning the diary context",
		Value:   "demo-user",
	}

	app := &cli.App{
		Name:  "diarit",
		Usage: "Relevance engine for personal diary context",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add a diary entry to a user's context",
				ArgsUsage: "<entry text>",
				Action:    addCommand,
				Flags: []cli.Flag{
					dbFlag,
					userFlag,
					&cli.TimestampFlag{
						Name:   "date",
						Usage:  "Entry date (defaults to now)",
						Layout: "2006-01-02",
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Rank a user's context against a query",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					dbFlag,
					userFlag,
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of results",
						Value: 5,
					},
				},
			},
			{
				Name:      "enhance",
				Usage:     "Build a context-enriched prompt for a user message",
				ArgsUsage: "<message>",
				Action:    enhanceCommand,
				Flags:     []cli.Flag{dbFlag, userFlag},
			},
			{
				Name:   "trends",
				Usage:  "Report a user's long-term themes and emotional pattern",
				Action: trendsCommand,
				Flags:  []cli.Flag{dbFlag, userFlag},
			},
			{
				Name:   "reembed",
				Usage:  "Reembed all context records with new embeddings",
				Action: reembedCommand,
				Flags: []cli.Flag{
					dbFlag,
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:     "embedding-model",
						Usage:    "Embedding model name",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of records to process in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N records",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed operations",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func openJournal(c *cli.Context) (*diarit.Journal, error) {
	return diarit.NewJournal(c.String("db"))
}

func addCommand(c *cli.Context) error {
	entry := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if entry == "" {
		return fmt.Errorf("entry text is required")
	}

	journal, err := openJournal(c)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer journal.Close()

	pipeline, err := journal.NewIngestionPipeline()
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer pipeline.Release()

	opts := &ingestion.IngestOptions{}
	if date := c.Timestamp("date"); date != nil {
		opts.Date = *date
	}
	if err := pipeline.Ingest(context.Background(), c.String("user"), core.RecordTypeDiary, []string{entry}, opts); err != nil {
		return fmt.Errorf("failed to add entry: %w", err)
	}

	fmt.Println("entry added")
	return nil
}

func searchCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query is required")
	}

	journal, err := openJournal(c)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer journal.Close()

	ranker, err := journal.NewRanker()
	if err != nil {
		return fmt.Errorf("failed to create ranker: %w", err)
	}

	results, err := ranker.FindRelevant(context.Background(), query, c.String("user"), c.Int("limit"))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	for i, result := range results {
		record := result.Context
		fmt.Printf("%d. [%.3f] %s (%s)\n   %s\n",
			i+1, result.RelevanceScore, record.Date.Format("2006-01-02"),
			strings.Join(record.Emotions.DominantEmotions, ", "), record.Content)
	}
	return nil
}

func enhanceCommand(c *cli.Context) error {
	message := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if message == "" {
		return fmt.Errorf("message is required")
	}

	journal, err := openJournal(c)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer journal.Close()

	enhancer, err := journal.NewEnhancer()
	if err != nil {
		return fmt.Errorf("failed to create enhancer: %w", err)
	}

	enhanced, err := enhancer.Enhance(context.Background(), message, c.String("user"))
	if err != nil {
		return fmt.Errorf("enhancement failed: %w", err)
	}

	fmt.Println(enhanced)
	return nil
}

func trendsCommand(c *cli.Context) error {
	journal, err := openJournal(c)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer journal.Close()

	analyzer, err := journal.NewTrendAnalyzer()
	if err != nil {
		return fmt.Errorf("failed to create analyzer: %w", err)
	}

	report, err := analyzer.Analyze(context.Background(), c.String("user"))
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	fmt.Printf("Common themes:    %s\n", strings.Join(report.CommonThemes, ", "))
	fmt.Printf("Emotional pattern: %s\n", report.EmotionalPattern)
	for _, suggestion := range report.Suggestions {
		fmt.Printf("  - %s\n", suggestion)
	}
	return nil
}

func reembedCommand(c *cli.Context) error {
	ctx := context.Background()

	dbPath := c.String("db")
	repo, err := badger.NewRepository(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer repo.Close()

	// Create AI config
	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		// Analyzer values are not needed for reembedding
		ai.WithAnalyzerHost(c.String("embedding-host")),
		ai.WithAnalyzerModel("dummy"),
	)

	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	embedder, err := openai.NewEmbedder(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	reembedConfig := &reembed.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}

	// Validate config
	if reembedConfig.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if reembedConfig.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if reembedConfig.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	reembedder := reembed.NewReembedder(repo, embedder, reembedConfig, os.Stderr)

	fmt.Fprintf(os.Stderr, "Database: %s\n", dbPath)
	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", c.String("embedding-host"))
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", c.String("embedding-model"))
	fmt.Fprintln(os.Stderr)

	if err := reembedder.Run(ctx); err != nil {
		return fmt.Errorf("reembedding failed: %w", err)
	}

	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
