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


package reembed

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/poiesic/diarit/ai"
	"github.com/poiesic/diarit/storage"
)

// Config holds configuration for the reembedding operation.
type Config struct {
	// BatchSize is the number of records to process in each batch
	BatchSize int

	// ReportInterval is how often to report progress (number of records)
	ReportInterval int

	// MaxRetries is the maximum number of retry attempts for failed operations
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      100,
		ReportInterval: 100,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
	}
}

// Reembedder regenerates the embeddings of every stored context record.
// Run it after switching embedding schemes; records embedded under the old
// scheme score zero against new query vectors until they are reembedded.
type Reembedder struct {
	repo      storage.ContextRepository
	config    *Config
	progress  io.Writer
	processor *BatchProcessor
}

// NewReembedder creates a new reembedder.
// progress: where to write progress output (typically os.Stderr)
func NewReembedder(repo storage.ContextRepository, embedder ai.Embedder, config *Config, progress io.Writer) *Reembedder {
	if config == nil {
		config = DefaultConfig()
	}

	return &Reembedder{
		repo:      repo,
		config:    config,
		progress:  progress,
		processor: NewBatchProcessor(repo, embedder, config.MaxRetries, config.RetryDelay),
	}
}

// Run executes the reembedding operation across all users.
// Progress is reported to the configured writer.
func (r *Reembedder) Run(ctx context.Context) error {
	users, err := r.repo.Users(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	if len(users) == 0 {
		fmt.Fprintf(r.progress, "No users found in database (0 records)\n")
		return nil
	}

	// Count total records up front so progress is meaningful
	perUser := make(map[string]int, len(users))
	totalRecords := 0
	for _, user := range users {
		records, err := r.repo.GetOrSeed(ctx, user)
		if err != nil {
			return fmt.Errorf("failed to load context for %s: %w", user, err)
		}
		perUser[user] = len(records)
		totalRecords += len(records)
	}

	fmt.Fprintf(r.progress, "Starting reembedding of %d records across %d users (batch size: %d)\n",
		totalRecords, len(users), r.config.BatchSize)

	tracker := NewProgressTracker(r.progress, totalRecords, r.config.ReportInterval)
	tracker.Start()

	for _, user := range users {
		records, err := r.repo.GetOrSeed(ctx, user)
		if err != nil {
			return fmt.Errorf("failed to load context for %s: %w", user, err)
		}

		for start := 0; start < len(records); start += r.config.BatchSize {
			end := start + r.config.BatchSize
			if end > len(records) {
				end = len(records)
			}

			batch := records[start:end]
			if err := r.processor.Process(ctx, user, batch); err != nil {
				return fmt.Errorf("failed to process batch for %s: %w", user, err)
			}
			tracker.Increment(len(batch))
		}
	}

	tracker.Finish()

	elapsed := tracker.Elapsed()
	fmt.Fprintf(r.progress, "Reembedding complete. Processed %d records in %v (%.1f records/sec)\n",
		totalRecords, elapsed.Round(time.Second), float64(totalRecords)/elapsed.Seconds())

	return nil
}
