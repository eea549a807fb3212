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


package diarit

import (
	"io"
	"log/slog"

	"github.com/poiesic/diarit/ai"
	"github.com/poiesic/diarit/ai/local"
	"github.com/poiesic/diarit/ai/openai"
	"github.com/poiesic/diarit/ingestion"
	"github.com/poiesic/diarit/prompt"
	"github.com/poiesic/diarit/reembed"
	"github.com/poiesic/diarit/retrieval"
	"github.com/poiesic/diarit/storage"
	"github.com/poiesic/diarit/storage/badger"
	"github.com/poiesic/diarit/storage/memory"
	"github.com/poiesic/diarit/trends"
)

// Journal is the top-level handle for a diary context database. It owns the
// storage backend and AI provider and hands out the services built on them.
type Journal struct {
	repo     storage.ContextRepository
	provider ai.AIProvider
	logger   *slog.Logger
}

// JournalOption configures a Journal.
type JournalOption func(*journalOptions)

type journalOptions struct {
	aiConfig *ai.Config
	useLLM   bool
}

// WithAIConfig sets the configuration for model-backed AI services and
// switches the journal from the local deterministic services to an
// OpenAI-compatible provider.
func WithAIConfig(config *ai.Config) JournalOption {
	return func(o *journalOptions) {
		o.aiConfig = config
		o.useLLM = true
	}
}

// NewJournal opens a durable journal backed by BadgerDB at filePath.
// Without options, AI services are the local deterministic implementations.
func NewJournal(filePath string, opts ...JournalOption) (*Journal, error) {
	repo, err := badger.NewRepository(filePath)
	if err != nil {
		return nil, err
	}
	return newJournal(repo, opts...)
}

// NewMemoryJournal opens a journal with in-process storage. Nothing is
// persisted; intended for demo use and tests.
func NewMemoryJournal(opts ...JournalOption) (*Journal, error) {
	repo, err := memory.NewStore()
	if err != nil {
		return nil, err
	}
	return newJournal(repo, opts...)
}

func newJournal(repo storage.ContextRepository, opts ...JournalOption) (*Journal, error) {
	// Apply options
	options := &journalOptions{
		aiConfig: ai.DefaultConfig(), // Default if not provided
	}
	for _, opt := range opts {
		opt(options)
	}

	var provider ai.AIProvider
	if options.useLLM {
		var err error
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			repo.Close()
			return nil, err
		}
	} else {
		provider = local.NewProvider(options.aiConfig.MaxKeywords)
	}

	return &Journal{
		repo:     repo,
		provider: provider,
		logger:   slog.Default(),
	}, nil
}

func (j *Journal) Close() error {
	// Close AI provider first
	if err := j.provider.Close(); err != nil {
		j.logger.Error("error closing AI provider", "err", err)
	}

	if err := j.repo.Close(); err != nil {
		j.logger.Error("error closing context repository", "err", err)
		return err
	}
	return nil
}

func (j *Journal) Repository() storage.ContextRepository {
	return j.repo
}

func (j *Journal) Provider() ai.AIProvider {
	return j.provider
}

func (j *Journal) NewRanker(opts ...retrieval.Option) (*retrieval.Ranker, error) {
	return retrieval.NewRanker(j.repo, j.provider, opts...)
}

func (j *Journal) NewEnhancer(opts ...prompt.Option) (*prompt.Enhancer, error) {
	ranker, err := j.NewRanker()
	if err != nil {
		return nil, err
	}
	return prompt.NewEnhancer(ranker, opts...)
}

func (j *Journal) NewTrendAnalyzer(opts ...trends.Option) (*trends.Analyzer, error) {
	return trends.NewAnalyzer(j.repo, opts...)
}

func (j *Journal) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(j.repo, j.provider, opts...)
}

func (j *Journal) NewReembedder(config *reembed.Config, progress io.Writer) *reembed.Reembedder {
	return reembed.NewReembedder(j.repo, j.provider.Embedder(), config, progress)
}
