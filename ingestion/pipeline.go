package ingestion

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/diarit/ai"
	"github.com/poiesic/diarit/core"
	"github.com/poiesic/diarit/storage"
)

// Pipeline orchestrates the ingestion and enrichment of diary context records.
// It manages concurrent processing of embeddings and emotion analysis.
type Pipeline struct {
	repository    storage.ContextRepository
	embeddingPool *ants.Pool
	emotionPool   *ants.Pool
	embeddingProc processor
	emotionProc   processor
	logger        *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent processing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		// Release old pools
		if p.embeddingPool != nil {
			p.embeddingPool.Release()
		}
		if p.emotionPool != nil {
			p.emotionPool.Release()
		}

		// Create new pools
		embeddingPool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		emotionPool, err := ants.NewPool(size)
		if err != nil {
			embeddingPool.Release()
			return err
		}

		p.embeddingPool = embeddingPool
		p.emotionPool = emotionPool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	repository storage.ContextRepository,
	provider ai.AIProvider,
	opts ...Option,
) (*Pipeline, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	// Default pool size
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	embeddingPool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	emotionPool, err := ants.NewPool(poolSize)
	if err != nil {
		embeddingPool.Release()
		return nil, err
	}

	// Create pipeline with defaults
	p := &Pipeline{
		repository:    repository,
		embeddingPool: embeddingPool,
		emotionPool:   emotionPool,
		logger:        slog.Default(),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	// Create processors after options are applied (so they get final config)
	embeddingProc, err := newEmbeddingProcessor(repository, provider.Embedder(), p.logger)
	if err != nil {
		p.Release()
		return nil, err
	}

	emotionProc, err := newEmotionProcessor(repository, provider.EmotionAnalyzer(), p.logger)
	if err != nil {
		p.Release()
		return nil, err
	}

	p.embeddingProc = embeddingProc
	p.emotionProc = emotionProc

	return p, nil
}

// IngestOptions holds optional parameters for ingestion.
type IngestOptions struct {
	Keywords []string  // Optional keywords; emotion analysis fills them in if empty
	ParentId core.ID   // Optional parent record, e.g. the question an answer belongs to
	Date     time.Time // Optional entry date (uses current time if zero)
}

// Ingest adds entries as context records for a user and enriches them
// asynchronously. The record type applies to all entries in the batch.
// Enrichment generates embeddings and analyzes emotional tone.
// Errors during async processing are logged but do not fail the ingestion.
func (p *Pipeline) Ingest(ctx context.Context, userID string, recordType core.RecordType, entries []string, opts *IngestOptions) error {
	if userID == "" {
		return ErrEmptyUserID
	}
	if opts == nil {
		opts = &IngestOptions{}
	}

	// Create records
	records := make([]*core.ContextRecord, len(entries))
	for i, entry := range entries {
		date := opts.Date
		if date.IsZero() {
			date = time.Now().UTC()
		}

		records[i] = &core.ContextRecord{
			Content:  entry,
			Date:     date,
			Keywords: opts.Keywords,
			Type:     recordType,
			ParentId: opts.ParentId,
		}
	}

	// Add to storage
	added, err := p.repository.Append(ctx, userID, records...)
	if err != nil {
		return err
	}

	if len(added) == 0 {
		return nil
	}

	// Extract IDs
	ids := make([]core.ID, len(added))
	for i, record := range added {
		ids[i] = record.Id
	}

	// Submit for async processing
	p.embeddingPool.Submit(func() {
		if err := p.embeddingProc.process(context.Background(), userID, ids...); err != nil {
			p.logger.Error("error processing embeddings", "err", err)
		}
	})

	p.emotionPool.Submit(func() {
		if err := p.emotionProc.process(context.Background(), userID, ids...); err != nil {
			p.logger.Error("error processing emotions", "err", err)
		}
	})

	return nil
}

// Release releases resources including worker pools.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.embeddingPool != nil {
		p.embeddingPool.Release()
	}
	if p.emotionPool != nil {
		p.emotionPool.Release()
	}
}
