package ingestion

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poiesic/diarit/ai"
	"github.com/poiesic/diarit/core"
	"github.com/poiesic/diarit/storage"
)

// embeddingProcessor generates embeddings for context records.
type embeddingProcessor struct {
	repository storage.ContextRepository
	embedder   ai.Embedder
	logger     *slog.Logger
}

var _ processor = (*embeddingProcessor)(nil)

// newEmbeddingProcessor creates a new embedding processor.
func newEmbeddingProcessor(repository storage.ContextRepository, embedder ai.Embedder, logger *slog.Logger) (processor, error) {
	if repository == nil {
		return nil, fmt.Errorf("context repository required")
	}
	if embedder == nil {
		return nil, fmt.Errorf("embedder required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &embeddingProcessor{
		repository: repository,
		embedder:   embedder,
		logger:     logger.With("processor", "embeddings"),
	}, nil
}

// process generates embeddings for the specified context records.
func (ep *embeddingProcessor) process(ctx context.Context, userID string, ids ...core.ID) error {
	ep.logger.Info("processing records for embeddings", "user", userID, "records", len(ids))

	records := make([]*core.ContextRecord, 0, len(ids))
	texts := make([]string, 0, len(ids))
	for _, id := range ids {
		record, err := ep.repository.Get(ctx, userID, id)
		if err != nil {
			ep.logger.Error("error retrieving context record", "id", id, "err", err)
			return err
		}
		records = append(records, record)
		texts = append(texts, record.Content)
	}

	ep.logger.Debug("generating embeddings for context records", "records", len(texts))
	embeddings, err := ep.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		ep.logger.Error("error generating embeddings", "err", err)
		return err
	}

	if len(embeddings) != len(records) {
		return fmt.Errorf("embedding result mismatch. expected %d, received %d", len(records), len(embeddings))
	}

	for i := range embeddings {
		records[i].Embedding = embeddings[i]
	}

	return ep.repository.Update(ctx, userID, records...)
}
