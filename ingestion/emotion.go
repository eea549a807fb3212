package ingestion

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poiesic/diarit/ai"
	"github.com/poiesic/diarit/core"
	"github.com/poiesic/diarit/storage"
)

// emotionProcessor analyzes emotional tone and extracts keywords for
// context records.
type emotionProcessor struct {
	repository storage.ContextRepository
	analyzer   ai.EmotionAnalyzer
	logger     *slog.Logger
}

var _ processor = (*emotionProcessor)(nil)

// newEmotionProcessor creates a new emotion processor.
func newEmotionProcessor(repository storage.ContextRepository, analyzer ai.EmotionAnalyzer, logger *slog.Logger) (processor, error) {
	if repository == nil {
		return nil, fmt.Errorf("context repository required")
	}
	if analyzer == nil {
		return nil, fmt.Errorf("emotion analyzer required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &emotionProcessor{
		repository: repository,
		analyzer:   analyzer,
		logger:     logger.With("processor", "emotions"),
	}, nil
}

// process analyzes the specified context records one at a time. Records that
// already carry an emotion profile, such as answers ingested with analysis
// attached, are left untouched.
func (ep *emotionProcessor) process(ctx context.Context, userID string, ids ...core.ID) error {
	ep.logger.Info("processing records for emotions", "user", userID, "records", len(ids))

	for _, id := range ids {
		record, err := ep.repository.Get(ctx, userID, id)
		if err != nil {
			ep.logger.Error("error retrieving context record", "id", id, "err", err)
			return err
		}

		if record.Emotions.OverallScore != 0 {
			continue
		}

		analysis, err := ep.analyzer.AnalyzeText(ctx, record.Content)
		if err != nil {
			ep.logger.Error("error analyzing record", "id", id, "err", err)
			return err
		}

		record.Emotions = analysis.Emotions
		if len(record.Keywords) == 0 {
			record.Keywords = analysis.Keywords
		}

		if err := ep.repository.Update(ctx, userID, record); err != nil {
			return err
		}
	}

	return nil
}
