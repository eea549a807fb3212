package prompt

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/diarit/core"
	"github.com/poiesic/diarit/retrieval"
)

const (
	// contextLimit is how many past records are woven into the prompt.
	contextLimit = 3

	// previewRunes bounds the excerpt taken from each record's content.
	previewRunes = 100
)

// Enhancer builds LLM prompts enriched with a user's relevant diary history.
type Enhancer struct {
	ranker *retrieval.Ranker
	logger *slog.Logger
}

// Option configures an Enhancer.
type Option func(*Enhancer) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Enhancer) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewEnhancer creates a new prompt enhancer.
func NewEnhancer(ranker *retrieval.Ranker, opts ...Option) (*Enhancer, error) {
	if ranker == nil {
		return nil, ErrRankerRequired
	}

	e := &Enhancer{
		ranker: ranker,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Enhance wraps the user's message in a prompt carrying their most relevant
// past records. When nothing relevant is found, the message passes through
// verbatim so the downstream model sees no empty scaffolding.
func (e *Enhancer) Enhance(ctx context.Context, userMessage, userID string) (string, error) {
	results, err := e.ranker.FindRelevant(ctx, userMessage, userID, contextLimit)
	if err != nil {
		e.logger.Error("error retrieving relevant context", "user", userID, "err", err)
		return "", err
	}

	if len(results) == 0 {
		return userMessage, nil
	}

	sections := make([]string, 0, len(results))
	for i, result := range results {
		sections = append(sections, formatSection(i+1, result))
	}
	contextSummary := strings.Join(sections, "\n\n")

	return fmt.Sprintf(`
ユーザーの質問: %s

以下は関連する過去の日記記録です：
%s

これらの過去の記録を参考にしながら、ユーザーの現在の状況に寄り添った返答をしてください。
過去の経験や感情のパターンを踏まえて、より深い洞察を提供してください。
`, userMessage, contextSummary), nil
}

// formatSection renders one past record as a numbered prompt block.
func formatSection(n int, result *core.SearchResult) string {
	record := result.Context
	date := record.Date.Format("2006/1/2")
	emotions := strings.Join(record.Emotions.DominantEmotions, "、")

	content := record.Content
	if runes := []rune(content); len(runes) > previewRunes {
		content = string(runes[:previewRunes])
	}

	return fmt.Sprintf("[過去の記録%d] %s\n感情: %s\n内容: %s...", n, date, emotions, content)
}
