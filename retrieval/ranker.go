package retrieval

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/poiesic/diarit/ai"
	"github.com/poiesic/diarit/core"
	"github.com/poiesic/diarit/storage"
)

const (
	// DefaultLimit is the number of results returned when the caller passes
	// a non-positive limit.
	DefaultLimit = 5

	// keywordBoost is added once per stored keyword found in the query.
	keywordBoost = 0.1

	// emotionBoostWeight scales the emotion alignment contribution.
	emotionBoostWeight = 0.2
)

// Ranker scores a user's diary context against a query and returns the most
// relevant records. The relevance score combines embedding similarity with
// keyword and emotion-alignment boosts.
type Ranker struct {
	repository storage.ContextRepository
	embedder   ai.Embedder
	logger     *slog.Logger
}

// Option configures a Ranker.
type Option func(*Ranker) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Ranker) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewRanker creates a new ranker.
func NewRanker(
	repository storage.ContextRepository,
	provider ai.AIProvider,
	opts ...Option,
) (*Ranker, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	r := &Ranker{
		repository: repository,
		embedder:   provider.Embedder(),
		logger:     slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// CosineSimilarity computes the similarity of two embedding vectors.
// Vectors are expected to be L2-normalized, so the dot product is the cosine.
// Mismatched lengths or empty vectors score 0 rather than erroring: a record
// embedded under a different scheme is simply not comparable.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}

// FindRelevant returns the user's context records most relevant to the query,
// ranked by composite score descending. Ties keep insertion order. A
// non-positive limit falls back to DefaultLimit.
func (r *Ranker) FindRelevant(ctx context.Context, query, userID string, limit int) ([]*core.SearchResult, error) {
	return r.FindRelevantWithMonitor(ctx, query, userID, limit, nil)
}

// FindRelevantWithMonitor ranks with monitoring.
// The monitor receives callbacks at each stage of the ranking process.
func (r *Ranker) FindRelevantWithMonitor(ctx context.Context, query, userID string, limit int, monitor RankMonitor) ([]*core.SearchResult, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	monitor.Start(query)

	// 1. Embed the query
	queryVector, err := r.embedder.EmbedText(ctx, query)
	if err != nil {
		r.logger.Error("error generating embedding for query", "query", query, "err", err)
		return nil, err
	}
	monitor.AfterQueryEmbedding(queryVector)

	// 2. Load the user's context, seeding on first touch
	records, err := r.repository.GetOrSeed(ctx, userID)
	if err != nil {
		r.logger.Error("error loading user context", "user", userID, "err", err)
		return nil, err
	}
	monitor.AfterContextLoad(records)

	loweredQuery := strings.ToLower(query)
	mood := queryMood(query)

	// 3. Score every record
	results := make([]*core.SearchResult, 0, len(records))
	for _, record := range records {
		if record == nil {
			continue
		}

		// Records ingested without an embedding are embedded on the fly
		vector := record.Embedding
		if len(vector) == 0 {
			vector, err = r.embedder.EmbedText(ctx, record.Content)
			if err != nil {
				r.logger.Error("error embedding record content", "id", record.Id, "err", err)
				return nil, err
			}
		}

		score := CosineSimilarity(queryVector, vector)

		// Keyword boost: each stored keyword found in the query
		for _, keyword := range record.Keywords {
			if keyword == "" {
				continue
			}
			if strings.Contains(loweredQuery, strings.ToLower(keyword)) {
				score += keywordBoost
				monitor.KeywordHit(record, keyword)
			}
		}

		// Emotion boost: reward records whose tone matches the query's mood
		if record.Emotions.OverallScore > 0 {
			boost := emotionAlignment(record.Emotions.OverallScore, mood) * emotionBoostWeight
			score += boost
			monitor.EmotionAligned(record, boost)
		}

		results = append(results, &core.SearchResult{
			Context:        record,
			RelevanceScore: score,
		})
	}

	// 4. Sort by score descending; stable so equal scores keep insertion order
	slices.SortStableFunc(results, func(a, b *core.SearchResult) int {
		if a.RelevanceScore > b.RelevanceScore {
			return -1
		}
		if a.RelevanceScore < b.RelevanceScore {
			return 1
		}
		return 0
	})
	if len(results) > limit {
		results = results[:limit]
	}
	monitor.Finish(results)

	return results, nil
}
