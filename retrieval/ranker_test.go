package retrieval

import (
	"context"
	"testing"
	"time"

	"github.com/poiesic/diarit/ai"
	"github.com/poiesic/diarit/ai/mock"
	"github.com/poiesic/diarit/core"
	"github.com/poiesic/diarit/storage"
	"github.com/poiesic/diarit/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedStore builds an in-memory repository that seeds the given records.
func seedStore(t *testing.T, records []*core.ContextRecord) storage.ContextRepository {
	t.Helper()
	store, err := memory.NewStore(memory.WithSeed(func() []*core.ContextRecord {
		out := make([]*core.ContextRecord, len(records))
		for i, record := range records {
			clone := *record
			out[i] = &clone
		}
		return out
	}))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func embeddedRecord(id core.ID, embedding []float32) *core.ContextRecord {
	return &core.ContextRecord{
		Id:        id,
		Content:   "entry " + string(id),
		Date:      time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
		Embedding: embedding,
		Type:      core.RecordTypeDiary,
	}
}

// queryEmbedder returns a mock provider whose EmbedText always yields vector.
func queryEmbedder(vector []float32) ai.AIProvider {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return vector, nil
	}
	return mock.NewMockProviderWithServices(embedder, mock.NewMockEmotionAnalyzer(), mock.NewMockResponder())
}

func TestNewRanker(t *testing.T) {
	store, err := memory.NewStore()
	require.NoError(t, err)
	defer store.Close()
	provider := mock.NewMockProvider()

	t.Run("valid", func(t *testing.T) {
		ranker, err := NewRanker(store, provider)
		require.NoError(t, err)
		assert.NotNil(t, ranker)
	})

	t.Run("nil repository", func(t *testing.T) {
		_, err := NewRanker(nil, provider)
		assert.Equal(t, ErrRepositoryRequired, err)
	})

	t.Run("nil provider", func(t *testing.T) {
		_, err := NewRanker(store, nil)
		assert.Equal(t, ErrAIProviderRequired, err)
	})
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    []float32
		b    []float32
		want float64
	}{
		{
			name: "identical unit vectors",
			a:    []float32{1, 0, 0},
			b:    []float32{1, 0, 0},
			want: 1,
		},
		{
			name: "orthogonal vectors",
			a:    []float32{1, 0, 0},
			b:    []float32{0, 1, 0},
			want: 0,
		},
		{
			name: "opposite vectors",
			a:    []float32{1, 0, 0},
			b:    []float32{-1, 0, 0},
			want: -1,
		},
		{
			name: "mismatched lengths",
			a:    []float32{1, 0, 0},
			b:    []float32{1, 0},
			want: 0,
		},
		{
			name: "both empty",
			a:    nil,
			b:    nil,
			want: 0,
		},
		{
			name: "one empty",
			a:    nil,
			b:    []float32{1, 0, 0},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CosineSimilarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestFindRelevant_RanksBySimilarity(t *testing.T) {
	repo := seedStore(t, []*core.ContextRecord{
		embeddedRecord("far", []float32{0, 1, 0}),
		embeddedRecord("near", []float32{1, 0, 0}),
		embeddedRecord("mid", []float32{0.7071, 0.7071, 0}),
	})
	ranker, err := NewRanker(repo, queryEmbedder([]float32{1, 0, 0}))
	require.NoError(t, err)

	results, err := ranker.FindRelevant(context.Background(), "query", "user1", 5)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, core.ID("near"), results[0].Context.Id)
	assert.Equal(t, core.ID("mid"), results[1].Context.Id)
	assert.Equal(t, core.ID("far"), results[2].Context.Id)

	for i := 0; i < len(results)-1; i++ {
		assert.GreaterOrEqual(t, results[i].RelevanceScore, results[i+1].RelevanceScore)
	}
}

func TestFindRelevant_KeywordBoost(t *testing.T) {
	plain := embeddedRecord("plain", []float32{0, 1, 0})
	boosted := embeddedRecord("boosted", []float32{0, 1, 0})
	boosted.Keywords = []string{"仕事", "プレゼン"}

	repo := seedStore(t, []*core.ContextRecord{plain, boosted})
	ranker, err := NewRanker(repo, queryEmbedder([]float32{1, 0, 0}))
	require.NoError(t, err)

	results, err := ranker.FindRelevant(context.Background(), "仕事のプレゼンで緊張した", "user1", 5)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, core.ID("boosted"), results[0].Context.Id)
	// Two keyword hits at 0.1 each on otherwise equal scores
	assert.InDelta(t, 0.2, results[0].RelevanceScore-results[1].RelevanceScore, 1e-9)
}

func TestFindRelevant_EmotionBoost(t *testing.T) {
	neutral := embeddedRecord("unanalyzed", []float32{0, 1, 0})
	aligned := embeddedRecord("aligned", []float32{0, 1, 0})
	// Query mood for plain text is 0, projecting to 0.5; a record scoring
	// 2.5/5 projects to the same point, so alignment is exactly 1.
	aligned.Emotions.OverallScore = 2.5

	repo := seedStore(t, []*core.ContextRecord{neutral, aligned})
	ranker, err := NewRanker(repo, queryEmbedder([]float32{1, 0, 0}))
	require.NoError(t, err)

	results, err := ranker.FindRelevant(context.Background(), "query", "user1", 5)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, core.ID("aligned"), results[0].Context.Id)
	assert.InDelta(t, 0.2, results[0].RelevanceScore-results[1].RelevanceScore, 1e-9)
}

func TestFindRelevant_Limit(t *testing.T) {
	records := []*core.ContextRecord{
		embeddedRecord("a", []float32{1, 0, 0}),
		embeddedRecord("b", []float32{0, 1, 0}),
		embeddedRecord("c", []float32{0, 0, 1}),
	}
	repo := seedStore(t, records)
	ranker, err := NewRanker(repo, queryEmbedder([]float32{1, 0, 0}))
	require.NoError(t, err)

	t.Run("truncates to limit", func(t *testing.T) {
		results, err := ranker.FindRelevant(context.Background(), "query", "user1", 2)
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("non-positive limit falls back to default", func(t *testing.T) {
		results, err := ranker.FindRelevant(context.Background(), "query", "user1", 0)
		require.NoError(t, err)
		assert.Len(t, results, 3)
	})
}

func TestFindRelevant_StableTies(t *testing.T) {
	records := []*core.ContextRecord{
		embeddedRecord("first", []float32{0, 1, 0}),
		embeddedRecord("second", []float32{0, 1, 0}),
		embeddedRecord("third", []float32{0, 1, 0}),
	}
	repo := seedStore(t, records)
	ranker, err := NewRanker(repo, queryEmbedder([]float32{1, 0, 0}))
	require.NoError(t, err)

	results, err := ranker.FindRelevant(context.Background(), "query", "user1", 5)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, core.ID("first"), results[0].Context.Id)
	assert.Equal(t, core.ID("second"), results[1].Context.Id)
	assert.Equal(t, core.ID("third"), results[2].Context.Id)
}

func TestFindRelevant_EmbedsMissingVectors(t *testing.T) {
	bare := embeddedRecord("bare", nil)
	repo := seedStore(t, []*core.ContextRecord{bare})

	embedder := mock.NewMockEmbedder()
	provider := mock.NewMockProviderWithServices(embedder, mock.NewMockEmotionAnalyzer(), mock.NewMockResponder())

	ranker, err := NewRanker(repo, provider)
	require.NoError(t, err)

	results, err := ranker.FindRelevant(context.Background(), "query", "user1", 5)
	require.NoError(t, err)
	require.Len(t, results, 1)

	// One call for the query, one for the record content
	assert.Equal(t, 2, embedder.CallCount())
}

func TestFindRelevant_MismatchedEmbeddingScoresZero(t *testing.T) {
	// A record embedded under a different scheme (wrong dimension) must not
	// error out; it just contributes zero similarity.
	short := embeddedRecord("short", []float32{1, 0})
	repo := seedStore(t, []*core.ContextRecord{short})
	ranker, err := NewRanker(repo, queryEmbedder([]float32{1, 0, 0}))
	require.NoError(t, err)

	results, err := ranker.FindRelevant(context.Background(), "query", "user1", 5)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Zero(t, results[0].RelevanceScore)
}

// countingMonitor records how often each callback fires.
type countingMonitor struct {
	started        int
	queryEmbedded  int
	contextLoaded  int
	keywordHits    int
	emotionAligned int
	finished       int
	finalResults   []*core.SearchResult
}

func (m *countingMonitor) Start(query string)                            { m.started++ }
func (m *countingMonitor) AfterQueryEmbedding(vector []float32)          { m.queryEmbedded++ }
func (m *countingMonitor) AfterContextLoad(records []*core.ContextRecord) { m.contextLoaded++ }
func (m *countingMonitor) KeywordHit(record *core.ContextRecord, keyword string) {
	m.keywordHits++
}
func (m *countingMonitor) EmotionAligned(record *core.ContextRecord, boost float64) {
	m.emotionAligned++
}
func (m *countingMonitor) Finish(results []*core.SearchResult) {
	m.finished++
	m.finalResults = results
}

func TestFindRelevantWithMonitor(t *testing.T) {
	scored := embeddedRecord("scored", []float32{1, 0, 0})
	scored.Keywords = []string{"仕事"}
	scored.Emotions.OverallScore = 3

	repo := seedStore(t, []*core.ContextRecord{scored})
	ranker, err := NewRanker(repo, queryEmbedder([]float32{1, 0, 0}))
	require.NoError(t, err)

	monitor := &countingMonitor{}
	results, err := ranker.FindRelevantWithMonitor(context.Background(), "仕事について", "user1", 5, monitor)
	require.NoError(t, err)

	assert.Equal(t, 1, monitor.started)
	assert.Equal(t, 1, monitor.queryEmbedded)
	assert.Equal(t, 1, monitor.contextLoaded)
	assert.Equal(t, 1, monitor.keywordHits)
	assert.Equal(t, 1, monitor.emotionAligned)
	assert.Equal(t, 1, monitor.finished)
	assert.Equal(t, results, monitor.finalResults)
}

func TestFindRelevant_SeedsDemoCorpus(t *testing.T) {
	store, err := memory.NewStore()
	require.NoError(t, err)
	defer store.Close()

	ranker, err := NewRanker(store, mock.NewMockProvider())
	require.NoError(t, err)

	results, err := ranker.FindRelevant(context.Background(), "仕事で失敗した", "fresh-user", 5)
	require.NoError(t, err)
	assert.Len(t, results, 5)
}
