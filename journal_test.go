package diarit

import (
	"context"
	"testing"
	"time"

	"github.com/poiesic/diarit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMemoryJournal(t *testing.T) {
	journal, err := NewMemoryJournal()
	require.NoError(t, err)
	defer journal.Close()

	assert.NotNil(t, journal.Repository())
	assert.NotNil(t, journal.Provider())
	assert.NotNil(t, journal.Provider().Embedder())
	assert.NotNil(t, journal.Provider().EmotionAnalyzer())
	assert.NotNil(t, journal.Provider().Responder())
}

func TestJournal_Search(t *testing.T) {
	journal, err := NewMemoryJournal()
	require.NoError(t, err)
	defer journal.Close()

	ranker, err := journal.NewRanker()
	require.NoError(t, err)

	results, err := ranker.FindRelevant(context.Background(), "仕事で失敗して落ち込んでいる", "demo-user", 5)
	require.NoError(t, err)
	require.Len(t, results, 5)

	// The presentation-failure entry carries the 仕事 and 失敗 keywords and a
	// low emotional tone, so it should outrank the rest of the demo corpus.
	assert.Equal(t, core.ID("3"), results[0].Context.Id)
	for i := 0; i < len(results)-1; i++ {
		assert.GreaterOrEqual(t, results[i].RelevanceScore, results[i+1].RelevanceScore)
	}
}

func TestJournal_Enhance(t *testing.T) {
	journal, err := NewMemoryJournal()
	require.NoError(t, err)
	defer journal.Close()

	enhancer, err := journal.NewEnhancer()
	require.NoError(t, err)

	message := "最近仕事がうまくいかない"
	enhanced, err := enhancer.Enhance(context.Background(), message, "demo-user")
	require.NoError(t, err)

	assert.Contains(t, enhanced, message)
	assert.Contains(t, enhanced, "[過去の記録1]")
	assert.NotEqual(t, message, enhanced)
}

func TestJournal_Trends(t *testing.T) {
	journal, err := NewMemoryJournal()
	require.NoError(t, err)
	defer journal.Close()

	analyzer, err := journal.NewTrendAnalyzer()
	require.NoError(t, err)

	report, err := analyzer.Analyze(context.Background(), "demo-user")
	require.NoError(t, err)

	assert.Equal(t, "stable", report.EmotionalPattern)
	assert.Contains(t, report.CommonThemes, "仕事")
	assert.Contains(t, report.CommonThemes, "家族")
}

func TestJournal_IngestAndSearch(t *testing.T) {
	journal, err := NewMemoryJournal()
	require.NoError(t, err)
	defer journal.Close()

	pipeline, err := journal.NewIngestionPipeline()
	require.NoError(t, err)
	defer pipeline.Release()

	ctx := context.Background()
	entry := "息子の運動会で一日中応援した。声が枯れるほど楽しかった。"
	require.NoError(t, pipeline.Ingest(ctx, "demo-user", core.RecordTypeDiary, []string{entry}, nil))

	// Ingestion enriches asynchronously; wait for the embedding to land
	assert.Eventually(t, func() bool {
		records, err := journal.Repository().GetOrSeed(ctx, "demo-user")
		if err != nil {
			return false
		}
		for _, record := range records {
			if record.Content == entry && len(record.Embedding) > 0 {
				return true
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond)

	ranker, err := journal.NewRanker()
	require.NoError(t, err)
	results, err := ranker.FindRelevant(ctx, entry, "demo-user", 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, entry, results[0].Context.Content)
}

func TestJournal_Close(t *testing.T) {
	journal, err := NewMemoryJournal()
	require.NoError(t, err)
	require.NoError(t, journal.Close())
}
