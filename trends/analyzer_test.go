package trends

import (
	"context"
	"testing"
	"time"

	"github.com/poiesic/diarit/core"
	"github.com/poiesic/diarit/storage"
	"github.com/poiesic/diarit/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoredRecord(id core.ID, score float64, keywords ...string) *core.ContextRecord {
	return &core.ContextRecord{
		Id:       id,
		Content:  "entry " + string(id),
		Date:     time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
		Emotions: core.EmotionProfile{OverallScore: score},
		Keywords: keywords,
		Type:     core.RecordTypeDiary,
	}
}

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

func TestNewAnalyzer(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		store, err := memory.NewStore()
		require.NoError(t, err)
		defer store.Close()

		analyzer, err := NewAnalyzer(store)
		require.NoError(t, err)
		assert.NotNil(t, analyzer)
	})

	t.Run("nil repository", func(t *testing.T) {
		_, err := NewAnalyzer(nil)
		assert.Equal(t, ErrRepositoryRequired, err)
	})
}

func TestAnalyze_DemoCorpus(t *testing.T) {
	store, err := memory.NewStore()
	require.NoError(t, err)
	defer store.Close()

	analyzer, err := NewAnalyzer(store)
	require.NoError(t, err)

	report, err := analyzer.Analyze(context.Background(), "fresh-user")
	require.NoError(t, err)

	// Demo corpus scores average 3.7: inside the stable band
	assert.Equal(t, PatternStable, report.EmotionalPattern)
	assert.Contains(t, report.CommonThemes, "仕事")
	assert.Contains(t, report.CommonThemes, "家族")
	assert.LessOrEqual(t, len(report.CommonThemes), 5)
}

func TestAnalyze_EmotionalPattern(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   string
	}{
		{
			name:   "positive above threshold",
			scores: []float64{4.5, 4.6, 4.4},
			want:   PatternPositive,
		},
		{
			name:   "needs support below threshold",
			scores: []float64{2.0, 2.2, 1.8},
			want:   PatternNeedsSupport,
		},
		{
			name:   "stable in between",
			scores: []float64{3.0, 3.5, 4.0},
			want:   PatternStable,
		},
		{
			name:   "exactly at positive threshold stays stable",
			scores: []float64{4.0, 4.0},
			want:   PatternStable,
		},
		{
			name:   "exactly at support threshold stays stable",
			scores: []float64{2.5, 2.5},
			want:   PatternStable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := make([]*core.ContextRecord, len(tt.scores))
			for i, score := range tt.scores {
				records[i] = scoredRecord(core.ID(rune('a'+i)), score)
			}
			analyzer, err := NewAnalyzer(seedStore(t, records))
			require.NoError(t, err)

			report, err := analyzer.Analyze(context.Background(), "user1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, report.EmotionalPattern)
		})
	}
}

func TestAnalyze_ThemeRanking(t *testing.T) {
	records := []*core.ContextRecord{
		scoredRecord("a", 3, "読書", "仕事"),
		scoredRecord("b", 3, "仕事", "料理"),
		scoredRecord("c", 3, "仕事", "読書"),
		scoredRecord("d", 3, "散歩"),
		scoredRecord("e", 3, "音楽"),
		scoredRecord("f", 3, "旅行"),
	}
	analyzer, err := NewAnalyzer(seedStore(t, records))
	require.NoError(t, err)

	report, err := analyzer.Analyze(context.Background(), "user1")
	require.NoError(t, err)

	require.Len(t, report.CommonThemes, 5)
	assert.Equal(t, "仕事", report.CommonThemes[0])
	assert.Equal(t, "読書", report.CommonThemes[1])
	// Singleton themes keep first-appearance order
	assert.Equal(t, []string{"料理", "散歩", "音楽"}, report.CommonThemes[2:])
}

func TestAnalyze_Suggestions(t *testing.T) {
	t.Run("work stress when work theme and low mean", func(t *testing.T) {
		records := []*core.ContextRecord{
			scoredRecord("a", 2, "仕事"),
			scoredRecord("b", 2.5, "仕事"),
		}
		analyzer, err := NewAnalyzer(seedStore(t, records))
		require.NoError(t, err)

		report, err := analyzer.Analyze(context.Background(), "user1")
		require.NoError(t, err)
		assert.Contains(t, report.Suggestions, "仕事のストレス管理について考えてみましょう")
	})

	t.Run("family happiness when family theme and high mean", func(t *testing.T) {
		records := []*core.ContextRecord{
			scoredRecord("a", 4.5, "家族"),
			scoredRecord("b", 4.8, "家族"),
		}
		analyzer, err := NewAnalyzer(seedStore(t, records))
		require.NoError(t, err)

		report, err := analyzer.Analyze(context.Background(), "user1")
		require.NoError(t, err)
		assert.Contains(t, report.Suggestions, "家族との時間が幸せの源になっているようです")
	})

	t.Run("health habit when neither exercise nor health theme", func(t *testing.T) {
		records := []*core.ContextRecord{
			scoredRecord("a", 3, "読書"),
		}
		analyzer, err := NewAnalyzer(seedStore(t, records))
		require.NoError(t, err)

		report, err := analyzer.Analyze(context.Background(), "user1")
		require.NoError(t, err)
		assert.Contains(t, report.Suggestions, "健康的な習慣を取り入れることを検討してみては？")
	})

	t.Run("no health suggestion when exercise is a theme", func(t *testing.T) {
		records := []*core.ContextRecord{
			scoredRecord("a", 3, "運動"),
		}
		analyzer, err := NewAnalyzer(seedStore(t, records))
		require.NoError(t, err)

		report, err := analyzer.Analyze(context.Background(), "user1")
		require.NoError(t, err)
		assert.NotContains(t, report.Suggestions, "健康的な習慣を取り入れることを検討してみては？")
	})
}

func TestAnalyze_SkipsEmptyKeywords(t *testing.T) {
	records := []*core.ContextRecord{
		scoredRecord("a", 3, "", "読書", ""),
	}
	analyzer, err := NewAnalyzer(seedStore(t, records))
	require.NoError(t, err)

	report, err := analyzer.Analyze(context.Background(), "user1")
	require.NoError(t, err)
	assert.NotContains(t, report.CommonThemes, "")
}
