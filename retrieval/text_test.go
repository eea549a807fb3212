package retrieval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryMood(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  float64
	}{
		{
			name:  "neutral",
			query: "今日の予定について",
			want:  0,
		},
		{
			name:  "single positive marker",
			query: "嬉しいことがあった",
			want:  1,
		},
		{
			name:  "single negative marker",
			query: "疲れが取れない",
			want:  -1,
		},
		{
			name:  "mixed markers cancel",
			query: "楽しいけど疲れた",
			want:  0,
		},
		{
			name:  "clamped at positive two",
			query: "嬉しい 楽しい happy 良い 素晴らしい",
			want:  2,
		},
		{
			name:  "clamped at negative two",
			query: "悲しい 辛い sad 大変 疲れた",
			want:  -2,
		},
		{
			name:  "english marker case-insensitive",
			query: "I am so HAPPY today",
			want:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, queryMood(tt.query))
		})
	}
}

func TestEmotionAlignment(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		mood  float64
		want  float64
	}{
		{
			name:  "perfect alignment neutral",
			score: 2.5,
			mood:  0,
			want:  1,
		},
		{
			name:  "perfect alignment positive",
			score: 5,
			mood:  2,
			want:  1,
		},
		{
			name:  "maximal mismatch",
			score: 5,
			mood:  -2,
			want:  0,
		},
		{
			name:  "partial alignment",
			score: 4,
			mood:  0,
			want:  0.7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, emotionAlignment(tt.score, tt.mood), 1e-9)
		})
	}
}
