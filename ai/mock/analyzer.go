package mock

import (
	"context"
	"strings"

	"github.com/poiesic/diarit/ai"
	"github.com/poiesic/diarit/core"
)

// MockEmotionAnalyzer is a test double for ai.EmotionAnalyzer.
// It allows custom behavior injection via function fields.
type MockEmotionAnalyzer struct {
	// AnalyzeTextFunc is called by AnalyzeText if set.
	// If nil, uses default neutral analysis.
	AnalyzeTextFunc func(ctx context.Context, text string) (*ai.Analysis, error)

	callCount int
}

// NewMockEmotionAnalyzer creates a mock analyzer with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockAnalyzer().
func NewMockEmotionAnalyzer() *MockEmotionAnalyzer {
	return &MockEmotionAnalyzer{}
}

// AnalyzeText produces a simple neutral analysis from text.
// Default behavior: neutral score of 3, keywords from the first few words.
func (m *MockEmotionAnalyzer) AnalyzeText(ctx context.Context, text string) (*ai.Analysis, error) {
	m.callCount++

	if m.AnalyzeTextFunc != nil {
		return m.AnalyzeTextFunc(ctx, text)
	}

	// Default: neutral emotions, keywords from leading words
	words := strings.Fields(strings.ToLower(text))
	keywords := make([]string, 0, 5)
	for _, word := range words {
		if len(keywords) >= 5 {
			break
		}

		// Clean the word
		word = strings.Trim(word, ".,!?;:\"'()[]{}—–-")
		if word == "" {
			continue
		}
		keywords = append(keywords, word)
	}

	return &ai.Analysis{
		Emotions: core.EmotionProfile{
			OverallScore:     3,
			DominantEmotions: []string{"neutral"},
			EmotionScores:    map[string]float64{"neutral": 1},
		},
		Keywords: keywords,
	}, nil
}

// CallCount returns the number of times AnalyzeText was called.
func (m *MockEmotionAnalyzer) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockEmotionAnalyzer) Reset() {
	m.callCount = 0
	m.AnalyzeTextFunc = nil
}
