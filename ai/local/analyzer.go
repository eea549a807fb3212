package local

import (
	"context"
	"sort"
	"strings"

	"github.com/poiesic/diarit/ai"
	"github.com/poiesic/diarit/core"
)

// lexiconEntry pairs a surface form with the emotion label it signals and a
// valence contribution to the 1-5 overall score.
type lexiconEntry struct {
	word    string
	emotion string
	valence float64
}

// emotionLexicon is a small curated list of Japanese and English emotion
// words. Order matters: it is the tie-break for dominant-emotion ranking.
var emotionLexicon = []lexiconEntry{
	{"嬉しい", "喜び", 1},
	{"喜び", "喜び", 1},
	{"happy", "喜び", 1},
	{"楽しい", "楽しさ", 1},
	{"楽し", "楽しさ", 0.5},
	{"幸せ", "幸せ", 1},
	{"感動", "感動", 1},
	{"素晴らしい", "感動", 1},
	{"感謝", "感謝", 1},
	{"満足", "満足", 1},
	{"良い", "満足", 0.5},
	{"達成", "達成感", 1},
	{"安心", "安心", 0.5},
	{"期待", "期待", 0.5},
	{"前向き", "前向き", 0.5},
	{"悲しい", "悲しみ", -1},
	{"sad", "悲しみ", -1},
	{"辛い", "苦しさ", -1},
	{"大変", "苦しさ", -0.5},
	{"疲れ", "疲労", -0.5},
	{"不安", "不安", -0.5},
	{"緊張", "緊張", -0.5},
	{"怒り", "怒り", -1},
	{"恐れ", "恐れ", -1},
	{"失望", "失望", -1},
	{"落ち込", "落胆", -1},
	{"後悔", "後悔", -1},
	{"失敗", "反省", -0.5},
}

// EmotionAnalyzer implements ai.EmotionAnalyzer with lexicon matching.
// It is a deterministic offline stand-in for LLM-based emotion analysis:
// occurrences of curated emotion words shift the overall score away from a
// neutral 3 and vote for dominant-emotion labels. Keywords are the matched
// surface forms plus leading whitespace tokens.
type EmotionAnalyzer struct {
	maxKeywords int
}

var _ ai.EmotionAnalyzer = (*EmotionAnalyzer)(nil)

// NewEmotionAnalyzer creates the local lexicon analyzer.
// maxKeywords bounds the number of extracted keywords; values < 1 fall back
// to the default of 5.
//
// Returns ai.EmotionAnalyzer interface to enforce abstraction.
func NewEmotionAnalyzer(maxKeywords int) ai.EmotionAnalyzer {
	if maxKeywords < 1 {
		maxKeywords = 5
	}
	return &EmotionAnalyzer{maxKeywords: maxKeywords}
}

// AnalyzeText reads the emotional tone of a text via lexicon matching.
// It never fails; text without any lexicon hit gets a neutral profile.
func (a *EmotionAnalyzer) AnalyzeText(ctx context.Context, text string) (*ai.Analysis, error) {
	lower := strings.ToLower(text)

	var valenceSum float64
	hits := make(map[string]int)
	hitOrder := make([]string, 0, 4)
	matchedWords := make([]string, 0, 4)

	for _, entry := range emotionLexicon {
		count := strings.Count(lower, entry.word)
		if count == 0 {
			continue
		}
		valenceSum += entry.valence * float64(count)
		if hits[entry.emotion] == 0 {
			hitOrder = append(hitOrder, entry.emotion)
		}
		hits[entry.emotion] += count
		matchedWords = append(matchedWords, entry.word)
	}

	profile := core.EmotionProfile{
		OverallScore: clampScore(3 + 0.5*valenceSum),
	}

	if len(hitOrder) > 0 {
		// Rank labels by hit count, lexicon order breaking ties.
		ranked := make([]string, len(hitOrder))
		copy(ranked, hitOrder)
		sort.SliceStable(ranked, func(i, j int) bool {
			return hits[ranked[i]] > hits[ranked[j]]
		})
		if len(ranked) > 3 {
			ranked = ranked[:3]
		}
		profile.DominantEmotions = ranked

		maxHits := hits[ranked[0]]
		profile.EmotionScores = make(map[string]float64, len(hitOrder))
		for _, emotion := range hitOrder {
			profile.EmotionScores[emotion] = float64(hits[emotion]) / float64(maxHits)
		}
	}

	return &ai.Analysis{
		Emotions: profile,
		Keywords: a.extractKeywords(lower, matchedWords),
	}, nil
}

// extractKeywords returns up to maxKeywords unique terms: matched emotion
// words first (Japanese text rarely has whitespace token boundaries), then
// whitespace tokens with punctuation trimmed.
func (a *EmotionAnalyzer) extractKeywords(lower string, matchedWords []string) []string {
	seen := make(map[string]bool)
	keywords := make([]string, 0, a.maxKeywords)

	appendKeyword := func(word string) {
		if word == "" || seen[word] || len(keywords) >= a.maxKeywords {
			return
		}
		seen[word] = true
		keywords = append(keywords, word)
	}

	for _, word := range matchedWords {
		appendKeyword(word)
	}
	for _, token := range strings.Fields(lower) {
		token = strings.Trim(token, ".,!?;:'\"-()[]{}、。！？")
		if len([]rune(token)) < 2 {
			continue
		}
		appendKeyword(token)
	}

	return keywords
}

// clampScore bounds a score to the 1-5 emotion scale.
func clampScore(score float64) float64 {
	if score < 1 {
		return 1
	}
	if score > 5 {
		return 5
	}
	return score
}
