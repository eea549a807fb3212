package retrieval

import "strings"

// Mood marker words checked against queries. Matching is by substring, so
// Japanese text needs no tokenization and inflected forms still hit.
var (
	positiveMarkers = []string{"嬉しい", "楽しい", "happy", "良い", "素晴らしい"}
	negativeMarkers = []string{"悲しい", "辛い", "sad", "大変", "疲れ"}
)

// queryMood estimates the emotional leaning of a query on a -2..+2 scale.
// Each positive marker found adds one, each negative marker subtracts one,
// and the total is clamped.
func queryMood(query string) float64 {
	lowered := strings.ToLower(query)

	var mood float64
	for _, marker := range positiveMarkers {
		if strings.Contains(lowered, marker) {
			mood++
		}
	}
	for _, marker := range negativeMarkers {
		if strings.Contains(lowered, marker) {
			mood--
		}
	}

	if mood > 2 {
		mood = 2
	}
	if mood < -2 {
		mood = -2
	}
	return mood
}

// emotionAlignment scores how closely a record's emotional tone matches the
// query's mood, in [0, 1]. Both sides are projected onto [0, 1]: the record's
// 1-5 score divided by 5, the query mood shifted from -2..+2.
func emotionAlignment(overallScore, mood float64) float64 {
	recordTone := overallScore / 5
	queryTone := (mood + 2) / 4

	alignment := 1 - abs(recordTone-queryTone)
	if alignment < 0 {
		alignment = 0
	}
	return alignment
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
