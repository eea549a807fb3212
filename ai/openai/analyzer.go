// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/poiesic/diarit/ai"
	"github.com/poiesic/diarit/core"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// EmotionAnalyzer implements ai.EmotionAnalyzer using OpenAI-compatible chat APIs.
type EmotionAnalyzer struct {
	client      llms.Model
	maxKeywords int
	logger      *slog.Logger
}

// reading is an internal type used for JSON unmarshaling.
// It matches the structure expected from the LLM.
type reading struct {
	OverallScore     float64            `json:"overall_score"`
	DominantEmotions []string           `json:"dominant_emotions"`
	EmotionScores    map[string]float64 `json:"emotion_scores"`
	Keywords         []string           `json:"keywords"`
}

// newEmotionAnalyzer is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newEmotionAnalyzer(config *ai.Config) (*EmotionAnalyzer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Create OpenAI client configured for chat/analysis
	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.AnalyzerHost),
		openai.WithToken("none"),
		openai.WithModel(config.AnalyzerModel),
	)
	if err != nil {
		return nil, err
	}

	return &EmotionAnalyzer{
		client:      client,
		maxKeywords: config.MaxKeywords,
		logger:      slog.Default().With("component", "openai-analyzer"),
	}, nil
}

// NewEmotionAnalyzer creates a new emotion analyzer using the provided configuration.
//
// Returns ai.EmotionAnalyzer interface to enforce abstraction.
func NewEmotionAnalyzer(config *ai.Config) (ai.EmotionAnalyzer, error) {
	return newEmotionAnalyzer(config)
}

// AnalyzeText reads the emotional tone of a text and extracts keywords using an LLM.
// The model response is parsed as JSON and normalized into the domain's 1-5 scale.
func (a *EmotionAnalyzer) AnalyzeText(ctx context.Context, text string) (*ai.Analysis, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(emotionAnalysisPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(text),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var result reading
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := a.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			a.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return nil, err
		}

		if len(response.Choices) < 1 {
			a.logger.Debug("no choices returned from model")
			return &ai.Analysis{Emotions: core.EmotionProfile{OverallScore: 3}}, nil
		}

		choice := response.Choices[0]

		// Strip markdown code fences if present
		responseText := strings.TrimSpace(choice.Content)
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)

		// Try to repair common JSON issues
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			a.logger.Warn("error parsing analyzer response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		// Success
		lastErr = nil
		break
	}

	if lastErr != nil {
		a.logger.Error("failed to parse analyzer response after retries", "err", lastErr)
		return nil, lastErr
	}

	return a.normalize(&result), nil
}

// normalize clamps the model output into the domain's bounds: score in [1, 5],
// at most 3 dominant emotions, at most maxKeywords keywords.
func (a *EmotionAnalyzer) normalize(r *reading) *ai.Analysis {
	score := r.OverallScore
	if score < 1 {
		score = 1
	}
	if score > 5 {
		score = 5
	}

	dominant := r.DominantEmotions
	if len(dominant) > 3 {
		dominant = dominant[:3]
	}

	keywords := make([]string, 0, a.maxKeywords)
	for _, keyword := range r.Keywords {
		keyword = scrubString(keyword)
		if keyword == "" {
			continue
		}
		keywords = append(keywords, keyword)
		if len(keywords) >= a.maxKeywords {
			break
		}
	}

	a.logger.Debug("analyzed text",
		"score", score,
		"emotions", len(dominant),
		"keywords", len(keywords))

	return &ai.Analysis{
		Emotions: core.EmotionProfile{
			OverallScore:     score,
			DominantEmotions: dominant,
			EmotionScores:    r.EmotionScores,
		},
		Keywords: keywords,
	}
}
