package ai

import (
	"context"

	"github.com/poiesic/diarit/core"
)

// Embedder generates vector embeddings from text for semantic similarity ranking.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// EmotionAnalyzer produces the emotion profile and extracted keywords that are
// attached to a context record before it is stored. The retrieval core treats
// this data as already computed; it never runs emotion analysis itself.
// Implementations must be thread-safe for concurrent use.
type EmotionAnalyzer interface {
	// AnalyzeText reads the emotional tone of a text and extracts its key terms.
	// Returns an error if the analysis fails.
	AnalyzeText(ctx context.Context, text string) (*Analysis, error)
}

// Analysis is the result of emotion/keyword analysis of a single text.
type Analysis struct {
	// Emotions is the emotional reading of the text.
	Emotions core.EmotionProfile

	// Keywords are short extracted terms, most salient first.
	Keywords []string
}

// Responder generates free-text replies from prompts. It consumes the output
// of the prompt enhancer; no provider-specific request schema leaks into the
// rest of the system.
// Implementations must be thread-safe for concurrent use.
type Responder interface {
	// Respond returns a reply to the given prompt.
	Respond(ctx context.Context, prompt string) (string, error)
}

// AIProvider aggregates AI services for convenient initialization and lifecycle management.
// A provider creates and manages Embedder, EmotionAnalyzer, and Responder
// instances, ensuring they share configuration and resources appropriately.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// EmotionAnalyzer returns the emotion/keyword analysis service.
	// The returned EmotionAnalyzer is safe for concurrent use.
	EmotionAnalyzer() EmotionAnalyzer

	// Responder returns the dialogue response service.
	// The returned Responder is safe for concurrent use.
	Responder() Responder

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
