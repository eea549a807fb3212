package local

import (
	"context"
	"math"
	"strings"

	"github.com/poiesic/diarit/ai"
)

// Dim is the dimensionality of every vector produced by the local embedder.
// All embeddings stored alongside context records must share this length;
// the ranker treats mismatched lengths as zero similarity.
const Dim = 128

// Embedder implements ai.Embedder with a hashed bag-of-words pseudo-embedding.
// It needs no external service: each whitespace token is hashed into one of
// Dim buckets and weighted by its position, and the result is L2-normalized.
// A production deployment would swap in a real embedding model via ai/openai;
// ranking only relies on determinism and a roughly uniform bucket spread.
type Embedder struct{}

var _ ai.Embedder = (*Embedder)(nil)

// NewEmbedder creates the local hash embedder.
//
// Returns ai.Embedder interface to enforce abstraction.
func NewEmbedder() ai.Embedder {
	return &Embedder{}
}

// EmbedText generates a deterministic embedding for a single text string.
// It never fails; token-less input yields the all-zero vector.
func (e *Embedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	return Embed(text), nil
}

// EmbedTexts generates embeddings for multiple text strings.
func (e *Embedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = Embed(text)
	}
	return vectors, nil
}

// Embed maps text to a unit-length Dim-dimensional vector.
//
// The text is lower-cased and split on whitespace; the token at position i
// contributes 1/(i+1) to the bucket its hash selects, so words near the start
// of an entry weigh more (diary openings tend to state the main topic). The
// accumulated vector is divided by its Euclidean norm; if the norm is zero
// (empty or whitespace-only input) the zero vector is returned as-is, which
// downstream scoring reads as "no information".
//
// Calling Embed twice with the same input always returns the same vector.
func Embed(text string) []float32 {
	vector := make([]float32, Dim)

	words := strings.Fields(strings.ToLower(text))
	for i, word := range words {
		vector[hashWord(word)%Dim] += 1 / float32(i+1)
	}

	var sumSquares float64
	for _, v := range vector {
		sumSquares += float64(v) * float64(v)
	}
	norm := math.Sqrt(sumSquares)
	if norm == 0 {
		return vector
	}
	for i := range vector {
		vector[i] = float32(float64(vector[i]) / norm)
	}
	return vector
}

// hashWord is a polynomial rolling hash (base 31) truncated to 32 bits.
// Any stable hash with a reasonable spread over Dim buckets would do.
func hashWord(word string) int {
	var h int32
	for _, r := range word {
		h = h*31 + int32(r)
	}
	return int(uint32(h))
}
