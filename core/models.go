package core

//go:generate go run ../cmd/musgen

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for context records.
// IDs are opaque strings; they are either content-derived (demo corpus,
// deduplication) or timestamp-derived (records created at runtime).
type ID string

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	return ID(hex.EncodeToString(h.Sum(nil)))
}

// NewRecordID generates a unique ID for a record created at the given time.
// Callers are responsible for not creating two records of the same type within
// the same nanosecond.
func NewRecordID(kind RecordType, t time.Time) ID {
	return ID(fmt.Sprintf("%s-%d", kind, t.UnixNano()))
}

// RecordType tags the origin of a context record.
// It is informational only and does not affect relevance ranking.
type RecordType string

const (
	// RecordTypeDiary is a diary entry written by the user.
	RecordTypeDiary RecordType = "diary"
	// RecordTypeAnswer is an answer the user gave to a reflective question.
	RecordTypeAnswer RecordType = "answer"
	// RecordTypeReflection is a free-form reflection.
	RecordTypeReflection RecordType = "reflection"
)

// EmotionProfile represents an emotional reading of a text.
type EmotionProfile struct {
	OverallScore     float64            // 1 (very negative) to 5 (very positive); 0 until analyzed
	DominantEmotions []string           // most prominent first, up to 3 labels
	EmotionScores    map[string]float64 // per-label intensity in [0, 1]; nil when not computed
}

// ContextRecord represents one retrievable unit of user history:
// a diary entry or a prior answer to a reflective question.
// It may be enriched with an embedding and an emotion profile during processing.
type ContextRecord struct {
	Id         ID
	Content    string
	Date       time.Time // when the entry occurred
	Emotions   EmotionProfile
	Keywords   []string  // extracted terms; callers may pre-dedupe
	Embedding  []float32 // nil until computed; computed on demand during ranking
	Type       RecordType
	ParentId   ID        // record (e.g. a question) this one answers; empty when none
	InsertedAt time.Time // when the record was inserted into storage
	UpdatedAt  time.Time // when the record was last updated
}

// SearchResult represents a ranked retrieval hit with its composite relevance score.
// The score accumulates cosine similarity, keyword-overlap boost, and
// emotion-alignment boost; it has no fixed upper bound.
type SearchResult struct {
	Context        *ContextRecord
	RelevanceScore float64
}

// TrendReport summarizes a user's stored history into coarse signals
// usable for response personalization.
type TrendReport struct {
	CommonThemes     []string
	EmotionalPattern string
	Suggestions      []string
}
