// Package ingestion turns raw diary entries into enriched context records.
//
// Writes go to storage synchronously; embedding generation and emotion
// analysis run afterwards on worker pools, so a slow or unavailable AI
// backend never blocks the write path. The retrieval layer tolerates records
// whose enrichment has not landed yet by embedding content on the fly.
package ingestion
