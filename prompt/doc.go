// Package prompt turns a user message into an LLM prompt enriched with the
// most relevant entries from that user's diary history. Empty retrieval
// results pass the message through unchanged.
package prompt
