// Package trends aggregates a user's stored diary context into a report of
// recurring themes, a three-way emotional pattern label, and rule-based
// suggestions. It reads from storage only; no AI services are involved.
package trends
