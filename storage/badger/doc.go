// Package badger implements storage.ContextRepository on top of BadgerDB.
//
// Records are stored per user under a position-ordered key space, with a
// secondary index from record ID to position and a per-user marker key that
// tracks whether the user has been seeded. All writes for an operation happen
// in a single transaction.
package badger
