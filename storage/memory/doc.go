// Package memory implements storage.ContextRepository as a mutex-guarded
// in-process map. It is the default backend: state lives for the process
// lifetime only, and new users are lazily seeded with the demo corpus on
// their first read.
package memory
