// Package contrib provides additional functionality and utilities
// for the muxguard library.
//
// Everything in this directory extends the core guard with adapters and
// experiments that are not part of the core library surface, and it is
// outside of the backward compatibility guarantees of the core package.
// Changes here may introduce breaking changes without following semantic
// versioning.
//
// The [github.com/muxguard/muxguard.go/contrib/wsguard] package adapts raw
// WebSocket handles to the guard, demonstrating that the guard works with
// eagerly-dialing handles as well as lazily-connecting store clients.
package contrib
