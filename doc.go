// The [muxguard] package guards a single shared handle to a networked store
// connection against transient connection failures.
//
// # The problem
//
// Multiplexing store clients maintain their own connection internally and
// usually recover from short outages on their own. Tearing the client down
// and rebuilding it on every observed error defeats that self-healing and can
// turn a blip into a reconnect storm. Never rebuilding it, on the other hand,
// leaves the application stuck when the client's internal recovery has
// genuinely failed.
//
// [Guard] sits between the two: it owns the shared handle and, when callers
// report connection failures, decides whether to leave the handle alone or to
// swap in a fresh one. Two thresholds drive the decision:
//
//   - a minimum interval between two actual handle replacements, so that the
//     guard itself can never thrash, and
//   - an error confirmation window: errors must have persisted for at least
//     this long, with no gap between consecutive reports longer than it,
//     before the guard intervenes.
//
// # Usage
//
// Construct a [Guard] with [New], giving it the connect and close functions
// of your store client. Obtain the handle with [Guard.Current] before every
// operation, and call [Guard.OnConnectionFailure] whenever an operation fails
// with a connection-level error (not a command timeout). Handle references
// become invalid once the guard replaces them, so always re-fetch
// [Guard.Current] after reporting a failure instead of retrying a retained
// reference.
//
// The guard never detects failures itself and never retries commands;
// classifying an error as a connection failure is the caller's job. For
// Redis-backed applications, [github.com/muxguard/muxguard.go/pkg/redisconn]
// provides the classification helper and ready-made guard wiring; for raw
// WebSocket handles, see [github.com/muxguard/muxguard.go/contrib/wsguard].
package muxguard
