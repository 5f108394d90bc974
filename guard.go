package muxguard

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/muxguard/muxguard.go/pkg/logger"
)

// ConnectFunc creates a fresh handle to the backing store. It is invoked
// lazily, on the first [Guard.Current] call after construction or after a
// replacement, never during construction itself.
type ConnectFunc[H any] func() (H, error)

// CloseFunc releases a handle. It is only ever called by the guard for
// handles the guard has superseded or is shutting down; errors it returns are
// logged and absorbed.
type CloseFunc[H any] func(H) error

const (
	// DefaultMinReconnectInterval is the minimum time between two actual
	// handle replacements when Params.MinReconnectInterval is left zero.
	DefaultMinReconnectInterval = 10 * time.Second

	// DefaultErrorConfirmationWindow is the default for
	// Params.ErrorConfirmationWindow.
	DefaultErrorConfirmationWindow = 5 * time.Second
)

// State is the observable condition of a Guard.
type State int

const (
	StateUnknown State = iota

	// StateIdle means no unresolved error streak is open.
	StateIdle

	// StateFailing means connection failures have been reported and the
	// guard is waiting to see whether they persist long enough to warrant
	// a replacement.
	StateFailing

	// StateClosed is terminal, reached only via Guard.Close.
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateFailing:
		return "Failing"
	case StateClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// Params configures a Guard.
type Params[H any] struct {
	// Connect creates a fresh handle. Required.
	Connect ConnectFunc[H]

	// Close releases a superseded handle. Optional; when nil, superseded
	// handles are simply dropped.
	Close CloseFunc[H]

	// MinReconnectInterval is the minimum time between two actual handle
	// replacements. Zero or negative means DefaultMinReconnectInterval.
	MinReconnectInterval time.Duration

	// ErrorConfirmationWindow is both the minimum duration errors must
	// persist and the maximum gap allowed between consecutive errors
	// before a replacement fires. Zero or negative means
	// DefaultErrorConfirmationWindow.
	ErrorConfirmationWindow time.Duration

	// Logger receives decision outcomes. Optional; defaults to a no-op
	// logger.
	Logger logger.Logger
}

// Guard owns a lazily-created, shared connection handle and decides, under
// concurrent failure reports, whether to replace it.
//
// All methods are safe for concurrent use. Callers must treat handles
// obtained from Current as borrowed: a handle becomes permanently invalid,
// without notice, once the guard replaces it.
type Guard[H any] struct {
	connect     ConnectFunc[H]
	closeHandle CloseFunc[H]

	minReconnectInterval    time.Duration
	errorConfirmationWindow time.Duration

	logger logger.Logger

	// now is swapped out by tests.
	now func() time.Time

	// current is the one handle slot. Swapped only while holding mu;
	// read lock-free by Current.
	current atomic.Pointer[slot[H]]

	// lastReconnectNanos is when the last replacement happened, in Unix
	// nanoseconds, 0 meaning never. Read without mu on the fast path of
	// OnConnectionFailure; that read may be stale, correctness relies
	// only on the re-check under mu.
	lastReconnectNanos atomic.Int64

	mu              sync.Mutex
	firstErrorAt    time.Time // zero iff no error streak is open
	previousErrorAt time.Time
	closed          bool
}

// New constructs a Guard around the given connect/close pair. The initial
// handle is not materialized until the first Current call, so New never
// touches the network: a transient startup failure surfaces on first use
// instead of failing construction.
func New[H any](params Params[H]) (*Guard[H], error) {
	if params.Connect == nil {
		return nil, ErrNilConnectFunc
	}

	g := &Guard[H]{
		connect:                 params.Connect,
		closeHandle:             params.Close,
		minReconnectInterval:    params.MinReconnectInterval,
		errorConfirmationWindow: params.ErrorConfirmationWindow,
		logger:                  params.Logger,
		now:                     time.Now,
	}
	if g.minReconnectInterval <= 0 {
		g.minReconnectInterval = DefaultMinReconnectInterval
	}
	if g.errorConfirmationWindow <= 0 {
		g.errorConfirmationWindow = DefaultErrorConfirmationWindow
	}
	if g.logger == nil {
		g.logger = logger.Nop()
	}
	g.current.Store(newSlot(g.connect))

	return g, nil
}

// Current returns the current handle, materializing it on first use.
// Concurrent first callers materialize at most one handle. A materialization
// failure is returned to the caller and retried on the next call; it is not
// cached.
func (g *Guard[H]) Current() (H, error) {
	return g.current.Load().get()
}

// OnConnectionFailure reports one observed connection failure and lets the
// guard decide whether to replace the current handle. Call it exactly when
// the store client signals a broken connection, never for plain command
// timeouts.
//
// A single isolated failure only opens an error streak. The handle is
// replaced once failures have persisted for at least the error confirmation
// window with no gap between consecutive reports exceeding that window, and
// at most once per minimum reconnect interval. Note the second clause means
// a streak that went quiet without ever firing is cleared only by an eventual
// replacement; later isolated reports keep extending it without firing.
//
// Never returns an error and never panics; replacement failures surface on
// the next Current call, close failures are logged.
func (g *Guard[H]) OnConnectionFailure() {
	now := g.now()

	// Errors arriving faster than the reconnect interval are the common
	// case; keep them lock-free.
	if g.withinMinReconnectInterval(now) {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return
	}

	// A racing caller may have replaced the handle between the fast path
	// and acquiring the lock.
	if g.withinMinReconnectInterval(now) {
		return
	}

	if g.firstErrorAt.IsZero() {
		g.firstErrorAt = now
		g.previousErrorAt = now
		g.logger.Debug("connection error streak opened")
		return
	}

	elapsedSinceFirstError := now.Sub(g.firstErrorAt)
	elapsedSinceMostRecentError := now.Sub(g.previousErrorAt)
	g.previousErrorAt = now

	if elapsedSinceFirstError < g.errorConfirmationWindow {
		// Give the client library time to recover on its own.
		g.logger.Debug("connection errors not yet confirmed",
			"elapsed_since_first_error", elapsedSinceFirstError,
			"error_confirmation_window", g.errorConfirmationWindow)
		return
	}

	if elapsedSinceMostRecentError > g.errorConfirmationWindow {
		// The streak went quiet in the meantime; reconnecting now would
		// act on decayed information.
		g.logger.Debug("ignoring stale connection error streak",
			"elapsed_since_most_recent_error", elapsedSinceMostRecentError,
			"error_confirmation_window", g.errorConfirmationWindow)
		return
	}

	g.replaceLocked(now)
}

// Close releases the then-current handle, best-effort. The guard is terminal
// afterwards: no further replacement occurs even if OnConnectionFailure is
// called again. Safe to call more than once.
func (g *Guard[H]) Close() {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return
	}
	g.closed = true
	s := g.current.Load()
	g.mu.Unlock()

	g.closeSlot(s)
}

// State reports the guard's observable condition.
func (g *Guard[H]) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch {
	case g.closed:
		return StateClosed
	case !g.firstErrorAt.IsZero():
		return StateFailing
	default:
		return StateIdle
	}
}

func (g *Guard[H]) withinMinReconnectInterval(now time.Time) bool {
	last := g.lastReconnectNanos.Load()
	return last != 0 && now.Sub(time.Unix(0, last)) < g.minReconnectInterval
}

// replaceLocked swaps in a fresh, not-yet-materialized slot and closes the
// superseded handle in the background, so that slow teardown of the old
// handle never blocks other failure reports. Callers must hold mu.
func (g *Guard[H]) replaceLocked(now time.Time) {
	g.firstErrorAt = time.Time{}
	g.previousErrorAt = time.Time{}
	g.lastReconnectNanos.Store(now.UnixNano())

	old := g.current.Swap(newSlot(g.connect))
	g.logger.Info("replacing store connection handle")

	go g.closeSlot(old)
}

// closeSlot releases the slot's handle if one was ever materialized.
// Teardown is best-effort: failures are logged, never propagated.
func (g *Guard[H]) closeSlot(s *slot[H]) {
	h, ok := s.materialized()
	if !ok || g.closeHandle == nil {
		return
	}
	if err := g.closeHandle(h); err != nil {
		g.logger.Error("failed to close connection handle", "error", err)
	}
}
