package muxguard

import "sync"

// slot is a compute-once-on-first-access cell holding one connection handle.
// Exactly one slot is current per guard at any instant; replacement installs
// a fresh slot rather than mutating the old one.
type slot[H any] struct {
	connect ConnectFunc[H]

	mu     sync.Mutex
	handle H
	ready  bool
}

func newSlot[H any](connect ConnectFunc[H]) *slot[H] {
	return &slot[H]{connect: connect}
}

// get materializes the handle on first access. Concurrent first callers
// serialize on mu, so the factory runs at most once per success. A factory
// error is returned without being cached: the next access retries, keeping
// the slot usable after a transient startup failure.
func (s *slot[H]) get() (H, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ready {
		return s.handle, nil
	}

	h, err := s.connect()
	if err != nil {
		var zero H
		return zero, err
	}

	s.handle = h
	s.ready = true

	return h, nil
}

// materialized returns the handle if the factory ever ran successfully.
func (s *slot[H]) materialized() (H, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.handle, s.ready
}
