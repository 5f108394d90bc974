// Package mock provides a fake store handle and a counting factory for
// exercising the guard without a real client library.
package mock

import (
	"sync"
	"sync/atomic"
)

// Handle is a fake store connection that records how often it was closed.
type Handle struct {
	ID     int
	closes atomic.Int32
}

func (h *Handle) Close() error {
	h.closes.Add(1)
	return nil
}

// Closes reports how many times Close was called on this handle.
func (h *Handle) Closes() int {
	return int(h.closes.Load())
}

// Factory materializes Handles and counts every invocation, so tests can
// verify how many handles a guard actually created.
type Factory struct {
	mu       sync.Mutex
	handles  []*Handle
	nextErrs []error
}

func NewFactory() *Factory {
	return &Factory{}
}

// Connect materializes a new fake handle, or returns the next queued error.
func (f *Factory) Connect() (*Handle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.nextErrs) > 0 {
		err := f.nextErrs[0]
		f.nextErrs = f.nextErrs[1:]
		return nil, err
	}

	h := &Handle{ID: len(f.handles) + 1}
	f.handles = append(f.handles, h)

	return h, nil
}

// FailNext queues err to be returned by the next Connect call.
func (f *Factory) FailNext(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextErrs = append(f.nextErrs, err)
}

// Connects reports how many handles were successfully materialized.
func (f *Factory) Connects() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.handles)
}

// Handles returns the materialized handles in creation order.
func (f *Factory) Handles() []*Handle {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*Handle(nil), f.handles...)
}

// CloseHandle is the CloseFunc counterpart to Factory.Connect.
func CloseHandle(h *Handle) error {
	return h.Close()
}
