package domain

import "sync"

// ByteTotal is the running byte count shared between the sweep loop and
// the asynchronous interrupt handler. Both sides must go through the
// lock; a plain shared variable would be a data race.
type ByteTotal struct {
	mu    sync.Mutex
	bytes uint64
}

// NewByteTotal creates an empty accumulator.
func NewByteTotal() *ByteTotal {
	return &ByteTotal{}
}

// Add adds n bytes to the total.
func (t *ByteTotal) Add(n uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.bytes += n
}

// Bytes returns the current total.
func (t *ByteTotal) Bytes() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.bytes
}
