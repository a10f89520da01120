// Package busy tracks whether any remote operation is in flight. A plain
// boolean flickers to "ready" when overlapping loads finish at different
// times, so the tracker counts active operations instead.
package busy

import "sync"

// Tracker is a reference-counted busy signal. The zero value is unusable;
// use New.
type Tracker struct {
	mu       sync.Mutex
	count    int
	onChange func(busy bool)
}

// New returns a Tracker. onChange, if non-nil, is invoked whenever the
// signal crosses between idle and busy (not on every Begin/End).
func New(onChange func(busy bool)) *Tracker {
	return &Tracker{onChange: onChange}
}

// Begin marks one operation as started.
func (t *Tracker) Begin() {
	t.mu.Lock()
	t.count++
	first := t.count == 1
	cb := t.onChange
	t.mu.Unlock()
	if first && cb != nil {
		cb(true)
	}
}

// End marks one operation as finished. End without a matching Begin panics:
// it means a caller cleared a signal it never set.
func (t *Tracker) End() {
	t.mu.Lock()
	if t.count == 0 {
		t.mu.Unlock()
		panic("busy: End without Begin")
	}
	t.count--
	last := t.count == 0
	cb := t.onChange
	t.mu.Unlock()
	if last && cb != nil {
		cb(false)
	}
}

// Busy reports whether at least one operation is in flight.
func (t *Tracker) Busy() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count > 0
}
