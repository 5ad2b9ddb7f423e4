package server

import "sync/atomic"

// Readiness tracks whether the server accepts new traffic.
type Readiness struct {
	ready atomic.Bool
}

// NewReadiness returns a Readiness in the given state.
func NewReadiness(ready bool) *Readiness {
	r := &Readiness{}
	r.ready.Store(ready)
	return r
}

// Ready reports the current state.
func (r *Readiness) Ready() bool {
	return r.ready.Load()
}

// Set changes the current state.
func (r *Readiness) Set(ready bool) {
	r.ready.Store(ready)
}
