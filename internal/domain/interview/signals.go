package interview

import "sync/atomic"

// Signals carries the external skip/stop control flags for one session. The
// presentation layer sets them from its own goroutines; the controller only
// guarantees they are observed no later than its next checkpoint.
type Signals struct {
	skip atomic.Bool
	stop atomic.Bool
}

// RequestSkip marks the current question to be skipped.
func (s *Signals) RequestSkip() {
	s.skip.Store(true)
}

// RequestStop asks the controller to end the run at its next checkpoint.
func (s *Signals) RequestStop() {
	s.stop.Store(true)
}

// TakeSkip consumes a pending skip request: it reports whether skip was
// requested and clears the flag, so exactly one question is affected.
func (s *Signals) TakeSkip() bool {
	return s.skip.Swap(false)
}

// Stopped reports whether a stop has been requested. Stop is never cleared:
// Terminated is absorbing.
func (s *Signals) Stopped() bool {
	return s.stop.Load()
}
