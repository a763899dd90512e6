package server

import (
	"sync"
	"time"
)

// reachabilityStatus tracks whether an upstream dependency is
// reachable. The watcher goroutine writes it while the readiness and
// liveness checks read it from handler goroutines, so every access
// goes through the mutex.
type reachabilityStatus struct {
	mutex         sync.Mutex
	ok            bool
	lastChangedAt time.Time
}

func newReachabilityStatus() *reachabilityStatus {
	return &reachabilityStatus{
		ok:            true,
		lastChangedAt: time.Now(),
	}
}

// Set records the latest observation and reports whether it differs
// from the previous one
func (s *reachabilityStatus) Set(ok bool) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	changed := ok != s.ok
	if changed {
		s.lastChangedAt = time.Now()
	}
	s.ok = ok
	return changed
}

func (s *reachabilityStatus) IsOk() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.ok
}

// IsDownFor is true when the dependency has been unreachable for at
// least the given duration
func (s *reachabilityStatus) IsDownFor(duration time.Duration) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return !s.ok && s.lastChangedAt.Before(time.Now().Add(-duration))
}
