package server

import (
	"sync"
	"testing"
	"time"
)

func TestReachabilityStatusTransitions(t *testing.T) {
	status := newReachabilityStatus()
	if !status.IsOk() {
		t.Fatalf("expected a new status to start reachable")
	}
	if status.Set(true) {
		t.Errorf("expected repeating the current observation to report no change")
	}
	if !status.Set(false) {
		t.Errorf("expected the first failure observation to report a change")
	}
	if status.IsOk() {
		t.Errorf("expected the status to be down after a failure observation")
	}
	if status.IsDownFor(time.Minute) {
		t.Errorf("expected a fresh outage to not count as down for a minute")
	}
	if !status.IsDownFor(0) {
		t.Errorf("expected a down status to count as down for a zero duration")
	}
	if !status.Set(true) {
		t.Errorf("expected recovery to report a change")
	}
	if status.IsDownFor(0) {
		t.Errorf("expected a recovered status to not count as down")
	}
}

func TestReachabilityStatusConcurrentAccess(t *testing.T) {
	status := newReachabilityStatus()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(ok bool) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				status.Set(ok)
			}
		}(i%2 == 0)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				status.IsOk()
				status.IsDownFor(time.Minute)
			}
		}()
	}
	wg.Wait()
}
