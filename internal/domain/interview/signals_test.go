package interview

import (
	"sync"
	"testing"
)

func TestSignals_TakeSkipConsumesFlag(t *testing.T) {
	var s Signals

	if s.TakeSkip() {
		t.Error("fresh signals should carry no skip")
	}

	s.RequestSkip()
	if !s.TakeSkip() {
		t.Error("requested skip was not observed")
	}
	if s.TakeSkip() {
		t.Error("skip must be cleared after one take")
	}
}

func TestSignals_StopIsSticky(t *testing.T) {
	var s Signals

	if s.Stopped() {
		t.Error("fresh signals should carry no stop")
	}

	s.RequestStop()
	if !s.Stopped() {
		t.Error("requested stop was not observed")
	}
	if !s.Stopped() {
		t.Error("stop must remain set once requested")
	}
}

func TestSignals_ConcurrentTakeSkipIsExclusive(t *testing.T) {
	var s Signals
	s.RequestSkip()

	const goroutines = 16
	var wg sync.WaitGroup
	taken := make(chan bool, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			taken <- s.TakeSkip()
		}()
	}
	wg.Wait()
	close(taken)

	count := 0
	for ok := range taken {
		if ok {
			count++
		}
	}
	if count != 1 {
		t.Errorf("exactly one goroutine should consume the skip, got %d", count)
	}
}
