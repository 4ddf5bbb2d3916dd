package resilience

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_CollapsesConcurrentCalls(t *testing.T) {
	t.Parallel()

	var g SingleFlight
	var counter int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err, _ := g.Do("leaderboards:42", func() (any, error) {
				atomic.AddInt32(&counter, 1)
				time.Sleep(20 * time.Millisecond)
				return "built", nil
			})
			if err != nil {
				t.Errorf("singleflight call failed: %v", err)
				return
			}
			if got, _ := v.(string); got != "built" {
				t.Errorf("unexpected value: %v", v)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&counter); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
}

func TestSingleFlight_PropagatesErrors(t *testing.T) {
	t.Parallel()

	var g SingleFlight
	wantErr := errors.New("load failed")

	_, err, shared := g.Do("leaderboards:1", func() (any, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
	if shared {
		t.Fatalf("expected unshared result for a lone caller")
	}

	// The key is released after the call completes.
	v, err, _ := g.Do("leaderboards:1", func() (any, error) {
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("second call failed: %v", err)
	}
	if got, _ := v.(string); got != "ok" {
		t.Fatalf("unexpected value: %v", v)
	}
}
