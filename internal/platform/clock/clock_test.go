package clock

import (
	"sync"
	"testing"
	"time"
)

func TestFake_Advance(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := Fake(start)

	if got := c.Now(); !got.Equal(start) {
		t.Errorf("Now() = %v, want %v", got, start)
	}

	c.Advance(1500 * time.Millisecond)
	if got, want := c.Now(), start.Add(1500*time.Millisecond); !got.Equal(want) {
		t.Errorf("Now() after Advance = %v, want %v", got, want)
	}

	c.Set(start)
	if got := c.Now(); !got.Equal(start) {
		t.Errorf("Now() after Set = %v, want %v", got, start)
	}
}

func TestFake_ConcurrentAdvance(t *testing.T) {
	t.Parallel()

	start := time.Unix(0, 0)
	c := Fake(start)

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Advance(time.Millisecond)
		}()
	}
	wg.Wait()

	if got, want := c.Now().Sub(start), 50*time.Millisecond; got != want {
		t.Errorf("elapsed = %v, want %v", got, want)
	}
}

func TestReal_Monotonic(t *testing.T) {
	t.Parallel()

	c := Real()
	a := c.Now()
	b := c.Now()
	if b.Before(a) {
		t.Errorf("Real clock went backwards: %v then %v", a, b)
	}
}
