package clock

import (
	"sync"
	"testing"
	"time"
)

func TestSystem_Now(t *testing.T) {
	before := time.Now()
	actual := System{}.Now()
	after := time.Now()

	if actual.Before(before) || actual.After(after) {
		t.Errorf("System.Now() = %v, expected between %v and %v", actual, before, after)
	}
	if actual.Location() != time.UTC {
		t.Errorf("expected UTC, got %v", actual.Location())
	}
}

func TestStepped_Now(t *testing.T) {
	start := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	t.Run("advances by step", func(t *testing.T) {
		c := NewStepped(start, time.Second)

		for i := range 3 {
			want := start.Add(time.Duration(i) * time.Second)
			if got := c.Now(); !got.Equal(want) {
				t.Errorf("call %d: got %v, want %v", i, got, want)
			}
		}
		if !c.Peek().Equal(start.Add(3 * time.Second)) {
			t.Errorf("Peek() = %v", c.Peek())
		}
	})

	t.Run("zero step is frozen", func(t *testing.T) {
		c := NewStepped(start, 0)
		c.Now()
		if got := c.Now(); !got.Equal(start) {
			t.Errorf("got %v, want %v", got, start)
		}
	})

	t.Run("concurrent readers see distinct times", func(t *testing.T) {
		c := NewStepped(start, time.Millisecond)

		var mu sync.Mutex
		seen := map[time.Time]bool{}
		var wg sync.WaitGroup
		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				now := c.Now()
				mu.Lock()
				seen[now] = true
				mu.Unlock()
			}()
		}
		wg.Wait()

		if len(seen) != 20 {
			t.Errorf("expected 20 distinct readings, got %d", len(seen))
		}
	})
}
