package monologue

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"
)

// instant returns a fake clock that fires immediately and records waits.
func instant() (func(time.Duration) <-chan time.Time, *[]time.Duration, *sync.Mutex) {
	var mu sync.Mutex
	var waits []time.Duration
	return func(d time.Duration) <-chan time.Time {
		mu.Lock()
		waits = append(waits, d)
		mu.Unlock()
		ch := make(chan time.Time, 1)
		ch <- time.Time{}
		return ch
	}, &waits, &mu
}

func TestDelayFor(t *testing.T) {
	cases := []struct {
		name string
		text string
		want time.Duration
	}{
		{"short line", "Hi!", 2 * time.Second},
		{"19 runes", strings.Repeat("a", 19), 2 * time.Second},
		{"20 runes", strings.Repeat("a", 20), 3 * time.Second},
		{"45 runes", strings.Repeat("a", 45), 4 * time.Second},
		{"counts runes not bytes", strings.Repeat("é", 20), 3 * time.Second},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DelayFor(tc.text, 2*time.Second); got != tc.want {
				t.Errorf("DelayFor = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRunDeliversInOrder(t *testing.T) {
	lines := []string{"Hello?", "Can you hear me?", strings.Repeat("x", 40)}
	q := New(lines, time.Second)
	after, waits, mu := instant()
	q.after = after

	var got []string
	for text := range q.Run(context.Background()) {
		got = append(got, text)
	}
	if strings.Join(got, "|") != strings.Join(lines, "|") {
		t.Fatalf("delivered %q, want %q", got, lines)
	}

	mu.Lock()
	defer mu.Unlock()
	want := []time.Duration{time.Second, time.Second, 3 * time.Second}
	if len(*waits) != len(want) {
		t.Fatalf("waited %d times, want %d", len(*waits), len(want))
	}
	for i, d := range want {
		if (*waits)[i] != d {
			t.Errorf("wait[%d] = %v, want %v", i, (*waits)[i], d)
		}
	}
	if q.Total() != 5*time.Second {
		t.Errorf("Total = %v, want 5s", q.Total())
	}
}

func TestRunEmptyClosesImmediately(t *testing.T) {
	q := New(nil, time.Second)
	select {
	case _, ok := <-q.Run(context.Background()):
		if ok {
			t.Fatal("empty queue delivered a line")
		}
	case <-time.After(time.Second):
		t.Fatal("empty queue did not close")
	}
}

func TestRunCancel(t *testing.T) {
	q := New([]string{"one", "two"}, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	ch := q.Run(ctx)
	cancel()
	select {
	case _, ok := <-ch:
		if ok {
			t.Fatal("cancelled queue delivered a line")
		}
	case <-time.After(time.Second):
		t.Fatal("cancelled queue did not close")
	}
}

func TestPauseHoldsRemainingDelay(t *testing.T) {
	q := New([]string{"a"}, 10*time.Second)
	asked := make(chan time.Duration, 4)
	fire := make(chan time.Time)
	clock := make(chan time.Time)
	q.after = func(d time.Duration) <-chan time.Time {
		asked <- d
		return fire
	}
	q.now = func() time.Time { return <-clock }

	t0 := time.Unix(0, 0)
	ch := q.Run(context.Background())
	clock <- t0
	if d := <-asked; d != 10*time.Second {
		t.Fatalf("first wait = %v, want 10s", d)
	}

	q.Pause(true)
	clock <- t0.Add(4 * time.Second)
	q.Pause(false)
	// A long pause must not count against the delay.
	clock <- t0.Add(100 * time.Second)
	if d := <-asked; d != 6*time.Second {
		t.Fatalf("wait after resume = %v, want 6s", d)
	}

	fire <- time.Time{}
	if text := <-ch; text != "a" {
		t.Errorf("delivered %q, want a", text)
	}
	if _, ok := <-ch; ok {
		t.Error("queue did not close after the last line")
	}
}

func TestPauseAfterDrainDoesNotBlock(t *testing.T) {
	q := New(nil, time.Second)
	for range q.Run(context.Background()) {
	}
	q.Pause(true)
	q.Pause(false)
	if q.Paused() {
		t.Error("Paused = true after resume")
	}
}

func TestRunCancelWhilePaused(t *testing.T) {
	q := New([]string{"one"}, time.Hour)
	q.Pause(true)
	ctx, cancel := context.WithCancel(context.Background())
	ch := q.Run(ctx)
	cancel()
	select {
	case _, ok := <-ch:
		if ok {
			t.Fatal("paused queue delivered a line")
		}
	case <-time.After(time.Second):
		t.Fatal("paused queue did not close on cancel")
	}
}

func TestItemsIsACopy(t *testing.T) {
	q := New([]string{"a"}, time.Second)
	items := q.Items()
	items[0].Text = "b"
	if q.Items()[0].Text != "a" {
		t.Error("Items must not expose internal storage")
	}
}
