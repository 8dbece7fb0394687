// Package monologue plays the friend's opening lines on a timer. The player
// cannot type until the queue has drained.
package monologue

import (
	"context"
	"sync"
	"time"
	"unicode/utf8"
)

// RunesPerSecond sets the reading pause added per line: one extra whole
// second for every 20 runes.
const RunesPerSecond = 20

// Item is one scheduled line.
type Item struct {
	Text  string
	Delay time.Duration // wait before delivering Text
}

// Queue is an ordered list of timed lines. A paused queue keeps the
// unspent part of the current delay until it is resumed.
type Queue struct {
	items []Item
	after func(time.Duration) <-chan time.Time
	now   func() time.Time

	mu     sync.Mutex
	paused bool
	wake   chan struct{}
}

// New schedules lines with interval plus a reading pause before each.
func New(lines []string, interval time.Duration) *Queue {
	items := make([]Item, len(lines))
	for i, text := range lines {
		items[i] = Item{Text: text, Delay: DelayFor(text, interval)}
	}
	return &Queue{
		items: items,
		after: time.After,
		now:   time.Now,
		wake:  make(chan struct{}, 1),
	}
}

// DelayFor returns the pause before text is spoken.
func DelayFor(text string, interval time.Duration) time.Duration {
	extra := utf8.RuneCountInString(text) / RunesPerSecond
	return interval + time.Duration(extra)*time.Second
}

// Items returns the schedule.
func (q *Queue) Items() []Item {
	out := make([]Item, len(q.items))
	copy(out, q.items)
	return out
}

// Total is the time from Run until the last line.
func (q *Queue) Total() time.Duration {
	var d time.Duration
	for _, it := range q.items {
		d += it.Delay
	}
	return d
}

// Pause stops or restarts the clock. It is safe to call at any time, even
// after the queue has drained.
func (q *Queue) Pause(paused bool) {
	q.mu.Lock()
	q.paused = paused
	q.mu.Unlock()
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// Paused reports whether the clock is stopped.
func (q *Queue) Paused() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.paused
}

// Run delivers each line on the returned channel after its delay and closes
// the channel after the last one, or as soon as ctx is done.
func (q *Queue) Run(ctx context.Context) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)
		for _, it := range q.items {
			if !q.wait(ctx, it.Delay) {
				return
			}
			select {
			case <-ctx.Done():
				return
			case out <- it.Text:
			}
		}
	}()
	return out
}

// wait sleeps for d of unpaused time and reports false if ctx ends first.
func (q *Queue) wait(ctx context.Context, d time.Duration) bool {
	for d > 0 {
		if q.Paused() {
			select {
			case <-ctx.Done():
				return false
			case <-q.wake:
			}
			continue
		}
		start := q.now()
		select {
		case <-ctx.Done():
			return false
		case <-q.after(d):
			return true
		case <-q.wake:
			d -= q.now().Sub(start)
		}
	}
	return ctx.Err() == nil
}
