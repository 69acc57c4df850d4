// Package scheduler provides an ordered, single-consumer event queue with
// delayed delivery. Producers call Post or PostAfter from any goroutine; one
// consumer drains events with Next or Run, so whatever state the consumer
// owns is only ever touched by one goroutine.
package scheduler

import (
	"container/heap"
	"context"
	"errors"
	"sync"
	"time"
)

// ErrClosed is returned once the scheduler has been closed.
var ErrClosed = errors.New("scheduler: closed")

// Scheduler delivers events of type E in order.
// Immediate events keep their posting order. Delayed events are released
// when due, ordered by due time and then by posting order, and queue up
// behind events that were already ready. Delayed events cannot be cancelled.
type Scheduler[E any] struct {
	mu      sync.Mutex
	ready   []E
	delayed delayQueue[E]
	seq     uint64
	closed  bool
	wake    chan struct{}
	now     func() time.Time
}

// New creates an empty scheduler.
func New[E any]() *Scheduler[E] {
	return &Scheduler[E]{
		wake: make(chan struct{}, 1),
		now:  time.Now,
	}
}

// Post queues an event for immediate delivery.
func (s *Scheduler[E]) Post(ev E) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	s.ready = append(s.ready, ev)
	s.signal()
	return nil
}

// PostAfter queues an event for delivery once delay has elapsed.
// A non-positive delay is the same as Post.
func (s *Scheduler[E]) PostAfter(delay time.Duration, ev E) error {
	if delay <= 0 {
		return s.Post(ev)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	s.seq++
	heap.Push(&s.delayed, delayed[E]{due: s.now().Add(delay), seq: s.seq, ev: ev})
	s.signal()
	return nil
}

// signal wakes a waiting consumer. Caller holds mu.
func (s *Scheduler[E]) signal() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Next blocks until an event is available and returns it.
// It returns ErrClosed after Close, or the context error if ctx ends first.
func (s *Scheduler[E]) Next(ctx context.Context) (E, error) {
	var zero E

	for {
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			return zero, ErrClosed
		}

		s.releaseDue()
		if len(s.ready) > 0 {
			ev := s.ready[0]
			s.ready[0] = zero
			s.ready = s.ready[1:]
			s.mu.Unlock()
			return ev, nil
		}

		// Nothing ready: sleep until the earliest timer or a new post
		var timer *time.Timer
		var timerC <-chan time.Time
		if s.delayed.Len() > 0 {
			timer = time.NewTimer(s.delayed[0].due.Sub(s.now()))
			timerC = timer.C
		}
		s.mu.Unlock()

		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return zero, ctx.Err()
		case <-s.wake:
		case <-timerC:
		}
		if timer != nil {
			timer.Stop()
		}
	}
}

// releaseDue moves every delayed event whose time has come to the ready
// queue. Caller holds mu.
func (s *Scheduler[E]) releaseDue() {
	now := s.now()
	for s.delayed.Len() > 0 && !s.delayed[0].due.After(now) {
		item := heap.Pop(&s.delayed).(delayed[E])
		s.ready = append(s.ready, item.ev)
	}
}

// Run drains events one at a time into handle until handle returns false,
// the scheduler is closed, or ctx ends. Closing the scheduler is a normal
// shutdown and returns nil.
func (s *Scheduler[E]) Run(ctx context.Context, handle func(E) bool) error {
	for {
		ev, err := s.Next(ctx)
		if errors.Is(err, ErrClosed) {
			return nil
		}
		if err != nil {
			return err
		}
		if !handle(ev) {
			return nil
		}
	}
}

// Close stops delivery. Queued and delayed events are dropped and later
// posts fail with ErrClosed.
func (s *Scheduler[E]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.ready = nil
	s.delayed = nil
	s.signal()
}

// Pending returns the number of queued events, ready or delayed.
func (s *Scheduler[E]) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ready) + s.delayed.Len()
}

// delayed is one event waiting for its due time.
type delayed[E any] struct {
	due time.Time
	seq uint64
	ev  E
}

// delayQueue is a min-heap ordered by due time, then posting order.
type delayQueue[E any] []delayed[E]

func (q delayQueue[E]) Len() int { return len(q) }

func (q delayQueue[E]) Less(i, j int) bool {
	if q[i].due.Equal(q[j].due) {
		return q[i].seq < q[j].seq
	}
	return q[i].due.Before(q[j].due)
}

func (q delayQueue[E]) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *delayQueue[E]) Push(x any) {
	*q = append(*q, x.(delayed[E]))
}

func (q *delayQueue[E]) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
