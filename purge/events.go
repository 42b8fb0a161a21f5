// SPDX-License-Identifier: GPL-3.0-or-later
package purge

import (
	"sync"

	"github.com/angryadmin/gmailpurge/domain"
)

// EventSink receives progress events from a running job. Emit must never
// block the worker, whatever the consumer is doing.
type EventSink interface {
	Emit(ev domain.Event)
}

// eventQueue is an unbounded sink: the worker appends under a mutex and a
// pump goroutine forwards to the consumer channel in emission order.
type eventQueue struct {
	mu     sync.Mutex
	events []domain.Event
	closed bool

	notify chan struct{}
}

func newEventQueue() *eventQueue {
	return &eventQueue{
		notify: make(chan struct{}, 1),
	}
}

func (q *eventQueue) Emit(ev domain.Event) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.events = append(q.events, ev)
	q.mu.Unlock()

	q.wake()
}

func (q *eventQueue) close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	q.wake()
}

func (q *eventQueue) wake() {
	select {
	case q.notify <- struct{}{}:
	default:
	}
}

// drainTo forwards events until the queue is closed and empty, then closes
// out. Run on its own goroutine; only this side blocks on the consumer.
func (q *eventQueue) drainTo(out chan<- domain.Event) {
	defer close(out)

	for {
		q.mu.Lock()
		events := q.events
		q.events = nil
		closed := q.closed
		q.mu.Unlock()

		for _, ev := range events {
			out <- ev
		}

		if closed {
			q.mu.Lock()
			empty := len(q.events) == 0
			q.mu.Unlock()
			if empty {
				return
			}
			continue
		}

		<-q.notify
	}
}
