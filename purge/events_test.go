// SPDX-License-Identifier: GPL-3.0-or-later
package purge

import (
	"fmt"
	"testing"
	"time"

	"github.com/angryadmin/gmailpurge/domain"

	"github.com/stretchr/testify/assert"
)

func TestEventQueue_EmitNeverBlocks(t *testing.T) {
	queue := newEventQueue()

	// Nobody is draining; a thousand emits must still return promptly.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			queue.Emit(domain.LogEvent{Message: fmt.Sprintf("event %d", i)})
		}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Emit blocked without a consumer")
	}
}

func TestEventQueue_PreservesOrder(t *testing.T) {
	queue := newEventQueue()

	for i := 0; i < 50; i++ {
		queue.Emit(domain.CountResultEvent{Folder: "INBOX", Count: i})
	}
	queue.close()

	out := make(chan domain.Event)
	go queue.drainTo(out)

	i := 0
	for ev := range out {
		assert.Equal(t, domain.CountResultEvent{Folder: "INBOX", Count: i}, ev)
		i++
	}
	assert.Equal(t, 50, i)
}

func TestEventQueue_ClosesOutputWhenDone(t *testing.T) {
	queue := newEventQueue()
	out := make(chan domain.Event)
	go queue.drainTo(out)

	queue.Emit(domain.LogEvent{Message: "one"})
	queue.close()

	events := []domain.Event{}
	for ev := range out {
		events = append(events, ev)
	}
	assert.Equal(t, []domain.Event{domain.LogEvent{Message: "one"}}, events)

	// Emitting after close is a silent no-op.
	queue.Emit(domain.LogEvent{Message: "late"})
}

func TestToken(t *testing.T) {
	token := NewToken()
	assert.False(t, token.Stopped())

	token.Stop()
	assert.True(t, token.Stopped())

	// Stop is idempotent.
	token.Stop()
	assert.True(t, token.Stopped())
}
