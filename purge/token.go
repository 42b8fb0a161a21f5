// SPDX-License-Identifier: GPL-3.0-or-later
package purge

import "sync/atomic"

// Token is the cooperative stop signal for one job. Setting it is a request:
// the worker notices at its next check point between protocol round-trips,
// never mid-call.
type Token struct {
	stopped atomic.Bool
}

func NewToken() *Token {
	return &Token{}
}

func (t *Token) Stop() {
	t.stopped.Store(true)
}

func (t *Token) Stopped() bool {
	return t.stopped.Load()
}
