// SPDX-License-Identifier: GPL-3.0-or-later
package purge

import (
	"io"

	"github.com/angryadmin/gmailpurge/domain"

	"github.com/sirupsen/logrus"
)

func u32(val int) uint32 {
	return uint32(val)
}

func u32a(val ...int) []uint32 {
	a := []uint32{}
	for _, v := range val {
		a = append(a, u32(v))
	}

	return a
}

func nullLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// recordingSink collects events synchronously for assertions.
type recordingSink struct {
	events []domain.Event
}

func (s *recordingSink) Emit(ev domain.Event) {
	s.events = append(s.events, ev)
}

func (s *recordingSink) logMessages() []string {
	messages := []string{}
	for _, ev := range s.events {
		if logEvent, ok := ev.(domain.LogEvent); ok {
			messages = append(messages, logEvent.Message)
		}
	}
	return messages
}
