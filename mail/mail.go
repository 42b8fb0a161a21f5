// SPDX-License-Identifier: GPL-3.0-or-later
package mail

import (
	"bytes"
	"fmt"
	"mime"
	stdmail "net/mail"

	"github.com/emersion/go-message/charset"
)

// Subject extracts and decodes the Subject header from a raw header block.
func Subject(rawHeader []byte) (string, error) {
	msg, err := stdmail.ReadMessage(bytes.NewReader(rawHeader))
	if err != nil {
		return "", fmt.Errorf("could not parse mail header: %w", err)
	}

	subjectHeader := msg.Header.Get("Subject")

	dec := &mime.WordDecoder{
		CharsetReader: charset.Reader,
	}
	subject, err := dec.DecodeHeader(subjectHeader)
	if err != nil {
		return "", fmt.Errorf("could not decode subject header: %w", err)
	}

	return subject, nil
}

func ShortSubject(subject string) string {
	if (len(subject)) > 30 {
		subject = subject[:30] + "..."
	}
	return subject
}
