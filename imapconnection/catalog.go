// SPDX-License-Identifier: GPL-3.0-or-later
package imapconnection

import (
	"fmt"

	"github.com/angryadmin/gmailpurge/domain"

	"github.com/emersion/go-imap"
)

// Virtual mailboxes that make no sense as purge targets: the aggregate
// [Gmail] container cannot be selected, and Notes holds synced device notes.
// Trash, Spam, Drafts and Sent stay selectable on purpose.
var excludedFolders = map[string]bool{
	"[Gmail]": true,
	"Notes":   true,
}

// ListFolders returns the purgeable mailboxes in server order.
func (ic *ImapConnection) ListFolders() ([]domain.Folder, error) {
	mailboxes := make(chan *imap.MailboxInfo, 10)
	done := make(chan error, 1)
	go func() {
		done <- ic.connection.List("", "*", mailboxes)
	}()

	folders := []domain.Folder{}
	for m := range mailboxes {
		if excludedFolders[m.Name] {
			continue
		}

		folders = append(
			folders,
			domain.Folder{
				Name:       m.Name,
				Selectable: selectable(m),
			},
		)
	}

	err := <-done
	if err != nil {
		return nil, domain.WrapError(domain.ErrProtocol, fmt.Errorf("could not list folders: %w", err))
	}

	ic.l.WithField("folders", len(folders)).Debug("Listed folders")
	return folders, nil
}

func selectable(m *imap.MailboxInfo) bool {
	for _, attr := range m.Attributes {
		if attr == imap.NoSelectAttr {
			return false
		}
	}
	return true
}
