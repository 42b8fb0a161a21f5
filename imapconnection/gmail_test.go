// SPDX-License-Identifier: GPL-3.0-or-later
package imapconnection

import (
	"testing"

	"github.com/emersion/go-imap"
	"github.com/stretchr/testify/assert"
)

func TestUidSearchMsgIdCommand(t *testing.T) {
	cmd := &uidSearchMsgIdCommand{msgId: 1278455344230334865}

	command := cmd.Command()
	assert.Equal(t, "UID SEARCH", command.Name)
	assert.Equal(t, []interface{}{
		imap.RawString("X-GM-MSGID"),
		imap.RawString("1278455344230334865"),
	}, command.Arguments)
}

func TestParseGmailMsgId(t *testing.T) {
	tests := []struct {
		name  string
		field interface{}
		msgId uint64
		err   bool
	}{
		{"string", "1278455344230334865", 1278455344230334865, false},
		{"rawstring", imap.RawString("42"), 42, false},
		{"uint64", uint64(99), 99, false},
		{"int64", int64(7), 7, false},
		{"uint32", uint32(12), 12, false},
		{"int", 3, 3, false},
		{"garbage", "notanumber", 0, true},
		{"missing", nil, 0, true},
		{"wrongtype", 1.5, 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msgId, err := parseGmailMsgId(tc.field)
			if tc.err {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.msgId, msgId)
			}
		})
	}
}

func TestSelectable(t *testing.T) {
	assert.True(t, selectable(&imap.MailboxInfo{Name: "INBOX"}))
	assert.True(t, selectable(&imap.MailboxInfo{Name: "Work", Attributes: []string{imap.HasNoChildrenAttr}}))
	assert.False(t, selectable(&imap.MailboxInfo{Name: "[Gmail]", Attributes: []string{imap.NoSelectAttr, imap.HasChildrenAttr}}))
}

func TestExcludedFolders(t *testing.T) {
	assert.True(t, excludedFolders["[Gmail]"])
	assert.True(t, excludedFolders["Notes"])
	assert.False(t, excludedFolders["[Gmail]/Trash"])
	assert.False(t, excludedFolders["INBOX"])
}
