// SPDX-License-Identifier: GPL-3.0-or-later
package imapconnection

import (
	"fmt"
	"strconv"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
	"github.com/emersion/go-imap/responses"
)

// GmailExtension is the capability gmail advertises for its imap dialect
// (X-GM-MSGID, X-GM-LABELS and friends).
const GmailExtension = "X-GM-EXT-1"

const (
	FetchGmailMsgId = imap.FetchItem("X-GM-MSGID")

	AddGmailLabels    = imap.StoreItem("+X-GM-LABELS.SILENT")
	RemoveGmailLabels = imap.StoreItem("-X-GM-LABELS.SILENT")

	TrashLabel = `\Trash`
	InboxLabel = `\Inbox`
)

// gmailClient exposes the X-GM-EXT-1 commands the purge engine needs. It is
// built like the uidplus and move extension clients: raw commands through
// client.Execute with the matching response handler.
type gmailClient struct {
	c *client.Client
}

func newGmailClient(c *client.Client) *gmailClient {
	return &gmailClient{c: c}
}

func (g *gmailClient) Support() (bool, error) {
	return g.c.Support(GmailExtension)
}

type uidSearchMsgIdCommand struct {
	msgId uint64
}

func (cmd *uidSearchMsgIdCommand) Command() *imap.Command {
	return &imap.Command{
		Name: "UID SEARCH",
		Arguments: []interface{}{
			imap.RawString("X-GM-MSGID"),
			imap.RawString(strconv.FormatUint(cmd.msgId, 10)),
		},
	}
}

// UidSearchMsgId resolves a gmail message id to uids in the selected folder.
// The search criteria type has no extension hook, hence the raw command.
func (g *gmailClient) UidSearchMsgId(msgId uint64) ([]uint32, error) {
	if g.c.State()&imap.SelectedState == 0 {
		return nil, client.ErrNoMailboxSelected
	}

	res := new(responses.Search)
	status, err := g.c.Execute(&uidSearchMsgIdCommand{msgId: msgId}, res)
	if err != nil {
		return nil, err
	}
	if err := status.Err(); err != nil {
		return nil, err
	}

	return res.Ids, nil
}

func (g *gmailClient) StoreLabels(uid uint32, item imap.StoreItem, labels ...string) error {
	seqset := &imap.SeqSet{}
	seqset.AddNum(uid)

	values := make([]interface{}, len(labels))
	for i, label := range labels {
		values[i] = imap.RawString(label)
	}

	return g.c.UidStore(seqset, item, values, nil)
}

// parseGmailMsgId handles the raw fetch attribute; go-imap passes extension
// attributes through unparsed, so the value's type depends on the reader.
func parseGmailMsgId(field interface{}) (uint64, error) {
	switch v := field.(type) {
	case string:
		return strconv.ParseUint(v, 10, 64)
	case imap.RawString:
		return strconv.ParseUint(string(v), 10, 64)
	case uint64:
		return v, nil
	case int64:
		return uint64(v), nil
	case uint32:
		return uint64(v), nil
	case int:
		return uint64(v), nil
	case nil:
		return 0, fmt.Errorf("missing X-GM-MSGID attribute")
	default:
		return 0, fmt.Errorf("unexpected X-GM-MSGID type %T", field)
	}
}
