// SPDX-License-Identifier: GPL-3.0-or-later
package imapconnection

import (
	"fmt"
	"io"

	"github.com/angryadmin/gmailpurge/domain"
	"github.com/angryadmin/gmailpurge/log"
	"github.com/angryadmin/gmailpurge/mail"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap-uidplus"
	"github.com/emersion/go-imap/client"
	"github.com/sirupsen/logrus"
)

type ImapConnection struct {
	connection    *client.Client
	gmail         *gmailClient
	uidplusClient *uidplus.Client

	uidPlusSupported bool

	server, user string

	selectedFolder string
	readOnly       bool

	l *logrus.Logger
}

func NewImapConnection(server string, user string, password string) (*ImapConnection, error) {
	imapClient, err := client.DialTLS(server, nil)
	if err != nil {
		return nil, domain.WrapError(domain.ErrConnection, fmt.Errorf("could not dial to imap: %w", err))
	}

	err = imapClient.Login(user, password)
	if err != nil {
		return nil, domain.WrapError(domain.ErrAuth, fmt.Errorf("could not login to imap: %w", err))
	}

	uidPlusClient := uidplus.NewClient(imapClient)
	uidPlusSupported, err := uidPlusClient.SupportUidPlus()
	if err != nil {
		return nil, domain.WrapError(domain.ErrProtocol, fmt.Errorf("could not check for UIDPLUS support: %w", err))
	}

	conn := &ImapConnection{
		connection:       imapClient,
		gmail:            newGmailClient(imapClient),
		uidplusClient:    uidPlusClient,
		uidPlusSupported: uidPlusSupported,
		server:           server,
		user:             user,
		l:                log.Logger(log.LOG_IMAP),
	}

	baseLogger := conn.l.WithFields(logrus.Fields{"server": server})
	baseLogger.Debug("Logged in to server")

	if uidPlusSupported {
		baseLogger.Debug("UIDPLUS supported on server, uid-scoped expunge available")
	} else {
		baseLogger.Info("UIDPLUS not supported on server, permanent delete will be refused")
	}

	gmailSupported, err := conn.gmail.Support()
	if err != nil {
		return nil, domain.WrapError(domain.ErrProtocol, fmt.Errorf("could not check for gmail extension support: %w", err))
	}
	if gmailSupported {
		baseLogger.Debug("Gmail imap extensions supported on server")
	} else {
		baseLogger.Info("Gmail imap extensions not supported on server, permanent delete will be refused")
	}

	return conn, nil
}

func (ic *ImapConnection) Select(folder string) error {
	return ic.selectFolder(folder, false)
}

func (ic *ImapConnection) SelectReadOnly(folder string) error {
	return ic.selectFolder(folder, true)
}

func (ic *ImapConnection) selectFolder(folder string, readOnly bool) error {
	_, err := ic.connection.Select(folder, readOnly)
	if err != nil {
		return domain.WrapError(domain.ErrProtocol, fmt.Errorf("could not select folder %s: %w", folder, err))
	}

	ic.selectedFolder = folder
	ic.readOnly = readOnly
	return nil
}

// Search returns the sequence numbers of all messages in the selected folder.
func (ic *ImapConnection) Search() ([]uint32, error) {
	criteria := imap.NewSearchCriteria()
	ids, err := ic.connection.Search(criteria)
	if err != nil {
		return nil, domain.WrapError(domain.ErrProtocol, fmt.Errorf("could not search folder: %w", err))
	}

	return ids, nil
}

func (ic *ImapConnection) ListUids() ([]uint32, error) {
	// Get all UIDs in folder (empty search criteria)
	criteria := imap.NewSearchCriteria()
	ids, err := ic.connection.UidSearch(criteria)
	if err != nil {
		return nil, domain.WrapError(domain.ErrProtocol, fmt.Errorf("could not list folder: %w", err))
	}

	return ids, nil
}

func (ic *ImapConnection) CopyTo(uid uint32, folder string) error {
	seqset := &imap.SeqSet{}
	seqset.AddNum(uid)
	err := ic.connection.UidCopy(seqset, folder)
	if err != nil {
		return fmt.Errorf("could not copy mail to %s: %w", folder, err)
	}

	return nil
}

func (ic *ImapConnection) FlagDeleted(uids []uint32) error {
	seqset := &imap.SeqSet{}
	seqset.AddNum(uids...)
	err := ic.connection.UidStore(seqset, imap.FormatFlagsOp(imap.AddFlags, true), []interface{}{imap.DeletedFlag}, nil)
	if err != nil {
		return fmt.Errorf("could not set delete flag: %w", err)
	}

	return nil
}

// Expunge removes every message flagged deleted in the selected folder.
func (ic *ImapConnection) Expunge() error {
	err := ic.connection.Expunge(nil)
	if err != nil {
		return fmt.Errorf("could not expunge folder: %w", err)
	}

	return nil
}

// UidExpunge removes only the given uids. Requires UIDPLUS; a plain expunge
// would also remove unrelated flagged messages, so there is no fallback.
func (ic *ImapConnection) UidExpunge(uids []uint32) error {
	if !ic.uidPlusSupported {
		return domain.NewError(domain.ErrUnsupportedOperation, "server does not support UIDPLUS, cannot expunge by uid")
	}

	seqset := &imap.SeqSet{}
	seqset.AddNum(uids...)
	err := ic.uidplusClient.UidExpunge(seqset, nil)
	if err != nil {
		return fmt.Errorf("could not expunge uids: %w", err)
	}

	return nil
}

func (ic *ImapConnection) SupportsGmailExt() (bool, error) {
	supported, err := ic.gmail.Support()
	if err != nil {
		return false, domain.WrapError(domain.ErrProtocol, fmt.Errorf("could not check for gmail extension support: %w", err))
	}

	return supported && ic.uidPlusSupported, nil
}

// FetchGmailInfo fetches the stable gmail message id for one uid, along with
// the decoded subject for log output. The header fetch uses peek, so the
// message's flags are untouched.
func (ic *ImapConnection) FetchGmailInfo(uid uint32) (*domain.GmailMessageInfo, error) {
	seqset := &imap.SeqSet{}
	seqset.AddNum(uid)
	section := &imap.BodySectionName{
		BodyPartName: imap.BodyPartName{
			Specifier: imap.HeaderSpecifier,
			Fields:    []string{"Subject"},
		},
		Peek: true,
	}
	fetchItems := []imap.FetchItem{FetchGmailMsgId, section.FetchItem()}

	messages := make(chan *imap.Message, 1)
	done := make(chan error, 1)
	go func() {
		done <- ic.connection.UidFetch(seqset, fetchItems, messages)
	}()

	var info *domain.GmailMessageInfo
	var parseErr error
	for msg := range messages {
		msgId, err := parseGmailMsgId(msg.Items[FetchGmailMsgId])
		if err != nil {
			parseErr = fmt.Errorf("could not parse gmail message id for uid %d: %w", msg.Uid, err)
			continue
		}

		subject := ""
		if r := msg.GetBody(section); r != nil {
			if rawHeader, err := io.ReadAll(r); err == nil {
				if s, err := mail.Subject(rawHeader); err == nil {
					subject = s
				}
			}
		}

		info = &domain.GmailMessageInfo{
			Uid:     msg.Uid,
			MsgId:   msgId,
			Subject: subject,
		}
	}

	err := <-done
	if err != nil {
		return nil, fmt.Errorf("could not fetch gmail message id: %w", err)
	}
	if parseErr != nil {
		return nil, parseErr
	}
	if info == nil {
		return nil, fmt.Errorf("no fetch response for uid %d", uid)
	}

	return info, nil
}

// AddTrashLabel relabels the message into Trash. Removing the inbox label is
// best-effort: gmail drops it on its own once the message carries \Trash.
func (ic *ImapConnection) AddTrashLabel(uid uint32) error {
	err := ic.gmail.StoreLabels(uid, AddGmailLabels, TrashLabel)
	if err != nil {
		return fmt.Errorf("could not add trash label: %w", err)
	}

	err = ic.gmail.StoreLabels(uid, RemoveGmailLabels, InboxLabel)
	if err != nil {
		ic.l.WithFields(logrus.Fields{"uid": uid, "error": err}).Debug("Could not remove inbox label")
	}

	return nil
}

func (ic *ImapConnection) SearchGmailMsgId(msgId uint64) ([]uint32, error) {
	uids, err := ic.gmail.UidSearchMsgId(msgId)
	if err != nil {
		return nil, fmt.Errorf("could not search for gmail message id: %w", err)
	}

	return uids, nil
}

func (ic *ImapConnection) Close() error {
	return ic.connection.Logout()
}
