// SPDX-License-Identifier: GPL-3.0-or-later
package domain

//go:generate mockgen -destination=mocks/imap.go -package=mocks . PurgeConnector

// Folder is one selectable mailbox as reported by the server. The name may
// contain the server's path separator.
type Folder struct {
	Name       string
	Selectable bool
}

// GmailMessageInfo carries the provider-global message id for a single uid.
// The id survives the move into Trash, the uid does not.
type GmailMessageInfo struct {
	Uid     uint32
	MsgId   uint64
	Subject string
}

// PurgeConnector is a single authenticated imap connection. All folder-scoped
// operations act on the folder selected last; the connection is not safe for
// concurrent use.
type PurgeConnector interface {
	ListFolders() ([]Folder, error)
	Select(folder string) error
	SelectReadOnly(folder string) error
	Search() ([]uint32, error)
	ListUids() ([]uint32, error)
	CopyTo(uid uint32, folder string) error
	FlagDeleted(uids []uint32) error
	Expunge() error
	UidExpunge(uids []uint32) error

	SupportsGmailExt() (bool, error)
	FetchGmailInfo(uid uint32) (*GmailMessageInfo, error)
	AddTrashLabel(uid uint32) error
	SearchGmailMsgId(msgId uint64) ([]uint32, error)

	Close() error
}
