// SPDX-License-Identifier: GPL-3.0-or-later
package purge

import (
	"fmt"

	"github.com/angryadmin/gmailpurge/domain"
	"github.com/angryadmin/gmailpurge/log"
	"github.com/angryadmin/gmailpurge/mail"

	"github.com/sirupsen/logrus"
)

// Purger runs scan and delete jobs over a single imap connection. It owns
// the connection's selected-folder cursor for the duration of a job; callers
// must not issue protocol calls while a job runs.
type Purger struct {
	imapConnection domain.PurgeConnector

	configuration *configuration

	l *logrus.Logger
}

func NewPurger(imapConnection domain.PurgeConnector, configFunc ...ConfigFunc) (*Purger, error) {
	config := &configuration{
		ProgressEvery: DefaultProgressEvery,
		TrashMailbox:  DefaultTrashMailbox,
	}
	for _, f := range configFunc {
		err := f(config)
		if err != nil {
			return nil, fmt.Errorf("error applying configuration: %w", err)
		}
	}

	return &Purger{
		imapConnection: imapConnection,
		configuration:  config,
		l:              log.Logger(log.LOG_PURGE),
	}, nil
}

// Scan counts the messages in each folder. Read-only selects guarantee the
// scan has no side effect on flags or counts. A folder that fails to select
// or search is logged and skipped; counts gathered so far survive a stop.
func (p *Purger) Scan(folders []string, token *Token, sink EventSink) (*domain.ScanSummary, error) {
	summary := &domain.ScanSummary{}

	for _, f := range folders {
		if token.Stopped() {
			sink.Emit(domain.LogEvent{Message: "Scan stopped by user"})
			p.l.Info("Scan stopped by user")
			break
		}

		sink.Emit(domain.FolderStartedEvent{Folder: f})

		err := p.imapConnection.SelectReadOnly(f)
		if err != nil {
			sink.Emit(domain.LogEvent{Message: fmt.Sprintf("Failed to access folder %s", f)})
			p.l.WithFields(logrus.Fields{"folder": f, "error": err}).Warn("Could not select folder, skipping")
			continue
		}

		ids, err := p.imapConnection.Search()
		if err != nil {
			sink.Emit(domain.LogEvent{Message: fmt.Sprintf("Failed to search folder %s", f)})
			p.l.WithFields(logrus.Fields{"folder": f, "error": err}).Warn("Could not search folder, skipping")
			continue
		}

		sink.Emit(domain.CountResultEvent{Folder: f, Count: len(ids)})
		p.l.WithFields(logrus.Fields{"folder": f, "mails": len(ids)}).Info("Counted mails in folder")

		summary.Folders = append(summary.Folders, domain.FolderCount{Folder: f, Count: len(ids)})
		summary.Total += len(ids)
	}

	summary.Stopped = token.Stopped()
	return summary, nil
}

// Delete removes all messages from each folder using the given mode. Message
// and folder failures are logged and skipped; only the missing-capability
// precheck fails the job as a whole.
func (p *Purger) Delete(folders []string, mode domain.DeleteMode, token *Token, sink EventSink) (*domain.DeleteSummary, error) {
	if mode == domain.Permanent {
		supported, err := p.imapConnection.SupportsGmailExt()
		if err != nil {
			return nil, fmt.Errorf("could not check for gmail extension support: %w", err)
		}
		if !supported {
			return nil, domain.NewError(domain.ErrUnsupportedOperation, "server does not support the gmail imap extensions required for permanent delete")
		}
	}

	summary := &domain.DeleteSummary{}

	for _, f := range folders {
		if token.Stopped() {
			sink.Emit(domain.LogEvent{Message: "Deletion stopped by user"})
			p.l.Info("Deletion stopped by user")
			break
		}

		sink.Emit(domain.FolderStartedEvent{Folder: f})

		outcome := p.deleteFolder(f, mode, token, sink)
		summary.Folders = append(summary.Folders, outcome)
		summary.Processed += outcome.Processed
		summary.Skipped += outcome.Skipped
	}

	summary.Stopped = token.Stopped()
	return summary, nil
}

func (p *Purger) deleteFolder(folder string, mode domain.DeleteMode, token *Token, sink EventSink) domain.FolderOutcome {
	outcome := domain.FolderOutcome{Folder: folder}
	baseLogger := p.l.WithFields(logrus.Fields{"folder": folder, "mode": mode})

	err := p.imapConnection.Select(folder)
	if err != nil {
		outcome.Failed = true
		sink.Emit(domain.LogEvent{Message: fmt.Sprintf("Failed to access folder %s", folder)})
		baseLogger.WithField("error", err).Warn("Could not select folder, skipping")
		return outcome
	}

	uids, err := p.imapConnection.ListUids()
	if err != nil {
		outcome.Failed = true
		sink.Emit(domain.LogEvent{Message: fmt.Sprintf("Failed to search folder %s", folder)})
		baseLogger.WithField("error", err).Warn("Could not list uids, skipping folder")
		return outcome
	}

	if len(uids) == 0 {
		sink.Emit(domain.LogEvent{Message: fmt.Sprintf("No emails to delete in %s", folder)})
		baseLogger.Info("Folder contains no mails")
		return outcome
	}

	if p.configuration.DryRun {
		sink.Emit(domain.LogEvent{Message: fmt.Sprintf("Dry run: would delete %d emails from %s", len(uids), folder)})
		baseLogger.WithField("mails", len(uids)).Info("Not deleting mails due to dry-run")
		outcome.Processed = len(uids)
		return outcome
	}

	sink.Emit(domain.LogEvent{Message: fmt.Sprintf("Deleting %d emails from %s", len(uids), folder)})
	baseLogger.WithField("mails", len(uids)).Info("Deleting mails")

	trashMsgIds := []uint64{}
	for i, uid := range uids {
		// Cancellation is checked between messages only; partial progress
		// stays committed and is finalized below.
		if token.Stopped() {
			break
		}

		var opErr error
		switch mode {
		case domain.Permanent:
			msgId, err := p.preparePermanentDelete(uid)
			if err != nil {
				opErr = err
			} else {
				trashMsgIds = append(trashMsgIds, msgId)
			}
		default:
			opErr = p.moveToTrash(uid)
		}

		if opErr != nil {
			outcome.Skipped++
			if mode == domain.Permanent {
				sink.Emit(domain.LogEvent{Message: "Failed to prepare an email for permanent removal, skipping"})
			} else {
				sink.Emit(domain.LogEvent{Message: "Failed to move an email to Trash, skipping"})
			}
			baseLogger.WithFields(logrus.Fields{"uid": uid, "error": opErr}).Warn("Could not process mail, skipping")
		} else {
			outcome.Processed++
		}

		if (i+1)%p.configuration.ProgressEvery == 0 || i+1 == len(uids) {
			sink.Emit(domain.ItemProgressEvent{Folder: folder, Done: i + 1, Total: len(uids)})
		}
	}

	// Finalize whatever was already committed, also after a stop request:
	// flagged originals must not linger unexpunged, collected trash ids must
	// still be removed from Trash.
	if mode == domain.Permanent {
		p.finalizePermanentDelete(folder, trashMsgIds, sink)
	} else if outcome.Processed > 0 {
		err := p.imapConnection.Expunge()
		if err != nil {
			sink.Emit(domain.LogEvent{Message: fmt.Sprintf("Failed to expunge folder %s", folder)})
			baseLogger.WithField("error", err).Warn("Could not expunge folder")
		}
	}

	sink.Emit(domain.LogEvent{Message: fmt.Sprintf("Deleted %d emails from %s", outcome.Processed, folder)})
	baseLogger.WithFields(logrus.Fields{"processed": outcome.Processed, "skipped": outcome.Skipped}).Info("Processed folder")

	return outcome
}

// moveToTrash implements the recoverable protocol for one message: copy into
// Trash, flag the original deleted. The folder-wide expunge happens once per
// folder.
func (p *Purger) moveToTrash(uid uint32) error {
	err := p.imapConnection.CopyTo(uid, p.configuration.TrashMailbox)
	if err != nil {
		return domain.WrapError(domain.ErrMessageOperation, fmt.Errorf("could not copy mail %d to %s: %w", uid, p.configuration.TrashMailbox, err))
	}

	err = p.imapConnection.FlagDeleted([]uint32{uid})
	if err != nil {
		return domain.WrapError(domain.ErrMessageOperation, fmt.Errorf("could not flag mail %d as deleted: %w", uid, err))
	}

	return nil
}

// preparePermanentDelete is phase A for one message: recover the stable
// gmail message id, then relabel the message into Trash. A message whose id
// cannot be fetched is left untouched.
func (p *Purger) preparePermanentDelete(uid uint32) (uint64, error) {
	info, err := p.imapConnection.FetchGmailInfo(uid)
	if err != nil {
		return 0, domain.WrapError(domain.ErrMessageOperation, fmt.Errorf("could not fetch gmail message id for mail %d: %w", uid, err))
	}

	err = p.imapConnection.AddTrashLabel(uid)
	if err != nil {
		return 0, domain.WrapError(domain.ErrMessageOperation, fmt.Errorf("could not relabel mail %q (%d) into trash: %w", mail.ShortSubject(info.Subject), uid, err))
	}

	return info.MsgId, nil
}

// finalizePermanentDelete is phase B for one folder: re-locate the collected
// message ids in Trash (their uids changed with the move) and expunge exactly
// those uids, leaving pre-existing Trash contents alone.
func (p *Purger) finalizePermanentDelete(folder string, msgIds []uint64, sink EventSink) {
	if len(msgIds) == 0 {
		return
	}

	defer func() {
		// Best-effort: the next folder starts with its own select anyway.
		err := p.imapConnection.Select(folder)
		if err != nil {
			p.l.WithFields(logrus.Fields{"folder": folder, "error": err}).Warn("Could not re-select folder after trash cleanup")
		}
	}()

	err := p.imapConnection.Select(p.configuration.TrashMailbox)
	if err != nil {
		sink.Emit(domain.LogEvent{Message: "Unable to access Trash for permanent deletion"})
		p.l.WithFields(logrus.Fields{"trash": p.configuration.TrashMailbox, "error": err}).Warn("Could not select trash mailbox")
		return
	}

	trashUids := []uint32{}
	for _, msgId := range msgIds {
		uids, err := p.imapConnection.SearchGmailMsgId(msgId)
		if err != nil {
			p.l.WithFields(logrus.Fields{"msgid": msgId, "error": err}).Warn("Could not locate message in trash")
			continue
		}
		trashUids = append(trashUids, uids...)
	}

	if len(trashUids) == 0 {
		sink.Emit(domain.LogEvent{Message: "No matching messages located in Trash for permanent removal"})
		p.l.WithField("msgids", len(msgIds)).Warn("No messages resolved in trash")
		return
	}

	err = p.imapConnection.FlagDeleted(trashUids)
	if err != nil {
		sink.Emit(domain.LogEvent{Message: "Error while permanently deleting from Trash"})
		p.l.WithField("error", err).Warn("Could not flag trash uids as deleted")
		return
	}

	err = p.imapConnection.UidExpunge(trashUids)
	if err != nil {
		sink.Emit(domain.LogEvent{Message: "Error while permanently deleting from Trash"})
		p.l.WithField("error", err).Warn("Could not expunge trash uids")
		return
	}

	p.l.WithFields(logrus.Fields{"folder": folder, "mails": len(trashUids)}).Info("Permanently removed mails from trash")
}
