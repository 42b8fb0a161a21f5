// SPDX-License-Identifier: GPL-3.0-or-later
package purge

import (
	"errors"
	"testing"

	"github.com/angryadmin/gmailpurge/domain"
	"github.com/angryadmin/gmailpurge/domain/mocks"
	"github.com/angryadmin/gmailpurge/log"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

const (
	TEST_FOLDER_1 = "test1"
	TEST_FOLDER_2 = "test2"
)

func newTestPurger(conn domain.PurgeConnector, configFunc ...ConfigFunc) *Purger {
	config := &configuration{
		ProgressEvery: DefaultProgressEvery,
		TrashMailbox:  DefaultTrashMailbox,
	}
	for _, f := range configFunc {
		if err := f(config); err != nil {
			panic(err)
		}
	}

	return &Purger{
		imapConnection: conn,
		configuration:  config,
		l:              nullLogger(),
	}
}

func TestNewPurger(t *testing.T) {
	log.InitLogging("error")
	tests := []struct {
		name string
		cfgs []ConfigFunc
		err  string
	}{
		{"ok", []ConfigFunc{ProgressEvery(10), TrashMailbox("Trash"), DryRun()}, ""},
		{"badcadence", []ConfigFunc{ProgressEvery(0)}, "error applying configuration: ProgressEvery must be positive, got 0"},
		{"badtrash", []ConfigFunc{TrashMailbox("")}, "error applying configuration: TrashMailbox cannot be empty"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			purger, err := NewPurger(nil, tc.cfgs...)
			if len(tc.err) == 0 {
				assert.NotNil(t, purger)
				assert.NoError(t, err)
			} else {
				assert.Nil(t, purger)
				assert.EqualError(t, err, tc.err)
			}
		})
	}
}

func TestPurger_ScanCountsFolders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn := mocks.NewMockPurgeConnector(ctrl)
	purger := newTestPurger(conn)
	sink := &recordingSink{}

	gomock.InOrder(
		conn.EXPECT().SelectReadOnly(TEST_FOLDER_1).Return(nil),
		conn.EXPECT().Search().Return(u32a(1, 2, 3), nil),
		conn.EXPECT().SelectReadOnly(TEST_FOLDER_2).Return(nil),
		conn.EXPECT().Search().Return(u32a(7, 8), nil),
	)

	summary, err := purger.Scan([]string{TEST_FOLDER_1, TEST_FOLDER_2}, NewToken(), sink)
	assert.NoError(t, err)
	assert.Equal(t, 5, summary.Total)
	assert.False(t, summary.Stopped)
	assert.Equal(t, []domain.FolderCount{
		{Folder: TEST_FOLDER_1, Count: 3},
		{Folder: TEST_FOLDER_2, Count: 2},
	}, summary.Folders)

	assert.Equal(t, []domain.Event{
		domain.FolderStartedEvent{Folder: TEST_FOLDER_1},
		domain.CountResultEvent{Folder: TEST_FOLDER_1, Count: 3},
		domain.FolderStartedEvent{Folder: TEST_FOLDER_2},
		domain.CountResultEvent{Folder: TEST_FOLDER_2, Count: 2},
	}, sink.events)
}

func TestPurger_ScanSkipsFailingFolder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn := mocks.NewMockPurgeConnector(ctrl)
	purger := newTestPurger(conn)
	sink := &recordingSink{}

	gomock.InOrder(
		conn.EXPECT().SelectReadOnly(TEST_FOLDER_1).Return(errors.New("select failed")),
		conn.EXPECT().SelectReadOnly(TEST_FOLDER_2).Return(nil),
		conn.EXPECT().Search().Return(u32a(1), nil),
	)

	summary, err := purger.Scan([]string{TEST_FOLDER_1, TEST_FOLDER_2}, NewToken(), sink)
	assert.NoError(t, err)
	assert.Equal(t, 1, summary.Total)
	assert.Equal(t, []domain.FolderCount{{Folder: TEST_FOLDER_2, Count: 1}}, summary.Folders)
	assert.Contains(t, sink.logMessages(), "Failed to access folder test1")
}

func TestPurger_ScanStopped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn := mocks.NewMockPurgeConnector(ctrl)
	purger := newTestPurger(conn)
	sink := &recordingSink{}

	token := NewToken()
	token.Stop()

	summary, err := purger.Scan([]string{TEST_FOLDER_1}, token, sink)
	assert.NoError(t, err)
	assert.Equal(t, 0, summary.Total)
	assert.True(t, summary.Stopped)
	assert.Contains(t, sink.logMessages(), "Scan stopped by user")
}

func TestPurger_DeleteTrashMove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn := mocks.NewMockPurgeConnector(ctrl)
	purger := newTestPurger(conn)
	sink := &recordingSink{}

	gomock.InOrder(
		conn.EXPECT().Select(TEST_FOLDER_1).Return(nil),
		conn.EXPECT().ListUids().Return(u32a(1, 2, 3), nil),
		conn.EXPECT().CopyTo(u32(1), DefaultTrashMailbox).Return(nil),
		conn.EXPECT().FlagDeleted(u32a(1)).Return(nil),
		conn.EXPECT().CopyTo(u32(2), DefaultTrashMailbox).Return(nil),
		conn.EXPECT().FlagDeleted(u32a(2)).Return(nil),
		conn.EXPECT().CopyTo(u32(3), DefaultTrashMailbox).Return(nil),
		conn.EXPECT().FlagDeleted(u32a(3)).Return(nil),
		conn.EXPECT().Expunge().Return(nil),
	)

	summary, err := purger.Delete([]string{TEST_FOLDER_1}, domain.TrashMove, NewToken(), sink)
	assert.NoError(t, err)
	assert.Equal(t, 3, summary.Processed)
	assert.Equal(t, 0, summary.Skipped)
	assert.Contains(t, sink.events, domain.ItemProgressEvent{Folder: TEST_FOLDER_1, Done: 3, Total: 3})
}

func TestPurger_DeleteTrashMoveSkipsFailedCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn := mocks.NewMockPurgeConnector(ctrl)
	purger := newTestPurger(conn)
	sink := &recordingSink{}

	conn.EXPECT().Select(TEST_FOLDER_1).Return(nil)
	conn.EXPECT().ListUids().Return(u32a(1, 2, 3), nil)
	conn.EXPECT().CopyTo(u32(1), DefaultTrashMailbox).Return(nil)
	conn.EXPECT().FlagDeleted(u32a(1)).Return(nil)
	conn.EXPECT().CopyTo(u32(2), DefaultTrashMailbox).Return(errors.New("copy failed"))
	conn.EXPECT().CopyTo(u32(3), DefaultTrashMailbox).Return(nil)
	conn.EXPECT().FlagDeleted(u32a(3)).Return(nil)
	conn.EXPECT().Expunge().Return(nil)

	summary, err := purger.Delete([]string{TEST_FOLDER_1}, domain.TrashMove, NewToken(), sink)
	assert.NoError(t, err)
	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, 1, summary.Skipped)
	assert.Contains(t, sink.logMessages(), "Failed to move an email to Trash, skipping")
}

func TestPurger_DeleteSkipsFailingFolder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn := mocks.NewMockPurgeConnector(ctrl)
	purger := newTestPurger(conn)
	sink := &recordingSink{}

	gomock.InOrder(
		conn.EXPECT().Select(TEST_FOLDER_1).Return(errors.New("select failed")),
		conn.EXPECT().Select(TEST_FOLDER_2).Return(nil),
		conn.EXPECT().ListUids().Return(u32a(9), nil),
		conn.EXPECT().CopyTo(u32(9), DefaultTrashMailbox).Return(nil),
		conn.EXPECT().FlagDeleted(u32a(9)).Return(nil),
		conn.EXPECT().Expunge().Return(nil),
	)

	summary, err := purger.Delete([]string{TEST_FOLDER_1, TEST_FOLDER_2}, domain.TrashMove, NewToken(), sink)
	assert.NoError(t, err)
	assert.Equal(t, 1, summary.Processed)
	assert.True(t, summary.Folders[0].Failed)
	assert.False(t, summary.Folders[1].Failed)
}

func TestPurger_DeleteEmptyFolder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn := mocks.NewMockPurgeConnector(ctrl)
	purger := newTestPurger(conn)
	sink := &recordingSink{}

	conn.EXPECT().Select(TEST_FOLDER_1).Return(nil)
	conn.EXPECT().ListUids().Return(u32a(), nil)

	summary, err := purger.Delete([]string{TEST_FOLDER_1}, domain.TrashMove, NewToken(), sink)
	assert.NoError(t, err)
	assert.Equal(t, 0, summary.Processed)
	assert.Contains(t, sink.logMessages(), "No emails to delete in test1")
}

func TestPurger_DeleteStoppedMidFolder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn := mocks.NewMockPurgeConnector(ctrl)
	purger := newTestPurger(conn)
	sink := &recordingSink{}
	token := NewToken()

	// The stop request lands after the first message; the folder must still
	// be finalized for the committed prefix.
	gomock.InOrder(
		conn.EXPECT().Select(TEST_FOLDER_1).Return(nil),
		conn.EXPECT().ListUids().Return(u32a(1, 2, 3), nil),
		conn.EXPECT().CopyTo(u32(1), DefaultTrashMailbox).Return(nil),
		conn.EXPECT().FlagDeleted(u32a(1)).DoAndReturn(func([]uint32) error {
			token.Stop()
			return nil
		}),
		conn.EXPECT().Expunge().Return(nil),
	)

	summary, err := purger.Delete([]string{TEST_FOLDER_1, TEST_FOLDER_2}, domain.TrashMove, token, sink)
	assert.NoError(t, err)
	assert.Equal(t, 1, summary.Processed)
	assert.True(t, summary.Stopped)
	// The second folder was never touched.
	assert.Len(t, summary.Folders, 1)
	assert.Contains(t, sink.logMessages(), "Deletion stopped by user")
}

func TestPurger_DeletePermanent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn := mocks.NewMockPurgeConnector(ctrl)
	purger := newTestPurger(conn)
	sink := &recordingSink{}

	gomock.InOrder(
		conn.EXPECT().SupportsGmailExt().Return(true, nil),
		conn.EXPECT().Select(TEST_FOLDER_1).Return(nil),
		conn.EXPECT().ListUids().Return(u32a(1, 2), nil),
		conn.EXPECT().FetchGmailInfo(u32(1)).Return(&domain.GmailMessageInfo{Uid: 1, MsgId: 101}, nil),
		conn.EXPECT().AddTrashLabel(u32(1)).Return(nil),
		conn.EXPECT().FetchGmailInfo(u32(2)).Return(&domain.GmailMessageInfo{Uid: 2, MsgId: 102}, nil),
		conn.EXPECT().AddTrashLabel(u32(2)).Return(nil),
		conn.EXPECT().Select(DefaultTrashMailbox).Return(nil),
		conn.EXPECT().SearchGmailMsgId(uint64(101)).Return(u32a(11), nil),
		conn.EXPECT().SearchGmailMsgId(uint64(102)).Return(u32a(12), nil),
		conn.EXPECT().FlagDeleted(u32a(11, 12)).Return(nil),
		conn.EXPECT().UidExpunge(u32a(11, 12)).Return(nil),
		conn.EXPECT().Select(TEST_FOLDER_1).Return(nil),
	)

	summary, err := purger.Delete([]string{TEST_FOLDER_1}, domain.Permanent, NewToken(), sink)
	assert.NoError(t, err)
	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, 0, summary.Skipped)
}

func TestPurger_DeletePermanentSkipsUnfetchable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn := mocks.NewMockPurgeConnector(ctrl)
	purger := newTestPurger(conn)
	sink := &recordingSink{}

	// Message 2 has no retrievable gmail id: it must be left untouched, no
	// relabel, and must not surface in phase B.
	conn.EXPECT().SupportsGmailExt().Return(true, nil)
	conn.EXPECT().Select(TEST_FOLDER_1).Return(nil)
	conn.EXPECT().ListUids().Return(u32a(1, 2), nil)
	conn.EXPECT().FetchGmailInfo(u32(1)).Return(&domain.GmailMessageInfo{Uid: 1, MsgId: 101}, nil)
	conn.EXPECT().AddTrashLabel(u32(1)).Return(nil)
	conn.EXPECT().FetchGmailInfo(u32(2)).Return(nil, errors.New("fetch failed"))
	conn.EXPECT().Select(DefaultTrashMailbox).Return(nil)
	conn.EXPECT().SearchGmailMsgId(uint64(101)).Return(u32a(11), nil)
	conn.EXPECT().FlagDeleted(u32a(11)).Return(nil)
	conn.EXPECT().UidExpunge(u32a(11)).Return(nil)
	conn.EXPECT().Select(TEST_FOLDER_1).Return(nil)

	summary, err := purger.Delete([]string{TEST_FOLDER_1}, domain.Permanent, NewToken(), sink)
	assert.NoError(t, err)
	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, 1, summary.Skipped)
	assert.Contains(t, sink.logMessages(), "Failed to prepare an email for permanent removal, skipping")
}

func TestPurger_DeletePermanentNothingResolved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn := mocks.NewMockPurgeConnector(ctrl)
	purger := newTestPurger(conn)
	sink := &recordingSink{}

	// Trash does not resolve any of the collected ids: Trash must not be
	// modified at all.
	conn.EXPECT().SupportsGmailExt().Return(true, nil)
	conn.EXPECT().Select(TEST_FOLDER_1).Return(nil)
	conn.EXPECT().ListUids().Return(u32a(1), nil)
	conn.EXPECT().FetchGmailInfo(u32(1)).Return(&domain.GmailMessageInfo{Uid: 1, MsgId: 101}, nil)
	conn.EXPECT().AddTrashLabel(u32(1)).Return(nil)
	conn.EXPECT().Select(DefaultTrashMailbox).Return(nil)
	conn.EXPECT().SearchGmailMsgId(uint64(101)).Return(u32a(), nil)
	conn.EXPECT().Select(TEST_FOLDER_1).Return(nil)

	_, err := purger.Delete([]string{TEST_FOLDER_1}, domain.Permanent, NewToken(), sink)
	assert.NoError(t, err)
	assert.Contains(t, sink.logMessages(), "No matching messages located in Trash for permanent removal")
}

func TestPurger_DeletePermanentUnsupported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn := mocks.NewMockPurgeConnector(ctrl)
	purger := newTestPurger(conn)
	sink := &recordingSink{}

	conn.EXPECT().SupportsGmailExt().Return(false, nil)

	summary, err := purger.Delete([]string{TEST_FOLDER_1}, domain.Permanent, NewToken(), sink)
	assert.Nil(t, summary)
	assert.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.ErrUnsupportedOperation))
}

func TestPurger_DeleteDryRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn := mocks.NewMockPurgeConnector(ctrl)
	purger := newTestPurger(conn, DryRun())
	sink := &recordingSink{}

	conn.EXPECT().Select(TEST_FOLDER_1).Return(nil)
	conn.EXPECT().ListUids().Return(u32a(1, 2, 3), nil)

	summary, err := purger.Delete([]string{TEST_FOLDER_1}, domain.TrashMove, NewToken(), sink)
	assert.NoError(t, err)
	assert.Equal(t, 3, summary.Processed)
	assert.Contains(t, sink.logMessages(), "Dry run: would delete 3 emails from test1")
}

func TestPurger_ProgressCadence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn := mocks.NewMockPurgeConnector(ctrl)
	purger := newTestPurger(conn, ProgressEvery(2))
	sink := &recordingSink{}

	conn.EXPECT().Select(TEST_FOLDER_1).Return(nil)
	conn.EXPECT().ListUids().Return(u32a(1, 2, 3, 4, 5), nil)
	conn.EXPECT().CopyTo(gomock.Any(), DefaultTrashMailbox).Return(nil).Times(5)
	conn.EXPECT().FlagDeleted(gomock.Any()).Return(nil).Times(5)
	conn.EXPECT().Expunge().Return(nil)

	_, err := purger.Delete([]string{TEST_FOLDER_1}, domain.TrashMove, NewToken(), sink)
	assert.NoError(t, err)

	progress := []domain.ItemProgressEvent{}
	for _, ev := range sink.events {
		if p, ok := ev.(domain.ItemProgressEvent); ok {
			progress = append(progress, p)
		}
	}
	assert.Equal(t, []domain.ItemProgressEvent{
		{Folder: TEST_FOLDER_1, Done: 2, Total: 5},
		{Folder: TEST_FOLDER_1, Done: 4, Total: 5},
		{Folder: TEST_FOLDER_1, Done: 5, Total: 5},
	}, progress)
}
