// SPDX-License-Identifier: GPL-3.0-or-later
package purge

import (
	"sync"
	"time"

	"github.com/angryadmin/gmailpurge/domain"
	"github.com/angryadmin/gmailpurge/log"

	"github.com/sirupsen/logrus"
)

// Orchestrator serializes jobs over one connection: at most one scan or
// delete runs at a time, each with a fresh cancellation token. Job results
// are recorded in the journal when one is configured.
type Orchestrator struct {
	purger         *Purger
	imapConnection domain.PurgeConnector
	journal        domain.Journal

	l *logrus.Logger

	mu      sync.Mutex
	running bool
	token   *Token
}

// NewOrchestrator wires the purger to its connection. journal may be nil, in
// which case no job history is kept.
func NewOrchestrator(purger *Purger, imapConnection domain.PurgeConnector, journal domain.Journal) *Orchestrator {
	return &Orchestrator{
		purger:         purger,
		imapConnection: imapConnection,
		journal:        journal,
		l:              log.Logger(log.LOG_PURGE),
	}
}

// ListFolders returns the purgeable folder set. Rejected while a job is
// active because the connection's folder cursor belongs to the worker.
func (o *Orchestrator) ListFolders() ([]domain.Folder, error) {
	o.mu.Lock()
	running := o.running
	o.mu.Unlock()
	if running {
		return nil, domain.NewError(domain.ErrJobAlreadyActive, "a job is already active")
	}

	return o.imapConnection.ListFolders()
}

// Scan counts messages in the given folders. The returned channel carries
// progress events in order and is closed after the final JobFinished or
// JobFailed event.
func (o *Orchestrator) Scan(folders []string) (<-chan domain.Event, error) {
	return o.start(domain.JobScan, folders, domain.TrashMove)
}

// Delete removes all messages from the given folders using mode.
func (o *Orchestrator) Delete(folders []string, mode domain.DeleteMode) (<-chan domain.Event, error) {
	return o.start(domain.JobDelete, folders, mode)
}

func (o *Orchestrator) start(kind domain.JobKind, folders []string, mode domain.DeleteMode) (<-chan domain.Event, error) {
	if len(folders) == 0 {
		return nil, domain.NewError(domain.ErrNoFoldersSelected, "no folders selected")
	}

	o.mu.Lock()
	if o.running {
		o.mu.Unlock()
		return nil, domain.NewError(domain.ErrJobAlreadyActive, "a job is already active")
	}
	o.running = true
	o.token = NewToken()
	token := o.token
	o.mu.Unlock()

	queue := newEventQueue()
	events := make(chan domain.Event)
	go queue.drainTo(events)

	o.l.WithFields(logrus.Fields{"kind": kind, "folders": len(folders), "mode": mode}).Info("Starting job")
	go o.run(kind, folders, mode, token, queue)

	return events, nil
}

func (o *Orchestrator) run(kind domain.JobKind, folders []string, mode domain.DeleteMode, token *Token, queue *eventQueue) {
	started := time.Now()

	defer func() {
		queue.close()
		o.mu.Lock()
		o.running = false
		o.mu.Unlock()
	}()

	switch kind {
	case domain.JobScan:
		summary, err := o.purger.Scan(folders, token, queue)
		if err != nil {
			queue.Emit(domain.JobFailedEvent{Reason: err.Error()})
			o.l.WithField("error", err).Error("Scan failed")
			return
		}
		queue.Emit(domain.JobFinishedEvent{TotalAffected: summary.Total, Scan: summary})
		o.saveScan(summary, started)
	case domain.JobDelete:
		summary, err := o.purger.Delete(folders, mode, token, queue)
		if err != nil {
			queue.Emit(domain.JobFailedEvent{Reason: err.Error()})
			o.l.WithField("error", err).Error("Delete failed")
			return
		}
		queue.Emit(domain.JobFinishedEvent{TotalAffected: summary.Processed, Delete: summary})
		o.saveDelete(summary, mode, started)
	}
}

// Stop requests cancellation of the active job and returns immediately; the
// worker notices at its next check point. No-op without an active job.
func (o *Orchestrator) Stop() {
	o.mu.Lock()
	running := o.running
	token := o.token
	o.mu.Unlock()

	if running && token != nil {
		token.Stop()
		o.l.Info("Stop requested")
	}
}

// Close cancels any active job and logs out. The worker may still be
// finalizing when the logout goes out; cancellation is best-effort by design.
func (o *Orchestrator) Close() error {
	o.Stop()
	return o.imapConnection.Close()
}

func (o *Orchestrator) saveScan(summary *domain.ScanSummary, started time.Time) {
	if o.journal == nil {
		return
	}

	folders := make([]domain.FolderRecord, 0, len(summary.Folders))
	for _, f := range summary.Folders {
		folders = append(folders, domain.FolderRecord{Folder: f.Folder, Count: f.Count})
	}

	_, err := o.journal.SaveJob(
		domain.JobRecord{
			Kind:       domain.JobScan.String(),
			Total:      summary.Total,
			Stopped:    summary.Stopped,
			StartedAt:  started,
			FinishedAt: time.Now(),
		},
		folders,
	)
	if err != nil {
		o.l.WithField("error", err).Warn("Could not record scan in journal")
	}
}

func (o *Orchestrator) saveDelete(summary *domain.DeleteSummary, mode domain.DeleteMode, started time.Time) {
	if o.journal == nil {
		return
	}

	folders := make([]domain.FolderRecord, 0, len(summary.Folders))
	for _, f := range summary.Folders {
		folders = append(
			folders,
			domain.FolderRecord{
				Folder:    f.Folder,
				Processed: f.Processed,
				Skipped:   f.Skipped,
				Failed:    f.Failed,
			},
		)
	}

	_, err := o.journal.SaveJob(
		domain.JobRecord{
			Kind:       domain.JobDelete.String(),
			Mode:       mode.String(),
			Total:      summary.Processed + summary.Skipped,
			Processed:  summary.Processed,
			Skipped:    summary.Skipped,
			Stopped:    summary.Stopped,
			StartedAt:  started,
			FinishedAt: time.Now(),
		},
		folders,
	)
	if err != nil {
		o.l.WithField("error", err).Warn("Could not record delete in journal")
	}
}
