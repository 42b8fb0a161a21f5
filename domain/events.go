// SPDX-License-Identifier: GPL-3.0-or-later
package domain

// Event is one entry in a job's progress stream. Events are delivered in
// emission order; the concrete types below form the full set.
type Event interface {
	event()
}

type LogEvent struct {
	Message string
}

type FolderStartedEvent struct {
	Folder string
}

type CountResultEvent struct {
	Folder string
	Count  int
}

type ItemProgressEvent struct {
	Folder string
	Done   int
	Total  int
}

// JobFinishedEvent is the last event of a successful job. Exactly one of
// Scan and Delete is set, matching the job kind.
type JobFinishedEvent struct {
	TotalAffected int
	Scan          *ScanSummary
	Delete        *DeleteSummary
}

type JobFailedEvent struct {
	Reason string
}

func (LogEvent) event()           {}
func (FolderStartedEvent) event() {}
func (CountResultEvent) event()   {}
func (ItemProgressEvent) event()  {}
func (JobFinishedEvent) event()   {}
func (JobFailedEvent) event()     {}
