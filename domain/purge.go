// SPDX-License-Identifier: GPL-3.0-or-later
package domain

type JobKind int

const (
	JobScan JobKind = iota
	JobDelete
)

func (k JobKind) String() string {
	switch k {
	case JobScan:
		return "scan"
	case JobDelete:
		return "delete"
	}
	return "unknown"
}

type DeleteMode int

const (
	// TrashMove copies each message into Trash and expunges the flagged
	// original, so it stays recoverable from Trash.
	TrashMove DeleteMode = iota
	// Permanent relabels each message into Trash and then expunges it from
	// Trash as well. Requires the server's Gmail extensions.
	Permanent
)

func (m DeleteMode) String() string {
	switch m {
	case TrashMove:
		return "trash"
	case Permanent:
		return "permanent"
	}
	return "unknown"
}

type FolderCount struct {
	Folder string
	Count  int
}

type ScanSummary struct {
	Folders []FolderCount
	Total   int
	Stopped bool
}

type FolderOutcome struct {
	Folder    string
	Processed int
	Skipped   int
	Failed    bool
}

type DeleteSummary struct {
	Folders   []FolderOutcome
	Processed int
	Skipped   int
	Stopped   bool
}
