// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "time"

//go:generate mockgen -destination=mocks/journal.go -package=mocks . Journal

// JobRecord is one finished job as stored in the purge journal. Credentials
// are never part of a record.
type JobRecord struct {
	Id         int64
	Kind       string
	Mode       string
	Total      int
	Processed  int
	Skipped    int
	Stopped    bool
	StartedAt  time.Time
	FinishedAt time.Time
}

// FolderRecord is the outcome for a single folder within a job. For scans
// Count holds the counted messages; for deletes Processed/Skipped are set.
type FolderRecord struct {
	Folder    string
	Count     int
	Processed int
	Skipped   int
	Failed    bool
}

type Journal interface {
	SaveJob(job JobRecord, folders []FolderRecord) (int64, error)
	RecentJobs(limit int) ([]*JobRecord, error)
	FolderResults(jobId int64) ([]*FolderRecord, error)

	Close() error
}
