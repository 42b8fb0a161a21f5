// SPDX-License-Identifier: GPL-3.0-or-later
package journal

import (
	"fmt"
	"time"

	"github.com/angryadmin/gmailpurge/domain"
	"github.com/angryadmin/gmailpurge/log"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	migrate "github.com/rubenv/sql-migrate"
	"github.com/sirupsen/logrus"
)

// The journal records what each job did, never how it authenticated.
var migrationSource = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{
		{
			Id: "1-create-jobs",
			Up: []string{
				`CREATE TABLE jobs (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					kind TEXT NOT NULL,
					mode TEXT NOT NULL DEFAULT '',
					total INTEGER NOT NULL,
					processed INTEGER NOT NULL,
					skipped INTEGER NOT NULL,
					stopped BOOLEAN NOT NULL,
					startedat TIMESTAMP NOT NULL,
					finishedat TIMESTAMP NOT NULL
				)`,
				`CREATE TABLE folder_results (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					jobid INTEGER NOT NULL REFERENCES jobs(id),
					folder TEXT NOT NULL,
					count INTEGER NOT NULL,
					processed INTEGER NOT NULL,
					skipped INTEGER NOT NULL,
					failed BOOLEAN NOT NULL
				)`,
				`CREATE INDEX folder_results_jobid ON folder_results(jobid)`,
			},
			Down: []string{
				`DROP TABLE folder_results`,
				`DROP TABLE jobs`,
			},
		},
	},
}

type Journal struct {
	db *sqlx.DB
	l  *logrus.Logger
}

func NewJournal(datasource string) (*Journal, error) {
	db, err := sqlx.Connect("sqlite3", datasource)
	if err != nil {
		return nil, fmt.Errorf("could not open db: %w", err)
	}
	db.SetMaxOpenConns(1)

	l := log.Logger(log.LOG_JOURNAL)
	l.WithField("file", datasource).Debug("Connected")

	_, err = db.Exec(`PRAGMA journal_mode=WAL`)
	if err != nil {
		return nil, fmt.Errorf("could not set journal mode: %w", err)
	}
	_, err = db.Exec(`PRAGMA synchronous=normal`)
	if err != nil {
		return nil, fmt.Errorf("could not set synchronous mode: %w", err)
	}

	appliedMigrations, err := migrate.Exec(db.DB, "sqlite3", migrationSource, migrate.Up)
	if err != nil {
		return nil, fmt.Errorf("could not migrate to newest version: %w", err)
	}

	l.WithField("migrations", appliedMigrations).Debug("Executed migrations")

	return &Journal{
		db: db,
		l:  l,
	}, nil
}

func (j *Journal) Close() error {
	err := j.db.Close()
	if err != nil {
		return fmt.Errorf("could not close db: %w", err)
	}
	j.l.Debug("Disconnected")
	return nil
}

func (j *Journal) SaveJob(job domain.JobRecord, folders []domain.FolderRecord) (int64, error) {
	tx, err := j.db.Beginx()
	if err != nil {
		return 0, fmt.Errorf("could not start transaction: %w", err)
	}

	result, err := tx.Exec(
		"INSERT INTO jobs(kind, mode, total, processed, skipped, stopped, startedat, finishedat) VALUES(?, ?, ?, ?, ?, ?, ?, ?)",
		job.Kind, job.Mode, job.Total, job.Processed, job.Skipped, job.Stopped, job.StartedAt, job.FinishedAt,
	)
	if err != nil {
		return 0, txEnd(tx, fmt.Errorf("could not save job: %w", err))
	}

	jobId, err := result.LastInsertId()
	if err != nil {
		return 0, txEnd(tx, fmt.Errorf("could not get job id: %w", err))
	}

	stmt, err := tx.Prepare(
		"INSERT INTO folder_results(jobid, folder, count, processed, skipped, failed) VALUES(?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return 0, txEnd(tx, fmt.Errorf("could not prepare statement: %w", err))
	}

	for _, folder := range folders {
		_, err := stmt.Exec(
			jobId, folder.Folder, folder.Count, folder.Processed, folder.Skipped, folder.Failed,
		)
		if err != nil {
			return 0, txEnd(tx, fmt.Errorf("could not save folder result: %w", err))
		}
	}

	err = txEnd(tx, nil)
	if err != nil {
		return 0, err
	}

	j.l.WithFields(logrus.Fields{"job": jobId, "kind": job.Kind, "folders": len(folders)}).Debug("Persisted job")
	return jobId, nil
}

func (j *Journal) RecentJobs(limit int) ([]*domain.JobRecord, error) {
	dbJobs := []struct {
		Id         int64
		Kind       string
		Mode       string
		Total      int
		Processed  int
		Skipped    int
		Stopped    bool
		Startedat  time.Time
		Finishedat time.Time
	}{}

	err := j.db.Select(
		&dbJobs,
		`SELECT id, kind, mode, total, processed, skipped, stopped, startedat, finishedat FROM jobs ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	jobs := []*domain.JobRecord{}
	for _, job := range dbJobs {
		jobs = append(
			jobs,
			&domain.JobRecord{
				Id:         job.Id,
				Kind:       job.Kind,
				Mode:       job.Mode,
				Total:      job.Total,
				Processed:  job.Processed,
				Skipped:    job.Skipped,
				Stopped:    job.Stopped,
				StartedAt:  job.Startedat,
				FinishedAt: job.Finishedat,
			},
		)
	}

	return jobs, nil
}

func (j *Journal) FolderResults(jobId int64) ([]*domain.FolderRecord, error) {
	dbFolders := []struct {
		Folder    string
		Count     int
		Processed int
		Skipped   int
		Failed    bool
	}{}

	err := j.db.Select(
		&dbFolders,
		`SELECT folder, count, processed, skipped, failed FROM folder_results WHERE jobid = ? ORDER BY id`,
		jobId,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	folders := []*domain.FolderRecord{}
	for _, f := range dbFolders {
		folders = append(
			folders,
			&domain.FolderRecord{
				Folder:    f.Folder,
				Count:     f.Count,
				Processed: f.Processed,
				Skipped:   f.Skipped,
				Failed:    f.Failed,
			},
		)
	}

	return folders, nil
}

func txEnd(tx *sqlx.Tx, err error) error {
	if err == nil {
		err = tx.Commit()
		if err != nil {
			return fmt.Errorf("could not commit tx: %w", err)
		}
	} else {
		rollbackErr := tx.Rollback()
		if rollbackErr != nil {
			errStr := err.Error()
			return fmt.Errorf("%s, could not rollback tx: %w", errStr, rollbackErr)
		} else {
			return err
		}
	}

	return nil
}
