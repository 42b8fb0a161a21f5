// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/angryadmin/gmailpurge/config"
	"github.com/angryadmin/gmailpurge/domain"
	"github.com/angryadmin/gmailpurge/imapconnection"
	"github.com/angryadmin/gmailpurge/journal"
	"github.com/angryadmin/gmailpurge/log"
	"github.com/angryadmin/gmailpurge/purge"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "gmailpurge",
		Usage: "bulk-delete mail from gmail folders over imap",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "config.toml", Usage: "path to the toml config file"},
		},
		Commands: []*cli.Command{
			{
				Name:   "folders",
				Usage:  "list purgeable folders",
				Action: runFolders,
			},
			{
				Name:   "scan",
				Usage:  "count mails in the configured folders",
				Flags:  folderFlags(),
				Action: runScan,
			},
			{
				Name:  "delete",
				Usage: "delete all mails from the configured folders",
				Flags: append(
					folderFlags(),
					&cli.StringFlag{Name: "mode", Usage: `override the delete mode ("trash" or "permanent")`},
				),
				Action: runDelete,
			},
			{
				Name:   "history",
				Usage:  "show recent jobs from the journal",
				Action: runHistory,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func folderFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{Name: "folder", Usage: "folder to process (repeatable, overrides the config)"},
	}
}

func setup(c *cli.Context) (*config.Config, *logrus.Logger, error) {
	// The .env file is optional, it only carries the app password.
	_ = godotenv.Load()

	log.InitLogging("info")
	logger := log.Logger(log.LOG_MAIN)

	conf, err := config.ReadConfig(c.String("config"))
	if err != nil {
		return nil, nil, fmt.Errorf("could not load config: %w", err)
	}

	if conf.Loglevel != nil {
		log.SetLogLevel(*conf.Loglevel)
	}

	return conf, logger, nil
}

func connect(conf *config.Config, logger *logrus.Logger) (*purge.Orchestrator, func(), error) {
	imapConn, err := imapconnection.NewImapConnection(conf.ImapHost, conf.User, conf.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to imap: %w", err)
	}

	var jrnl domain.Journal
	if conf.Journal != "" {
		j, err := journal.NewJournal(conf.Journal)
		if err != nil {
			imapConn.Close()
			return nil, nil, fmt.Errorf("could not open journal: %w", err)
		}
		jrnl = j
	}

	configs := []purge.ConfigFunc{
		purge.ProgressEvery(conf.ProgressEvery),
		purge.TrashMailbox(conf.TrashMailbox),
	}
	if conf.DryRun {
		configs = append(configs, purge.DryRun())
	}

	purger, err := purge.NewPurger(imapConn, configs...)
	if err != nil {
		imapConn.Close()
		return nil, nil, fmt.Errorf("could not create purger: %w", err)
	}

	orchestrator := purge.NewOrchestrator(purger, imapConn, jrnl)

	cleanup := func() {
		if err := orchestrator.Close(); err != nil {
			logger.WithField("error", err).Warn("Could not close connection")
		}
		if jrnl != nil {
			if err := jrnl.Close(); err != nil {
				logger.WithField("error", err).Warn("Could not close journal")
			}
		}
	}

	return orchestrator, cleanup, nil
}

func runFolders(c *cli.Context) error {
	conf, logger, err := setup(c)
	if err != nil {
		return err
	}

	orchestrator, cleanup, err := connect(conf, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	folders, err := orchestrator.ListFolders()
	if err != nil {
		return fmt.Errorf("could not list folders: %w", err)
	}

	for _, f := range folders {
		fmt.Println(f.Name)
	}

	return nil
}

func runScan(c *cli.Context) error {
	conf, logger, err := setup(c)
	if err != nil {
		return err
	}

	orchestrator, cleanup, err := connect(conf, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	stopOnInterrupt(orchestrator)

	events, err := orchestrator.Scan(selectedFolders(c, conf))
	if err != nil {
		return fmt.Errorf("could not start scan: %w", err)
	}

	return consumeEvents(events, logger)
}

func runDelete(c *cli.Context) error {
	conf, logger, err := setup(c)
	if err != nil {
		return err
	}

	mode := domain.TrashMove
	modeName := conf.Mode
	if c.String("mode") != "" {
		modeName = c.String("mode")
	}
	switch modeName {
	case "trash":
	case "permanent":
		mode = domain.Permanent
	default:
		return fmt.Errorf(`unknown delete mode %q, use "trash" or "permanent"`, modeName)
	}

	if conf.DryRun {
		logger.Warn("Dry-run is enabled, no mails will be deleted; set DryRun = false in the config to delete")
	} else if mode == domain.Permanent {
		logger.Warn("Permanent delete cannot be undone")
	}

	orchestrator, cleanup, err := connect(conf, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	stopOnInterrupt(orchestrator)

	events, err := orchestrator.Delete(selectedFolders(c, conf), mode)
	if err != nil {
		return fmt.Errorf("could not start delete: %w", err)
	}

	return consumeEvents(events, logger)
}

func runHistory(c *cli.Context) error {
	conf, logger, err := setup(c)
	if err != nil {
		return err
	}

	if conf.Journal == "" {
		return fmt.Errorf("no journal configured, set Journal in the config")
	}

	jrnl, err := journal.NewJournal(conf.Journal)
	if err != nil {
		return fmt.Errorf("could not open journal: %w", err)
	}
	defer jrnl.Close()

	jobs, err := jrnl.RecentJobs(20)
	if err != nil {
		return fmt.Errorf("could not read journal: %w", err)
	}

	for _, job := range jobs {
		logger.WithFields(logrus.Fields{
			"kind":      job.Kind,
			"mode":      job.Mode,
			"total":     job.Total,
			"processed": job.Processed,
			"skipped":   job.Skipped,
			"stopped":   job.Stopped,
			"finished":  job.FinishedAt.Format("2006-01-02 15:04:05"),
		}).Info("Job")
	}

	return nil
}

func selectedFolders(c *cli.Context, conf *config.Config) []string {
	if folders := c.StringSlice("folder"); len(folders) > 0 {
		return folders
	}
	return conf.Folders
}

// stopOnInterrupt translates the first interrupt into a cooperative stop;
// the job finalizes what it already committed before winding down.
func stopOnInterrupt(orchestrator *purge.Orchestrator) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signals
		orchestrator.Stop()
	}()
}

func consumeEvents(events <-chan domain.Event, logger *logrus.Logger) error {
	var failure error
	for ev := range events {
		switch e := ev.(type) {
		case domain.LogEvent:
			logger.Info(e.Message)
		case domain.FolderStartedEvent:
			logger.WithField("folder", e.Folder).Info("Processing folder")
		case domain.CountResultEvent:
			logger.WithFields(logrus.Fields{"folder": e.Folder, "mails": e.Count}).Info("Counted folder")
		case domain.ItemProgressEvent:
			logger.WithFields(logrus.Fields{"folder": e.Folder, "done": e.Done, "total": e.Total}).Info("Progress")
		case domain.JobFinishedEvent:
			logger.WithField("total", e.TotalAffected).Info("Job finished")
		case domain.JobFailedEvent:
			logger.WithField("reason", e.Reason).Error("Job failed")
			failure = fmt.Errorf("job failed: %s", e.Reason)
		}
	}

	return failure
}
