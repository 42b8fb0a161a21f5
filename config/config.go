// SPDX-License-Identifier: GPL-3.0-or-later
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// PasswordEnvVar overrides the Password config key when set, so the app
// password can be kept out of the config file (see the sample .env).
const PasswordEnvVar = "GMAILPURGE_PASSWORD"

type Config struct {
	ImapHost string
	User     string
	Password string

	Folders []string
	Mode    string

	TrashMailbox  string
	ProgressEvery int
	DryRun        bool

	Journal string

	Loglevel *string
}

func ReadConfig(filename string) (*Config, error) {
	config := &Config{
		ImapHost:      "imap.gmail.com:993",
		Folders:       []string{"INBOX"},
		Mode:          "trash",
		TrashMailbox:  "[Gmail]/Trash",
		ProgressEvery: 100,
		DryRun:        true,
		Journal:       "purge-journal.db",
	}

	_, err := toml.DecodeFile(filename, config)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	if envPassword := os.Getenv(PasswordEnvVar); envPassword != "" {
		config.Password = envPassword
	}

	err = config.validate()
	if err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if err := validateNonEmptyStringField(c.ImapHost, "ImapHost must not be empty, set to host:port of the imap server"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.User, "User must not be empty, set to the gmail username"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.Password, "Password must not be empty, set to an app password or export "+PasswordEnvVar); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.TrashMailbox, "TrashMailbox must not be empty, set to the provider's trash folder"); err != nil {
		return err
	}

	if c.Mode != "trash" && c.Mode != "permanent" {
		return fmt.Errorf(`Mode must be either "trash" or "permanent", got %q`, c.Mode)
	}

	if c.ProgressEvery <= 0 {
		return fmt.Errorf("ProgressEvery must be positive, got %d", c.ProgressEvery)
	}

	return nil
}

func validateNonEmptyStringField(field string, err string) error {
	if len(strings.TrimSpace(field)) == 0 {
		return errors.New(err)
	}

	return nil
}
