// SPDX-License-Identifier: GPL-3.0-or-later
package purge

import "fmt"

const (
	DefaultTrashMailbox  = "[Gmail]/Trash"
	DefaultProgressEvery = 100
)

type ConfigFunc func(c *configuration) error

// ProgressEvery sets how many processed messages lie between two
// ItemProgress events.
func ProgressEvery(n int) ConfigFunc {
	return func(c *configuration) error {
		if n <= 0 {
			return fmt.Errorf("ProgressEvery must be positive, got %d", n)
		}

		c.ProgressEvery = n
		return nil
	}
}

func TrashMailbox(name string) ConfigFunc {
	return func(c *configuration) error {
		if len(name) == 0 {
			return fmt.Errorf("TrashMailbox cannot be empty")
		}

		c.TrashMailbox = name
		return nil
	}
}

// DryRun makes delete jobs enumerate and report without issuing a single
// mutating command.
func DryRun() ConfigFunc {
	return func(c *configuration) error {
		c.DryRun = true
		return nil
	}
}

type configuration struct {
	ProgressEvery int
	TrashMailbox  string
	DryRun        bool
}
