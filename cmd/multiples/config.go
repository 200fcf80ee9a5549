package main

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/kapetan-io/tackle/set"
)

// Config carries the settings for one run. Zero fields are filled with
// defaults so tests can build partial configs and inject their own sinks.
type Config struct {
	InputPath  string
	OutputPath string

	SortBy  string // ordering name, see ParseOrdering
	Verbose bool
	Report  bool
	Verify  bool
	NoColor bool

	RunID  string
	Stdout io.Writer // result echo and report sink
	Stderr io.Writer // summary sink
}

// applyDefaults fills unset fields in place.
func (c *Config) applyDefaults() {
	set.Default(&c.SortBy, orderByEnd)
	set.Default(&c.RunID, shortRunID())
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	if c.Stderr == nil {
		c.Stderr = os.Stderr
	}
}

// shortRunID returns an 8-character id for correlating log lines.
func shortRunID() string {
	return uuid.New().String()[:8]
}
