package main

import (
	"fmt"
	"os"

	"github.com/go-kit/log/level"

	"github.com/ukane-philemon/gradebook/internal/config"
	"github.com/ukane-philemon/gradebook/internal/console"
	"github.com/ukane-philemon/gradebook/internal/db/textfile"
	"github.com/ukane-philemon/gradebook/internal/logger"
	"github.com/ukane-philemon/gradebook/tracker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config.Load error: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger.New error: %v\n", err)
		os.Exit(1)
	}

	store, err := textfile.New(config.DataFile, log)
	if err != nil {
		level.Error(log).Log("msg", "textfile.New error", "err", err)
		os.Exit(1)
	}

	t, err := tracker.NewTracker(store, log)
	if err != nil {
		level.Error(log).Log("msg", "tracker.NewTracker error", "err", err)
		os.Exit(1)
	}

	// A roster that cannot be read is reported and the session starts empty.
	if err := t.Load(); err != nil {
		level.Error(log).Log("msg", "load failed", "err", err)
	}

	err = console.NewShell(t, os.Stdin, os.Stdout).Run()
	if err != nil {
		level.Error(log).Log("msg", "reading input failed", "err", err)
	}
}
