package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/spf13/afero"

	"github.com/AronAlberts/HR-elections/cliparse"
	"github.com/AronAlberts/HR-elections/console"
	"github.com/AronAlberts/HR-elections/logging"
	"github.com/AronAlberts/HR-elections/session"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		return 2
	}

	// Logging
	logger, closer := logging.New(logging.FromConfig(cfg), os.Stderr)
	defer closer.Close()
	slog.SetDefault(logger)

	sess := session.New(afero.NewOsFs(), cfg, logger)
	slog.Info("Session started", "session", sess.ID, "strict", cfg.Strict)

	if err := console.New(os.Stdin, os.Stdout, sess, logger).Run(); err != nil {
		slog.Error("Console closed", "error", err)
		return 1
	}

	slog.Info("Session ended", "session", sess.ID)
	return 0
}
