// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	slogmulti "github.com/samber/slog-multi"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/AronAlberts/HR-elections/cliparse"
)

// Options configures the loggers created by New
type Options struct {
	Debug      bool
	File       string
	MaxSizeMB  int
	MaxBackups int
}

// FromConfig extracts the logging settings
func FromConfig(cfg cliparse.Config) Options {
	return Options{
		Debug:      cfg.Debug,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New creates the session logger.
//
// The terminal is shared with the menu, so only errors reach it unless
// Debug is set. When File is set every record at info level or above
// (debug with Debug) is also written as JSON to a rotated log file.
// The returned closer releases the log file.
func New(opts Options, console io.Writer) (*slog.Logger, io.Closer) {
	consoleLevel := slog.LevelError
	fileLevel := slog.LevelInfo
	if opts.Debug {
		consoleLevel = slog.LevelDebug
		fileLevel = slog.LevelDebug
	}

	consoleHandler := GetSlogHandler(consoleLevel, console)
	if opts.File == "" {
		return slog.New(consoleHandler), nopCloser{}
	}

	rotated := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
	}
	fileHandler := slog.NewJSONHandler(rotated, &slog.HandlerOptions{Level: fileLevel})

	return slog.New(slogmulti.Fanout(consoleHandler, fileHandler)), rotated
}

func logColors(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	if !isatty.IsTerminal(f.Fd()) {
		return false
	}

	return os.Getenv("TERM") != "dumb"
}

func GetSlogHandler(level slog.Leveler, out io.Writer) slog.Handler {
	return tint.NewHandler(out, &tint.Options{
		Level: level,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			if _, ok := attr.Value.Any().(error); attr.Key == "err" || ok {
				return tint.Attr(9, attr)
			}
			return attr
		},
		TimeFormat: time.TimeOnly,
		NoColor:    !logColors(out),
	})
}
