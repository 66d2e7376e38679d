// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package console

import (
	"log/slog"
	"time"
)

// Action is one menu entry. Returned errors are shown to the user and the
// menu is displayed again.
type Action func() error

// WithLogging wraps an action with start/completion logging
func WithLogging(logger *slog.Logger, name string, next Action) Action {
	return func() error {
		start := time.Now()

		logger.Info("action started", "action", name)

		err := next()

		duration := time.Since(start)
		attrs := []any{"action", name, "duration_ms", duration.Milliseconds()}
		if err != nil {
			attrs = append(attrs, "error", err)
		}
		logger.Info("action completed", attrs...)

		return err
	}
}
