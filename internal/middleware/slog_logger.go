package middleware

import (
	"context"
	"log/slog"
	"time"
)

// NewSlogLogger returns a middleware that logs each command as one structured
// line via the provided slog.Logger. It captures the command name, outcome,
// duration, the command id set by CommandID, and the current session id as
// reported by sessionID (empty when nobody is logged in).
//
// Wire it after CommandID so the id is available. Arguments are never logged
// because login and register arguments can carry credentials.
func NewSlogLogger(log *slog.Logger, sessionID func() string) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, cmd Command) error {
			start := time.Now()

			err := next(ctx, cmd)

			level := slog.LevelInfo
			if Outcome(err) == "error" || Outcome(err) == "panic" {
				level = slog.LevelError
			}
			attrs := []any{
				"command", cmd.Name,
				"status", Outcome(err),
				"duration_ms", time.Since(start).Milliseconds(),
				"command_id", GetCommandID(ctx),
				"session_id", sessionID(),
			}
			if level == slog.LevelError {
				attrs = append(attrs, "error", err)
			}
			log.Log(ctx, level, "command", attrs...)
			return err
		}
	}
}
