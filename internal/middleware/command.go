// Package middleware provides reusable command middleware for the planner REPL.
// A middleware wraps a Handler the same way net/http middleware wraps an
// http.Handler: it may act before and after the inner call.
package middleware

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/pkordes/travel-planner/internal/domain"
)

// Command is one parsed REPL line: the first token and the rest.
type Command struct {
	Name string
	Args []string
}

// Handler executes a single command.
type Handler func(ctx context.Context, cmd Command) error

// Middleware decorates a Handler.
type Middleware func(Handler) Handler

// Chain wraps h so that mws run in the order given: the first one is outermost.
func Chain(h Handler, mws ...Middleware) Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

type ctxKey int

const commandIDKey ctxKey = iota

// CommandID assigns a fresh id to every command and stores it in the context
// so log lines written during the command can be correlated.
func CommandID(next Handler) Handler {
	return func(ctx context.Context, cmd Command) error {
		ctx = context.WithValue(ctx, commandIDKey, uuid.NewString())
		return next(ctx, cmd)
	}
}

// GetCommandID returns the id set by CommandID, or "" outside a command.
func GetCommandID(ctx context.Context) string {
	id, _ := ctx.Value(commandIDKey).(string)
	return id
}

// Outcome names the result of a command for logs: "ok", one of the domain
// error kinds, or "error" for anything unexpected.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrDuplicateUsername):
		return "duplicate_username"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrNotAuthenticated):
		return "not_authenticated"
	case errors.Is(err, domain.ErrValidation):
		return "validation_error"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrPanic):
		return "panic"
	}
	return "error"
}
