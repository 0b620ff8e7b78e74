package middleware

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
)

// ErrPanic wraps a panic recovered from a command.
var ErrPanic = errors.New("command panicked")

// Recoverer catches panics in the wrapped handler and turns them into an
// ErrPanic error carrying the panic value and stack, so one broken command
// does not take the REPL down.
func Recoverer(next Handler) Handler {
	return func(ctx context.Context, cmd Command) (err error) {
		defer func() {
			if p := recover(); p != nil {
				err = fmt.Errorf("%w: %v\n%s", ErrPanic, p, debug.Stack())
			}
		}()
		return next(ctx, cmd)
	}
}
