package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pkordes/travel-planner/internal/domain"
	"github.com/pkordes/travel-planner/internal/middleware"
)

// Run starts the read-eval-print loop. It reads a line, takes the first token
// as the command, and dispatches it. Failures are shown to the user and the
// loop continues; it returns nil on EOF or exit, and ctx.Err() if ctx is done.
//
// Commands:
//
//	help                 show available commands
//	register             create an account
//	login                authenticate and start a session
//	add                  add an itinerary
//	list | l             list your itineraries
//	delete <id>          delete an itinerary
//	rate <id> [1-5]      rate an itinerary
//	export [file]        write your itineraries as CSV
//	exit | quit          leave the program
func (a *App) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(a.out, a.prompt())

		line, err := a.reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(a.out)
				return nil
			}
			return err
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		name := strings.ToLower(parts[0])
		if name == "exit" || name == "quit" {
			fmt.Fprintln(a.out, "Bye!")
			return nil
		}

		if err := a.dispatch(ctx, middleware.Command{Name: name, Args: parts[1:]}); err != nil {
			// Input ran out in the middle of a prompt.
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(a.out)
				return nil
			}
			fmt.Fprintln(a.out, notice(err))
		}
	}
}

func (a *App) prompt() string {
	if a.session.Active() {
		return fmt.Sprintf("planner (%s)> ", a.session.Username)
	}
	return "planner> "
}

// route maps a command name to its handler.
func (a *App) route(ctx context.Context, cmd middleware.Command) error {
	switch cmd.Name {
	case "help":
		a.help()
		return nil
	case "register":
		return a.register(ctx)
	case "login":
		return a.login(ctx)
	case "add":
		return a.add(ctx)
	case "l", "list":
		return a.list(ctx)
	case "delete":
		return a.delete(ctx, cmd.Args)
	case "rate":
		return a.rate(ctx, cmd.Args)
	case "export":
		return a.export(ctx, cmd.Args)
	default:
		return fmt.Errorf("%w: unknown command %q, type help", domain.ErrValidation, cmd.Name)
	}
}

func (a *App) help() {
	if a.session.Active() {
		fmt.Fprintln(a.out, "Available commands: add, (l)ist, delete <id>, rate <id> [1-5], export [file], register, login, exit")
		return
	}
	fmt.Fprintln(a.out, "Available commands: register, login, exit")
}
