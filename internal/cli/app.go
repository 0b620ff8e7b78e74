// Package cli is the interactive presentation layer of the travel planner.
// It prompts for input, calls the services, and renders their results.
// It holds the Session for the running process and passes it explicitly into
// every itinerary call; it keeps no other state.
package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"

	"github.com/pkordes/travel-planner/internal/domain"
	"github.com/pkordes/travel-planner/internal/middleware"
)

// AccountServicer defines the account operations the REPL depends on.
// Defining the interface here, in the consumer package, lets tests inject a
// fake without touching the database or service layer.
type AccountServicer interface {
	Register(ctx context.Context, username, credential string) (domain.Account, error)
	Authenticate(ctx context.Context, username, credential string) (domain.Account, error)
}

// ItineraryServicer defines the itinerary operations the REPL depends on.
type ItineraryServicer interface {
	Create(ctx context.Context, sess domain.Session, in domain.ItineraryInput) (domain.Itinerary, error)
	ListByOwner(ctx context.Context, sess domain.Session) ([]domain.Itinerary, error)
	Delete(ctx context.Context, sess domain.Session, id int64) error
	SetRating(ctx context.Context, sess domain.Session, id int64, rating int) (domain.Itinerary, error)
}

// Exporter produces the flat itinerary export.
type Exporter interface {
	Export(ctx context.Context, sess domain.Session) ([]domain.ExportRow, error)
}

// App is the REPL. Construct it with NewApp and call Run.
type App struct {
	accounts    AccountServicer
	itineraries ItineraryServicer
	exporter    Exporter

	session domain.Session

	in     io.Reader
	reader *bufio.Reader
	out    io.Writer

	dispatch middleware.Handler
}

// NewApp wires the REPL to its services and I/O. Every command runs through
// CommandID → SlogLogger → Recoverer before reaching its handler.
func NewApp(accounts AccountServicer, itineraries ItineraryServicer, exporter Exporter,
	in io.Reader, out io.Writer, log *slog.Logger) *App {
	a := &App{
		accounts:    accounts,
		itineraries: itineraries,
		exporter:    exporter,
		in:          in,
		reader:      bufio.NewReader(in),
		out:         out,
	}
	a.dispatch = middleware.Chain(a.route,
		middleware.CommandID,
		middleware.NewSlogLogger(log, a.sessionID),
		middleware.Recoverer,
	)
	return a
}

// Session returns the current session; the zero value when nobody is logged in.
func (a *App) Session() domain.Session {
	return a.session
}

func (a *App) sessionID() string {
	if !a.session.Active() {
		return ""
	}
	return a.session.ID.String()
}
