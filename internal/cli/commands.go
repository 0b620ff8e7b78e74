package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/pkordes/travel-planner/internal/domain"
)

// register prompts for a username and credential and creates the account.
// It does not log the new account in.
func (a *App) register(ctx context.Context) error {
	username, err := promptLine(a.reader, a.out, "Username")
	if err != nil {
		return err
	}
	credential, err := promptSecret(a.reader, a.out, a.in, "Password")
	if err != nil {
		return err
	}

	if _, err := a.accounts.Register(ctx, username, credential); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "User registered successfully!")
	return nil
}

// login authenticates and replaces the current session. A failed attempt
// leaves any existing session in place.
func (a *App) login(ctx context.Context) error {
	username, err := promptLine(a.reader, a.out, "Username")
	if err != nil {
		return err
	}
	credential, err := promptSecret(a.reader, a.out, a.in, "Password")
	if err != nil {
		return err
	}

	acct, err := a.accounts.Authenticate(ctx, username, credential)
	if err != nil {
		return err
	}
	a.session = domain.NewSession(acct)
	fmt.Fprintln(a.out, "Logged in successfully!")
	return a.list(ctx)
}

// add prompts for every itinerary field and creates it. Blank numeric
// answers are passed on as missing so the service reports them.
func (a *App) add(ctx context.Context) error {
	// Don't make the user fill a form that can only be rejected.
	if !a.session.Active() {
		return domain.ErrNotAuthenticated
	}

	var in domain.ItineraryInput
	for _, f := range []struct {
		prompt string
		dst    *string
	}{
		{"Destination", &in.Destination},
		{"Country", &in.Country},
		{"Travel date (YYYY-MM-DD)", &in.TravelDate},
		{"Return date (YYYY-MM-DD)", &in.ReturnDate},
	} {
		v, err := promptLine(a.reader, a.out, f.prompt)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	budget, err := promptLine(a.reader, a.out, "Budget per person")
	if err != nil {
		return err
	}
	if budget != "" {
		b, err := strconv.ParseFloat(budget, 64)
		if err != nil {
			return fmt.Errorf("%w: budget_per_person must be a number", domain.ErrValidation)
		}
		in.BudgetPerPerson = &b
	}

	travelers, err := promptLine(a.reader, a.out, "Number of travelers")
	if err != nil {
		return err
	}
	if travelers != "" {
		n, err := strconv.Atoi(travelers)
		if err != nil {
			return fmt.Errorf("%w: traveler_count must be a whole number", domain.ErrValidation)
		}
		in.TravelerCount = &n
	}

	created, err := a.itineraries.Create(ctx, a.session, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Itinerary %d added.\n", created.ID)
	return a.list(ctx)
}

// list fetches and renders the session account's itineraries.
func (a *App) list(ctx context.Context) error {
	items, err := a.itineraries.ListByOwner(ctx, a.session)
	if err != nil {
		return err
	}
	renderList(a.out, items)
	return nil
}

// delete removes the itinerary whose id is given as the first argument.
func (a *App) delete(ctx context.Context, args []string) error {
	id, err := idArg(args)
	if err != nil {
		return err
	}
	if err := a.itineraries.Delete(ctx, a.session, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Itinerary %d deleted.\n", id)
	return a.list(ctx)
}

// rate sets the rating of an itinerary. The rating may be given as the
// second argument or entered at the prompt.
func (a *App) rate(ctx context.Context, args []string) error {
	id, err := idArg(args)
	if err != nil {
		return err
	}

	var raw string
	if len(args) > 1 {
		raw = args[1]
	} else {
		if raw, err = promptLine(a.reader, a.out, "Rating (1-5)"); err != nil {
			return err
		}
	}
	rating, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%w: rating must be a whole number between %d and %d",
			domain.ErrValidation, domain.MinRating, domain.MaxRating)
	}

	updated, err := a.itineraries.SetRating(ctx, a.session, id, rating)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Itinerary %d rated %s.\n", updated.ID, updated.RatingLabel())
	return a.list(ctx)
}

// export writes the CSV export to the file named by the first argument, or
// to the REPL output when no file is given.
func (a *App) export(ctx context.Context, args []string) error {
	rows, err := a.exporter.Export(ctx, a.session)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return writeCSV(a.out, rows)
	}

	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("cli.export: %w", err)
	}
	if err := writeCSV(f, rows); err != nil {
		f.Close()
		return fmt.Errorf("cli.export: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cli.export: %w", err)
	}
	fmt.Fprintf(a.out, "Exported %d itineraries to %s.\n", len(rows), args[0])
	return nil
}

// idArg parses the itinerary id the user typed. Ids always come from the
// command line, never from rendered output.
func idArg(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("%w: itinerary id is required", domain.ErrValidation)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: itinerary id must be a positive whole number", domain.ErrValidation)
	}
	return id, nil
}
