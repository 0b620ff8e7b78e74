package cli

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkordes/travel-planner/internal/domain"
	"github.com/pkordes/travel-planner/internal/middleware"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"itinerary_id", "username", "destination", "country", "travel_date", "return_date",
	"budget_per_person", "traveler_count", "total_cost", "rating",
}

// renderList prints one line per itinerary. The id leads each line so the
// user can pass it to delete and rate.
func renderList(w io.Writer, items []domain.Itinerary) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No itineraries yet. Use add to plan one.")
		return
	}
	for _, it := range items {
		fmt.Fprintf(w, "%d: %s | Country: %s | Travel Date: %s | Return Date: %s | Budget: %.2f | Travelers: %d | Total Cost: %.2f | Rating: %s\n",
			it.ID, it.Destination, it.Country, it.TravelDate, it.ReturnDate,
			it.BudgetPerPerson, it.TravelerCount, it.TotalCost(), it.RatingLabel())
	}
}

// writeCSV encodes rows with a header line.
func writeCSV(w io.Writer, rows []domain.ExportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeaders); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			strconv.FormatInt(r.ItineraryID, 10),
			r.Username,
			r.Destination,
			r.Country,
			r.TravelDate,
			r.ReturnDate,
			strconv.FormatFloat(r.BudgetPerPerson, 'f', 2, 64),
			strconv.Itoa(r.TravelerCount),
			strconv.FormatFloat(r.TotalCost, 'f', 2, 64),
			r.Rating,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// notice turns a command error into the line shown to the user.
func notice(err error) string {
	switch {
	case errors.Is(err, domain.ErrDuplicateUsername):
		return "Username already exists!"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "Invalid username or password."
	case errors.Is(err, domain.ErrNotAuthenticated):
		return "You must log in first."
	case errors.Is(err, domain.ErrNotFound):
		return "No itinerary with that id."
	case errors.Is(err, domain.ErrValidation):
		return "Input error: " + validationMessage(err)
	case errors.Is(err, middleware.ErrPanic):
		return "Something went wrong. The details were logged."
	}
	return "Something went wrong: " + err.Error()
}

// validationMessage extracts the human-readable part from a wrapped
// domain.ErrValidation error.
// e.g. "service.ItineraryService.Create: validation error: country is required" → "country is required"
func validationMessage(err error) string {
	msg := err.Error()
	marker := domain.ErrValidation.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}
