// Package domain contains the core data types for the travel planner.
// This package has no storage dependencies and is imported by every other
// internal package (repo, service, cli).
package domain

import "strconv"

// UnratedLabel is what RatingLabel returns for an itinerary nobody has rated yet.
const UnratedLabel = "unrated"

// Rating bounds, inclusive.
const (
	MinRating = 1
	MaxRating = 5
)

// Itinerary is a single planned trip owned by one account.
// TravelDate and ReturnDate are stored as ISO 8601 strings ("2006-01-02").
// Rating is nil until the owner rates the trip; it is the only field that
// changes after creation.
type Itinerary struct {
	ID              int64   `json:"id"`
	OwnerID         int64   `json:"owner_id"`
	Destination     string  `json:"destination"`
	Country         string  `json:"country"`
	TravelDate      string  `json:"travel_date"`
	ReturnDate      string  `json:"return_date"`
	BudgetPerPerson float64 `json:"budget_per_person"`
	TravelerCount   int     `json:"traveler_count"`
	Rating          *int    `json:"rating,omitempty"`
}

// TotalCost is derived at read time and never persisted.
func (it Itinerary) TotalCost() float64 {
	return it.BudgetPerPerson * float64(it.TravelerCount)
}

// RatingLabel renders the rating for display, or UnratedLabel when absent.
func (it Itinerary) RatingLabel() string {
	if it.Rating == nil {
		return UnratedLabel
	}
	return strconv.Itoa(*it.Rating)
}

// ItineraryInput carries the caller-supplied fields for a new itinerary.
// BudgetPerPerson and TravelerCount are pointers so that "not provided" can be
// told apart from zero.
type ItineraryInput struct {
	Destination     string
	Country         string
	TravelDate      string
	ReturnDate      string
	BudgetPerPerson *float64
	TravelerCount   *int
}
