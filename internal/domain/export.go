package domain

// ExportRow is a single row in the itinerary export.
// It is a flat view of one itinerary with its derived fields already computed,
// so writers (CSV, JSON) never need to know how TotalCost is derived.
type ExportRow struct {
	ItineraryID     int64
	Username        string
	Destination     string
	Country         string
	TravelDate      string
	ReturnDate      string
	BudgetPerPerson float64
	TravelerCount   int
	TotalCost       float64
	Rating          string // rating digit or UnratedLabel
}
