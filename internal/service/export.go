package service

import (
	"context"
	"fmt"

	"github.com/pkordes/travel-planner/internal/domain"
	"github.com/pkordes/travel-planner/internal/repo"
)

// ExportService assembles a flat export of the session account's itineraries.
type ExportService struct {
	itineraries repo.ItineraryRepo
}

// NewExportService constructs an ExportService backed by the provided repo.
func NewExportService(itineraries repo.ItineraryRepo) *ExportService {
	return &ExportService{itineraries: itineraries}
}

// Export returns one ExportRow per itinerary, in listing order, with total
// cost and rating label already derived.
func (s *ExportService) Export(ctx context.Context, sess domain.Session) ([]domain.ExportRow, error) {
	if !sess.Active() {
		return nil, fmt.Errorf("service.ExportService.Export: %w", domain.ErrNotAuthenticated)
	}
	list, err := s.itineraries.ListByOwner(ctx, sess.AccountID)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := make([]domain.ExportRow, 0, len(list))
	for _, it := range list {
		rows = append(rows, domain.ExportRow{
			ItineraryID:     it.ID,
			Username:        sess.Username,
			Destination:     it.Destination,
			Country:         it.Country,
			TravelDate:      it.TravelDate,
			ReturnDate:      it.ReturnDate,
			BudgetPerPerson: it.BudgetPerPerson,
			TravelerCount:   it.TravelerCount,
			TotalCost:       it.TotalCost(),
			Rating:          it.RatingLabel(),
		})
	}
	return rows, nil
}
