package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/pkordes/travel-planner/internal/domain"
	"github.com/pkordes/travel-planner/internal/repo"
)

// ItineraryService implements the itinerary operations. Every method takes
// the caller's Session and fails with domain.ErrNotAuthenticated, without
// touching the repo, when it is not active.
//
// Delete and SetRating do not check that the itinerary belongs to the
// session's account; any authenticated caller may act on any id.
type ItineraryService struct {
	repo repo.ItineraryRepo
}

// NewItineraryService constructs an ItineraryService backed by the provided ItineraryRepo.
func NewItineraryService(r repo.ItineraryRepo) *ItineraryService {
	return &ItineraryService{repo: r}
}

// Create validates the input and persists a new, unrated itinerary owned by
// the session's account. Returns domain.ErrValidation for missing or invalid
// fields; nothing is written in that case.
func (s *ItineraryService) Create(ctx context.Context, sess domain.Session, in domain.ItineraryInput) (domain.Itinerary, error) {
	if !sess.Active() {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Create: %w", domain.ErrNotAuthenticated)
	}
	it, err := validateItinerary(in)
	if err != nil {
		return domain.Itinerary{}, err
	}
	it.OwnerID = sess.AccountID

	result, err := s.repo.Create(ctx, it)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Create: %w", err)
	}
	return result, nil
}

// ListByOwner returns every itinerary of the session's account in insertion order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ItineraryService) ListByOwner(ctx context.Context, sess domain.Session) ([]domain.Itinerary, error) {
	if !sess.Active() {
		return nil, fmt.Errorf("service.ItineraryService.ListByOwner: %w", domain.ErrNotAuthenticated)
	}
	list, err := s.repo.ListByOwner(ctx, sess.AccountID)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.ListByOwner: %w", err)
	}
	if list == nil {
		return []domain.Itinerary{}, nil
	}
	return list, nil
}

// Delete removes an itinerary by id.
// Returns domain.ErrNotFound if it does not exist.
func (s *ItineraryService) Delete(ctx context.Context, sess domain.Session, id int64) error {
	if !sess.Active() {
		return fmt.Errorf("service.ItineraryService.Delete: %w", domain.ErrNotAuthenticated)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ItineraryService.Delete: %w", err)
	}
	return nil
}

// SetRating overwrites an itinerary's rating. Setting the same value twice
// leaves the same state. Returns domain.ErrValidation when rating is outside
// 1..5 (no write happens) and domain.ErrNotFound for an unknown id.
func (s *ItineraryService) SetRating(ctx context.Context, sess domain.Session, id int64, rating int) (domain.Itinerary, error) {
	if !sess.Active() {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.SetRating: %w", domain.ErrNotAuthenticated)
	}
	if rating < domain.MinRating || rating > domain.MaxRating {
		return domain.Itinerary{}, fmt.Errorf("%w: rating must be between %d and %d", domain.ErrValidation, domain.MinRating, domain.MaxRating)
	}

	result, err := s.repo.SetRating(ctx, id, rating)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.SetRating: %w", err)
	}
	return result, nil
}

// validateItinerary enforces the create-time rules and returns the trimmed
// record ready to persist.
//   - Destination, country, travel date and return date must be non-empty
//     (whitespace-only values are rejected). Dates are not parsed.
//   - Budget per person must be present, finite and >= 0.
//   - Traveler count must be present and >= 1.
func validateItinerary(in domain.ItineraryInput) (domain.Itinerary, error) {
	it := domain.Itinerary{
		Destination: strings.TrimSpace(in.Destination),
		Country:     strings.TrimSpace(in.Country),
		TravelDate:  strings.TrimSpace(in.TravelDate),
		ReturnDate:  strings.TrimSpace(in.ReturnDate),
	}

	for _, f := range []struct{ name, value string }{
		{"destination", it.Destination},
		{"country", it.Country},
		{"travel_date", it.TravelDate},
		{"return_date", it.ReturnDate},
	} {
		if f.value == "" {
			return domain.Itinerary{}, fmt.Errorf("%w: %s is required", domain.ErrValidation, f.name)
		}
	}

	if in.BudgetPerPerson == nil {
		return domain.Itinerary{}, fmt.Errorf("%w: budget_per_person is required", domain.ErrValidation)
	}
	b := *in.BudgetPerPerson
	if math.IsNaN(b) || math.IsInf(b, 0) || b < 0 {
		return domain.Itinerary{}, fmt.Errorf("%w: budget_per_person must be a non-negative number", domain.ErrValidation)
	}
	it.BudgetPerPerson = b

	if in.TravelerCount == nil {
		return domain.Itinerary{}, fmt.Errorf("%w: traveler_count is required", domain.ErrValidation)
	}
	if *in.TravelerCount < 1 {
		return domain.Itinerary{}, fmt.Errorf("%w: traveler_count must be at least 1", domain.ErrValidation)
	}
	it.TravelerCount = *in.TravelerCount

	return it, nil
}
