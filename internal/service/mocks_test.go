package service_test

import (
	"context"

	"github.com/pkordes/travel-planner/internal/domain"
	"github.com/pkordes/travel-planner/internal/repo"
)

// mockAccountRepo is a hand-written test double for repo.AccountRepo.
// Each method is a function field; set only the ones your test needs.
type mockAccountRepo struct {
	create        func(ctx context.Context, username, credential string) (domain.Account, error)
	getByUsername func(ctx context.Context, username string) (domain.Account, error)
}

func (m *mockAccountRepo) Create(ctx context.Context, username, credential string) (domain.Account, error) {
	return m.create(ctx, username, credential)
}
func (m *mockAccountRepo) GetByUsername(ctx context.Context, username string) (domain.Account, error) {
	return m.getByUsername(ctx, username)
}

// mockItineraryRepo is a hand-written test double for repo.ItineraryRepo.
// A nil function field panics when called, which is how tests assert that a
// code path never reached the repo.
type mockItineraryRepo struct {
	create      func(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error)
	getByID     func(ctx context.Context, id int64) (domain.Itinerary, error)
	listByOwner func(ctx context.Context, ownerID int64) ([]domain.Itinerary, error)
	delete      func(ctx context.Context, id int64) error
	setRating   func(ctx context.Context, id int64, rating int) (domain.Itinerary, error)
}

func (m *mockItineraryRepo) Create(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error) {
	return m.create(ctx, it)
}
func (m *mockItineraryRepo) GetByID(ctx context.Context, id int64) (domain.Itinerary, error) {
	return m.getByID(ctx, id)
}
func (m *mockItineraryRepo) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Itinerary, error) {
	return m.listByOwner(ctx, ownerID)
}
func (m *mockItineraryRepo) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}
func (m *mockItineraryRepo) SetRating(ctx context.Context, id int64, rating int) (domain.Itinerary, error) {
	return m.setRating(ctx, id, rating)
}

// compile-time checks: the mocks must satisfy the repo interfaces.
var (
	_ repo.AccountRepo   = (*mockAccountRepo)(nil)
	_ repo.ItineraryRepo = (*mockItineraryRepo)(nil)
)

func ptr[T any](v T) *T { return &v }

func aliceSession() domain.Session {
	return domain.NewSession(domain.Account{ID: 1, Username: "alice"})
}
