package cli

import (
	"context"

	"github.com/pkordes/travel-planner/internal/domain"
)

type mockAccounts struct {
	RegisterFn     func(ctx context.Context, username, credential string) (domain.Account, error)
	AuthenticateFn func(ctx context.Context, username, credential string) (domain.Account, error)
}

func (m *mockAccounts) Register(ctx context.Context, username, credential string) (domain.Account, error) {
	return m.RegisterFn(ctx, username, credential)
}
func (m *mockAccounts) Authenticate(ctx context.Context, username, credential string) (domain.Account, error) {
	return m.AuthenticateFn(ctx, username, credential)
}

type mockItineraries struct {
	CreateFn      func(ctx context.Context, sess domain.Session, in domain.ItineraryInput) (domain.Itinerary, error)
	ListByOwnerFn func(ctx context.Context, sess domain.Session) ([]domain.Itinerary, error)
	DeleteFn      func(ctx context.Context, sess domain.Session, id int64) error
	SetRatingFn   func(ctx context.Context, sess domain.Session, id int64, rating int) (domain.Itinerary, error)
}

func (m *mockItineraries) Create(ctx context.Context, sess domain.Session, in domain.ItineraryInput) (domain.Itinerary, error) {
	return m.CreateFn(ctx, sess, in)
}
func (m *mockItineraries) ListByOwner(ctx context.Context, sess domain.Session) ([]domain.Itinerary, error) {
	if m.ListByOwnerFn == nil {
		return []domain.Itinerary{}, nil
	}
	return m.ListByOwnerFn(ctx, sess)
}
func (m *mockItineraries) Delete(ctx context.Context, sess domain.Session, id int64) error {
	return m.DeleteFn(ctx, sess, id)
}
func (m *mockItineraries) SetRating(ctx context.Context, sess domain.Session, id int64, rating int) (domain.Itinerary, error) {
	return m.SetRatingFn(ctx, sess, id, rating)
}

type mockExporter struct {
	ExportFn func(ctx context.Context, sess domain.Session) ([]domain.ExportRow, error)
}

func (m *mockExporter) Export(ctx context.Context, sess domain.Session) ([]domain.ExportRow, error) {
	return m.ExportFn(ctx, sess)
}

// Compile-time checks: the fakes must satisfy the interfaces App consumes.
var (
	_ AccountServicer   = (*mockAccounts)(nil)
	_ ItineraryServicer = (*mockItineraries)(nil)
	_ Exporter          = (*mockExporter)(nil)
)
