package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/travel-planner/internal/domain"
)

// ItineraryRepo defines the persistence operations for Itineraries.
// The service layer depends on this interface, not the concrete
// implementations, which allows the service to be unit-tested with a mock.
type ItineraryRepo interface {
	// Create inserts a new itinerary with no rating and returns the persisted
	// record with its DB-generated id. A foreign-key failure on owner_id is
	// reported as domain.ErrValidation.
	Create(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error)

	// GetByID retrieves a single itinerary by primary key.
	// Returns domain.ErrNotFound if no itinerary with that id exists.
	GetByID(ctx context.Context, id int64) (domain.Itinerary, error)

	// ListByOwner returns all itineraries of an account ordered by id ascending,
	// i.e. insertion order.
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Itinerary, error)

	// Delete removes an itinerary by id, whoever owns it.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error

	// SetRating overwrites the rating of an itinerary and returns the updated
	// record. Returns domain.ErrNotFound if it does not exist.
	SetRating(ctx context.Context, id int64, rating int) (domain.Itinerary, error)
}

// itineraryColumns is the column list every itinerary query selects, in the
// order scanItinerary expects.
const itineraryColumns = `id, owner_id, destination, country, travel_date, return_date,
		       budget_per_person, traveler_count, rating`

// pgItineraryRepo is the Postgres implementation of ItineraryRepo.
type pgItineraryRepo struct {
	db db
}

// NewItineraryRepo constructs an ItineraryRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewItineraryRepo(db db) ItineraryRepo {
	return &pgItineraryRepo{db: db}
}

// Create inserts a new itinerary row and returns the full persisted record.
func (r *pgItineraryRepo) Create(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error) {
	const q = `
		INSERT INTO itineraries (owner_id, destination, country, travel_date, return_date,
		                         budget_per_person, traveler_count)
		VALUES (@owner_id, @destination, @country, @travel_date, @return_date,
		        @budget_per_person, @traveler_count)
		RETURNING ` + itineraryColumns

	args := pgx.NamedArgs{
		"owner_id":          it.OwnerID,
		"destination":       it.Destination,
		"country":           it.Country,
		"travel_date":       it.TravelDate,
		"return_date":       it.ReturnDate,
		"budget_per_person": it.BudgetPerPerson,
		"traveler_count":    it.TravelerCount,
	}

	result, err := scanPgItinerary(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.Create: %w", translateWrite(err))
	}
	return result, nil
}

// GetByID retrieves an itinerary by primary key.
func (r *pgItineraryRepo) GetByID(ctx context.Context, id int64) (domain.Itinerary, error) {
	const q = `
		SELECT ` + itineraryColumns + `
		FROM itineraries
		WHERE id = @id`

	result, err := scanPgItinerary(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListByOwner returns an account's itineraries in insertion order.
func (r *pgItineraryRepo) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Itinerary, error) {
	const q = `
		SELECT ` + itineraryColumns + `
		FROM itineraries
		WHERE owner_id = @owner_id
		ORDER BY id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"owner_id": ownerID})
	if err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.ListByOwner: %w", err)
	}
	defer rows.Close()

	itineraries := []domain.Itinerary{}
	for rows.Next() {
		it, err := scanPgItinerary(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ItineraryRepo.ListByOwner: scan: %w", err)
		}
		itineraries = append(itineraries, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.ListByOwner: rows: %w", err)
	}
	return itineraries, nil
}

// Delete removes an itinerary by primary key.
func (r *pgItineraryRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM itineraries WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ItineraryRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ItineraryRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// SetRating overwrites the rating column and returns the updated record.
func (r *pgItineraryRepo) SetRating(ctx context.Context, id int64, rating int) (domain.Itinerary, error) {
	const q = `
		UPDATE itineraries
		SET rating = @rating
		WHERE id = @id
		RETURNING ` + itineraryColumns

	result, err := scanPgItinerary(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "rating": rating}))
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.SetRating: %w", translateWrite(err))
	}
	return result, nil
}

// scanPgItinerary maps a single Postgres row into a domain.Itinerary,
// handling the nullable rating column.
func scanPgItinerary(s scanner) (domain.Itinerary, error) {
	var (
		it     domain.Itinerary
		rating pgtype.Int4
	)

	err := s.Scan(&it.ID, &it.OwnerID, &it.Destination, &it.Country, &it.TravelDate, &it.ReturnDate,
		&it.BudgetPerPerson, &it.TravelerCount, &rating)
	if err != nil {
		if isNoRows(err) {
			return domain.Itinerary{}, domain.ErrNotFound
		}
		return domain.Itinerary{}, err
	}

	if rating.Valid {
		v := int(rating.Int32)
		it.Rating = &v
	}
	return it, nil
}

// translateWrite turns constraint failures on itinerary writes into domain
// errors. Anything else is returned unchanged.
func translateWrite(err error) error {
	switch violated(err) {
	case constraintForeignKey:
		return fmt.Errorf("%w: owner account does not exist", domain.ErrValidation)
	case constraintCheck:
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return err
}
