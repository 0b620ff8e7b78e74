package repo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pkordes/travel-planner/internal/domain"
)

// sqliteItineraryRepo is the SQLite implementation of ItineraryRepo.
// Queries mirror the Postgres ones with positional placeholders.
type sqliteItineraryRepo struct {
	db sqlDB
}

// NewSQLiteItineraryRepo constructs an ItineraryRepo backed by a database/sql
// handle opened with the modernc.org/sqlite driver (*sql.DB or *sql.Tx).
// The handle must have foreign keys enabled for owner_id to be enforced.
func NewSQLiteItineraryRepo(db sqlDB) ItineraryRepo {
	return &sqliteItineraryRepo{db: db}
}

func (r *sqliteItineraryRepo) Create(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error) {
	const q = `
		INSERT INTO itineraries (owner_id, destination, country, travel_date, return_date,
		                         budget_per_person, traveler_count)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING ` + itineraryColumns

	row := r.db.QueryRowContext(ctx, q,
		it.OwnerID, it.Destination, it.Country, it.TravelDate, it.ReturnDate,
		it.BudgetPerPerson, it.TravelerCount)
	result, err := scanSQLiteItinerary(row)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.Create: %w", translateWrite(err))
	}
	return result, nil
}

func (r *sqliteItineraryRepo) GetByID(ctx context.Context, id int64) (domain.Itinerary, error) {
	const q = `
		SELECT ` + itineraryColumns + `
		FROM itineraries
		WHERE id = ?`

	result, err := scanSQLiteItinerary(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *sqliteItineraryRepo) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Itinerary, error) {
	const q = `
		SELECT ` + itineraryColumns + `
		FROM itineraries
		WHERE owner_id = ?
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.ListByOwner: %w", err)
	}
	defer rows.Close()

	itineraries := []domain.Itinerary{}
	for rows.Next() {
		it, err := scanSQLiteItinerary(rows)
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

func (r *sqliteItineraryRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM itineraries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("repo.ItineraryRepo.Delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("repo.ItineraryRepo.Delete: rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("repo.ItineraryRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *sqliteItineraryRepo) SetRating(ctx context.Context, id int64, rating int) (domain.Itinerary, error) {
	const q = `
		UPDATE itineraries
		SET rating = ?
		WHERE id = ?
		RETURNING ` + itineraryColumns

	result, err := scanSQLiteItinerary(r.db.QueryRowContext(ctx, q, rating, id))
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.SetRating: %w", translateWrite(err))
	}
	return result, nil
}

// scanSQLiteItinerary is scanPgItinerary for database/sql rows, where the
// nullable rating arrives as sql.NullInt64.
func scanSQLiteItinerary(s scanner) (domain.Itinerary, error) {
	var (
		it     domain.Itinerary
		rating sql.NullInt64
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
		v := int(rating.Int64)
		it.Rating = &v
	}
	return it, nil
}
