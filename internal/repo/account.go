package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/travel-planner/internal/domain"
)

// AccountRepo defines the persistence operations for Accounts.
// Accounts are append-only; there is no update or delete.
type AccountRepo interface {
	// Create inserts a new account and returns it with the DB-generated id.
	// Returns domain.ErrDuplicateUsername if the username is already taken;
	// uniqueness is enforced by the table's unique index, not by a prior lookup.
	Create(ctx context.Context, username, credential string) (domain.Account, error)

	// GetByUsername retrieves an account by exact (case-sensitive) username.
	// Returns domain.ErrNotFound if no account has that username.
	GetByUsername(ctx context.Context, username string) (domain.Account, error)
}

// pgAccountRepo is the Postgres implementation of AccountRepo.
type pgAccountRepo struct {
	db db
}

// NewAccountRepo constructs an AccountRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewAccountRepo(db db) AccountRepo {
	return &pgAccountRepo{db: db}
}

// Create inserts a new account row and returns the full persisted record.
func (r *pgAccountRepo) Create(ctx context.Context, username, credential string) (domain.Account, error) {
	const q = `
		INSERT INTO accounts (username, credential)
		VALUES (@username, @credential)
		RETURNING id, username, credential`

	args := pgx.NamedArgs{
		"username":   username,
		"credential": credential,
	}

	result, err := scanAccount(r.db.QueryRow(ctx, q, args))
	if err != nil {
		if violated(err) == constraintUnique {
			return domain.Account{}, fmt.Errorf("repo.AccountRepo.Create: %w", domain.ErrDuplicateUsername)
		}
		return domain.Account{}, fmt.Errorf("repo.AccountRepo.Create: %w", err)
	}
	return result, nil
}

// GetByUsername retrieves an account by its unique username.
func (r *pgAccountRepo) GetByUsername(ctx context.Context, username string) (domain.Account, error) {
	const q = `
		SELECT id, username, credential
		FROM accounts
		WHERE username = @username`

	result, err := scanAccount(r.db.QueryRow(ctx, q, pgx.NamedArgs{"username": username}))
	if err != nil {
		return domain.Account{}, fmt.Errorf("repo.AccountRepo.GetByUsername: %w", err)
	}
	return result, nil
}

// scanAccount maps a single database row into a domain.Account.
// Both pgx.ErrNoRows and sql.ErrNoRows become domain.ErrNotFound so the
// helper serves the Postgres and SQLite repos alike.
func scanAccount(s scanner) (domain.Account, error) {
	var a domain.Account
	if err := s.Scan(&a.ID, &a.Username, &a.Credential); err != nil {
		if isNoRows(err) {
			return domain.Account{}, domain.ErrNotFound
		}
		return domain.Account{}, err
	}
	return a, nil
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}
