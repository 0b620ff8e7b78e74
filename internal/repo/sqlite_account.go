package repo

import (
	"context"
	"fmt"

	"github.com/pkordes/travel-planner/internal/domain"
)

// sqliteAccountRepo is the SQLite implementation of AccountRepo.
type sqliteAccountRepo struct {
	db sqlDB
}

// NewSQLiteAccountRepo constructs an AccountRepo backed by a database/sql
// handle opened with the modernc.org/sqlite driver (*sql.DB or *sql.Tx).
func NewSQLiteAccountRepo(db sqlDB) AccountRepo {
	return &sqliteAccountRepo{db: db}
}

func (r *sqliteAccountRepo) Create(ctx context.Context, username, credential string) (domain.Account, error) {
	const q = `
		INSERT INTO accounts (username, credential)
		VALUES (?, ?)
		RETURNING id, username, credential`

	result, err := scanAccount(r.db.QueryRowContext(ctx, q, username, credential))
	if err != nil {
		if violated(err) == constraintUnique {
			return domain.Account{}, fmt.Errorf("repo.AccountRepo.Create: %w", domain.ErrDuplicateUsername)
		}
		return domain.Account{}, fmt.Errorf("repo.AccountRepo.Create: %w", err)
	}
	return result, nil
}

func (r *sqliteAccountRepo) GetByUsername(ctx context.Context, username string) (domain.Account, error) {
	const q = `
		SELECT id, username, credential
		FROM accounts
		WHERE username = ?`

	result, err := scanAccount(r.db.QueryRowContext(ctx, q, username))
	if err != nil {
		return domain.Account{}, fmt.Errorf("repo.AccountRepo.GetByUsername: %w", err)
	}
	return result, nil
}
