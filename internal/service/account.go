// Package service contains the business logic for the travel planner.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here. Services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/pkordes/travel-planner/internal/domain"
	"github.com/pkordes/travel-planner/internal/repo"
)

// AccountService implements registration and authentication.
type AccountService struct {
	repo repo.AccountRepo
}

// NewAccountService constructs an AccountService backed by the provided AccountRepo.
func NewAccountService(r repo.AccountRepo) *AccountService {
	return &AccountService{repo: r}
}

// Register creates a new account.
// Returns domain.ErrValidation if either field is blank and
// domain.ErrDuplicateUsername if the username is taken.
func (s *AccountService) Register(ctx context.Context, username, credential string) (domain.Account, error) {
	if strings.TrimSpace(username) == "" {
		return domain.Account{}, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if credential == "" {
		return domain.Account{}, fmt.Errorf("%w: credential is required", domain.ErrValidation)
	}

	acct, err := s.repo.Create(ctx, username, credential)
	if err != nil {
		return domain.Account{}, fmt.Errorf("service.AccountService.Register: %w", err)
	}
	return acct, nil
}

// Authenticate returns the account whose username and credential both match
// exactly. An unknown username and a wrong credential produce the same
// domain.ErrInvalidCredentials error, message included.
func (s *AccountService) Authenticate(ctx context.Context, username, credential string) (domain.Account, error) {
	acct, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Account{}, errInvalidCredentials
		}
		return domain.Account{}, fmt.Errorf("service.AccountService.Authenticate: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(acct.Credential), []byte(credential)) != 1 {
		return domain.Account{}, errInvalidCredentials
	}
	return acct, nil
}

var errInvalidCredentials = fmt.Errorf("service.AccountService.Authenticate: %w", domain.ErrInvalidCredentials)
