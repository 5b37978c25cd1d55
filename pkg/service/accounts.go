package service

import (
	"context"
	"log/slog"

	"github.com/meucofre/meucofre/pkg/domain"
	"github.com/meucofre/meucofre/pkg/dto"
	"github.com/meucofre/meucofre/pkg/repository"
	"github.com/meucofre/meucofre/pkg/validation"
)

// AccountService manages money accounts.
type AccountService struct {
	accounts resource[domain.Account, dto.AccountCreate, dto.AccountUpdate]
}

// NewAccountService wires the account collection.
func NewAccountService(
	col repository.Collection[domain.Account],
	val *validation.Validator,
	log *slog.Logger,
) *AccountService {
	return &AccountService{
		accounts: newResource[domain.Account, dto.AccountCreate, dto.AccountUpdate](
			repository.ColAccounts, col, val, log),
	}
}

// Create validates in and stores a new account.
func (s *AccountService) Create(ctx context.Context, in dto.AccountCreate) (*domain.Account, error) {
	return s.accounts.create(ctx, in.UserID, in)
}

// Update applies the supplied fields to an existing account.
func (s *AccountService) Update(ctx context.Context, in dto.AccountUpdate) (*domain.Account, error) {
	return s.accounts.update(ctx, in.UserID, in.ID, in)
}

// Get returns one account of the user.
func (s *AccountService) Get(ctx context.Context, userID, id string) (*domain.Account, error) {
	return s.accounts.get(ctx, userID, id)
}

// List returns a page of the user's accounts.
func (s *AccountService) List(ctx context.Context, userID string, page dto.Pagination) (*repository.Page[domain.Account], error) {
	return s.accounts.list(ctx, userID, page)
}

// Delete removes one account of the user.
func (s *AccountService) Delete(ctx context.Context, userID, id string) error {
	return s.accounts.delete(ctx, userID, id)
}
