package service

import (
	"context"
	"log/slog"

	"github.com/meucofre/meucofre/pkg/domain"
	"github.com/meucofre/meucofre/pkg/dto"
	"github.com/meucofre/meucofre/pkg/repository"
	"github.com/meucofre/meucofre/pkg/validation"
)

// InstallmentService manages installment groups.
type InstallmentService struct {
	groups resource[domain.InstallmentGroup, dto.InstallmentGroupCreate, dto.InstallmentGroupUpdate]
}

// NewInstallmentService wires the installment-group collection.
func NewInstallmentService(
	col repository.Collection[domain.InstallmentGroup],
	val *validation.Validator,
	log *slog.Logger,
) *InstallmentService {
	return &InstallmentService{
		groups: newResource[domain.InstallmentGroup, dto.InstallmentGroupCreate, dto.InstallmentGroupUpdate](
			repository.ColInstallmentGroups, col, val, log),
	}
}

// Create validates in and stores a new installment group.
func (s *InstallmentService) Create(ctx context.Context, in dto.InstallmentGroupCreate) (*domain.InstallmentGroup, error) {
	return s.groups.create(ctx, in.UserID, in)
}

// Update applies the supplied fields to an existing group.
func (s *InstallmentService) Update(ctx context.Context, in dto.InstallmentGroupUpdate) (*domain.InstallmentGroup, error) {
	return s.groups.update(ctx, in.UserID, in.ID, in)
}

// Get returns one installment group of the user.
func (s *InstallmentService) Get(ctx context.Context, userID, id string) (*domain.InstallmentGroup, error) {
	return s.groups.get(ctx, userID, id)
}

// List returns a page of the user's installment groups.
func (s *InstallmentService) List(ctx context.Context, userID string, page dto.Pagination) (*repository.Page[domain.InstallmentGroup], error) {
	return s.groups.list(ctx, userID, page)
}

// Delete removes one installment group of the user.
func (s *InstallmentService) Delete(ctx context.Context, userID, id string) error {
	return s.groups.delete(ctx, userID, id)
}
