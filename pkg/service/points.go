package service

import (
	"context"
	"log/slog"

	"github.com/meucofre/meucofre/pkg/domain"
	"github.com/meucofre/meucofre/pkg/dto"
	"github.com/meucofre/meucofre/pkg/repository"
	"github.com/meucofre/meucofre/pkg/validation"
)

// PointsCollections groups the loyalty-program collections handed to the
// service.
type PointsCollections struct {
	Programs   repository.Collection[domain.PointsProgram]
	Balances   repository.Collection[domain.PointsBalance]
	Operations repository.Collection[domain.PointsOperation]
	Offers     repository.Collection[domain.PointsOffer]
}

// PointsService manages loyalty-program bookkeeping. Offers are global
// documents: they carry no owner and are stored unscoped.
type PointsService struct {
	programs   resource[domain.PointsProgram, dto.PointsProgramCreate, dto.PointsProgramUpdate]
	balances   resource[domain.PointsBalance, dto.PointsBalanceCreate, dto.PointsBalanceUpdate]
	operations resource[domain.PointsOperation, dto.PointsOperationCreate, dto.PointsOperationUpdate]
	offers     resource[domain.PointsOffer, dto.PointsOfferCreate, dto.PointsOfferUpdate]
}

// NewPointsService wires the loyalty collections.
func NewPointsService(cols PointsCollections, val *validation.Validator, log *slog.Logger) *PointsService {
	return &PointsService{
		programs: newResource[domain.PointsProgram, dto.PointsProgramCreate, dto.PointsProgramUpdate](
			repository.ColPointsPrograms, cols.Programs, val, log),
		balances: newResource[domain.PointsBalance, dto.PointsBalanceCreate, dto.PointsBalanceUpdate](
			repository.ColPointsBalances, cols.Balances, val, log),
		operations: newResource[domain.PointsOperation, dto.PointsOperationCreate, dto.PointsOperationUpdate](
			repository.ColPointsOperations, cols.Operations, val, log),
		offers: newResource[domain.PointsOffer, dto.PointsOfferCreate, dto.PointsOfferUpdate](
			repository.ColPointsOffers, cols.Offers, val, log),
	}
}

// CreateProgram validates in and stores a new program enrollment.
func (s *PointsService) CreateProgram(ctx context.Context, in dto.PointsProgramCreate) (*domain.PointsProgram, error) {
	return s.programs.create(ctx, in.UserID, in)
}

// UpdateProgram applies the supplied fields to a program enrollment.
func (s *PointsService) UpdateProgram(ctx context.Context, in dto.PointsProgramUpdate) (*domain.PointsProgram, error) {
	return s.programs.update(ctx, in.UserID, in.ID, in)
}

// GetProgram returns one program enrollment of the user.
func (s *PointsService) GetProgram(ctx context.Context, userID, id string) (*domain.PointsProgram, error) {
	return s.programs.get(ctx, userID, id)
}

// ListPrograms returns a page of the user's program enrollments.
func (s *PointsService) ListPrograms(ctx context.Context, userID string, page dto.Pagination) (*repository.Page[domain.PointsProgram], error) {
	return s.programs.list(ctx, userID, page)
}

// DeleteProgram removes one program enrollment of the user.
func (s *PointsService) DeleteProgram(ctx context.Context, userID, id string) error {
	return s.programs.delete(ctx, userID, id)
}

// CreateBalance validates in and stores a new points lot.
func (s *PointsService) CreateBalance(ctx context.Context, in dto.PointsBalanceCreate) (*domain.PointsBalance, error) {
	return s.balances.create(ctx, in.UserID, in)
}

// UpdateBalance applies the supplied fields to a points lot.
func (s *PointsService) UpdateBalance(ctx context.Context, in dto.PointsBalanceUpdate) (*domain.PointsBalance, error) {
	return s.balances.update(ctx, in.UserID, in.ID, in)
}

// GetBalance returns one points lot of the user.
func (s *PointsService) GetBalance(ctx context.Context, userID, id string) (*domain.PointsBalance, error) {
	return s.balances.get(ctx, userID, id)
}

// ListBalances returns a page of the user's points lots.
func (s *PointsService) ListBalances(ctx context.Context, userID string, page dto.Pagination) (*repository.Page[domain.PointsBalance], error) {
	return s.balances.list(ctx, userID, page)
}

// DeleteBalance removes one points lot of the user.
func (s *PointsService) DeleteBalance(ctx context.Context, userID, id string) error {
	return s.balances.delete(ctx, userID, id)
}

// CreateOperation validates in and stores a new points movement.
func (s *PointsService) CreateOperation(ctx context.Context, in dto.PointsOperationCreate) (*domain.PointsOperation, error) {
	return s.operations.create(ctx, in.UserID, in)
}

// UpdateOperation applies the supplied fields to a points movement.
func (s *PointsService) UpdateOperation(ctx context.Context, in dto.PointsOperationUpdate) (*domain.PointsOperation, error) {
	return s.operations.update(ctx, in.UserID, in.ID, in)
}

// GetOperation returns one points movement of the user.
func (s *PointsService) GetOperation(ctx context.Context, userID, id string) (*domain.PointsOperation, error) {
	return s.operations.get(ctx, userID, id)
}

// ListOperations returns a page of the user's points movements.
func (s *PointsService) ListOperations(ctx context.Context, userID string, page dto.Pagination) (*repository.Page[domain.PointsOperation], error) {
	return s.operations.list(ctx, userID, page)
}

// DeleteOperation removes one points movement of the user.
func (s *PointsService) DeleteOperation(ctx context.Context, userID, id string) error {
	return s.operations.delete(ctx, userID, id)
}

// CreateOffer validates in and publishes a new global offer.
func (s *PointsService) CreateOffer(ctx context.Context, in dto.PointsOfferCreate) (*domain.PointsOffer, error) {
	return s.offers.create(ctx, "", in)
}

// UpdateOffer applies the supplied fields to an offer.
func (s *PointsService) UpdateOffer(ctx context.Context, in dto.PointsOfferUpdate) (*domain.PointsOffer, error) {
	return s.offers.update(ctx, "", in.ID, in)
}

// GetOffer returns one offer.
func (s *PointsService) GetOffer(ctx context.Context, id string) (*domain.PointsOffer, error) {
	return s.offers.get(ctx, "", id)
}

// ListOffers returns a page of all published offers.
func (s *PointsService) ListOffers(ctx context.Context, page dto.Pagination) (*repository.Page[domain.PointsOffer], error) {
	return s.offers.list(ctx, "", page)
}

// DeleteOffer removes one offer.
func (s *PointsService) DeleteOffer(ctx context.Context, id string) error {
	return s.offers.delete(ctx, "", id)
}
