package service

import (
	"context"
	"log/slog"

	"github.com/meucofre/meucofre/pkg/domain"
	"github.com/meucofre/meucofre/pkg/dto"
	"github.com/meucofre/meucofre/pkg/repository"
	"github.com/meucofre/meucofre/pkg/validation"
)

// InvestmentCollections groups the four investment collections handed to
// the service.
type InvestmentCollections struct {
	Accounts     repository.Collection[domain.InvestmentAccount]
	Transactions repository.Collection[domain.InvestmentTransaction]
	Positions    repository.Collection[domain.InvestmentPosition]
	Earnings     repository.Collection[domain.InvestmentEarning]
}

// InvestmentService manages brokerage-style records: accounts, their
// transactions, held positions and earnings.
type InvestmentService struct {
	accounts     resource[domain.InvestmentAccount, dto.InvestmentAccountCreate, dto.InvestmentAccountUpdate]
	transactions resource[domain.InvestmentTransaction, dto.InvestmentTransactionCreate, dto.InvestmentTransactionUpdate]
	positions    resource[domain.InvestmentPosition, dto.InvestmentPositionCreate, dto.InvestmentPositionUpdate]
	earnings     resource[domain.InvestmentEarning, dto.InvestmentEarningCreate, dto.InvestmentEarningUpdate]
}

// NewInvestmentService wires the investment collections.
func NewInvestmentService(cols InvestmentCollections, val *validation.Validator, log *slog.Logger) *InvestmentService {
	return &InvestmentService{
		accounts: newResource[domain.InvestmentAccount, dto.InvestmentAccountCreate, dto.InvestmentAccountUpdate](
			repository.ColInvestmentAccounts, cols.Accounts, val, log),
		transactions: newResource[domain.InvestmentTransaction, dto.InvestmentTransactionCreate, dto.InvestmentTransactionUpdate](
			repository.ColInvestmentTransactions, cols.Transactions, val, log),
		positions: newResource[domain.InvestmentPosition, dto.InvestmentPositionCreate, dto.InvestmentPositionUpdate](
			repository.ColInvestmentPositions, cols.Positions, val, log),
		earnings: newResource[domain.InvestmentEarning, dto.InvestmentEarningCreate, dto.InvestmentEarningUpdate](
			repository.ColInvestmentEarnings, cols.Earnings, val, log),
	}
}

// CreateAccount validates in and stores a new investment account.
func (s *InvestmentService) CreateAccount(ctx context.Context, in dto.InvestmentAccountCreate) (*domain.InvestmentAccount, error) {
	return s.accounts.create(ctx, in.UserID, in)
}

// UpdateAccount applies the supplied fields to an investment account.
func (s *InvestmentService) UpdateAccount(ctx context.Context, in dto.InvestmentAccountUpdate) (*domain.InvestmentAccount, error) {
	return s.accounts.update(ctx, in.UserID, in.ID, in)
}

// GetAccount returns one investment account of the user.
func (s *InvestmentService) GetAccount(ctx context.Context, userID, id string) (*domain.InvestmentAccount, error) {
	return s.accounts.get(ctx, userID, id)
}

// ListAccounts returns a page of the user's investment accounts.
func (s *InvestmentService) ListAccounts(ctx context.Context, userID string, page dto.Pagination) (*repository.Page[domain.InvestmentAccount], error) {
	return s.accounts.list(ctx, userID, page)
}

// DeleteAccount removes one investment account of the user.
func (s *InvestmentService) DeleteAccount(ctx context.Context, userID, id string) error {
	return s.accounts.delete(ctx, userID, id)
}

// CreateTransaction validates in and stores a new investment transaction.
func (s *InvestmentService) CreateTransaction(ctx context.Context, in dto.InvestmentTransactionCreate) (*domain.InvestmentTransaction, error) {
	return s.transactions.create(ctx, in.UserID, in)
}

// UpdateTransaction applies the supplied fields to an investment
// transaction.
func (s *InvestmentService) UpdateTransaction(ctx context.Context, in dto.InvestmentTransactionUpdate) (*domain.InvestmentTransaction, error) {
	return s.transactions.update(ctx, in.UserID, in.ID, in)
}

// GetTransaction returns one investment transaction of the user.
func (s *InvestmentService) GetTransaction(ctx context.Context, userID, id string) (*domain.InvestmentTransaction, error) {
	return s.transactions.get(ctx, userID, id)
}

// ListTransactions returns a page of the user's investment transactions.
func (s *InvestmentService) ListTransactions(ctx context.Context, userID string, page dto.Pagination) (*repository.Page[domain.InvestmentTransaction], error) {
	return s.transactions.list(ctx, userID, page)
}

// DeleteTransaction removes one investment transaction of the user.
func (s *InvestmentService) DeleteTransaction(ctx context.Context, userID, id string) error {
	return s.transactions.delete(ctx, userID, id)
}

// CreatePosition validates in and stores a new position.
func (s *InvestmentService) CreatePosition(ctx context.Context, in dto.InvestmentPositionCreate) (*domain.InvestmentPosition, error) {
	return s.positions.create(ctx, in.UserID, in)
}

// UpdatePosition applies the supplied fields to a position.
func (s *InvestmentService) UpdatePosition(ctx context.Context, in dto.InvestmentPositionUpdate) (*domain.InvestmentPosition, error) {
	return s.positions.update(ctx, in.UserID, in.ID, in)
}

// GetPosition returns one position of the user.
func (s *InvestmentService) GetPosition(ctx context.Context, userID, id string) (*domain.InvestmentPosition, error) {
	return s.positions.get(ctx, userID, id)
}

// ListPositions returns a page of the user's positions.
func (s *InvestmentService) ListPositions(ctx context.Context, userID string, page dto.Pagination) (*repository.Page[domain.InvestmentPosition], error) {
	return s.positions.list(ctx, userID, page)
}

// DeletePosition removes one position of the user.
func (s *InvestmentService) DeletePosition(ctx context.Context, userID, id string) error {
	return s.positions.delete(ctx, userID, id)
}

// CreateEarning validates in and stores a new earning.
func (s *InvestmentService) CreateEarning(ctx context.Context, in dto.InvestmentEarningCreate) (*domain.InvestmentEarning, error) {
	return s.earnings.create(ctx, in.UserID, in)
}

// UpdateEarning applies the supplied fields to an earning.
func (s *InvestmentService) UpdateEarning(ctx context.Context, in dto.InvestmentEarningUpdate) (*domain.InvestmentEarning, error) {
	return s.earnings.update(ctx, in.UserID, in.ID, in)
}

// GetEarning returns one earning of the user.
func (s *InvestmentService) GetEarning(ctx context.Context, userID, id string) (*domain.InvestmentEarning, error) {
	return s.earnings.get(ctx, userID, id)
}

// ListEarnings returns a page of the user's earnings.
func (s *InvestmentService) ListEarnings(ctx context.Context, userID string, page dto.Pagination) (*repository.Page[domain.InvestmentEarning], error) {
	return s.earnings.list(ctx, userID, page)
}

// DeleteEarning removes one earning of the user.
func (s *InvestmentService) DeleteEarning(ctx context.Context, userID, id string) error {
	return s.earnings.delete(ctx, userID, id)
}
