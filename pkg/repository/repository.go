// Package repository defines the document-store port the services talk
// to. Implementations live under infra.
package repository

import (
	"context"

	"github.com/meucofre/meucofre/pkg/dto"
)

// Collection names used by the document store.
const (
	ColAccounts               = "accounts"
	ColTransactions           = "transactions"
	ColInstallmentGroups      = "installment_groups"
	ColInvestmentAccounts     = "investment_accounts"
	ColInvestmentTransactions = "investment_transactions"
	ColInvestmentPositions    = "investment_positions"
	ColInvestmentEarnings     = "investment_earnings"
	ColPointsPrograms         = "points_programs"
	ColPointsBalances         = "points_balances"
	ColPointsOperations       = "points_operations"
	ColPointsOffers           = "points_offers"
	ColAiSessions             = "ai_sessions"
	ColAiMessages             = "ai_messages"
)

// Page is one page of a listing. NextCursor is empty on the last page.
type Page[T any] struct {
	Items      []*T   `json:"items"`
	NextCursor string `json:"nextCursor,omitempty"`
}

// Collection is a typed view over one collection of the document store.
// Every operation is scoped by userID; an empty userID addresses global
// (unowned) documents such as points offers. Writers pass already
// validated values; the store assigns ids and stamps timestamps on insert.
type Collection[T any] interface {
	// Create stores doc as a new document and returns the assigned id.
	Create(ctx context.Context, userID string, doc any) (string, error)
	// Get returns the document or domain.ErrNotFound.
	Get(ctx context.Context, userID, id string) (*T, error)
	// List returns a page of the user's documents in stable id order.
	List(ctx context.Context, userID string, page dto.Pagination) (*Page[T], error)
	// Patch merges the non-absent fields of partial into the stored
	// document. Identity and creation stamps are never patched. An empty
	// partial is a valid no-op that still bumps updatedAt.
	Patch(ctx context.Context, userID, id string, partial any) error
	// Delete removes the document or returns domain.ErrNotFound.
	Delete(ctx context.Context, userID, id string) error
}
