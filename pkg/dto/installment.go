package dto

import "github.com/meucofre/meucofre/pkg/domain"

// InstallmentGroupCreate is the input for registering a purchase split
// into installments.
type InstallmentGroupCreate struct {
	UserID              string                 `json:"userId" validate:"required"`
	Merchant            string                 `json:"merchant,omitempty"`
	PurchaseDate        domain.TimestampMS     `json:"purchaseDate" validate:"required"`
	InstallmentCount    int                    `json:"installmentCount" validate:"required,min=1"`
	OriginalAmount      *domain.Cents          `json:"originalAmount" validate:"required"`
	InterestTotal       *domain.Cents          `json:"interestTotal,omitempty"`
	FeesTotal           *domain.Cents          `json:"feesTotal,omitempty"`
	CardAccountID       string                 `json:"cardAccountId" validate:"required"`
	FirstDueDate        domain.TimestampMS     `json:"firstDueDate" validate:"required"`
	StatementStartMonth string                 `json:"statementStartMonth,omitempty" validate:"omitempty,yyyymm"`
	Plan                domain.InstallmentPlan `json:"plan,omitempty" validate:"omitempty,oneof=no_interest interest revolving"`
	Notes               string                 `json:"notes,omitempty"`
}

// InstallmentGroupUpdate is the partial-update input for an installment
// group.
type InstallmentGroupUpdate struct {
	ID                  string                  `json:"id" validate:"required"`
	UserID              string                  `json:"userId" validate:"required"`
	Merchant            *string                 `json:"merchant,omitempty"`
	PurchaseDate        *domain.TimestampMS     `json:"purchaseDate,omitempty"`
	InstallmentCount    *int                    `json:"installmentCount,omitempty" validate:"omitnil,min=1"`
	OriginalAmount      *domain.Cents           `json:"originalAmount,omitempty"`
	InterestTotal       *domain.Cents           `json:"interestTotal,omitempty"`
	FeesTotal           *domain.Cents           `json:"feesTotal,omitempty"`
	CardAccountID       *string                 `json:"cardAccountId,omitempty" validate:"omitnil,min=1"`
	FirstDueDate        *domain.TimestampMS     `json:"firstDueDate,omitempty"`
	StatementStartMonth *string                 `json:"statementStartMonth,omitempty" validate:"omitnil,yyyymm"`
	Plan                *domain.InstallmentPlan `json:"plan,omitempty" validate:"omitnil,oneof=no_interest interest revolving"`
	Notes               *string                 `json:"notes,omitempty"`
}
