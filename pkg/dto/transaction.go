package dto

import "github.com/meucofre/meucofre/pkg/domain"

// TransactionCreate is the input for recording a money movement. Amount
// is a pointer: nil means the field was absent and fails validation,
// while a pointer to 0 is a legal zero amount.
type TransactionCreate struct {
	UserID      string                 `json:"userId" validate:"required"`
	AccountID   string                 `json:"accountId" validate:"required"`
	AccountType domain.AccountType     `json:"accountType" validate:"required,oneof=card_credit card_debit prepaid wallet_cash bank_checking bank_savings"`
	CardBrand   domain.CardBrand       `json:"cardBrand,omitempty" validate:"omitempty,oneof=visa mastercard amex elo hipercard vr sodexo alelo other"`
	Date        domain.TimestampMS     `json:"date" validate:"required"`
	Description string                 `json:"description" validate:"required,min=1"`
	Merchant    string                 `json:"merchant,omitempty"`
	Amount      *domain.Cents          `json:"amount" validate:"required"`
	Type        domain.TransactionType `json:"type" validate:"required,oneof=expense income transfer"`
	CategoryID  string                 `json:"categoryId,omitempty"`
	Tags        []string               `json:"tags,omitempty"`

	InstallmentGroupID string                   `json:"installmentGroupId,omitempty"`
	InstallmentNumber  *int                     `json:"installmentNumber,omitempty" validate:"omitnil,min=1"`
	InstallmentCount   *int                     `json:"installmentCount,omitempty" validate:"omitnil,min=1"`
	PurchaseDate       *domain.TimestampMS      `json:"purchaseDate,omitempty"`
	DueDate            *domain.TimestampMS      `json:"dueDate,omitempty"`
	StatementMonth     string                   `json:"statementMonth,omitempty" validate:"omitempty,yyyymm"`
	InterestAmount     *domain.Cents            `json:"interestAmount,omitempty"`
	FeesAmount         *domain.Cents            `json:"feesAmount,omitempty"`
	Status             domain.TransactionStatus `json:"status,omitempty" validate:"omitempty,oneof=scheduled posted paid canceled refunded"`
}

// TransactionUpdate is the partial-update input for a transaction.
type TransactionUpdate struct {
	ID          string                  `json:"id" validate:"required"`
	UserID      string                  `json:"userId" validate:"required"`
	AccountID   *string                 `json:"accountId,omitempty" validate:"omitnil,min=1"`
	AccountType *domain.AccountType     `json:"accountType,omitempty" validate:"omitnil,oneof=card_credit card_debit prepaid wallet_cash bank_checking bank_savings"`
	CardBrand   *domain.CardBrand       `json:"cardBrand,omitempty" validate:"omitnil,oneof=visa mastercard amex elo hipercard vr sodexo alelo other"`
	Date        *domain.TimestampMS     `json:"date,omitempty"`
	Description *string                 `json:"description,omitempty" validate:"omitnil,min=1"`
	Merchant    *string                 `json:"merchant,omitempty"`
	Amount      *domain.Cents           `json:"amount,omitempty"`
	Type        *domain.TransactionType `json:"type,omitempty" validate:"omitnil,oneof=expense income transfer"`
	CategoryID  *string                 `json:"categoryId,omitempty"`
	Tags        *[]string               `json:"tags,omitempty"`

	InstallmentGroupID *string                   `json:"installmentGroupId,omitempty"`
	InstallmentNumber  *int                      `json:"installmentNumber,omitempty" validate:"omitnil,min=1"`
	InstallmentCount   *int                      `json:"installmentCount,omitempty" validate:"omitnil,min=1"`
	PurchaseDate       *domain.TimestampMS       `json:"purchaseDate,omitempty"`
	DueDate            *domain.TimestampMS       `json:"dueDate,omitempty"`
	StatementMonth     *string                   `json:"statementMonth,omitempty" validate:"omitnil,yyyymm"`
	InterestAmount     *domain.Cents             `json:"interestAmount,omitempty"`
	FeesAmount         *domain.Cents             `json:"feesAmount,omitempty"`
	Status             *domain.TransactionStatus `json:"status,omitempty" validate:"omitnil,oneof=scheduled posted paid canceled refunded"`
}
