package dto

import "github.com/meucofre/meucofre/pkg/domain"

// AccountBenefits mirrors domain.AccountBenefits for input validation.
type AccountBenefits struct {
	Airline  string   `json:"airline,omitempty"`
	Lounge   *bool    `json:"lounge,omitempty"`
	Cashback *float64 `json:"cashback,omitempty" validate:"omitnil,gte=0,lte=1"`
	FxFee    *float64 `json:"fxFee,omitempty" validate:"omitnil,gte=0,lte=1"`
	Notes    string   `json:"notes,omitempty"`
}

// AccountBilling mirrors domain.AccountBilling. ClosingDay and DueDay are
// required whenever a billing block is supplied, on update too.
type AccountBilling struct {
	ClosingDay      int           `json:"closingDay" validate:"min=1,max=28"`
	DueDay          int           `json:"dueDay" validate:"min=1,max=28"`
	CreditLimit     *domain.Cents `json:"creditLimit,omitempty" validate:"omitnil,gte=0"`
	AvailableCredit *domain.Cents `json:"availableCredit,omitempty" validate:"omitnil,gte=0"`
}

// AccountCreate is the input for creating an account. Currency defaults
// to BRL.
type AccountCreate struct {
	UserID      string             `json:"userId" validate:"required"`
	Name        string             `json:"name" validate:"required,min=2"`
	AccountType domain.AccountType `json:"accountType" validate:"required,oneof=card_credit card_debit prepaid wallet_cash bank_checking bank_savings"`
	Currency    domain.Currency    `json:"currency" validate:"omitempty,oneof=BRL"`
	Icon        string             `json:"icon,omitempty"`
	Issuer      string             `json:"issuer,omitempty"`
	Last4       string             `json:"last4,omitempty" validate:"omitempty,number,min=2,max=4"`
	CardBrand   domain.CardBrand   `json:"cardBrand,omitempty" validate:"omitempty,oneof=visa mastercard amex elo hipercard vr sodexo alelo other"`
	Benefits    *AccountBenefits   `json:"benefits,omitempty"`
	Billing     *AccountBilling    `json:"billing,omitempty"`
}

// ApplyDefaults fills the documented defaults.
func (a *AccountCreate) ApplyDefaults() {
	if a.Currency == "" {
		a.Currency = domain.CurrencyBRL
	}
}

// AccountUpdate is the partial-update input for an account.
type AccountUpdate struct {
	ID          string              `json:"id" validate:"required"`
	UserID      string              `json:"userId" validate:"required"`
	Name        *string             `json:"name,omitempty" validate:"omitnil,min=2"`
	AccountType *domain.AccountType `json:"accountType,omitempty" validate:"omitnil,oneof=card_credit card_debit prepaid wallet_cash bank_checking bank_savings"`
	Currency    *domain.Currency    `json:"currency,omitempty" validate:"omitnil,oneof=BRL"`
	Icon        *string             `json:"icon,omitempty"`
	Issuer      *string             `json:"issuer,omitempty"`
	Last4       *string             `json:"last4,omitempty" validate:"omitnil,number,min=2,max=4"`
	CardBrand   *domain.CardBrand   `json:"cardBrand,omitempty" validate:"omitnil,oneof=visa mastercard amex elo hipercard vr sodexo alelo other"`
	Benefits    *AccountBenefits    `json:"benefits,omitempty"`
	Billing     *AccountBilling     `json:"billing,omitempty"`
}
