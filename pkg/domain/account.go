package domain

// AccountBenefits are the perks attached to a card account. Cashback and
// FxFee are rates in [0,1].
type AccountBenefits struct {
	Airline  string   `json:"airline,omitempty"`
	Lounge   *bool    `json:"lounge,omitempty"`
	Cashback *float64 `json:"cashback,omitempty"`
	FxFee    *float64 `json:"fxFee,omitempty"`
	Notes    string   `json:"notes,omitempty"`
}

// AccountBilling is the statement cycle of a credit card account.
// ClosingDay and DueDay are days of month clamped to [1,28] so every month
// has them.
type AccountBilling struct {
	ClosingDay      int    `json:"closingDay"`
	DueDay          int    `json:"dueDay"`
	CreditLimit     *Cents `json:"creditLimit,omitempty"`
	AvailableCredit *Cents `json:"availableCredit,omitempty"`
}

// Account is a money account: a card, a wallet or a bank account.
type Account struct {
	Entity
	Name        string           `json:"name"`
	AccountType AccountType      `json:"accountType"`
	Currency    Currency         `json:"currency"`
	Icon        string           `json:"icon,omitempty"`
	Issuer      string           `json:"issuer,omitempty"`
	Last4       string           `json:"last4,omitempty"`
	CardBrand   CardBrand        `json:"cardBrand,omitempty"`
	Benefits    *AccountBenefits `json:"benefits,omitempty"`
	Billing     *AccountBilling  `json:"billing,omitempty"`
}
