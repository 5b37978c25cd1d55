package domain

// InstallmentGroup ties together the installments of one purchase split
// across statements. OriginalAmount is the full purchase in cents before
// interest and fees.
type InstallmentGroup struct {
	Entity
	Merchant            string          `json:"merchant,omitempty"`
	PurchaseDate        TimestampMS     `json:"purchaseDate"`
	InstallmentCount    int             `json:"installmentCount"`
	OriginalAmount      Cents           `json:"originalAmount"`
	InterestTotal       *Cents          `json:"interestTotal,omitempty"`
	FeesTotal           *Cents          `json:"feesTotal,omitempty"`
	CardAccountID       string          `json:"cardAccountId"`
	FirstDueDate        TimestampMS     `json:"firstDueDate"`
	StatementStartMonth string          `json:"statementStartMonth,omitempty"`
	Plan                InstallmentPlan `json:"plan,omitempty"`
	Notes               string          `json:"notes,omitempty"`
}
