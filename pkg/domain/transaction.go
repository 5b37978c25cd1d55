package domain

// LLMInfo records the outcome of automatic classification of a transaction.
// Raw keeps the unparsed model response for auditing.
type LLMInfo struct {
	Classified bool     `json:"classified"`
	Model      string   `json:"model,omitempty"`
	Confidence *float64 `json:"confidence,omitempty"`
	Raw        string   `json:"raw,omitempty"`
}

// Transaction is a single money movement on an account. Amount is integer
// cents; its sign convention follows Type. Installment fields link the
// transaction to an InstallmentGroup when it is one slice of a split
// purchase.
type Transaction struct {
	Entity
	AccountID   string          `json:"accountId"`
	AccountType AccountType     `json:"accountType"`
	CardBrand   CardBrand       `json:"cardBrand,omitempty"`
	Date        TimestampMS     `json:"date"`
	Description string          `json:"description"`
	Merchant    string          `json:"merchant,omitempty"`
	Amount      Cents           `json:"amount"`
	Type        TransactionType `json:"type"`
	CategoryID  string          `json:"categoryId,omitempty"`
	Tags        []string        `json:"tags,omitempty"`

	InstallmentGroupID string            `json:"installmentGroupId,omitempty"`
	InstallmentNumber  *int              `json:"installmentNumber,omitempty"`
	InstallmentCount   *int              `json:"installmentCount,omitempty"`
	PurchaseDate       *TimestampMS      `json:"purchaseDate,omitempty"`
	DueDate            *TimestampMS      `json:"dueDate,omitempty"`
	StatementMonth     string            `json:"statementMonth,omitempty"`
	InterestAmount     *Cents            `json:"interestAmount,omitempty"`
	FeesAmount         *Cents            `json:"feesAmount,omitempty"`
	Status             TransactionStatus `json:"status,omitempty"`

	LLM *LLMInfo `json:"llm,omitempty"`
}
