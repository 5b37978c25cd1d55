package domain

// InvestmentAccount is a brokerage, savings or pension account holding
// invested assets.
type InvestmentAccount struct {
	Entity
	Name        string                `json:"name"`
	Kind        InvestmentAccountKind `json:"kind"`
	Institution string                `json:"institution,omitempty"`
	Currency    Currency              `json:"currency"`
}

// InvestmentTransaction is one operation on an investment account.
// Quantity is a decimal asset quantity; Price and Amount are cents.
type InvestmentTransaction struct {
	Entity
	InvAccountID string              `json:"invAccountId"`
	Date         TimestampMS         `json:"date"`
	Operation    InvestmentOperation `json:"operation"`
	AssetType    AssetType           `json:"assetType"`
	TickerOrName string              `json:"tickerOrName"`
	Quantity     *float64            `json:"quantity,omitempty"`
	Price        *Cents              `json:"price,omitempty"`
	Amount       *Cents              `json:"amount,omitempty"`
	Fees         *Cents              `json:"fees,omitempty"`
	Notes        string              `json:"notes,omitempty"`
}

// InvestmentPosition is the current holding of one asset in one account.
type InvestmentPosition struct {
	Entity
	InvAccountID string    `json:"invAccountId"`
	AssetType    AssetType `json:"assetType"`
	TickerOrName string    `json:"tickerOrName"`
	Quantity     *float64  `json:"quantity,omitempty"`
	Principal    *Cents    `json:"principal,omitempty"`
	AvgPrice     *Cents    `json:"avgPrice,omitempty"`
	CurrentValue *Cents    `json:"currentValue,omitempty"`
	RiskLevel    RiskLevel `json:"riskLevel,omitempty"`
	Tags         []string  `json:"tags,omitempty"`
}

// InvestmentEarning is income paid out by a held asset. CompetenceMonth is
// the accrual month as a yyyymm string.
type InvestmentEarning struct {
	Entity
	InvAccountID    string      `json:"invAccountId"`
	Date            TimestampMS `json:"date"`
	AssetType       AssetType   `json:"assetType"`
	TickerOrName    string      `json:"tickerOrName"`
	Type            EarningType `json:"type"`
	GrossAmount     Cents       `json:"grossAmount"`
	TaxAmount       Cents       `json:"taxAmount"`
	NetAmount       Cents       `json:"netAmount"`
	CompetenceMonth string      `json:"competenceMonth,omitempty"`
}
