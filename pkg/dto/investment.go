package dto

import "github.com/meucofre/meucofre/pkg/domain"

// InvestmentAccountCreate is the input for creating an investment account.
// Currency defaults to BRL.
type InvestmentAccountCreate struct {
	UserID      string                       `json:"userId" validate:"required"`
	Name        string                       `json:"name" validate:"required,min=2"`
	Kind        domain.InvestmentAccountKind `json:"kind" validate:"required,oneof=brokerage savings pension crypto_exchange"`
	Institution string                       `json:"institution,omitempty"`
	Currency    domain.Currency              `json:"currency" validate:"omitempty,oneof=BRL"`
}

// ApplyDefaults fills the documented defaults.
func (a *InvestmentAccountCreate) ApplyDefaults() {
	if a.Currency == "" {
		a.Currency = domain.CurrencyBRL
	}
}

// InvestmentAccountUpdate is the partial-update input for an investment
// account.
type InvestmentAccountUpdate struct {
	ID          string                        `json:"id" validate:"required"`
	UserID      string                        `json:"userId" validate:"required"`
	Name        *string                       `json:"name,omitempty" validate:"omitnil,min=2"`
	Kind        *domain.InvestmentAccountKind `json:"kind,omitempty" validate:"omitnil,oneof=brokerage savings pension crypto_exchange"`
	Institution *string                       `json:"institution,omitempty"`
	Currency    *domain.Currency              `json:"currency,omitempty" validate:"omitnil,oneof=BRL"`
}

// InvestmentTransactionCreate is the input for recording an operation on
// an investment account.
type InvestmentTransactionCreate struct {
	UserID       string                     `json:"userId" validate:"required"`
	InvAccountID string                     `json:"invAccountId" validate:"required"`
	Date         domain.TimestampMS         `json:"date" validate:"required"`
	Operation    domain.InvestmentOperation `json:"operation" validate:"required,oneof=buy sell deposit withdraw apply redeem rebalance fee"`
	AssetType    domain.AssetType           `json:"assetType" validate:"required,oneof=savings cdb lci lca tesouro fundo fii acao etf cripto outro"`
	TickerOrName string                     `json:"tickerOrName" validate:"required,min=1"`
	Quantity     *float64                   `json:"quantity,omitempty" validate:"omitnil,gt=0"`
	Price        *domain.Cents              `json:"price,omitempty"`
	Amount       *domain.Cents              `json:"amount,omitempty"`
	Fees         *domain.Cents              `json:"fees,omitempty"`
	Notes        string                     `json:"notes,omitempty"`
}

// InvestmentTransactionUpdate is the partial-update input for an
// investment transaction.
type InvestmentTransactionUpdate struct {
	ID           string                      `json:"id" validate:"required"`
	UserID       string                      `json:"userId" validate:"required"`
	InvAccountID *string                     `json:"invAccountId,omitempty" validate:"omitnil,min=1"`
	Date         *domain.TimestampMS         `json:"date,omitempty"`
	Operation    *domain.InvestmentOperation `json:"operation,omitempty" validate:"omitnil,oneof=buy sell deposit withdraw apply redeem rebalance fee"`
	AssetType    *domain.AssetType           `json:"assetType,omitempty" validate:"omitnil,oneof=savings cdb lci lca tesouro fundo fii acao etf cripto outro"`
	TickerOrName *string                     `json:"tickerOrName,omitempty" validate:"omitnil,min=1"`
	Quantity     *float64                    `json:"quantity,omitempty" validate:"omitnil,gt=0"`
	Price        *domain.Cents               `json:"price,omitempty"`
	Amount       *domain.Cents               `json:"amount,omitempty"`
	Fees         *domain.Cents               `json:"fees,omitempty"`
	Notes        *string                     `json:"notes,omitempty"`
}

// InvestmentPositionCreate is the input for recording a held position.
type InvestmentPositionCreate struct {
	UserID       string           `json:"userId" validate:"required"`
	InvAccountID string           `json:"invAccountId" validate:"required"`
	AssetType    domain.AssetType `json:"assetType" validate:"required,oneof=savings cdb lci lca tesouro fundo fii acao etf cripto outro"`
	TickerOrName string           `json:"tickerOrName" validate:"required,min=1"`
	Quantity     *float64         `json:"quantity,omitempty" validate:"omitnil,gt=0"`
	Principal    *domain.Cents    `json:"principal,omitempty"`
	AvgPrice     *domain.Cents    `json:"avgPrice,omitempty"`
	CurrentValue *domain.Cents    `json:"currentValue,omitempty"`
	RiskLevel    domain.RiskLevel `json:"riskLevel,omitempty" validate:"omitempty,oneof=low medium high"`
	Tags         []string         `json:"tags,omitempty"`
}

// InvestmentPositionUpdate is the partial-update input for a position.
type InvestmentPositionUpdate struct {
	ID           string            `json:"id" validate:"required"`
	UserID       string            `json:"userId" validate:"required"`
	InvAccountID *string           `json:"invAccountId,omitempty" validate:"omitnil,min=1"`
	AssetType    *domain.AssetType `json:"assetType,omitempty" validate:"omitnil,oneof=savings cdb lci lca tesouro fundo fii acao etf cripto outro"`
	TickerOrName *string           `json:"tickerOrName,omitempty" validate:"omitnil,min=1"`
	Quantity     *float64          `json:"quantity,omitempty" validate:"omitnil,gt=0"`
	Principal    *domain.Cents     `json:"principal,omitempty"`
	AvgPrice     *domain.Cents     `json:"avgPrice,omitempty"`
	CurrentValue *domain.Cents     `json:"currentValue,omitempty"`
	RiskLevel    *domain.RiskLevel `json:"riskLevel,omitempty" validate:"omitnil,oneof=low medium high"`
	Tags         *[]string         `json:"tags,omitempty"`
}

// InvestmentEarningCreate is the input for recording income paid by a
// held asset.
type InvestmentEarningCreate struct {
	UserID          string             `json:"userId" validate:"required"`
	InvAccountID    string             `json:"invAccountId" validate:"required"`
	Date            domain.TimestampMS `json:"date" validate:"required"`
	AssetType       domain.AssetType   `json:"assetType" validate:"required,oneof=savings cdb lci lca tesouro fundo fii acao etf cripto outro"`
	TickerOrName    string             `json:"tickerOrName" validate:"required,min=1"`
	Type            domain.EarningType `json:"type" validate:"required,oneof=dividend jcp yield coupon interest"`
	GrossAmount     *domain.Cents      `json:"grossAmount" validate:"required"`
	TaxAmount       *domain.Cents      `json:"taxAmount" validate:"required"`
	NetAmount       *domain.Cents      `json:"netAmount" validate:"required"`
	CompetenceMonth string             `json:"competenceMonth,omitempty" validate:"omitempty,yyyymm"`
}

// InvestmentEarningUpdate is the partial-update input for an earning.
type InvestmentEarningUpdate struct {
	ID              string              `json:"id" validate:"required"`
	UserID          string              `json:"userId" validate:"required"`
	InvAccountID    *string             `json:"invAccountId,omitempty" validate:"omitnil,min=1"`
	Date            *domain.TimestampMS `json:"date,omitempty"`
	AssetType       *domain.AssetType   `json:"assetType,omitempty" validate:"omitnil,oneof=savings cdb lci lca tesouro fundo fii acao etf cripto outro"`
	TickerOrName    *string             `json:"tickerOrName,omitempty" validate:"omitnil,min=1"`
	Type            *domain.EarningType `json:"type,omitempty" validate:"omitnil,oneof=dividend jcp yield coupon interest"`
	GrossAmount     *domain.Cents       `json:"grossAmount,omitempty"`
	TaxAmount       *domain.Cents       `json:"taxAmount,omitempty"`
	NetAmount       *domain.Cents       `json:"netAmount,omitempty"`
	CompetenceMonth *string             `json:"competenceMonth,omitempty" validate:"omitnil,yyyymm"`
}
