package domain

import "slices"

// Currency is the ISO-like currency code for monetary fields.
// The ledger is single-currency for now.
type Currency string

const CurrencyBRL Currency = "BRL"

// AccountType classifies a money account.
type AccountType string

const (
	AccountTypeCardCredit  AccountType = "card_credit"
	AccountTypeCardDebit   AccountType = "card_debit"
	AccountTypePrepaid     AccountType = "prepaid"
	AccountTypeWalletCash  AccountType = "wallet_cash"
	AccountTypeBankCheck   AccountType = "bank_checking"
	AccountTypeBankSavings AccountType = "bank_savings"
)

// AccountTypes returns every allowed account type.
func AccountTypes() []AccountType {
	return []AccountType{
		AccountTypeCardCredit,
		AccountTypeCardDebit,
		AccountTypePrepaid,
		AccountTypeWalletCash,
		AccountTypeBankCheck,
		AccountTypeBankSavings,
	}
}

// CardBrand identifies a card network or voucher issuer.
type CardBrand string

const (
	CardBrandVisa       CardBrand = "visa"
	CardBrandMastercard CardBrand = "mastercard"
	CardBrandAmex       CardBrand = "amex"
	CardBrandElo        CardBrand = "elo"
	CardBrandHipercard  CardBrand = "hipercard"
	CardBrandVR         CardBrand = "vr"
	CardBrandSodexo     CardBrand = "sodexo"
	CardBrandAlelo      CardBrand = "alelo"
	CardBrandOther      CardBrand = "other"
)

// CardBrands returns every allowed card brand.
func CardBrands() []CardBrand {
	return []CardBrand{
		CardBrandVisa,
		CardBrandMastercard,
		CardBrandAmex,
		CardBrandElo,
		CardBrandHipercard,
		CardBrandVR,
		CardBrandSodexo,
		CardBrandAlelo,
		CardBrandOther,
	}
}

// TransactionType is the direction of a money movement.
type TransactionType string

const (
	TransactionExpense  TransactionType = "expense"
	TransactionIncome   TransactionType = "income"
	TransactionTransfer TransactionType = "transfer"
)

// TransactionStatus tracks an installment or scheduled charge through
// its lifecycle.
type TransactionStatus string

const (
	StatusScheduled TransactionStatus = "scheduled"
	StatusPosted    TransactionStatus = "posted"
	StatusPaid      TransactionStatus = "paid"
	StatusCanceled  TransactionStatus = "canceled"
	StatusRefunded  TransactionStatus = "refunded"
)

// InstallmentPlan is the financing arrangement of an installment purchase.
type InstallmentPlan string

const (
	PlanNoInterest InstallmentPlan = "no_interest"
	PlanInterest   InstallmentPlan = "interest"
	PlanRevolving  InstallmentPlan = "revolving"
)

// InvestmentAccountKind classifies where investments are held.
type InvestmentAccountKind string

const (
	InvKindBrokerage      InvestmentAccountKind = "brokerage"
	InvKindSavings        InvestmentAccountKind = "savings"
	InvKindPension        InvestmentAccountKind = "pension"
	InvKindCryptoExchange InvestmentAccountKind = "crypto_exchange"
)

// AssetType is the class of an invested asset. Values follow Brazilian
// market conventions (CDB, LCI, Tesouro, FII, ...).
type AssetType string

const (
	AssetSavings AssetType = "savings"
	AssetCDB     AssetType = "cdb"
	AssetLCI     AssetType = "lci"
	AssetLCA     AssetType = "lca"
	AssetTesouro AssetType = "tesouro"
	AssetFundo   AssetType = "fundo"
	AssetFII     AssetType = "fii"
	AssetAcao    AssetType = "acao"
	AssetETF     AssetType = "etf"
	AssetCripto  AssetType = "cripto"
	AssetOutro   AssetType = "outro"
)

// AssetTypes returns every allowed asset type.
func AssetTypes() []AssetType {
	return []AssetType{
		AssetSavings, AssetCDB, AssetLCI, AssetLCA, AssetTesouro,
		AssetFundo, AssetFII, AssetAcao, AssetETF, AssetCripto, AssetOutro,
	}
}

// InvestmentOperation is the kind of brokerage transaction.
type InvestmentOperation string

const (
	InvOpBuy       InvestmentOperation = "buy"
	InvOpSell      InvestmentOperation = "sell"
	InvOpDeposit   InvestmentOperation = "deposit"
	InvOpWithdraw  InvestmentOperation = "withdraw"
	InvOpApply     InvestmentOperation = "apply"
	InvOpRedeem    InvestmentOperation = "redeem"
	InvOpRebalance InvestmentOperation = "rebalance"
	InvOpFee       InvestmentOperation = "fee"
)

// EarningType is the kind of investment income.
type EarningType string

const (
	EarningDividend EarningType = "dividend"
	EarningJCP      EarningType = "jcp"
	EarningYield    EarningType = "yield"
	EarningCoupon   EarningType = "coupon"
	EarningInterest EarningType = "interest"
)

// RiskLevel is a coarse risk rating for a position.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// PointsProgramName identifies a loyalty program.
type PointsProgramName string

const (
	ProgramLivelo    PointsProgramName = "livelo"
	ProgramEsfera    PointsProgramName = "esfera"
	ProgramIupp      PointsProgramName = "iupp"
	ProgramSmiles    PointsProgramName = "smiles"
	ProgramLatamPass PointsProgramName = "latam_pass"
	ProgramTudoAzul  PointsProgramName = "tudoazul"
	ProgramAme       PointsProgramName = "ame"
	ProgramMeli      PointsProgramName = "meli"
	ProgramOutro     PointsProgramName = "outro"
)

// PointsProgramNames returns every allowed program name.
func PointsProgramNames() []PointsProgramName {
	return []PointsProgramName{
		ProgramLivelo, ProgramEsfera, ProgramIupp, ProgramSmiles,
		ProgramLatamPass, ProgramTudoAzul, ProgramAme, ProgramMeli,
		ProgramOutro,
	}
}

// PointsBalanceStatus tracks a points lot from earn to redemption or expiry.
type PointsBalanceStatus string

const (
	PointsActive   PointsBalanceStatus = "active"
	PointsRedeemed PointsBalanceStatus = "redeemed"
	PointsExpired  PointsBalanceStatus = "expired"
)

// PointsBalanceSource is where a points lot came from.
type PointsBalanceSource string

const (
	SourceCreditCard PointsBalanceSource = "credit_card"
	SourcePartner    PointsBalanceSource = "partner"
	SourcePromo      PointsBalanceSource = "promo"
	SourceTransfer   PointsBalanceSource = "transfer"
)

// PointsOperationType is the kind of loyalty-program movement.
type PointsOperationType string

const (
	PointsOpEarn        PointsOperationType = "earn"
	PointsOpRedeem      PointsOperationType = "redeem"
	PointsOpTransferIn  PointsOperationType = "transfer_in"
	PointsOpTransferOut PointsOperationType = "transfer_out"
	PointsOpAdjust      PointsOperationType = "adjust"
)

// AiRole is the author of a chat message.
type AiRole string

const (
	RoleUser      AiRole = "user"
	RoleAssistant AiRole = "assistant"
	RoleTool      AiRole = "tool"
)

func oneOf[T ~string](v T, allowed []T) bool {
	return slices.Contains(allowed, v)
}

// Valid reports membership in the closed set. Matching is exact: no
// coercion, no case folding.
func (t AccountType) Valid() bool { return oneOf(t, AccountTypes()) }

// Valid reports membership in the closed set.
func (b CardBrand) Valid() bool { return oneOf(b, CardBrands()) }

// Valid reports membership in the closed set.
func (t TransactionType) Valid() bool {
	return oneOf(t, []TransactionType{TransactionExpense, TransactionIncome, TransactionTransfer})
}

// Valid reports membership in the closed set.
func (s TransactionStatus) Valid() bool {
	return oneOf(s, []TransactionStatus{StatusScheduled, StatusPosted, StatusPaid, StatusCanceled, StatusRefunded})
}

// Valid reports membership in the closed set.
func (p InstallmentPlan) Valid() bool {
	return oneOf(p, []InstallmentPlan{PlanNoInterest, PlanInterest, PlanRevolving})
}

// Valid reports membership in the closed set.
func (k InvestmentAccountKind) Valid() bool {
	return oneOf(k, []InvestmentAccountKind{InvKindBrokerage, InvKindSavings, InvKindPension, InvKindCryptoExchange})
}

// Valid reports membership in the closed set.
func (a AssetType) Valid() bool { return oneOf(a, AssetTypes()) }

// Valid reports membership in the closed set.
func (o InvestmentOperation) Valid() bool {
	return oneOf(o, []InvestmentOperation{
		InvOpBuy, InvOpSell, InvOpDeposit, InvOpWithdraw,
		InvOpApply, InvOpRedeem, InvOpRebalance, InvOpFee,
	})
}

// Valid reports membership in the closed set.
func (e EarningType) Valid() bool {
	return oneOf(e, []EarningType{EarningDividend, EarningJCP, EarningYield, EarningCoupon, EarningInterest})
}

// Valid reports membership in the closed set.
func (r RiskLevel) Valid() bool {
	return oneOf(r, []RiskLevel{RiskLow, RiskMedium, RiskHigh})
}

// Valid reports membership in the closed set.
func (p PointsProgramName) Valid() bool { return oneOf(p, PointsProgramNames()) }

// Valid reports membership in the closed set.
func (s PointsBalanceStatus) Valid() bool {
	return oneOf(s, []PointsBalanceStatus{PointsActive, PointsRedeemed, PointsExpired})
}

// Valid reports membership in the closed set.
func (s PointsBalanceSource) Valid() bool {
	return oneOf(s, []PointsBalanceSource{SourceCreditCard, SourcePartner, SourcePromo, SourceTransfer})
}

// Valid reports membership in the closed set.
func (o PointsOperationType) Valid() bool {
	return oneOf(o, []PointsOperationType{PointsOpEarn, PointsOpRedeem, PointsOpTransferIn, PointsOpTransferOut, PointsOpAdjust})
}

// Valid reports membership in the closed set.
func (r AiRole) Valid() bool {
	return oneOf(r, []AiRole{RoleUser, RoleAssistant, RoleTool})
}
