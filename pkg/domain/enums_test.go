package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountTypeValid(t *testing.T) {
	for _, v := range AccountTypes() {
		assert.True(t, v.Valid(), "%q should be valid", v)
	}
	assert.False(t, AccountType("crypto").Valid())
	assert.False(t, AccountType("").Valid())
	// Exact match only.
	assert.False(t, AccountType("Wallet_Cash").Valid())
	assert.False(t, AccountType("wallet_cash ").Valid())
}

func TestCardBrandValid(t *testing.T) {
	for _, v := range CardBrands() {
		assert.True(t, v.Valid(), "%q should be valid", v)
	}
	assert.False(t, CardBrand("diners").Valid())
}

func TestTransactionTypeValid(t *testing.T) {
	assert.True(t, TransactionExpense.Valid())
	assert.True(t, TransactionIncome.Valid())
	assert.True(t, TransactionTransfer.Valid())
	assert.False(t, TransactionType("refund").Valid())
}

func TestTransactionStatusValid(t *testing.T) {
	for _, v := range []TransactionStatus{StatusScheduled, StatusPosted, StatusPaid, StatusCanceled, StatusRefunded} {
		assert.True(t, v.Valid(), "%q should be valid", v)
	}
	assert.False(t, TransactionStatus("pending").Valid())
}

func TestInstallmentPlanValid(t *testing.T) {
	assert.True(t, PlanNoInterest.Valid())
	assert.True(t, PlanRevolving.Valid())
	assert.False(t, InstallmentPlan("balloon").Valid())
}

func TestInvestmentEnumsValid(t *testing.T) {
	assert.True(t, InvKindCryptoExchange.Valid())
	assert.False(t, InvestmentAccountKind("bank").Valid())

	for _, v := range AssetTypes() {
		assert.True(t, v.Valid(), "%q should be valid", v)
	}
	assert.False(t, AssetType("bond").Valid())

	assert.True(t, InvOpRebalance.Valid())
	assert.False(t, InvestmentOperation("short").Valid())

	assert.True(t, EarningJCP.Valid())
	assert.False(t, EarningType("rent").Valid())

	assert.True(t, RiskMedium.Valid())
	assert.False(t, RiskLevel("extreme").Valid())
}

func TestPointsEnumsValid(t *testing.T) {
	for _, v := range PointsProgramNames() {
		assert.True(t, v.Valid(), "%q should be valid", v)
	}
	assert.False(t, PointsProgramName("multiplus").Valid())

	assert.True(t, PointsActive.Valid())
	assert.False(t, PointsBalanceStatus("frozen").Valid())

	assert.True(t, SourcePromo.Valid())
	assert.False(t, PointsBalanceSource("gift").Valid())

	assert.True(t, PointsOpTransferOut.Valid())
	assert.False(t, PointsOperationType("expire").Valid())
}

func TestAiRoleValid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleAssistant.Valid())
	assert.True(t, RoleTool.Valid())
	assert.False(t, AiRole("system").Valid())
}
