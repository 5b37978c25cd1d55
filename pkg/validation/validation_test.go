package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meucofre/meucofre/pkg/domain"
	"github.com/meucofre/meucofre/pkg/dto"
	"github.com/meucofre/meucofre/pkg/validation"
)

var va = validation.New()

func ptr[T any](v T) *T { return &v }

func fieldErrors(t *testing.T, err error) validation.FieldErrors {
	t.Helper()
	require.Error(t, err)
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	return verr.Fields
}

func TestNoOpUpdateIsValid(t *testing.T) {
	noOps := map[string]func() error{
		"account": func() error {
			_, err := validation.Parse(va, dto.AccountUpdate{ID: "e1", UserID: "u1"})
			return err
		},
		"transaction": func() error {
			_, err := validation.Parse(va, dto.TransactionUpdate{ID: "e1", UserID: "u1"})
			return err
		},
		"installment group": func() error {
			_, err := validation.Parse(va, dto.InstallmentGroupUpdate{ID: "e1", UserID: "u1"})
			return err
		},
		"investment account": func() error {
			_, err := validation.Parse(va, dto.InvestmentAccountUpdate{ID: "e1", UserID: "u1"})
			return err
		},
		"investment transaction": func() error {
			_, err := validation.Parse(va, dto.InvestmentTransactionUpdate{ID: "e1", UserID: "u1"})
			return err
		},
		"investment position": func() error {
			_, err := validation.Parse(va, dto.InvestmentPositionUpdate{ID: "e1", UserID: "u1"})
			return err
		},
		"investment earning": func() error {
			_, err := validation.Parse(va, dto.InvestmentEarningUpdate{ID: "e1", UserID: "u1"})
			return err
		},
		"points program": func() error {
			_, err := validation.Parse(va, dto.PointsProgramUpdate{ID: "e1", UserID: "u1"})
			return err
		},
		"points balance": func() error {
			_, err := validation.Parse(va, dto.PointsBalanceUpdate{ID: "e1", UserID: "u1"})
			return err
		},
		"points operation": func() error {
			_, err := validation.Parse(va, dto.PointsOperationUpdate{ID: "e1", UserID: "u1"})
			return err
		},
		"points offer": func() error {
			_, err := validation.Parse(va, dto.PointsOfferUpdate{ID: "e1"})
			return err
		},
		"ai session": func() error {
			_, err := validation.Parse(va, dto.AiSessionUpdate{ID: "e1", UserID: "u1"})
			return err
		},
		"ai message": func() error {
			_, err := validation.Parse(va, dto.AiMessageUpdate{ID: "e1", UserID: "u1"})
			return err
		},
	}
	for name, parse := range noOps {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, parse())
		})
	}
}

func TestUpdateRequiresIdentity(t *testing.T) {
	_, err := validation.Parse(va, dto.AccountUpdate{})
	fields := fieldErrors(t, err)
	assert.Contains(t, fields, "id")
	assert.Contains(t, fields, "userId")
}

func TestCreateReportsEveryMissingField(t *testing.T) {
	_, err := validation.Parse(va, dto.AccountCreate{})
	fields := fieldErrors(t, err)
	assert.Contains(t, fields, "userId")
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "accountType")
	assert.Contains(t, fields["name"], "is required")
}

func TestCreateRequiresMonetaryFields(t *testing.T) {
	transaction := dto.TransactionCreate{
		UserID:      "u1",
		AccountID:   "a1",
		AccountType: domain.AccountTypeCardCredit,
		Date:        1700000000000,
		Description: "Coffee",
		Type:        domain.TransactionExpense,
	}
	_, err := validation.Parse(va, transaction)
	fields := fieldErrors(t, err)
	assert.Equal(t, []string{"is required"}, fields["amount"])

	group := dto.InstallmentGroupCreate{
		UserID:           "u1",
		PurchaseDate:     1700000000000,
		InstallmentCount: 10,
		CardAccountID:    "a1",
		FirstDueDate:     1702600000000,
	}
	_, err = validation.Parse(va, group)
	assert.Contains(t, fieldErrors(t, err), "originalAmount")

	earning := dto.InvestmentEarningCreate{
		UserID:       "u1",
		InvAccountID: "ia1",
		Date:         1700000000000,
		AssetType:    domain.AssetFII,
		TickerOrName: "HGLG11",
		Type:         domain.EarningDividend,
	}
	_, err = validation.Parse(va, earning)
	fields = fieldErrors(t, err)
	assert.Contains(t, fields, "grossAmount")
	assert.Contains(t, fields, "taxAmount")
	assert.Contains(t, fields, "netAmount")

	balance := dto.PointsBalanceCreate{
		UserID:    "u1",
		ProgramID: "p1",
		EarnedAt:  1700000000000,
		ExpiresAt: 1763072000000,
	}
	_, err = validation.Parse(va, balance)
	assert.Contains(t, fieldErrors(t, err), "points")

	operation := dto.PointsOperationCreate{
		UserID:    "u1",
		ProgramID: "p1",
		Date:      1700000000000,
		Type:      domain.PointsOpEarn,
	}
	_, err = validation.Parse(va, operation)
	assert.Contains(t, fieldErrors(t, err), "pointsDelta")
}

func TestCreateAcceptsExplicitZeroAmounts(t *testing.T) {
	// A pointer to 0 is an explicit zero, not an absent field.
	transaction := dto.TransactionCreate{
		UserID:      "u1",
		AccountID:   "a1",
		AccountType: domain.AccountTypeCardCredit,
		Date:        1700000000000,
		Description: "Fee waiver",
		Amount:      ptr(domain.Cents(0)),
		Type:        domain.TransactionExpense,
	}
	_, err := validation.Parse(va, transaction)
	assert.NoError(t, err)

	balance := dto.PointsBalanceCreate{
		UserID:    "u1",
		ProgramID: "p1",
		Points:    ptr(int64(0)),
		EarnedAt:  1700000000000,
		ExpiresAt: 1763072000000,
	}
	_, err = validation.Parse(va, balance)
	assert.NoError(t, err)
}

func TestEnumFailsClosed(t *testing.T) {
	base := dto.AccountCreate{UserID: "u1", Name: "Main"}

	bad := base
	bad.AccountType = "crypto"
	_, err := validation.Parse(va, bad)
	fields := fieldErrors(t, err)
	assert.Contains(t, fields, "accountType")
	assert.Contains(t, fields["accountType"][0], "must be one of")

	good := base
	good.AccountType = domain.AccountTypeWalletCash
	_, err = validation.Parse(va, good)
	assert.NoError(t, err)
}

func TestEnumRejectsCaseVariants(t *testing.T) {
	in := dto.AccountCreate{UserID: "u1", Name: "Main", AccountType: "Bank_Checking"}
	_, err := validation.Parse(va, in)
	fields := fieldErrors(t, err)
	assert.Contains(t, fields, "accountType")
}

func TestAccountCreateDefaultsCurrency(t *testing.T) {
	in := dto.AccountCreate{UserID: "u1", Name: "Main", AccountType: domain.AccountTypeBankCheck}
	out, err := validation.Parse(va, in)
	require.NoError(t, err)
	assert.Equal(t, domain.CurrencyBRL, out.Currency)

	// Everything else comes back untouched.
	in.Currency = domain.CurrencyBRL
	assert.Equal(t, in, out)
}

func TestTransactionCreateRoundTrip(t *testing.T) {
	in := dto.TransactionCreate{
		UserID:      "u1",
		AccountID:   "a1",
		AccountType: domain.AccountTypeCardCredit,
		Date:        1700000000000,
		Description: "Coffee",
		Amount:      ptr(domain.Cents(500)),
		Type:        domain.TransactionExpense,
	}
	out, err := validation.Parse(va, in)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestParseIsIdempotent(t *testing.T) {
	in := dto.AccountCreate{UserID: "u1", Name: "Main", AccountType: domain.AccountTypeBankCheck}
	first, err := validation.Parse(va, in)
	require.NoError(t, err)
	second, err := validation.Parse(va, first)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBillingDayBoundaries(t *testing.T) {
	mk := func(closing, due int) dto.AccountCreate {
		return dto.AccountCreate{
			UserID:      "u1",
			Name:        "Card",
			AccountType: domain.AccountTypeCardCredit,
			Billing:     &dto.AccountBilling{ClosingDay: closing, DueDay: due},
		}
	}

	for _, day := range []int{1, 28} {
		_, err := validation.Parse(va, mk(day, day))
		assert.NoError(t, err, "day %d should be accepted", day)
	}
	for _, day := range []int{0, 29} {
		_, err := validation.Parse(va, mk(day, 15))
		fields := fieldErrors(t, err)
		assert.Contains(t, fields, "billing.closingDay", "day %d should be rejected", day)
	}
}

func TestLast4Boundaries(t *testing.T) {
	mk := func(last4 string) dto.AccountCreate {
		return dto.AccountCreate{
			UserID:      "u1",
			Name:        "Card",
			AccountType: domain.AccountTypeCardCredit,
			Last4:       last4,
		}
	}

	for _, ok := range []string{"1234", "12"} {
		_, err := validation.Parse(va, mk(ok))
		assert.NoError(t, err, "last4 %q should be accepted", ok)
	}
	for _, bad := range []string{"123456", "12a4"} {
		_, err := validation.Parse(va, mk(bad))
		fields := fieldErrors(t, err)
		assert.Contains(t, fields, "last4", "last4 %q should be rejected", bad)
	}
}

func TestStatementMonthFormat(t *testing.T) {
	in := dto.TransactionCreate{
		UserID:         "u1",
		AccountID:      "a1",
		AccountType:    domain.AccountTypeCardCredit,
		Date:           1700000000000,
		Description:    "Coffee",
		Amount:         ptr(domain.Cents(500)),
		Type:           domain.TransactionExpense,
		StatementMonth: "2023-11",
	}
	_, err := validation.Parse(va, in)
	fields := fieldErrors(t, err)
	assert.Equal(t, []string{"Use yyyymm"}, fields["statementMonth"])

	in.StatementMonth = "202311"
	_, err = validation.Parse(va, in)
	assert.NoError(t, err)
}

func TestPointsBalanceRejectsNegativePoints(t *testing.T) {
	in := dto.PointsBalanceCreate{
		UserID:    "u1",
		ProgramID: "p1",
		Points:    ptr(int64(-5)),
		EarnedAt:  1700000000000,
		ExpiresAt: 1700003600000,
	}
	_, err := validation.Parse(va, in)
	fields := fieldErrors(t, err)
	assert.Equal(t, []string{"must be a non-negative integer"}, fields["points"])
}

func TestPointsBalanceDefaultsStatus(t *testing.T) {
	in := dto.PointsBalanceCreate{
		UserID:    "u1",
		ProgramID: "p1",
		Points:    ptr(int64(1000)),
		EarnedAt:  1700000000000,
		ExpiresAt: 1700003600000,
	}
	out, err := validation.Parse(va, in)
	require.NoError(t, err)
	assert.Equal(t, domain.PointsActive, out.Status)
}

func TestPointsOfferTermsURL(t *testing.T) {
	in := dto.PointsOfferCreate{
		Program:     domain.ProgramLivelo,
		Title:       "Bonus transfer",
		Description: "80% bonus on transfers",
		Bonus:       ptr(0.8),
		ValidUntil:  1700003600000,
		TermsURL:    "not a url",
	}
	_, err := validation.Parse(va, in)
	fields := fieldErrors(t, err)
	assert.Equal(t, []string{"must be a valid URL"}, fields["termsUrl"])
}

func TestExhaustiveCollection(t *testing.T) {
	in := dto.AccountCreate{
		AccountType: "crypto",
		Last4:       "12a4",
	}
	_, err := validation.Parse(va, in)
	fields := fieldErrors(t, err)
	// One call reports every violation, not just the first.
	assert.Contains(t, fields, "userId")
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "accountType")
	assert.Contains(t, fields, "last4")
}

func TestPaginationDefaultsAndBounds(t *testing.T) {
	out, err := validation.Parse(va, dto.Pagination{})
	require.NoError(t, err)
	assert.Equal(t, dto.DefaultPageLimit, out.Limit)

	_, err = validation.Parse(va, dto.Pagination{Limit: 201})
	fields := fieldErrors(t, err)
	assert.Contains(t, fields, "limit")

	out, err = validation.Parse(va, dto.Pagination{Limit: 200})
	require.NoError(t, err)
	assert.Equal(t, 200, out.Limit)
}

func TestErrorMessageIsStable(t *testing.T) {
	_, err := validation.Parse(va, dto.AiSessionCreate{})
	require.Error(t, err)
	assert.Equal(t, "validation failed: userId: is required", err.Error())
	assert.ErrorIs(t, err, domain.ErrValidation)
}
