package service_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meucofre/meucofre/internal/fixtures"
	"github.com/meucofre/meucofre/pkg/domain"
	"github.com/meucofre/meucofre/pkg/dto"
	"github.com/meucofre/meucofre/pkg/service"
	"github.com/meucofre/meucofre/pkg/validation"
)

func ptr[T any](v T) *T { return &v }

type stubClassifier struct {
	result *service.ClassifierResult
	err    error
	seen   []*domain.Transaction
}

func (s *stubClassifier) Classify(_ context.Context, txs []*domain.Transaction) (*service.ClassifierResult, error) {
	s.seen = txs
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func newTransactionService(cl service.TransactionClassifier) *service.TransactionService {
	return service.NewTransactionService(
		fixtures.NewMemCollection[domain.Transaction](),
		cl,
		validation.New(),
		slog.Default(),
	)
}

func createTx(t *testing.T, svc *service.TransactionService, userID, desc, categoryID string) *domain.Transaction {
	t.Helper()
	tx, err := svc.Create(context.Background(), dto.TransactionCreate{
		UserID:      userID,
		AccountID:   "a1",
		AccountType: domain.AccountTypeCardCredit,
		Date:        1700000000000,
		Description: desc,
		Amount:      ptr(domain.Cents(500)),
		Type:        domain.TransactionExpense,
		CategoryID:  categoryID,
	})
	require.NoError(t, err)
	return tx
}

func TestTransactionCreateKeepsCents(t *testing.T) {
	svc := newTransactionService(nil)
	tx := createTx(t, svc, "u1", "Coffee", "")
	assert.Equal(t, domain.Cents(500), tx.Amount)
	assert.Equal(t, domain.TransactionExpense, tx.Type)
	assert.Nil(t, tx.LLM)
}

func TestClassifyWithoutClassifier(t *testing.T) {
	svc := newTransactionService(nil)
	_, err := svc.Classify(context.Background(), "u1")
	assert.ErrorIs(t, err, domain.ErrClassifierUnavailable)
}

func TestClassifyStampsSuggestions(t *testing.T) {
	cl := &stubClassifier{}
	svc := newTransactionService(cl)
	ctx := context.Background()

	pending := createTx(t, svc, "u1", "IFOOD *RESTAURANTE", "")
	already := createTx(t, svc, "u1", "Salary", "salary")

	cl.result = &service.ClassifierResult{
		Model: "gemini-1.5-flash",
		Raw:   `[{"transaction_id":"` + pending.ID + `","category_id":"food","merchant":"iFood","confidence":0.93}]`,
		Suggestions: []service.Suggestion{
			{TransactionID: pending.ID, CategoryID: "food", Merchant: "iFood", Confidence: 0.93},
		},
	}

	updated, err := svc.Classify(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, updated)

	// Only the uncategorized transaction went to the model.
	require.Len(t, cl.seen, 1)
	assert.Equal(t, pending.ID, cl.seen[0].ID)

	got, err := svc.Get(ctx, "u1", pending.ID)
	require.NoError(t, err)
	assert.Equal(t, "food", got.CategoryID)
	assert.Equal(t, "iFood", got.Merchant)
	require.NotNil(t, got.LLM)
	assert.True(t, got.LLM.Classified)
	assert.Equal(t, "gemini-1.5-flash", got.LLM.Model)
	require.NotNil(t, got.LLM.Confidence)
	assert.InDelta(t, 0.93, *got.LLM.Confidence, 1e-9)

	// The categorized one was untouched.
	got, err = svc.Get(ctx, "u1", already.ID)
	require.NoError(t, err)
	assert.Equal(t, "salary", got.CategoryID)
	assert.Nil(t, got.LLM)
}

func TestClassifyNothingPending(t *testing.T) {
	cl := &stubClassifier{}
	svc := newTransactionService(cl)

	createTx(t, svc, "u1", "Salary", "salary")

	updated, err := svc.Classify(context.Background(), "u1")
	require.NoError(t, err)
	assert.Zero(t, updated)
	assert.Nil(t, cl.seen)
}

func TestClassifyKeepsExistingMerchant(t *testing.T) {
	cl := &stubClassifier{}
	svc := newTransactionService(cl)
	ctx := context.Background()

	tx, err := svc.Create(ctx, dto.TransactionCreate{
		UserID:      "u1",
		AccountID:   "a1",
		AccountType: domain.AccountTypeCardCredit,
		Date:        1700000000000,
		Description: "UBER *TRIP",
		Merchant:    "Uber",
		Amount:      ptr(domain.Cents(2350)),
		Type:        domain.TransactionExpense,
	})
	require.NoError(t, err)

	cl.result = &service.ClassifierResult{
		Model: "gemini-1.5-flash",
		Suggestions: []service.Suggestion{
			{TransactionID: tx.ID, CategoryID: "transport", Merchant: "Uber Trip", Confidence: 0.9},
		},
	}
	_, err = svc.Classify(ctx, "u1")
	require.NoError(t, err)

	got, err := svc.Get(ctx, "u1", tx.ID)
	require.NoError(t, err)
	assert.Equal(t, "transport", got.CategoryID)
	assert.Equal(t, "Uber", got.Merchant)
}

func TestClassifyPropagatesModelError(t *testing.T) {
	cl := &stubClassifier{err: errors.New("quota exceeded")}
	svc := newTransactionService(cl)

	createTx(t, svc, "u1", "Coffee", "")

	_, err := svc.Classify(context.Background(), "u1")
	assert.ErrorContains(t, err, "quota exceeded")
}
