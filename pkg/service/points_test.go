package service_test

import (
	"context"
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

func newPointsService() *service.PointsService {
	return service.NewPointsService(service.PointsCollections{
		Programs:   fixtures.NewMemCollection[domain.PointsProgram](),
		Balances:   fixtures.NewMemCollection[domain.PointsBalance](),
		Operations: fixtures.NewMemCollection[domain.PointsOperation](),
		Offers:     fixtures.NewMemCollection[domain.PointsOffer](),
	}, validation.New(), slog.Default())
}

func TestPointsBalanceLifecycle(t *testing.T) {
	svc := newPointsService()
	ctx := context.Background()

	b, err := svc.CreateBalance(ctx, dto.PointsBalanceCreate{
		UserID:    "u1",
		ProgramID: "p1",
		Points:    ptr(int64(12000)),
		EarnedAt:  1700000000000,
		ExpiresAt: 1763072000000,
		Source:    domain.SourceCreditCard,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PointsActive, b.Status)

	status := domain.PointsRedeemed
	updated, err := svc.UpdateBalance(ctx, dto.PointsBalanceUpdate{
		ID:     b.ID,
		UserID: "u1",
		Status: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PointsRedeemed, updated.Status)
	assert.Equal(t, int64(12000), updated.Points)
}

func TestPointsBalanceRejectsNegative(t *testing.T) {
	svc := newPointsService()

	_, err := svc.CreateBalance(context.Background(), dto.PointsBalanceCreate{
		UserID:    "u1",
		ProgramID: "p1",
		Points:    ptr(int64(-5)),
		EarnedAt:  1700000000000,
		ExpiresAt: 1700003600000,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPointsOperationSignedDelta(t *testing.T) {
	svc := newPointsService()
	ctx := context.Background()

	op, err := svc.CreateOperation(ctx, dto.PointsOperationCreate{
		UserID:      "u1",
		ProgramID:   "p1",
		Date:        1700000000000,
		Type:        domain.PointsOpRedeem,
		PointsDelta: ptr(int64(-8000)),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(-8000), op.PointsDelta)
}

func TestPointsOffersAreGlobal(t *testing.T) {
	svc := newPointsService()
	ctx := context.Background()

	o, err := svc.CreateOffer(ctx, dto.PointsOfferCreate{
		Program:     domain.ProgramLivelo,
		Title:       "Transfer bonus",
		Description: "80% bonus to Smiles",
		Bonus:       ptr(0.8),
		ValidUntil:  1763072000000,
		TermsURL:    "https://example.com/terms",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, o.ID)
	assert.NotZero(t, o.CreatedAt)

	// Any caller sees the offer without an owner filter.
	page, err := svc.ListOffers(ctx, dto.Pagination{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Transfer bonus", page.Items[0].Title)

	got, err := svc.GetOffer(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.ID, got.ID)

	bonus := 1.0
	updated, err := svc.UpdateOffer(ctx, dto.PointsOfferUpdate{ID: o.ID, Bonus: &bonus})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, updated.Bonus, 1e-9)

	require.NoError(t, svc.DeleteOffer(ctx, o.ID))
	_, err = svc.GetOffer(ctx, o.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPointsOfferCreateValidatesBonusRange(t *testing.T) {
	svc := newPointsService()

	_, err := svc.CreateOffer(context.Background(), dto.PointsOfferCreate{
		Program:     domain.ProgramSmiles,
		Title:       "Too good",
		Description: "600% bonus",
		Bonus:       ptr(6.0),
		ValidUntil:  1763072000000,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
