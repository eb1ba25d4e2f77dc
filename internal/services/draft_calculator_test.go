package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/garagedesk/garagedesk-api/internal/db"
	"github.com/garagedesk/garagedesk-api/internal/mocks"
	"github.com/garagedesk/garagedesk-api/internal/services"
	"github.com/garagedesk/garagedesk-api/internal/types/business"
	"github.com/garagedesk/garagedesk-api/internal/types/params"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newDraftCalculator(t *testing.T) (*services.DraftCalculator, *mocks.MockQuerier) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockQuerier := mocks.NewMockQuerier(ctrl)
	taxCodes := services.NewTaxCodeService(mockQuerier, zap.NewNop())
	return services.NewDraftCalculator(taxCodes, zap.NewNop()), mockQuerier
}

func expectService(m *mocks.MockQuerier, id uuid.UUID, name, price, taxCode string) {
	m.EXPECT().GetCatalogService(gomock.Any(), id).Return(db.CatalogService{
		ID:        id,
		Name:      name,
		UnitPrice: dec(price),
		TaxCode:   pgtype.Text{String: taxCode, Valid: taxCode != ""},
		IsActive:  true,
	}, nil)
}

func TestDraftCalculator_AddLine(t *testing.T) {
	calc, mockQuerier := newDraftCalculator(t)
	ctx := context.Background()

	serviceID := uuid.New()
	expectService(mockQuerier, serviceID, "Full Service", "2500", "998729")

	draft := business.InvoiceDraft{Kind: db.InvoiceKindGST}
	next, err := calc.AddLine(ctx, draft, params.AddLineParams{
		CatalogID: serviceID,
		Kind:      db.LineItemKindService,
	})
	require.NoError(t, err)

	require.Len(t, next.LineItems, 1)
	added := next.LineItems[0]
	assert.Equal(t, "Full Service", added.Name)
	assert.Equal(t, int32(1), added.Quantity)
	assert.True(t, added.Discount.IsZero())
	assert.Equal(t, "998729", added.TaxCode)
	assert.True(t, added.LineTotal.Equal(dec("2500")))

	// The input draft is untouched
	assert.Empty(t, draft.LineItems)
}

func TestDraftCalculator_AddLineRejectsDuplicateCatalogEntry(t *testing.T) {
	calc, mockQuerier := newDraftCalculator(t)
	ctx := context.Background()

	serviceID := uuid.New()
	expectService(mockQuerier, serviceID, "Oil Change", "800", "")

	draft := business.InvoiceDraft{Kind: db.InvoiceKindGST}
	draft, err := calc.AddLine(ctx, draft, params.AddLineParams{
		CatalogID: serviceID,
		Kind:      db.LineItemKindService,
	})
	require.NoError(t, err)

	_, err = calc.AddLine(ctx, draft, params.AddLineParams{
		CatalogID: serviceID,
		Kind:      db.LineItemKindService,
	})
	var ve *business.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "catalog_id", ve.Field)
}

func TestDraftCalculator_SetQuantity(t *testing.T) {
	calc, mockQuerier := newDraftCalculator(t)
	ctx := context.Background()

	partID := uuid.New()
	mockQuerier.EXPECT().GetCatalogPart(gomock.Any(), partID).Return(db.CatalogPart{
		ID:        partID,
		Name:      "Brake Pad Set",
		UnitPrice: dec("400"),
		IsActive:  true,
	}, nil)

	draft := business.InvoiceDraft{Kind: db.InvoiceKindGST}
	draft, err := calc.AddLine(ctx, draft, params.AddLineParams{
		CatalogID: partID,
		Kind:      db.LineItemKindPart,
	})
	require.NoError(t, err)
	lineID := draft.LineItems[0].ID

	draft, err = calc.SetQuantity(draft, lineID, 2)
	require.NoError(t, err)
	assert.Equal(t, int32(2), draft.LineItems[0].Quantity)
	assert.True(t, draft.LineItems[0].LineTotal.Equal(dec("800")))

	// Quantity below 1 is rejected and leaves the draft unchanged
	_, err = calc.SetQuantity(draft, lineID, 0)
	var ve *business.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, int32(2), draft.LineItems[0].Quantity)
}

func TestDraftCalculator_SetQuantityUnknownLine(t *testing.T) {
	calc, _ := newDraftCalculator(t)

	draft := business.InvoiceDraft{Kind: db.InvoiceKindGST}
	_, err := calc.SetQuantity(draft, uuid.New(), 3)
	assert.True(t, errors.Is(err, business.ErrNotFound))
}

func TestDraftCalculator_SetDiscount(t *testing.T) {
	calc, mockQuerier := newDraftCalculator(t)
	ctx := context.Background()

	partID := uuid.New()
	mockQuerier.EXPECT().GetCatalogPart(gomock.Any(), partID).Return(db.CatalogPart{
		ID:        partID,
		Name:      "Brake Pad Set",
		UnitPrice: dec("400"),
		IsActive:  true,
	}, nil)

	draft := business.InvoiceDraft{Kind: db.InvoiceKindGST}
	draft, err := calc.AddLine(ctx, draft, params.AddLineParams{
		CatalogID: partID,
		Kind:      db.LineItemKindPart,
	})
	require.NoError(t, err)
	lineID := draft.LineItems[0].ID

	draft, err = calc.SetQuantity(draft, lineID, 2)
	require.NoError(t, err)

	draft, err = calc.SetDiscount(draft, lineID, dec("300"))
	require.NoError(t, err)
	assert.True(t, draft.LineItems[0].LineTotal.Equal(dec("500")))

	// Discount above unit price x quantity is rejected
	_, err = calc.SetDiscount(draft, lineID, dec("800.01"))
	var ve *business.ValidationError
	require.True(t, errors.As(err, &ve))

	// Discount equal to the full line amount is allowed
	draft, err = calc.SetDiscount(draft, lineID, dec("800"))
	require.NoError(t, err)
	assert.True(t, draft.LineItems[0].LineTotal.IsZero())

	// Negative discount is rejected
	_, err = calc.SetDiscount(draft, lineID, dec("-1"))
	require.True(t, errors.As(err, &ve))
}

func TestDraftCalculator_SetQuantityGuardsExistingDiscount(t *testing.T) {
	calc, mockQuerier := newDraftCalculator(t)
	ctx := context.Background()

	partID := uuid.New()
	mockQuerier.EXPECT().GetCatalogPart(gomock.Any(), partID).Return(db.CatalogPart{
		ID:        partID,
		Name:      "Air Filter",
		UnitPrice: dec("350"),
		IsActive:  true,
	}, nil)

	draft := business.InvoiceDraft{Kind: db.InvoiceKindGST}
	draft, err := calc.AddLine(ctx, draft, params.AddLineParams{
		CatalogID: partID,
		Kind:      db.LineItemKindPart,
	})
	require.NoError(t, err)
	lineID := draft.LineItems[0].ID

	draft, err = calc.SetQuantity(draft, lineID, 2)
	require.NoError(t, err)
	draft, err = calc.SetDiscount(draft, lineID, dec("500"))
	require.NoError(t, err)

	// Dropping quantity back to 1 would leave the 500 discount above the
	// 350 line amount.
	_, err = calc.SetQuantity(draft, lineID, 1)
	var ve *business.ValidationError
	require.True(t, errors.As(err, &ve))
}

func TestDraftCalculator_RemoveLineIsIdempotent(t *testing.T) {
	calc, mockQuerier := newDraftCalculator(t)
	ctx := context.Background()

	serviceID := uuid.New()
	expectService(mockQuerier, serviceID, "Wheel Alignment", "900", "")

	draft := business.InvoiceDraft{Kind: db.InvoiceKindGST}
	draft, err := calc.AddLine(ctx, draft, params.AddLineParams{
		CatalogID: serviceID,
		Kind:      db.LineItemKindService,
	})
	require.NoError(t, err)
	lineID := draft.LineItems[0].ID

	draft = calc.RemoveLine(draft, lineID)
	assert.Empty(t, draft.LineItems)

	// Removing the same line again is a no-op
	draft = calc.RemoveLine(draft, lineID)
	assert.Empty(t, draft.LineItems)
}

func TestDraftCalculator_SnapshotSurvivesCatalogChanges(t *testing.T) {
	calc, mockQuerier := newDraftCalculator(t)
	ctx := context.Background()

	serviceID := uuid.New()
	expectService(mockQuerier, serviceID, "Full Service", "2500", "998729")

	draft := business.InvoiceDraft{Kind: db.InvoiceKindGST}
	draft, err := calc.AddLine(ctx, draft, params.AddLineParams{
		CatalogID: serviceID,
		Kind:      db.LineItemKindService,
	})
	require.NoError(t, err)
	lineID := draft.LineItems[0].ID

	// Later edits never consult the catalog, so no further expectations are
	// registered on the mock.
	draft, err = calc.SetQuantity(draft, lineID, 3)
	require.NoError(t, err)
	draft, err = calc.SetDiscount(draft, lineID, dec("100"))
	require.NoError(t, err)

	assert.True(t, draft.LineItems[0].UnitPrice.Equal(dec("2500")))
	assert.Equal(t, "998729", draft.LineItems[0].TaxCode)
	assert.True(t, draft.LineItems[0].LineTotal.Equal(dec("7400")))
}

func TestDraftCalculator_EditOrderDoesNotChangeTotals(t *testing.T) {
	calc, mockQuerier := newDraftCalculator(t)
	ctx := context.Background()

	serviceID := uuid.New()
	partID := uuid.New()
	expectService(mockQuerier, serviceID, "Full Service", "2500", "998729")
	mockQuerier.EXPECT().GetCatalogPart(gomock.Any(), partID).Return(db.CatalogPart{
		ID:        partID,
		Name:      "Brake Pad Set",
		UnitPrice: dec("400"),
		IsActive:  true,
	}, nil).Times(2)

	base := business.InvoiceDraft{
		Kind:            db.InvoiceKindGST,
		LaborCharges:    dec("500"),
		DiscountPercent: dec("10"),
		TaxRatePercent:  dec("18"),
	}

	// Path one: add service, add part, set part quantity then discount.
	a, err := calc.AddLine(ctx, base, params.AddLineParams{CatalogID: serviceID, Kind: db.LineItemKindService})
	require.NoError(t, err)
	a, err = calc.AddLine(ctx, a, params.AddLineParams{CatalogID: partID, Kind: db.LineItemKindPart})
	require.NoError(t, err)
	partLine := a.LineItems[1].ID
	a, err = calc.SetQuantity(a, partLine, 2)
	require.NoError(t, err)
	a, err = calc.SetDiscount(a, partLine, dec("300"))
	require.NoError(t, err)

	// Path two: part first, discount before quantity, service last.
	expectService(mockQuerier, serviceID, "Full Service", "2500", "998729")
	b, err := calc.AddLine(ctx, base, params.AddLineParams{CatalogID: partID, Kind: db.LineItemKindPart})
	require.NoError(t, err)
	partLineB := b.LineItems[0].ID
	b, err = calc.SetDiscount(b, partLineB, dec("300"))
	require.NoError(t, err)
	b, err = calc.SetQuantity(b, partLineB, 2)
	require.NoError(t, err)
	b, err = calc.AddLine(ctx, b, params.AddLineParams{CatalogID: serviceID, Kind: db.LineItemKindService})
	require.NoError(t, err)

	totalsA := services.CalculateTotals(a)
	totalsB := services.CalculateTotals(b)
	assert.True(t, totalsA.Total.Equal(totalsB.Total), "a=%s b=%s", totalsA.Total, totalsB.Total)
	assert.True(t, totalsA.Subtotal.Equal(dec("3500")))
}
