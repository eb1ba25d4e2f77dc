package services

import (
	"context"
	"fmt"

	"github.com/garagedesk/garagedesk-api/internal/types/business"
	"github.com/garagedesk/garagedesk-api/internal/types/params"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DraftCalculator prices the lines of an invoice draft. Every operation is
// a pure transformation: it takes a draft value, returns a new draft value,
// and touches nothing else. The catalog is consulted only by AddLine, to
// take the price/tax-code snapshot; no later operation re-resolves it.
type DraftCalculator struct {
	taxCodes *TaxCodeService
	logger   *zap.Logger
}

// NewDraftCalculator creates a new draft calculator
func NewDraftCalculator(taxCodes *TaxCodeService, logger *zap.Logger) *DraftCalculator {
	return &DraftCalculator{
		taxCodes: taxCodes,
		logger:   logger,
	}
}

// AddLine appends a new line for the referenced catalog entry with
// quantity 1 and no discount. Adding the same catalog entry twice is
// rejected; the caller should raise the quantity on the existing line
// instead.
func (c *DraftCalculator) AddLine(ctx context.Context, draft business.InvoiceDraft, p params.AddLineParams) (business.InvoiceDraft, error) {
	for _, item := range draft.LineItems {
		if item.CatalogID == p.CatalogID && item.Kind == p.Kind {
			return draft, business.NewValidationError("catalog_id",
				fmt.Sprintf("%s %s is already on the invoice", p.Kind, p.CatalogID))
		}
	}

	snapshot, err := c.taxCodes.Resolve(ctx, p.Kind, p.CatalogID)
	if err != nil {
		return draft, err
	}

	line := business.DraftLineItem{
		ID:        uuid.New(),
		Kind:      p.Kind,
		CatalogID: p.CatalogID,
		Name:      snapshot.Name,
		UnitPrice: snapshot.UnitPrice,
		Quantity:  1,
		Discount:  decimal.Zero,
		TaxCode:   snapshot.TaxCode,
		LineTotal: snapshot.UnitPrice,
	}

	next := draft
	next.LineItems = append(cloneLines(draft.LineItems), line)
	return next, nil
}

// SetQuantity changes a line's quantity and recomputes its total
func (c *DraftCalculator) SetQuantity(draft business.InvoiceDraft, lineID uuid.UUID, quantity int32) (business.InvoiceDraft, error) {
	if quantity < 1 {
		return draft, business.NewValidationError("quantity", "quantity must be at least 1")
	}

	idx := findLine(draft.LineItems, lineID)
	if idx < 0 {
		return draft, business.NewNotFoundError("line item", lineID.String())
	}

	line := draft.LineItems[idx]
	maxDiscount := line.UnitPrice.Mul(decimal.NewFromInt32(quantity))
	if line.Discount.GreaterThan(maxDiscount) {
		return draft, business.NewValidationError("quantity",
			fmt.Sprintf("quantity %d would leave the line discount above the line amount", quantity))
	}

	lines := cloneLines(draft.LineItems)
	lines[idx].Quantity = quantity
	lines[idx].LineTotal = lineTotal(line.UnitPrice, quantity, line.Discount)

	next := draft
	next.LineItems = lines
	return next, nil
}

// SetDiscount changes a line's discount amount and recomputes its total.
// The discount is an absolute amount off the whole line and may not exceed
// unit price times quantity.
func (c *DraftCalculator) SetDiscount(draft business.InvoiceDraft, lineID uuid.UUID, discount decimal.Decimal) (business.InvoiceDraft, error) {
	if discount.IsNegative() {
		return draft, business.NewValidationError("discount", "discount cannot be negative")
	}

	idx := findLine(draft.LineItems, lineID)
	if idx < 0 {
		return draft, business.NewNotFoundError("line item", lineID.String())
	}

	line := draft.LineItems[idx]
	maxDiscount := line.UnitPrice.Mul(decimal.NewFromInt32(line.Quantity))
	if discount.GreaterThan(maxDiscount) {
		return draft, business.NewValidationError("discount",
			fmt.Sprintf("discount %s exceeds the line amount %s", discount, maxDiscount))
	}

	lines := cloneLines(draft.LineItems)
	lines[idx].Discount = discount
	lines[idx].LineTotal = lineTotal(line.UnitPrice, line.Quantity, discount)

	next := draft
	next.LineItems = lines
	return next, nil
}

// RemoveLine drops a line from the draft. Removing a line that is not
// present is a no-op, which keeps the operation idempotent for retried
// edits.
func (c *DraftCalculator) RemoveLine(draft business.InvoiceDraft, lineID uuid.UUID) business.InvoiceDraft {
	lines := make([]business.DraftLineItem, 0, len(draft.LineItems))
	for _, item := range draft.LineItems {
		if item.ID != lineID {
			lines = append(lines, item)
		}
	}

	next := draft
	next.LineItems = lines
	return next
}

func findLine(lines []business.DraftLineItem, lineID uuid.UUID) int {
	for i, item := range lines {
		if item.ID == lineID {
			return i
		}
	}
	return -1
}

// cloneLines copies the line slice so operations never alias the caller's
// draft.
func cloneLines(lines []business.DraftLineItem) []business.DraftLineItem {
	out := make([]business.DraftLineItem, len(lines))
	copy(out, lines)
	return out
}
