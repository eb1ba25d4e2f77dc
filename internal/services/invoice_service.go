package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/garagedesk/garagedesk-api/internal/constants"
	"github.com/garagedesk/garagedesk-api/internal/db"
	"github.com/garagedesk/garagedesk-api/internal/types/business"
	"github.com/garagedesk/garagedesk-api/internal/types/params"
	"github.com/garagedesk/garagedesk-api/internal/types/responses"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// TxRunner runs fn against a Querier whose writes commit or roll back as a
// unit. Production code uses PoolTxRunner; tests substitute a runner that
// hands fn the mock directly.
type TxRunner func(ctx context.Context, fn func(db.Querier) error) error

// PoolTxRunner returns a TxRunner backed by pgx transactions on the given
// pool.
func PoolTxRunner(pool *pgxpool.Pool) TxRunner {
	return func(ctx context.Context, fn func(db.Querier) error) error {
		return db.WithTransaction(ctx, pool, func(q *db.Queries) error {
			return fn(q)
		})
	}
}

// InvoiceService turns finished drafts into persisted invoices and reads
// them back. Creation writes the header, line items and opening payments in
// one transaction, so a partial invoice is never visible.
type InvoiceService struct {
	queries db.Querier
	runTx   TxRunner
	numbers *InvoiceNumberService
	logger  *zap.Logger
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(queries db.Querier, runTx TxRunner, numbers *InvoiceNumberService, logger *zap.Logger) *InvoiceService {
	return &InvoiceService{
		queries: queries,
		runTx:   runTx,
		numbers: numbers,
		logger:  logger,
	}
}

// CreateInvoice validates and persists a draft. The draft's derived fields
// are recomputed here; whatever totals the caller displayed are ignored.
// On an invoice-number collision with a concurrent session the whole write
// is retried with a freshly generated number, a bounded number of times.
func (s *InvoiceService) CreateInvoice(ctx context.Context, draft business.InvoiceDraft, now time.Time) (*responses.InvoiceResponse, error) {
	if err := s.validateDraft(ctx, draft); err != nil {
		return nil, err
	}

	// Line totals are derived values. Recompute them from the snapshot
	// price, quantity and discount so a caller cannot persist a forged one.
	draft.LineItems = recomputeLineTotals(draft.LineItems)

	totals := CalculateTotals(draft)

	extraChargesJSON, err := json.Marshal(draft.ExtraCharges)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal extra charges: %w", err)
	}

	dueDate := now.AddDate(0, 0, constants.DueDateDays)

	var created db.Invoice
	attempt := func() error {
		number, err := s.numbers.Generate(ctx, draft.Kind, now)
		if err != nil {
			return backoff.Permanent(err)
		}

		txErr := s.runTx(ctx, func(q db.Querier) error {
			invoice, err := q.CreateInvoice(ctx, db.CreateInvoiceParams{
				InvoiceNumber:   number,
				Kind:            draft.Kind,
				CustomerID:      draft.CustomerID,
				VehicleID:       draft.VehicleID,
				LaborCharges:    draft.LaborCharges,
				ExtraCharges:    extraChargesJSON,
				Odometer:        draft.Odometer,
				DiscountPercent: draft.DiscountPercent,
				TaxRatePercent:  draft.TaxRatePercent,
				Subtotal:        totals.Subtotal,
				TaxAmount:       totals.TaxAmount,
				Total:           totals.Total,
				Status:          draft.Status,
				DueDate:         dueDate,
				Notes:           pgtype.Text{String: draft.Notes, Valid: draft.Notes != ""},
			})
			if err != nil {
				if db.IsUniqueViolation(err, "invoices_invoice_number_key") {
					return business.ErrNumberConflict
				}
				return fmt.Errorf("failed to create invoice: %w", err)
			}

			for _, item := range draft.LineItems {
				if _, err := q.CreateInvoiceLineItem(ctx, db.CreateInvoiceLineItemParams{
					InvoiceID: invoice.ID,
					Kind:      item.Kind,
					CatalogID: item.CatalogID,
					Name:      item.Name,
					UnitPrice: item.UnitPrice,
					Quantity:  item.Quantity,
					Discount:  item.Discount,
					TaxCode:   item.TaxCode,
					LineTotal: item.LineTotal,
				}); err != nil {
					return fmt.Errorf("failed to create line item for %s: %w", item.CatalogID, err)
				}

				// Invoiced parts come out of stock in the same transaction
				if item.Kind == db.LineItemKindPart {
					if _, err := q.AdjustPartStock(ctx, db.AdjustPartStockParams{
						ID:    item.CatalogID,
						Delta: -item.Quantity,
					}); err != nil {
						return fmt.Errorf("failed to adjust stock for part %s: %w", item.CatalogID, err)
					}
				}
			}

			created = invoice
			return nil
		})
		if txErr != nil {
			if errors.Is(txErr, business.ErrNumberConflict) {
				s.logger.Warn("Invoice number conflict, regenerating",
					zap.String("invoice_number", number))
				return txErr
			}
			return backoff.Permanent(txErr)
		}
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), constants.MaxNumberGenerationAttempts-1), ctx)
	if err := backoff.Retry(attempt, policy); err != nil {
		if errors.Is(err, business.ErrNumberConflict) {
			return nil, business.NewPersistenceError("create invoice",
				fmt.Errorf("invoice number conflicts persisted after %d attempts: %w",
					constants.MaxNumberGenerationAttempts, err))
		}
		return nil, err
	}

	s.logger.Info("Invoice created",
		zap.String("invoice_id", created.ID.String()),
		zap.String("invoice_number", created.InvoiceNumber),
		zap.String("kind", string(created.Kind)),
		zap.String("total", created.Total.String()))

	return s.GetInvoice(ctx, created.ID)
}

// GetInvoice retrieves an invoice with its line items and payments
func (s *InvoiceService) GetInvoice(ctx context.Context, invoiceID uuid.UUID) (*responses.InvoiceResponse, error) {
	invoice, err := s.queries.GetInvoiceByID(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, business.NewNotFoundError("invoice", invoiceID.String())
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	lineItems, err := s.queries.GetInvoiceLineItems(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get line items: %w", err)
	}

	payments, err := s.queries.GetInvoicePayments(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payments: %w", err)
	}

	return toInvoiceResponse(business.InvoiceRecord{
		Invoice:   invoice,
		LineItems: lineItems,
		Payments:  payments,
	}), nil
}

// ListInvoices returns invoice headers matching the filter, newest first
func (s *InvoiceService) ListInvoices(ctx context.Context, p params.ListInvoicesParams) ([]responses.InvoiceSummaryResponse, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 50
	}

	arg := db.ListInvoicesParams{Limit: limit, Offset: p.Offset}
	if p.CustomerID != nil {
		arg.CustomerID = pgtype.UUID{Bytes: *p.CustomerID, Valid: true}
	}
	if p.Status != nil {
		arg.Status = pgtype.Text{String: string(*p.Status), Valid: true}
	}

	invoices, err := s.queries.ListInvoices(ctx, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	summaries := make([]responses.InvoiceSummaryResponse, len(invoices))
	for i, invoice := range invoices {
		summaries[i] = toInvoiceSummary(invoice)
	}
	return summaries, nil
}

// DeleteInvoice removes an invoice and its dependents. This is the explicit
// external delete of the store contract, not a lifecycle transition.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, invoiceID uuid.UUID) error {
	if err := s.queries.DeleteInvoice(ctx, invoiceID); err != nil {
		return business.NewPersistenceError("delete invoice", err)
	}
	return nil
}

func (s *InvoiceService) validateDraft(ctx context.Context, draft business.InvoiceDraft) error {
	if draft.Kind != db.InvoiceKindGST && draft.Kind != db.InvoiceKindNonGST {
		return business.NewValidationError("kind", fmt.Sprintf("unknown invoice kind %q", draft.Kind))
	}
	if draft.Status != db.InvoiceStatusDraft && draft.Status != db.InvoiceStatusPending {
		return business.NewValidationError("status", "new invoices start as draft or pending")
	}
	if draft.CustomerID == uuid.Nil {
		return business.NewValidationError("customer_id", "customer is required")
	}
	if draft.VehicleID == uuid.Nil {
		return business.NewValidationError("vehicle_id", "vehicle is required")
	}
	if len(draft.LineItems) == 0 {
		return business.NewValidationError("line_items", "invoice needs at least one line item")
	}

	type lineKey struct {
		catalogID uuid.UUID
		kind      db.LineItemKind
	}
	seen := make(map[lineKey]struct{}, len(draft.LineItems))
	for _, item := range draft.LineItems {
		if item.Kind != db.LineItemKindService && item.Kind != db.LineItemKindPart {
			return business.NewValidationError("line_items", fmt.Sprintf("unknown line item kind %q", item.Kind))
		}
		if item.CatalogID == uuid.Nil {
			return business.NewValidationError("line_items", "line item catalog reference is required")
		}
		if item.Quantity < 1 {
			return business.NewValidationError("line_items",
				fmt.Sprintf("quantity for %s must be at least 1", item.Name))
		}
		if item.UnitPrice.IsNegative() {
			return business.NewValidationError("line_items",
				fmt.Sprintf("unit price for %s cannot be negative", item.Name))
		}
		if item.Discount.IsNegative() {
			return business.NewValidationError("line_items",
				fmt.Sprintf("discount for %s cannot be negative", item.Name))
		}
		maxDiscount := item.UnitPrice.Mul(decimal.NewFromInt32(item.Quantity))
		if item.Discount.GreaterThan(maxDiscount) {
			return business.NewValidationError("line_items",
				fmt.Sprintf("discount %s for %s exceeds the line amount %s", item.Discount, item.Name, maxDiscount))
		}

		key := lineKey{catalogID: item.CatalogID, kind: item.Kind}
		if _, dup := seen[key]; dup {
			return business.NewValidationError("line_items",
				fmt.Sprintf("%s %s appears more than once", item.Kind, item.CatalogID))
		}
		seen[key] = struct{}{}
	}
	if draft.DiscountPercent.IsNegative() || draft.DiscountPercent.GreaterThan(hundred) {
		return business.NewValidationError("discount_percent", "discount percent must be between 0 and 100")
	}
	if draft.TaxRatePercent.IsNegative() {
		return business.NewValidationError("tax_rate_percent", "tax rate percent cannot be negative")
	}
	if draft.LaborCharges.IsNegative() {
		return business.NewValidationError("labor_charges", "labor charges cannot be negative")
	}
	for _, charge := range draft.ExtraCharges {
		if charge.Name == "" {
			return business.NewValidationError("extra_charges", "extra charge name is required")
		}
		if charge.Amount.IsNegative() {
			return business.NewValidationError("extra_charges", "extra charge amount cannot be negative")
		}
	}

	if _, err := s.queries.GetCustomer(ctx, draft.CustomerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return business.NewNotFoundError("customer", draft.CustomerID.String())
		}
		return fmt.Errorf("failed to get customer: %w", err)
	}

	vehicle, err := s.queries.GetVehicle(ctx, draft.VehicleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return business.NewNotFoundError("vehicle", draft.VehicleID.String())
		}
		return fmt.Errorf("failed to get vehicle: %w", err)
	}
	if vehicle.CustomerID != draft.CustomerID {
		return business.NewValidationError("vehicle_id", "vehicle does not belong to the customer")
	}

	return nil
}

// recomputeLineTotals returns a copy of lines with every LineTotal derived
// from its own unit price, quantity and discount.
func recomputeLineTotals(lines []business.DraftLineItem) []business.DraftLineItem {
	out := make([]business.DraftLineItem, len(lines))
	copy(out, lines)
	for i := range out {
		out[i].LineTotal = lineTotal(out[i].UnitPrice, out[i].Quantity, out[i].Discount)
	}
	return out
}

// Response conversion

func toInvoiceResponse(record business.InvoiceRecord) *responses.InvoiceResponse {
	invoice := record.Invoice

	lineItems := make([]responses.InvoiceLineItemResponse, len(record.LineItems))
	for i, item := range record.LineItems {
		lineItems[i] = responses.InvoiceLineItemResponse{
			ID:        item.ID,
			Kind:      string(item.Kind),
			CatalogID: item.CatalogID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Discount:  item.Discount,
			TaxCode:   item.TaxCode,
			LineTotal: item.LineTotal,
		}
	}

	var extraCharges []responses.ExtraChargeResponse
	if len(invoice.ExtraCharges) > 0 {
		var charges []business.ExtraCharge
		if err := json.Unmarshal(invoice.ExtraCharges, &charges); err == nil {
			for _, charge := range charges {
				extraCharges = append(extraCharges, responses.ExtraChargeResponse{
					Name:   charge.Name,
					Amount: charge.Amount,
				})
			}
		}
	}

	payments := make([]responses.PaymentResponse, len(record.Payments))
	for i, payment := range record.Payments {
		payments[i] = toPaymentResponse(payment)
	}

	resp := &responses.InvoiceResponse{
		ID:              invoice.ID,
		Number:          invoice.InvoiceNumber,
		Kind:            string(invoice.Kind),
		CustomerID:      invoice.CustomerID,
		VehicleID:       invoice.VehicleID,
		LineItems:       lineItems,
		ExtraCharges:    extraCharges,
		LaborCharges:    invoice.LaborCharges,
		Odometer:        invoice.Odometer,
		DiscountPercent: invoice.DiscountPercent,
		TaxRatePercent:  invoice.TaxRatePercent,
		Subtotal:        invoice.Subtotal,
		TaxAmount:       invoice.TaxAmount,
		Total:           invoice.Total,
		Status:          string(invoice.Status),
		CreatedAt:       invoice.CreatedAt,
		DueDate:         invoice.DueDate,
		Notes:           invoice.Notes.String,
		Payments:        payments,
	}

	if invoice.Kind == db.InvoiceKindGST {
		cgst, sgst := splitGSTHalves(invoice.TaxAmount)
		resp.CGST = &cgst
		resp.SGST = &sgst
	}

	if invoice.PaidAt.Valid {
		paidAt := invoice.PaidAt.Time
		resp.PaidAt = &paidAt
	}

	return resp
}

func toPaymentResponse(payment db.Payment) responses.PaymentResponse {
	resp := responses.PaymentResponse{
		ID:     payment.ID,
		Amount: payment.Amount,
		Method: string(payment.Method),
		Status: string(payment.Status),
	}
	if payment.TransactionID.Valid {
		txID := payment.TransactionID.String
		resp.TransactionID = &txID
	}
	if payment.PaidAt.Valid {
		paidAt := payment.PaidAt.Time
		resp.PaidAt = &paidAt
	}
	if payment.RefundAmount.Valid {
		refund := payment.RefundAmount.Decimal
		resp.RefundAmount = &refund
	}
	if payment.RefundReason.Valid {
		reason := payment.RefundReason.String
		resp.RefundReason = &reason
	}
	return resp
}

func toInvoiceSummary(invoice db.Invoice) responses.InvoiceSummaryResponse {
	return responses.InvoiceSummaryResponse{
		ID:         invoice.ID,
		Number:     invoice.InvoiceNumber,
		Kind:       string(invoice.Kind),
		CustomerID: invoice.CustomerID,
		VehicleID:  invoice.VehicleID,
		Total:      invoice.Total,
		Status:     string(invoice.Status),
		CreatedAt:  invoice.CreatedAt,
		DueDate:    invoice.DueDate,
	}
}
