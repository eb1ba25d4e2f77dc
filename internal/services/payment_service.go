package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/garagedesk/garagedesk-api/internal/db"
	"github.com/garagedesk/garagedesk-api/internal/types/business"
	"github.com/garagedesk/garagedesk-api/internal/types/params"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PaymentService reconciles payments and refunds against invoices and drives
// the invoice status machine. Every event re-derives coverage from the full
// payment set inside the same transaction that records the event, so status
// can never disagree with the ledger.
type PaymentService struct {
	queries db.Querier
	runTx   TxRunner
	logger  *zap.Logger
}

// NewPaymentService creates a new payment service
func NewPaymentService(queries db.Querier, runTx TxRunner, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		queries: queries,
		runTx:   runTx,
		logger:  logger,
	}
}

// RecordPayment records a payment against an invoice. If completed payments
// then cover the invoice total, the invoice flips to paid in the same
// transaction; a partial payment leaves the status alone.
func (s *PaymentService) RecordPayment(ctx context.Context, p params.RecordPaymentParams) (*business.PaymentOutcome, error) {
	if !p.Amount.IsPositive() {
		return nil, business.NewValidationError("amount", "payment amount must be positive")
	}
	switch p.Status {
	case db.PaymentStatusPending, db.PaymentStatusCompleted:
	default:
		return nil, business.NewValidationError("status", "new payments are recorded as pending or completed")
	}

	var outcome business.PaymentOutcome
	err := s.runTx(ctx, func(q db.Querier) error {
		invoice, err := getInvoiceForUpdate(ctx, q, p.InvoiceID)
		if err != nil {
			return err
		}

		if !CanRecordPayment(invoice.Status) {
			return business.NewInvalidTransitionError(string(invoice.Status), eventRecordPayment)
		}

		payment, err := q.CreatePayment(ctx, db.CreatePaymentParams{
			InvoiceID:     invoice.ID,
			Amount:        p.Amount,
			Method:        p.Method,
			Status:        p.Status,
			TransactionID: optionalText(p.TransactionID),
			PaidAt:        pgtype.Timestamptz{Time: p.PaidAt, Valid: !p.PaidAt.IsZero()},
		})
		if err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}

		payments, err := q.GetInvoicePayments(ctx, invoice.ID)
		if err != nil {
			return fmt.Errorf("failed to get invoice payments: %w", err)
		}
		coverage := business.CoverageFromPayments(payments).Net()

		next, changed := StatusAfterPayment(invoice.Status, coverage, invoice.Total)
		if changed {
			invoice, err = q.UpdateInvoiceStatus(ctx, db.UpdateInvoiceStatusParams{
				ID:     invoice.ID,
				Status: next,
				PaidAt: pgtype.Timestamptz{Time: p.PaidAt, Valid: true},
			})
			if err != nil {
				return fmt.Errorf("failed to update invoice status: %w", err)
			}
		}

		outcome = business.PaymentOutcome{
			Payment:       payment,
			Invoice:       invoice,
			StatusChanged: changed,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Payment recorded",
		zap.String("invoice_id", outcome.Invoice.ID.String()),
		zap.String("payment_id", outcome.Payment.ID.String()),
		zap.String("amount", outcome.Payment.Amount.String()),
		zap.String("invoice_status", string(outcome.Invoice.Status)))

	return &outcome, nil
}

// SubmitInvoice moves a draft invoice to pending so payments can be taken
// against it.
func (s *PaymentService) SubmitInvoice(ctx context.Context, invoiceID uuid.UUID) (db.Invoice, error) {
	var invoice db.Invoice
	err := s.runTx(ctx, func(q db.Querier) error {
		current, err := getInvoiceForUpdate(ctx, q, invoiceID)
		if err != nil {
			return err
		}
		if !CanTransition(current.Status, db.InvoiceStatusPending) {
			return business.NewInvalidTransitionError(string(current.Status), eventSubmit)
		}
		invoice, err = q.UpdateInvoiceStatus(ctx, db.UpdateInvoiceStatusParams{
			ID:     invoiceID,
			Status: db.InvoiceStatusPending,
		})
		if err != nil {
			return fmt.Errorf("failed to update invoice status: %w", err)
		}
		return nil
	})
	return invoice, err
}

// CancelInvoice cancels a draft or pending invoice. Paid and overdue
// invoices refuse the event.
func (s *PaymentService) CancelInvoice(ctx context.Context, invoiceID uuid.UUID) (db.Invoice, error) {
	var invoice db.Invoice
	err := s.runTx(ctx, func(q db.Querier) error {
		current, err := getInvoiceForUpdate(ctx, q, invoiceID)
		if err != nil {
			return err
		}
		next, err := StatusAfterCancel(current.Status)
		if err != nil {
			return err
		}
		invoice, err = q.UpdateInvoiceStatus(ctx, db.UpdateInvoiceStatusParams{
			ID:     invoiceID,
			Status: next,
			PaidAt: current.PaidAt,
		})
		if err != nil {
			return fmt.Errorf("failed to update invoice status: %w", err)
		}
		return nil
	})
	if err != nil {
		return invoice, err
	}

	s.logger.Info("Invoice cancelled",
		zap.String("invoice_id", invoiceID.String()))
	return invoice, nil
}

// MarkOverdueIfDue flips a single invoice to overdue when the sweep
// predicate holds at the given instant. It reports whether the status
// changed; re-running it on an already-overdue invoice is a no-op.
func (s *PaymentService) MarkOverdueIfDue(ctx context.Context, invoiceID uuid.UUID, now time.Time) (bool, error) {
	var changed bool
	err := s.runTx(ctx, func(q db.Querier) error {
		invoice, err := getInvoiceForUpdate(ctx, q, invoiceID)
		if err != nil {
			return err
		}

		payments, err := q.GetInvoicePayments(ctx, invoice.ID)
		if err != nil {
			return fmt.Errorf("failed to get invoice payments: %w", err)
		}
		coverage := business.CoverageFromPayments(payments).Net()

		if !ShouldMarkOverdue(invoice.Status, invoice.DueDate, now, coverage, invoice.Total) {
			return nil
		}

		if _, err := q.UpdateInvoiceStatus(ctx, db.UpdateInvoiceStatusParams{
			ID:     invoice.ID,
			Status: db.InvoiceStatusOverdue,
		}); err != nil {
			return fmt.Errorf("failed to update invoice status: %w", err)
		}
		changed = true
		return nil
	})
	return changed, err
}

// RecordRefund marks a completed payment (fully or partially) refunded. If
// the invoice was paid and its coverage drops below the total, it re-opens
// as pending, or overdue when already past due, and its paid timestamp is
// cleared.
func (s *PaymentService) RecordRefund(ctx context.Context, p params.RecordRefundParams) (*business.PaymentOutcome, error) {
	if !p.Amount.IsPositive() {
		return nil, business.NewValidationError("amount", "refund amount must be positive")
	}

	var outcome business.PaymentOutcome
	err := s.runTx(ctx, func(q db.Querier) error {
		invoice, err := getInvoiceForUpdate(ctx, q, p.InvoiceID)
		if err != nil {
			return err
		}

		payment, err := q.GetPayment(ctx, p.PaymentID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return business.NewNotFoundError("payment", p.PaymentID.String())
			}
			return fmt.Errorf("failed to get payment: %w", err)
		}
		if payment.InvoiceID != invoice.ID {
			return business.NewValidationError("payment_id", "payment does not belong to the invoice")
		}
		if payment.Status != db.PaymentStatusCompleted {
			return business.NewInvalidTransitionError(string(payment.Status), eventRecordRefund)
		}
		if p.Amount.GreaterThan(payment.Amount) {
			return business.NewValidationError("amount",
				fmt.Sprintf("refund %s exceeds the payment amount %s", p.Amount, payment.Amount))
		}

		payment, err = q.MarkPaymentRefunded(ctx, db.MarkPaymentRefundedParams{
			ID:           payment.ID,
			RefundAmount: p.Amount,
			RefundReason: pgtype.Text{String: p.Reason, Valid: p.Reason != ""},
		})
		if err != nil {
			return fmt.Errorf("failed to mark payment refunded: %w", err)
		}

		payments, err := q.GetInvoicePayments(ctx, invoice.ID)
		if err != nil {
			return fmt.Errorf("failed to get invoice payments: %w", err)
		}
		coverage := business.CoverageFromPayments(payments).Net()

		next, changed := StatusAfterRefund(invoice.Status, coverage, invoice.Total, p.Now.After(invoice.DueDate))
		if changed {
			invoice, err = q.UpdateInvoiceStatus(ctx, db.UpdateInvoiceStatusParams{
				ID:     invoice.ID,
				Status: next,
				PaidAt: pgtype.Timestamptz{},
			})
			if err != nil {
				return fmt.Errorf("failed to update invoice status: %w", err)
			}
		}

		outcome = business.PaymentOutcome{
			Payment:       payment,
			Invoice:       invoice,
			StatusChanged: changed,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Refund recorded",
		zap.String("invoice_id", outcome.Invoice.ID.String()),
		zap.String("payment_id", outcome.Payment.ID.String()),
		zap.String("refund_amount", p.Amount.String()),
		zap.String("invoice_status", string(outcome.Invoice.Status)))

	return &outcome, nil
}

// GetInvoiceCoverage returns the invoice's current net payment coverage and
// outstanding balance.
func (s *PaymentService) GetInvoiceCoverage(ctx context.Context, invoiceID uuid.UUID) (decimal.Decimal, decimal.Decimal, error) {
	invoice, err := s.queries.GetInvoiceByID(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, decimal.Zero, business.NewNotFoundError("invoice", invoiceID.String())
		}
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to get invoice: %w", err)
	}
	payments, err := s.queries.GetInvoicePayments(ctx, invoiceID)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to get invoice payments: %w", err)
	}
	coverage := business.CoverageFromPayments(payments).Net()
	return coverage, invoice.Total.Sub(coverage), nil
}

func getInvoiceForUpdate(ctx context.Context, q db.Querier, invoiceID uuid.UUID) (db.Invoice, error) {
	invoice, err := q.GetInvoiceByID(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return db.Invoice{}, business.NewNotFoundError("invoice", invoiceID.String())
		}
		return db.Invoice{}, fmt.Errorf("failed to get invoice: %w", err)
	}
	return invoice, nil
}

func optionalText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
