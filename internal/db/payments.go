package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const paymentColumns = `id, invoice_id, amount, method, status, transaction_id, paid_at, refund_amount, refund_reason, created_at`

const createPayment = `
INSERT INTO payments (invoice_id, amount, method, status, transaction_id, paid_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + paymentColumns

type CreatePaymentParams struct {
	InvoiceID     uuid.UUID
	Amount        decimal.Decimal
	Method        PaymentMethod
	Status        PaymentStatus
	TransactionID pgtype.Text
	PaidAt        pgtype.Timestamptz
}

func (q *Queries) CreatePayment(ctx context.Context, arg CreatePaymentParams) (Payment, error) {
	row := q.db.QueryRow(ctx, createPayment,
		arg.InvoiceID,
		arg.Amount,
		arg.Method,
		arg.Status,
		arg.TransactionID,
		arg.PaidAt,
	)
	return scanPayment(row)
}

const getPayment = `
SELECT ` + paymentColumns + `
FROM payments
WHERE id = $1
`

func (q *Queries) GetPayment(ctx context.Context, id uuid.UUID) (Payment, error) {
	return scanPayment(q.db.QueryRow(ctx, getPayment, id))
}

const getInvoicePayments = `
SELECT ` + paymentColumns + `
FROM payments
WHERE invoice_id = $1
ORDER BY created_at
`

func (q *Queries) GetInvoicePayments(ctx context.Context, invoiceID uuid.UUID) ([]Payment, error) {
	rows, err := q.db.Query(ctx, getInvoicePayments, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Payment
	for rows.Next() {
		i, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const updatePaymentStatus = `
UPDATE payments
SET status = $2
WHERE id = $1
RETURNING ` + paymentColumns

type UpdatePaymentStatusParams struct {
	ID     uuid.UUID
	Status PaymentStatus
}

func (q *Queries) UpdatePaymentStatus(ctx context.Context, arg UpdatePaymentStatusParams) (Payment, error) {
	return scanPayment(q.db.QueryRow(ctx, updatePaymentStatus, arg.ID, arg.Status))
}

const markPaymentRefunded = `
UPDATE payments
SET status = 'refunded', refund_amount = $2, refund_reason = $3
WHERE id = $1
RETURNING ` + paymentColumns

type MarkPaymentRefundedParams struct {
	ID           uuid.UUID
	RefundAmount decimal.Decimal
	RefundReason pgtype.Text
}

func (q *Queries) MarkPaymentRefunded(ctx context.Context, arg MarkPaymentRefundedParams) (Payment, error) {
	return scanPayment(q.db.QueryRow(ctx, markPaymentRefunded, arg.ID, arg.RefundAmount, arg.RefundReason))
}

func scanPayment(row interface{ Scan(dest ...interface{}) error }) (Payment, error) {
	var i Payment
	err := row.Scan(&i.ID, &i.InvoiceID, &i.Amount, &i.Method, &i.Status,
		&i.TransactionID, &i.PaidAt, &i.RefundAmount, &i.RefundReason, &i.CreatedAt)
	return i, err
}
