package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const invoiceColumns = `id, invoice_number, kind, customer_id, vehicle_id, labor_charges, extra_charges,
odometer, discount_percent, tax_rate_percent, subtotal, tax_amount, total,
status, created_at, due_date, paid_at, notes`

const createInvoice = `
INSERT INTO invoices (invoice_number, kind, customer_id, vehicle_id, labor_charges, extra_charges,
                      odometer, discount_percent, tax_rate_percent, subtotal, tax_amount, total,
                      status, due_date, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
RETURNING ` + invoiceColumns

type CreateInvoiceParams struct {
	InvoiceNumber   string
	Kind            InvoiceKind
	CustomerID      uuid.UUID
	VehicleID       uuid.UUID
	LaborCharges    decimal.Decimal
	ExtraCharges    []byte
	Odometer        int32
	DiscountPercent decimal.Decimal
	TaxRatePercent  decimal.Decimal
	Subtotal        decimal.Decimal
	TaxAmount       decimal.Decimal
	Total           decimal.Decimal
	Status          InvoiceStatus
	DueDate         time.Time
	Notes           pgtype.Text
}

func (q *Queries) CreateInvoice(ctx context.Context, arg CreateInvoiceParams) (Invoice, error) {
	row := q.db.QueryRow(ctx, createInvoice,
		arg.InvoiceNumber,
		arg.Kind,
		arg.CustomerID,
		arg.VehicleID,
		arg.LaborCharges,
		arg.ExtraCharges,
		arg.Odometer,
		arg.DiscountPercent,
		arg.TaxRatePercent,
		arg.Subtotal,
		arg.TaxAmount,
		arg.Total,
		arg.Status,
		arg.DueDate,
		arg.Notes,
	)
	return scanInvoice(row)
}

const createInvoiceLineItem = `
INSERT INTO invoice_line_items (invoice_id, kind, catalog_id, name, unit_price, quantity, discount, tax_code, line_total)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, invoice_id, kind, catalog_id, name, unit_price, quantity, discount, tax_code, line_total
`

type CreateInvoiceLineItemParams struct {
	InvoiceID uuid.UUID
	Kind      LineItemKind
	CatalogID uuid.UUID
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int32
	Discount  decimal.Decimal
	TaxCode   string
	LineTotal decimal.Decimal
}

func (q *Queries) CreateInvoiceLineItem(ctx context.Context, arg CreateInvoiceLineItemParams) (InvoiceLineItem, error) {
	row := q.db.QueryRow(ctx, createInvoiceLineItem,
		arg.InvoiceID,
		arg.Kind,
		arg.CatalogID,
		arg.Name,
		arg.UnitPrice,
		arg.Quantity,
		arg.Discount,
		arg.TaxCode,
		arg.LineTotal,
	)
	var i InvoiceLineItem
	err := row.Scan(&i.ID, &i.InvoiceID, &i.Kind, &i.CatalogID, &i.Name,
		&i.UnitPrice, &i.Quantity, &i.Discount, &i.TaxCode, &i.LineTotal)
	return i, err
}

const getInvoiceByID = `
SELECT ` + invoiceColumns + `
FROM invoices
WHERE id = $1
`

func (q *Queries) GetInvoiceByID(ctx context.Context, id uuid.UUID) (Invoice, error) {
	return scanInvoice(q.db.QueryRow(ctx, getInvoiceByID, id))
}

const getInvoiceByNumber = `
SELECT ` + invoiceColumns + `
FROM invoices
WHERE invoice_number = $1
`

func (q *Queries) GetInvoiceByNumber(ctx context.Context, invoiceNumber string) (Invoice, error) {
	return scanInvoice(q.db.QueryRow(ctx, getInvoiceByNumber, invoiceNumber))
}

const getInvoiceLineItems = `
SELECT id, invoice_id, kind, catalog_id, name, unit_price, quantity, discount, tax_code, line_total
FROM invoice_line_items
WHERE invoice_id = $1
ORDER BY id
`

func (q *Queries) GetInvoiceLineItems(ctx context.Context, invoiceID uuid.UUID) ([]InvoiceLineItem, error) {
	rows, err := q.db.Query(ctx, getInvoiceLineItems, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []InvoiceLineItem
	for rows.Next() {
		var i InvoiceLineItem
		if err := rows.Scan(&i.ID, &i.InvoiceID, &i.Kind, &i.CatalogID, &i.Name,
			&i.UnitPrice, &i.Quantity, &i.Discount, &i.TaxCode, &i.LineTotal); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const listInvoices = `
SELECT ` + invoiceColumns + `
FROM invoices
WHERE ($1::uuid IS NULL OR customer_id = $1)
  AND ($2::text IS NULL OR status = $2)
ORDER BY created_at DESC
LIMIT $3 OFFSET $4
`

type ListInvoicesParams struct {
	CustomerID pgtype.UUID
	Status     pgtype.Text
	Limit      int32
	Offset     int32
}

func (q *Queries) ListInvoices(ctx context.Context, arg ListInvoicesParams) ([]Invoice, error) {
	rows, err := q.db.Query(ctx, listInvoices, arg.CustomerID, arg.Status, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInvoices(rows)
}

const listOverdueCandidates = `
SELECT ` + invoiceColumns + `
FROM invoices
WHERE status = 'pending' AND due_date < $1
ORDER BY due_date
LIMIT $2
`

type ListOverdueCandidatesParams struct {
	AsOf  time.Time
	Limit int32
}

func (q *Queries) ListOverdueCandidates(ctx context.Context, arg ListOverdueCandidatesParams) ([]Invoice, error) {
	rows, err := q.db.Query(ctx, listOverdueCandidates, arg.AsOf, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInvoices(rows)
}

const updateInvoiceStatus = `
UPDATE invoices
SET status = $2, paid_at = $3
WHERE id = $1
RETURNING ` + invoiceColumns

type UpdateInvoiceStatusParams struct {
	ID     uuid.UUID
	Status InvoiceStatus
	PaidAt pgtype.Timestamptz
}

func (q *Queries) UpdateInvoiceStatus(ctx context.Context, arg UpdateInvoiceStatusParams) (Invoice, error) {
	return scanInvoice(q.db.QueryRow(ctx, updateInvoiceStatus, arg.ID, arg.Status, arg.PaidAt))
}

const deleteInvoice = `
DELETE FROM invoices
WHERE id = $1
`

func (q *Queries) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.Exec(ctx, deleteInvoice, id)
	return err
}

type invoiceRow interface {
	Scan(dest ...interface{}) error
}

func scanInvoice(row invoiceRow) (Invoice, error) {
	var i Invoice
	err := row.Scan(&i.ID, &i.InvoiceNumber, &i.Kind, &i.CustomerID, &i.VehicleID,
		&i.LaborCharges, &i.ExtraCharges, &i.Odometer, &i.DiscountPercent, &i.TaxRatePercent,
		&i.Subtotal, &i.TaxAmount, &i.Total, &i.Status, &i.CreatedAt, &i.DueDate, &i.PaidAt, &i.Notes)
	return i, err
}

func scanInvoices(rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}) ([]Invoice, error) {
	var items []Invoice
	for rows.Next() {
		i, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
