package business

import (
	"time"

	"github.com/garagedesk/garagedesk-api/internal/db"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DraftLineItem is one editable invoice line. Name, UnitPrice and TaxCode
// are snapshotted from the catalog when the line is added and never
// re-resolved afterwards.
type DraftLineItem struct {
	ID        uuid.UUID       `json:"id"`
	Kind      db.LineItemKind `json:"kind"`
	CatalogID uuid.UUID       `json:"catalog_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int32           `json:"quantity"`
	Discount  decimal.Decimal `json:"discount"`
	TaxCode   string          `json:"tax_code"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// ExtraCharge is a free-form additive charge on an invoice
type ExtraCharge struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// InvoiceDraft is the serializable editing-session state for one invoice.
// All engine computation is a pure transformation of this value; the
// presentation layer owns the session, not the math.
type InvoiceDraft struct {
	Kind            db.InvoiceKind   `json:"kind"`
	CustomerID      uuid.UUID        `json:"customer_id"`
	VehicleID       uuid.UUID        `json:"vehicle_id"`
	LineItems       []DraftLineItem  `json:"line_items"`
	ExtraCharges    []ExtraCharge    `json:"extra_charges"`
	LaborCharges    decimal.Decimal  `json:"labor_charges"`
	Odometer        int32            `json:"odometer"`
	DiscountPercent decimal.Decimal  `json:"discount_percent"`
	TaxRatePercent  decimal.Decimal  `json:"tax_rate_percent"`
	Notes           string           `json:"notes"`
	Status          db.InvoiceStatus `json:"status"`
}

// InvoiceTotals is the derived money snapshot for a draft. CGST/SGST are a
// display split of TaxAmount for GST invoices; the stored tax amount is
// never split.
type InvoiceTotals struct {
	Subtotal       decimal.Decimal  `json:"subtotal"`
	DiscountAmount decimal.Decimal  `json:"discount_amount"`
	TaxableAmount  decimal.Decimal  `json:"taxable_amount"`
	TaxAmount      decimal.Decimal  `json:"tax_amount"`
	Total          decimal.Decimal  `json:"total"`
	CGST           *decimal.Decimal `json:"cgst,omitempty"`
	SGST           *decimal.Decimal `json:"sgst,omitempty"`
}

// PaymentCoverage is the settled payment position of an invoice: completed
// payment amounts minus recorded refunds.
type PaymentCoverage struct {
	Paid     decimal.Decimal
	Refunded decimal.Decimal
}

// Net returns paid minus refunded coverage.
func (c PaymentCoverage) Net() decimal.Decimal {
	return c.Paid.Sub(c.Refunded)
}

// CoverageFromPayments folds a payment set into its coverage position.
// Pending payments contribute nothing; refunded payments contribute their
// amount minus the refunded portion.
func CoverageFromPayments(payments []db.Payment) PaymentCoverage {
	var c PaymentCoverage
	for _, p := range payments {
		switch p.Status {
		case db.PaymentStatusCompleted:
			c.Paid = c.Paid.Add(p.Amount)
		case db.PaymentStatusRefunded:
			c.Paid = c.Paid.Add(p.Amount)
			if p.RefundAmount.Valid {
				c.Refunded = c.Refunded.Add(p.RefundAmount.Decimal)
			}
		}
	}
	return c
}

// PaymentOutcome reports what a payment or refund did to the invoice it was
// recorded against.
type PaymentOutcome struct {
	Payment       db.Payment
	Invoice       db.Invoice
	StatusChanged bool
}

// InvoiceRecord is an invoice header with its line items and payments, the
// shape persisted to and read back from the ledger store.
type InvoiceRecord struct {
	Invoice   db.Invoice
	LineItems []db.InvoiceLineItem
	Payments  []db.Payment
}

// IsPastDue reports whether the invoice's due date has passed at the given
// instant.
func (r InvoiceRecord) IsPastDue(now time.Time) bool {
	return now.After(r.Invoice.DueDate)
}
