package params

import (
	"time"

	"github.com/garagedesk/garagedesk-api/internal/db"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddLineParams identifies the catalog entry to add to a draft
type AddLineParams struct {
	CatalogID uuid.UUID
	Kind      db.LineItemKind
}

// RecordPaymentParams contains parameters for recording a payment against an
// invoice
type RecordPaymentParams struct {
	InvoiceID     uuid.UUID
	Amount        decimal.Decimal
	Method        db.PaymentMethod
	Status        db.PaymentStatus
	TransactionID *string
	PaidAt        time.Time
}

// RecordRefundParams contains parameters for refunding a recorded payment
type RecordRefundParams struct {
	InvoiceID uuid.UUID
	PaymentID uuid.UUID
	Amount    decimal.Decimal
	Reason    string
	Now       time.Time
}

// ListInvoicesParams filters the invoice list
type ListInvoicesParams struct {
	CustomerID *uuid.UUID
	Status     *db.InvoiceStatus
	Limit      int32
	Offset     int32
}
