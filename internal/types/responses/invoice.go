package responses

import (
	"time"

	"github.com/garagedesk/garagedesk-api/internal/types/business"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceLineItemResponse is the wire shape of one persisted invoice line
type InvoiceLineItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	Kind      string          `json:"kind"`
	CatalogID uuid.UUID       `json:"catalogId"`
	Name      string          `json:"name"`
	Quantity  int32           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Discount  decimal.Decimal `json:"discount"`
	TaxCode   string          `json:"taxCode"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// ExtraChargeResponse is the wire shape of a free-form charge
type ExtraChargeResponse struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// PaymentResponse is the wire shape of a recorded payment
type PaymentResponse struct {
	ID            uuid.UUID        `json:"id"`
	Amount        decimal.Decimal  `json:"amount"`
	Method        string           `json:"method"`
	Status        string           `json:"status"`
	TransactionID *string          `json:"transactionId,omitempty"`
	PaidAt        *time.Time       `json:"paidAt,omitempty"`
	RefundAmount  *decimal.Decimal `json:"refundAmount,omitempty"`
	RefundReason  *string          `json:"refundReason,omitempty"`
}

// InvoiceResponse is the persisted invoice record shape returned to callers
type InvoiceResponse struct {
	ID              uuid.UUID                 `json:"id"`
	Number          string                    `json:"number"`
	Kind            string                    `json:"kind"`
	CustomerID      uuid.UUID                 `json:"customerId"`
	VehicleID       uuid.UUID                 `json:"vehicleId"`
	LineItems       []InvoiceLineItemResponse `json:"lineItems"`
	ExtraCharges    []ExtraChargeResponse     `json:"extraCharges"`
	LaborCharges    decimal.Decimal           `json:"laborCharges"`
	Odometer        int32                     `json:"odometer"`
	DiscountPercent decimal.Decimal           `json:"discountPercent"`
	TaxRatePercent  decimal.Decimal           `json:"taxRatePercent"`
	Subtotal        decimal.Decimal           `json:"subtotal"`
	TaxAmount       decimal.Decimal           `json:"taxAmount"`
	CGST            *decimal.Decimal          `json:"cgst,omitempty"`
	SGST            *decimal.Decimal          `json:"sgst,omitempty"`
	Total           decimal.Decimal           `json:"total"`
	Status          string                    `json:"status"`
	CreatedAt       time.Time                 `json:"createdAt"`
	DueDate         time.Time                 `json:"dueDate"`
	PaidAt          *time.Time                `json:"paidAt,omitempty"`
	Notes           string                    `json:"notes"`
	Payments        []PaymentResponse         `json:"payments"`
}

// InvoiceSummaryResponse is the header-only invoice shape used by list
// endpoints.
type InvoiceSummaryResponse struct {
	ID         uuid.UUID       `json:"id"`
	Number     string          `json:"number"`
	Kind       string          `json:"kind"`
	CustomerID uuid.UUID       `json:"customerId"`
	VehicleID  uuid.UUID       `json:"vehicleId"`
	Total      decimal.Decimal `json:"total"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
	DueDate    time.Time       `json:"dueDate"`
}

// SweepResult summarizes one overdue sweep run
type SweepResult struct {
	Checked       int `json:"checked"`
	MarkedOverdue int `json:"markedOverdue"`
	Failed        int `json:"failed"`
}

// TotalsResponse carries the derived totals for a draft
type TotalsResponse struct {
	Totals business.InvoiceTotals `json:"totals"`
}

// DraftResponse pairs an edited draft with its recomputed totals so the
// caller can render both after every edit.
type DraftResponse struct {
	Draft  business.InvoiceDraft  `json:"draft"`
	Totals business.InvoiceTotals `json:"totals"`
}
