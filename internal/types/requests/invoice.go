package requests

import "github.com/shopspring/decimal"

// DraftLineItemRequest is one line of an invoice draft as edited by the
// caller. Snapshot fields (name, unitPrice, taxCode) are supplied back
// verbatim from earlier draft responses; lineTotal is derived and the server
// recomputes it on create regardless of what was sent.
type DraftLineItemRequest struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind" binding:"required"`
	CatalogID string          `json:"catalogId" binding:"required"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int32           `json:"quantity"`
	Discount  decimal.Decimal `json:"discount"`
	TaxCode   string          `json:"taxCode"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// ExtraChargeRequest is a free-form additive charge on a draft
type ExtraChargeRequest struct {
	Name   string          `json:"name" binding:"required"`
	Amount decimal.Decimal `json:"amount"`
}

// InvoiceDraftRequest is the full draft state sent by the caller, used both
// to compute display totals and to create the invoice.
type InvoiceDraftRequest struct {
	Kind            string                 `json:"kind" binding:"required"`
	CustomerID      string                 `json:"customerId"`
	VehicleID       string                 `json:"vehicleId"`
	LineItems       []DraftLineItemRequest `json:"lineItems"`
	ExtraCharges    []ExtraChargeRequest   `json:"extraCharges"`
	LaborCharges    decimal.Decimal        `json:"laborCharges"`
	Odometer        int32                  `json:"odometer"`
	DiscountPercent decimal.Decimal        `json:"discountPercent"`
	TaxRatePercent  decimal.Decimal        `json:"taxRatePercent"`
	Notes           string                 `json:"notes"`
	Status          string                 `json:"status"`
}

// AddLineRequest adds a catalog entry to a draft
type AddLineRequest struct {
	Draft     InvoiceDraftRequest `json:"draft" binding:"required"`
	Kind      string              `json:"kind" binding:"required"`
	CatalogID string              `json:"catalogId" binding:"required"`
}

// SetQuantityRequest changes the quantity of a draft line
type SetQuantityRequest struct {
	Draft    InvoiceDraftRequest `json:"draft" binding:"required"`
	LineID   string              `json:"lineId" binding:"required"`
	Quantity int32               `json:"quantity" binding:"required"`
}

// SetDiscountRequest changes the absolute discount of a draft line
type SetDiscountRequest struct {
	Draft    InvoiceDraftRequest `json:"draft" binding:"required"`
	LineID   string              `json:"lineId" binding:"required"`
	Discount decimal.Decimal     `json:"discount"`
}

// RemoveLineRequest drops a line from a draft
type RemoveLineRequest struct {
	Draft  InvoiceDraftRequest `json:"draft" binding:"required"`
	LineID string              `json:"lineId" binding:"required"`
}

// RecordPaymentRequest contains the request body for recording a payment
type RecordPaymentRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Method        string          `json:"method" binding:"required"`
	Status        string          `json:"status"`
	TransactionID string          `json:"transactionId"`
	PaidAt        string          `json:"paidAt"`
}

// RecordRefundRequest contains the request body for refunding a payment
type RecordRefundRequest struct {
	PaymentID string          `json:"paymentId" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Reason    string          `json:"reason"`
}
