package handlers

import (
	"net/http"
	"time"

	"github.com/garagedesk/garagedesk-api/internal/db"
	"github.com/garagedesk/garagedesk-api/internal/types/params"
	"github.com/garagedesk/garagedesk-api/internal/types/requests"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentHandler handles payment and refund recording
type PaymentHandler struct {
	common *CommonServices
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(common *CommonServices) *PaymentHandler {
	return &PaymentHandler{common: common}
}

// RecordPayment records a payment against an invoice
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	invoiceID, err := uuid.Parse(c.Param("invoice_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid invoice ID format", err)
		return
	}

	var req requests.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	method, ok := parsePaymentMethod(req.Method)
	if !ok {
		sendError(c, http.StatusBadRequest, "Invalid payment method", nil)
		return
	}

	status := db.PaymentStatusCompleted
	if req.Status != "" {
		status = db.PaymentStatus(req.Status)
	}

	paidAt := time.Now().UTC()
	if req.PaidAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.PaidAt)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid paidAt timestamp, expected RFC3339", err)
			return
		}
		paidAt = parsed
	}

	p := params.RecordPaymentParams{
		InvoiceID: invoiceID,
		Amount:    req.Amount,
		Method:    method,
		Status:    status,
		PaidAt:    paidAt,
	}
	if req.TransactionID != "" {
		p.TransactionID = &req.TransactionID
	}

	outcome, err := h.common.PaymentService.RecordPayment(c.Request.Context(), p)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	invoice, err := h.common.InvoiceService.GetInvoice(c.Request.Context(), outcome.Invoice.ID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusCreated, invoice)
}

// RecordRefund refunds a completed payment on an invoice
func (h *PaymentHandler) RecordRefund(c *gin.Context) {
	invoiceID, err := uuid.Parse(c.Param("invoice_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid invoice ID format", err)
		return
	}

	var req requests.RecordRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	paymentID, err := uuid.Parse(req.PaymentID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid payment ID format", err)
		return
	}

	outcome, err := h.common.PaymentService.RecordRefund(c.Request.Context(), params.RecordRefundParams{
		InvoiceID: invoiceID,
		PaymentID: paymentID,
		Amount:    req.Amount,
		Reason:    req.Reason,
		Now:       time.Now().UTC(),
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	invoice, err := h.common.InvoiceService.GetInvoice(c.Request.Context(), outcome.Invoice.ID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, invoice)
}

// GetCoverage returns an invoice's net payment coverage and outstanding
// balance.
func (h *PaymentHandler) GetCoverage(c *gin.Context) {
	invoiceID, err := uuid.Parse(c.Param("invoice_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid invoice ID format", err)
		return
	}

	coverage, outstanding, err := h.common.PaymentService.GetInvoiceCoverage(c.Request.Context(), invoiceID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, struct {
		Coverage    decimal.Decimal `json:"coverage"`
		Outstanding decimal.Decimal `json:"outstanding"`
	}{Coverage: coverage, Outstanding: outstanding})
}

func parsePaymentMethod(s string) (db.PaymentMethod, bool) {
	switch db.PaymentMethod(s) {
	case db.PaymentMethodCash, db.PaymentMethodCard, db.PaymentMethodUPI, db.PaymentMethodNetbanking:
		return db.PaymentMethod(s), true
	default:
		return "", false
	}
}
