package handlers

import (
	"net/http"
	"time"

	"github.com/garagedesk/garagedesk-api/internal/db"
	"github.com/garagedesk/garagedesk-api/internal/services"
	"github.com/garagedesk/garagedesk-api/internal/types/business"
	"github.com/garagedesk/garagedesk-api/internal/types/params"
	"github.com/garagedesk/garagedesk-api/internal/types/requests"
	"github.com/garagedesk/garagedesk-api/internal/types/responses"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InvoiceHandler handles invoice drafting, creation and retrieval
type InvoiceHandler struct {
	common *CommonServices
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(common *CommonServices) *InvoiceHandler {
	return &InvoiceHandler{common: common}
}

// AddDraftLine adds a catalog entry to the submitted draft and returns the
// updated draft with recomputed totals.
func (h *InvoiceHandler) AddDraftLine(c *gin.Context) {
	var req requests.AddLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	draft, err := decodeDraft(req.Draft)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}
	catalogID, err := uuid.Parse(req.CatalogID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid catalog ID format", err)
		return
	}

	next, err := h.common.DraftCalculator.AddLine(c.Request.Context(), draft, params.AddLineParams{
		CatalogID: catalogID,
		Kind:      db.LineItemKind(req.Kind),
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendDraft(c, next)
}

// SetDraftQuantity changes a draft line's quantity
func (h *InvoiceHandler) SetDraftQuantity(c *gin.Context) {
	var req requests.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	draft, err := decodeDraft(req.Draft)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}
	lineID, err := uuid.Parse(req.LineID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid line ID format", err)
		return
	}

	next, err := h.common.DraftCalculator.SetQuantity(draft, lineID, req.Quantity)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendDraft(c, next)
}

// SetDraftDiscount changes a draft line's discount
func (h *InvoiceHandler) SetDraftDiscount(c *gin.Context) {
	var req requests.SetDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	draft, err := decodeDraft(req.Draft)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}
	lineID, err := uuid.Parse(req.LineID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid line ID format", err)
		return
	}

	next, err := h.common.DraftCalculator.SetDiscount(draft, lineID, req.Discount)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendDraft(c, next)
}

// RemoveDraftLine drops a line from the draft
func (h *InvoiceHandler) RemoveDraftLine(c *gin.Context) {
	var req requests.RemoveLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	draft, err := decodeDraft(req.Draft)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}
	lineID, err := uuid.Parse(req.LineID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid line ID format", err)
		return
	}

	sendDraft(c, h.common.DraftCalculator.RemoveLine(draft, lineID))
}

// ComputeDraftTotals recomputes totals for a draft without persisting it
func (h *InvoiceHandler) ComputeDraftTotals(c *gin.Context) {
	var req requests.InvoiceDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	draft, err := decodeDraft(req)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	sendSuccess(c, http.StatusOK, responses.TotalsResponse{
		Totals: services.CalculateTotals(draft),
	})
}

// CreateInvoice persists a finished draft as an invoice
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req requests.InvoiceDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	draft, err := decodeDraft(req)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	invoice, err := h.common.InvoiceService.CreateInvoice(c.Request.Context(), draft, time.Now().UTC())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusCreated, invoice)
}

// GetInvoice returns an invoice with its line items and payments
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoiceID, err := uuid.Parse(c.Param("invoice_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid invoice ID format", err)
		return
	}

	invoice, err := h.common.InvoiceService.GetInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, invoice)
}

// ListInvoices returns invoice headers filtered by customer and status
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	p := params.ListInvoicesParams{
		Limit:  parseInt32Query(c, "limit", 50),
		Offset: parseInt32Query(c, "offset", 0),
	}

	if raw := c.Query("customerId"); raw != "" {
		customerID, err := uuid.Parse(raw)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid customer ID format", err)
			return
		}
		p.CustomerID = &customerID
	}
	if raw := c.Query("status"); raw != "" {
		status := db.InvoiceStatus(raw)
		switch status {
		case db.InvoiceStatusDraft, db.InvoiceStatusPending, db.InvoiceStatusPaid,
			db.InvoiceStatusOverdue, db.InvoiceStatusCancelled:
			p.Status = &status
		default:
			sendError(c, http.StatusBadRequest, "Invalid invoice status", nil)
			return
		}
	}

	invoices, err := h.common.InvoiceService.ListInvoices(c.Request.Context(), p)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendList(c, invoices)
}

// SubmitInvoice moves a draft invoice to pending
func (h *InvoiceHandler) SubmitInvoice(c *gin.Context) {
	invoiceID, err := uuid.Parse(c.Param("invoice_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid invoice ID format", err)
		return
	}

	if _, err := h.common.PaymentService.SubmitInvoice(c.Request.Context(), invoiceID); err != nil {
		handleServiceError(c, err)
		return
	}

	invoice, err := h.common.InvoiceService.GetInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, invoice)
}

// CancelInvoice cancels a draft or pending invoice
func (h *InvoiceHandler) CancelInvoice(c *gin.Context) {
	invoiceID, err := uuid.Parse(c.Param("invoice_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid invoice ID format", err)
		return
	}

	if _, err := h.common.PaymentService.CancelInvoice(c.Request.Context(), invoiceID); err != nil {
		handleServiceError(c, err)
		return
	}

	invoice, err := h.common.InvoiceService.GetInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, invoice)
}

// DeleteInvoice removes an invoice entirely
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	invoiceID, err := uuid.Parse(c.Param("invoice_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid invoice ID format", err)
		return
	}

	if err := h.common.InvoiceService.DeleteInvoice(c.Request.Context(), invoiceID); err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccessMessage(c, http.StatusOK, "Invoice deleted")
}

// SweepOverdue runs one overdue sweep immediately
func (h *InvoiceHandler) SweepOverdue(c *gin.Context) {
	result, err := h.common.OverdueProcessor.Sweep(c.Request.Context(), time.Now().UTC())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, result)
}

func sendDraft(c *gin.Context, draft business.InvoiceDraft) {
	sendSuccess(c, http.StatusOK, responses.DraftResponse{
		Draft:  draft,
		Totals: services.CalculateTotals(draft),
	})
}

// decodeDraft converts the wire draft into the engine's draft value,
// validating UUIDs and enum fields along the way.
func decodeDraft(req requests.InvoiceDraftRequest) (business.InvoiceDraft, error) {
	draft := business.InvoiceDraft{
		LaborCharges:    req.LaborCharges,
		Odometer:        req.Odometer,
		DiscountPercent: req.DiscountPercent,
		TaxRatePercent:  req.TaxRatePercent,
		Notes:           req.Notes,
	}

	switch db.InvoiceKind(req.Kind) {
	case db.InvoiceKindGST, db.InvoiceKindNonGST:
		draft.Kind = db.InvoiceKind(req.Kind)
	default:
		return draft, business.NewValidationError("kind", "kind must be gst or non-gst")
	}

	draft.Status = db.InvoiceStatusDraft
	if req.Status != "" {
		draft.Status = db.InvoiceStatus(req.Status)
	}

	if req.CustomerID != "" {
		customerID, err := uuid.Parse(req.CustomerID)
		if err != nil {
			return draft, business.NewValidationError("customer_id", "invalid customer ID format")
		}
		draft.CustomerID = customerID
	}
	if req.VehicleID != "" {
		vehicleID, err := uuid.Parse(req.VehicleID)
		if err != nil {
			return draft, business.NewValidationError("vehicle_id", "invalid vehicle ID format")
		}
		draft.VehicleID = vehicleID
	}

	for _, item := range req.LineItems {
		lineID := uuid.New()
		if item.ID != "" {
			parsed, err := uuid.Parse(item.ID)
			if err != nil {
				return draft, business.NewValidationError("line_items", "invalid line ID format")
			}
			lineID = parsed
		}
		catalogID, err := uuid.Parse(item.CatalogID)
		if err != nil {
			return draft, business.NewValidationError("line_items", "invalid catalog ID format")
		}

		draft.LineItems = append(draft.LineItems, business.DraftLineItem{
			ID:        lineID,
			Kind:      db.LineItemKind(item.Kind),
			CatalogID: catalogID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Discount:  item.Discount,
			TaxCode:   item.TaxCode,
			LineTotal: item.LineTotal,
		})
	}

	for _, charge := range req.ExtraCharges {
		draft.ExtraCharges = append(draft.ExtraCharges, business.ExtraCharge{
			Name:   charge.Name,
			Amount: charge.Amount,
		})
	}

	return draft, nil
}
