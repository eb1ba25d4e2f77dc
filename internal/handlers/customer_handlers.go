package handlers

import (
	"net/http"
	"strconv"

	"github.com/garagedesk/garagedesk-api/internal/db"
	"github.com/garagedesk/garagedesk-api/internal/types/requests"
	"github.com/garagedesk/garagedesk-api/internal/types/responses"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// CustomerHandler handles customer-related operations
type CustomerHandler struct {
	common *CommonServices
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(common *CommonServices) *CustomerHandler {
	return &CustomerHandler{common: common}
}

// CreateCustomer registers a new customer
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req requests.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	customer, err := h.common.GetDB().CreateCustomer(c.Request.Context(), db.CreateCustomerParams{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   optionalDBText(req.Email),
		Address: optionalDBText(req.Address),
		TaxID:   optionalDBText(req.TaxID),
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to create customer", err)
		return
	}

	sendSuccess(c, http.StatusCreated, toCustomerResponse(customer))
}

// GetCustomer returns a customer by ID
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("customer_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid customer ID format", err)
		return
	}

	customer, err := h.common.GetDB().GetCustomer(c.Request.Context(), customerID)
	if err != nil {
		handleDBError(c, err, "Customer not found")
		return
	}

	sendSuccess(c, http.StatusOK, toCustomerResponse(customer))
}

// ListCustomers returns customers matching an optional search term
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	limit := parseInt32Query(c, "limit", 50)
	offset := parseInt32Query(c, "offset", 0)

	customers, err := h.common.GetDB().ListCustomers(c.Request.Context(), db.ListCustomersParams{
		Search: c.Query("search"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list customers", err)
		return
	}

	out := make([]responses.CustomerResponse, len(customers))
	for i, customer := range customers {
		out[i] = toCustomerResponse(customer)
	}
	sendList(c, out)
}

// UpdateCustomer replaces a customer's details
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("customer_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid customer ID format", err)
		return
	}

	var req requests.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	customer, err := h.common.GetDB().UpdateCustomer(c.Request.Context(), db.UpdateCustomerParams{
		ID:      customerID,
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   optionalDBText(req.Email),
		Address: optionalDBText(req.Address),
		TaxID:   optionalDBText(req.TaxID),
	})
	if err != nil {
		handleDBError(c, err, "Customer not found")
		return
	}

	sendSuccess(c, http.StatusOK, toCustomerResponse(customer))
}

// DeleteCustomer removes a customer
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("customer_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid customer ID format", err)
		return
	}

	if err := h.common.GetDB().DeleteCustomer(c.Request.Context(), customerID); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to delete customer", err)
		return
	}

	sendSuccessMessage(c, http.StatusOK, "Customer deleted")
}

func toCustomerResponse(customer db.Customer) responses.CustomerResponse {
	return responses.CustomerResponse{
		ID:        customer.ID,
		Name:      customer.Name,
		Phone:     customer.Phone,
		Email:     customer.Email.String,
		Address:   customer.Address.String,
		TaxID:     customer.TaxID.String,
		CreatedAt: customer.CreatedAt,
	}
}

func optionalDBText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

func parseInt32Query(c *gin.Context, name string, fallback int32) int32 {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || v < 0 {
		return fallback
	}
	return int32(v)
}
