package handlers

import (
	"net/http"

	"github.com/garagedesk/garagedesk-api/internal/db"
	"github.com/garagedesk/garagedesk-api/internal/types/requests"
	"github.com/garagedesk/garagedesk-api/internal/types/responses"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogHandler handles the service and spare-part catalog
type CatalogHandler struct {
	common *CommonServices
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(common *CommonServices) *CatalogHandler {
	return &CatalogHandler{common: common}
}

// CreateService adds a labor service to the catalog
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req requests.CreateCatalogServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	service, err := h.common.GetDB().CreateCatalogService(c.Request.Context(), db.CreateCatalogServiceParams{
		Name:             req.Name,
		Category:         req.Category,
		UnitPrice:        req.UnitPrice,
		LaborCharge:      req.LaborCharge,
		EstimatedMinutes: req.EstimatedMinutes,
		TaxCode:          optionalDBText(req.TaxCode),
		IsActive:         active,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to create catalog service", err)
		return
	}

	sendSuccess(c, http.StatusCreated, toCatalogServiceResponse(service))
}

// ListServices returns catalog services, active only by default
func (h *CatalogHandler) ListServices(c *gin.Context) {
	activeOnly := c.Query("includeInactive") != "true"

	items, err := h.common.GetDB().ListCatalogServices(c.Request.Context(), activeOnly)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list catalog services", err)
		return
	}

	out := make([]responses.CatalogServiceResponse, len(items))
	for i, item := range items {
		out[i] = toCatalogServiceResponse(item)
	}
	sendList(c, out)
}

// UpdateService replaces a catalog service's details
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("service_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid service ID format", err)
		return
	}

	var req requests.UpdateCatalogServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	service, err := h.common.GetDB().UpdateCatalogService(c.Request.Context(), db.UpdateCatalogServiceParams{
		ID:               serviceID,
		Name:             req.Name,
		Category:         req.Category,
		UnitPrice:        req.UnitPrice,
		LaborCharge:      req.LaborCharge,
		EstimatedMinutes: req.EstimatedMinutes,
		TaxCode:          optionalDBText(req.TaxCode),
		IsActive:         active,
	})
	if err != nil {
		handleDBError(c, err, "Catalog service not found")
		return
	}

	sendSuccess(c, http.StatusOK, toCatalogServiceResponse(service))
}

// CreatePart adds a spare part to the catalog
func (h *CatalogHandler) CreatePart(c *gin.Context) {
	var req requests.CreateCatalogPartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	part, err := h.common.GetDB().CreateCatalogPart(c.Request.Context(), db.CreateCatalogPartParams{
		Name:          req.Name,
		Category:      req.Category,
		UnitPrice:     req.UnitPrice,
		StockQuantity: req.StockQuantity,
		MinStockLevel: req.MinStockLevel,
		Supplier:      optionalDBText(req.Supplier),
		PartNumber:    optionalDBText(req.PartNumber),
		TaxCode:       optionalDBText(req.TaxCode),
		IsActive:      active,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to create catalog part", err)
		return
	}

	sendSuccess(c, http.StatusCreated, toCatalogPartResponse(part))
}

// ListParts returns catalog parts, active only by default
func (h *CatalogHandler) ListParts(c *gin.Context) {
	activeOnly := c.Query("includeInactive") != "true"

	items, err := h.common.GetDB().ListCatalogParts(c.Request.Context(), activeOnly)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list catalog parts", err)
		return
	}

	out := make([]responses.CatalogPartResponse, len(items))
	for i, item := range items {
		out[i] = toCatalogPartResponse(item)
	}
	sendList(c, out)
}

// UpdatePart replaces a catalog part's details
func (h *CatalogHandler) UpdatePart(c *gin.Context) {
	partID, err := uuid.Parse(c.Param("part_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid part ID format", err)
		return
	}

	var req requests.UpdateCatalogPartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	part, err := h.common.GetDB().UpdateCatalogPart(c.Request.Context(), db.UpdateCatalogPartParams{
		ID:            partID,
		Name:          req.Name,
		Category:      req.Category,
		UnitPrice:     req.UnitPrice,
		StockQuantity: req.StockQuantity,
		MinStockLevel: req.MinStockLevel,
		Supplier:      optionalDBText(req.Supplier),
		PartNumber:    optionalDBText(req.PartNumber),
		TaxCode:       optionalDBText(req.TaxCode),
		IsActive:      active,
	})
	if err != nil {
		handleDBError(c, err, "Catalog part not found")
		return
	}

	sendSuccess(c, http.StatusOK, toCatalogPartResponse(part))
}

func toCatalogServiceResponse(service db.CatalogService) responses.CatalogServiceResponse {
	return responses.CatalogServiceResponse{
		ID:               service.ID,
		Name:             service.Name,
		Category:         service.Category,
		UnitPrice:        service.UnitPrice,
		LaborCharge:      service.LaborCharge,
		EstimatedMinutes: service.EstimatedMinutes,
		TaxCode:          service.TaxCode.String,
		IsActive:         service.IsActive,
		CreatedAt:        service.CreatedAt,
	}
}

func toCatalogPartResponse(part db.CatalogPart) responses.CatalogPartResponse {
	return responses.CatalogPartResponse{
		ID:            part.ID,
		Name:          part.Name,
		Category:      part.Category,
		UnitPrice:     part.UnitPrice,
		StockQuantity: part.StockQuantity,
		MinStockLevel: part.MinStockLevel,
		Supplier:      part.Supplier.String,
		PartNumber:    part.PartNumber.String,
		TaxCode:       part.TaxCode.String,
		IsActive:      part.IsActive,
		CreatedAt:     part.CreatedAt,
	}
}
