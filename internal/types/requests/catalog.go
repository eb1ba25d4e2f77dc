package requests

import "github.com/shopspring/decimal"

// CreateCatalogServiceRequest contains the request body for adding a labor
// service to the catalog
type CreateCatalogServiceRequest struct {
	Name             string          `json:"name" binding:"required"`
	Category         string          `json:"category" binding:"required"`
	UnitPrice        decimal.Decimal `json:"unitPrice" binding:"required"`
	LaborCharge      decimal.Decimal `json:"laborCharge"`
	EstimatedMinutes int32           `json:"estimatedMinutes"`
	TaxCode          string          `json:"taxCode"`
	IsActive         *bool           `json:"isActive"`
}

// UpdateCatalogServiceRequest mirrors the create shape for full updates
type UpdateCatalogServiceRequest = CreateCatalogServiceRequest

// CreateCatalogPartRequest contains the request body for adding a spare part
// to the catalog
type CreateCatalogPartRequest struct {
	Name          string          `json:"name" binding:"required"`
	Category      string          `json:"category" binding:"required"`
	UnitPrice     decimal.Decimal `json:"unitPrice" binding:"required"`
	StockQuantity int32           `json:"stockQuantity"`
	MinStockLevel int32           `json:"minStockLevel"`
	Supplier      string          `json:"supplier"`
	PartNumber    string          `json:"partNumber"`
	TaxCode       string          `json:"taxCode"`
	IsActive      *bool           `json:"isActive"`
}

// UpdateCatalogPartRequest mirrors the create shape for full updates
type UpdateCatalogPartRequest = CreateCatalogPartRequest
