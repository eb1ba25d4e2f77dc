package responses

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogServiceResponse is the wire shape of a labor service catalog entry
type CatalogServiceResponse struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	UnitPrice        decimal.Decimal `json:"unitPrice"`
	LaborCharge      decimal.Decimal `json:"laborCharge"`
	EstimatedMinutes int32           `json:"estimatedMinutes"`
	TaxCode          string          `json:"taxCode,omitempty"`
	IsActive         bool            `json:"isActive"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// CatalogPartResponse is the wire shape of a spare-part catalog entry
type CatalogPartResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	StockQuantity int32           `json:"stockQuantity"`
	MinStockLevel int32           `json:"minStockLevel"`
	Supplier      string          `json:"supplier,omitempty"`
	PartNumber    string          `json:"partNumber,omitempty"`
	TaxCode       string          `json:"taxCode,omitempty"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
}
