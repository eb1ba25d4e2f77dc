package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const createCatalogService = `
INSERT INTO catalog_services (name, category, unit_price, labor_charge, estimated_minutes, tax_code, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, name, category, unit_price, labor_charge, estimated_minutes, tax_code, is_active, created_at
`

type CreateCatalogServiceParams struct {
	Name             string
	Category         string
	UnitPrice        decimal.Decimal
	LaborCharge      decimal.Decimal
	EstimatedMinutes int32
	TaxCode          pgtype.Text
	IsActive         bool
}

func (q *Queries) CreateCatalogService(ctx context.Context, arg CreateCatalogServiceParams) (CatalogService, error) {
	row := q.db.QueryRow(ctx, createCatalogService,
		arg.Name,
		arg.Category,
		arg.UnitPrice,
		arg.LaborCharge,
		arg.EstimatedMinutes,
		arg.TaxCode,
		arg.IsActive,
	)
	var i CatalogService
	err := row.Scan(&i.ID, &i.Name, &i.Category, &i.UnitPrice, &i.LaborCharge,
		&i.EstimatedMinutes, &i.TaxCode, &i.IsActive, &i.CreatedAt)
	return i, err
}

const getCatalogService = `
SELECT id, name, category, unit_price, labor_charge, estimated_minutes, tax_code, is_active, created_at
FROM catalog_services
WHERE id = $1
`

func (q *Queries) GetCatalogService(ctx context.Context, id uuid.UUID) (CatalogService, error) {
	row := q.db.QueryRow(ctx, getCatalogService, id)
	var i CatalogService
	err := row.Scan(&i.ID, &i.Name, &i.Category, &i.UnitPrice, &i.LaborCharge,
		&i.EstimatedMinutes, &i.TaxCode, &i.IsActive, &i.CreatedAt)
	return i, err
}

const listCatalogServices = `
SELECT id, name, category, unit_price, labor_charge, estimated_minutes, tax_code, is_active, created_at
FROM catalog_services
WHERE (NOT $1::bool OR is_active)
ORDER BY category, name
`

func (q *Queries) ListCatalogServices(ctx context.Context, activeOnly bool) ([]CatalogService, error) {
	rows, err := q.db.Query(ctx, listCatalogServices, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CatalogService
	for rows.Next() {
		var i CatalogService
		if err := rows.Scan(&i.ID, &i.Name, &i.Category, &i.UnitPrice, &i.LaborCharge,
			&i.EstimatedMinutes, &i.TaxCode, &i.IsActive, &i.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const updateCatalogService = `
UPDATE catalog_services
SET name = $2, category = $3, unit_price = $4, labor_charge = $5,
    estimated_minutes = $6, tax_code = $7, is_active = $8
WHERE id = $1
RETURNING id, name, category, unit_price, labor_charge, estimated_minutes, tax_code, is_active, created_at
`

type UpdateCatalogServiceParams struct {
	ID               uuid.UUID
	Name             string
	Category         string
	UnitPrice        decimal.Decimal
	LaborCharge      decimal.Decimal
	EstimatedMinutes int32
	TaxCode          pgtype.Text
	IsActive         bool
}

func (q *Queries) UpdateCatalogService(ctx context.Context, arg UpdateCatalogServiceParams) (CatalogService, error) {
	row := q.db.QueryRow(ctx, updateCatalogService,
		arg.ID,
		arg.Name,
		arg.Category,
		arg.UnitPrice,
		arg.LaborCharge,
		arg.EstimatedMinutes,
		arg.TaxCode,
		arg.IsActive,
	)
	var i CatalogService
	err := row.Scan(&i.ID, &i.Name, &i.Category, &i.UnitPrice, &i.LaborCharge,
		&i.EstimatedMinutes, &i.TaxCode, &i.IsActive, &i.CreatedAt)
	return i, err
}

const createCatalogPart = `
INSERT INTO catalog_parts (name, category, unit_price, stock_quantity, min_stock_level, supplier, part_number, tax_code, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, name, category, unit_price, stock_quantity, min_stock_level, supplier, part_number, tax_code, is_active, created_at
`

type CreateCatalogPartParams struct {
	Name          string
	Category      string
	UnitPrice     decimal.Decimal
	StockQuantity int32
	MinStockLevel int32
	Supplier      pgtype.Text
	PartNumber    pgtype.Text
	TaxCode       pgtype.Text
	IsActive      bool
}

func (q *Queries) CreateCatalogPart(ctx context.Context, arg CreateCatalogPartParams) (CatalogPart, error) {
	row := q.db.QueryRow(ctx, createCatalogPart,
		arg.Name,
		arg.Category,
		arg.UnitPrice,
		arg.StockQuantity,
		arg.MinStockLevel,
		arg.Supplier,
		arg.PartNumber,
		arg.TaxCode,
		arg.IsActive,
	)
	var i CatalogPart
	err := row.Scan(&i.ID, &i.Name, &i.Category, &i.UnitPrice, &i.StockQuantity,
		&i.MinStockLevel, &i.Supplier, &i.PartNumber, &i.TaxCode, &i.IsActive, &i.CreatedAt)
	return i, err
}

const getCatalogPart = `
SELECT id, name, category, unit_price, stock_quantity, min_stock_level, supplier, part_number, tax_code, is_active, created_at
FROM catalog_parts
WHERE id = $1
`

func (q *Queries) GetCatalogPart(ctx context.Context, id uuid.UUID) (CatalogPart, error) {
	row := q.db.QueryRow(ctx, getCatalogPart, id)
	var i CatalogPart
	err := row.Scan(&i.ID, &i.Name, &i.Category, &i.UnitPrice, &i.StockQuantity,
		&i.MinStockLevel, &i.Supplier, &i.PartNumber, &i.TaxCode, &i.IsActive, &i.CreatedAt)
	return i, err
}

const listCatalogParts = `
SELECT id, name, category, unit_price, stock_quantity, min_stock_level, supplier, part_number, tax_code, is_active, created_at
FROM catalog_parts
WHERE (NOT $1::bool OR is_active)
ORDER BY category, name
`

func (q *Queries) ListCatalogParts(ctx context.Context, activeOnly bool) ([]CatalogPart, error) {
	rows, err := q.db.Query(ctx, listCatalogParts, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CatalogPart
	for rows.Next() {
		var i CatalogPart
		if err := rows.Scan(&i.ID, &i.Name, &i.Category, &i.UnitPrice, &i.StockQuantity,
			&i.MinStockLevel, &i.Supplier, &i.PartNumber, &i.TaxCode, &i.IsActive, &i.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const updateCatalogPart = `
UPDATE catalog_parts
SET name = $2, category = $3, unit_price = $4, stock_quantity = $5,
    min_stock_level = $6, supplier = $7, part_number = $8, tax_code = $9, is_active = $10
WHERE id = $1
RETURNING id, name, category, unit_price, stock_quantity, min_stock_level, supplier, part_number, tax_code, is_active, created_at
`

type UpdateCatalogPartParams struct {
	ID            uuid.UUID
	Name          string
	Category      string
	UnitPrice     decimal.Decimal
	StockQuantity int32
	MinStockLevel int32
	Supplier      pgtype.Text
	PartNumber    pgtype.Text
	TaxCode       pgtype.Text
	IsActive      bool
}

func (q *Queries) UpdateCatalogPart(ctx context.Context, arg UpdateCatalogPartParams) (CatalogPart, error) {
	row := q.db.QueryRow(ctx, updateCatalogPart,
		arg.ID,
		arg.Name,
		arg.Category,
		arg.UnitPrice,
		arg.StockQuantity,
		arg.MinStockLevel,
		arg.Supplier,
		arg.PartNumber,
		arg.TaxCode,
		arg.IsActive,
	)
	var i CatalogPart
	err := row.Scan(&i.ID, &i.Name, &i.Category, &i.UnitPrice, &i.StockQuantity,
		&i.MinStockLevel, &i.Supplier, &i.PartNumber, &i.TaxCode, &i.IsActive, &i.CreatedAt)
	return i, err
}

const adjustPartStock = `
UPDATE catalog_parts
SET stock_quantity = stock_quantity + $2
WHERE id = $1
RETURNING id, name, category, unit_price, stock_quantity, min_stock_level, supplier, part_number, tax_code, is_active, created_at
`

type AdjustPartStockParams struct {
	ID    uuid.UUID
	Delta int32
}

// AdjustPartStock applies a signed delta to a part's stock count. Invoice
// creation passes negative deltas for invoiced parts.
func (q *Queries) AdjustPartStock(ctx context.Context, arg AdjustPartStockParams) (CatalogPart, error) {
	row := q.db.QueryRow(ctx, adjustPartStock, arg.ID, arg.Delta)
	var i CatalogPart
	err := row.Scan(&i.ID, &i.Name, &i.Category, &i.UnitPrice, &i.StockQuantity,
		&i.MinStockLevel, &i.Supplier, &i.PartNumber, &i.TaxCode, &i.IsActive, &i.CreatedAt)
	return i, err
}
