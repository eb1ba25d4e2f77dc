package db

import (
	"context"

	"github.com/google/uuid"
)

// Querier is the Catalog & Ledger Store contract consumed by the services
// layer. Queries implements it over pgx; tests substitute the generated
// MockQuerier.
type Querier interface {
	// Customers
	CreateCustomer(ctx context.Context, arg CreateCustomerParams) (Customer, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (Customer, error)
	ListCustomers(ctx context.Context, arg ListCustomersParams) ([]Customer, error)
	UpdateCustomer(ctx context.Context, arg UpdateCustomerParams) (Customer, error)
	DeleteCustomer(ctx context.Context, id uuid.UUID) error

	// Vehicles
	CreateVehicle(ctx context.Context, arg CreateVehicleParams) (Vehicle, error)
	GetVehicle(ctx context.Context, id uuid.UUID) (Vehicle, error)
	ListVehiclesByCustomer(ctx context.Context, customerID uuid.UUID) ([]Vehicle, error)
	UpdateVehicle(ctx context.Context, arg UpdateVehicleParams) (Vehicle, error)
	DeleteVehicle(ctx context.Context, id uuid.UUID) error

	// Catalog
	CreateCatalogService(ctx context.Context, arg CreateCatalogServiceParams) (CatalogService, error)
	GetCatalogService(ctx context.Context, id uuid.UUID) (CatalogService, error)
	ListCatalogServices(ctx context.Context, activeOnly bool) ([]CatalogService, error)
	UpdateCatalogService(ctx context.Context, arg UpdateCatalogServiceParams) (CatalogService, error)
	CreateCatalogPart(ctx context.Context, arg CreateCatalogPartParams) (CatalogPart, error)
	GetCatalogPart(ctx context.Context, id uuid.UUID) (CatalogPart, error)
	ListCatalogParts(ctx context.Context, activeOnly bool) ([]CatalogPart, error)
	UpdateCatalogPart(ctx context.Context, arg UpdateCatalogPartParams) (CatalogPart, error)
	AdjustPartStock(ctx context.Context, arg AdjustPartStockParams) (CatalogPart, error)

	// Invoices
	CreateInvoice(ctx context.Context, arg CreateInvoiceParams) (Invoice, error)
	CreateInvoiceLineItem(ctx context.Context, arg CreateInvoiceLineItemParams) (InvoiceLineItem, error)
	GetInvoiceByID(ctx context.Context, id uuid.UUID) (Invoice, error)
	GetInvoiceByNumber(ctx context.Context, invoiceNumber string) (Invoice, error)
	GetInvoiceLineItems(ctx context.Context, invoiceID uuid.UUID) ([]InvoiceLineItem, error)
	ListInvoices(ctx context.Context, arg ListInvoicesParams) ([]Invoice, error)
	ListOverdueCandidates(ctx context.Context, arg ListOverdueCandidatesParams) ([]Invoice, error)
	UpdateInvoiceStatus(ctx context.Context, arg UpdateInvoiceStatusParams) (Invoice, error)
	DeleteInvoice(ctx context.Context, id uuid.UUID) error

	// Payments
	CreatePayment(ctx context.Context, arg CreatePaymentParams) (Payment, error)
	GetPayment(ctx context.Context, id uuid.UUID) (Payment, error)
	GetInvoicePayments(ctx context.Context, invoiceID uuid.UUID) ([]Payment, error)
	UpdatePaymentStatus(ctx context.Context, arg UpdatePaymentStatusParams) (Payment, error)
	MarkPaymentRefunded(ctx context.Context, arg MarkPaymentRefundedParams) (Payment, error)

	// Invoice numbering
	NextInvoiceSequence(ctx context.Context, arg NextInvoiceSequenceParams) (int64, error)
}

var _ Querier = (*Queries)(nil)
