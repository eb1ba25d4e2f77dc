package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// InvoiceKind distinguishes GST invoices (CGST/SGST split on display) from
// plain invoices.
type InvoiceKind string

const (
	InvoiceKindGST    InvoiceKind = "gst"
	InvoiceKindNonGST InvoiceKind = "non-gst"
)

// InvoiceStatus is the lifecycle state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// LineItemKind identifies which side of the catalog a line references
type LineItemKind string

const (
	LineItemKindService LineItemKind = "service"
	LineItemKindPart    LineItemKind = "part"
)

// PaymentMethod is the payment instrument used by the customer
type PaymentMethod string

const (
	PaymentMethodCash       PaymentMethod = "cash"
	PaymentMethodCard       PaymentMethod = "card"
	PaymentMethodUPI        PaymentMethod = "upi"
	PaymentMethodNetbanking PaymentMethod = "netbanking"
)

// PaymentStatus is the settlement state of a payment
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// VehicleType categorizes serviced vehicles
type VehicleType string

const (
	VehicleTypeCar     VehicleType = "car"
	VehicleTypeBike    VehicleType = "bike"
	VehicleTypeScooter VehicleType = "scooter"
)

// Customer is a billing customer record
type Customer struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	Email     pgtype.Text
	Address   pgtype.Text
	TaxID     pgtype.Text
	CreatedAt time.Time
}

// Vehicle is a customer-owned vehicle record
type Vehicle struct {
	ID                 uuid.UUID
	CustomerID         uuid.UUID
	Make               string
	Model              string
	Year               int32
	RegistrationNumber string
	VehicleType        VehicleType
	EngineNumber       pgtype.Text
	ChassisNumber      pgtype.Text
	Color              pgtype.Text
	CreatedAt          time.Time
}

// CatalogService is a priced labor/service catalog entry
type CatalogService struct {
	ID               uuid.UUID
	Name             string
	Category         string
	UnitPrice        decimal.Decimal
	LaborCharge      decimal.Decimal
	EstimatedMinutes int32
	TaxCode          pgtype.Text
	IsActive         bool
	CreatedAt        time.Time
}

// CatalogPart is a stocked spare-part catalog entry
type CatalogPart struct {
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
	CreatedAt     time.Time
}

// Invoice is the persisted invoice header. ExtraCharges is a JSONB array of
// {name, amount} objects; derived money columns are written only by the
// engine, never edited directly.
type Invoice struct {
	ID              uuid.UUID
	InvoiceNumber   string
	Kind            InvoiceKind
	CustomerID      uuid.UUID
	VehicleID       uuid.UUID
	LaborCharges    decimal.Decimal
	ExtraCharges    []byte
	Odometer        int32
	DiscountPercent decimal.Decimal
	TaxRatePercent  decimal.Decimal
	Subtotal        decimal.Decimal
	TaxAmount       decimal.Decimal
	Total           decimal.Decimal
	Status          InvoiceStatus
	CreatedAt       time.Time
	DueDate         time.Time
	PaidAt          pgtype.Timestamptz
	Notes           pgtype.Text
}

// InvoiceLineItem is one priced invoice line. Name, UnitPrice and TaxCode
// are snapshots taken at line-creation time; later catalog edits do not
// touch them.
type InvoiceLineItem struct {
	ID        uuid.UUID
	InvoiceID uuid.UUID
	Kind      LineItemKind
	CatalogID uuid.UUID
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int32
	Discount  decimal.Decimal
	TaxCode   string
	LineTotal decimal.Decimal
}

// Payment is a payment (or refund carrier) recorded against an invoice
type Payment struct {
	ID            uuid.UUID
	InvoiceID     uuid.UUID
	Amount        decimal.Decimal
	Method        PaymentMethod
	Status        PaymentStatus
	TransactionID pgtype.Text
	PaidAt        pgtype.Timestamptz
	RefundAmount  decimal.NullDecimal
	RefundReason  pgtype.Text
	CreatedAt     time.Time
}
