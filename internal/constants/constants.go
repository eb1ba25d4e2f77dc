package constants

// Deployment stages
const (
	ProdEnvironment  = "prod"
	DevEnvironment   = "dev"
	LocalEnvironment = "local"
)

// Tax classification defaults applied when a catalog entry carries no code.
// 998714 is the SAC for vehicle maintenance and repair services; 8708 is the
// HSN chapter heading for motor vehicle parts and accessories.
const (
	DefaultServiceSAC = "998714"
	DefaultPartHSN    = "8708"
)

// Invoice number prefixes by invoice kind
const (
	GSTInvoicePrefix    = "GST"
	NonGSTInvoicePrefix = "INV"
)

// DueDateDays is the fixed payment term applied to every invoice.
const DueDateDays = 30

// MaxNumberGenerationAttempts bounds regeneration retries when an invoice
// number collides with a concurrently created invoice.
const MaxNumberGenerationAttempts = 5
