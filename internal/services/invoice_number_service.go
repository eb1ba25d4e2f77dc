package services

import (
	"context"
	"fmt"
	"time"

	"github.com/garagedesk/garagedesk-api/internal/constants"
	"github.com/garagedesk/garagedesk-api/internal/db"
	"github.com/garagedesk/garagedesk-api/internal/types/business"
	"go.uber.org/zap"
)

// InvoiceNumberService produces unique human-readable invoice numbers such
// as GST-20260828-0007. Uniqueness is anchored in the store: the per-day
// sequence is an atomic upsert, and the invoices table additionally carries
// a unique constraint on the number so a conflicting insert can never
// slip through.
type InvoiceNumberService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewInvoiceNumberService creates a new invoice number service
func NewInvoiceNumberService(queries db.Querier, logger *zap.Logger) *InvoiceNumberService {
	return &InvoiceNumberService{
		queries: queries,
		logger:  logger,
	}
}

// Generate returns the next invoice number for the given kind and day.
func (s *InvoiceNumberService) Generate(ctx context.Context, kind db.InvoiceKind, now time.Time) (string, error) {
	seq, err := s.queries.NextInvoiceSequence(ctx, db.NextInvoiceSequenceParams{
		Kind:    kind,
		SeqDate: truncateToDay(now),
	})
	if err != nil {
		return "", business.NewPersistenceError("next invoice sequence", err)
	}

	number := FormatInvoiceNumber(kind, now, seq)

	s.logger.Debug("Generated invoice number",
		zap.String("invoice_number", number),
		zap.String("kind", string(kind)),
		zap.Int64("sequence", seq))

	return number, nil
}

// FormatInvoiceNumber renders the fixed number pattern:
// <kind prefix>-<yyyymmdd>-<zero-padded sequence>.
func FormatInvoiceNumber(kind db.InvoiceKind, now time.Time, seq int64) string {
	prefix := constants.NonGSTInvoicePrefix
	if kind == db.InvoiceKindGST {
		prefix = constants.GSTInvoicePrefix
	}
	return fmt.Sprintf("%s-%s-%04d", prefix, now.Format("20060102"), seq)
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
