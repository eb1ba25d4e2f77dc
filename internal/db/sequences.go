package db

import (
	"context"
	"time"
)

const nextInvoiceSequence = `
INSERT INTO invoice_sequences (kind, seq_date, last_value)
VALUES ($1, $2, 1)
ON CONFLICT (kind, seq_date)
DO UPDATE SET last_value = invoice_sequences.last_value + 1
RETURNING last_value
`

type NextInvoiceSequenceParams struct {
	Kind    InvoiceKind
	SeqDate time.Time
}

// NextInvoiceSequence atomically increments and returns the per-day invoice
// counter for the given kind. The upsert serializes concurrent callers on the
// (kind, seq_date) row, so two sessions can never observe the same value.
func (q *Queries) NextInvoiceSequence(ctx context.Context, arg NextInvoiceSequenceParams) (int64, error) {
	row := q.db.QueryRow(ctx, nextInvoiceSequence, arg.Kind, arg.SeqDate)
	var lastValue int64
	err := row.Scan(&lastValue)
	return lastValue, err
}
