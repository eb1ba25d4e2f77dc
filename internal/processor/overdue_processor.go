package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/garagedesk/garagedesk-api/internal/db"
	"github.com/garagedesk/garagedesk-api/internal/services"
	"github.com/garagedesk/garagedesk-api/internal/types/responses"
	"go.uber.org/zap"
)

// OverdueProcessor sweeps pending invoices past their due date and marks
// them overdue. One run is bounded by batchLimit candidates; the sweep is
// idempotent, so overlapping runs converge on the same state.
type OverdueProcessor struct {
	queries    db.Querier
	payments   *services.PaymentService
	batchLimit int32
	logger     *zap.Logger
}

// NewOverdueProcessor creates a new overdue processor
func NewOverdueProcessor(queries db.Querier, payments *services.PaymentService, batchLimit int32, logger *zap.Logger) *OverdueProcessor {
	if batchLimit <= 0 {
		batchLimit = 100
	}
	return &OverdueProcessor{
		queries:    queries,
		payments:   payments,
		batchLimit: batchLimit,
		logger:     logger,
	}
}

// Sweep marks every due pending invoice overdue as of the given instant.
// A failed candidate is counted and skipped; the sweep keeps going.
func (p *OverdueProcessor) Sweep(ctx context.Context, now time.Time) (*responses.SweepResult, error) {
	p.logger.Info("Starting overdue sweep", zap.Time("as_of", now))

	candidates, err := p.queries.ListOverdueCandidates(ctx, db.ListOverdueCandidatesParams{
		AsOf:  now,
		Limit: p.batchLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue candidates: %w", err)
	}

	result := &responses.SweepResult{Checked: len(candidates)}
	for _, invoice := range candidates {
		changed, err := p.payments.MarkOverdueIfDue(ctx, invoice.ID, now)
		if err != nil {
			p.logger.Error("Failed to mark invoice overdue",
				zap.String("invoice_id", invoice.ID.String()),
				zap.Error(err))
			result.Failed++
			continue
		}
		if changed {
			result.MarkedOverdue++
		}
	}

	p.logger.Info("Overdue sweep completed",
		zap.Int("checked", result.Checked),
		zap.Int("marked_overdue", result.MarkedOverdue),
		zap.Int("failed", result.Failed))

	return result, nil
}
