package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/garagedesk/garagedesk-api/internal/constants"
	"github.com/garagedesk/garagedesk-api/internal/db"
	"github.com/garagedesk/garagedesk-api/internal/types/business"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// TaxCodeService resolves the HSN/SAC classification code for a catalog
// reference, falling back to a kind-specific default when the catalog entry
// carries none.
type TaxCodeService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewTaxCodeService creates a new tax code service
func NewTaxCodeService(queries db.Querier, logger *zap.Logger) *TaxCodeService {
	return &TaxCodeService{
		queries: queries,
		logger:  logger,
	}
}

// CatalogSnapshot carries the catalog fields captured onto a line item at
// creation time. It is never re-resolved once the line exists.
type CatalogSnapshot struct {
	Name      string
	UnitPrice decimal.Decimal
	TaxCode   string
}

// Resolve looks up the referenced catalog entry and returns its snapshot.
// Missing and inactive entries both fail with a NotFoundError so a stale
// reference is rejected rather than silently priced at zero.
func (s *TaxCodeService) Resolve(ctx context.Context, kind db.LineItemKind, catalogID uuid.UUID) (CatalogSnapshot, error) {
	switch kind {
	case db.LineItemKindService:
		return s.resolveService(ctx, catalogID)
	case db.LineItemKindPart:
		return s.resolvePart(ctx, catalogID)
	default:
		return CatalogSnapshot{}, business.NewValidationError("kind", fmt.Sprintf("unknown line item kind %q", kind))
	}
}

func (s *TaxCodeService) resolveService(ctx context.Context, catalogID uuid.UUID) (CatalogSnapshot, error) {
	svc, err := s.queries.GetCatalogService(ctx, catalogID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return CatalogSnapshot{}, business.NewNotFoundError("catalog service", catalogID.String())
		}
		return CatalogSnapshot{}, fmt.Errorf("failed to get catalog service: %w", err)
	}
	if !svc.IsActive {
		return CatalogSnapshot{}, business.NewNotFoundError("catalog service", catalogID.String())
	}

	code := svc.TaxCode.String
	if !svc.TaxCode.Valid || code == "" {
		code = constants.DefaultServiceSAC
		s.logger.Debug("Catalog service has no tax code, using default SAC",
			zap.String("catalog_id", catalogID.String()),
			zap.String("tax_code", code))
	}

	return CatalogSnapshot{Name: svc.Name, UnitPrice: svc.UnitPrice, TaxCode: code}, nil
}

func (s *TaxCodeService) resolvePart(ctx context.Context, catalogID uuid.UUID) (CatalogSnapshot, error) {
	part, err := s.queries.GetCatalogPart(ctx, catalogID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return CatalogSnapshot{}, business.NewNotFoundError("catalog part", catalogID.String())
		}
		return CatalogSnapshot{}, fmt.Errorf("failed to get catalog part: %w", err)
	}
	if !part.IsActive {
		return CatalogSnapshot{}, business.NewNotFoundError("catalog part", catalogID.String())
	}

	code := part.TaxCode.String
	if !part.TaxCode.Valid || code == "" {
		code = constants.DefaultPartHSN
		s.logger.Debug("Catalog part has no tax code, using default HSN",
			zap.String("catalog_id", catalogID.String()),
			zap.String("tax_code", code))
	}

	return CatalogSnapshot{Name: part.Name, UnitPrice: part.UnitPrice, TaxCode: code}, nil
}
