package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/garagedesk/garagedesk-api/internal/db"
	"github.com/garagedesk/garagedesk-api/internal/mocks"
	"github.com/garagedesk/garagedesk-api/internal/services"
	"github.com/garagedesk/garagedesk-api/internal/types/business"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestTaxCodeService_Resolve(t *testing.T) {
	serviceID := uuid.New()
	partID := uuid.New()

	tests := []struct {
		name        string
		kind        db.LineItemKind
		catalogID   uuid.UUID
		setupMocks  func(m *mocks.MockQuerier)
		want        services.CatalogSnapshot
		wantErr     bool
		notFound    bool
		validation  bool
	}{
		{
			name:      "service with explicit SAC",
			kind:      db.LineItemKindService,
			catalogID: serviceID,
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().GetCatalogService(gomock.Any(), serviceID).Return(db.CatalogService{
					ID:        serviceID,
					Name:      "Full Service",
					UnitPrice: dec("2500"),
					TaxCode:   pgtype.Text{String: "998729", Valid: true},
					IsActive:  true,
				}, nil)
			},
			want: services.CatalogSnapshot{Name: "Full Service", UnitPrice: dec("2500"), TaxCode: "998729"},
		},
		{
			name:      "service without code falls back to default SAC",
			kind:      db.LineItemKindService,
			catalogID: serviceID,
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().GetCatalogService(gomock.Any(), serviceID).Return(db.CatalogService{
					ID:        serviceID,
					Name:      "Wheel Alignment",
					UnitPrice: dec("900"),
					IsActive:  true,
				}, nil)
			},
			want: services.CatalogSnapshot{Name: "Wheel Alignment", UnitPrice: dec("900"), TaxCode: "998714"},
		},
		{
			name:      "part without code falls back to default HSN",
			kind:      db.LineItemKindPart,
			catalogID: partID,
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().GetCatalogPart(gomock.Any(), partID).Return(db.CatalogPart{
					ID:        partID,
					Name:      "Brake Pad Set",
					UnitPrice: dec("400"),
					TaxCode:   pgtype.Text{String: "", Valid: true},
					IsActive:  true,
				}, nil)
			},
			want: services.CatalogSnapshot{Name: "Brake Pad Set", UnitPrice: dec("400"), TaxCode: "8708"},
		},
		{
			name:      "part with explicit HSN",
			kind:      db.LineItemKindPart,
			catalogID: partID,
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().GetCatalogPart(gomock.Any(), partID).Return(db.CatalogPart{
					ID:        partID,
					Name:      "Engine Oil 5W30",
					UnitPrice: dec("650"),
					TaxCode:   pgtype.Text{String: "2710", Valid: true},
					IsActive:  true,
				}, nil)
			},
			want: services.CatalogSnapshot{Name: "Engine Oil 5W30", UnitPrice: dec("650"), TaxCode: "2710"},
		},
		{
			name:      "missing service",
			kind:      db.LineItemKindService,
			catalogID: serviceID,
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().GetCatalogService(gomock.Any(), serviceID).Return(db.CatalogService{}, pgx.ErrNoRows)
			},
			wantErr:  true,
			notFound: true,
		},
		{
			name:      "inactive part is treated as missing",
			kind:      db.LineItemKindPart,
			catalogID: partID,
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().GetCatalogPart(gomock.Any(), partID).Return(db.CatalogPart{
					ID:       partID,
					Name:     "Discontinued Filter",
					IsActive: false,
				}, nil)
			},
			wantErr:  true,
			notFound: true,
		},
		{
			name:       "unknown kind",
			kind:       db.LineItemKind("labor"),
			catalogID:  serviceID,
			setupMocks: func(m *mocks.MockQuerier) {},
			wantErr:    true,
			validation: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQuerier := mocks.NewMockQuerier(ctrl)
			tt.setupMocks(mockQuerier)

			service := services.NewTaxCodeService(mockQuerier, zap.NewNop())
			got, err := service.Resolve(context.Background(), tt.kind, tt.catalogID)

			if tt.wantErr {
				require.Error(t, err)
				if tt.notFound {
					assert.True(t, errors.Is(err, business.ErrNotFound))
				}
				if tt.validation {
					var ve *business.ValidationError
					assert.True(t, errors.As(err, &ve))
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want.Name, got.Name)
			assert.Equal(t, tt.want.TaxCode, got.TaxCode)
			assert.True(t, tt.want.UnitPrice.Equal(got.UnitPrice))
		})
	}
}

func TestTaxCodeService_ResolvePropagatesStoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().GetCatalogService(gomock.Any(), gomock.Any()).
		Return(db.CatalogService{}, errors.New("connection reset"))

	service := services.NewTaxCodeService(mockQuerier, zap.NewNop())
	_, err := service.Resolve(context.Background(), db.LineItemKindService, uuid.New())

	require.Error(t, err)
	assert.False(t, errors.Is(err, business.ErrNotFound))
}
