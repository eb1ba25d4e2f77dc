package processor_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/garagedesk/garagedesk-api/internal/db"
	"github.com/garagedesk/garagedesk-api/internal/logger"
	"github.com/garagedesk/garagedesk-api/internal/mocks"
	"github.com/garagedesk/garagedesk-api/internal/processor"
	"github.com/garagedesk/garagedesk-api/internal/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func init() {
	logger.InitLogger("test")
}

func passthroughTxRunner(q db.Querier) services.TxRunner {
	return func(ctx context.Context, fn func(db.Querier) error) error {
		return fn(q)
	}
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestOverdueProcessor_Sweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	payments := services.NewPaymentService(mockQuerier, passthroughTxRunner(mockQuerier), zap.NewNop())
	proc := processor.NewOverdueProcessor(mockQuerier, payments, 100, zap.NewNop())

	now := time.Date(2026, 8, 28, 2, 0, 0, 0, time.UTC)
	unpaid := db.Invoice{
		ID:      uuid.New(),
		Status:  db.InvoiceStatusPending,
		Total:   dec("1000"),
		DueDate: now.AddDate(0, 0, -2),
	}
	covered := db.Invoice{
		ID:      uuid.New(),
		Status:  db.InvoiceStatusPending,
		Total:   dec("500"),
		DueDate: now.AddDate(0, 0, -1),
	}

	mockQuerier.EXPECT().
		ListOverdueCandidates(gomock.Any(), db.ListOverdueCandidatesParams{AsOf: now, Limit: 100}).
		Return([]db.Invoice{unpaid, covered}, nil)

	// unpaid flips to overdue
	mockQuerier.EXPECT().GetInvoiceByID(gomock.Any(), unpaid.ID).Return(unpaid, nil)
	mockQuerier.EXPECT().GetInvoicePayments(gomock.Any(), unpaid.ID).Return(nil, nil)
	mockQuerier.EXPECT().
		UpdateInvoiceStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.UpdateInvoiceStatusParams) (db.Invoice, error) {
			assert.Equal(t, unpaid.ID, arg.ID)
			assert.Equal(t, db.InvoiceStatusOverdue, arg.Status)
			marked := unpaid
			marked.Status = db.InvoiceStatusOverdue
			return marked, nil
		})

	// covered has a pending full payment completed since listing, stays put
	mockQuerier.EXPECT().GetInvoiceByID(gomock.Any(), covered.ID).Return(covered, nil)
	mockQuerier.EXPECT().GetInvoicePayments(gomock.Any(), covered.ID).
		Return([]db.Payment{{Status: db.PaymentStatusCompleted, Amount: dec("500")}}, nil)

	result, err := proc.Sweep(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Checked)
	assert.Equal(t, 1, result.MarkedOverdue)
	assert.Equal(t, 0, result.Failed)
}

func TestOverdueProcessor_SweepCountsFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	payments := services.NewPaymentService(mockQuerier, passthroughTxRunner(mockQuerier), zap.NewNop())
	proc := processor.NewOverdueProcessor(mockQuerier, payments, 100, zap.NewNop())

	now := time.Now()
	broken := db.Invoice{ID: uuid.New(), Status: db.InvoiceStatusPending, DueDate: now.AddDate(0, 0, -1)}
	fine := db.Invoice{ID: uuid.New(), Status: db.InvoiceStatusPending, Total: dec("100"), DueDate: now.AddDate(0, 0, -1)}

	mockQuerier.EXPECT().
		ListOverdueCandidates(gomock.Any(), gomock.Any()).
		Return([]db.Invoice{broken, fine}, nil)

	mockQuerier.EXPECT().GetInvoiceByID(gomock.Any(), broken.ID).
		Return(db.Invoice{}, errors.New("connection reset"))

	mockQuerier.EXPECT().GetInvoiceByID(gomock.Any(), fine.ID).Return(fine, nil)
	mockQuerier.EXPECT().GetInvoicePayments(gomock.Any(), fine.ID).Return(nil, nil)
	mockQuerier.EXPECT().
		UpdateInvoiceStatus(gomock.Any(), gomock.Any()).
		Return(fine, nil)

	result, err := proc.Sweep(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Checked)
	assert.Equal(t, 1, result.MarkedOverdue)
	assert.Equal(t, 1, result.Failed)
}

func TestOverdueProcessor_SweepListFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	payments := services.NewPaymentService(mockQuerier, passthroughTxRunner(mockQuerier), zap.NewNop())
	proc := processor.NewOverdueProcessor(mockQuerier, payments, 50, zap.NewNop())

	mockQuerier.EXPECT().
		ListOverdueCandidates(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("timeout"))

	_, err := proc.Sweep(context.Background(), time.Now())
	assert.Error(t, err)
}
