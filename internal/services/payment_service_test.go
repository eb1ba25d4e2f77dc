package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/garagedesk/garagedesk-api/internal/db"
	"github.com/garagedesk/garagedesk-api/internal/mocks"
	"github.com/garagedesk/garagedesk-api/internal/services"
	"github.com/garagedesk/garagedesk-api/internal/types/business"
	"github.com/garagedesk/garagedesk-api/internal/types/params"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newPaymentService(q db.Querier) *services.PaymentService {
	return services.NewPaymentService(q, passthroughTxRunner(q), zap.NewNop())
}

func pendingInvoice(id uuid.UUID, total string, dueDate time.Time) db.Invoice {
	return db.Invoice{
		ID:            id,
		InvoiceNumber: "GST-20260828-0001",
		Kind:          db.InvoiceKindGST,
		Status:        db.InvoiceStatusPending,
		Total:         dec(total),
		DueDate:       dueDate,
	}
}

func TestPaymentService_RecordPayment_PartialLeavesPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	invoiceID := uuid.New()
	paidAt := time.Date(2026, 8, 28, 16, 0, 0, 0, time.UTC)
	invoice := pendingInvoice(invoiceID, "4035.6", paidAt.AddDate(0, 0, 30))

	mockQuerier.EXPECT().GetInvoiceByID(gomock.Any(), invoiceID).Return(invoice, nil)

	payment := db.Payment{
		ID:        uuid.New(),
		InvoiceID: invoiceID,
		Amount:    dec("2000"),
		Method:    db.PaymentMethodUPI,
		Status:    db.PaymentStatusCompleted,
	}
	mockQuerier.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreatePaymentParams) (db.Payment, error) {
			assert.True(t, arg.Amount.Equal(dec("2000")))
			assert.Equal(t, db.PaymentStatusCompleted, arg.Status)
			return payment, nil
		})
	mockQuerier.EXPECT().GetInvoicePayments(gomock.Any(), invoiceID).
		Return([]db.Payment{payment}, nil)

	// 2000 < 4035.6, so no status update happens

	outcome, err := newPaymentService(mockQuerier).RecordPayment(context.Background(), params.RecordPaymentParams{
		InvoiceID: invoiceID,
		Amount:    dec("2000"),
		Method:    db.PaymentMethodUPI,
		Status:    db.PaymentStatusCompleted,
		PaidAt:    paidAt,
	})
	require.NoError(t, err)
	assert.False(t, outcome.StatusChanged)
	assert.Equal(t, db.InvoiceStatusPending, outcome.Invoice.Status)
	assert.False(t, outcome.Invoice.PaidAt.Valid)
}

func TestPaymentService_RecordPayment_FullSettles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	invoiceID := uuid.New()
	paidAt := time.Date(2026, 8, 28, 16, 0, 0, 0, time.UTC)
	invoice := pendingInvoice(invoiceID, "4035.6", paidAt.AddDate(0, 0, 30))

	mockQuerier.EXPECT().GetInvoiceByID(gomock.Any(), invoiceID).Return(invoice, nil)

	earlier := db.Payment{InvoiceID: invoiceID, Amount: dec("2000"), Status: db.PaymentStatusCompleted}
	settling := db.Payment{
		ID:        uuid.New(),
		InvoiceID: invoiceID,
		Amount:    dec("2035.6"),
		Status:    db.PaymentStatusCompleted,
	}
	mockQuerier.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(settling, nil)
	mockQuerier.EXPECT().GetInvoicePayments(gomock.Any(), invoiceID).
		Return([]db.Payment{earlier, settling}, nil)

	settled := invoice
	settled.Status = db.InvoiceStatusPaid
	settled.PaidAt = pgtype.Timestamptz{Time: paidAt, Valid: true}
	mockQuerier.EXPECT().
		UpdateInvoiceStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.UpdateInvoiceStatusParams) (db.Invoice, error) {
			assert.Equal(t, db.InvoiceStatusPaid, arg.Status)
			assert.True(t, arg.PaidAt.Valid)
			assert.Equal(t, paidAt, arg.PaidAt.Time)
			return settled, nil
		})

	outcome, err := newPaymentService(mockQuerier).RecordPayment(context.Background(), params.RecordPaymentParams{
		InvoiceID: invoiceID,
		Amount:    dec("2035.6"),
		Method:    db.PaymentMethodCard,
		Status:    db.PaymentStatusCompleted,
		PaidAt:    paidAt,
	})
	require.NoError(t, err)
	assert.True(t, outcome.StatusChanged)
	assert.Equal(t, db.InvoiceStatusPaid, outcome.Invoice.Status)
	assert.True(t, outcome.Invoice.PaidAt.Valid)
}

func TestPaymentService_RecordPayment_RejectedStatuses(t *testing.T) {
	for _, status := range []db.InvoiceStatus{db.InvoiceStatusDraft, db.InvoiceStatusPaid, db.InvoiceStatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQuerier := mocks.NewMockQuerier(ctrl)
			invoiceID := uuid.New()
			invoice := pendingInvoice(invoiceID, "1000", time.Now())
			invoice.Status = status
			mockQuerier.EXPECT().GetInvoiceByID(gomock.Any(), invoiceID).Return(invoice, nil)

			_, err := newPaymentService(mockQuerier).RecordPayment(context.Background(), params.RecordPaymentParams{
				InvoiceID: invoiceID,
				Amount:    dec("100"),
				Method:    db.PaymentMethodCash,
				Status:    db.PaymentStatusCompleted,
				PaidAt:    time.Now(),
			})
			assert.True(t, errors.Is(err, business.ErrInvalidTransition))
		})
	}
}

func TestPaymentService_RecordPayment_InvalidAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	_, err := newPaymentService(mockQuerier).RecordPayment(context.Background(), params.RecordPaymentParams{
		InvoiceID: uuid.New(),
		Amount:    dec("0"),
		Method:    db.PaymentMethodCash,
		Status:    db.PaymentStatusCompleted,
	})
	var ve *business.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "amount", ve.Field)
}

func TestPaymentService_CancelInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	invoiceID := uuid.New()
	invoice := pendingInvoice(invoiceID, "1000", time.Now())
	mockQuerier.EXPECT().GetInvoiceByID(gomock.Any(), invoiceID).Return(invoice, nil)

	cancelled := invoice
	cancelled.Status = db.InvoiceStatusCancelled
	mockQuerier.EXPECT().
		UpdateInvoiceStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.UpdateInvoiceStatusParams) (db.Invoice, error) {
			assert.Equal(t, db.InvoiceStatusCancelled, arg.Status)
			return cancelled, nil
		})

	got, err := newPaymentService(mockQuerier).CancelInvoice(context.Background(), invoiceID)
	require.NoError(t, err)
	assert.Equal(t, db.InvoiceStatusCancelled, got.Status)
}

func TestPaymentService_CancelPaidInvoiceFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	invoiceID := uuid.New()
	invoice := pendingInvoice(invoiceID, "1000", time.Now())
	invoice.Status = db.InvoiceStatusPaid
	mockQuerier.EXPECT().GetInvoiceByID(gomock.Any(), invoiceID).Return(invoice, nil)

	_, err := newPaymentService(mockQuerier).CancelInvoice(context.Background(), invoiceID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, business.ErrInvalidTransition))

	var ite *business.InvalidTransitionError
	require.True(t, errors.As(err, &ite))
	assert.Equal(t, "paid", ite.From)
}

func TestPaymentService_SubmitInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	invoiceID := uuid.New()
	invoice := pendingInvoice(invoiceID, "1000", time.Now())
	invoice.Status = db.InvoiceStatusDraft
	mockQuerier.EXPECT().GetInvoiceByID(gomock.Any(), invoiceID).Return(invoice, nil)

	submitted := invoice
	submitted.Status = db.InvoiceStatusPending
	mockQuerier.EXPECT().
		UpdateInvoiceStatus(gomock.Any(), gomock.Any()).
		Return(submitted, nil)

	got, err := newPaymentService(mockQuerier).SubmitInvoice(context.Background(), invoiceID)
	require.NoError(t, err)
	assert.Equal(t, db.InvoiceStatusPending, got.Status)
}

func TestPaymentService_MarkOverdueIfDue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	invoiceID := uuid.New()
	now := time.Date(2026, 8, 28, 2, 0, 0, 0, time.UTC)
	invoice := pendingInvoice(invoiceID, "1000", now.AddDate(0, 0, -1))

	mockQuerier.EXPECT().GetInvoiceByID(gomock.Any(), invoiceID).Return(invoice, nil)
	mockQuerier.EXPECT().GetInvoicePayments(gomock.Any(), invoiceID).Return(nil, nil)
	mockQuerier.EXPECT().
		UpdateInvoiceStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.UpdateInvoiceStatusParams) (db.Invoice, error) {
			assert.Equal(t, db.InvoiceStatusOverdue, arg.Status)
			overdue := invoice
			overdue.Status = db.InvoiceStatusOverdue
			return overdue, nil
		})

	changed, err := newPaymentService(mockQuerier).MarkOverdueIfDue(context.Background(), invoiceID, now)
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestPaymentService_MarkOverdueIfDue_NoopWhenCovered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	invoiceID := uuid.New()
	now := time.Date(2026, 8, 28, 2, 0, 0, 0, time.UTC)
	invoice := pendingInvoice(invoiceID, "1000", now.AddDate(0, 0, -1))

	mockQuerier.EXPECT().GetInvoiceByID(gomock.Any(), invoiceID).Return(invoice, nil)
	mockQuerier.EXPECT().GetInvoicePayments(gomock.Any(), invoiceID).
		Return([]db.Payment{{Status: db.PaymentStatusCompleted, Amount: dec("1000")}}, nil)

	changed, err := newPaymentService(mockQuerier).MarkOverdueIfDue(context.Background(), invoiceID, now)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestPaymentService_RecordRefund_ReopensInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	invoiceID := uuid.New()
	paymentID := uuid.New()
	now := time.Date(2026, 8, 28, 18, 0, 0, 0, time.UTC)

	invoice := pendingInvoice(invoiceID, "1000", now.AddDate(0, 0, 10))
	invoice.Status = db.InvoiceStatusPaid
	invoice.PaidAt = pgtype.Timestamptz{Time: now.AddDate(0, 0, -1), Valid: true}

	payment := db.Payment{
		ID:        paymentID,
		InvoiceID: invoiceID,
		Amount:    dec("1000"),
		Status:    db.PaymentStatusCompleted,
	}

	mockQuerier.EXPECT().GetInvoiceByID(gomock.Any(), invoiceID).Return(invoice, nil)
	mockQuerier.EXPECT().GetPayment(gomock.Any(), paymentID).Return(payment, nil)

	refunded := payment
	refunded.Status = db.PaymentStatusRefunded
	refunded.RefundAmount = decimalNull("400")
	mockQuerier.EXPECT().
		MarkPaymentRefunded(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.MarkPaymentRefundedParams) (db.Payment, error) {
			assert.True(t, arg.RefundAmount.Equal(dec("400")))
			assert.Equal(t, "customer complaint", arg.RefundReason.String)
			return refunded, nil
		})
	mockQuerier.EXPECT().GetInvoicePayments(gomock.Any(), invoiceID).
		Return([]db.Payment{refunded}, nil)

	reopened := invoice
	reopened.Status = db.InvoiceStatusPending
	reopened.PaidAt = pgtype.Timestamptz{}
	mockQuerier.EXPECT().
		UpdateInvoiceStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.UpdateInvoiceStatusParams) (db.Invoice, error) {
			assert.Equal(t, db.InvoiceStatusPending, arg.Status)
			assert.False(t, arg.PaidAt.Valid, "paid timestamp is cleared")
			return reopened, nil
		})

	outcome, err := newPaymentService(mockQuerier).RecordRefund(context.Background(), params.RecordRefundParams{
		InvoiceID: invoiceID,
		PaymentID: paymentID,
		Amount:    dec("400"),
		Reason:    "customer complaint",
		Now:       now,
	})
	require.NoError(t, err)
	assert.True(t, outcome.StatusChanged)
	assert.Equal(t, db.InvoiceStatusPending, outcome.Invoice.Status)
	assert.False(t, outcome.Invoice.PaidAt.Valid)
}

func TestPaymentService_RecordRefund_PastDueReopensOverdue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	invoiceID := uuid.New()
	paymentID := uuid.New()
	now := time.Date(2026, 8, 28, 18, 0, 0, 0, time.UTC)

	invoice := pendingInvoice(invoiceID, "1000", now.AddDate(0, 0, -5))
	invoice.Status = db.InvoiceStatusPaid

	payment := db.Payment{
		ID:        paymentID,
		InvoiceID: invoiceID,
		Amount:    dec("1000"),
		Status:    db.PaymentStatusCompleted,
	}

	mockQuerier.EXPECT().GetInvoiceByID(gomock.Any(), invoiceID).Return(invoice, nil)
	mockQuerier.EXPECT().GetPayment(gomock.Any(), paymentID).Return(payment, nil)

	refunded := payment
	refunded.Status = db.PaymentStatusRefunded
	refunded.RefundAmount = decimalNull("1000")
	mockQuerier.EXPECT().MarkPaymentRefunded(gomock.Any(), gomock.Any()).Return(refunded, nil)
	mockQuerier.EXPECT().GetInvoicePayments(gomock.Any(), invoiceID).
		Return([]db.Payment{refunded}, nil)

	overdue := invoice
	overdue.Status = db.InvoiceStatusOverdue
	mockQuerier.EXPECT().
		UpdateInvoiceStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.UpdateInvoiceStatusParams) (db.Invoice, error) {
			assert.Equal(t, db.InvoiceStatusOverdue, arg.Status)
			return overdue, nil
		})

	outcome, err := newPaymentService(mockQuerier).RecordRefund(context.Background(), params.RecordRefundParams{
		InvoiceID: invoiceID,
		PaymentID: paymentID,
		Amount:    dec("1000"),
		Now:       now,
	})
	require.NoError(t, err)
	assert.Equal(t, db.InvoiceStatusOverdue, outcome.Invoice.Status)
}

func TestPaymentService_RecordRefund_Validation(t *testing.T) {
	invoiceID := uuid.New()
	paymentID := uuid.New()
	invoice := pendingInvoice(invoiceID, "1000", time.Now())
	invoice.Status = db.InvoiceStatusPaid

	tests := []struct {
		name       string
		amount     string
		setupMocks func(m *mocks.MockQuerier)
		check      func(t *testing.T, err error)
	}{
		{
			name:   "payment belongs to another invoice",
			amount: "100",
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().GetInvoiceByID(gomock.Any(), invoiceID).Return(invoice, nil)
				m.EXPECT().GetPayment(gomock.Any(), paymentID).Return(db.Payment{
					ID:        paymentID,
					InvoiceID: uuid.New(),
					Amount:    dec("1000"),
					Status:    db.PaymentStatusCompleted,
				}, nil)
			},
			check: func(t *testing.T, err error) {
				var ve *business.ValidationError
				require.True(t, errors.As(err, &ve))
				assert.Equal(t, "payment_id", ve.Field)
			},
		},
		{
			name:   "refund above payment amount",
			amount: "1000.01",
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().GetInvoiceByID(gomock.Any(), invoiceID).Return(invoice, nil)
				m.EXPECT().GetPayment(gomock.Any(), paymentID).Return(db.Payment{
					ID:        paymentID,
					InvoiceID: invoiceID,
					Amount:    dec("1000"),
					Status:    db.PaymentStatusCompleted,
				}, nil)
			},
			check: func(t *testing.T, err error) {
				var ve *business.ValidationError
				require.True(t, errors.As(err, &ve))
				assert.Equal(t, "amount", ve.Field)
			},
		},
		{
			name:   "already refunded payment",
			amount: "100",
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().GetInvoiceByID(gomock.Any(), invoiceID).Return(invoice, nil)
				m.EXPECT().GetPayment(gomock.Any(), paymentID).Return(db.Payment{
					ID:        paymentID,
					InvoiceID: invoiceID,
					Amount:    dec("1000"),
					Status:    db.PaymentStatusRefunded,
				}, nil)
			},
			check: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, business.ErrInvalidTransition))
			},
		},
		{
			name:   "unknown payment",
			amount: "100",
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().GetInvoiceByID(gomock.Any(), invoiceID).Return(invoice, nil)
				m.EXPECT().GetPayment(gomock.Any(), paymentID).Return(db.Payment{}, pgx.ErrNoRows)
			},
			check: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, business.ErrNotFound))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQuerier := mocks.NewMockQuerier(ctrl)
			tt.setupMocks(mockQuerier)

			_, err := newPaymentService(mockQuerier).RecordRefund(context.Background(), params.RecordRefundParams{
				InvoiceID: invoiceID,
				PaymentID: paymentID,
				Amount:    dec(tt.amount),
				Now:       time.Now(),
			})
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestPaymentService_GetInvoiceCoverage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	invoiceID := uuid.New()
	invoice := pendingInvoice(invoiceID, "4035.6", time.Now())

	mockQuerier.EXPECT().GetInvoiceByID(gomock.Any(), invoiceID).Return(invoice, nil)
	mockQuerier.EXPECT().GetInvoicePayments(gomock.Any(), invoiceID).
		Return([]db.Payment{{Status: db.PaymentStatusCompleted, Amount: dec("2000")}}, nil)

	coverage, outstanding, err := newPaymentService(mockQuerier).GetInvoiceCoverage(context.Background(), invoiceID)
	require.NoError(t, err)
	assert.True(t, coverage.Equal(dec("2000")))
	assert.True(t, outstanding.Equal(dec("2035.6")))
}
