package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/garagedesk/garagedesk-api/internal/db"
	"github.com/garagedesk/garagedesk-api/internal/services"
	"github.com/garagedesk/garagedesk-api/internal/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from    db.InvoiceStatus
		to      db.InvoiceStatus
		allowed bool
	}{
		{db.InvoiceStatusDraft, db.InvoiceStatusPending, true},
		{db.InvoiceStatusDraft, db.InvoiceStatusCancelled, true},
		{db.InvoiceStatusDraft, db.InvoiceStatusPaid, false},
		{db.InvoiceStatusPending, db.InvoiceStatusPaid, true},
		{db.InvoiceStatusPending, db.InvoiceStatusOverdue, true},
		{db.InvoiceStatusPending, db.InvoiceStatusCancelled, true},
		{db.InvoiceStatusOverdue, db.InvoiceStatusPaid, true},
		{db.InvoiceStatusOverdue, db.InvoiceStatusCancelled, false},
		{db.InvoiceStatusPaid, db.InvoiceStatusPending, true},
		{db.InvoiceStatusPaid, db.InvoiceStatusOverdue, true},
		{db.InvoiceStatusPaid, db.InvoiceStatusCancelled, false},
		{db.InvoiceStatusCancelled, db.InvoiceStatusPending, false},
		{db.InvoiceStatusCancelled, db.InvoiceStatusPaid, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, services.CanTransition(tt.from, tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestStatusAfterPayment(t *testing.T) {
	total := dec("4035.6")

	// Partial coverage leaves the status untouched
	status, changed := services.StatusAfterPayment(db.InvoiceStatusPending, dec("2000"), total)
	assert.Equal(t, db.InvoiceStatusPending, status)
	assert.False(t, changed)

	// Exact coverage settles
	status, changed = services.StatusAfterPayment(db.InvoiceStatusPending, total, total)
	assert.Equal(t, db.InvoiceStatusPaid, status)
	assert.True(t, changed)

	// Overpayment settles too
	status, changed = services.StatusAfterPayment(db.InvoiceStatusOverdue, dec("5000"), total)
	assert.Equal(t, db.InvoiceStatusPaid, status)
	assert.True(t, changed)
}

func TestStatusAfterCancel(t *testing.T) {
	for _, from := range []db.InvoiceStatus{db.InvoiceStatusDraft, db.InvoiceStatusPending} {
		status, err := services.StatusAfterCancel(from)
		require.NoError(t, err)
		assert.Equal(t, db.InvoiceStatusCancelled, status)
	}

	for _, from := range []db.InvoiceStatus{db.InvoiceStatusPaid, db.InvoiceStatusOverdue, db.InvoiceStatusCancelled} {
		status, err := services.StatusAfterCancel(from)
		require.Error(t, err)
		assert.True(t, errors.Is(err, business.ErrInvalidTransition))
		assert.Equal(t, from, status, "status is left unchanged")
	}
}

func TestShouldMarkOverdue(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	dueYesterday := now.AddDate(0, 0, -1)
	dueTomorrow := now.AddDate(0, 0, 1)
	total := dec("1000")

	tests := []struct {
		name     string
		status   db.InvoiceStatus
		dueDate  time.Time
		coverage string
		want     bool
	}{
		{"pending past due unpaid", db.InvoiceStatusPending, dueYesterday, "0", true},
		{"pending past due partially paid", db.InvoiceStatusPending, dueYesterday, "999.99", true},
		{"pending past due fully covered", db.InvoiceStatusPending, dueYesterday, "1000", false},
		{"pending not yet due", db.InvoiceStatusPending, dueTomorrow, "0", false},
		{"already overdue", db.InvoiceStatusOverdue, dueYesterday, "0", false},
		{"draft past due", db.InvoiceStatusDraft, dueYesterday, "0", false},
		{"paid past due", db.InvoiceStatusPaid, dueYesterday, "1000", false},
		{"cancelled past due", db.InvoiceStatusCancelled, dueYesterday, "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := services.ShouldMarkOverdue(tt.status, tt.dueDate, now, dec(tt.coverage), total)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShouldMarkOverdue_Idempotent(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	due := now.AddDate(0, 0, -3)

	// First evaluation fires; once the invoice is overdue the predicate
	// refuses to fire again with the same inputs.
	assert.True(t, services.ShouldMarkOverdue(db.InvoiceStatusPending, due, now, dec("0"), dec("500")))
	assert.False(t, services.ShouldMarkOverdue(db.InvoiceStatusOverdue, due, now, dec("0"), dec("500")))
}

func TestStatusAfterRefund(t *testing.T) {
	total := dec("1000")

	// Refund dropping coverage below total re-opens a paid invoice
	status, changed := services.StatusAfterRefund(db.InvoiceStatusPaid, dec("600"), total, false)
	assert.Equal(t, db.InvoiceStatusPending, status)
	assert.True(t, changed)

	// Past due it re-opens straight to overdue
	status, changed = services.StatusAfterRefund(db.InvoiceStatusPaid, dec("600"), total, true)
	assert.Equal(t, db.InvoiceStatusOverdue, status)
	assert.True(t, changed)

	// A refund that keeps coverage at or above total leaves it paid
	status, changed = services.StatusAfterRefund(db.InvoiceStatusPaid, total, total, false)
	assert.Equal(t, db.InvoiceStatusPaid, status)
	assert.False(t, changed)

	// Refunds on non-paid invoices never move status
	status, changed = services.StatusAfterRefund(db.InvoiceStatusPending, dec("0"), total, true)
	assert.Equal(t, db.InvoiceStatusPending, status)
	assert.False(t, changed)
}

func TestCanRecordPayment(t *testing.T) {
	assert.True(t, services.CanRecordPayment(db.InvoiceStatusPending))
	assert.True(t, services.CanRecordPayment(db.InvoiceStatusOverdue))
	assert.False(t, services.CanRecordPayment(db.InvoiceStatusDraft))
	assert.False(t, services.CanRecordPayment(db.InvoiceStatusPaid))
	assert.False(t, services.CanRecordPayment(db.InvoiceStatusCancelled))
}

func TestCoverageFromPayments(t *testing.T) {
	payments := []db.Payment{
		{Status: db.PaymentStatusCompleted, Amount: dec("2000")},
		{Status: db.PaymentStatusPending, Amount: dec("9999")},
		{Status: db.PaymentStatusCompleted, Amount: dec("1500")},
		{
			Status:       db.PaymentStatusRefunded,
			Amount:       dec("500"),
			RefundAmount: decimalNull("200"),
		},
	}

	coverage := business.CoverageFromPayments(payments)
	assert.True(t, coverage.Paid.Equal(dec("4000")), "paid = %s", coverage.Paid)
	assert.True(t, coverage.Refunded.Equal(dec("200")))
	assert.True(t, coverage.Net().Equal(dec("3800")))
}
