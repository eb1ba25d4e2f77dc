package services

import (
	"time"

	"github.com/garagedesk/garagedesk-api/internal/db"
	"github.com/garagedesk/garagedesk-api/internal/types/business"
	"github.com/shopspring/decimal"
)

// Status machine events, used for error reporting
const (
	eventSubmit        = "submit"
	eventRecordPayment = "record_payment"
	eventCancel        = "cancel"
	eventRecordRefund  = "record_refund"
)

// statusTransitions is the full transition relation of the invoice status
// machine. paid re-opens to pending/overdue only through refunds; cancelled
// is terminal.
var statusTransitions = map[db.InvoiceStatus][]db.InvoiceStatus{
	db.InvoiceStatusDraft:     {db.InvoiceStatusPending, db.InvoiceStatusCancelled},
	db.InvoiceStatusPending:   {db.InvoiceStatusPaid, db.InvoiceStatusCancelled, db.InvoiceStatusOverdue},
	db.InvoiceStatusOverdue:   {db.InvoiceStatusPaid},
	db.InvoiceStatusPaid:      {db.InvoiceStatusPending, db.InvoiceStatusOverdue},
	db.InvoiceStatusCancelled: {},
}

// CanTransition reports whether the status machine permits moving from one
// status to another.
func CanTransition(from, to db.InvoiceStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanRecordPayment reports whether payments may be recorded in the given
// status. Drafts must be submitted (moved to pending) before money is taken
// against them.
func CanRecordPayment(status db.InvoiceStatus) bool {
	return status == db.InvoiceStatusPending || status == db.InvoiceStatusOverdue
}

// StatusAfterPayment decides the status that follows a recorded payment.
// Full coverage settles the invoice; partial payments leave the status
// untouched.
func StatusAfterPayment(current db.InvoiceStatus, coverage, total decimal.Decimal) (db.InvoiceStatus, bool) {
	if coverage.GreaterThanOrEqual(total) && CanTransition(current, db.InvoiceStatusPaid) {
		return db.InvoiceStatusPaid, true
	}
	return current, false
}

// StatusAfterCancel decides the status that follows a cancel request.
// Only draft and pending invoices may be cancelled.
func StatusAfterCancel(current db.InvoiceStatus) (db.InvoiceStatus, error) {
	if current != db.InvoiceStatusDraft && current != db.InvoiceStatusPending {
		return current, business.NewInvalidTransitionError(string(current), eventCancel)
	}
	return db.InvoiceStatusCancelled, nil
}

// ShouldMarkOverdue is the pure overdue-sweep predicate: a pending invoice
// past its due date with insufficient coverage becomes overdue. The caller
// owns the clock; calling this repeatedly with the same inputs is a no-op
// after the first transition.
func ShouldMarkOverdue(status db.InvoiceStatus, dueDate, now time.Time, coverage, total decimal.Decimal) bool {
	return status == db.InvoiceStatusPending &&
		now.After(dueDate) &&
		coverage.LessThan(total)
}

// StatusAfterRefund decides the status that follows a refund. A settled
// invoice whose coverage drops below its total re-opens as pending, or as
// overdue when it is already past due.
func StatusAfterRefund(current db.InvoiceStatus, coverage, total decimal.Decimal, pastDue bool) (db.InvoiceStatus, bool) {
	if current != db.InvoiceStatusPaid || coverage.GreaterThanOrEqual(total) {
		return current, false
	}
	if pastDue {
		return db.InvoiceStatusOverdue, true
	}
	return db.InvoiceStatusPending, true
}
