package services

import (
	"github.com/garagedesk/garagedesk-api/internal/db"
	"github.com/garagedesk/garagedesk-api/internal/types/business"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CalculateTotals derives subtotal, discount, tax and total for a draft.
// It is a pure function: the draft is never mutated, and the result is
// recomputed from scratch on every call so derived figures can never drift
// from their inputs.
//
// Rounding happens once, at the tax/total boundary. Intermediate terms stay
// exact so repeated recomputation cannot compound rounding error.
func CalculateTotals(draft business.InvoiceDraft) business.InvoiceTotals {
	subtotal := draft.LaborCharges
	for _, item := range draft.LineItems {
		subtotal = subtotal.Add(item.LineTotal)
	}
	for _, charge := range draft.ExtraCharges {
		subtotal = subtotal.Add(charge.Amount)
	}

	discountAmount := subtotal.Mul(draft.DiscountPercent).Div(hundred)
	taxableAmount := subtotal.Sub(discountAmount)
	taxAmount := taxableAmount.Mul(draft.TaxRatePercent).Div(hundred).Round(2)
	total := taxableAmount.Add(taxAmount).Round(2)

	totals := business.InvoiceTotals{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		TaxableAmount:  taxableAmount,
		TaxAmount:      taxAmount,
		Total:          total,
	}

	// GST invoices display the tax split into CGST/SGST halves; the stored
	// tax amount itself is never split.
	if draft.Kind == db.InvoiceKindGST {
		cgst, sgst := splitGSTHalves(taxAmount)
		totals.CGST = &cgst
		totals.SGST = &sgst
	}

	return totals
}

// splitGSTHalves splits a tax amount into rounded CGST/SGST display halves.
// The CGST half is rounded and the SGST half takes the remainder, so the two
// always sum back to the tax amount even when it has an odd cent.
func splitGSTHalves(taxAmount decimal.Decimal) (cgst, sgst decimal.Decimal) {
	cgst = taxAmount.Div(decimal.NewFromInt(2)).Round(2)
	sgst = taxAmount.Sub(cgst)
	return cgst, sgst
}

// lineTotal computes the derived total for one line: the full line amount
// minus the line discount.
func lineTotal(unitPrice decimal.Decimal, quantity int32, discount decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt32(quantity)).Sub(discount)
}
