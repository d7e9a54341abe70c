// Package installments implements amortization bookkeeping for cards and
// loans: which installment of an obligation falls in which calendar month,
// advancing payments, and the remaining balance.
//
// An obligation moves one way through two states: Active while
// CurrentInstallment <= TotalInstallments, Paid once it exceeds it.
// There is no un-pay.
package installments

import (
	"github.com/shopspring/decimal"

	"github.com/auratech/finvault/internal/models"
)

// InstallmentNumber returns the 1-based installment that falls in
// (year, month0) for the obligation, regardless of whether it is owed.
// Months before the start date yield zero or negative numbers.
func InstallmentNumber(o models.Obligation, year, month0 int) int {
	monthsSinceStart := (year-o.StartYear)*12 + (month0 - o.StartMonth)
	return monthsSinceStart + 1
}

// DueInMonth returns the amount the obligation contributes to the given
// month: the installment amount when that month's installment number lies
// in [CurrentInstallment, TotalInstallments], zero otherwise. Obligations
// recorded retroactively ("currently on installment 5 of 12") project
// past, current and future months correctly without a per-month schedule.
func DueInMonth(o models.Obligation, year, month0 int) decimal.Decimal {
	n := InstallmentNumber(o, year, month0)
	if n >= o.CurrentInstallment && n <= o.TotalInstallments {
		return o.InstallmentAmount
	}
	return decimal.Zero
}

// Advance records one installment payment. At the terminal state
// (CurrentInstallment == TotalInstallments) it still moves to
// TotalInstallments+1, marking the obligation paid; on an already paid
// obligation it is a no-op.
func Advance(o *models.Obligation) {
	if o.CurrentInstallment <= o.TotalInstallments {
		o.CurrentInstallment++
	}
}

// Paid reports whether all installments have been paid.
func Paid(o models.Obligation) bool {
	return o.CurrentInstallment > o.TotalInstallments
}

// RemainingBalance returns the amount still owed:
// (TotalInstallments - CurrentInstallment + 1) * InstallmentAmount.
// Paid obligations owe zero.
func RemainingBalance(o models.Obligation) decimal.Decimal {
	remaining := o.TotalInstallments - o.CurrentInstallment + 1
	if remaining <= 0 {
		return decimal.Zero
	}
	return o.InstallmentAmount.Mul(decimal.NewFromInt(int64(remaining)))
}
