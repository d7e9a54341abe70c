package ledger

import "github.com/shopspring/decimal"

// Interest projections for savings planning. Rates are decimals, not
// percentages: 0.75 means 75% annual.

var one = decimal.NewFromInt(1)

// SimpleInterest returns capital grown by simple interest over the given
// number of months.
func SimpleInterest(capital, annualRate decimal.Decimal, months int) decimal.Decimal {
	fraction := decimal.NewFromInt(int64(months)).Div(decimal.NewFromInt(12))
	return capital.Mul(one.Add(annualRate.Mul(fraction)))
}

// CompoundInterest returns capital grown with monthly compounding over the
// given number of months.
func CompoundInterest(capital, annualRate decimal.Decimal, months int) decimal.Decimal {
	monthly := annualRate.Div(decimal.NewFromInt(12))
	return capital.Mul(one.Add(monthly).Pow(decimal.NewFromInt(int64(months))))
}

// MonthlyRateFromTNA converts a nominal annual rate in percent (e.g. 75)
// to the effective monthly rate as a decimal, assuming monthly compounding.
func MonthlyRateFromTNA(tnaPercent decimal.Decimal) decimal.Decimal {
	tna := tnaPercent.Div(decimal.NewFromInt(100))
	// (1+tna)^(1/12) - 1
	exp := one.Div(decimal.NewFromInt(12))
	return one.Add(tna).Pow(exp).Sub(one)
}

// ProjectReturn computes the final amount and the gain for a deposit of
// capital at tnaPercent over months, compounded monthly when compound is
// true and simple otherwise.
func ProjectReturn(capital, tnaPercent decimal.Decimal, months int, compound bool) (final, gain decimal.Decimal) {
	rate := tnaPercent.Div(decimal.NewFromInt(100))
	if compound {
		final = CompoundInterest(capital, rate, months)
	} else {
		final = SimpleInterest(capital, rate, months)
	}
	return final, final.Sub(capital)
}
