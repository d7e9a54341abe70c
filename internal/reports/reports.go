// Package reports derives aggregate read-side views from a dataset:
// category totals for a month and the income-versus-outgoings series
// across all months present. Pure functions, safe to recompute per render.
package reports

import (
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/auratech/finvault/internal/installments"
	"github.com/auratech/finvault/internal/ledger"
	"github.com/auratech/finvault/internal/models"
)

// MonthPoint is one point of the monthly series, amounts in base currency.
type MonthPoint struct {
	MonthKey string
	Income   decimal.Decimal
	Expenses decimal.Decimal // fixed + variable + installments due
}

// CategoryTotals sums the month's variable expenses per category,
// converted to the base currency.
func CategoryTotals(l *ledger.Ledger, monthKey string) map[string]decimal.Decimal {
	totals := map[string]decimal.Decimal{}
	for _, e := range l.Entries(ledger.VariableExpenses, monthKey) {
		totals[e.Category] = totals[e.Category].Add(l.ConvertToBase(e.Amount, e.Currency))
	}
	return totals
}

// MonthlySeries returns one point per month key present in any of the
// month-keyed entry collections, in chronological order. Installments due
// from cards and loans are included in the expense side.
func MonthlySeries(l *ledger.Ledger) []MonthPoint {
	ds := l.Dataset()

	keys := map[string]struct{}{}
	for k := range ds.Income {
		keys[k] = struct{}{}
	}
	for k := range ds.FixedExpenses {
		keys[k] = struct{}{}
	}
	for k := range ds.VariableExpenses {
		keys[k] = struct{}{}
	}

	ordered := make([]string, 0, len(keys))
	for k := range keys {
		ordered = append(ordered, k)
	}
	sort.Slice(ordered, func(i, j int) bool {
		yi, mi := splitKey(ordered[i])
		yj, mj := splitKey(ordered[j])
		if yi != yj {
			return yi < yj
		}
		return mi < mj
	})

	series := make([]MonthPoint, 0, len(ordered))
	for _, k := range ordered {
		year, month0 := splitKey(k)
		p := MonthPoint{MonthKey: k}
		for _, e := range ds.Income[k] {
			p.Income = p.Income.Add(l.ConvertToBase(e.Amount, e.Currency))
		}
		for _, e := range ds.FixedExpenses[k] {
			p.Expenses = p.Expenses.Add(l.ConvertToBase(e.Amount, e.Currency))
		}
		for _, e := range ds.VariableExpenses[k] {
			p.Expenses = p.Expenses.Add(l.ConvertToBase(e.Amount, e.Currency))
		}
		for _, o := range ds.Cards {
			p.Expenses = p.Expenses.Add(installments.DueInMonth(o, year, month0))
		}
		for _, o := range ds.Loans {
			p.Expenses = p.Expenses.Add(installments.DueInMonth(o, year, month0))
		}
		series = append(series, p)
	}
	return series
}

// InstallmentsDue sums what all cards and loans contribute to one month.
func InstallmentsDue(ds *models.Dataset, year, month0 int) decimal.Decimal {
	total := decimal.Zero
	for _, o := range ds.Cards {
		total = total.Add(installments.DueInMonth(o, year, month0))
	}
	for _, o := range ds.Loans {
		total = total.Add(installments.DueInMonth(o, year, month0))
	}
	return total
}

func splitKey(key string) (year, month0 int) {
	parts := strings.SplitN(key, "-", 2)
	if len(parts) != 2 {
		return 0, 0
	}
	year, _ = strconv.Atoi(parts[0])
	month0, _ = strconv.Atoi(parts[1])
	return year, month0
}
