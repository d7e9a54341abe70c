package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/auratech/finvault/internal/common"
	"github.com/auratech/finvault/internal/ledger"
	"github.com/auratech/finvault/internal/reports"
)

// Report prints the selected month's category breakdown, the installments
// due, and the income-versus-outgoings series across all months.
func (a *App) Report(ctx context.Context) error {
	key := a.monthKey()

	totals := reports.CategoryTotals(a.led, key)
	fmt.Printf("Spending by category (%s):\n", key)
	if len(totals) == 0 {
		fmt.Println("  (none)")
	} else {
		categories := make([]string, 0, len(totals))
		for c := range totals {
			categories = append(categories, c)
		}
		sort.Strings(categories)
		for _, c := range categories {
			line := fmt.Sprintf("  %-20s %s", c, ledger.FormatARS(totals[c]))
			if limit, ok := a.led.Budget(key, c); ok {
				line += fmt.Sprintf("  (budget %s", ledger.FormatARS(limit))
				if a.led.OverBudget(key, c, totals[c]) {
					line += ", OVER"
				}
				line += ")"
			}
			fmt.Println(line)
		}
	}

	due := reports.InstallmentsDue(a.led.Dataset(), a.year, a.month0)
	fmt.Printf("Installments due: %s\n", ledger.FormatARS(due))

	fmt.Println("Monthly balance:")
	for _, p := range reports.MonthlySeries(a.led) {
		balance := p.Income.Sub(p.Expenses)
		fmt.Printf("  %-8s in %s  out %s  balance %s\n",
			p.MonthKey, ledger.FormatARS(p.Income), ledger.FormatARS(p.Expenses), ledger.FormatARS(balance))
	}
	return nil
}

// SetBudget sets the monthly spending limit for a category.
func (a *App) SetBudget(ctx context.Context) error {
	category, err := getSimpleText(a.reader, "Category", os.Stdout)
	if err != nil {
		return err
	}
	if category == "" {
		return errors.New("category is required")
	}

	limit, err := GetAmount(a.reader, "Monthly limit", os.Stdout)
	if err != nil {
		fmt.Println("Amount not understood.")
		return err
	}

	a.led.SetBudget(a.monthKey(), category, limit)
	return a.persist(ctx, fmt.Sprintf("presupuesto de %s", category))
}

// History prints the activity log, most recent first.
func (a *App) History(ctx context.Context) error {
	entries := a.led.Dataset().History
	if len(entries) == 0 {
		fmt.Println("No activity yet.")
		return nil
	}
	for _, h := range entries {
		fmt.Printf("%s  %s\n", h.At.Format("2006-01-02 15:04"), h.Text)
	}
	return nil
}

// Rate fetches the current ARS/USD quote and applies it to the dataset.
// When the quote service and cache are both unavailable the stored rate
// stays in effect.
func (a *App) Rate(ctx context.Context) error {
	rate, err := a.rateSvc.FetchRate(ctx)
	if err != nil {
		if errors.Is(err, common.ErrFetch) {
			fmt.Printf("Quote unavailable, keeping %s ARS/USD\n", a.led.Dataset().ExchangeRate)
			return nil
		}
		a.log.Error(ctx, "rate lookup failed", "error", err)
		return err
	}

	if err := a.led.SetExchangeRate(rate); err != nil {
		return err
	}
	fmt.Printf("Exchange rate updated: %s ARS/USD\n", rate)
	return a.persist(ctx, fmt.Sprintf("actualización de cotización a %s", rate))
}

// Project estimates the return of a fixed-term deposit at a given TNA
// (nominal annual rate, percent), simple or compound.
func (a *App) Project(ctx context.Context) error {
	capital, err := GetAmount(a.reader, "Capital", os.Stdout)
	if err != nil {
		fmt.Println("Amount not understood.")
		return err
	}

	tna, err := GetAmount(a.reader, "TNA (%)", os.Stdout)
	if err != nil {
		fmt.Println("Rate not understood.")
		return err
	}

	months, err := GetInt(a.reader, "Months", os.Stdout)
	if err != nil || months < 1 {
		fmt.Println("Month count must be at least 1.")
		if err == nil {
			err = fmt.Errorf("invalid month count %d", months)
		}
		return err
	}

	mode, err := getSimpleText(a.reader, "Compound? (y/N)", os.Stdout)
	if err != nil {
		return err
	}
	compound := mode == "y" || mode == "Y"

	final, gain := ledger.ProjectReturn(capital, tna, months, compound)
	fmt.Printf("Final: %s  (gain %s)\n", ledger.FormatARS(final), ledger.FormatARS(gain))
	return nil
}
