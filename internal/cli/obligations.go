package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/auratech/finvault/internal/installments"
	"github.com/auratech/finvault/internal/ledger"
	"github.com/auratech/finvault/internal/models"
)

func (a *App) obligationDetails(issuerPrompt string) (models.Obligation, error) {
	var o models.Obligation

	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return o, err
	}

	issuer, err := getSimpleText(a.reader, issuerPrompt, os.Stdout)
	if err != nil {
		return o, err
	}

	amount, err := GetAmount(a.reader, "Installment amount", os.Stdout)
	if err != nil {
		fmt.Println("Amount not understood.")
		return o, err
	}

	total, err := GetInt(a.reader, "Number of installments", os.Stdout)
	if err != nil || total < 1 {
		fmt.Println("Installment count must be at least 1.")
		if err == nil {
			err = fmt.Errorf("invalid installment count %d", total)
		}
		return o, err
	}

	o = models.Obligation{
		ID:                 uuid.NewString(),
		Name:               name,
		Issuer:             issuer,
		TotalInstallments:  total,
		InstallmentAmount:  amount,
		CurrentInstallment: 1,
		StartYear:          a.year,
		StartMonth:         a.month0,
	}
	return o, nil
}

// AddCard registers a card consumption starting in the selected month.
func (a *App) AddCard(ctx context.Context) error {
	o, err := a.obligationDetails("Card issuer")
	if err != nil {
		return err
	}
	ds := a.led.Dataset()
	ds.Cards = append(ds.Cards, o)
	return a.persist(ctx, fmt.Sprintf("alta de consumo %s en %d cuotas", o.Name, o.TotalInstallments))
}

// AddLoan registers a loan starting in the selected month.
func (a *App) AddLoan(ctx context.Context) error {
	o, err := a.obligationDetails("Lender")
	if err != nil {
		return err
	}
	ds := a.led.Dataset()
	ds.Loans = append(ds.Loans, o)
	return a.persist(ctx, fmt.Sprintf("alta de préstamo %s en %d cuotas", o.Name, o.TotalInstallments))
}

// ListObligations prints cards and loans with their due state for the
// selected month.
func (a *App) ListObligations(ctx context.Context) error {
	ds := a.led.Dataset()

	printGroup := func(label string, items []models.Obligation) {
		fmt.Printf("%s:\n", label)
		if len(items) == 0 {
			fmt.Println("  (none)")
			return
		}
		for i, o := range items {
			due := installments.DueInMonth(o, a.year, a.month0)
			status := fmt.Sprintf("cuota %d/%d", o.CurrentInstallment, o.TotalInstallments)
			if installments.Paid(o) {
				status = "paid off"
			}
			fmt.Printf("  [%d] %s (%s)  %s  %s", i, o.Name, o.Issuer, ledger.FormatARS(o.InstallmentAmount), status)
			if due.IsPositive() {
				fmt.Printf("  due this month: %s", ledger.FormatARS(due))
			}
			fmt.Println()
			if !installments.Paid(o) {
				fmt.Printf("      remaining: %s\n", ledger.FormatARS(installments.RemainingBalance(o)))
			}
		}
	}

	printGroup("Cards", ds.Cards)
	printGroup("Loans", ds.Loans)
	return nil
}

// PayInstallment advances one obligation by a single installment.
// The argument selects the group: "card" or "loan".
func (a *App) PayInstallment(ctx context.Context, group string) error {
	ds := a.led.Dataset()

	var items []models.Obligation
	switch group {
	case "card":
		items = ds.Cards
	case "loan":
		items = ds.Loans
	default:
		fmt.Println("Usage: pay card|loan")
		return fmt.Errorf("unknown obligation group %q", group)
	}

	index, err := GetInt(a.reader, "Obligation number", os.Stdout)
	if err != nil {
		fmt.Println(err)
		return err
	}
	if index < 0 || index >= len(items) {
		fmt.Println("No such obligation.")
		return fmt.Errorf("obligation %d out of range", index)
	}

	o := &items[index]
	if installments.Paid(*o) {
		fmt.Printf("%s is already paid off.\n", o.Name)
		return nil
	}
	installments.Advance(o)

	if installments.Paid(*o) {
		fmt.Printf("%s fully paid!\n", o.Name)
	} else {
		fmt.Printf("%s now at cuota %d/%d\n", o.Name, o.CurrentInstallment, o.TotalInstallments)
	}
	return a.persist(ctx, fmt.Sprintf("pago de cuota de %s", o.Name))
}
