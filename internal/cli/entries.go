package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/auratech/finvault/internal/common"
	"github.com/auratech/finvault/internal/ledger"
	"github.com/auratech/finvault/internal/models"
)

// collectionNames maps the command argument to a ledger collection.
var collectionNames = map[string]ledger.Collection{
	"income":   ledger.Income,
	"fixed":    ledger.FixedExpenses,
	"variable": ledger.VariableExpenses,
}

func parseCollection(arg string) (ledger.Collection, error) {
	c, ok := collectionNames[strings.ToLower(arg)]
	if !ok {
		return "", fmt.Errorf("unknown collection %q (income, fixed, variable)", arg)
	}
	return c, nil
}

// historyLabel is the activity-log wording for a collection.
func historyLabel(c ledger.Collection) string {
	switch c {
	case ledger.Income:
		return "ingreso"
	case ledger.FixedExpenses:
		return "gasto fijo"
	default:
		return "gasto variable"
	}
}

func (a *App) entryDetails() (models.Entry, error) {
	var e models.Entry

	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return e, err
	}
	if name == "" {
		return e, errors.New("name is required")
	}

	amount, err := GetAmount(a.reader, "Enter amount", os.Stdout)
	if err != nil {
		fmt.Println("Amount not understood.")
		return e, err
	}

	category, err := getSimpleText(a.reader, "Enter category", os.Stdout)
	if err != nil {
		return e, err
	}

	currency, err := getSimpleText(a.reader, "Currency (ARS/USD, Enter for ARS)", os.Stdout)
	if err != nil {
		return e, err
	}
	currency = strings.ToUpper(currency)
	if currency == "" {
		currency = models.CurrencyARS
	}
	if currency != models.CurrencyARS && currency != models.CurrencyUSD {
		return e, fmt.Errorf("unsupported currency %q", currency)
	}

	e = models.Entry{Name: name, Amount: amount, Category: category, Currency: currency}
	return e, nil
}

// AddEntry prompts for a new entry and appends it to the given collection
// of the selected month.
func (a *App) AddEntry(ctx context.Context, collectionArg string) error {
	c, err := parseCollection(collectionArg)
	if err != nil {
		fmt.Println(err)
		return err
	}

	e, err := a.entryDetails()
	if err != nil {
		return err
	}

	a.led.AddEntry(c, a.monthKey(), e)
	return a.persist(ctx, fmt.Sprintf("alta de %s %s", historyLabel(c), e.Name))
}

// List prints the selected month's entries for all three collections,
// amounts converted to ARS.
func (a *App) List(ctx context.Context) error {
	key := a.monthKey()
	fmt.Printf("Month %s (rate %s ARS/USD)\n", key, a.led.Dataset().ExchangeRate)

	for _, c := range []ledger.Collection{ledger.Income, ledger.FixedExpenses, ledger.VariableExpenses} {
		entries := a.led.Entries(c, key)
		fmt.Printf("%s:\n", c)
		if len(entries) == 0 {
			fmt.Println("  (none)")
			continue
		}
		for i, e := range entries {
			base := a.led.ConvertToBase(e.Amount, e.Currency)
			fmt.Printf("  [%d] %s  %s  %s", i, e.Name, ledger.FormatARS(base), e.Category)
			if e.Currency == models.CurrencyUSD {
				fmt.Printf("  (%s USD)", e.Amount)
			}
			fmt.Println()
		}
	}
	return nil
}

// EditEntry rewrites one entry in place, prompting for all fields again.
func (a *App) EditEntry(ctx context.Context, collectionArg string) error {
	c, err := parseCollection(collectionArg)
	if err != nil {
		fmt.Println(err)
		return err
	}

	index, err := GetInt(a.reader, "Entry number", os.Stdout)
	if err != nil {
		fmt.Println(err)
		return err
	}

	e, err := a.entryDetails()
	if err != nil {
		return err
	}

	if err := a.led.EditEntry(c, a.monthKey(), index, e); err != nil {
		if errors.Is(err, common.ErrIndexOutOfRange) {
			fmt.Println("No such entry.")
		}
		return err
	}
	return a.persist(ctx, fmt.Sprintf("edición de %s %s", historyLabel(c), e.Name))
}

// DeleteEntry removes one entry from the selected month.
func (a *App) DeleteEntry(ctx context.Context, collectionArg string) error {
	c, err := parseCollection(collectionArg)
	if err != nil {
		fmt.Println(err)
		return err
	}

	index, err := GetInt(a.reader, "Entry number", os.Stdout)
	if err != nil {
		fmt.Println(err)
		return err
	}

	if err := a.led.DeleteEntry(c, a.monthKey(), index); err != nil {
		if errors.Is(err, common.ErrIndexOutOfRange) {
			fmt.Println("No such entry.")
		}
		return err
	}
	return a.persist(ctx, fmt.Sprintf("baja de %s #%d", historyLabel(c), index))
}

// SelectMonth switches the month all entry commands operate on.
// Takes a 1-based month as typed by the user.
func (a *App) SelectMonth(ctx context.Context) error {
	year, err := GetInt(a.reader, "Year", os.Stdout)
	if err != nil {
		fmt.Println(err)
		return err
	}
	month, err := GetInt(a.reader, "Month (1-12)", os.Stdout)
	if err != nil {
		fmt.Println(err)
		return err
	}
	if month < 1 || month > 12 {
		fmt.Println("Month must be between 1 and 12.")
		return errors.New("month out of range")
	}

	a.year = year
	a.month0 = month - 1
	fmt.Printf("Selected %s\n", a.monthKey())
	return nil
}
