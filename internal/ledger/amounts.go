package ledger

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/auratech/finvault/internal/common"
)

var amountJunk = regexp.MustCompile(`[^0-9,.\-]`)

// ParseAmount interprets a locale-formatted monetary string ("$ 1.234,56",
// es-AR convention: dot thousands separator, comma decimal separator) as a
// decimal. Non-numeric input yields ErrInvalidAmount.
func ParseAmount(s string) (decimal.Decimal, error) {
	cleaned := amountJunk.ReplaceAllString(s, "")
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	if cleaned == "" || cleaned == "-" || cleaned == "." {
		return decimal.Zero, fmt.Errorf("%q: %w", s, common.ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q: %w", s, common.ErrInvalidAmount)
	}
	return d, nil
}

// FormatARS renders an amount in the base currency for display,
// e.g. 1234.56 -> "$1.234,56".
func FormatARS(amount decimal.Decimal) string {
	cur := money.GetCurrency(money.ARS)
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return money.New(minor.IntPart(), money.ARS).Display()
}
