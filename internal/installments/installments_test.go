package installments

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/auratech/finvault/internal/models"
)

// obligation started March 2024, 3 installments of 100, nothing paid yet.
func marchObligation() models.Obligation {
	return models.Obligation{
		ID:                 "o1",
		Name:               "Heladera",
		TotalInstallments:  3,
		InstallmentAmount:  decimal.NewFromInt(100),
		CurrentInstallment: 1,
		StartYear:          2024,
		StartMonth:         2, // March
	}
}

func TestDueInMonth_ActiveWindow(t *testing.T) {
	o := marchObligation()

	due := func(year, month0 int) decimal.Decimal { return DueInMonth(o, year, month0) }

	require.True(t, due(2024, 2).Equal(decimal.NewFromInt(100)), "March")
	require.True(t, due(2024, 3).Equal(decimal.NewFromInt(100)), "April")
	require.True(t, due(2024, 4).Equal(decimal.NewFromInt(100)), "May")

	require.True(t, due(2024, 1).IsZero(), "February, before start")
	require.True(t, due(2024, 5).IsZero(), "June, after last installment")
	require.True(t, due(2023, 2).IsZero(), "previous year")
}

func TestDueInMonth_RetroactiveStart(t *testing.T) {
	// recorded mid-flight: on installment 5 of 12 since March 2024
	o := models.Obligation{
		TotalInstallments:  12,
		InstallmentAmount:  decimal.NewFromInt(50),
		CurrentInstallment: 5,
		StartYear:          2024,
		StartMonth:         2,
	}

	// installments 1-4 are already paid; their months contribute nothing
	require.True(t, DueInMonth(o, 2024, 2).IsZero())
	require.True(t, DueInMonth(o, 2024, 5).IsZero())

	// installment 5 falls in July 2024
	require.True(t, DueInMonth(o, 2024, 6).Equal(decimal.NewFromInt(50)))
	// installment 12 falls in February 2025
	require.True(t, DueInMonth(o, 2025, 1).Equal(decimal.NewFromInt(50)))
	// March 2025 is past the schedule
	require.True(t, DueInMonth(o, 2025, 2).IsZero())
}

func TestDueInMonth_YearBoundary(t *testing.T) {
	o := models.Obligation{
		TotalInstallments:  4,
		InstallmentAmount:  decimal.NewFromInt(10),
		CurrentInstallment: 1,
		StartYear:          2024,
		StartMonth:         10, // November
	}

	require.Equal(t, 3, InstallmentNumber(o, 2025, 0))
	require.True(t, DueInMonth(o, 2025, 1).Equal(decimal.NewFromInt(10)), "February 2025, installment 4")
	require.True(t, DueInMonth(o, 2025, 2).IsZero())
}

func TestAdvance_ReachesPaidAndStops(t *testing.T) {
	o := marchObligation()
	const n = 3

	for i := 0; i < n; i++ {
		require.False(t, Paid(o))
		Advance(&o)
	}
	require.Equal(t, n+1, o.CurrentInstallment)
	require.True(t, Paid(o))

	Advance(&o)
	require.Equal(t, n+1, o.CurrentInstallment, "advance on a paid obligation is a no-op")
}

func TestRemainingBalance(t *testing.T) {
	o := marchObligation()
	require.True(t, RemainingBalance(o).Equal(decimal.NewFromInt(300)))

	Advance(&o)
	require.True(t, RemainingBalance(o).Equal(decimal.NewFromInt(200)))

	Advance(&o)
	Advance(&o)
	require.True(t, Paid(o))
	require.True(t, RemainingBalance(o).IsZero())
}
