package ledger

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/auratech/finvault/internal/common"
	"github.com/auratech/finvault/internal/models"
)

func newLedger(t *testing.T) *Ledger {
	t.Helper()
	return New(models.NewDataset())
}

func entry(name string, amount int64) models.Entry {
	return models.Entry{Name: name, Amount: decimal.NewFromInt(amount), Category: "Otros", Currency: models.CurrencyARS}
}

func TestAddEntry_LazyBucketAndIndex(t *testing.T) {
	l := newLedger(t)
	key := models.MonthKey(2024, 2)

	require.Empty(t, l.Entries(Income, key))

	require.Equal(t, 0, l.AddEntry(Income, key, entry("Sueldo", 100)))
	require.Equal(t, 1, l.AddEntry(Income, key, entry("Freelance", 50)))
	require.Len(t, l.Entries(Income, key), 2)
}

func TestEditEntry_ReplacesInPlace(t *testing.T) {
	l := newLedger(t)
	key := models.MonthKey(2024, 2)
	l.AddEntry(VariableExpenses, key, entry("Cine", 10))

	require.NoError(t, l.EditEntry(VariableExpenses, key, 0, entry("Teatro", 20)))
	got := l.Entries(VariableExpenses, key)
	require.Equal(t, "Teatro", got[0].Name)
	require.True(t, got[0].Amount.Equal(decimal.NewFromInt(20)))
}

func TestEditEntry_BadIndex(t *testing.T) {
	l := newLedger(t)
	key := models.MonthKey(2024, 2)

	err := l.EditEntry(Income, key, 0, entry("x", 1))
	require.ErrorIs(t, err, common.ErrIndexOutOfRange)

	l.AddEntry(Income, key, entry("a", 1))
	require.ErrorIs(t, l.EditEntry(Income, key, -1, entry("x", 1)), common.ErrIndexOutOfRange)
	require.ErrorIs(t, l.EditEntry(Income, key, 1, entry("x", 1)), common.ErrIndexOutOfRange)
}

func TestDeleteEntry_ShiftsIndices(t *testing.T) {
	l := newLedger(t)
	key := models.MonthKey(2024, 2)
	l.AddEntry(FixedExpenses, key, entry("a", 1))
	l.AddEntry(FixedExpenses, key, entry("b", 2))
	l.AddEntry(FixedExpenses, key, entry("c", 3))

	require.NoError(t, l.DeleteEntry(FixedExpenses, key, 1))

	got := l.Entries(FixedExpenses, key)
	require.Len(t, got, 2)
	require.Equal(t, "a", got[0].Name)
	require.Equal(t, "c", got[1].Name)

	require.ErrorIs(t, l.DeleteEntry(FixedExpenses, key, 2), common.ErrIndexOutOfRange)
}

func TestGoals_CRUD(t *testing.T) {
	l := newLedger(t)
	key := models.MonthKey(2025, 0)

	idx := l.AddGoal(Savings, key, models.GoalEntry{Name: "Vacaciones", Amount: decimal.NewFromInt(500)})
	require.Equal(t, 0, idx)

	require.NoError(t, l.EditGoal(Savings, key, 0, models.GoalEntry{Name: "Auto", Amount: decimal.NewFromInt(900)}))
	require.Equal(t, "Auto", l.Goals(Savings, key)[0].Name)

	require.NoError(t, l.DeleteGoal(Savings, key, 0))
	require.Empty(t, l.Goals(Savings, key))
	require.ErrorIs(t, l.DeleteGoal(Savings, key, 0), common.ErrIndexOutOfRange)
}

func TestConvertToBase(t *testing.T) {
	l := newLedger(t)
	require.NoError(t, l.SetExchangeRate(decimal.NewFromInt(1000)))

	usd := l.ConvertToBase(decimal.NewFromInt(100), models.CurrencyUSD)
	require.True(t, usd.Equal(decimal.NewFromInt(100000)))

	ars := l.ConvertToBase(decimal.NewFromInt(100), models.CurrencyARS)
	require.True(t, ars.Equal(decimal.NewFromInt(100)))
}

func TestSetExchangeRate_RejectsNonPositive(t *testing.T) {
	l := newLedger(t)
	require.ErrorIs(t, l.SetExchangeRate(decimal.Zero), common.ErrInvalidAmount)
	require.ErrorIs(t, l.SetExchangeRate(decimal.NewFromInt(-1)), common.ErrInvalidAmount)
}

func TestBudgets_DerivedSignal(t *testing.T) {
	l := newLedger(t)
	key := models.MonthKey(2024, 5)

	_, ok := l.Budget(key, "Alimentación")
	require.False(t, ok)
	require.False(t, l.OverBudget(key, "Alimentación", decimal.NewFromInt(999)))

	l.SetBudget(key, "Alimentación", decimal.NewFromInt(100))
	require.False(t, l.OverBudget(key, "Alimentación", decimal.NewFromInt(100)))
	require.True(t, l.OverBudget(key, "Alimentación", decimal.NewFromInt(101)))
}

func TestAppendHistory_CapsAtLimit(t *testing.T) {
	l := newLedger(t)
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	i := 0
	l.now = func() time.Time { i++; return base.Add(time.Duration(i) * time.Minute) }

	for n := 0; n < 60; n++ {
		l.AppendHistory(fmt.Sprintf("event %d", n))
	}

	h := l.Dataset().History
	require.Len(t, h, models.HistoryLimit)
	require.Equal(t, "event 59", h[0].Text)
	require.Equal(t, "event 10", h[len(h)-1].Text)
	require.True(t, h[0].At.After(h[1].At))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"$ 1.234,56", "1234.56"},
		{"1234,56", "1234.56"},
		{"1.000", "1000"},
		{"-500,25", "-500.25"},
		{"42", "42"},
	}
	for _, tc := range tests {
		got, err := ParseAmount(tc.in)
		require.NoError(t, err, tc.in)
		require.True(t, got.Equal(decimal.RequireFromString(tc.want)), "%s -> %s", tc.in, got)
	}

	for _, bad := range []string{"", "abc", "$", "-", ","} {
		_, err := ParseAmount(bad)
		require.ErrorIs(t, err, common.ErrInvalidAmount, bad)
	}
}

func TestFormatARS(t *testing.T) {
	require.Equal(t, "$1.234,56", FormatARS(decimal.RequireFromString("1234.56")))
}

func TestInterest(t *testing.T) {
	capital := decimal.NewFromInt(1000)

	simple := SimpleInterest(capital, decimal.RequireFromString("0.12"), 12)
	require.True(t, simple.Equal(decimal.NewFromInt(1120)), "got %s", simple)

	compound := CompoundInterest(capital, decimal.RequireFromString("0.12"), 12)
	require.True(t, compound.GreaterThan(simple))

	monthly := MonthlyRateFromTNA(decimal.NewFromInt(75))
	require.True(t, monthly.GreaterThan(decimal.Zero))
	require.True(t, monthly.LessThan(decimal.RequireFromString("0.0625")))

	final, gain := ProjectReturn(capital, decimal.NewFromInt(75), 6, true)
	require.True(t, final.Sub(capital).Equal(gain))
	require.True(t, gain.GreaterThan(decimal.Zero))
}
