// Package ledger implements the in-memory financial ledger: CRUD over the
// month-keyed and flat collections of a dataset, currency conversion,
// budget reads and the capped activity history.
package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/auratech/finvault/internal/common"
	"github.com/auratech/finvault/internal/models"
)

// Collection identifies one of the month-keyed entry collections.
type Collection string

const (
	Income           Collection = "income"
	FixedExpenses    Collection = "fixed"
	VariableExpenses Collection = "variable"
)

// GoalCollection identifies one of the month-keyed goal collections.
type GoalCollection string

const (
	Goals   GoalCollection = "goals"
	Savings GoalCollection = "savings"
)

// Ledger wraps one user's dataset. It is not safe for concurrent use;
// there is exactly one logical writer (the active session).
type Ledger struct {
	ds  *models.Dataset
	now func() time.Time
}

// New returns a Ledger over ds. The dataset is normalized so month buckets
// can be created lazily without nil-map panics.
func New(ds *models.Dataset) *Ledger {
	ds.Normalize()
	return &Ledger{ds: ds, now: time.Now}
}

// Dataset returns the underlying dataset.
func (l *Ledger) Dataset() *models.Dataset { return l.ds }

func (l *Ledger) bucket(c Collection) map[string][]models.Entry {
	switch c {
	case Income:
		return l.ds.Income
	case FixedExpenses:
		return l.ds.FixedExpenses
	default:
		return l.ds.VariableExpenses
	}
}

func (l *Ledger) goalBucket(c GoalCollection) map[string][]models.GoalEntry {
	if c == Goals {
		return l.ds.Goals
	}
	return l.ds.Savings
}

// AddEntry appends e to the given collection under monthKey, creating the
// bucket if absent, and returns the new entry's index.
func (l *Ledger) AddEntry(c Collection, monthKey string, e models.Entry) int {
	b := l.bucket(c)
	b[monthKey] = append(b[monthKey], e)
	return len(b[monthKey]) - 1
}

// EditEntry replaces the entry at index in place. Indices shift on delete,
// so callers must not reuse indices across mutations.
func (l *Ledger) EditEntry(c Collection, monthKey string, index int, e models.Entry) error {
	b := l.bucket(c)
	seq := b[monthKey]
	if index < 0 || index >= len(seq) {
		return fmt.Errorf("%s[%s][%d]: %w", c, monthKey, index, common.ErrIndexOutOfRange)
	}
	seq[index] = e
	return nil
}

// DeleteEntry removes the entry at index; subsequent indices shift down.
func (l *Ledger) DeleteEntry(c Collection, monthKey string, index int) error {
	b := l.bucket(c)
	seq := b[monthKey]
	if index < 0 || index >= len(seq) {
		return fmt.Errorf("%s[%s][%d]: %w", c, monthKey, index, common.ErrIndexOutOfRange)
	}
	b[monthKey] = append(seq[:index], seq[index+1:]...)
	return nil
}

// Entries returns the sequence stored under monthKey; missing keys read
// as empty.
func (l *Ledger) Entries(c Collection, monthKey string) []models.Entry {
	return l.bucket(c)[monthKey]
}

// AddGoal appends g to the goals or savings collection and returns its index.
func (l *Ledger) AddGoal(c GoalCollection, monthKey string, g models.GoalEntry) int {
	b := l.goalBucket(c)
	b[monthKey] = append(b[monthKey], g)
	return len(b[monthKey]) - 1
}

// EditGoal replaces the goal entry at index in place.
func (l *Ledger) EditGoal(c GoalCollection, monthKey string, index int, g models.GoalEntry) error {
	b := l.goalBucket(c)
	seq := b[monthKey]
	if index < 0 || index >= len(seq) {
		return fmt.Errorf("%s[%s][%d]: %w", c, monthKey, index, common.ErrIndexOutOfRange)
	}
	seq[index] = g
	return nil
}

// DeleteGoal removes the goal entry at index.
func (l *Ledger) DeleteGoal(c GoalCollection, monthKey string, index int) error {
	b := l.goalBucket(c)
	seq := b[monthKey]
	if index < 0 || index >= len(seq) {
		return fmt.Errorf("%s[%s][%d]: %w", c, monthKey, index, common.ErrIndexOutOfRange)
	}
	b[monthKey] = append(seq[:index], seq[index+1:]...)
	return nil
}

// Goals returns the goal sequence under monthKey.
func (l *Ledger) Goals(c GoalCollection, monthKey string) []models.GoalEntry {
	return l.goalBucket(c)[monthKey]
}

// ConvertToBase converts amount to the base currency (ARS). USD amounts are
// multiplied by the dataset exchange rate; base-currency amounts pass
// through unchanged.
func (l *Ledger) ConvertToBase(amount decimal.Decimal, currency string) decimal.Decimal {
	if currency == models.CurrencyUSD {
		return amount.Mul(l.ds.ExchangeRate)
	}
	return amount
}

// SetExchangeRate updates the ARS-per-USD rate. Non-positive rates are
// rejected so conversion can never zero out amounts.
func (l *Ledger) SetExchangeRate(rate decimal.Decimal) error {
	if !rate.IsPositive() {
		return fmt.Errorf("exchange rate %s: %w", rate, common.ErrInvalidAmount)
	}
	l.ds.ExchangeRate = rate
	return nil
}

// SetBudget sets the spending limit for a category in the given month,
// creating the month's budget map lazily.
func (l *Ledger) SetBudget(monthKey, category string, limit decimal.Decimal) {
	if l.ds.Budgets[monthKey] == nil {
		l.ds.Budgets[monthKey] = map[string]decimal.Decimal{}
	}
	l.ds.Budgets[monthKey][category] = limit
}

// Budget returns the configured limit and whether one exists.
func (l *Ledger) Budget(monthKey, category string) (decimal.Decimal, bool) {
	limit, ok := l.ds.Budgets[monthKey][category]
	return limit, ok
}

// OverBudget reports whether spent exceeds the category limit for the
// month. It is a derived read-time signal; nothing is stored. Months or
// categories without a limit are never over budget.
func (l *Ledger) OverBudget(monthKey, category string, spent decimal.Decimal) bool {
	limit, ok := l.Budget(monthKey, category)
	return ok && spent.GreaterThan(limit)
}

// AppendHistory prepends a timestamped activity line and truncates the log
// to the most recent entries. Dropping old entries is silent, not an error.
func (l *Ledger) AppendHistory(text string) {
	entry := models.HistoryEntry{At: l.now(), Text: text}
	l.ds.History = append([]models.HistoryEntry{entry}, l.ds.History...)
	if len(l.ds.History) > models.HistoryLimit {
		l.ds.History = l.ds.History[:models.HistoryLimit]
	}
}
