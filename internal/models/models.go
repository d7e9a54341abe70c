// Package models defines the persisted data types of finvault: credentials,
// sessions, and the per-user financial dataset the vault encrypts.
package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Currency codes supported by the dataset. ARS is the base currency all
// aggregates are expressed in; USD is the single foreign currency,
// converted through Dataset.ExchangeRate.
const (
	CurrencyARS = "ARS"
	CurrencyUSD = "USD"
)

// DefaultExchangeRate is the ARS-per-USD rate a fresh dataset starts with.
var DefaultExchangeRate = decimal.NewFromInt(1350)

// HistoryLimit caps the activity log; older entries are dropped silently.
const HistoryLimit = 50

// Credential is the local account record for one user. PasswordHash and
// PinHash are salted hashes; the plaintext secrets are never stored.
// PinHash is empty until the user sets (or bootstraps) a PIN.
type Credential struct {
	Email        string
	Salt         string
	PasswordHash string
	PinHash      string
	Biometric    bool
}

// Session providers.
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// Session records the single active login. It is overwritten on each
// successful login and cleared on logout.
type Session struct {
	Email     string    `json:"email"`
	StartedAt time.Time `json:"startedAt"`
	Provider  string    `json:"provider"`
}

// Entry is one dated financial record in a month bucket (income, fixed
// expense or variable expense).
type Entry struct {
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Color    string          `json:"color,omitempty"`
	Currency string          `json:"currency"`
}

// GoalEntry is one record in the goals or savings collections.
type GoalEntry struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// Obligation is a card consumption or loan paid off in monthly
// installments. CurrentInstallment is 1-based; a value greater than
// TotalInstallments means the obligation is fully paid.
type Obligation struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Issuer             string          `json:"issuer"`
	TotalInstallments  int             `json:"totalInstallments"`
	InstallmentAmount  decimal.Decimal `json:"installmentAmount"`
	CurrentInstallment int             `json:"currentInstallment"`
	StartYear          int             `json:"startYear"`
	StartMonth         int             `json:"startMonth"` // 0-based, January = 0
}

// HistoryEntry is one line of the activity log, most recent first.
type HistoryEntry struct {
	At   time.Time `json:"at"`
	Text string    `json:"text"`
}

// Dataset is the root aggregate of one user's financial data. Month-keyed
// maps are created lazily on first write; missing keys read as empty.
// JSON is the canonical serialization: it is what gets encrypted at rest
// and what export/import exchange.
type Dataset struct {
	Income           map[string][]Entry                    `json:"income"`
	FixedExpenses    map[string][]Entry                    `json:"fixedExpenses"`
	VariableExpenses map[string][]Entry                    `json:"variableExpenses"`
	Cards            []Obligation                          `json:"cards"`
	Loans            []Obligation                          `json:"loans"`
	Goals            map[string][]GoalEntry                `json:"goals"`
	Savings          map[string][]GoalEntry                `json:"savings"`
	Budgets          map[string]map[string]decimal.Decimal `json:"budgets"`
	History          []HistoryEntry                        `json:"history"`
	ExchangeRate     decimal.Decimal                       `json:"exchangeRate"`
}

// NewDataset returns an empty dataset with all collections initialized and
// the default exchange rate applied.
func NewDataset() *Dataset {
	return &Dataset{
		Income:           map[string][]Entry{},
		FixedExpenses:    map[string][]Entry{},
		VariableExpenses: map[string][]Entry{},
		Cards:            []Obligation{},
		Loans:            []Obligation{},
		Goals:            map[string][]GoalEntry{},
		Savings:          map[string][]GoalEntry{},
		Budgets:          map[string]map[string]decimal.Decimal{},
		History:          []HistoryEntry{},
		ExchangeRate:     DefaultExchangeRate,
	}
}

// Normalize repairs a dataset decoded from storage or import: nil maps are
// replaced with empty ones and a non-positive exchange rate falls back to
// the default, so callers never hit nil-map writes.
func (d *Dataset) Normalize() {
	if d.Income == nil {
		d.Income = map[string][]Entry{}
	}
	if d.FixedExpenses == nil {
		d.FixedExpenses = map[string][]Entry{}
	}
	if d.VariableExpenses == nil {
		d.VariableExpenses = map[string][]Entry{}
	}
	if d.Goals == nil {
		d.Goals = map[string][]GoalEntry{}
	}
	if d.Savings == nil {
		d.Savings = map[string][]GoalEntry{}
	}
	if d.Budgets == nil {
		d.Budgets = map[string]map[string]decimal.Decimal{}
	}
	if !d.ExchangeRate.IsPositive() {
		d.ExchangeRate = DefaultExchangeRate
	}
}

// MonthKey returns the canonical bucket key for (year, month0), with month0
// 0-based: MonthKey(2024, 2) == "2024-2" for March 2024. All month-scoped
// reads and writes go through this key, never through raw date comparison.
func MonthKey(year, month0 int) string {
	return fmt.Sprintf("%d-%d", year, month0)
}
