// Package cli implements the interactive finvault shell: the login and
// PIN gate, the month-keyed ledger commands, installment tracking, and
// the report, export and import commands.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/auratech/finvault/internal/config"
	"github.com/auratech/finvault/internal/ledger"
	"github.com/auratech/finvault/internal/logging"
	"github.com/auratech/finvault/internal/models"
	"github.com/auratech/finvault/internal/services"
	"github.com/auratech/finvault/internal/storage"

	_ "modernc.org/sqlite"
)

// App holds the interactive session state: who is logged in, the PIN the
// vault was unlocked with, the in-memory ledger, and the month all entry
// commands operate on. One App per process; there are no globals.
type App struct {
	config      *config.Config
	log         logging.Logger
	authService services.AuthService
	vaultSvc    services.VaultService
	rateSvc     services.RateService

	led    *ledger.Ledger
	email  string
	pin    string
	year   int
	month0 int // 0-based, January = 0

	reader *bufio.Reader
	now    func() time.Time
}

// NewApp opens the local store at the configured DSN and wires the
// services. The returned cleanup closes the database.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, func(), error) {
	db, repos, err := storage.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, nil, err
	}
	cleanup := func() { _ = db.Close() }

	a := &App{
		config:      c,
		log:         log,
		authService: services.NewAuthService(repos.Credentials, repos.Metadata),
		vaultSvc:    services.NewVaultService(repos.Vault, nil),
		rateSvc:     services.NewRateService(repos.Indicators, nil, c.RateURL, c.RateCacheTTL, log),
		reader:      bufio.NewReader(os.Stdin),
		now:         time.Now,
	}
	a.setCurrentMonth()
	return a, cleanup, nil
}

func (a *App) setCurrentMonth() {
	t := a.now()
	a.year = t.Year()
	a.month0 = int(t.Month()) - 1
}

func (a *App) isLoggedIn() bool {
	return a.email != ""
}

// isUnlocked reports whether the PIN gate has been passed and the ledger
// is loaded.
func (a *App) isUnlocked() bool {
	return a.led != nil
}

// monthKey is the bucket key of the currently selected month.
func (a *App) monthKey() string {
	return models.MonthKey(a.year, a.month0)
}

// persist appends an activity-log line and writes the dataset back to the
// vault under the current PIN. Every mutating command goes through here so
// the store never lags the in-memory state.
func (a *App) persist(ctx context.Context, action string) error {
	a.led.AppendHistory(action)
	if err := a.vaultSvc.Save(ctx, a.email, a.led.Dataset(), a.pin); err != nil {
		a.log.Error(ctx, "error saving vault", "error", err)
		return err
	}
	return nil
}

// lock drops the session-local secrets and ledger.
func (a *App) lock() {
	a.led = nil
	a.pin = ""
	a.email = ""
}

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	s := a.email
	if a.isUnlocked() {
		s = fmt.Sprintf("%s %s", s, a.monthKey())
	} else {
		s += " locked"
	}
	return fmt.Sprintf("(%s)", s)
}
