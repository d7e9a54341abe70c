package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isUnlocked() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	LoginGoogle(ctx context.Context) error
	Unlock(ctx context.Context) error
	SetPin(ctx context.Context) error
	Biometric(ctx context.Context) error
	AddEntry(ctx context.Context, collection string) error
	List(ctx context.Context) error
	EditEntry(ctx context.Context, collection string) error
	DeleteEntry(ctx context.Context, collection string) error
	SelectMonth(ctx context.Context) error
	AddCard(ctx context.Context) error
	AddLoan(ctx context.Context) error
	ListObligations(ctx context.Context) error
	PayInstallment(ctx context.Context, group string) error
	AddGoal(ctx context.Context, collection string) error
	ListGoals(ctx context.Context) error
	DeleteGoal(ctx context.Context, collection string) error
	SetBudget(ctx context.Context) error
	Report(ctx context.Context) error
	History(ctx context.Context) error
	Rate(ctx context.Context) error
	Project(ctx context.Context) error
	Export(ctx context.Context) error
	Import(ctx context.Context) error
	Logout(ctx context.Context) error
}

const helpLoggedOut = "Available commands: register, login, google, exit"
const helpLocked = "Available commands: pin, logout, exit"
const helpUnlocked = `Available commands:
  month                      select working month
  add income|fixed|variable  add an entry to the working month
  list                       list the month's entries
  edit income|fixed|variable edit an entry
  del income|fixed|variable  delete an entry
  card | loan                register an installment obligation
  obligations                list cards and loans
  pay card|loan              advance an obligation one installment
  goal goal|saving           add a goal or saving record
  goals                      list goals and savings
  delgoal goal|saving        delete a goal or saving record
  budget                     set a category budget for the month
  report                     category totals, installments due, balances
  history                    activity log
  rate                       refresh the ARS/USD rate
  project                    fixed-term deposit projection
  export | import            snapshot to/from a JSON file
  setpin | biometric         PIN and unlock settings
  logout | exit`

// needsUnlock lists the commands that operate on the in-memory ledger and
// therefore require the PIN gate to have been passed.
var needsUnlock = map[string]bool{
	"month": true, "add": true, "l": true, "list": true, "edit": true,
	"del": true, "card": true, "loan": true, "obligations": true,
	"pay": true, "goal": true, "goals": true, "delgoal": true,
	"budget": true, "report": true, "history": true, "rate": true,
	"export": true, "import": true, "setpin": true,
}

// runREPL starts the read–eval–print loop for the finvault CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("fv %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		arg := func() string {
			if len(args) > 0 {
				return args[0]
			}
			return ""
		}

		if needsUnlock[cmd] && !a.isUnlocked() {
			printlnFn("Unlock the vault first (login, then pin).")
			continue
		}

		switch cmd {
		case "help":
			switch {
			case !a.isLoggedIn():
				printlnFn(helpLoggedOut)
			case !a.isUnlocked():
				printlnFn(helpLocked)
			default:
				printlnFn(helpUnlocked)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "google":
			_ = a.LoginGoogle(ctx)

		case "pin":
			_ = a.Unlock(ctx)

		case "setpin":
			_ = a.SetPin(ctx)

		case "biometric":
			_ = a.Biometric(ctx)

		case "month":
			_ = a.SelectMonth(ctx)

		case "add":
			_ = a.AddEntry(ctx, arg())

		case "l", "list":
			_ = a.List(ctx)

		case "edit":
			_ = a.EditEntry(ctx, arg())

		case "del":
			_ = a.DeleteEntry(ctx, arg())

		case "card":
			_ = a.AddCard(ctx)

		case "loan":
			_ = a.AddLoan(ctx)

		case "obligations":
			_ = a.ListObligations(ctx)

		case "pay":
			_ = a.PayInstallment(ctx, arg())

		case "goal":
			_ = a.AddGoal(ctx, arg())

		case "goals":
			_ = a.ListGoals(ctx)

		case "delgoal":
			_ = a.DeleteGoal(ctx, arg())

		case "budget":
			_ = a.SetBudget(ctx)

		case "report":
			_ = a.Report(ctx)

		case "history":
			_ = a.History(ctx)

		case "rate":
			_ = a.Rate(ctx)

		case "project":
			_ = a.Project(ctx)

		case "export":
			_ = a.Export(ctx)

		case "import":
			_ = a.Import(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
