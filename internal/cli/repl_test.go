package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool
	unlocked bool

	calls []string
	args  []string
}

func (f *fakeExec) record(name, arg string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, arg)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) isUnlocked() bool { return f.unlocked }
func (f *fakeExec) Register(ctx context.Context) error { return f.record("register", "") }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login", "")
}
func (f *fakeExec) LoginGoogle(ctx context.Context) error {
	f.loggedIn = true
	return f.record("google", "")
}
func (f *fakeExec) Unlock(ctx context.Context) error {
	f.unlocked = true
	return f.record("pin", "")
}
func (f *fakeExec) SetPin(ctx context.Context) error    { return f.record("setpin", "") }
func (f *fakeExec) Biometric(ctx context.Context) error { return f.record("biometric", "") }
func (f *fakeExec) AddEntry(ctx context.Context, c string) error {
	return f.record("add", c)
}
func (f *fakeExec) List(ctx context.Context) error { return f.record("list", "") }
func (f *fakeExec) EditEntry(ctx context.Context, c string) error {
	return f.record("edit", c)
}
func (f *fakeExec) DeleteEntry(ctx context.Context, c string) error {
	return f.record("del", c)
}
func (f *fakeExec) SelectMonth(ctx context.Context) error     { return f.record("month", "") }
func (f *fakeExec) AddCard(ctx context.Context) error         { return f.record("card", "") }
func (f *fakeExec) AddLoan(ctx context.Context) error         { return f.record("loan", "") }
func (f *fakeExec) ListObligations(ctx context.Context) error { return f.record("obligations", "") }
func (f *fakeExec) PayInstallment(ctx context.Context, g string) error {
	return f.record("pay", g)
}
func (f *fakeExec) AddGoal(ctx context.Context, c string) error {
	return f.record("goal", c)
}
func (f *fakeExec) ListGoals(ctx context.Context) error { return f.record("goals", "") }
func (f *fakeExec) DeleteGoal(ctx context.Context, c string) error {
	return f.record("delgoal", c)
}
func (f *fakeExec) SetBudget(ctx context.Context) error { return f.record("budget", "") }
func (f *fakeExec) Report(ctx context.Context) error    { return f.record("report", "") }
func (f *fakeExec) History(ctx context.Context) error   { return f.record("history", "") }
func (f *fakeExec) Rate(ctx context.Context) error      { return f.record("rate", "") }
func (f *fakeExec) Project(ctx context.Context) error   { return f.record("project", "") }
func (f *fakeExec) Export(ctx context.Context) error    { return f.record("export", "") }
func (f *fakeExec) Import(ctx context.Context) error    { return f.record("import", "") }
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	f.unlocked = false
	return f.record("logout", "")
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"pin",
		"help",
		"add income",
		"list",
		"pay card",
		"report",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "pin", "add", "list", "pay", "report"}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_SubcommandArgsPassedThrough(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("add variable\ndel fixed\npay loan\ngoal saving\nexit\n")
	exec := &fakeExec{loggedIn: true, unlocked: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	want := []string{"variable", "fixed", "loan", "saving"}
	if len(exec.args) != len(want) {
		t.Fatalf("unexpected args: %v", exec.args)
	}
	for i, a := range want {
		if exec.args[i] != a {
			t.Fatalf("arg %d: got %q, want %q", i, exec.args[i], a)
		}
	}
}

func TestRunREPL_LedgerCommandsGatedByUnlock(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("add income\nlist\nreport\nquit\n")
	exec := &fakeExec{loggedIn: true, unlocked: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("locked session must not reach ledger handlers, got %v", exec.calls)
	}
}
