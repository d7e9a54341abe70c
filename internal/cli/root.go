package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

// Run greets the user, offers an immediate login and hands control to the
// REPL. It returns when the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	fmt.Println("Welcome to finvault (type 'help' for commands)")

	// most sessions start with a login, so offer it up front
	_ = a.Login(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
