package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/term"

	"github.com/auratech/finvault/internal/ledger"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetSecret prints a prompt to w and reads a secret from the user's
// terminal without echo. A newline is printed after the read to keep the
// UI tidy. Used for both passwords and PINs.
//
// The returned byte slice should be wiped by the caller when no longer needed.
func GetSecret(prompt string, w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return nil, err
	}
	secret, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return secret, nil
}

// GetAmount prompts for a monetary amount and parses it in es-AR form
// ("1.234,56"); currency symbols and spaces are ignored.
func GetAmount(reader *bufio.Reader, prompt string, w io.Writer) (decimal.Decimal, error) {
	raw, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return decimal.Zero, err
	}
	return ledger.ParseAmount(raw)
}

// GetInt prompts for an integer.
func GetInt(reader *bufio.Reader, prompt string, w io.Writer) (int, error) {
	raw, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", raw)
	}
	return n, nil
}
