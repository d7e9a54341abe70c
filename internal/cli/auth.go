package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/auratech/finvault/internal/common"
	"github.com/auratech/finvault/internal/ledger"
	"github.com/auratech/finvault/internal/models"
)

// getSimpleText and getSecret are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getSecret = GetSecret

// Register prompts the user for an email and password and attempts to
// create a new account via the AuthService.
//
// On success it prints "Success!" and returns nil. The password byte slice
// is securely wiped before returning. Registering does not log in.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getSecret("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, email, string(password)); err != nil {
		if errors.Is(err, common.ErrDuplicateUser) {
			fmt.Println("An account with that email already exists.")
			return err
		}
		a.log.Error(ctx, "registration failed", "error", err)
		return err
	}

	fmt.Println("Success! Now log in.")
	return nil
}

// Login prompts for credentials and authenticates against the local
// store. A successful login starts the session but does not unlock the
// vault; the PIN gate follows immediately.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getSecret("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	session, err := a.authService.Login(ctx, email, string(password))
	if err != nil {
		switch {
		case errors.Is(err, common.ErrWrongPassword):
			fmt.Println("Wrong password.")
		case errors.Is(err, common.ErrUserNotFound):
			fmt.Println("No account with that email. Use 'register' first.")
		default:
			a.log.Error(ctx, "login failed", "error", err)
		}
		return err
	}

	a.email = session.Email
	return a.Unlock(ctx)
}

// LoginGoogle runs the offline Google sign-in placeholder and goes
// straight to the PIN gate.
func (a *App) LoginGoogle(ctx context.Context) error {
	session, err := a.authService.LoginGoogle(ctx)
	if err != nil {
		a.log.Error(ctx, "google login failed", "error", err)
		return err
	}
	a.email = session.Email
	fmt.Printf("Signed in as %s\n", session.Email)
	return a.Unlock(ctx)
}

// Unlock runs the PIN gate and loads the vault into memory.
//
// With no PIN on record the first PIN of sufficient length is accepted and
// becomes the stored PIN; with one on record the typed PIN must match.
// After the gate passes, the dataset is decrypted with the same PIN. A
// fresh account with no stored dataset starts from an empty one.
func (a *App) Unlock(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Log in first.")
		return common.ErrNoSession
	}

	pin, err := getSecret("Enter PIN", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pin)

	ok, err := a.authService.VerifyPin(ctx, string(pin))
	if err != nil {
		a.log.Error(ctx, "pin check failed", "error", err)
		return err
	}
	if !ok {
		fmt.Println("Wrong PIN.")
		return nil
	}

	ds, err := a.vaultSvc.Load(ctx, a.email, string(pin))
	switch {
	case errors.Is(err, common.ErrNotFound):
		ds = models.NewDataset()
	case errors.Is(err, common.ErrWrongPassphrase):
		// stored data was sealed with a different PIN than the gate accepts
		fmt.Println("Stored data cannot be decrypted with this PIN.")
		return err
	case err != nil:
		a.log.Error(ctx, "error loading vault", "error", err)
		return err
	}

	a.pin = string(pin)
	a.led = ledger.New(ds)
	a.setCurrentMonth()
	fmt.Println("Vault unlocked.")
	return nil
}

// SetPin changes the PIN and re-seals the vault with it.
func (a *App) SetPin(ctx context.Context) error {
	if !a.isUnlocked() {
		fmt.Println("Unlock the vault first.")
		return common.ErrNoSession
	}

	pin, err := getSecret("Enter new PIN", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pin)

	if err := a.authService.SetPin(ctx, string(pin)); err != nil {
		if errors.Is(err, common.ErrPinTooShort) {
			fmt.Println("PIN too short.")
			return err
		}
		a.log.Error(ctx, "error setting pin", "error", err)
		return err
	}

	a.pin = string(pin)
	if err := a.persist(ctx, "cambio de PIN"); err != nil {
		return err
	}
	fmt.Println("PIN updated.")
	return nil
}

// Biometric marks the account as biometric-enabled. Purely a stored flag;
// there is no hardware integration.
func (a *App) Biometric(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Log in first.")
		return common.ErrNoSession
	}
	if err := a.authService.EnableBiometric(ctx); err != nil {
		a.log.Error(ctx, "error enabling biometric flag", "error", err)
		return err
	}
	fmt.Println("Biometric unlock enabled.")
	return nil
}

// Logout saves the dataset, clears the session and locks the ledger.
// Stored credentials and vault data survive.
func (a *App) Logout(ctx context.Context) error {
	if a.isUnlocked() {
		if err := a.persist(ctx, "cierre de sesión"); err != nil {
			return err
		}
	}
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.lock()
	fmt.Println("Logged out.")
	return nil
}
