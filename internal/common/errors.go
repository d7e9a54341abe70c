// Package common defines shared constants and sentinel errors used across
// finvault components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Credential / session errors.
	ErrDuplicateUser = errors.New("user already exists")
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("wrong password")
	ErrNoSession     = errors.New("no active session")
	ErrPinTooShort   = errors.New("pin too short")

	// Encrypted store errors.
	ErrWrongPassphrase = errors.New("wrong passphrase")
	ErrCorruptData     = errors.New("corrupt data")
	ErrStorageWrite    = errors.New("storage write failed")

	// Ledger errors. ErrIndexOutOfRange indicates stale index bookkeeping
	// in the caller; the CLI treats it as fatal rather than recoverable.
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidAmount   = errors.New("invalid amount")

	// External indicator errors.
	ErrFetch = errors.New("fetch failed")

	// Dataset import errors.
	ErrImportParse = errors.New("import parse failed")
)
