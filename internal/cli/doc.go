// Package cli is the interactive shell of finvault.
//
// Session flow
//
//  1. register / login / google — credential gate (local accounts).
//  2. pin — PIN gate; on first use the typed PIN becomes the stored PIN.
//     Passing the gate decrypts the vault into an in-memory ledger.
//  3. ledger commands (add, list, card, pay, report, ...) operate on the
//     working month and save the vault after every mutation.
//  4. logout — saves, clears the session and locks the ledger.
//
// All state lives on the App value; constructing two Apps gives two
// independent sessions over the same store.
package cli
