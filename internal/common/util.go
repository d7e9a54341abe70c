// Package common provides utility functions for working with
// random strings and secure memory wiping.
package common

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateRandByteArray returns size cryptographically random bytes.
// It panics if the system entropy source is unavailable, which is
// unrecoverable for an application that encrypts user data.
func GenerateRandByteArray(size int) []byte {
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return buf
}

// MakeRandHexString returns a hex string built from size random bytes
// (so the result is 2*size characters long). Used for credential salts.
func MakeRandHexString(size int) (string, error) {
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// WipeByteArray zeroes the buffer in place. Callers should wipe
// password and PIN buffers as soon as they are no longer needed.
func WipeByteArray(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
