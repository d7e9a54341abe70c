// Package cryptox implements the cryptographic primitives behind the
// encrypted vault: passphrase-to-key derivation, AES-GCM sealing of
// serialized datasets, and the salted hashing used for credentials.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/argon2"
)

const nonceSize = 12

// ErrCiphertextTooShort is returned by Open for blobs shorter than a nonce.
var ErrCiphertextTooShort = errors.New("ciphertext too short")

// KeyDeriver turns a user passphrase into a symmetric key. The vault keeps
// the historical direct-use behavior (DirectDeriver); a hardened derivation
// (Argon2Deriver) can be substituted without changing call sites, at the
// cost of breaking compatibility with previously written blobs.
type KeyDeriver interface {
	Derive(passphrase, salt []byte) []byte
}

// DirectDeriver hashes the passphrase once with SHA-256 to obtain an
// AES-256 key. The salt is ignored. This mirrors the legacy behavior of
// using the PIN directly as the encryption passphrase: no stretching, no
// per-user salt, so a short numeric PIN is brute-forceable offline.
type DirectDeriver struct{}

func (DirectDeriver) Derive(passphrase, _ []byte) []byte {
	h := sha256.Sum256(passphrase)
	return h[:]
}

// Argon2Deriver derives an AES-256 key with argon2id. Not wired as the
// default: switching breaks decryption of blobs written by DirectDeriver.
type Argon2Deriver struct{}

func (Argon2Deriver) Derive(passphrase, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, 1, 64*1024, 4, 32)
}

// Seal encrypts plaintext with AES-256-GCM under key and returns
// nonce||ciphertext. A fresh random 12-byte nonce is generated per call,
// so two seals of the same plaintext produce different blobs.
func Seal(plaintext, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	return aesgcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Open decrypts a blob produced by Seal. A wrong key fails GCM
// authentication and returns an error; it can never yield garbage
// plaintext that parses as a valid dataset.
func Open(blob, key []byte) ([]byte, error) {
	if len(blob) < nonceSize {
		return nil, ErrCiphertextTooShort
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return aesgcm.Open(nil, blob[:nonceSize], blob[nonceSize:], nil)
}

// HashSecret returns hex(sha256(secret+salt)). Credentials store password
// and PIN hashes in this form, never the plaintext equivalents.
func HashSecret(secret, salt string) string {
	h := sha256.Sum256([]byte(secret + salt))
	return hex.EncodeToString(h[:])
}
