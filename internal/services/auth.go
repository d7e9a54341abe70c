// Package services contains the application services of finvault: the
// credential/PIN gate, the encrypted vault store, and the external
// exchange-rate lookup.
package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/auratech/finvault/internal/common"
	"github.com/auratech/finvault/internal/cryptox"
	"github.com/auratech/finvault/internal/models"
	"github.com/auratech/finvault/internal/repositories/credentials"
	"github.com/auratech/finvault/internal/repositories/metadata"
)

const (
	sessionKey       = "session"
	sessionSecretKey = "session_secret"

	// MinPinLength is the minimum accepted PIN length, both for explicit
	// setup and for the bootstrap-on-first-use path.
	MinPinLength = 4
)

// AuthService is the credential and PIN gate. All checks are local; there
// is deliberately no lockout or backoff on repeated wrong passwords or
// PINs (a known security gap of the product, kept as-is).
//
// Contract:
//   - Register creates an account but does not log in.
//   - Login overwrites any existing session.
//   - SetPin/VerifyPin require an active session.
//   - VerifyPin with no stored PIN accepts and persists the first PIN of
//     at least MinPinLength characters (bootstrap-on-first-use).
//   - Logout clears the session only; credentials and vault data survive.
type AuthService interface {
	Register(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) (*models.Session, error)
	LoginGoogle(ctx context.Context) (*models.Session, error)
	CurrentSession(ctx context.Context) (*models.Session, error)
	SetPin(ctx context.Context, pin string) error
	VerifyPin(ctx context.Context, pin string) (bool, error)
	HasPin(ctx context.Context) (bool, error)
	EnableBiometric(ctx context.Context) error
	Logout(ctx context.Context) error
}

type authService struct {
	creds credentials.Repository
	meta  metadata.Repository
	now   func() time.Time
}

// NewAuthService constructs an AuthService over the credential and
// metadata repositories.
func NewAuthService(creds credentials.Repository, meta metadata.Repository) AuthService {
	return &authService{creds: creds, meta: meta, now: time.Now}
}

// NormalizeEmail lowercases and trims an email; all credential and vault
// lookups use the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Register(ctx context.Context, email, password string) error {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return errors.New("email and password required")
	}

	salt, err := common.MakeRandHexString(8)
	if err != nil {
		return fmt.Errorf("salt generation error: %w", err)
	}

	c := &models.Credential{
		Email:        email,
		Salt:         salt,
		PasswordHash: cryptox.HashSecret(password, salt),
	}
	if err := s.creds.Create(ctx, c); err != nil {
		return err
	}
	return nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	email = NormalizeEmail(email)

	c, err := s.creds.GetByEmail(ctx, email)
	if errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("user %s: %w", email, common.ErrUserNotFound)
	}
	if err != nil {
		return nil, err
	}

	candidate := cryptox.HashSecret(password, c.Salt)
	if subtle.ConstantTimeCompare([]byte(candidate), []byte(c.PasswordHash)) == 0 {
		return nil, common.ErrWrongPassword
	}

	session := &models.Session{Email: email, StartedAt: s.now(), Provider: models.ProviderLocal}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// LoginGoogle is the offline placeholder for a Google sign-in: it mints a
// throwaway account and opens a session with provider "google".
func (s *authService) LoginGoogle(ctx context.Context) (*models.Session, error) {
	suffix, err := common.MakeRandHexString(3)
	if err != nil {
		return nil, err
	}
	email := fmt.Sprintf("google_user_%s@example.com", suffix)

	salt, err := common.MakeRandHexString(8)
	if err != nil {
		return nil, err
	}
	c := &models.Credential{Email: email, Salt: salt, PasswordHash: cryptox.HashSecret("oauth", salt)}
	if err := s.creds.Create(ctx, c); err != nil && !errors.Is(err, common.ErrDuplicateUser) {
		return nil, err
	}

	session := &models.Session{Email: email, StartedAt: s.now(), Provider: models.ProviderGoogle}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *authService) CurrentSession(ctx context.Context) (*models.Session, error) {
	raw, err := s.meta.Get(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, common.ErrNoSession
	}

	secret, err := s.signingSecret(ctx)
	if err != nil {
		return nil, err
	}

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(string(raw), claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		// a tampered or unreadable session record means no session
		return nil, fmt.Errorf("%w: %w", common.ErrNoSession, err)
	}

	session := &models.Session{}
	if sub, ok := claims["sub"].(string); ok {
		session.Email = sub
	}
	if provider, ok := claims["provider"].(string); ok {
		session.Provider = provider
	}
	if iat, ok := claims["iat"].(float64); ok {
		session.StartedAt = time.Unix(int64(iat), 0)
	}
	if session.Email == "" {
		return nil, common.ErrNoSession
	}
	return session, nil
}

func (s *authService) SetPin(ctx context.Context, pin string) error {
	session, err := s.CurrentSession(ctx)
	if err != nil {
		return err
	}
	if len(pin) < MinPinLength {
		return common.ErrPinTooShort
	}

	c, err := s.creds.GetByEmail(ctx, session.Email)
	if err != nil {
		return err
	}
	return s.creds.UpdatePin(ctx, session.Email, cryptox.HashSecret(pin, c.Salt))
}

func (s *authService) VerifyPin(ctx context.Context, pin string) (bool, error) {
	session, err := s.CurrentSession(ctx)
	if err != nil {
		return false, err
	}

	c, err := s.creds.GetByEmail(ctx, session.Email)
	if err != nil {
		return false, err
	}

	// Bootstrap-on-first-use: with no PIN stored, the first PIN of
	// sufficient length is accepted and becomes the stored PIN.
	if c.PinHash == "" {
		if len(pin) < MinPinLength {
			return false, nil
		}
		if err := s.creds.UpdatePin(ctx, session.Email, cryptox.HashSecret(pin, c.Salt)); err != nil {
			return false, err
		}
		return true, nil
	}

	candidate := cryptox.HashSecret(pin, c.Salt)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(c.PinHash)) == 1, nil
}

func (s *authService) HasPin(ctx context.Context) (bool, error) {
	session, err := s.CurrentSession(ctx)
	if err != nil {
		return false, err
	}
	c, err := s.creds.GetByEmail(ctx, session.Email)
	if err != nil {
		return false, err
	}
	return c.PinHash != "", nil
}

func (s *authService) EnableBiometric(ctx context.Context) error {
	session, err := s.CurrentSession(ctx)
	if err != nil {
		return err
	}
	return s.creds.SetBiometric(ctx, session.Email, true)
}

func (s *authService) Logout(ctx context.Context) error {
	return s.meta.Delete(ctx, sessionKey)
}

// saveSession persists the session as an HMAC-signed token so a hand-edited
// session record is rejected on the next load.
func (s *authService) saveSession(ctx context.Context, session *models.Session) error {
	secret, err := s.signingSecret(ctx)
	if err != nil {
		return err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      session.Email,
		"provider": session.Provider,
		"iat":      session.StartedAt.Unix(),
	})
	signed, err := token.SignedString(secret)
	if err != nil {
		return fmt.Errorf("session signing error: %w", err)
	}
	return s.meta.Set(ctx, sessionKey, []byte(signed))
}

// signingSecret returns the local token-signing secret, generating and
// persisting it on first use.
func (s *authService) signingSecret(ctx context.Context) ([]byte, error) {
	secret, err := s.meta.Get(ctx, sessionSecretKey)
	if err != nil {
		return nil, err
	}
	if secret != nil {
		return secret, nil
	}

	secret = common.GenerateRandByteArray(32)
	if err := s.meta.Set(ctx, sessionSecretKey, secret); err != nil {
		return nil, err
	}
	return secret, nil
}
