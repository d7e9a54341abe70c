package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/auratech/finvault/internal/common"
	"github.com/auratech/finvault/internal/cryptox"
	"github.com/auratech/finvault/internal/models"
	"github.com/auratech/finvault/internal/repositories/vault"
)

// VaultService is the encrypted store for per-user datasets.
//
// With an empty pin the dataset is persisted as plaintext JSON (bootstrap
// mode, before any PIN exists). With a pin it is sealed with a key derived
// by the configured KeyDeriver. Load distinguishes a wrong passphrase from
// corrupt plaintext data: a wrong passphrase can never produce a
// silently wrong dataset.
type VaultService interface {
	Save(ctx context.Context, email string, ds *models.Dataset, pin string) error
	Load(ctx context.Context, email string, pin string) (*models.Dataset, error)
	Export(ds *models.Dataset, now time.Time) (filename string, data []byte, err error)
	Import(data []byte) (*models.Dataset, error)
}

type vaultService struct {
	repo    vault.Repository
	deriver cryptox.KeyDeriver
}

// NewVaultService constructs a VaultService over the blob repository.
// The deriver defaults to cryptox.DirectDeriver when nil.
func NewVaultService(repo vault.Repository, deriver cryptox.KeyDeriver) VaultService {
	if deriver == nil {
		deriver = cryptox.DirectDeriver{}
	}
	return &vaultService{repo: repo, deriver: deriver}
}

func (s *vaultService) Save(ctx context.Context, email string, ds *models.Dataset, pin string) error {
	payload, err := json.Marshal(ds)
	if err != nil {
		return fmt.Errorf("dataset serialization error: %w", err)
	}

	encrypted := pin != ""
	if encrypted {
		key := s.deriver.Derive([]byte(pin), nil)
		payload, err = cryptox.Seal(payload, key)
		if err != nil {
			return fmt.Errorf("dataset encryption error: %w", err)
		}
	}

	rec := &vault.Record{Email: NormalizeEmail(email), Payload: payload, Encrypted: encrypted}
	if err := s.repo.Save(ctx, rec); err != nil {
		return fmt.Errorf("%w: %w", common.ErrStorageWrite, err)
	}
	return nil
}

func (s *vaultService) Load(ctx context.Context, email string, pin string) (*models.Dataset, error) {
	rec, err := s.repo.Load(ctx, NormalizeEmail(email))
	if errors.Is(err, common.ErrNotFound) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	payload := rec.Payload
	if rec.Encrypted {
		if pin == "" {
			return nil, common.ErrWrongPassphrase
		}
		key := s.deriver.Derive([]byte(pin), nil)
		payload, err = cryptox.Open(rec.Payload, key)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", common.ErrWrongPassphrase, err)
		}
	}

	ds := &models.Dataset{}
	if err := json.Unmarshal(payload, ds); err != nil {
		if rec.Encrypted {
			// decrypted fine but does not parse: treat as a passphrase
			// problem rather than handing back a corrupt object
			return nil, fmt.Errorf("%w: %w", common.ErrWrongPassphrase, err)
		}
		return nil, fmt.Errorf("%w: %w", common.ErrCorruptData, err)
	}
	ds.Normalize()
	return ds, nil
}

// Export produces the downloadable snapshot: unencrypted, indented JSON,
// named after the given date. Pure function of the dataset and timestamp.
func (s *vaultService) Export(ds *models.Dataset, now time.Time) (string, []byte, error) {
	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return "", nil, fmt.Errorf("export serialization error: %w", err)
	}
	filename := fmt.Sprintf("finvault-%s.json", now.Format("2006-01-02"))
	return filename, data, nil
}

// Import parses a snapshot. The caller replaces the active dataset only on
// success; unparseable input leaves it untouched.
func (s *vaultService) Import(data []byte) (*models.Dataset, error) {
	ds := &models.Dataset{}
	if err := json.Unmarshal(data, ds); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrImportParse, err)
	}
	ds.Normalize()
	return ds, nil
}
