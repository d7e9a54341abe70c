package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/auratech/finvault/internal/common"
	"github.com/auratech/finvault/internal/logging"
	"github.com/auratech/finvault/internal/repositories/indicators"
)

// indicator cache key for the ARS-per-USD quote
const rateIndicator = "usd_blue"

// ratePayload is the cached/remote quote body. The remote service returns
// more fields; only the selling price is used.
type ratePayload struct {
	Venta decimal.Decimal `json:"venta"`
}

// RateService looks up the ARS-per-USD exchange rate from an external
// indicator service, with a TTL cache in local storage.
//
// Degradation order: fresh cache → remote fetch → stale cache. Only when
// the fetch fails and no cached value exists at all does FetchRate return
// common.ErrFetch; the caller then shows a placeholder instead of a rate.
type RateService interface {
	FetchRate(ctx context.Context) (decimal.Decimal, error)
}

type rateService struct {
	repo   indicators.Repository
	client *http.Client
	url    string
	ttl    time.Duration
	log    logging.Logger
	now    func() time.Time
}

// NewRateService constructs a RateService. client may be nil, in which
// case a client with a sane timeout is used.
func NewRateService(repo indicators.Repository, client *http.Client, url string, ttl time.Duration, log logging.Logger) RateService {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &rateService{repo: repo, client: client, url: url, ttl: ttl, log: log, now: time.Now}
}

func (s *rateService) FetchRate(ctx context.Context) (decimal.Decimal, error) {
	cached, err := s.repo.Get(ctx, rateIndicator)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return decimal.Zero, err
	}

	if cached != nil && s.now().Sub(cached.FetchedAt) < s.ttl {
		if rate, err := parseRate(cached.Payload); err == nil {
			return rate, nil
		}
		// unparseable cache row is treated as absent
		cached = nil
	}

	rate, payload, fetchErr := s.fetch(ctx)
	if fetchErr == nil {
		if err := s.repo.Put(ctx, &indicators.Row{Name: rateIndicator, FetchedAt: s.now(), Payload: payload}); err != nil {
			s.log.Warn(ctx, "indicator cache write failed", "error", err)
		}
		return rate, nil
	}

	// graceful degradation: serve the last good value however stale
	if cached != nil {
		if stale, err := parseRate(cached.Payload); err == nil {
			s.log.Warn(ctx, "rate fetch failed, serving stale cache", "error", fetchErr)
			return stale, nil
		}
	}

	return decimal.Zero, fmt.Errorf("%w: %w", common.ErrFetch, fetchErr)
}

func (s *rateService) fetch(ctx context.Context) (decimal.Decimal, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return decimal.Zero, nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return decimal.Zero, nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var payload ratePayload
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&payload); err != nil {
		return decimal.Zero, nil, fmt.Errorf("malformed response: %w", err)
	}
	if !payload.Venta.IsPositive() {
		return decimal.Zero, nil, fmt.Errorf("malformed response: non-positive rate %s", payload.Venta)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return decimal.Zero, nil, err
	}
	return payload.Venta, body, nil
}

func parseRate(payload []byte) (decimal.Decimal, error) {
	var p ratePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return decimal.Zero, err
	}
	if !p.Venta.IsPositive() {
		return decimal.Zero, errors.New("non-positive cached rate")
	}
	return p.Venta, nil
}
