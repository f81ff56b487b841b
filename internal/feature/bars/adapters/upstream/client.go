package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"research_backend/internal/feature/bars/adapters/upstream/dto"
	"research_backend/internal/feature/bars/domain/entity"
	"research_backend/internal/feature/bars/usecase"
)

// Client fetches bar series from the upstream market-data provider. It makes
// exactly one attempt per call with no caching; retry policy, if any, lives
// here and not in the gateway.
type Client struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that Client implements the gateway's MarketRepository.
var _ usecase.MarketRepository = (*Client)(nil)

// NewClient creates an upstream Client with the given config and HTTP client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// GetBars requests a bar series from the provider and converts it to domain
// bars. Any transport error, non-2xx status, undecodable body, or bar that
// violates OHLCV ordering is returned as an error; the caller decides how to
// degrade.
func (u *Client) GetBars(ctx context.Context, symbol, timeframe string, limit int) ([]entity.Bar, error) {
	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("timeframe", timeframe)
	q.Set("limit", strconv.Itoa(limit))

	endpoint := fmt.Sprintf("%s/api/market/bars?%s", u.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	res, err := u.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			logrus.WithError(err).Warn("failed to close upstream response body")
		}
	}()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("upstream http %d", res.StatusCode)
	}

	var body dto.BarsResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode upstream body: %w", err)
	}

	bars := make([]entity.Bar, 0, len(body.Bars))
	for _, v := range body.Bars {
		tm, err := parseBarTime(v.Time)
		if err != nil {
			return nil, err
		}
		if v.Open <= 0 || v.High <= 0 || v.Low <= 0 || v.Close <= 0 {
			return nil, fmt.Errorf("non-positive price in upstream bar at %s", v.Time)
		}
		if v.Low > min(v.Open, v.Close) || v.High < max(v.Open, v.Close) {
			return nil, fmt.Errorf("inconsistent OHLC in upstream bar at %s", v.Time)
		}
		if v.Volume < 0 {
			return nil, fmt.Errorf("negative volume in upstream bar at %s", v.Time)
		}
		bars = append(bars, entity.Bar{
			Time:   tm,
			Open:   v.Open,
			High:   v.High,
			Low:    v.Low,
			Close:  v.Close,
			Volume: v.Volume,
		})
	}
	return bars, nil
}

// parseBarTime accepts full RFC3339 instants and bare dates.
func parseBarTime(s string) (time.Time, error) {
	tm, err := time.Parse(time.RFC3339, s)
	if err != nil {
		tm, err = time.Parse("2006-01-02", s)
		if err != nil {
			return time.Time{}, fmt.Errorf("parse time %q: %w", s, err)
		}
	}
	return tm, nil
}
