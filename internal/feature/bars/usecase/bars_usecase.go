// Package usecase implements the market bars gateway: it normalizes request
// parameters, makes a single upstream attempt, and degrades to a synthetic
// series when the upstream cannot serve.
package usecase

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"research_backend/internal/feature/bars/domain"
	"research_backend/internal/feature/bars/domain/entity"
	"research_backend/internal/platform/logging"
)

const (
	// DefaultTimeframe is the bar granularity used when none is requested.
	DefaultTimeframe = "1d"
	// DefaultLimit is the bar count used when none (or an invalid one) is requested.
	DefaultLimit = 100
	// MaxLimit caps the bar count to bound response size and memory.
	MaxLimit = 1000
)

// MarketRepository abstracts the upstream market-data provider.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type MarketRepository interface {
	// GetBars fetches a bar series; any failure mode (transport, non-2xx,
	// malformed body) surfaces as an error.
	GetBars(ctx context.Context, symbol, timeframe string, limit int) ([]entity.Bar, error)
}

// SeriesGenerator abstracts the synthetic fallback source.
type SeriesGenerator interface {
	Series(symbol, timeframe string, limit int) []entity.Bar
}

// Result is the gateway outcome delivered to transport. Mock marks the series
// as synthetic; consumers must never hide that flag.
type Result struct {
	Bars   []entity.Bar
	Mock   bool
	Source string // "upstream" or "synthetic"
}

// barsUsecase orchestrates validate -> fetch -> fallback for bar requests.
// It holds no per-request state, so concurrent use needs no locking.
type barsUsecase struct {
	market MarketRepository
	synth  SeriesGenerator
}

// NewBarsUsecase creates a new gateway usecase over the given provider and
// fallback generator.
func NewBarsUsecase(market MarketRepository, synth SeriesGenerator) *barsUsecase {
	return &barsUsecase{market: market, synth: synth}
}

// GetBars returns a bar series for symbol. A missing symbol fails immediately
// with domain.ErrSymbolRequired and no upstream call. Upstream failure is not
// an error, and neither is a 2xx with an empty series: the gateway warn-logs
// the condition and answers with a synthetic series flagged as mock. One
// upstream attempt per request, never cached.
func (u *barsUsecase) GetBars(ctx context.Context, symbol, timeframe string, limit int) (Result, error) {
	if strings.TrimSpace(symbol) == "" {
		return Result{}, domain.ErrSymbolRequired
	}
	if timeframe == "" {
		timeframe = DefaultTimeframe
	}
	if limit <= 0 || limit > MaxLimit {
		limit = DefaultLimit
	}

	bars, err := u.market.GetBars(ctx, symbol, timeframe, limit)
	if err == nil && len(bars) > 0 {
		return Result{Bars: bars, Mock: false, Source: "upstream"}, nil
	}

	fields := logrus.Fields{"symbol": symbol, "timeframe": timeframe, "limit": limit}
	if id := logging.RequestID(ctx); id != "" {
		fields["request_id"] = id
	}
	if err != nil {
		fields["error"] = err.Error()
		logrus.WithFields(fields).Warn("upstream market data unavailable, serving synthetic series")
	} else {
		logrus.WithFields(fields).Warn("upstream returned an empty series, serving synthetic series")
	}

	return Result{
		Bars:   u.synth.Series(symbol, timeframe, limit),
		Mock:   true,
		Source: "synthetic",
	}, nil
}
