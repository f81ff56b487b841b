// Package synth generates statistically plausible OHLCV series for symbols
// whose authoritative data source is unavailable. Output is for display only
// and every consumer must flag it as non-authoritative.
package synth

import (
	"math"
	"math/rand"
	"strings"
	"time"

	"research_backend/internal/feature/bars/domain/entity"
)

const (
	// maxDriftPct bounds the close-to-close move per bar.
	maxDriftPct = 0.02
	// maxWickPct bounds how far high/low extend past the open/close envelope.
	maxWickPct = 0.01
	// fallbackPriceMin/Max bound the seed price for symbols missing from the
	// reference table, so arbitrary symbols still render a sane chart.
	fallbackPriceMin = 150.0
	fallbackPriceMax = 250.0
	// volumeMin/volumeSpan define the range volumes are drawn from.
	volumeMin  = int64(500_000)
	volumeSpan = int64(9_500_000)
)

// timeframeSteps maps a requested granularity to the width of one bar.
// Unknown timeframes fall back to the daily step.
var timeframeSteps = map[string]time.Duration{
	"1m":  time.Minute,
	"5m":  5 * time.Minute,
	"15m": 15 * time.Minute,
	"30m": 30 * time.Minute,
	"1h":  time.Hour,
	"4h":  4 * time.Hour,
	"1d":  24 * time.Hour,
	"1w":  7 * 24 * time.Hour,
}

// StepFor returns the bar width for a timeframe string, defaulting to one day.
func StepFor(timeframe string) time.Duration {
	if step, ok := timeframeSteps[strings.ToLower(timeframe)]; ok {
		return step
	}
	return 24 * time.Hour
}

// Generator produces synthetic bar series. It holds no mutable state shared
// between calls: each Series call draws a fresh rand.Rand from newSource, so
// concurrent requests need no locking and seeded tests are reproducible.
type Generator struct {
	newSource func() rand.Source
	now       func() time.Time
}

// NewGenerator returns a Generator backed by time-seeded randomness.
func NewGenerator() *Generator {
	return &Generator{
		newSource: func() rand.Source { return rand.NewSource(time.Now().UnixNano()) },
		now:       time.Now,
	}
}

// NewSeededGenerator returns a Generator whose output is fully determined by
// seed and the supplied clock. Used by tests; a nil clock means time.Now.
func NewSeededGenerator(seed int64, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{
		newSource: func() rand.Source { return rand.NewSource(seed) },
		now:       now,
	}
}

// Series returns exactly limit bars for symbol, oldest first, one per
// timeframe step ending at the current instant. Prices random-walk from the
// symbol's seed price with each bar opening at the previous close, so the
// series has no discontinuities. OHLC ordering and non-negative volume hold
// by construction. Limits below 1 are treated as 1.
func (g *Generator) Series(symbol, timeframe string, limit int) []entity.Bar {
	if limit < 1 {
		limit = 1
	}
	rnd := rand.New(g.newSource())
	step := StepFor(timeframe)
	end := g.now().UTC().Truncate(time.Minute)

	bars := make([]entity.Bar, 0, limit)
	prevClose := seedPrice(symbol, rnd)
	for i := 0; i < limit; i++ {
		open := prevClose
		drift := (rnd.Float64()*2 - 1) * maxDriftPct
		closePx := round2(open * (1 + drift))

		hiBase := math.Max(open, closePx)
		loBase := math.Min(open, closePx)
		high := round2(hiBase * (1 + rnd.Float64()*maxWickPct))
		low := round2(loBase * (1 - rnd.Float64()*maxWickPct))
		if high < hiBase {
			high = hiBase
		}
		if low > loBase {
			low = loBase
		}

		bars = append(bars, entity.Bar{
			Time:   end.Add(-step * time.Duration(limit-1-i)),
			Open:   open,
			High:   high,
			Low:    low,
			Close:  closePx,
			Volume: volumeMin + rnd.Int63n(volumeSpan),
		})
		prevClose = closePx
	}
	return bars
}

// seedPrice picks the starting price for a series: the reference price when
// the symbol is known (case-insensitive), otherwise a uniform draw from the
// fallback range. Unknown symbols never fail.
func seedPrice(symbol string, rnd *rand.Rand) float64 {
	if p, ok := referencePrices[strings.ToUpper(strings.TrimSpace(symbol))]; ok {
		return p
	}
	return round2(fallbackPriceMin + rnd.Float64()*(fallbackPriceMax-fallbackPriceMin))
}

// round2 rounds to currency precision (2 decimal places).
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
