// Package entity defines the domain models for the bars feature.
package entity

import "time"

// Bar represents one OHLCV (Open, High, Low, Close, Volume) observation for
// a symbol in a single time bucket. Well-formed bars satisfy
// Low <= min(Open, Close) and High >= max(Open, Close) with Volume >= 0.
type Bar struct {
	Time   time.Time // Start of the bucket this bar covers
	Open   float64   // Opening price
	High   float64   // Highest price during the bucket
	Low    float64   // Lowest price during the bucket
	Close  float64   // Closing price
	Volume int64     // Traded volume in whole units
}
