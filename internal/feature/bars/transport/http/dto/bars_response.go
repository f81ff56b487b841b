// Package dto defines data transfer objects for the bars HTTP API.
package dto

// Bar is one OHLCV observation on the wire, matching the shape the chart
// component consumes.
type Bar struct {
	Time   string  `json:"t"` // ISO-8601 instant
	Open   float64 `json:"o"`
	High   float64 `json:"h"`
	Low    float64 `json:"l"`
	Close  float64 `json:"c"`
	Volume int64   `json:"v"`
}

// BarsData is the data section of the envelope-shaped bars response; the
// mock flag and warning live in the envelope meta.
type BarsData struct {
	Bars []Bar `json:"bars"`
}

// LegacyBarsResponse is the flat pre-envelope response shape, kept while
// clients migrate. It is losslessly convertible to the envelope shape via
// api.WrapResponse.
type LegacyBarsResponse struct {
	Bars    []Bar  `json:"bars"`
	Mock    bool   `json:"mock"`
	Warning string `json:"warning,omitempty"`
}
