// Package dto defines data transfer objects for upstream provider responses.
package dto

// BarsResponse represents the JSON body returned by the provider's
// /api/market/bars endpoint. Timestamps are ISO-8601 strings; anything the
// decoder or validator rejects is treated as provider failure by the caller.
type BarsResponse struct {
	Bars []struct {
		Time   string  `json:"t"`
		Open   float64 `json:"o"`
		High   float64 `json:"h"`
		Low    float64 `json:"l"`
		Close  float64 `json:"c"`
		Volume int64   `json:"v"`
	} `json:"bars"`
}
