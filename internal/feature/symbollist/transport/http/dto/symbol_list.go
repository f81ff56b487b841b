// Package dto defines data transfer objects for the symbollist HTTP API.
package dto

// SymbolItem represents a symbol in the API response.
// It contains only the public-facing fields needed by clients.
type SymbolItem struct {
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	Market   string  `json:"market"`
	RefPrice float64 `json:"refPrice,omitempty"`
}

// SymbolListData is the data section of the envelope-shaped symbols response.
type SymbolListData struct {
	Symbols []SymbolItem `json:"symbols"`
}

// SymbolData is the data section of the single-symbol response.
type SymbolData struct {
	Symbol SymbolItem `json:"symbol"`
}
