// Package domain defines domain-level errors for the bars feature.
package domain

import "errors"

// Domain errors for bar series requests.
// These represent caller mistakes and are mapped to error envelopes by the
// transport layer; upstream unavailability is not an error at this level.
var (
	// ErrSymbolRequired indicates that a bars request omitted the symbol.
	ErrSymbolRequired = errors.New("symbol is required")
)
