// Package domain holds the symbollist domain errors.
package domain

import "errors"

// ErrSymbolNotFound reports a lookup for a code that is not in the active
// instrument directory.
var ErrSymbolNotFound = errors.New("symbol not found")
