package serialization

import (
	"errors"
	"fmt"
	"io/fs"
)

// Common errors.
var (
	ErrNotFound       = fmt.Errorf("weights file not found: %w", fs.ErrNotExist)
	ErrParse          = errors.New("invalid weights file")
	ErrInvalidVersion = errors.New("invalid version: must be >= 0")
)

// ValidationError provides detailed information about structural problems
// in a versioned file or in the layers being encoded into one.
type ValidationError struct {
	Type    string // Type of error (e.g., "empty_history", "length_mismatch")
	Layer   int    // Layer index
	Node    int    // Node index, or -1 when the error concerns the whole layer
	Details string // Additional details
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Node >= 0 {
		return fmt.Sprintf("%s: layer %d node %d: %s", e.Type, e.Layer, e.Node, e.Details)
	}
	return fmt.Sprintf("%s: layer %d: %s", e.Type, e.Layer, e.Details)
}
