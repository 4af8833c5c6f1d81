package serialization

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteFile writes f to path as indented JSON, replacing any previous content.
//
// The write is not atomic.
func WriteFile(path string, f VersionedFile) error {
	if f == nil {
		f = VersionedFile{}
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal weights: %w", err)
	}

	//nolint:gosec // G306: weights files are not secret
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}
