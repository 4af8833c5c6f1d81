package serialization

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ReadFile reads and validates a versioned file.
//
// Returns ErrNotFound if path does not exist and ErrParse if the content is
// not valid JSON or fails ValidateFile.
func ReadFile(path string) (VersionedFile, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for weight loading
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return Parse(data)
}

// ReadFileLenient reads a versioned file for updating.
//
// A missing file, or one that is not a JSON array of records, yields an empty
// VersionedFile and no error, so the next save starts a fresh lineage. A file
// that decodes but fails ValidateFile still holds a lineage and is returned
// as an error (ErrParse wrapping a *ValidationError), as are I/O failures.
func ReadFileLenient(path string) (VersionedFile, error) {
	f, err := ReadFile(path)
	if err == nil {
		return f, nil
	}

	var ve *ValidationError
	switch {
	case errors.Is(err, ErrNotFound):
		return VersionedFile{}, nil
	case errors.Is(err, ErrParse) && !errors.As(err, &ve):
		return VersionedFile{}, nil
	default:
		return nil, err
	}
}

// Parse decodes and validates the JSON form of a versioned file.
func Parse(data []byte) (VersionedFile, error) {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, fmt.Errorf("%w: top-level value is null, expected an array", ErrParse)
	}

	var f VersionedFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	if err := ValidateFile(f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return f, nil
}
