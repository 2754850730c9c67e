package question

import (
	"errors"
	"fmt"
)

// ErrAssetLoad indicates the question bank could not be read, fetched, or parsed.
var ErrAssetLoad = errors.New("question bank unavailable")

// AssetLoadError wraps a bank load failure with its source.
type AssetLoadError struct {
	Source string
	Err    error
}

// Error returns a readable message including the source.
func (err *AssetLoadError) Error() string {
	if err.Source == "" {
		return fmt.Sprintf("load question bank: %v", err.Err)
	}
	return fmt.Sprintf("load question bank %s: %v", err.Source, err.Err)
}

// Unwrap exposes the underlying cause.
func (err *AssetLoadError) Unwrap() error {
	return err.Err
}

// Is matches ErrAssetLoad.
func (err *AssetLoadError) Is(target error) bool {
	return target == ErrAssetLoad
}
