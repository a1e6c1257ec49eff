// Package apperr holds error classification shared across adapters: the
// hybrid router only retries failures marked external, never business-rule
// violations.
package apperr

import (
	"errors"
	"fmt"
)

var ErrExternalService = errors.New("external service failure")

// External wraps err so it classifies as a recoverable infrastructure
// failure.
func External(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrExternalService, err)
}

func Externalf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrExternalService, fmt.Sprintf(format, args...))
}

func IsExternal(err error) bool { return errors.Is(err, ErrExternalService) }
