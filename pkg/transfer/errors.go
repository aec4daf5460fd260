package transfer

import (
	"errors"
	"fmt"
)

var (
	ErrToolNotFound  = errors.New("transfer tool not found")
	ErrConnFailed    = errors.New("connection failed")
	ErrAuthFailed    = errors.New("authentication failed")
	ErrNotFound      = errors.New("file not found")
	ErrTimeout       = errors.New("operation timeout")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// IsRetryable returns true if error should trigger a retry.
// Only connection establishment retries; file transfers never do.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrConnFailed) || errors.Is(err, ErrTimeout)
}

// WrapError adds device and operation context to an error
func WrapError(device, operation string, err error) error {
	return fmt.Errorf("%s (%s): %w", operation, device, err)
}

// TransferError reports the file being copied when a deployment failed
type TransferError struct {
	Device string
	File   string
	Err    error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("transfer of %q to device %s failed: %v", e.File, e.Device, e.Err)
}

func (e *TransferError) Unwrap() error {
	return e.Err
}
