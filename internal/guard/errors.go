package guard

import (
	"fmt"
	"time"
)

// ErrQuotaExceeded indicates the caller used up its window quota.
type ErrQuotaExceeded struct {
	Limit   int
	ResetAt time.Time
}

func (e *ErrQuotaExceeded) Error() string {
	return fmt.Sprintf("Rate limit exceeded. Maximum %d requests per minute. Reset at %s",
		e.Limit, e.ResetAt.Format("15:04:05"))
}

// ErrMissingField indicates a required payload field was empty or absent.
type ErrMissingField struct {
	Field string
}

func (e *ErrMissingField) Error() string {
	return fmt.Sprintf("Missing required field: %s", e.Field)
}

// ErrPayloadTooLarge indicates the payload exceeded the policy ceiling.
// The message discloses only the field name, the ceiling, and the actual
// length, all values the caller already controls.
type ErrPayloadTooLarge struct {
	Field  string
	Max    int
	Actual int
}

func (e *ErrPayloadTooLarge) Error() string {
	return fmt.Sprintf("%s exceeds maximum length of %d characters. Current: %d",
		e.Field, e.Max, e.Actual)
}

// ErrTimeout indicates the downstream operation lost the deadline race.
// Cancellation is advisory: the abandoned operation may keep consuming
// resources if the downstream service ignores its context.
type ErrTimeout struct {
	After time.Duration
}

func (e *ErrTimeout) Error() string {
	return fmt.Sprintf("Request timeout after %d seconds", int(e.After.Seconds()))
}
