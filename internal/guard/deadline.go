package guard

import (
	"context"
	"time"
)

// WithDeadline races op against a timer. The operation receives a context
// that is cancelled when the deadline fires, so downstreams that honor
// cancellation genuinely stop; for those that do not, the eventual result is
// discarded and the caller gets ErrTimeout. A result arriving before the
// deadline is returned as-is, including its error.
func WithDeadline[T any](ctx context.Context, timeout time.Duration, op func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type outcome struct {
		value T
		err   error
	}

	// Buffered so the goroutine can exit even after the race is lost.
	done := make(chan outcome, 1)
	go func() {
		v, err := op(ctx)
		done <- outcome{value: v, err: err}
	}()

	select {
	case out := <-done:
		return out.value, out.err
	case <-ctx.Done():
		var zero T
		if ctx.Err() == context.DeadlineExceeded {
			return zero, &ErrTimeout{After: timeout}
		}
		return zero, ctx.Err()
	}
}
