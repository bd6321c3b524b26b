package ai

import "fmt"

// ErrBadModelOutput indicates the model returned something that does not
// parse as the expected structure. Callers map this to a bad-gateway status.
type ErrBadModelOutput struct {
	Reason string
}

func (e *ErrBadModelOutput) Error() string {
	return fmt.Sprintf("failed to parse model output: %s", e.Reason)
}
