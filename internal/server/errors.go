package server

import (
	"errors"
	"net/http"

	"github.com/makhembu/portfolio-api/internal/ai"
	"github.com/makhembu/portfolio-api/internal/guard"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		quota     *guard.ErrQuotaExceeded
		missing   *guard.ErrMissingField
		tooLarge  *guard.ErrPayloadTooLarge
		timeout   *guard.ErrTimeout
		badOutput *ai.ErrBadModelOutput
	)

	switch {
	case errors.As(err, &quota):
		return http.StatusTooManyRequests
	case errors.As(err, &missing), errors.As(err, &tooLarge):
		return http.StatusBadRequest
	case errors.As(err, &timeout):
		return http.StatusGatewayTimeout
	case errors.As(err, &badOutput):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
