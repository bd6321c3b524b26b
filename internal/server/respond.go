package server

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/makhembu/portfolio-api/internal/guard"
)

// setQuotaHeaders attaches the rate-limit headers every guarded response
// carries, allowed or not.
func (s *Server) setQuotaHeaders(w http.ResponseWriter, res guard.Result) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
	w.Header().Set("X-RateLimit-Reset", res.ResetAt.Format(time.RFC3339))
}

// writeFailure maps an error from a guarded AI call onto a response. Client
// errors surface their own messages; timeouts and internal failures use the
// per-endpoint friendly text so internals stay hidden.
func (s *Server) writeFailure(w http.ResponseWriter, r *http.Request, err error, timeoutMsg, internalMsg string) {
	status := HTTPStatus(err)

	msg := err.Error()
	switch status {
	case http.StatusGatewayTimeout:
		msg = timeoutMsg
	case http.StatusBadGateway:
		msg = "AI response parsing failed. Please try again."
	case http.StatusInternalServerError:
		msg = internalMsg
	}

	log.Printf("[%s] %s failed: %v", r.Method, r.URL.Path, err)
	s.errorResponse(w, status, msg)
}
