package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/makhembu/portfolio-api/internal/ai"
	"github.com/makhembu/portfolio-api/internal/guard"
	"github.com/makhembu/portfolio-api/internal/portfolio"
)

var validate = validator.New()

// ChatRequest represents the request body for /api/ai/chat
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse represents the response for /api/ai/chat
type ChatResponse struct {
	Success    bool   `json:"success"`
	Response   string `json:"response"`
	Disclaimer string `json:"disclaimer"`
}

// TranslateRequest represents the request body for /api/ai/translate
type TranslateRequest struct {
	Text string `json:"text"`
}

// TranslateResponse represents the response for /api/ai/translate
type TranslateResponse struct {
	Success bool `json:"success"`
	ai.Translation
}

// OptimizeRequest represents the request body for /api/resume/optimize
type OptimizeRequest struct {
	JobDescription string `json:"jobDescription" validate:"required"`
	Track          string `json:"track,omitempty" validate:"omitempty,oneof=it translation both"`
}

// handleChat answers a visitor question through the assistant.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	callerID := guard.ClientIP(r)
	res := s.guard.Check(guard.FeatureAssistant, callerID)
	s.setQuotaHeaders(w, res)

	if !res.Allowed {
		err := &guard.ErrQuotaExceeded{Limit: res.Limit, ResetAt: res.ResetAt}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	policy, _ := s.guard.Policy(guard.FeatureAssistant)
	if err := guard.ValidatePayload("message", req.Message, policy.MaxPayloadChars); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	reply, err := guard.WithDeadline(r.Context(), policy.Timeout, func(ctx context.Context) (string, error) {
		return s.svc.Chat(ctx, req.Message)
	})
	if err != nil {
		s.writeFailure(w, r, err,
			"Request took too long. Please try a simpler question.",
			"Failed to process request. Please try again later.")
		return
	}

	s.jsonResponse(w, http.StatusOK, ChatResponse{
		Success:    true,
		Response:   guard.TruncateResponse(reply, policy.MaxResponseChars),
		Disclaimer: ai.Disclaimer,
	})
}

// handleTranslate renders English text into Swahili.
func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	callerID := guard.ClientIP(r)
	res := s.guard.Check(guard.FeatureTranslate, callerID)
	s.setQuotaHeaders(w, res)

	if !res.Allowed {
		err := &guard.ErrQuotaExceeded{Limit: res.Limit, ResetAt: res.ResetAt}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	policy, _ := s.guard.Policy(guard.FeatureTranslate)
	if err := guard.ValidatePayload("text", req.Text, policy.MaxPayloadChars); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	translation, err := guard.WithDeadline(r.Context(), policy.Timeout, func(ctx context.Context) (*ai.Translation, error) {
		return s.svc.Translate(ctx, req.Text)
	})
	if err != nil {
		s.writeFailure(w, r, err,
			"Translation took too long. Please try with shorter text.",
			"Failed to process translation. Please try again later.")
		return
	}

	s.jsonResponse(w, http.StatusOK, TranslateResponse{
		Success:     true,
		Translation: *translation,
	})
}

// handleOptimize tailors the documented resume to a job description.
func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	callerID := guard.ClientIP(r)
	res := s.guard.Check(guard.FeatureOptimizer, callerID)
	s.setQuotaHeaders(w, res)

	if !res.Allowed {
		err := &guard.ErrQuotaExceeded{Limit: res.Limit, ResetAt: res.ResetAt}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req OptimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: track must be one of it, translation, both")
		return
	}

	policy, _ := s.guard.Policy(guard.FeatureOptimizer)
	if err := guard.ValidatePayload("jobDescription", req.JobDescription, policy.MaxPayloadChars); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	track := portfolio.TrackBoth
	if req.Track != "" {
		track = portfolio.Track(req.Track)
	}

	resume, err := guard.WithDeadline(r.Context(), policy.Timeout, func(ctx context.Context) (*ai.OptimizedResume, error) {
		return s.svc.OptimizeResume(ctx, req.JobDescription, track)
	})
	if err != nil {
		s.writeFailure(w, r, err,
			"Request took too long. Job descriptions may be too long or the system is busy. Please try again.",
			"Failed to optimize resume. Please try again later.")
		return
	}

	s.jsonResponse(w, http.StatusOK, resume)
}
