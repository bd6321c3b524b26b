package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makhembu/portfolio-api/internal/ai"
	"github.com/makhembu/portfolio-api/internal/guard"
	"github.com/makhembu/portfolio-api/internal/portfolio"
)

// fakeAI is a canned AIService for handler tests.
type fakeAI struct {
	chatReply   string
	chatErr     error
	chatDelay   time.Duration
	translated  string
	optimized   *ai.OptimizedResume
	optimizeErr error
}

func (f *fakeAI) Chat(_ context.Context, _ string) (string, error) {
	// Deliberately ignores cancellation so deadline tests exercise the
	// guard's advisory-abandonment path.
	if f.chatDelay > 0 {
		time.Sleep(f.chatDelay)
	}
	return f.chatReply, f.chatErr
}

func (f *fakeAI) Translate(_ context.Context, text string) (*ai.Translation, error) {
	return &ai.Translation{
		OriginalText:   text,
		TranslatedText: f.translated,
		SourceLanguage: "en",
		TargetLanguage: "sw",
	}, nil
}

func (f *fakeAI) OptimizeResume(_ context.Context, _ string, track portfolio.Track) (*ai.OptimizedResume, error) {
	if f.optimizeErr != nil {
		return nil, f.optimizeErr
	}
	out := f.optimized
	if out == nil {
		out = &ai.OptimizedResume{Summary: "fit", MatchScore: 75}
	}
	out.Track = track
	return out, nil
}

func newTestServer(svc AIService) *Server {
	return NewWithService(Config{Port: 0}, svc)
}

func doJSON(t *testing.T, s *Server, method, path, body, ip string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if ip != "" {
		req.Header.Set("X-Forwarded-For", ip)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s := newTestServer(&fakeAI{})

	rec := doJSON(t, s, "GET", "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestChat_Success(t *testing.T) {
	s := newTestServer(&fakeAI{chatReply: "He is a full-stack developer."})

	rec := doJSON(t, s, "POST", "/api/ai/chat", `{"message":"What does Brian do?"}`, "198.51.100.7")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "He is a full-stack developer.", resp.Response)
	assert.Equal(t, ai.Disclaimer, resp.Disclaimer)

	assert.Equal(t, "10", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "9", rec.Header().Get("X-RateLimit-Remaining"))
	_, err := time.Parse(time.RFC3339, rec.Header().Get("X-RateLimit-Reset"))
	assert.NoError(t, err)
}

func TestChat_ResponseTruncatedToPolicyCap(t *testing.T) {
	s := newTestServer(&fakeAI{chatReply: strings.Repeat("a", 1200)})

	rec := doJSON(t, s, "POST", "/api/ai/chat", `{"message":"tell me everything"}`, "198.51.100.7")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Response, 800)
}

func TestChat_MissingMessage(t *testing.T) {
	s := newTestServer(&fakeAI{})

	rec := doJSON(t, s, "POST", "/api/ai/chat", `{}`, "198.51.100.7")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing required field: message")
}

func TestChat_PayloadTooLarge(t *testing.T) {
	s := newTestServer(&fakeAI{})

	long := strings.Repeat("x", 5001)
	rec := doJSON(t, s, "POST", "/api/ai/chat", fmt.Sprintf(`{"message":%q}`, long), "198.51.100.7")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "5001")
}

func TestChat_TimeoutMapsToGatewayTimeout(t *testing.T) {
	s := newTestServer(&fakeAI{chatDelay: 200 * time.Millisecond, chatReply: "late"})

	// Shrink the assistant deadline so the test does not wait 15 seconds.
	policies := guard.DefaultPolicies()
	p := policies[guard.FeatureAssistant]
	p.Timeout = 20 * time.Millisecond
	policies[guard.FeatureAssistant] = p
	s.guard = guard.New(guard.NewMemoryStore(), policies)

	rec := doJSON(t, s, "POST", "/api/ai/chat", `{"message":"slow one"}`, "198.51.100.7")
	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Contains(t, rec.Body.String(), "Request took too long")
}

func TestTranslate_RateLimitExhaustion(t *testing.T) {
	s := newTestServer(&fakeAI{translated: "sawa"})

	for i := 0; i < 20; i++ {
		rec := doJSON(t, s, "POST", "/api/ai/translate", `{"text":"ok"}`, "203.0.113.9")
		require.Equal(t, http.StatusOK, rec.Code, "request %d should be allowed", i+1)
	}

	rec := doJSON(t, s, "POST", "/api/ai/translate", `{"text":"ok"}`, "203.0.113.9")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "Maximum 20 requests per minute")
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
}

func TestTranslate_CallersAreIndependent(t *testing.T) {
	s := newTestServer(&fakeAI{translated: "sawa"})

	for i := 0; i < 20; i++ {
		rec := doJSON(t, s, "POST", "/api/ai/translate", `{"text":"ok"}`, "203.0.113.9")
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := doJSON(t, s, "POST", "/api/ai/translate", `{"text":"ok"}`, "203.0.113.10")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "19", rec.Header().Get("X-RateLimit-Remaining"))
}

func TestTranslate_Success(t *testing.T) {
	s := newTestServer(&fakeAI{translated: "Habari yako"})

	rec := doJSON(t, s, "POST", "/api/ai/translate", `{"text":"How are you"}`, "198.51.100.7")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp TranslateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "How are you", resp.OriginalText)
	assert.Equal(t, "Habari yako", resp.TranslatedText)
	assert.Equal(t, "en", resp.SourceLanguage)
	assert.Equal(t, "sw", resp.TargetLanguage)
}

func TestOptimize_Success(t *testing.T) {
	s := newTestServer(&fakeAI{optimized: &ai.OptimizedResume{Summary: "strong fit", MatchScore: 82}})

	rec := doJSON(t, s, "POST", "/api/resume/optimize", `{"jobDescription":"Senior Go engineer","track":"it"}`, "198.51.100.7")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ai.OptimizedResume
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "strong fit", resp.Summary)
	assert.Equal(t, portfolio.TrackIT, resp.Track)
	assert.Equal(t, "5", rec.Header().Get("X-RateLimit-Limit"))
}

func TestOptimize_InvalidTrack(t *testing.T) {
	s := newTestServer(&fakeAI{})

	rec := doJSON(t, s, "POST", "/api/resume/optimize", `{"jobDescription":"a job","track":"devops"}`, "198.51.100.7")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "track")
}

func TestOptimize_BadModelOutputMapsToBadGateway(t *testing.T) {
	s := newTestServer(&fakeAI{optimizeErr: &ai.ErrBadModelOutput{Reason: "not valid JSON"}})

	rec := doJSON(t, s, "POST", "/api/resume/optimize", `{"jobDescription":"a job"}`, "198.51.100.7")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "AI response parsing failed")
}

func TestResumePDF(t *testing.T) {
	s := newTestServer(&fakeAI{})

	rec := doJSON(t, s, "GET", "/api/resume/pdf", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "Brian_Makhembu_Resume.pdf")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF-"))
}

func TestResumePDF_TrackParam(t *testing.T) {
	s := newTestServer(&fakeAI{})

	rec := doJSON(t, s, "GET", "/api/resume/pdf?track=translation", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, "GET", "/api/resume/pdf?track=nope", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQuotaChargedEvenWhenRejected(t *testing.T) {
	s := newTestServer(&fakeAI{})

	// Invalid payloads still consume quota slots.
	for i := 0; i < 10; i++ {
		rec := doJSON(t, s, "POST", "/api/ai/chat", `{}`, "203.0.113.50")
		require.Equal(t, http.StatusBadRequest, rec.Code)
	}

	rec := doJSON(t, s, "POST", "/api/ai/chat", `{"message":"hello"}`, "203.0.113.50")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
