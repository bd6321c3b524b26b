package ai

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makhembu/portfolio-api/internal/portfolio"
)

// fakeClient records prompts and returns canned output.
type fakeClient struct {
	content    string
	jsonOut    string
	err        error
	lastPrompt string
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	return f.content, f.err
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	return f.jsonOut, f.err
}

func (f *fakeClient) Close() error { return nil }

func TestChat_PromptCarriesPersonaAndQuestion(t *testing.T) {
	fake := &fakeClient{content: "He studied at JKUAT."}
	svc := NewService(fake, nil)

	reply, err := svc.Chat(context.Background(), "Where did Brian study?")
	require.NoError(t, err)
	assert.Equal(t, "He studied at JKUAT.", reply)

	assert.Contains(t, fake.lastPrompt, "AI representative for Brian Makhembu")
	assert.Contains(t, fake.lastPrompt, "Decision Support Systems")
	assert.Contains(t, fake.lastPrompt, "github.com/makhembu")
	assert.Contains(t, fake.lastPrompt, "Where did Brian study?")
}

func TestTranslate(t *testing.T) {
	fake := &fakeClient{content: "  Habari yako  "}
	svc := NewService(fake, nil)

	got, err := svc.Translate(context.Background(), "How are you")
	require.NoError(t, err)

	assert.Equal(t, "How are you", got.OriginalText)
	assert.Equal(t, "Habari yako", got.TranslatedText)
	assert.Equal(t, "en", got.SourceLanguage)
	assert.Equal(t, "sw", got.TargetLanguage)
	assert.Contains(t, fake.lastPrompt, "professional Swahili")
}

func TestTranslate_PropagatesClientError(t *testing.T) {
	fake := &fakeClient{err: errors.New("upstream down")}
	svc := NewService(fake, nil)

	_, err := svc.Translate(context.Background(), "hello")
	assert.EqualError(t, err, "upstream down")
}

const validOptimizerOutput = `{
  "summary": "**Strong** match for full-stack work.",
  "experience": [
    {
      "id": "exp-1b",
      "role": "Full-Stack Consultant",
      "company": "Self-Employed",
      "period": "Jan 2020 - Present",
      "description": ["Engineered *25+* custom web applications."],
      "skills": ["React", "TypeScript", "Node.js", "Git"],
      "relevanceScore": 90
    }
  ],
  "skills": {
    "frontend": ["React", "TypeScript"],
    "backend": ["Node.js"],
    "infrastructure": ["CI/CD"]
  },
  "relevantProjects": ["Professional Writing Service"],
  "keywordMatches": ["react", "typescript"],
  "matchScore": 82
}`

func TestOptimizeResume_ParsesAndCleans(t *testing.T) {
	fake := &fakeClient{jsonOut: validOptimizerOutput}
	svc := NewService(fake, nil)

	resume, err := svc.OptimizeResume(context.Background(), "Senior React engineer", portfolio.TrackIT)
	require.NoError(t, err)

	assert.Equal(t, "Strong match for full-stack work.", resume.Summary)
	require.Len(t, resume.Experience, 1)
	assert.Equal(t, "Engineered 25+ custom web applications.", resume.Experience[0].Description[0])
	assert.Equal(t, 82.0, resume.MatchScore)
	assert.Equal(t, portfolio.TrackIT, resume.Track)
}

func TestOptimizeResume_PromptOnlyDocumentedContent(t *testing.T) {
	fake := &fakeClient{jsonOut: validOptimizerOutput}
	svc := NewService(fake, nil)
	svc.now = func() time.Time {
		return time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	}

	_, err := svc.OptimizeResume(context.Background(), "Senior React engineer", portfolio.TrackIT)
	require.NoError(t, err)

	assert.Contains(t, fake.lastPrompt, "Senior React engineer")
	assert.Contains(t, fake.lastPrompt, "Full-Stack Consultant at Self-Employed")
	// Started Jan 2017, outside the five year window.
	assert.NotContains(t, fake.lastPrompt, "Fanharm Technologies")
}

func TestOptimizeResume_BackfillsMissingSummary(t *testing.T) {
	out := `{
  "summary": "",
  "experience": [
    {
      "id": "exp-1b",
      "role": "Full-Stack Consultant",
      "company": "Self-Employed",
      "period": "Jan 2020 - Present",
      "description": ["Built things."],
      "skills": ["React", "TypeScript", "Node.js", "Git"],
      "relevanceScore": 80
    }
  ],
  "skills": {"frontend": [], "backend": [], "infrastructure": []},
  "relevantProjects": [],
  "keywordMatches": [],
  "matchScore": 50
}`
	svc := NewService(&fakeClient{jsonOut: out}, nil)

	resume, err := svc.OptimizeResume(context.Background(), "any job", portfolio.TrackIT)
	require.NoError(t, err)

	assert.Contains(t, resume.Summary, "Full-Stack Developer")
	assert.Contains(t, resume.Summary, "React, TypeScript, Node.js")
}

func TestOptimizeResume_RejectsMalformedOutput(t *testing.T) {
	tests := []struct {
		name string
		out  string
	}{
		{"not json", "sorry, I cannot help with that"},
		{"missing required fields", `{"summary": "hi"}`},
		{"score out of range", `{"experience": [], "skills": {}, "matchScore": 250}`},
		{"wrong score type", `{"experience": [], "skills": {}, "matchScore": "high"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeClient{jsonOut: tt.out}, nil)

			_, err := svc.OptimizeResume(context.Background(), "any job", portfolio.TrackBoth)
			require.Error(t, err)

			var parseErr *ErrBadModelOutput
			assert.True(t, errors.As(err, &parseErr))
		})
	}
}
