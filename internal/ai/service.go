// Package ai implements the portfolio's AI features: the assistant chat,
// English-Swahili translation, and resume optimization. Each feature turns
// documented portfolio content into a prompt; none of them add facts the
// portfolio does not contain.
package ai

import (
	"time"

	"github.com/makhembu/portfolio-api/internal/llm"
	"github.com/makhembu/portfolio-api/internal/portfolio"
)

// Disclaimer accompanies every assistant reply.
const Disclaimer = "This is an AI summary of documented portfolio content. For career advice, contact Brian directly."

// Service exposes the AI features over a generation client.
type Service struct {
	llm  llm.Client
	data *portfolio.Data
	now  func() time.Time
}

// NewService creates a Service. A nil data falls back to the built-in
// portfolio.
func NewService(client llm.Client, data *portfolio.Data) *Service {
	if data == nil {
		data = portfolio.Default()
	}
	return &Service{llm: client, data: data, now: time.Now}
}
