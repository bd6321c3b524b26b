package ai

import (
	"context"
	"fmt"
	"strings"
)

// Translation is the result of an English to Swahili translation.
type Translation struct {
	OriginalText   string `json:"originalText"`
	TranslatedText string `json:"translatedText"`
	SourceLanguage string `json:"sourceLanguage"`
	TargetLanguage string `json:"targetLanguage"`
	Translator     string `json:"translator"`
}

// Translate renders English text into professional Swahili.
func (s *Service) Translate(ctx context.Context, text string) (*Translation, error) {
	p := s.data.Profile
	prompt := fmt.Sprintf(
		"Translate the following English text to professional Swahili. Context: %s %s is a professional translator. Provide a natural, fluent, and technically accurate translation.\n\nText: %s",
		p.FirstName, p.LastName, text)

	translated, err := s.llm.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return &Translation{
		OriginalText:   text,
		TranslatedText: strings.TrimSpace(translated),
		SourceLanguage: "en",
		TargetLanguage: "sw",
		Translator:     fmt.Sprintf("%s %s (Professional Translator)", p.FirstName, p.LastName),
	}, nil
}
