package guard

import "strings"

// ValidatePayload checks the textual payload bound for the downstream call.
// Length is counted in runes so multi-byte text is not penalized. field is
// the human-readable name surfaced in error messages.
func ValidatePayload(field, payload string, maxChars int) error {
	if strings.TrimSpace(payload) == "" {
		return &ErrMissingField{Field: field}
	}

	if n := len([]rune(payload)); n > maxChars {
		return &ErrPayloadTooLarge{Field: field, Max: maxChars, Actual: n}
	}

	return nil
}

// TruncateResponse caps outbound text at maxChars runes. A zero or negative
// cap means unlimited.
func TruncateResponse(text string, maxChars int) string {
	if maxChars <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	return string(runes[:maxChars])
}
