package pdf

import "strings"

// Measurer reports the rendered width of a text run in millimeters. The fpdf
// binding supplies real font metrics; ApproxMeasurer is a deterministic
// substitute for layout without a font.
type Measurer func(s string, f Font) float64

// ptToMM converts a point size to millimeters (1pt = 1/72 inch).
const ptToMM = 25.4 / 72

// ApproxMeasurer estimates width from an average glyph advance of half an em.
// Close enough to Helvetica body text for layout decisions, and exactly
// reproducible across runs and platforms.
func ApproxMeasurer(s string, f Font) float64 {
	return float64(len([]rune(s))) * f.Size * ptToMM * 0.5
}

// SplitText word-wraps s to maxWidth using greedy fitting, the same policy
// PDF text splitters use. A single word wider than maxWidth is split hard at
// the rune that would overflow, so every returned line fits. Always returns
// at least one line.
func SplitText(m Measurer, s string, f Font, maxWidth float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := ""
	for _, word := range words {
		if m(word, f) > maxWidth {
			// Flush whatever is pending, then hard-split the oversized word.
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			for _, chunk := range splitWord(m, word, f, maxWidth) {
				lines = append(lines, chunk)
			}
			// The last chunk keeps accepting words.
			if len(lines) > 0 {
				current = lines[len(lines)-1]
				lines = lines[:len(lines)-1]
			}
			continue
		}

		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if m(candidate, f) <= maxWidth {
			current = candidate
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

// splitWord breaks one oversized word into maximal chunks that fit maxWidth.
func splitWord(m Measurer, word string, f Font, maxWidth float64) []string {
	var chunks []string
	runes := []rune(word)
	start := 0
	for start < len(runes) {
		end := start + 1
		for end < len(runes) && m(string(runes[start:end+1]), f) <= maxWidth {
			end++
		}
		chunks = append(chunks, string(runes[start:end]))
		start = end
	}
	return chunks
}
