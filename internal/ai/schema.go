package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// optimizedResumeSchema is the contract the model's JSON must satisfy before
// it is trusted. Validating up front turns malformed output into a single
// well-defined failure instead of a zero-valued struct.
const optimizedResumeSchema = `{
  "type": "object",
  "required": ["experience", "skills"],
  "properties": {
    "summary": {"type": "string"},
    "experience": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["role", "company", "period", "description"],
        "properties": {
          "id": {"type": "string"},
          "role": {"type": "string"},
          "company": {"type": "string"},
          "period": {"type": "string"},
          "description": {"type": "array", "items": {"type": "string"}},
          "skills": {"type": "array", "items": {"type": "string"}},
          "relevanceScore": {"type": "number", "minimum": 0, "maximum": 100}
        }
      }
    },
    "skills": {
      "type": "object",
      "properties": {
        "frontend": {"type": "array", "items": {"type": "string"}},
        "backend": {"type": "array", "items": {"type": "string"}},
        "infrastructure": {"type": "array", "items": {"type": "string"}}
      }
    },
    "relevantProjects": {"type": "array", "items": {"type": "string"}},
    "keywordMatches": {"type": "array", "items": {"type": "string"}},
    "matchScore": {"type": "number", "minimum": 0, "maximum": 100}
  }
}`

// parseOptimizedResume validates and decodes the model's JSON output.
func parseOptimizedResume(raw string) (*OptimizedResume, error) {
	schemaLoader := gojsonschema.NewStringLoader(optimizedResumeSchema)
	documentLoader := gojsonschema.NewStringLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, &ErrBadModelOutput{Reason: fmt.Sprintf("not valid JSON: %v", err)}
	}

	if !result.Valid() {
		var fields []string
		for _, desc := range result.Errors() {
			field := desc.Field()
			if field == "" {
				field = "(root)"
			}
			fields = append(fields, fmt.Sprintf("%s: %s", field, desc.Description()))
		}
		return nil, &ErrBadModelOutput{Reason: "schema violations: " + strings.Join(fields, "; ")}
	}

	var resume OptimizedResume
	if err := json.Unmarshal([]byte(raw), &resume); err != nil {
		return nil, &ErrBadModelOutput{Reason: err.Error()}
	}
	return &resume, nil
}
