package ai

import "github.com/makhembu/portfolio-api/internal/portfolio"

// OptimizedExperience is one role reordered and reframed for a job.
type OptimizedExperience struct {
	ID             string   `json:"id"`
	Role           string   `json:"role"`
	Company        string   `json:"company"`
	Period         string   `json:"period"`
	Description    []string `json:"description"`
	Skills         []string `json:"skills"`
	RelevanceScore float64  `json:"relevanceScore"`
}

// OptimizedSkills groups the matched skills by category.
type OptimizedSkills struct {
	Frontend       []string `json:"frontend"`
	Backend        []string `json:"backend"`
	Infrastructure []string `json:"infrastructure"`
}

// OptimizedResume is the model's truthful reordering of documented content
// against a job description.
type OptimizedResume struct {
	Summary          string                `json:"summary"`
	Experience       []OptimizedExperience `json:"experience"`
	Skills           OptimizedSkills       `json:"skills"`
	RelevantProjects []string              `json:"relevantProjects"`
	KeywordMatches   []string              `json:"keywordMatches"`
	MatchScore       float64               `json:"matchScore"`
	Track            portfolio.Track       `json:"track"`
}
