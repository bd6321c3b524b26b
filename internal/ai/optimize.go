package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/makhembu/portfolio-api/internal/portfolio"
)

// OptimizeResume asks the model to reorder and emphasize documented
// experience against a job description. The prompt forbids invention: the
// model may only work with content that is already in the portfolio.
func (s *Service) OptimizeResume(ctx context.Context, jobDescription string, track portfolio.Track) (*OptimizedResume, error) {
	if !track.Valid() {
		track = portfolio.TrackBoth
	}

	experience := portfolio.RecentExperience(s.data.FilterExperience(track), s.now())
	projects := s.data.FilterProjects(track)
	skills := s.optimizerSkills(track)

	prompt := buildOptimizePrompt(jobDescription, s.data, track, experience, skills, projects)

	raw, err := s.llm.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, err
	}

	resume, err := parseOptimizedResume(raw)
	if err != nil {
		return nil, err
	}

	stripMarkdown(resume)

	if strings.TrimSpace(resume.Summary) == "" {
		resume.Summary = s.fallbackSummary(resume, track)
	}
	resume.Track = track

	return resume, nil
}

// optimizerSkills picks the skill categories fed to the model. The combined
// track leads with the development stack.
func (s *Service) optimizerSkills(track portfolio.Track) []portfolio.SkillCategory {
	if track == portfolio.TrackTranslation {
		return s.data.SkillsTranslation
	}
	return s.data.SkillsIT
}

// fallbackSummary covers models that leave the summary blank: a generic but
// truthful line built from the documented role and top skills.
func (s *Service) fallbackSummary(resume *OptimizedResume, track portfolio.Track) string {
	var topSkills []string
	if len(resume.Experience) > 0 && len(resume.Experience[0].Skills) > 0 {
		topSkills = resume.Experience[0].Skills
		if len(topSkills) > 3 {
			topSkills = topSkills[:3]
		}
	} else {
		categories := s.optimizerSkills(track)
		if len(categories) > 0 {
			topSkills = categories[0].Skills
			if len(topSkills) > 2 {
				topSkills = topSkills[:2]
			}
		}
	}

	role := s.data.ProfileVariant(track).Role
	return fmt.Sprintf(
		"Experienced %s with demonstrated expertise in %s. Proven track record of delivering high-quality solutions with strong focus on code quality and system design.",
		role, strings.Join(topSkills, ", "))
}

func buildOptimizePrompt(jobDescription string, data *portfolio.Data, track portfolio.Track, experience []portfolio.Experience, skills []portfolio.SkillCategory, projects []portfolio.Project) string {
	var sb strings.Builder

	sb.WriteString(`You are a resume optimization assistant with STRICT SAFETY CONSTRAINTS.

*** CRITICAL RULES - DO NOT VIOLATE ***
1. NEVER invent skills, projects, or experience the candidate does not have
2. NEVER exaggerate accomplishments or inflate claims
3. Only REORDER and EMPHASIZE existing documented experience
4. Only MATCH documented skills to job requirements
5. All suggestions must be TRUTHFUL about what the candidate has done
6. If a skill gap exists, acknowledge it honestly - do not invent expertise
7. Match score reflects ACTUAL fit, not confidence theater
8. The candidate's own documented content is the source of truth

JOB DESCRIPTION:
`)
	sb.WriteString(jobDescription)

	variant := data.ProfileVariant(track)
	fmt.Fprintf(&sb, `

CANDIDATE DOCUMENTED DATA (NEVER MODIFY):
Name: %s %s
Current Role: %s
Education: %s

DOCUMENTED EXPERIENCE (Must reference exactly as shown):
`, data.Profile.FirstName, data.Profile.LastName, variant.Role, data.Profile.Education)

	for _, exp := range experience {
		fmt.Fprintf(&sb, "- %s at %s (%s): %s\n", exp.Role, exp.Company, exp.Period, strings.Join(exp.Description, "; "))
	}

	sb.WriteString("\nDOCUMENTED SKILLS (Only these exist):\n")
	for _, cat := range skills {
		fmt.Fprintf(&sb, "%s: %s\n", cat.Label, strings.Join(cat.Skills, ", "))
	}

	sb.WriteString("\nDOCUMENTED PROJECTS (Only these exist):\n")
	for _, p := range projects {
		fmt.Fprintf(&sb, "- %s: %s\n", p.Title, p.Description)
	}

	sb.WriteString(`
TASK: Analyze fit between the job and the documented candidate experience.

ALLOWED OPERATIONS:
1. Reorder experience by relevance to the job
2. Emphasize existing skills that match requirements
3. Reframe existing accomplishments to job context (without changing facts)
4. Identify matching keywords from the job description
5. Highlight relevant projects
6. Acknowledge skill gaps honestly

FORBIDDEN OPERATIONS:
- Invent skills the candidate does not have documented
- Inflate experience or claim expertise in untaught areas
- Rewrite facts to be "more impressive"
- Add technologies not in documented experience
- Exaggerate project impact or scope

Return JSON with TRUTHFUL optimization:
{
  "summary": "Professional summary emphasizing strongest documented matches",
  "experience": [
    {
      "id": "original-id",
      "role": "Job Title",
      "company": "Company Name",
      "period": "Date Range",
      "description": ["ORIGINAL bullet point with job context emphasized"],
      "skills": ["skills the candidate actually has from this role"],
      "relevanceScore": 85
    }
  ],
  "skills": {
    "frontend": ["skill1", "skill2"],
    "backend": ["skill1", "skill2"],
    "infrastructure": ["skill1", "skill2"]
  },
  "relevantProjects": ["project title"],
  "keywordMatches": ["keyword1", "keyword2"],
  "matchScore": 70
}

relevanceScore and matchScore are numbers from 0 to 100 reflecting the real match.

Remember: this is optimization through EMPHASIS, not INVENTION.
The candidate's integrity matters more than inflating the match score.`)

	return sb.String()
}
