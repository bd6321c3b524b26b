// Package portfolio holds the candidate's documented profile, work history,
// skills, and projects. Everything the AI features and the PDF renderer say
// about the candidate comes from here; nothing is invented downstream.
package portfolio

// Track selects which career track a piece of portfolio content belongs to.
type Track string

const (
	TrackIT          Track = "it"
	TrackTranslation Track = "translation"
	TrackBoth        Track = "both"
)

// Valid reports whether t is one of the known tracks.
func (t Track) Valid() bool {
	switch t {
	case TrackIT, TrackTranslation, TrackBoth:
		return true
	}
	return false
}

// ProfileVariant is the role framing used when a single track is active.
type ProfileVariant struct {
	Role    string
	Tagline string
	Summary string
}

// Profile is the candidate's identity and education.
type Profile struct {
	FirstName    string
	LastName     string
	Location     string
	Education    string
	Availability string
	Variants     map[Track]ProfileVariant
}

// Socials are public contact links.
type Socials struct {
	GitHub   string
	LinkedIn string
	Email    string
}

// Experience is one documented role.
type Experience struct {
	ID          string
	Company     string
	Role        string
	Period      string
	Description []string
	Skills      []string
	Track       Track
}

// Project is one documented project.
type Project struct {
	ID          string
	Title       string
	Description string
	Tags        []string
	Link        string
	GitHubURL   string
	Track       Track
}

// SkillCategory is a labelled group of skills.
type SkillCategory struct {
	Label  string
	Skills []string
}

// Language is a spoken language with proficiency.
type Language struct {
	Name  string
	Level int
}

// DetailedContext carries background stories the assistant draws on.
type DetailedContext struct {
	UniversityLore       string
	InfrastructureYears  string
	LinguisticBackground string
	DesignPhilosophy     string
}

// Data is the full portfolio.
type Data struct {
	Profile           Profile
	Socials           Socials
	Experience        []Experience
	Projects          []Project
	SkillsIT          []SkillCategory
	SkillsTranslation []SkillCategory
	Languages         []Language
	Context           DetailedContext
}
