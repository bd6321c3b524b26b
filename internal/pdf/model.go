package pdf

// Resume is the document model consumed by ComposeResume. It is built fresh
// per render and never persisted.
type Resume struct {
	Header     Header
	Summary    string
	Experience []ExperienceEntry
	Education  []EducationEntry
	Skills     []SkillCategory
	Languages  []string
}

// Header carries the name block at the top of the first page.
type Header struct {
	FirstName string
	LastName  string
	Role      string
	Contacts  []ContactField
}

// ContactField is one label/value pair in the header contact line. Only the
// value is rendered; the label documents what the value is.
type ContactField struct {
	Label string
	Value string
}

// ExperienceEntry is one job with its ordered bullet descriptions.
type ExperienceEntry struct {
	Title        string
	Organization string
	Period       string
	Bullets      []string
}

// EducationEntry is one degree line.
type EducationEntry struct {
	Degree string
	School string
	Years  string
}

// SkillCategory is one column of the skills grid: a category label and its
// ordered skill list.
type SkillCategory struct {
	Label  string
	Skills []string
}
