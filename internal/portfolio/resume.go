package portfolio

import (
	"strings"

	"github.com/makhembu/portfolio-api/internal/pdf"
)

// Roles kept in the portfolio for the assistant's context but too old to
// carry on the resume itself.
var outdatedRoleIDs = map[string]bool{
	"exp-3": true,
	"exp-4": true,
}

// BuildResume assembles the printable resume for the given track.
func (d *Data) BuildResume(track Track) pdf.Resume {
	variant := d.ProfileVariant(track)

	resume := pdf.Resume{
		Header: pdf.Header{
			FirstName: d.Profile.FirstName,
			LastName:  d.Profile.LastName,
			Role:      variant.Role,
			Contacts:  d.contactFields(),
		},
		Summary: variant.Summary,
	}

	for _, exp := range d.FilterExperience(track) {
		if outdatedRoleIDs[exp.ID] {
			continue
		}
		resume.Experience = append(resume.Experience, pdf.ExperienceEntry{
			Title:        exp.Role,
			Organization: exp.Company,
			Period:       exp.Period,
			Bullets:      exp.Description,
		})
	}

	resume.Education = []pdf.EducationEntry{{
		Degree: d.Profile.Education,
		School: "Jomo Kenyatta University of Agriculture and Technology (JKUAT)",
		Years:  "2014-2018",
	}}

	for _, cat := range d.SkillsFor(track) {
		resume.Skills = append(resume.Skills, pdf.SkillCategory{
			Label:  cat.Label,
			Skills: cat.Skills,
		})
	}

	for _, lang := range d.Languages {
		resume.Languages = append(resume.Languages, lang.Name)
	}

	return resume
}

// ResumeFilename returns the download name for the generated PDF.
func (d *Data) ResumeFilename() string {
	return d.Profile.FirstName + "_" + d.Profile.LastName + "_Resume.pdf"
}

func (d *Data) contactFields() []pdf.ContactField {
	candidates := []pdf.ContactField{
		{Label: "Email", Value: d.Socials.Email},
		{Label: "Location", Value: d.Profile.Location},
		{Label: "GitHub", Value: strings.TrimPrefix(d.Socials.GitHub, "https://")},
		{Label: "LinkedIn", Value: strings.TrimPrefix(d.Socials.LinkedIn, "https://")},
	}
	var out []pdf.ContactField
	for _, c := range candidates {
		if c.Value != "" {
			out = append(out, c)
		}
	}
	return out
}
