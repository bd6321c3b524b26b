package pdf

// ComposeResume lays out the whole document in section order and returns the
// finished pages, footers included. Pure function of its inputs: identical
// document, geometry, and measurer always yield identical pages.
func ComposeResume(r Resume, geo Geometry, measure Measurer) []*Page {
	d := NewDoc(geo, measure)

	y := d.RenderHeader(r.Header)

	if r.Summary != "" {
		y = d.RenderSectionTitle("Professional Summary", y)
		y = d.RenderSummary(r.Summary, y)
	}

	if len(r.Experience) > 0 {
		y = d.RenderSectionTitle("Professional Experience", y)
		for _, e := range r.Experience {
			y = d.RenderExperienceItem(e, y)
		}
	}

	if len(r.Education) > 0 {
		y = d.RenderSectionTitle("Education", y)
		for _, e := range r.Education {
			y = d.RenderEducationItem(e, y)
		}
	}

	if len(r.Skills) > 0 {
		y = d.RenderSkillsSection(r.Skills, y)
	}

	if len(r.Languages) > 0 {
		y = d.RenderSectionTitle("Languages", y)
		d.RenderLanguages(r.Languages, y)
	}

	d.FinalizeFooters()
	return d.Pages()
}
