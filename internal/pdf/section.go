package pdf

import "strings"

// RenderSectionTitle draws an uppercased title with a short accent underline
// and returns the cursor far enough past the underline that the first
// content line cannot overlap it.
func (d *Doc) RenderSectionTitle(title string, y float64) float64 {
	g := d.geo

	d.text(g.Margin, y, strings.ToUpper(title), FontSectionTitle, ColorPrimary, AlignLeft)

	underlineY := y + 1
	d.hline(g.Margin, underlineY, g.Margin+30, 0.3, ColorAccent)

	return underlineY + g.TitleGap
}

// RenderSummary word-wraps the summary paragraph to the content width and
// returns the cursor past it plus the section gap.
func (d *Doc) RenderSummary(text string, y float64) float64 {
	lines := SplitText(d.measure, text, FontBody, d.geo.ContentWidth())
	y = d.textLines(d.geo.Margin, y, lines, FontBody, ColorSecondary)
	return y + d.geo.SectionSpacing
}

// RenderExperienceItem draws one job: title and period on a shared baseline,
// organization, then the bullets in order. Before each bullet the remaining
// space is checked once; a bullet that would start below the break threshold
// moves to a new page with the cursor reset to the top margin. The check is
// per bullet, not per wrapped line, so a single bullet wrapping many lines
// can still run past the threshold it started above.
func (d *Doc) RenderExperienceItem(e ExperienceEntry, y float64) float64 {
	g := d.geo

	d.text(g.Margin, y, e.Title, FontJobTitle, ColorPrimary, AlignLeft)
	d.text(g.PageWidth-g.Margin, y, e.Period, FontPeriod, ColorLightGray, AlignRight)
	y += g.LineHeight + g.ItemSpacing

	d.text(g.Margin, y, e.Organization, FontOrganization, ColorAccent, AlignLeft)
	y += g.LineHeight + g.ItemSpacing

	bulletWidth := g.ContentWidth() - g.BulletIndent - 2
	for _, bullet := range e.Bullets {
		if y > g.breakThreshold(g.BottomSlack) {
			y = d.newPage()
		}
		lines := SplitText(d.measure, "• "+bullet, FontBody, bulletWidth)
		y = d.textLines(g.Margin+g.BulletIndent, y, lines, FontBody, ColorSecondary)
		y += g.ItemSpacing
	}

	return y + g.SectionSpacing
}

// RenderEducationItem draws a degree line and the school/year line under it.
func (d *Doc) RenderEducationItem(e EducationEntry, y float64) float64 {
	g := d.geo

	d.text(g.Margin, y, e.Degree, FontJobTitle, ColorPrimary, AlignLeft)
	d.text(g.Margin, y+g.LineHeight+g.ItemSpacing, e.School+" | "+e.Years, FontBody, ColorLightGray, AlignLeft)

	return y + g.LineHeight*2 + g.ItemSpacing + g.SectionSpacing
}

// RenderLanguages draws the language names on a single wrapped line.
func (d *Doc) RenderLanguages(languages []string, y float64) float64 {
	lines := SplitText(d.measure, strings.Join(languages, ", "), FontBody, d.geo.ContentWidth())
	y = d.textLines(d.geo.Margin, y, lines, FontBody, ColorSecondary)
	return y + d.geo.SectionSpacing
}
