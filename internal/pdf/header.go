package pdf

import "strings"

// RenderHeader draws the name, role, contact line, and divider at the top of
// the current page, and returns the cursor past the divider gap. The split
// name coloring is cosmetic; only the advance is load-bearing.
func (d *Doc) RenderHeader(h Header) float64 {
	g := d.geo
	y := g.Margin

	nameLineHeight := FontName.Size * 0.35
	roleLineHeight := FontSectionTitle.Size * 0.35

	// First name in primary, last name in accent on the same baseline.
	d.text(g.Margin, y, h.FirstName, FontName, ColorPrimary, AlignLeft)
	firstWidth := d.measure(h.FirstName+" ", FontName)
	d.text(g.Margin+firstWidth, y, h.LastName, FontName, ColorAccent, AlignLeft)
	y += nameLineHeight + 1

	d.text(g.Margin, y, strings.ToUpper(h.Role), FontSectionTitle, ColorAccent, AlignLeft)
	y += roleLineHeight + 1

	// Contact values joined on one logical line, wrapped if needed.
	values := make([]string, 0, len(h.Contacts))
	for _, c := range h.Contacts {
		if c.Value != "" {
			values = append(values, c.Value)
		}
	}
	contactLines := SplitText(d.measure, strings.Join(values, " | "), FontBody, g.ContentWidth())
	y = d.textLines(g.Margin, y, contactLines, FontBody, ColorSecondary)
	y += 1.5

	// Divider, thicker than the section underlines.
	d.hline(g.Margin, y, g.PageWidth-g.Margin, 0.8, ColorAccent)
	y += g.HeaderGap

	return y
}
