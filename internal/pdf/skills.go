package pdf

import "strings"

// skillColumns is the fixed number of grid columns in the skills section.
const skillColumns = 3

// RenderSkillsSection lays the categories out in a fixed three-column grid,
// title included. Columns wrap independently, but the section advances the
// shared cursor once, by the tallest column, so a short column can never let
// the next section overlap a taller neighbor. The grid cannot be split
// mid-way: if remaining space is under the grid reservation, the whole
// section moves to a new page before anything is drawn.
func (d *Doc) RenderSkillsSection(categories []SkillCategory, y float64) float64 {
	g := d.geo

	if y > g.breakThreshold(g.GridSlack) {
		y = d.newPage()
	}

	y = d.RenderSectionTitle("Skills", y)

	colWidth := (g.ContentWidth() - 6) / skillColumns
	colX := [skillColumns]float64{
		g.Margin,
		g.Margin + colWidth + 2,
		g.Margin + colWidth*2 + 4,
	}

	maxHeight := 0.0
	rowTop := y
	for i, cat := range categories {
		col := i % skillColumns
		if i > 0 && col == 0 {
			// Overflow row for more than three categories.
			rowTop += maxHeight + g.ItemSpacing
			maxHeight = 0
		}
		x := colX[col]

		d.text(x, rowTop, strings.ToUpper(cat.Label), FontCategoryLabel, ColorAccent, AlignLeft)

		lines := SplitText(d.measure, strings.Join(cat.Skills, ", "), FontBody, colWidth-1)
		d.textLines(x, rowTop+g.LineHeight+g.ItemSpacing, lines, FontBody, ColorSecondary)

		colHeight := g.LineHeight + g.ItemSpacing + float64(len(lines))*g.LineHeight
		if colHeight > maxHeight {
			maxHeight = colHeight
		}
	}

	return rowTop + maxHeight + g.SectionSpacing
}
