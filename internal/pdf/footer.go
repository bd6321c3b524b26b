package pdf

import "fmt"

// FinalizeFooters writes "Page N of M" centered near the bottom of every
// page. It must run after all content layout, because the total page count
// is only known then. Single-page documents get no footer at all.
func (d *Doc) FinalizeFooters() {
	total := len(d.pages)
	if total <= 1 {
		return
	}

	g := d.geo
	y := g.PageHeight - g.Margin + g.FooterOffset
	for i, page := range d.pages {
		page.Texts = append(page.Texts, TextOp{
			X:     g.PageWidth / 2,
			Y:     y,
			Text:  fmt.Sprintf("Page %d of %d", i+1, total),
			Font:  FontSmall,
			Color: ColorLightGray,
			Align: AlignCenter,
		})
	}
}
