package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinalizeFooters_MultiPage(t *testing.T) {
	geo := DefaultGeometry()
	d := NewDoc(geo, nil)
	d.newPage()
	d.newPage()

	d.FinalizeFooters()

	require.Equal(t, 3, d.PageCount())
	want := []string{"Page 1 of 3", "Page 2 of 3", "Page 3 of 3"}
	for i, page := range d.Pages() {
		require.Len(t, page.Texts, 1)
		footer := page.Texts[0]
		assert.Equal(t, want[i], footer.Text)
		assert.Equal(t, AlignCenter, footer.Align)
		assert.Equal(t, geo.PageWidth/2, footer.X)
		assert.InDelta(t, geo.PageHeight-geo.Margin+geo.FooterOffset, footer.Y, 1e-9)
	}
}

func TestFinalizeFooters_SinglePageGetsNoFooter(t *testing.T) {
	d := NewDoc(DefaultGeometry(), nil)
	d.FinalizeFooters()

	assert.Empty(t, d.Pages()[0].Texts)
}
