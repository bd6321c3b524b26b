package pdf

// Align selects horizontal anchoring for a text run.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextOp is one absolutely positioned text run. X and Y are in millimeters;
// Y is the text baseline. For AlignCenter and AlignRight, X is the anchor
// the run is centered on or ends at.
type TextOp struct {
	X, Y  float64
	Text  string
	Font  Font
	Color string
	Align Align
}

// LineOp is one straight line segment.
type LineOp struct {
	X1, Y1, X2, Y2 float64
	Width          float64
	Color          string
}

// Page holds the draw primitives for one fixed-size page, in draw order.
type Page struct {
	Texts []TextOp
	Lines []LineOp
}

// Doc accumulates pages during layout. The cursor itself travels through the
// render functions as an explicit Y value; Doc only tracks which page is
// current and collects primitives.
type Doc struct {
	geo     Geometry
	measure Measurer
	pages   []*Page
}

// NewDoc starts a document with one empty page. measure may be nil, in which
// case ApproxMeasurer is used.
func NewDoc(geo Geometry, measure Measurer) *Doc {
	if measure == nil {
		measure = ApproxMeasurer
	}
	return &Doc{
		geo:     geo,
		measure: measure,
		pages:   []*Page{{}},
	}
}

// Pages returns the accumulated pages in order.
func (d *Doc) Pages() []*Page {
	return d.pages
}

// PageCount returns the number of pages laid out so far.
func (d *Doc) PageCount() int {
	return len(d.pages)
}

func (d *Doc) current() *Page {
	return d.pages[len(d.pages)-1]
}

// newPage finalizes the current page and returns the cursor position at the
// top margin of the fresh one.
func (d *Doc) newPage() float64 {
	d.pages = append(d.pages, &Page{})
	return d.geo.Margin
}

func (d *Doc) text(x, y float64, s string, f Font, color string, align Align) {
	d.current().Texts = append(d.current().Texts, TextOp{
		X: x, Y: y, Text: s, Font: f, Color: color, Align: align,
	})
}

// textLines draws wrapped lines stacked at LineHeight intervals starting at
// baseline y, and returns the cursor past the block.
func (d *Doc) textLines(x, y float64, lines []string, f Font, color string) float64 {
	for i, line := range lines {
		d.text(x, y+float64(i)*d.geo.LineHeight, line, f, color, AlignLeft)
	}
	return y + float64(len(lines))*d.geo.LineHeight
}

func (d *Doc) hline(x1, y, x2, width float64, color string) {
	d.current().Lines = append(d.current().Lines, LineOp{
		X1: x1, Y1: y, X2: x2, Y2: y, Width: width, Color: color,
	})
}
