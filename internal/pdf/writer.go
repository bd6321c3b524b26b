package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// Writer turns laid-out pages into PDF bytes. The geometry and ordering of
// primitives is owned by the layout; Writer only replays them into fpdf.
// Writer also exposes a Measurer backed by real Helvetica metrics, so layout
// decisions match what the binding will draw.
type Writer struct {
	geo Geometry
	pdf *fpdf.Fpdf
	tr  func(string) string
}

// NewWriter creates a writer for the given geometry.
func NewWriter(geo Geometry) *Writer {
	doc := fpdf.New("P", "mm", "A4", "")
	// Page breaks are the paginator's decision, never fpdf's.
	doc.SetAutoPageBreak(false, 0)
	// Uncompressed keeps the text layer trivially extractable for ATS
	// parsers.
	doc.SetCompression(false)
	return &Writer{
		geo: geo,
		pdf: doc,
		// Core fonts are cp1252; translate UTF-8 input (bullet glyphs,
		// accented names) instead of garbling it.
		tr: doc.UnicodeTranslatorFromDescriptor(""),
	}
}

// Measure reports the true rendered width of s, for use as the layout's
// Measurer.
func (w *Writer) Measure(s string, f Font) float64 {
	w.pdf.SetFont("Helvetica", fontStyle(f), f.Size)
	return w.pdf.GetStringWidth(w.tr(s))
}

// Render replays the pages into the underlying document and returns the PDF
// byte stream.
func (w *Writer) Render(pages []*Page) ([]byte, error) {
	for _, page := range pages {
		w.pdf.AddPage()

		for _, l := range page.Lines {
			r, g, b := hexRGB(l.Color)
			w.pdf.SetDrawColor(r, g, b)
			w.pdf.SetLineWidth(l.Width)
			w.pdf.Line(l.X1, l.Y1, l.X2, l.Y2)
		}

		for _, t := range page.Texts {
			w.pdf.SetFont("Helvetica", fontStyle(t.Font), t.Font.Size)
			r, g, b := hexRGB(t.Color)
			w.pdf.SetTextColor(r, g, b)

			txt := w.tr(t.Text)
			x := t.X
			switch t.Align {
			case AlignCenter:
				x -= w.pdf.GetStringWidth(txt) / 2
			case AlignRight:
				x -= w.pdf.GetStringWidth(txt)
			}
			w.pdf.Text(x, t.Y, txt)
		}
	}

	var buf bytes.Buffer
	if err := w.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderResume is the one-call path: lay out the resume with the writer's
// own font metrics and return the PDF bytes.
func RenderResume(r Resume) ([]byte, error) {
	geo := DefaultGeometry()
	w := NewWriter(geo)
	pages := ComposeResume(r, geo, w.Measure)
	return w.Render(pages)
}

func fontStyle(f Font) string {
	if f.Bold {
		return "B"
	}
	return ""
}

// hexRGB parses a #rrggbb color. Unparseable input draws black rather than
// failing: color is cosmetic, layout is not.
func hexRGB(hex string) (int, int, int) {
	var r, g, b int
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return 0, 0, 0
	}
	return r, g, b
}
