// Package pdf lays out a structured resume document into absolutely
// positioned draw primitives across fixed-size pages. Layout is pure: the
// same document and geometry always produce the same pages. Byte output is
// delegated to the fpdf binding in writer.go.
package pdf

// Geometry fixes the page dimensions and vertical rhythm for one render.
// All values are in millimeters.
type Geometry struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64 // Uniform margin on all sides

	LineHeight     float64 // Vertical advance per wrapped text line
	SectionSpacing float64 // Gap after each logical section
	ItemSpacing    float64 // Gap between items within a section

	// BottomSlack is the reserved space above the bottom margin; a bullet
	// whose cursor has passed pageHeight-margin-BottomSlack triggers a page
	// break before it is drawn.
	BottomSlack float64
	// GridSlack is the larger reservation checked before the skills grid,
	// which cannot be split across pages.
	GridSlack float64

	HeaderGap    float64 // Divider to first section title
	TitleGap     float64 // Underline to first content line
	BulletIndent float64 // Left indent for bullet text
	FooterOffset float64 // Below the bottom margin line
}

// DefaultGeometry returns the A4 portrait geometry the resume is designed
// around.
func DefaultGeometry() Geometry {
	return Geometry{
		PageWidth:      210,
		PageHeight:     297,
		Margin:         12,
		LineHeight:     3.8,
		SectionSpacing: 4,
		ItemSpacing:    2,
		BottomSlack:    15,
		GridSlack:      45,
		HeaderGap:      6.5,
		TitleGap:       7.5,
		BulletIndent:   3,
		FooterOffset:   2,
	}
}

// ContentWidth is the horizontal space between the left and right margins.
func (g Geometry) ContentWidth() float64 {
	return g.PageWidth - g.Margin*2
}

// breakThreshold is the cursor position past which flowing content must move
// to a new page. slack is BottomSlack for bullets, GridSlack for the skills
// grid.
func (g Geometry) breakThreshold(slack float64) float64 {
	return g.PageHeight - g.Margin - slack
}

// Font describes the size and weight of a text run. Sizes are in points;
// the face itself is the binding's concern.
type Font struct {
	Size float64
	Bold bool
}

// Fonts used across the resume.
var (
	FontName          = Font{Size: 18, Bold: true}
	FontSectionTitle  = Font{Size: 10, Bold: true}
	FontJobTitle      = Font{Size: 9, Bold: true}
	FontOrganization  = Font{Size: 8, Bold: true}
	FontBody          = Font{Size: 8}
	FontPeriod        = Font{Size: 7, Bold: true}
	FontSmall         = Font{Size: 7}
	FontCategoryLabel = Font{Size: 7, Bold: true}
)

// Colors used across the resume, as #rrggbb hex.
const (
	ColorPrimary   = "#000000"
	ColorSecondary = "#333333"
	ColorAccent    = "#4f46e5"
	ColorLightGray = "#666666"
)
