package layout

// Attribute identifies the facet of an item a constraint refers to.
type Attribute uint8

const (
	// NotAnAttribute is the zero value; an Attribute field left at
	// NotAnAttribute means "no attribute set yet".
	NotAnAttribute Attribute = iota
	Left
	Right
	Top
	Bottom
	Leading
	Trailing
	Width
	Height
	CenterX
	CenterY
	LastBaseline
	FirstBaseline
	LeftMargin
	RightMargin
	TopMargin
	BottomMargin
	LeadingMargin
	TrailingMargin
	CenterXWithinMargins
	CenterYWithinMargins
)

// String returns the string representation of an attribute
func (a Attribute) String() string {
	switch a {
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Leading:
		return "leading"
	case Trailing:
		return "trailing"
	case Width:
		return "width"
	case Height:
		return "height"
	case CenterX:
		return "centerX"
	case CenterY:
		return "centerY"
	case LastBaseline:
		return "lastBaseline"
	case FirstBaseline:
		return "firstBaseline"
	case LeftMargin:
		return "leftMargin"
	case RightMargin:
		return "rightMargin"
	case TopMargin:
		return "topMargin"
	case BottomMargin:
		return "bottomMargin"
	case LeadingMargin:
		return "leadingMargin"
	case TrailingMargin:
		return "trailingMargin"
	case CenterXWithinMargins:
		return "centerXWithinMargins"
	case CenterYWithinMargins:
		return "centerYWithinMargins"
	default:
		return "notAnAttribute"
	}
}

// IsMargin reports whether a is one of the margin (or within-margins)
// variants.
func (a Attribute) IsMargin() bool {
	switch a {
	case LeftMargin, RightMargin, TopMargin, BottomMargin,
		LeadingMargin, TrailingMargin, CenterXWithinMargins, CenterYWithinMargins:
		return true
	default:
		return false
	}
}

// IsDimension reports whether a measures a size rather than a position.
func (a Attribute) IsDimension() bool {
	return a == Width || a == Height
}
