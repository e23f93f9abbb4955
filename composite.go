package anchor

import (
	"github.com/anchorkit/anchor/layout"
)

// Composite helpers fan one anchor item out into the multi-constraint
// patterns that cover most layout code. Each produced member starts from a
// Reset of the receiver, so partial chain state on the receiver never leaks
// into the produced constraints.

// SnapToEdges pins the four edges of the anchor item to the same edges of
// other, inset by insets. The bottom and right insets are measured inward
// from the far edges, hence their negated constants. Pass
// layout.UniformInsets(v) for a uniform offset, or the zero Insets to pin
// flush.
func (e Expr) SnapToEdges(other layout.Item, insets layout.Insets) ExprSet {
	base := e.Reset()
	return NewExprSet(
		base.Top().EqualTo(other).Top().Plus(insets.Top),
		base.Leading().EqualTo(other).Leading().Plus(insets.Left),
		base.Bottom().EqualTo(other).Bottom().Plus(-insets.Bottom),
		base.Trailing().EqualTo(other).Trailing().Plus(-insets.Right),
	)
}

// SnapToMargins is SnapToEdges against the margin variants of other's
// edges: the anchor's top/leading/bottom/trailing meet other's
// topMargin/leadingMargin/bottomMargin/trailingMargin, with the same inset
// sign convention.
func (e Expr) SnapToMargins(other layout.Item, insets layout.Insets) ExprSet {
	base := e.Reset()
	return NewExprSet(
		base.Top().EqualTo(other).TopMargin().Plus(insets.Top),
		base.Leading().EqualTo(other).LeadingMargin().Plus(insets.Left),
		base.Bottom().EqualTo(other).BottomMargin().Plus(-insets.Bottom),
		base.Trailing().EqualTo(other).TrailingMargin().Plus(-insets.Right),
	)
}

// EqualSizeWith constrains the anchor item's width and height to other's.
func (e Expr) EqualSizeWith(other layout.Item) ExprSet {
	base := e.Reset()
	return NewExprSet(
		base.Width().EqualTo(other).Width(),
		base.Height().EqualTo(other).Height(),
	)
}

// EqualSize constrains the anchor item's width and height to the given
// constant size; no second item is involved.
func (e Expr) EqualSize(size layout.Size) ExprSet {
	base := e.Reset()
	return NewExprSet(
		base.Width().EqualTo(size.Width),
		base.Height().EqualTo(size.Height),
	)
}

// AlignCenterWith constrains the anchor item's center to other's.
func (e Expr) AlignCenterWith(other layout.Item) ExprSet {
	base := e.Reset()
	return NewExprSet(
		base.CenterY().EqualTo(other).CenterY(),
		base.CenterX().EqualTo(other).CenterX(),
	)
}
