package anchor

import (
	"github.com/anchorkit/anchor/layout"
)

// Named attribute accessors. Each is a convenience call into Attribute and
// follows its first-then-second routing rule.

func (e Expr) Left() Expr     { return e.Attribute(layout.Left) }
func (e Expr) Right() Expr    { return e.Attribute(layout.Right) }
func (e Expr) Top() Expr      { return e.Attribute(layout.Top) }
func (e Expr) Bottom() Expr   { return e.Attribute(layout.Bottom) }
func (e Expr) Leading() Expr  { return e.Attribute(layout.Leading) }
func (e Expr) Trailing() Expr { return e.Attribute(layout.Trailing) }
func (e Expr) Width() Expr    { return e.Attribute(layout.Width) }
func (e Expr) Height() Expr   { return e.Attribute(layout.Height) }
func (e Expr) CenterX() Expr  { return e.Attribute(layout.CenterX) }
func (e Expr) CenterY() Expr  { return e.Attribute(layout.CenterY) }

// Baseline is the last (bottom-most) baseline of the item's text.
func (e Expr) Baseline() Expr      { return e.Attribute(layout.LastBaseline) }
func (e Expr) FirstBaseline() Expr { return e.Attribute(layout.FirstBaseline) }

func (e Expr) LeftMargin() Expr     { return e.Attribute(layout.LeftMargin) }
func (e Expr) RightMargin() Expr    { return e.Attribute(layout.RightMargin) }
func (e Expr) TopMargin() Expr      { return e.Attribute(layout.TopMargin) }
func (e Expr) BottomMargin() Expr   { return e.Attribute(layout.BottomMargin) }
func (e Expr) LeadingMargin() Expr  { return e.Attribute(layout.LeadingMargin) }
func (e Expr) TrailingMargin() Expr { return e.Attribute(layout.TrailingMargin) }

func (e Expr) CenterXWithinMargins() Expr { return e.Attribute(layout.CenterXWithinMargins) }
func (e Expr) CenterYWithinMargins() Expr { return e.Attribute(layout.CenterYWithinMargins) }

// NotAnAttribute applies the no-attribute sentinel, useful when a chain
// needs to blank a slot it has already routed to.
func (e Expr) NotAnAttribute() Expr { return e.Attribute(layout.NotAnAttribute) }
