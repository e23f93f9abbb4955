package anchor

import (
	"github.com/anchorkit/anchor/layout"
)

// Expr is an immutable, partially built layout constraint. Every method is
// a pure value transformation: it returns a copy of the receiver with one
// field changed and never fails, so chains can be split, shared and reused
// without interference. Invalid attribute combinations are not caught here;
// the host toolkit rejects them at registration time.
//
// The zero Expr is not useful; start a chain with For.
type Expr struct {
	item            layout.Item
	firstAttribute  layout.Attribute
	relation        layout.Relation
	secondItem      layout.Item
	secondAttribute layout.Attribute
	multiplier      float64
	constant        float64
	priority        layout.Priority
	identifier      *string
}

// For starts a constraint expression anchored to item. The expression
// defaults to relation Equal, multiplier 1, constant 0, priority
// PriorityRequired, with no attributes, second item or identifier set.
//
// Items are held by reference and compared by identity; the caller keeps
// ownership of the underlying object.
func For(item layout.Item) Expr {
	return Expr{
		item:       item,
		relation:   layout.Equal,
		multiplier: 1,
		priority:   layout.PriorityRequired,
	}
}

// Reset discards all accumulated state except the anchor item, yielding the
// same expression For(item) would. Composite helpers rely on it so one
// produced sub-constraint cannot bleed attribute state into the next.
func (e Expr) Reset() Expr {
	return For(e.item)
}

// Attribute applies a to the expression. It writes the first-attribute slot
// while that slot is empty or no second item has been named; once both are
// populated it writes (and on further calls overwrites) the
// second-attribute slot. This mirrors the reading order of
// "first.attr RELATION second.attr", letting a chain like
//
//	For(a).Top().EqualTo(b).Bottom()
//
// target both slots without naming them.
func (e Expr) Attribute(a layout.Attribute) Expr {
	if e.firstAttribute == layout.NotAnAttribute || e.secondItem == nil {
		e.firstAttribute = a
	} else {
		e.secondAttribute = a
	}
	return e
}

// WithFirstAttribute sets the first-attribute slot directly, bypassing the
// Attribute routing rule.
func (e Expr) WithFirstAttribute(a layout.Attribute) Expr {
	e.firstAttribute = a
	return e
}

// WithSecondAttribute sets the second-attribute slot directly, bypassing the
// Attribute routing rule.
func (e Expr) WithSecondAttribute(a layout.Attribute) Expr {
	e.secondAttribute = a
	return e
}

// WithRelation sets the relation.
func (e Expr) WithRelation(r layout.Relation) Expr {
	e.relation = r
	return e
}

// To sets the second item the constraint relates the anchor to.
func (e Expr) To(item layout.Item) Expr {
	e.secondItem = item
	return e
}

// WithMultiplier sets the multiplier applied to the second side.
func (e Expr) WithMultiplier(m float64) Expr {
	e.multiplier = m
	return e
}

// WithConstant sets the constant added to the second side.
func (e Expr) WithConstant(c float64) Expr {
	e.constant = c
	return e
}

// WithPriority sets the constraint priority.
func (e Expr) WithPriority(p layout.Priority) Expr {
	e.priority = p
	return e
}

// WithIdentifier labels the constraint for later lookup, e.g. through
// layout.IdentifiedBy.
func (e Expr) WithIdentifier(id string) Expr {
	e.identifier = &id
	return e
}

// Equals reports structural equality of the two expressions. The item
// fields are compared by identity, everything else by value.
func (e Expr) Equals(o Expr) bool {
	if e.item != o.item || e.secondItem != o.secondItem {
		return false
	}
	if e.identifier != nil && o.identifier != nil {
		if *e.identifier != *o.identifier {
			return false
		}
	} else if e.identifier != o.identifier {
		return false
	}
	return e.firstAttribute == o.firstAttribute &&
		e.relation == o.relation &&
		e.secondAttribute == o.secondAttribute &&
		e.multiplier == o.multiplier &&
		e.constant == o.constant &&
		e.priority == o.priority
}
