package anchor

import (
	"github.com/anchorkit/anchor/layout"
)

// EqualTo sets the relation to Equal and combines the operand into the
// expression. The operand may be:
//
//   - another Expr: its anchor item and first attribute become the second
//     item and second attribute of the receiver, and its multiplier,
//     constant and identifier are adopted, so
//     For(a).Top().EqualTo(For(b).Bottom().Plus(4)) reads as
//     "a.top == b.bottom + 4";
//   - a number (any integer or float type): the second side is that bare
//     constant, as in For(a).Width().EqualTo(200);
//   - anything else: an opaque item, becoming the second item, with the
//     second attribute left for a later routed attribute call.
//
// Numbers are always treated as constants, so a host whose items are plain
// numeric values must use To instead.
func (e Expr) EqualTo(v interface{}) Expr {
	return e.relate(layout.Equal, v)
}

// LessOrEqualTo is EqualTo with relation LessThanOrEqual.
func (e Expr) LessOrEqualTo(v interface{}) Expr {
	return e.relate(layout.LessThanOrEqual, v)
}

// GreaterOrEqualTo is EqualTo with relation GreaterThanOrEqual.
func (e Expr) GreaterOrEqualTo(v interface{}) Expr {
	return e.relate(layout.GreaterThanOrEqual, v)
}

func (e Expr) relate(r layout.Relation, v interface{}) Expr {
	e.relation = r
	if o, ok := v.(Expr); ok {
		e.secondItem = o.item
		e.secondAttribute = o.firstAttribute
		e.multiplier = o.multiplier
		e.constant = o.constant
		e.identifier = o.identifier
		return e
	}
	if f, ok := toFloat(v); ok {
		e.constant = f
		return e
	}
	e.secondItem = v
	return e
}

// Plus sets the constant added to the second side of the relation.
func (e Expr) Plus(c float64) Expr {
	return e.WithConstant(c)
}

// Minus sets the constant to the negation of c.
func (e Expr) Minus(c float64) Expr {
	return e.WithConstant(-c)
}

// ScaledBy sets the multiplier applied to the second side of the relation.
func (e Expr) ScaledBy(m float64) Expr {
	return e.WithMultiplier(m)
}

// toFloat coerces any integer or float value to float64.
func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
