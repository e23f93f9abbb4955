package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders the constraint in its canonical debug form:
//
//	<Constraint id first.attr REL mult * second.attr + const>
//
// The identifier segment is omitted when empty, the multiplier segment when
// the multiplier is 1, the constant segment when the constant is 0, and the
// second side when there is no second item.
func (c *Constraint) String() string {
	var sbb strings.Builder
	sbb.WriteString("<Constraint")
	if c.Identifier != "" {
		sbb.WriteByte(' ')
		sbb.WriteString(c.Identifier)
	}
	sbb.WriteByte(' ')
	sbb.WriteString(itemString(c.FirstItem))
	sbb.WriteByte('.')
	sbb.WriteString(c.FirstAttribute.String())
	sbb.WriteByte(' ')
	sbb.WriteString(c.Relation.String())
	if c.SecondItem != nil {
		if c.Multiplier != 1 {
			sbb.WriteByte(' ')
			sbb.WriteString(formatFloat(c.Multiplier))
			sbb.WriteString(" *")
		}
		sbb.WriteByte(' ')
		sbb.WriteString(itemString(c.SecondItem))
		sbb.WriteByte('.')
		sbb.WriteString(c.SecondAttribute.String())
	}
	if c.Constant != 0 {
		sbb.WriteString(" + ")
		sbb.WriteString(formatFloat(c.Constant))
	}
	sbb.WriteByte('>')
	return sbb.String()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// itemString prefers an item's own Stringer; otherwise it falls back to the
// fmt default rendering.
func itemString(it Item) string {
	if s, ok := it.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", it)
}
