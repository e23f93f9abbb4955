package anchor

import (
	"strings"

	"github.com/anchorkit/anchor/layout"
)

// ExprSet is an ordered, immutable collection of expressions produced by
// the composite helpers. It supports the same terminal operations as a
// single Expr, applied across all members in order.
type ExprSet struct {
	exprs []Expr
}

// NewExprSet groups the given expressions, preserving order.
func NewExprSet(exprs ...Expr) ExprSet {
	return ExprSet{exprs: exprs}
}

// Len returns the number of member expressions.
func (s ExprSet) Len() int {
	return len(s.exprs)
}

// At returns the i-th member expression.
func (s ExprSet) At(i int) Expr {
	return s.exprs[i]
}

// Exprs returns a copy of the member expressions in order. Re-invoking it
// yields the same members; the set never changes after construction.
func (s ExprSet) Exprs() []Expr {
	out := make([]Expr, len(s.exprs))
	copy(out, s.exprs)
	return out
}

// Build materializes every member in order.
func (s ExprSet) Build() []*layout.Constraint {
	out := make([]*layout.Constraint, len(s.exprs))
	for i, e := range s.exprs {
		out[i] = e.Build()
	}
	return out
}

// AttachTo builds all members, registers them with container in one batch
// and returns them.
func (s ExprSet) AttachTo(container layout.Container) []*layout.Constraint {
	cs := s.Build()
	container.AddConstraints(cs)
	return cs
}

// WithPriority returns a new set with the priority applied to every member.
func (s ExprSet) WithPriority(p layout.Priority) ExprSet {
	out := make([]Expr, len(s.exprs))
	for i, e := range s.exprs {
		out[i] = e.WithPriority(p)
	}
	return ExprSet{exprs: out}
}

// WithIdentifier returns a new set with the identifier applied to every
// member.
func (s ExprSet) WithIdentifier(id string) ExprSet {
	out := make([]Expr, len(s.exprs))
	for i, e := range s.exprs {
		out[i] = e.WithIdentifier(id)
	}
	return ExprSet{exprs: out}
}

// Equals reports structural equality: same length, pairwise equal members.
func (s ExprSet) Equals(o ExprSet) bool {
	if len(s.exprs) != len(o.exprs) {
		return false
	}
	for i := range s.exprs {
		if !s.exprs[i].Equals(o.exprs[i]) {
			return false
		}
	}
	return true
}

// String renders each member's debug form, one per line, between constant
// header and footer markers.
func (s ExprSet) String() string {
	var sbb strings.Builder
	sbb.WriteString("<ConstraintSet\n")
	for _, e := range s.exprs {
		sbb.WriteByte('\t')
		sbb.WriteString(e.String())
		sbb.WriteByte('\n')
	}
	sbb.WriteString(">")
	return sbb.String()
}
