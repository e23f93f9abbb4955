package layout

import (
	"github.com/anchorkit/anchor/debug"
	"github.com/anchorkit/anchor/logger"
)

// Container is the host-owned registration point for materialized
// constraints. Registering a constraint hands it to the host solver; any
// rejection of a semantically invalid combination happens there, on the
// host's terms.
type Container interface {
	AddConstraint(c *Constraint)
	AddConstraints(cs []*Constraint)
}

// Group is a basic in-memory Container. Hosts embedding anchor can use it
// as the backing store for a view's constraint list; tests use it to observe
// what a chain attached.
//
// Group is not safe for concurrent mutation; callers follow whatever
// threading discipline their toolkit imposes on constraint registration.
type Group struct {
	constraints []*Constraint
}

// NewGroup returns an empty constraint group.
func NewGroup() *Group {
	return &Group{}
}

// AddConstraint registers a single constraint with the group.
func (g *Group) AddConstraint(c *Constraint) {
	log := logger.Logger()
	if debug.Debug {
		log.Debug().Str("constraint", c.String()).Str("stack", debug.Stack()).Msg("registering constraint")
	} else {
		log.Debug().Str("constraint", c.String()).Msg("registering constraint")
	}
	g.constraints = append(g.constraints, c)
}

// AddConstraints registers a batch of constraints, preserving order.
func (g *Group) AddConstraints(cs []*Constraint) {
	for _, c := range cs {
		g.AddConstraint(c)
	}
}

// Len returns the number of registered constraints.
func (g *Group) Len() int {
	return len(g.constraints)
}

// Constraints returns a copy of the registered constraints in registration
// order.
func (g *Group) Constraints() []*Constraint {
	out := make([]*Constraint, len(g.constraints))
	copy(out, g.constraints)
	return out
}

// Filter returns the registered constraints matching pred, typically a
// predicate built with IdentifiedBy.
func (g *Group) Filter(pred func(any) bool) []*Constraint {
	var out []*Constraint
	for _, c := range g.constraints {
		if pred(c) {
			out = append(out, c)
		}
	}
	return out
}
