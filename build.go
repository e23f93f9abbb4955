package anchor

import (
	"github.com/anchorkit/anchor/debug"
	"github.com/anchorkit/anchor/layout"
	"github.com/anchorkit/anchor/logger"
)

// Build materializes the expression into a native constraint. Each call
// returns a fresh object; no state is shared between repeated builds. No
// validation happens here; a semantically invalid combination surfaces
// from the host toolkit once the constraint is registered.
func (e Expr) Build() *layout.Constraint {
	c := e.materialize()
	if debug.Debug {
		logger.Logger().Debug().Str("constraint", c.String()).Msg("materialized constraint")
	}
	return c
}

// AttachTo builds the constraint, registers it with container and returns
// it. This is the only operation in the package with a side effect, and the
// side effect is container's: whatever threading rules the host imposes on
// constraint registration apply.
func (e Expr) AttachTo(container layout.Container) *layout.Constraint {
	c := e.Build()
	container.AddConstraint(c)
	return c
}

// String renders the expression in the same debug form a built constraint
// uses.
func (e Expr) String() string {
	return e.materialize().String()
}

func (e Expr) materialize() *layout.Constraint {
	c := &layout.Constraint{
		FirstItem:       e.item,
		FirstAttribute:  e.firstAttribute,
		Relation:        e.relation,
		SecondItem:      e.secondItem,
		SecondAttribute: e.secondAttribute,
		Multiplier:      e.multiplier,
		Constant:        e.constant,
		Priority:        e.priority,
	}
	if e.identifier != nil {
		c.Identifier = *e.identifier
	}
	return c
}
