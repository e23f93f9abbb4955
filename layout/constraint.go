package layout

// Item is an opaque reference to a view/widget the host toolkit owns.
// Items are compared by identity only: two distinct items with identical
// properties are not the same item. Pointer types keep that property under
// the == operator, so hosts should hand out pointers (or other reference
// types) as items.
type Item interface{}

// Priority weighs a constraint against competing constraints when the host
// solver cannot satisfy all of them.
type Priority float64

const (
	// PriorityRequired marks a constraint the host solver must satisfy.
	// It is the default priority of every built constraint.
	PriorityRequired Priority = 1000

	PriorityDefaultHigh Priority = 750
	PriorityDefaultLow  Priority = 250
)

// Constraint is the native materialized form of one linear layout relation:
//
//	FirstItem.FirstAttribute RELATION Multiplier*SecondItem.SecondAttribute + Constant
//
// SecondItem == nil means the second side is the bare constant.
// Constraints are inert data; whether the described relation is
// geometrically satisfiable is decided by the host toolkit once the
// constraint is registered with a Container.
type Constraint struct {
	FirstItem       Item
	FirstAttribute  Attribute
	Relation        Relation
	SecondItem      Item
	SecondAttribute Attribute
	Multiplier      float64
	Constant        float64
	Priority        Priority
	Identifier      string
}
