package layout

// Relation is the comparison between the two sides of a constraint.
type Relation int8

const (
	LessThanOrEqual    Relation = -1
	Equal              Relation = 0
	GreaterThanOrEqual Relation = 1
)

// String returns the string representation of a relation
func (r Relation) String() string {
	switch r {
	case LessThanOrEqual:
		return "<="
	case GreaterThanOrEqual:
		return ">="
	default:
		return "=="
	}
}
