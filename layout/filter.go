package layout

// Identified is implemented by host objects that expose a layout identifier.
// *Constraint is matched directly by IdentifiedBy without implementing it.
type Identified interface {
	LayoutIdentifier() string
}

// IdentifiedBy returns a predicate over opaque items that succeeds only when
// the item exposes a string identifier and pred accepts it. Use it to filter
// a host-owned constraint collection:
//
//	group.Filter(layout.IdentifiedBy(func(id string) bool {
//		return strings.HasPrefix(id, "sidebar")
//	}))
func IdentifiedBy(pred func(string) bool) func(any) bool {
	return func(v any) bool {
		switch it := v.(type) {
		case *Constraint:
			return it.Identifier != "" && pred(it.Identifier)
		case Identified:
			return pred(it.LayoutIdentifier())
		default:
			return false
		}
	}
}
