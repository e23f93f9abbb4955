// Package layout defines the constraint vocabulary (attributes, relations,
// priorities) and the native materialized form of a layout constraint; it
// consumes expressions built with the anchor root package.
//
// A Constraint is the final, inert description of one linear layout relation
// firstItem.attribute RELATION multiplier*secondItem.attribute + constant.
// The package performs no solving and no geometric validation; a Container
// (typically owned by the host toolkit) is the registration point where
// constraints take effect.
package layout
