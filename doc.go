// Package anchor provides a fluent, immutable builder API for linear layout
// constraints of the form
//
//	first.attribute RELATION multiplier*second.attribute + constant
//
// An expression chain starts from an item, names attributes and relations in
// natural reading order, and materializes into native layout.Constraint
// objects:
//
//	c := anchor.For(badge).Top().EqualTo(card).Top().Plus(8).Build()
//
//	anchor.For(badge).SnapToEdges(card, layout.UniformInsets(10)).AttachTo(container)
//
// Every chained call returns a new value; expressions are freely shareable
// and reusable. anchor performs no layout solving and no validation; the
// host toolkit that consumes the built constraints is the single source of
// truth for geometric validity.
package anchor

import (
	"github.com/blang/semver/v4"
)

// Version of the anchor library
var Version = semver.MustParse("0.2.0")
