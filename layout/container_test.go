package layout_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anchorkit/anchor/layout"
)

func TestGroup(t *testing.T) {
	assert := require.New(t)

	g := layout.NewGroup()
	assert.Equal(0, g.Len())
	assert.Empty(g.Constraints())

	c1 := &layout.Constraint{Identifier: "one"}
	c2 := &layout.Constraint{Identifier: "two"}
	c3 := &layout.Constraint{Identifier: "three"}

	g.AddConstraint(c1)
	g.AddConstraints([]*layout.Constraint{c2, c3})
	assert.Equal(3, g.Len())

	got := g.Constraints()
	assert.Same(c1, got[0])
	assert.Same(c2, got[1])
	assert.Same(c3, got[2])

	// Constraints returns a copy of the backing slice
	got[0] = c3
	assert.Same(c1, g.Constraints()[0])
}
