package anchor_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/anchorkit/anchor"
	"github.com/anchorkit/anchor/layout"
)

func TestExprSetBuild(t *testing.T) {
	assert := require.New(t)
	a, b := newView("a"), newView("b")

	s := anchor.For(a).SnapToEdges(b, layout.UniformInsets(10))

	// repeated builds yield fresh, value-identical constraints
	cs1 := s.Build()
	cs2 := s.Build()
	assert.Len(cs1, 4)
	assert.Empty(cmp.Diff(cs1, cs2, cmp.AllowUnexported(view{})))
	for i := range cs1 {
		assert.NotSame(cs1[i], cs2[i])
	}
}

func TestExprSetAttachTo(t *testing.T) {
	assert := require.New(t)
	a, b := newView("a"), newView("b")
	g := layout.NewGroup()

	cs := anchor.For(a).SnapToEdges(b, layout.Insets{}).AttachTo(g)
	assert.Equal(4, g.Len())
	got := g.Constraints()
	for i := range cs {
		assert.Same(cs[i], got[i])
	}
}

func TestExprSetWithPriorityAndIdentifier(t *testing.T) {
	assert := require.New(t)
	a, b := newView("a"), newView("b")

	s := anchor.For(a).AlignCenterWith(b)
	tagged := s.WithPriority(layout.PriorityDefaultHigh).WithIdentifier("centered")

	for _, c := range tagged.Build() {
		assert.Equal(layout.PriorityDefaultHigh, c.Priority)
		assert.Equal("centered", c.Identifier)
	}

	// the receiver is untouched
	for _, c := range s.Build() {
		assert.Equal(layout.PriorityRequired, c.Priority)
		assert.Equal("", c.Identifier)
	}
}

func TestExprSetIteration(t *testing.T) {
	assert := require.New(t)
	a, b := newView("a"), newView("b")

	s := anchor.For(a).EqualSizeWith(b)
	first := s.Exprs()
	second := s.Exprs()
	assert.Len(first, 2)
	for i := range first {
		assert.True(first[i].Equals(second[i]))
		assert.True(first[i].Equals(s.At(i)))
	}

	// the returned slice is a copy; mutating it cannot corrupt the set
	first[0] = anchor.For(b)
	assert.True(s.At(0).Equals(second[0]))
}

func TestExprSetEquals(t *testing.T) {
	assert := require.New(t)
	a, b := newView("a"), newView("b")

	assert.True(anchor.For(a).EqualSizeWith(b).Equals(anchor.For(a).EqualSizeWith(b)))
	assert.False(anchor.For(a).EqualSizeWith(b).Equals(anchor.For(b).EqualSizeWith(a)))
	assert.False(anchor.For(a).EqualSizeWith(b).Equals(anchor.For(a).AlignCenterWith(b)))
	assert.False(anchor.For(a).EqualSizeWith(b).Equals(anchor.For(a).SnapToEdges(b, layout.Insets{})))
}

func TestExprSetString(t *testing.T) {
	assert := require.New(t)
	a, b := newView("a"), newView("b")

	out := anchor.For(a).EqualSizeWith(b).String()
	lines := strings.Split(out, "\n")
	assert.Len(lines, 4)
	assert.Equal("<ConstraintSet", lines[0])
	assert.Equal("\t<Constraint a.width == b.width>", lines[1])
	assert.Equal("\t<Constraint a.height == b.height>", lines[2])
	assert.Equal(">", lines[3])
}
