package anchor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anchorkit/anchor"
	"github.com/anchorkit/anchor/layout"
)

func TestSnapToEdges(t *testing.T) {
	assert := require.New(t)
	a, b := newView("a"), newView("b")

	s := anchor.For(a).SnapToEdges(b, layout.UniformInsets(10))
	assert.Equal(4, s.Len())

	wantAttrs := []layout.Attribute{layout.Top, layout.Leading, layout.Bottom, layout.Trailing}
	wantConsts := []float64{10, 10, -10, -10}
	for i, c := range s.Build() {
		assert.Same(a, c.FirstItem)
		assert.Same(b, c.SecondItem)
		assert.Equal(wantAttrs[i], c.FirstAttribute)
		assert.Equal(wantAttrs[i], c.SecondAttribute)
		assert.Equal(layout.Equal, c.Relation)
		assert.Equal(wantConsts[i], c.Constant)
	}
}

func TestSnapToEdgesInsets(t *testing.T) {
	assert := require.New(t)
	a, b := newView("a"), newView("b")

	s := anchor.For(a).SnapToEdges(b, layout.Insets{Top: 1, Left: 2, Bottom: 3, Right: 4})
	wantConsts := []float64{1, 2, -3, -4}
	for i, c := range s.Build() {
		assert.Equal(wantConsts[i], c.Constant)
	}

	// zero insets pin flush
	for _, c := range anchor.For(a).SnapToEdges(b, layout.Insets{}).Build() {
		assert.Equal(float64(0), c.Constant)
	}
}

func TestSnapToMargins(t *testing.T) {
	assert := require.New(t)
	a, b := newView("a"), newView("b")

	s := anchor.For(a).SnapToMargins(b, layout.UniformInsets(5))
	assert.Equal(4, s.Len())

	wantFirst := []layout.Attribute{layout.Top, layout.Leading, layout.Bottom, layout.Trailing}
	wantSecond := []layout.Attribute{layout.TopMargin, layout.LeadingMargin, layout.BottomMargin, layout.TrailingMargin}
	wantConsts := []float64{5, 5, -5, -5}
	for i, c := range s.Build() {
		assert.Equal(wantFirst[i], c.FirstAttribute)
		assert.Equal(wantSecond[i], c.SecondAttribute)
		assert.Equal(wantConsts[i], c.Constant)
		assert.True(c.SecondAttribute.IsMargin())
	}
}

func TestEqualSizeWith(t *testing.T) {
	assert := require.New(t)
	a, b := newView("a"), newView("b")

	s := anchor.For(a).EqualSizeWith(b)
	assert.Equal(2, s.Len())

	cs := s.Build()
	assert.Equal(layout.Width, cs[0].FirstAttribute)
	assert.Equal(layout.Width, cs[0].SecondAttribute)
	assert.Equal(layout.Height, cs[1].FirstAttribute)
	assert.Equal(layout.Height, cs[1].SecondAttribute)
	for _, c := range cs {
		assert.Same(b, c.SecondItem)
		assert.Equal(layout.Equal, c.Relation)
	}
}

func TestEqualSize(t *testing.T) {
	assert := require.New(t)
	a := newView("a")

	s := anchor.For(a).EqualSize(layout.Size{Width: 200, Height: 100})
	assert.Equal(2, s.Len())

	cs := s.Build()
	assert.Equal(layout.Width, cs[0].FirstAttribute)
	assert.Equal(float64(200), cs[0].Constant)
	assert.Equal(layout.Height, cs[1].FirstAttribute)
	assert.Equal(float64(100), cs[1].Constant)
	for _, c := range cs {
		assert.Nil(c.SecondItem)
	}
}

func TestAlignCenterWith(t *testing.T) {
	assert := require.New(t)
	a, b := newView("a"), newView("b")

	s := anchor.For(a).AlignCenterWith(b)
	assert.Equal(2, s.Len())

	cs := s.Build()
	assert.Equal(layout.CenterY, cs[0].FirstAttribute)
	assert.Equal(layout.CenterY, cs[0].SecondAttribute)
	assert.Equal(layout.CenterX, cs[1].FirstAttribute)
	assert.Equal(layout.CenterX, cs[1].SecondAttribute)
}

func TestCompositeResetsChainState(t *testing.T) {
	assert := require.New(t)
	a, b, other := newView("a"), newView("b"), newView("other")

	// partial chain state on the receiver must not leak into the members
	dirty := anchor.For(a).Width().EqualTo(other).WithIdentifier("dirty").SnapToEdges(b, layout.Insets{})
	clean := anchor.For(a).SnapToEdges(b, layout.Insets{})
	assert.True(dirty.Equals(clean))
}
