package layout

// Insets are distances measured inward from each edge of an item.
type Insets struct {
	Top    float64
	Left   float64
	Bottom float64
	Right  float64
}

// UniformInsets returns insets with the same distance v on all four sides.
func UniformInsets(v float64) Insets {
	return Insets{Top: v, Left: v, Bottom: v, Right: v}
}

// Size is a width/height pair.
type Size struct {
	Width  float64
	Height float64
}
