package colors

type Color [4]float32

var (
	White     = Color{1, 1, 1, 1}
	Black     = Color{0, 0, 0, 1}
	Red       = Color{1, 0, 0, 1}
	Green     = Color{0, 1, 0, 1}
	Blue      = Color{0, 0, 1, 1}
	Yellow    = Color{1, 1, 0, 1}
	Orange    = Color{1, 0.6, 0.1, 1}
	Gray      = Color{0.5, 0.5, 0.5, 1}
	DarkGray  = Color{0.08, 0.10, 0.12, 1}
	SlateBlue = Color{0.16, 0.20, 0.28, 1}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// Scale multiplies RGB by s, leaving alpha alone.
func (c Color) Scale(s float32) Color {
	c[0] *= s
	c[1] *= s
	c[2] *= s
	return c
}
