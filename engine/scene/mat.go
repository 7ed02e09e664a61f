package scene

import "math"

// ---- tiny mat helpers (column-major, GLSL-style) ----

func deg2rad(deg float32) float32 { return deg * math.Pi / 180 }

func sincos(a float32) (s, c float32) {
	sf, cf := math.Sincos(float64(a))
	return float32(sf), float32(cf)
}

func translate(x, y, z float32) [16]float32 {
	return [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

func rotateX(a float32) [16]float32 {
	c := float32(math.Cos(float64(a)))
	s := float32(math.Sin(float64(a)))
	return [16]float32{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

func rotateY(a float32) [16]float32 {
	c := float32(math.Cos(float64(a)))
	s := float32(math.Sin(float64(a)))
	return [16]float32{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

func perspective(fovyRad, aspect, near, far float32) [16]float32 {
	f := float32(1.0 / math.Tan(float64(fovyRad)*0.5))
	nf := 1 / (near - far)
	return [16]float32{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, -1,
		0, 0, 2 * far * near * nf, 0,
	}
}

func ortho(l, r, b, t, n, f float32) [16]float32 {
	rl := 1 / (r - l)
	tb := 1 / (t - b)
	fn := 1 / (f - n)
	return [16]float32{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(r + l) * rl, -(t + b) * tb, -(f + n) * fn, 1,
	}
}

// mul returns the product a*b: b is applied to a vector first, then a.
func mul(a, b [16]float32) [16]float32 {
	var out [16]float32
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i+4*j] = a[i+0]*b[0+4*j] + a[i+4]*b[1+4*j] + a[i+8]*b[2+4*j] + a[i+12]*b[3+4*j]
		}
	}
	return out
}
