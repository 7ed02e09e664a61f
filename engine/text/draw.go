package text

import "github.com/hazelv/crane/engine/gfx/renderer2d"

// DrawText draws s with its top-left corner at (x,y). Positive Y goes
// downward, matching the overlay projection.
func DrawText(r2d *renderer2d.Renderer2D, f *Font, x, y float32, s string, color [4]float32) {
	penX := x
	baseY := y + f.Ascent
	var prev rune = -1

	for _, r := range s {
		if r == '\n' {
			penX = x
			baseY += LineHeight(f)
			prev = -1
			continue
		}

		g, ok := f.Glyphs[r]
		if !ok {
			if sp, ok2 := f.Glyphs[' ']; ok2 {
				penX += sp.Advance
			}
			prev = r
			continue
		}

		if prev >= 0 {
			penX += f.kern(prev, r)
		}

		// Quad center, baseline-aligned in the Y-down system.
		left := penX + g.BearingX
		top := baseY - g.BearingY
		cx := left + float32(g.W)*0.5
		cy := top + float32(g.H)*0.5

		r2d.DrawTexturedQuadUV(
			cx, cy,
			float32(g.W), float32(g.H),
			f.Texture, color, 0,
			g.U0, g.V0, g.U1, g.V1,
		)

		penX += g.Advance
		prev = r
	}
}

// MeasureText returns the laid-out size of s at the font's native pixel size.
func MeasureText(f *Font, s string) (width, height float32) {
	var lineW float32
	var prev rune = -1
	height = LineHeight(f)

	for _, r := range s {
		if r == '\n' {
			if lineW > width {
				width = lineW
			}
			lineW = 0
			height += LineHeight(f)
			prev = -1
			continue
		}

		g, ok := f.Glyphs[r]
		if !ok {
			if sp, ok2 := f.Glyphs[' ']; ok2 {
				lineW += sp.Advance
			}
			prev = r
			continue
		}

		if prev >= 0 {
			lineW += f.kern(prev, r)
		}
		lineW += g.Advance
		prev = r
	}

	if lineW > width {
		width = lineW
	}
	return width, height
}

func LineHeight(f *Font) float32 { return f.Ascent - f.Descent + f.LineGap }
