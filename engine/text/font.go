package text

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/hazelv/crane/engine/core"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

type Glyph struct {
	Rune     rune
	Advance  float32 // pixels
	BearingX float32 // left bearing in pixels
	BearingY float32 // baseline to glyph top in pixels
	W, H     int     // glyph bitmap size
	U0, V0   float32 // UVs in atlas
	U1, V1   float32
}

// Font is a rasterized glyph atlas plus the metrics needed to lay out text.
// The face is closed once the atlas is built; kerning is precomputed.
type Font struct {
	SizePx                   float32
	Ascent, Descent, LineGap float32
	Glyphs                   map[rune]Glyph
	Kerning                  map[rune]map[rune]float32
	Texture                  core.Texture
	AtlasW, AtlasH           int
}

// LoadTTF rasterizes ttfData at sizePx into a white-on-transparent RGBA atlas
// and uploads it. Covers runes 32..255.
func LoadTTF(r core.Renderer, ttfData []byte, sizePx float32) (*Font, error) {
	ft, err := opentype.Parse(ttfData)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer face.Close()

	m := face.Metrics()
	ascent := float32(m.Ascent.Round())
	descent := float32(-m.Descent.Round())
	lineGap := float32(m.Height.Round()) - ascent + descent

	type meas struct {
		r      rune
		w, h   int
		adv    float32
		bx, by float32
	}
	var measure []meas
	for rr := rune(32); rr <= rune(255); rr++ {
		br, adv, ok := face.GlyphBounds(rr)
		if !ok {
			continue
		}
		measure = append(measure, meas{
			r: rr,
			w: (br.Max.X - br.Min.X).Round(),
			h: (br.Max.Y - br.Min.Y).Round(),
			adv: float32(adv.Round()),
			bx:  float32(br.Min.X.Round()),
			by:  float32(-br.Min.Y.Round()),
		})
	}

	// Shelf packer. Start at 512^2 and double until everything fits.
	const padding = 4
	atlasSize := 512
	var pos map[rune]image.Point
	for {
		x, y, rowH := padding, padding, 0
		fits := true
		pos = make(map[rune]image.Point, len(measure))

		for _, g := range measure {
			if g.w == 0 || g.h == 0 {
				continue
			}
			if g.w+padding*2 > atlasSize || g.h+padding*2 > atlasSize {
				fits = false
				break
			}
			if x+g.w+padding > atlasSize {
				x = padding
				y += rowH + padding
				rowH = 0
			}
			if y+g.h+padding > atlasSize {
				fits = false
				break
			}
			pos[g.r] = image.Pt(x, y)
			x += g.w + padding
			if g.h > rowH {
				rowH = g.h
			}
		}

		if fits {
			break
		}
		atlasSize *= 2
		if atlasSize > 4096 {
			return nil, fmt.Errorf("font atlas too large (>%d)", 4096)
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, atlasSize, atlasSize))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{color.RGBA{0, 0, 0, 0}}, image.Point{}, draw.Src)

	drawer := &font.Drawer{Dst: dst, Src: image.White, Face: face}

	glyphs := make(map[rune]Glyph, len(measure))
	for _, g := range measure {
		if g.w == 0 || g.h == 0 {
			glyphs[g.r] = Glyph{
				Rune: g.r, Advance: g.adv,
				BearingX: g.bx, BearingY: g.by,
			}
			continue
		}

		p := pos[g.r]
		// The drawer dot sits on the baseline; shift left by the bearing so the
		// inked box lands exactly at p.
		drawer.Dot = fixed.P(p.X-int(g.bx), p.Y+int(g.by))
		drawer.DrawString(string(g.r))

		glyphs[g.r] = Glyph{
			Rune: g.r, Advance: g.adv,
			BearingX: g.bx, BearingY: g.by,
			W: g.w, H: g.h,
			U0: float32(p.X) / float32(atlasSize),
			V0: float32(p.Y) / float32(atlasSize),
			U1: float32(p.X+g.w) / float32(atlasSize),
			V1: float32(p.Y+g.h) / float32(atlasSize),
		}
	}

	kerning := make(map[rune]map[rune]float32)
	for _, a := range measure {
		for _, b := range measure {
			if dx := face.Kern(a.r, b.r); dx != 0 {
				if kerning[a.r] == nil {
					kerning[a.r] = make(map[rune]float32)
				}
				kerning[a.r][b.r] = float32(dx.Round())
			}
		}
	}

	tex, err := r.CreateTexture(core.TextureDesc{
		Width: atlasSize, Height: atlasSize,
		Format:    core.TextureRGBA8,
		Pixels:    dst.Pix,
		MinFilter: "nearest", MagFilter: "nearest",
		WrapU: "clamp", WrapV: "clamp",
	})
	if err != nil {
		return nil, err
	}

	return &Font{
		SizePx: sizePx,
		Ascent: ascent, Descent: descent, LineGap: lineGap,
		Glyphs:  glyphs,
		Kerning: kerning,
		Texture: tex,
		AtlasW:  atlasSize, AtlasH: atlasSize,
	}, nil
}

func (f *Font) kern(a, b rune) float32 {
	if row, ok := f.Kerning[a]; ok {
		return row[b]
	}
	return 0
}
