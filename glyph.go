package svgcurve

import "fmt"

// Phi spaces the glyphs; the kerning is one stroke width divided by the
// golden ratio.
const Phi = 1.61803398875

const (
	glyphHeight = 8.0
	stroke      = 3.0
	widthWide   = 13.0
	widthStd    = 8.0
)

// Kerning is the gap between consecutive glyphs in a word.
const Kerning = stroke / Phi

// poly builds a closed subpath of sharp vertices.
func poly(pts ...Point) Subpath {
	points := make([]CurvePoint, len(pts))
	for i, p := range pts {
		points[i] = corner(pt3(p))
	}
	return Subpath{Points: points, Closed: true}
}

// bez builds one curve point with absolute handles. Degenerate handles make
// a sharp vertex.
func bez(pos, in, out Point) CurvePoint {
	if in == pos && out == pos {
		return corner(pt3(pos))
	}
	return CurvePoint{Pos: pt3(pos), In: pt3(in), Out: pt3(out), Kind: Free}
}

func closed(pts ...CurvePoint) Subpath {
	return Subpath{Points: pts, Closed: true}
}

// glyphM is the heavy panorama M: a block with a V cut into it.
func glyphM() []Subpath {
	w, h, s := widthWide, glyphHeight, stroke
	mid := w / 2
	vy := 3.0
	return []Subpath{poly(
		Point{0, 0},
		Point{s, 0},
		Point{s, h - 2},
		Point{mid, vy},
		Point{w - s, h - 2},
		Point{w - s, 0},
		Point{w, 0},
		Point{w, h},
		Point{mid, vy + s*1.2},
		Point{0, h},
	)}
}

func glyphY() []Subpath {
	w, h, s := widthWide, glyphHeight, stroke
	mid := w / 2
	stemH := 3.5
	return []Subpath{poly(
		Point{mid - s/2, 0},
		Point{mid + s/2, 0},
		Point{mid + s/2, stemH},
		Point{w, h},
		Point{w - s*1.2, h},
		Point{mid, stemH + s*0.8},
		Point{s * 1.2, h},
		Point{0, h},
		Point{mid - s/2, stemH},
	)}
}

func glyphT() []Subpath {
	w, h, s := widthWide, glyphHeight, stroke
	left := w/2 - s/2
	right := w/2 + s/2
	return []Subpath{poly(
		Point{left, 0},
		Point{right, 0},
		Point{right, h - s},
		Point{w, h - s},
		Point{w, h},
		Point{0, h},
		Point{0, h - s},
		Point{left, h - s},
	)}
}

// glyphD is an outer bowl running counter-clockwise and an inner hole
// running clockwise, both with sharp left corners and a curved right side.
func glyphD() []Subpath {
	w, h, s := widthStd+1, glyphHeight, stroke
	outer := closed(
		bez(Point{0, 0}, Point{0, 0}, Point{0, 0}),
		bez(Point{w - 3, 0}, Point{w - 4, 0}, Point{w - 1, 0}),
		bez(Point{w, h / 2}, Point{w, h/2 - 2}, Point{w, h/2 + 2}),
		bez(Point{w - 3, h}, Point{w - 1, h}, Point{w - 4, h}),
		bez(Point{0, h}, Point{0, h}, Point{0, h}),
	)
	inner := closed(
		bez(Point{s, h - s}, Point{s, h - s}, Point{s, h - s}),
		bez(Point{w - 3, h - s}, Point{w - 4, h - s}, Point{w - 1, h - s}),
		bez(Point{w - s + 1, h / 2}, Point{w - s + 1, h/2 + 2}, Point{w - s + 1, h/2 - 2}),
		bez(Point{w - 3, s}, Point{w - 1, s}, Point{w - 4, s}),
		bez(Point{s, s}, Point{s, s}, Point{s, s}),
	)
	return []Subpath{outer, inner}
}

// glyphC is one continuous loop: the outer arc out to the tips, a sharp turn
// inwards, and the inner arc back.
func glyphC() []Subpath {
	w, h, s := widthStd, glyphHeight, stroke
	return []Subpath{closed(
		bez(Point{w, h - s*0.2}, Point{w, h - s*0.2}, Point{w, h - s*0.2}),
		bez(Point{w / 2, h}, Point{w * 0.8, h}, Point{w * 0.2, h}),
		bez(Point{0, h / 2}, Point{0, h * 0.8}, Point{0, h * 0.2}),
		bez(Point{w / 2, 0}, Point{w * 0.2, 0}, Point{w * 0.8, 0}),
		bez(Point{w, s * 0.2}, Point{w, s * 0.2}, Point{w, s * 0.2}),
		bez(Point{w, s}, Point{w, s}, Point{w, s}),
		bez(Point{w / 2, s}, Point{w * 0.8, s}, Point{w * 0.2, s}),
		bez(Point{s, h / 2}, Point{s, h * 0.3}, Point{s, h * 0.7}),
		bez(Point{w / 2, h - s}, Point{w * 0.2, h - s}, Point{w * 0.8, h - s}),
		bez(Point{w, h - s}, Point{w, h - s}, Point{w, h - s}),
	)}
}

// Glyph returns the outline subpaths and the advance width of a built-in
// letter. Glyphs are authored in the output frame (y up) with the origin at
// their bottom-left.
func Glyph(r rune) ([]Subpath, float64, error) {
	switch r {
	case 'M':
		return glyphM(), widthWide, nil
	case 'Y':
		return glyphY(), widthWide, nil
	case 'T':
		return glyphT(), widthWide, nil
	case 'D':
		return glyphD(), widthStd + 1, nil
	case 'C':
		return glyphC(), widthStd, nil
	}
	return nil, 0.0, fmt.Errorf("no glyph for %q", r)
}

// Word lays out the glyphs of s left to right with golden-ratio kerning and
// returns them as one geometry set. The set starts at x=0; use Normalize to
// center it.
func Word(s string) (GeometrySet, error) {
	var set GeometrySet
	cursor := 0.0
	for _, r := range s {
		subpaths, width, err := Glyph(r)
		if err != nil {
			return nil, err
		}
		for _, sp := range subpaths {
			set = append(set, sp.Translate(Point3{X: cursor}))
		}
		cursor += width + Kerning
	}
	return set, nil
}
