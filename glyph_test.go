package svgcurve

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestGlyphs(t *testing.T) {
	var tts = []struct {
		r        rune
		subpaths int
		width    float64
	}{
		{'M', 1, 13.0},
		{'Y', 1, 13.0},
		{'D', 2, 9.0},
		{'C', 1, 8.0},
		{'T', 1, 13.0},
	}
	for _, tt := range tts {
		t.Run(string(tt.r), func(t *testing.T) {
			subpaths, width, err := Glyph(tt.r)
			test.Error(t, err)
			test.T(t, len(subpaths), tt.subpaths)
			test.Float(t, width, tt.width)

			for _, s := range subpaths {
				test.That(t, s.Closed)
				test.That(t, 0 < len(s.Points))
				for _, p := range s.Points {
					if p.Kind == Corner {
						test.T(t, p.In, p.Pos)
						test.T(t, p.Out, p.Pos)
					}
				}
			}
		})
	}
}

func TestGlyphUnknown(t *testing.T) {
	_, _, err := Glyph('X')
	test.That(t, err != nil)
}

func TestGlyphBounds(t *testing.T) {
	// glyphs are authored bottom-left at the origin, y growing up
	for _, r := range "MYDCT" {
		subpaths, width, err := Glyph(r)
		test.Error(t, err)

		box := GeometrySet(subpaths).Bounds()
		test.Float(t, box.Min.X, 0.0)
		test.Float(t, box.Min.Y, 0.0)
		test.Float(t, box.Max.X, width)
		test.Float(t, box.Max.Y, glyphHeight)
	}
}

func TestGlyphDFreeHandles(t *testing.T) {
	subpaths, _, err := Glyph('D')
	test.Error(t, err)

	// the right apex of the outer bowl has vertical tangents
	apex := subpaths[0].Points[2]
	test.T(t, apex.Kind, Free)
	test.T(t, apex.Pos, Point3{9.0, 4.0, 0.0})
	test.T(t, apex.In, Point3{9.0, 2.0, 0.0})
	test.T(t, apex.Out, Point3{9.0, 6.0, 0.0})
}

func TestWord(t *testing.T) {
	set, err := Word("MYDCT")
	test.Error(t, err)
	test.T(t, len(set), 6) // D contributes its hole

	// the second glyph starts one advance width plus kerning to the right
	y, _, err := Glyph('Y')
	test.Error(t, err)
	test.Float(t, set[1].Points[0].Pos.X, y[0].Points[0].Pos.X+13.0+Kerning)

	box := set.Bounds()
	test.Float(t, box.Min.X, 0.0)
	test.Float(t, box.Min.Y, 0.0)
}

func TestWordUnknownRune(t *testing.T) {
	_, err := Word("MX")
	test.That(t, err != nil)
}

func TestWordEmpty(t *testing.T) {
	set, err := Word("")
	test.Error(t, err)
	test.T(t, len(set), 0)
	test.T(t, Normalize(set), Point3{})
}
