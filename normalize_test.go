package svgcurve

import (
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestNormalize(t *testing.T) {
	root, err := ParseElements(strings.NewReader(`<svg><path d="M0,0 L10,0 L10,10 Z" transform="translate(5,5)"/></svg>`))
	test.Error(t, err)
	set, err := Load(root)
	test.Error(t, err)

	d := Normalize(set)
	test.That(t, d.Equals(Point3{-10.0, 15.0, 0.0}), "expected [-10; 15; 0], got", d)

	// baking the translation centers x and floors y
	set = set.Translate(d)
	box := set.Bounds()
	test.Float(t, box.Min.X, -5.0)
	test.Float(t, box.Max.X, 5.0)
	test.Float(t, box.Min.Y, 0.0)
}

func TestNormalizeIdempotent(t *testing.T) {
	set, err := Word("MY")
	test.Error(t, err)

	set = set.Translate(Normalize(set))
	d := Normalize(set)
	test.That(t, d.Equals(Point3{}), "expected zero translation, got", d)
}

func TestNormalizeEmpty(t *testing.T) {
	test.T(t, Normalize(GeometrySet{}), Point3{})
	test.T(t, Normalize(nil), Point3{})
}

func TestNormalizeCenterDepth(t *testing.T) {
	set := GeometrySet{{Points: []CurvePoint{
		corner(Point3{0.0, 1.0, 1.0}),
		corner(Point3{4.0, 3.0, 5.0}),
	}}}

	d := Normalize(set)
	test.That(t, d.Equals(Point3{-2.0, -1.0, 0.0}), "depth untouched by default, got", d)

	d = Normalize(set, CenterDepth())
	test.That(t, d.Equals(Point3{-2.0, -1.0, -3.0}), "expected centered depth, got", d)
}
