package svgcurve

import (
	"errors"
	"testing"

	"github.com/tdewolff/test"
)

func TestParseTransform(t *testing.T) {
	var tts = []struct {
		v string
		m Matrix
	}{
		{"", Identity},
		{"translate(10,20)", Matrix{{1.0, 0.0, 10.0}, {0.0, 1.0, 20.0}}},
		{"translate(5)", Matrix{{1.0, 0.0, 5.0}, {0.0, 1.0, 0.0}}},
		{"translate(10  20)", Matrix{{1.0, 0.0, 10.0}, {0.0, 1.0, 20.0}}},
		{" translate( 10 , 20 ) ", Matrix{{1.0, 0.0, 10.0}, {0.0, 1.0, 20.0}}},
		{"matrix(2,0,0,2,0,0)", Matrix{{2.0, 0.0, 0.0}, {0.0, 2.0, 0.0}}},
		{"matrix(1 0 0,1, 5 ,6)", Matrix{{1.0, 0.0, 5.0}, {0.0, 1.0, 6.0}}},

		// silent degrade to identity
		{"rotate(30)", Identity},
		{"none", Identity},
		{"translate(1,2,3)", Identity},
		{"matrix(1,2,3)", Identity},
		{"translate(a,b)", Identity},
		{"translate(1,2", Identity},
	}
	for _, tt := range tts {
		t.Run(tt.v, func(t *testing.T) {
			m, err := ParseTransform(tt.v)
			test.Error(t, err)
			test.That(t, m.Equals(tt.m), "expected", tt.m, "got", m)
		})
	}
}

func TestParseTransformChain(t *testing.T) {
	// functions resolve left to right
	m, err := ParseTransform("translate(1,1) matrix(2,0,0,2,0,0)")
	test.Error(t, err)

	p := m.Dot(Point{1.0, 0.0}) // scaled first, then translated
	test.That(t, p.Equals(Point{3.0, 1.0}), "expected [3; 1], got", p)
}

func TestParseTransformStrict(t *testing.T) {
	var tts = []string{
		"rotate(30)",
		"none",
		"translate(1,2,3)",
		"matrix(1,2,3)",
		"translate(a,b)",
		"translate(1,2",
	}
	for _, v := range tts {
		t.Run(v, func(t *testing.T) {
			_, err := ParseTransform(v, Strict())
			test.That(t, errors.Is(err, ErrUnsupportedTransform))
		})
	}
}

func TestMatrixComposition(t *testing.T) {
	// parent applied after local: scale outside a translate maps the origin
	// to the scaled translation
	scale := Matrix{{2.0, 0.0, 0.0}, {0.0, 2.0, 0.0}}
	translate := Identity.Translate(1.0, 1.0)

	p := scale.Mul(translate).Dot(Point{0.0, 0.0})
	test.That(t, p.Equals(Point{2.0, 2.0}), "expected [2; 2], got", p)
}
