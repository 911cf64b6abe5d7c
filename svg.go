package svgcurve

import (
	"fmt"
	"io"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
)

// maxDepth bounds the element tree walk; anything deeper is treated as a
// malformed document.
const maxDepth = 512

// Element is a node of an already-parsed document tree. Only the tag, the
// attributes and the children matter to the loader; elements without path
// data are structural and pass their transform through to their children.
type Element struct {
	Tag      string
	Attr     map[string]string
	Children []*Element
}

// ParseElements parses an XML document into an element tree rooted at the
// first top-level element. A document that yields no elements at all is
// malformed.
func ParseElements(r io.Reader) (*Element, error) {
	z := parse.NewInput(r)
	defer z.Restore()

	var root *Element
	var stack []*Element

	l := xml.NewLexer(z)
	for {
		tt, data := l.Next()
		switch tt {
		case xml.ErrorToken:
			if l.Err() != io.EOF {
				return nil, fmt.Errorf("%v: %w", l.Err(), ErrMalformedDocument)
			}
			if root == nil {
				return nil, fmt.Errorf("no elements: %w", ErrMalformedDocument)
			}
			return root, nil
		case xml.StartTagToken:
			e := &Element{
				Tag:  string(data[1:]),
				Attr: map[string]string{},
			}
			for {
				tt, _ = l.Next()
				if tt != xml.AttributeToken {
					break
				}
				val := l.AttrVal()
				// attribute values may come through unquoted
				if 2 <= len(val) && (val[0] == '"' || val[0] == '\'') && val[len(val)-1] == val[0] {
					val = val[1 : len(val)-1]
				}
				e.Attr[string(l.Text())] = string(val)
			}

			if len(stack) == 0 {
				if root == nil {
					root = e
				}
				// trailing top-level elements are ignored
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, e)
			}
			if tt != xml.StartTagCloseVoidToken {
				stack = append(stack, e)
			}
		case xml.EndTagToken:
			if 0 < len(stack) {
				stack = stack[:len(stack)-1]
			}
		}
	}
}

// Load walks the element tree depth-first in document order, interprets the
// path data of every element carrying a d attribute, and maps all points
// through the composed transform of the element and its ancestors. The
// vertical axis of the source grows downward; Load flips it exactly once per
// point so the output frame grows upward.
func Load(root *Element, opts ...Option) (GeometrySet, error) {
	if root == nil {
		return nil, fmt.Errorf("no root element: %w", ErrMalformedDocument)
	}
	o := makeOptions(opts)
	var set GeometrySet
	if err := loadElement(root, Identity, 0, &set, o); err != nil {
		return nil, err
	}
	return set, nil
}

func loadElement(e *Element, inherited Matrix, depth int, set *GeometrySet, o options) error {
	if maxDepth < depth {
		return fmt.Errorf("element tree deeper than %d: %w", maxDepth, ErrMalformedDocument)
	}

	accumulated := inherited
	if v, ok := e.Attr["transform"]; ok {
		local, err := parseTransform(v, o)
		if err != nil {
			return err
		}
		// local first, then the accumulated ancestor transform
		accumulated = inherited.Mul(local)
	}

	if d, ok := e.Attr["d"]; ok && d != "" {
		subpaths, err := parsePath(d, o)
		if err != nil {
			return err
		}
		for _, s := range subpaths {
			*set = append(*set, mapSubpath(s, accumulated))
		}
	}

	for _, child := range e.Children {
		if err := loadElement(child, accumulated, depth+1, set, o); err != nil {
			return err
		}
	}
	return nil
}

// mapPoint maps a source point through m and flips the vertical axis into
// the upward-growing output frame.
func mapPoint(p Point3, m Matrix) Point3 {
	q := m.Dot(Point{p.X, p.Y})
	return Point3{q.X, -q.Y, 0.0}
}

func mapSubpath(s Subpath, m Matrix) Subpath {
	points := make([]CurvePoint, len(s.Points))
	for i, p := range s.Points {
		points[i] = CurvePoint{
			Pos:  mapPoint(p.Pos, m),
			In:   mapPoint(p.In, m),
			Out:  mapPoint(p.Out, m),
			Kind: p.Kind,
		}
	}
	return Subpath{Points: points, Closed: s.Closed}
}
