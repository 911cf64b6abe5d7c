package svgcurve

// HandleKind tags how the tangent handles of a curve point behave.
type HandleKind int

const (
	// Corner is a sharp vertex: both handles collapse onto the position.
	Corner HandleKind = iota
	// Free is a vertex on a cubic Bezier with independent incoming and
	// outgoing control points in absolute coordinates.
	Free
)

func (k HandleKind) String() string {
	if k == Free {
		return "free"
	}
	return "corner"
}

// CurvePoint is an anchor of a curve with absolute tangent handles. In is
// the control point of the incoming segment and Out the control point of the
// outgoing segment; for a Corner point both equal Pos.
type CurvePoint struct {
	Pos  Point3
	In   Point3
	Out  Point3
	Kind HandleKind
}

func corner(p Point3) CurvePoint {
	return CurvePoint{Pos: p, In: p, Out: p, Kind: Corner}
}

// Subpath is one continuous pen stroke, optionally closed. A closed subpath
// connects its last point back to its first implicitly; the first point is
// never duplicated at the end.
type Subpath struct {
	Points []CurvePoint
	Closed bool
}

// Translate returns the subpath shifted by d, handles included.
func (s Subpath) Translate(d Point3) Subpath {
	points := make([]CurvePoint, len(s.Points))
	for i, p := range s.Points {
		points[i] = CurvePoint{
			Pos:  p.Pos.Add(d),
			In:   p.In.Add(d),
			Out:  p.Out.Add(d),
			Kind: p.Kind,
		}
	}
	return Subpath{Points: points, Closed: s.Closed}
}

// GeometrySet is the ordered collection of subpaths of one document, each
// already expressed in the global output frame. Order follows the document
// traversal and is preserved for reproducible output.
type GeometrySet []Subpath

// Translate returns the set shifted by d.
func (g GeometrySet) Translate(d Point3) GeometrySet {
	set := make(GeometrySet, len(g))
	for i, s := range g {
		set[i] = s.Translate(d)
	}
	return set
}

// Bounds returns the bounding box over all anchor positions. Handles do not
// count towards the box. The zero Box is returned for an empty set.
func (g GeometrySet) Bounds() Box {
	var box Box
	first := true
	for _, s := range g {
		for _, p := range s.Points {
			if first {
				box = Box{p.Pos, p.Pos}
				first = false
			} else {
				box = box.extend(p.Pos)
			}
		}
	}
	return box
}
