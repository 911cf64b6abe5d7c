package svgcurve

// Normalize computes the translation that centers the geometry on the
// horizontal axis and floors it to the y=0 reference plane. With CenterDepth
// the depth axis is centered as well; otherwise it is left untouched. The
// translation is returned rather than baked in, so the caller decides
// whether to shift the geometry (Translate) or apply it as a placement
// transform. An empty set yields a zero translation.
func Normalize(set GeometrySet, opts ...Option) Point3 {
	o := makeOptions(opts)
	if len(set) == 0 {
		return Point3{}
	}

	box := set.Bounds()
	d := Point3{
		X: -(box.Min.X + box.Max.X) / 2.0,
		Y: -box.Min.Y,
	}
	if o.centerDepth {
		d.Z = -(box.Min.Z + box.Max.Z) / 2.0
	}
	return d
}
