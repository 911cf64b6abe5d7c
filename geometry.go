package svgcurve

// Profile carries the curve-object parameters a downstream renderer needs to
// turn subpaths into solid geometry. It is plain data; extrusion itself is
// the renderer's job.
type Profile struct {
	// Extrude is the half-depth of the solid; the total depth is twice this.
	Extrude float64
	// BevelDepth rounds the extruded edges. Small values catch light
	// without softening the silhouette.
	BevelDepth      float64
	BevelResolution int
}

// DefaultProfile matches the logo generator's look: 3 units deep with a
// razor-thin bevel.
var DefaultProfile = Profile{
	Extrude:         1.5,
	BevelDepth:      0.05,
	BevelResolution: 4,
}
