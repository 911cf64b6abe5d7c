// Package svgcurve converts SVG path data into 3D curve geometry for logo
// generation. It parses the MoveTo/LineTo/CubeTo command subset of the SVG
// path grammar, resolves nested translate/matrix transforms over an element
// tree, and normalizes the resulting geometry so that a downstream renderer
// can extrude it standing on a ground plane. Rendering, materials and scene
// setup are left to the consumer of the GeometrySet.
package svgcurve
