package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mydct/svgcurve"
	"github.com/tdewolff/argp"
)

type Convert struct {
	Strict      bool   `desc:"Fail on unsupported transforms, truncated path data and unknown tokens"`
	CenterDepth bool   `desc:"Center the depth axis in addition to the horizontal axis"`
	Bake        bool   `desc:"Bake the placement translation into the geometry"`
	Word        string `short:"w" desc:"Generate the built-in glyph logo for a word instead of reading SVG"`
	Output      string `short:"o" desc:"Output file (default stdout)"`
	Input       string `index:"0" desc:"Input SVG file"`
}

func main() {
	root := argp.NewCmd(&Convert{}, "SVG path data to 3D logo geometry converter")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Convert) Run() error {
	var opts []svgcurve.Option
	if cmd.Strict {
		opts = append(opts, svgcurve.Strict())
	}
	if cmd.CenterDepth {
		opts = append(opts, svgcurve.CenterDepth())
	}

	var set svgcurve.GeometrySet
	if cmd.Word != "" {
		var err error
		if set, err = svgcurve.Word(cmd.Word); err != nil {
			return err
		}
	} else {
		if cmd.Input == "" {
			return argp.ShowUsage
		}
		f, err := os.Open(cmd.Input)
		if err != nil {
			return err
		}
		defer f.Close()

		root, err := svgcurve.ParseElements(f)
		if err != nil {
			return fmt.Errorf("%s: %w", cmd.Input, err)
		}
		if set, err = svgcurve.Load(root, opts...); err != nil {
			return fmt.Errorf("%s: %w", cmd.Input, err)
		}
	}

	translation := svgcurve.Normalize(set, opts...)
	if cmd.Bake {
		set = set.Translate(translation)
		translation = svgcurve.Point3{}
	}

	w := os.Stdout
	if cmd.Output != "" {
		var err error
		if w, err = os.Create(cmd.Output); err != nil {
			return err
		}
		defer w.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(makeOutput(set, translation))
}

type jsonPoint struct {
	Pos  [3]float64 `json:"pos"`
	In   [3]float64 `json:"in"`
	Out  [3]float64 `json:"out"`
	Kind string     `json:"kind"`
}

type jsonSubpath struct {
	Points []jsonPoint `json:"points"`
	Closed bool        `json:"closed"`
}

type jsonProfile struct {
	Extrude         float64 `json:"extrude"`
	BevelDepth      float64 `json:"bevel_depth"`
	BevelResolution int     `json:"bevel_resolution"`
}

type output struct {
	Subpaths    []jsonSubpath `json:"subpaths"`
	Translation [3]float64    `json:"translation"`
	Profile     jsonProfile   `json:"profile"`
}

func vec(p svgcurve.Point3) [3]float64 {
	return [3]float64{p.X, p.Y, p.Z}
}

func makeOutput(set svgcurve.GeometrySet, translation svgcurve.Point3) output {
	out := output{
		Subpaths:    []jsonSubpath{},
		Translation: vec(translation),
		Profile: jsonProfile{
			Extrude:         svgcurve.DefaultProfile.Extrude,
			BevelDepth:      svgcurve.DefaultProfile.BevelDepth,
			BevelResolution: svgcurve.DefaultProfile.BevelResolution,
		},
	}
	for _, s := range set {
		js := jsonSubpath{Points: make([]jsonPoint, len(s.Points)), Closed: s.Closed}
		for i, p := range s.Points {
			js.Points[i] = jsonPoint{
				Pos:  vec(p.Pos),
				In:   vec(p.In),
				Out:  vec(p.Out),
				Kind: p.Kind.String(),
			}
		}
		out.Subpaths = append(out.Subpaths, js)
	}
	return out
}
