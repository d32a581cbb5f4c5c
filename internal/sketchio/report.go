package sketchio

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/brep"
	"github.com/gogpu/sketch/shape"
)

// Vec3 is a model-space point written as [x, y, z].
type Vec3 [3]float64

// Report is the CLI output.
type Report struct {
	Contours []ContourReport `yaml:"contours,omitempty" json:"contours,omitempty"`
	Probes   []ProbeReport   `yaml:"probes,omitempty" json:"probes,omitempty"`
}

// ContourReport lists the edges of one transferred contour.
type ContourReport struct {
	ID     string       `yaml:"id" json:"id"`
	Closed bool         `yaml:"closed" json:"closed"`
	Error  string       `yaml:"error,omitempty" json:"error,omitempty"`
	Edges  []EdgeReport `yaml:"edges,omitempty" json:"edges,omitempty"`
}

// EdgeReport describes one edge. Curve is "line" or "polyline".
type EdgeReport struct {
	Source  string  `yaml:"source,omitempty" json:"source,omitempty"`
	Curve   string  `yaml:"curve" json:"curve"`
	Start   Vec3    `yaml:"start" json:"start"`
	End     Vec3    `yaml:"end" json:"end"`
	Samples int     `yaml:"samples" json:"samples"`
	Length  float64 `yaml:"length" json:"length"`
}

// ProbeReport is the result of testing one point against an ellipse.
// Non-finite quantities are omitted.
type ProbeReport struct {
	Ellipse        string   `yaml:"ellipse" json:"ellipse"`
	Point          Vec2     `yaml:"point" json:"point"`
	Local          *Local   `yaml:"local,omitempty" json:"local,omitempty"`
	NormalDistance *float64 `yaml:"normal_distance,omitempty" json:"normal_distance,omitempty"`
	FittedRadius   *float64 `yaml:"fitted_radius,omitempty" json:"fitted_radius,omitempty"`
	Error          string   `yaml:"error,omitempty" json:"error,omitempty"`
}

// Local is a point in an ellipse's own frame.
type Local struct {
	X      float64 `yaml:"x" json:"x"`
	Y      float64 `yaml:"y" json:"y"`
	Angle  float64 `yaml:"angle" json:"angle"`
	Radius float64 `yaml:"radius" json:"radius"`
}

// NewContourReport summarizes edges; err is the transfer or closure error.
func NewContourReport(id string, edges []brep.Edge, err error) ContourReport {
	r := ContourReport{ID: id, Closed: err == nil}
	if err != nil {
		r.Error = err.Error()
	}
	for _, e := range edges {
		kind := "line"
		if _, ok := e.Curve.(*brep.ApproxCurve); ok {
			kind = "polyline"
		}
		r.Edges = append(r.Edges, EdgeReport{
			Source:  e.SourceID(),
			Curve:   kind,
			Start:   Vec3{e.Start.X, e.Start.Y, e.Start.Z},
			End:     Vec3{e.End.X, e.End.Y, e.End.Z},
			Samples: len(e.Curve.Points()),
			Length:  e.Curve.Length(),
		})
	}
	return r
}

// NewProbeReport evaluates p against e without modifying e. The fitted
// radius is the minor radius that would make e pass through p.
func NewProbeReport(id string, e *shape.Ellipse, p sketch.Point) ProbeReport {
	r := ProbeReport{Ellipse: id, Point: Vec2{p.X, p.Y}}

	lp := e.ToEllipseCoordinateSystem(p)
	if finite(lp.X, lp.Y, lp.Angle, lp.Radius) {
		r.Local = &Local{X: lp.X, Y: lp.Y, Angle: lp.Angle, Radius: lp.Radius}
	}
	if d := e.NormalDistance(p); finite(d) {
		r.NormalDistance = &d
	}
	fit, err := shape.FindMinorRadius(e.RadiusX(), lp.Radius, lp.Angle)
	if err != nil {
		r.Error = err.Error()
	} else {
		r.FittedRadius = &fit
	}
	return r
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// EncodeEdges writes rep as "yaml" or "json".
func EncodeEdges(w io.Writer, format string, rep *Report) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("sketchio: unsupported output format %q", format)
	}
}
