package sketchio

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/shape"
)

// Sketch is a document turned into live geometry.
type Sketch struct {
	Contours []NamedContour
	// Points holds the endpoints shared by Ellipses.
	Points   *shape.Points
	Ellipses []NamedEllipse
}

// NamedContour is a contour with its document id.
type NamedContour struct {
	ID      string
	Contour *sketch.Contour
}

// NamedEllipse is an editable ellipse with its document id and probe points.
type NamedEllipse struct {
	ID     string
	Shape  *shape.Ellipse
	Probes []sketch.Point
}

var (
	// ErrUnknownKind is returned for a primitive kind Build cannot construct.
	ErrUnknownKind = errors.New("sketchio: unknown primitive kind")

	// ErrPointCount is returned when a primitive has the wrong number of points for its kind.
	ErrPointCount = errors.New("sketchio: wrong number of points")
)

// PrimitiveError locates a primitive that could not be built.
type PrimitiveError struct {
	Contour string
	Index   int
	Kind    string
	Err     error
}

// Error implements the error interface.
func (e *PrimitiveError) Error() string {
	return fmt.Sprintf("sketchio: contour %q primitive %d (%s): %v", e.Contour, e.Index, e.Kind, e.Err)
}

// Unwrap returns the cause.
func (e *PrimitiveError) Unwrap() error { return e.Err }

var pointCounts = map[string]int{
	sketch.KindSegment.String():       2,
	sketch.KindArc.String():           3,
	sketch.KindBezier.String():        4,
	sketch.KindEllipticalArc.String(): 4,
	sketch.KindCircle.String():        1,
	sketch.KindEllipse.String():       2,
}

// Build creates contours and ellipses from doc. Missing ids are minted
// with sketch.NewID.
func Build(doc *Document) (*Sketch, error) {
	s := &Sketch{Points: &shape.Points{}}

	for _, cd := range doc.Contours {
		id := cd.ID
		if id == "" {
			id = sketch.NewID()
		}
		c := sketch.NewContour()
		for i, pd := range cd.Primitives {
			p, err := buildPrimitive(pd)
			if err != nil {
				return nil, &PrimitiveError{Contour: id, Index: i, Kind: pd.Kind, Err: err}
			}
			c.Add(p)
		}
		s.Contours = append(s.Contours, NamedContour{ID: id, Contour: c})
	}

	for _, ed := range doc.Ellipses {
		id := ed.ID
		if id == "" {
			id = sketch.NewID()
		}
		h1 := s.Points.Add(ed.EP1.Point())
		h2 := s.Points.Add(ed.EP2.Point())
		var e *shape.Ellipse
		if ed.R != nil {
			e = shape.NewEllipseWithRef(s.Points, h1, h2, shape.NewParam(*ed.R))
		} else {
			e = shape.NewEllipse(s.Points, h1, h2)
		}
		probes := make([]sketch.Point, len(ed.Probes))
		for i, p := range ed.Probes {
			probes[i] = p.Point()
		}
		s.Ellipses = append(s.Ellipses, NamedEllipse{ID: id, Shape: e, Probes: probes})
	}

	sketch.Logger().Debug("sketch document built",
		slog.Int("contours", len(s.Contours)),
		slog.Int("ellipses", len(s.Ellipses)))
	return s, nil
}

func buildPrimitive(pd PrimitiveDoc) (sketch.Primitive, error) {
	want, ok := pointCounts[pd.Kind]
	if !ok {
		return nil, ErrUnknownKind
	}
	if len(pd.Points) != want {
		return nil, fmt.Errorf("%w: want %d, got %d", ErrPointCount, want, len(pd.Points))
	}

	id := pd.ID
	if id == "" {
		id = sketch.NewID()
	}
	pt := func(i int) sketch.Point { return pd.Points[i].Point() }

	var p sketch.Primitive
	switch pd.Kind {
	case "segment":
		p = sketch.NewSegment(id, pt(0), pt(1))
	case "arc":
		p = sketch.NewArc(id, pt(0), pt(1), pt(2))
	case "bezier":
		p = sketch.NewBezierCurve(id, pt(0), pt(1), pt(2), pt(3))
	case "elliptical-arc":
		p = sketch.NewEllipticalArc(id, pt(0), pt(1), pt(2), pt(3), pd.R)
	case "circle":
		p = sketch.NewCircle(id, pt(0), pd.R)
	case "ellipse":
		p = sketch.NewEllipse(id, pt(0), pt(1), pd.R)
	}
	if pd.Inverted {
		p.Invert()
	}
	return p, nil
}
