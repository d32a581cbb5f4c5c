// Package sketchio reads sketch documents and writes edge reports.
//
// A sketch document is YAML (or JSON, which YAML accepts) holding closed
// contours of primitives and free-standing analytic ellipses with probe
// points:
//
//	contours:
//	  - id: slot
//	    primitives:
//	      - {kind: segment, points: [[0, 0], [10, 0]]}
//	      - {kind: arc, points: [[10, 0], [0, 0], [5, 0]]}
//	ellipses:
//	  - {id: e1, ep1: [-4, 0], ep2: [4, 0], r: 2, probes: [[0, 3]]}
package sketchio

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/sketch"
)

// Vec2 is a sketch point written as [x, y].
type Vec2 [2]float64

// Point converts v to a sketch point.
func (v Vec2) Point() sketch.Point { return sketch.Pt(v[0], v[1]) }

// Document is a decoded sketch document.
type Document struct {
	Contours []ContourDoc `yaml:"contours,omitempty" json:"contours,omitempty"`
	Ellipses []EllipseDoc `yaml:"ellipses,omitempty" json:"ellipses,omitempty"`
}

// ContourDoc lists primitives in traversal order.
type ContourDoc struct {
	ID         string         `yaml:"id,omitempty" json:"id,omitempty"`
	Primitives []PrimitiveDoc `yaml:"primitives" json:"primitives"`
}

// PrimitiveDoc describes one primitive. Points are, by kind:
//
//	segment         a, b
//	arc             a, b, center
//	bezier          a, b, cp1, cp2
//	elliptical-arc  ep1, ep2, a, b
//	circle          center
//	ellipse         ep1, ep2
//
// R is the radius of circles and the semi-minor radius of elliptical
// primitives.
type PrimitiveDoc struct {
	Kind     string  `yaml:"kind" json:"kind"`
	ID       string  `yaml:"id,omitempty" json:"id,omitempty"`
	Points   []Vec2  `yaml:"points" json:"points"`
	R        float64 `yaml:"r,omitempty" json:"r,omitempty"`
	Inverted bool    `yaml:"inverted,omitempty" json:"inverted,omitempty"`
}

// EllipseDoc describes an editable ellipse. When R is absent the minor
// radius starts at half the major radius.
type EllipseDoc struct {
	ID     string   `yaml:"id,omitempty" json:"id,omitempty"`
	EP1    Vec2     `yaml:"ep1" json:"ep1"`
	EP2    Vec2     `yaml:"ep2" json:"ep2"`
	R      *float64 `yaml:"r,omitempty" json:"r,omitempty"`
	Probes []Vec2   `yaml:"probes,omitempty" json:"probes,omitempty"`
}

// ErrInvalidDocument is wrapped by every decoding failure.
var ErrInvalidDocument = errors.New("sketchio: invalid sketch document")

// SchemaError lists the schema violations of a document.
type SchemaError struct {
	Problems []string
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	return "sketchio: document does not match schema: " + strings.Join(e.Problems, "; ")
}

// Unwrap returns ErrInvalidDocument.
func (e *SchemaError) Unwrap() error { return ErrInvalidDocument }

//go:embed schema.json
var schemaJSON []byte

var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
})

// Decode reads and validates a sketch document.
func Decode(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("sketchio: read document: %w", err)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if err := Validate(raw); err != nil {
		return nil, err
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return &doc, nil
}

// Validate checks a generic decoded document against the embedded schema.
func Validate(raw any) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("sketchio: compile schema: %w", err)
	}
	res, err := schema.Validate(gojsonschema.NewGoLoader(raw))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if res.Valid() {
		return nil
	}
	problems := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		problems = append(problems, e.String())
	}
	return &SchemaError{Problems: problems}
}
