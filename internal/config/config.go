// Package config loads sketchgeom settings from an optional YAML file,
// applies SKETCHGEOM_* environment overrides and validates the result.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/sketch"
)

// Vec3 is a 3D vector written as a YAML sequence [x, y, z].
type Vec3 [3]float64

// R3 converts v to a gonum vector.
func (v Vec3) R3() r3.Vec { return r3.Vec{X: v[0], Y: v[1], Z: v[2]} }

// PlaneConfig places the sketch plane in model space.
type PlaneConfig struct {
	Origin Vec3    `yaml:"origin"`
	U      Vec3    `yaml:"u" validate:"nonzerovec"`
	V      Vec3    `yaml:"v" validate:"nonzerovec"`
	Depth  float64 `yaml:"depth"`
}

// SketchConfig places sketch coordinates on the plane before they are
// lifted: scale first, then rotate (radians), then offset.
type SketchConfig struct {
	Offset   [2]float64 `yaml:"offset"`
	Rotation float64    `yaml:"rotation"`
	Scale    float64    `yaml:"scale"`
}

// Matrix returns the 2D placement transform.
func (s SketchConfig) Matrix() sketch.Matrix {
	return sketch.Translate(s.Offset[0], s.Offset[1]).
		Multiply(sketch.Rotate(s.Rotation)).
		Multiply(sketch.Scale(s.Scale, s.Scale))
}

// OutputConfig selects the report encoding.
type OutputConfig struct {
	Format string `yaml:"format" validate:"oneof=yaml json"`
}

// LoggingConfig mirrors internal/log options.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn warning error"`
	Format string `yaml:"format" validate:"oneof=text json"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

// Config is the full CLI configuration.
type Config struct {
	Plane  PlaneConfig  `yaml:"plane"`
	Sketch SketchConfig `yaml:"sketch"`
	// Tolerance bounds the gap allowed between consecutive edges of a loop.
	Tolerance float64       `yaml:"tolerance" validate:"gt=0"`
	Output    OutputConfig  `yaml:"output"`
	Logging   LoggingConfig `yaml:"logging"`
}

// Defaults returns the built-in configuration: the world XY plane at depth
// 0, YAML output and info-level text logs.
func Defaults() Config {
	return Config{
		Plane: PlaneConfig{
			U: Vec3{1, 0, 0},
			V: Vec3{0, 1, 0},
		},
		Sketch:    SketchConfig{Scale: 1},
		Tolerance: 1e-9,
		Output:    OutputConfig{Format: "yaml"},
		Logging:   LoggingConfig{Level: "info", Format: "text"},
	}
}

// Env var names used as overrides.
const (
	EnvPlaneDepth   = "SKETCHGEOM_PLANE_DEPTH"
	EnvTolerance    = "SKETCHGEOM_TOLERANCE"
	EnvOutputFormat = "SKETCHGEOM_OUTPUT_FORMAT"
	EnvLogLevel     = "SKETCHGEOM_LOG_LEVEL"
	EnvLogFormat    = "SKETCHGEOM_LOG_FORMAT"
	EnvLogSource    = "SKETCHGEOM_LOG_SOURCE"
	EnvLogFile      = "SKETCHGEOM_LOG_FILE"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Load builds the configuration. Fields missing from the file keep their
// defaults; an empty path skips the file. Environment overrides are
// applied last, then the result is validated.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := applyEnvOverrides(&cfg); err != nil {
		return cfg, err
	}
	normalize(&cfg)
	return cfg, cfg.Validate()
}

func normalize(cfg *Config) {
	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
	cfg.Logging.File = strings.TrimSpace(cfg.Logging.File)
}

func applyEnvOverrides(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv(EnvPlaneDepth)); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvPlaneDepth, err)
		}
		cfg.Plane.Depth = f
	}
	if v := strings.TrimSpace(os.Getenv(EnvTolerance)); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvTolerance, err)
		}
		cfg.Tolerance = f
	}
	if v := strings.TrimSpace(os.Getenv(EnvOutputFormat)); v != "" {
		cfg.Output.Format = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSource)); v != "" {
		lv := strings.ToLower(v)
		cfg.Logging.Source = lv == "1" || lv == "true" || lv == "on" || lv == "yes"
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
	return nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("nonzerovec", func(fl validator.FieldLevel) bool {
		f := fl.Field()
		if f.Kind() != reflect.Array {
			return false
		}
		for i := 0; i < f.Len(); i++ {
			if f.Index(i).Float() != 0 {
				return true
			}
		}
		return false
	})
	return v
}

// Validate checks field constraints and that the plane axes span a plane.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, e := range verrs {
				msgs = append(msgs, formatFieldError(e))
			}
			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
		}
		return err
	}
	if r3.Norm(r3.Cross(c.Plane.U.R3(), c.Plane.V.R3())) == 0 {
		return fmt.Errorf("%w: plane.u and plane.v are parallel", ErrInvalid)
	}
	if c.Sketch.Matrix().Determinant() == 0 {
		return fmt.Errorf("%w: sketch transform is singular", ErrInvalid)
	}
	return nil
}

func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Namespace())
	switch e.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, e.Param())
	case "nonzerovec":
		return fmt.Sprintf("%s must not be the zero vector", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// Surface returns the configured sketch plane.
func (c Config) Surface() sketch.PlaneSurface {
	return sketch.PlaneSurface{
		Origin: c.Plane.Origin.R3(),
		U:      c.Plane.U.R3(),
		V:      c.Plane.V.R3(),
		W:      c.Plane.Depth,
	}
}
