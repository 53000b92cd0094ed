package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"spheretrace/pkg/core"
	"spheretrace/pkg/geometry"
)

// VecCfg is a 3D vector in a scene file
type VecCfg struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// ColorCfg is an RGB triple in a scene file, channels in [0,1]
type ColorCfg struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// SphereCfg describes one sphere
type SphereCfg struct {
	Center VecCfg  `json:"center"`
	Radius float64 `json:"radius"`
}

// PlaneCfg describes one infinite plane
type PlaneCfg struct {
	Point  VecCfg `json:"point"`
	Normal VecCfg `json:"normal"`
}

// LightCfg describes one point light. Color defaults to white when omitted.
type LightCfg struct {
	Position VecCfg    `json:"position"`
	Color    *ColorCfg `json:"color,omitempty"`
}

// Config is the on-disk scene description
type Config struct {
	Width       int         `json:"width"`
	Height      int         `json:"height"`
	FOV         float64     `json:"fov"`
	Background  *ColorCfg   `json:"background,omitempty"`
	SurfaceTint *ColorCfg   `json:"surfaceTint,omitempty"`
	Spheres     []SphereCfg `json:"spheres"`
	Planes      []PlaneCfg  `json:"planes,omitempty"`
	Lights      []LightCfg  `json:"lights"`
}

func (v VecCfg) vec() core.Vec3 {
	return core.NewVec3(v.X, v.Y, v.Z)
}

func (c ColorCfg) color() core.Color {
	return core.NewColor(c.R, c.G, c.B)
}

// LoadConfig reads a JSON scene file and builds a validated Scene
func LoadConfig(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene file: %w", err)
	}
	defer f.Close()
	return ParseConfig(f)
}

// ParseConfig decodes a JSON scene description and builds a validated Scene
func ParseConfig(r io.Reader) (*Scene, error) {
	var cfg Config
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode scene config: %w", err)
	}
	return cfg.Build()
}

// Build converts the raw config into a Scene, applying defaults and
// validating everything the renderer assumes.
func (cfg Config) Build() (*Scene, error) {
	s := &Scene{
		Background:  core.NewColor(0, 0.5, 0.5),
		SurfaceTint: core.Red(),
		Config: RenderConfig{
			Width:  cfg.Width,
			Height: cfg.Height,
			FOV:    cfg.FOV,
		},
	}
	if cfg.Background != nil {
		s.Background = cfg.Background.color()
	}
	if cfg.SurfaceTint != nil {
		s.SurfaceTint = cfg.SurfaceTint.color()
	}

	for i, sp := range cfg.Spheres {
		if sp.Radius <= 0 {
			return nil, fmt.Errorf("sphere %d has radius %g: must be positive", i, sp.Radius)
		}
		s.Surfaces = append(s.Surfaces, geometry.NewSphere(sp.Center.vec(), sp.Radius))
	}
	for i, pl := range cfg.Planes {
		if pl.Normal.vec().Length() == 0 {
			return nil, fmt.Errorf("plane %d has a zero normal", i)
		}
		s.Surfaces = append(s.Surfaces, geometry.NewPlane(pl.Point.vec(), pl.Normal.vec()))
	}
	for _, l := range cfg.Lights {
		light := core.NewLight(l.Position.vec())
		if l.Color != nil {
			light.Color = l.Color.color()
		}
		s.Lights = append(s.Lights, light)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
