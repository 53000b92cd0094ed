package scene

import (
	"fmt"

	"spheretrace/pkg/core"
	"spheretrace/pkg/geometry"
)

// RenderConfig contains the camera and image configuration
type RenderConfig struct {
	Width  int     // Image width in pixels
	Height int     // Image height in pixels
	FOV    float64 // Horizontal field of view in degrees
}

// Scene contains all the elements needed for rendering. It is built once
// and read-only during the render pass.
type Scene struct {
	Surfaces    []core.Surface // Objects in the scene
	Lights      []core.Light   // Point lights
	Background  core.Color     // Color for rays that hit nothing
	SurfaceTint core.Color     // Tint applied to every lit surface
	Config      RenderConfig
}

// Validate rejects configurations that would produce degenerate math
// downstream: non-positive image dimensions, a field of view outside
// (0, 180) degrees, and non-positive sphere radii are caught here rather
// than at render time. An empty surface list is valid and renders a
// background-only frame.
func (s *Scene) Validate() error {
	if s.Config.Width <= 0 || s.Config.Height <= 0 {
		return fmt.Errorf("invalid image dimensions %dx%d: width and height must be positive", s.Config.Width, s.Config.Height)
	}
	if s.Config.FOV <= 0 || s.Config.FOV >= 180 {
		return fmt.Errorf("invalid field of view %g: must be in (0, 180) degrees", s.Config.FOV)
	}
	for i, surface := range s.Surfaces {
		if sphere, ok := surface.(*geometry.Sphere); ok && sphere.Radius <= 0 {
			return fmt.Errorf("sphere %d has radius %g: must be positive", i, sphere.Radius)
		}
	}
	return nil
}
