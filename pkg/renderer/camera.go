package renderer

import (
	"math"

	"spheretrace/pkg/core"
)

// Camera is a pinhole camera at the origin looking down the -Z axis.
// It maps pixel coordinates through normalized device coordinates into
// camera space using the horizontal field of view and aspect ratio.
type Camera struct {
	origin     core.Vec3
	width      int
	height     int
	aspect     float64
	tanHalfFOV float64
}

// NewCamera creates a camera for a width x height image with the given
// field of view in degrees.
func NewCamera(width, height int, fovDegrees float64) *Camera {
	return &Camera{
		origin:     core.NewVec3(0, 0, 0),
		width:      width,
		height:     height,
		aspect:     float64(width) / float64(height),
		tanHalfFOV: math.Tan(fovDegrees / 2 * math.Pi / 180),
	}
}

// GetRay generates the primary ray through the center of pixel (x, y),
// with (0, 0) the top-left pixel. The returned direction is normalized.
func (c *Camera) GetRay(x, y int) core.Ray {
	ndcX := (float64(x) + 0.5) / float64(c.width)
	ndcY := (float64(y) + 0.5) / float64(c.height)

	camX := (2*ndcX - 1) * c.aspect * c.tanHalfFOV
	camY := (1 - 2*ndcY) * c.tanHalfFOV

	direction := core.NewVec3(camX, camY, -1).Normalize()
	return core.NewRay(c.origin, direction)
}
