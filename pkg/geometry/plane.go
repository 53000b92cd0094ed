package geometry

import (
	"math"

	"spheretrace/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point  core.Vec3
	Normal core.Vec3
}

// NewPlane creates a new plane. The normal is normalized so NormalAt
// can return it directly.
func NewPlane(point, normal core.Vec3) *Plane {
	return &Plane{Point: point, Normal: normal.Normalize()}
}

// Intersect tests the ray against the plane and returns the distance to
// the crossing when it lies in front of the ray.
func (p *Plane) Intersect(ray core.Ray) (float64, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray parallel to the plane.
	if math.Abs(denominator) < 1e-8 {
		return 0, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t <= hitEpsilon {
		return 0, false
	}
	return t, true
}

// NormalAt returns the plane normal regardless of the query point
func (p *Plane) NormalAt(core.Vec3) core.Vec3 {
	return p.Normal
}
