package geometry

import (
	"math"

	"spheretrace/pkg/core"
)

// hitEpsilon is the minimum acceptable intersection distance. It rejects
// hits numerically indistinguishable from a ray's own origin, which keeps
// shadow rays from re-hitting the surface they start on.
const hitEpsilon = 1e-5

// Sphere represents a sphere surface
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{Center: center, Radius: radius}
}

// Intersect tests the ray against the sphere analytically and returns
// the nearest distance greater than hitEpsilon at which the ray enters
// the sphere. Distances are in units of the ray direction's length.
func (s *Sphere) Intersect(ray core.Ray) (float64, bool) {
	// (L·d)² - L·L + r² with L = origin - center
	oc := ray.Origin.Subtract(s.Center)
	tca := oc.Dot(ray.Direction)
	discriminant := tca*tca - oc.Dot(oc) + s.Radius*s.Radius

	if discriminant < 0 {
		return 0, false
	}

	// A tangent ray (discriminant == 0) is a valid single-point hit.
	sqrtD := math.Sqrt(discriminant)
	t1 := -tca + sqrtD
	t2 := -tca - sqrtD

	var dist float64
	switch {
	case t1 < 0 && t2 < 0:
		// Sphere entirely behind the ray; the larger root still fails
		// the epsilon test below.
		dist = math.Max(t1, t2)
	case t1 > 0 && t2 > 0:
		dist = math.Min(t1, t2)
	default:
		// Roots straddle zero: the origin is inside the sphere.
		// Report the forward crossing where the ray exits.
		dist = math.Max(t1, t2)
	}

	if dist <= hitEpsilon {
		return 0, false
	}
	return dist, true
}

// NormalAt returns the outward unit normal for a point on the sphere
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Multiply(1.0 / s.Radius)
}
