package core

// Surface is any renderable primitive. Implementations report the
// nearest valid hit distance along a ray, or false when the ray misses.
type Surface interface {
	// Intersect returns the smallest acceptable distance at which the
	// ray enters the surface. A miss is the false return, never a
	// sentinel distance.
	Intersect(ray Ray) (float64, bool)
	// NormalAt returns the outward surface normal at a point assumed
	// to lie on the surface.
	NormalAt(point Vec3) Vec3
}

// Light is a point light source
type Light struct {
	Position Vec3
	Color    Color
}

// NewLight creates a white point light at the given position
func NewLight(position Vec3) Light {
	return Light{Position: position, Color: White()}
}

// Logger interface for renderer logging
type Logger interface {
	Printf(format string, args ...interface{})
}
