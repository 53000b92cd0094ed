package renderer

import (
	"spheretrace/pkg/core"
	"spheretrace/pkg/scene"
)

// ambientFactor scales the surface tint into the constant ambient term
// added to every lit pixel.
const ambientFactor = 0.1

// Raytracer renders a scene with direct lighting and hard shadows.
// The scene is read-only during rendering, so one raytracer can serve
// any number of concurrent row workers.
type Raytracer struct {
	scene  *scene.Scene
	camera *Camera
}

// NewRaytracer creates a raytracer for the given scene
func NewRaytracer(s *scene.Scene) *Raytracer {
	return &Raytracer{
		scene:  s,
		camera: NewCamera(s.Config.Width, s.Config.Height, s.Config.FOV),
	}
}

// Render computes the full frame serially
func (rt *Raytracer) Render() *Frame {
	frame := NewFrame(rt.scene.Config.Width, rt.scene.Config.Height)
	rt.RenderRows(frame, 0, frame.Height)
	return frame
}

// RenderRows renders the half-open row range [y0, y1) into the frame.
// Disjoint row ranges touch disjoint frame cells, which is what makes
// the parallel path safe without locking.
func (rt *Raytracer) RenderRows(frame *Frame, y0, y1 int) {
	for y := y0; y < y1; y++ {
		for x := 0; x < frame.Width; x++ {
			frame.Set(x, y, rt.PixelColor(x, y))
		}
	}
}

// PixelColor traces the primary ray for pixel (x, y) and shades the
// nearest hit, or returns the background color on a miss.
func (rt *Raytracer) PixelColor(x, y int) core.Color {
	ray := rt.camera.GetRay(x, y)

	nearest, surface := rt.nearestHit(ray)
	if surface == nil {
		return rt.scene.Background
	}
	return rt.shade(ray, nearest, surface)
}

// nearestHit scans all surfaces and keeps the minimum reported
// intersection distance. Misses are absence, not sentinel distances.
func (rt *Raytracer) nearestHit(ray core.Ray) (float64, core.Surface) {
	var nearest float64
	var nearestSurface core.Surface

	for _, surface := range rt.scene.Surfaces {
		dist, hit := surface.Intersect(ray)
		if !hit {
			continue
		}
		if nearestSurface == nil || dist < nearest {
			nearest = dist
			nearestSurface = surface
		}
	}
	return nearest, nearestSurface
}

// shade accumulates the direct contribution of every unoccluded light
// at the hit point, then applies the constant ambient term.
func (rt *Raytracer) shade(ray core.Ray, dist float64, surface core.Surface) core.Color {
	hitPoint := ray.At(dist)
	normal := surface.NormalAt(hitPoint)

	px := core.Black()
	for _, light := range rt.scene.Lights {
		lightVec := light.Position.Subtract(hitPoint).Normalize()

		if rt.occluded(core.NewRay(hitPoint, lightVec)) {
			continue
		}

		// Lambertian term, clamped so lights behind the surface
		// contribute nothing instead of subtracting color.
		diffuse := normal.Dot(lightVec)
		if diffuse <= 0 {
			continue
		}
		px = px.Add(rt.scene.SurfaceTint.Mul(light.Color).Scale(diffuse))
	}

	px = px.Clamp(0, 1)
	px = px.Add(rt.scene.SurfaceTint.Scale(ambientFactor))
	return px.Clamp(0, 1)
}

// occluded tests a shadow ray against all surfaces, first hit wins.
// The intersection epsilon keeps the ray from reporting the surface it
// starts on; there is no distance cap, so a blocker beyond the light
// still occludes it.
func (rt *Raytracer) occluded(shadowRay core.Ray) bool {
	for _, surface := range rt.scene.Surfaces {
		if _, hit := surface.Intersect(shadowRay); hit {
			return true
		}
	}
	return false
}
