package scene

import (
	"spheretrace/pkg/core"
	"spheretrace/pkg/geometry"
)

// NewDefaultScene creates the built-in scene: a group of spheres in
// front of the camera with a single white light up and to the right.
func NewDefaultScene() *Scene {
	return &Scene{
		Surfaces: []core.Surface{
			geometry.NewSphere(core.NewVec3(0, 0, -20), 5),
			geometry.NewSphere(core.NewVec3(2, 1, -15), 1),
			geometry.NewSphere(core.NewVec3(4, 4, -22), 2.5),
			geometry.NewSphere(core.NewVec3(80, -6, -150), 5),
			geometry.NewSphere(core.NewVec3(-4, 4, -5), 2.5),
		},
		Lights: []core.Light{
			core.NewLight(core.NewVec3(30, 30, -2)),
		},
		Background:  core.NewColor(0, 0.5, 0.5),
		SurfaceTint: core.Red(),
		Config: RenderConfig{
			Width:  800,
			Height: 500,
			FOV:    100,
		},
	}
}
