package scene

import (
	"strings"
	"testing"

	"spheretrace/pkg/core"
	"spheretrace/pkg/geometry"
)

func TestParseConfig(t *testing.T) {
	input := `{
		"width": 640,
		"height": 480,
		"fov": 90,
		"background": {"r": 0.1, "g": 0.2, "b": 0.3},
		"surfaceTint": {"r": 1, "g": 1, "b": 0},
		"spheres": [
			{"center": {"x": 0, "y": 0, "z": -20}, "radius": 5},
			{"center": {"x": 2, "y": 1, "z": -15}, "radius": 1}
		],
		"planes": [
			{"point": {"y": -10}, "normal": {"y": 1}}
		],
		"lights": [
			{"position": {"x": 30, "y": 30, "z": -2}},
			{"position": {"x": -30, "y": -20, "z": 1}, "color": {"r": 0.5, "g": 0.5, "b": 1}}
		]
	}`

	s, err := ParseConfig(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}

	if s.Config.Width != 640 || s.Config.Height != 480 || s.Config.FOV != 90 {
		t.Errorf("Unexpected render config %+v", s.Config)
	}
	if s.Background != core.NewColor(0.1, 0.2, 0.3) {
		t.Errorf("Unexpected background %v", s.Background)
	}
	if s.SurfaceTint != core.NewColor(1, 1, 0) {
		t.Errorf("Unexpected tint %v", s.SurfaceTint)
	}
	if len(s.Surfaces) != 3 {
		t.Fatalf("Expected 3 surfaces, got %d", len(s.Surfaces))
	}
	if _, ok := s.Surfaces[2].(*geometry.Plane); !ok {
		t.Errorf("Expected third surface to be a plane")
	}
	if len(s.Lights) != 2 {
		t.Fatalf("Expected 2 lights, got %d", len(s.Lights))
	}
	if s.Lights[0].Color != core.White() {
		t.Errorf("Light without color should default to white, got %v", s.Lights[0].Color)
	}
	if s.Lights[1].Color != core.NewColor(0.5, 0.5, 1) {
		t.Errorf("Unexpected second light color %v", s.Lights[1].Color)
	}
}

func TestParseConfig_DefaultsBackgroundAndTint(t *testing.T) {
	input := `{"width": 100, "height": 100, "fov": 60, "spheres": [], "lights": []}`

	s, err := ParseConfig(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if s.Background != core.NewColor(0, 0.5, 0.5) {
		t.Errorf("Expected default background, got %v", s.Background)
	}
	if s.SurfaceTint != core.Red() {
		t.Errorf("Expected red tint, got %v", s.SurfaceTint)
	}
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "Malformed JSON",
			input: `{"width": 100,`,
		},
		{
			name:  "Unknown field",
			input: `{"width": 100, "height": 100, "fov": 60, "samples": 8}`,
		},
		{
			name:  "Zero radius sphere",
			input: `{"width": 100, "height": 100, "fov": 60, "spheres": [{"center": {"z": -5}, "radius": 0}]}`,
		},
		{
			name:  "Zero-normal plane",
			input: `{"width": 100, "height": 100, "fov": 60, "planes": [{"point": {"y": -1}, "normal": {}}]}`,
		},
		{
			name:  "Missing dimensions",
			input: `{"fov": 60}`,
		},
		{
			name:  "FOV out of range",
			input: `{"width": 100, "height": 100, "fov": 200}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseConfig(strings.NewReader(tt.input)); err == nil {
				t.Errorf("Expected error for %s", tt.name)
			}
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig("does-not-exist.json"); err == nil {
		t.Errorf("Expected error for missing file")
	}
}
