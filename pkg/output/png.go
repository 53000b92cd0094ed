package output

import (
	"fmt"

	"github.com/fogleman/gg"

	"spheretrace/pkg/renderer"
)

// SavePNG writes the frame to a PNG file at path
func SavePNG(path string, frame *renderer.Frame) error {
	ctx := gg.NewContextForImage(frame.ToImage())
	if err := ctx.SavePNG(path); err != nil {
		return fmt.Errorf("save png %s: %w", path, err)
	}
	return nil
}
