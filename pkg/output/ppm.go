// Package output holds the image sinks. Rendering never depends on
// sink state: the frame is computed in full first, and write failures
// surface from here as ordinary errors.
package output

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"spheretrace/pkg/renderer"
)

// WritePPM serializes the frame as a plain-text PPM (P3) image: the
// "P3" magic, dimensions, the max channel value, then one integer
// triple per pixel in row-major order, top row first.
func WritePPM(w io.Writer, frame *renderer.Frame) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n%d\n", frame.Width, frame.Height, renderer.MaxChannelValue); err != nil {
		return fmt.Errorf("write ppm header: %w", err)
	}

	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			r, g, b := renderer.Quantize(frame.At(x, y))
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
				return fmt.Errorf("write ppm pixel (%d,%d): %w", x, y, err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush ppm output: %w", err)
	}
	return nil
}

// SavePPM writes the frame to a PPM file at path
func SavePPM(path string, frame *renderer.Frame) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WritePPM(f, frame); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
