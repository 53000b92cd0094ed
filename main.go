package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"spheretrace/pkg/output"
	"spheretrace/pkg/renderer"
	"spheretrace/pkg/scene"
)

func main() {
	sceneFile := flag.String("scene", "", "JSON scene file (empty = built-in default scene)")
	outPath := flag.String("out", "out.ppm", "Output image path")
	format := flag.String("format", "ppm", "Output format: 'ppm' or 'png'")
	workers := flag.Int("workers", 0, "Number of render workers (0 = one per CPU)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Sphere raytracer")
		fmt.Println("Usage: spheretrace [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	if err := run(*sceneFile, *outPath, *format, *workers); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(sceneFile, outPath, format string, workers int) error {
	var s *scene.Scene
	var err error
	if sceneFile == "" {
		s = scene.NewDefaultScene()
		if err = s.Validate(); err != nil {
			return err
		}
	} else {
		if s, err = scene.LoadConfig(sceneFile); err != nil {
			return err
		}
	}

	logger := renderer.NewLogger()
	logger.Printf("Rendering %dx%d, %d surfaces, %d lights...\n",
		s.Config.Width, s.Config.Height, len(s.Surfaces), len(s.Lights))

	startTime := time.Now()
	frame := renderer.NewRaytracer(s).RenderParallel(workers)
	logger.Printf("Render completed in %v\n", time.Since(startTime))

	switch format {
	case "ppm":
		err = output.SavePPM(outPath, frame)
	case "png":
		err = output.SavePNG(outPath, frame)
	default:
		return fmt.Errorf("unknown output format %q: use 'ppm' or 'png'", format)
	}
	if err != nil {
		return err
	}

	logger.Printf("Render saved as %s\n", outPath)
	return nil
}
