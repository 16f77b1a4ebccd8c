package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/HugoSmits86/nativewebp"

	"github.com/Carmen-Shannon/pano-go/engine/loader"
	"github.com/Carmen-Shannon/pano-go/engine/projection"
)

// panoshot renders a single view of a panorama to a WebP file without
// opening a window. Useful for thumbnails and for checking projection
// output on headless machines.
func main() {
	out := flag.String("out", "panoshot.webp", "output WebP path")
	width := flag.Int("width", 1280, "output width in pixels")
	height := flag.Int("height", 720, "output height in pixels")
	yaw := flag.Float64("yaw", 0, "view yaw in radians")
	pitch := flag.Float64("pitch", 0, "view pitch in radians")
	roll := flag.Float64("roll", 0, "view roll in radians")
	zoom := flag.Float64("zoom", 1, "view zoom scalar")
	workers := flag.Int("workers", runtime.NumCPU(), "render worker count")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <panorama image>\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	pano, err := loader.Load(path)
	if err != nil {
		log.Fatalf("load %s: %v", path, err)
	}
	log.Printf("loaded %s: %dx%d", path, pano.Width(), pano.Height())

	r := projection.NewFrameRenderer(projection.WithWorkers(*workers))
	frame := r.RenderFrame(
		pano.Image,
		pano.Meta,
		float32(*yaw), float32(*pitch), float32(*roll), float32(*zoom),
		*width, *height,
	)

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create %s: %v", *out, err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, frame, nil); err != nil {
		log.Fatalf("encode %s: %v", *out, err)
	}
	log.Printf("wrote %s (%dx%d)", *out, *width, *height)
}
