package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/Carmen-Shannon/pano-go/common"
	"github.com/Carmen-Shannon/pano-go/engine"
	"github.com/Carmen-Shannon/pano-go/engine/camera"
	"github.com/Carmen-Shannon/pano-go/engine/loader"
	"github.com/Carmen-Shannon/pano-go/engine/renderer"
	"github.com/Carmen-Shannon/pano-go/engine/window"
)

// keyDirections maps window key codes to logical camera directions.
var keyDirections = map[uint32]camera.Direction{
	common.KeyLeft:     camera.DirectionYawNeg,
	common.KeyRight:    camera.DirectionYawPos,
	common.KeyDown:     camera.DirectionPitchNeg,
	common.KeyUp:       camera.DirectionPitchPos,
	common.KeyPageUp:   camera.DirectionZoomIn,
	common.KeyPageDown: camera.DirectionZoomOut,
}

func main() {
	width := flag.Int("width", 1280, "initial window width in pixels")
	height := flag.Int("height", 720, "initial window height in pixels")
	uncapped := flag.Bool("uncapped", false, "disable vsync presentation")
	software := flag.Bool("software", false, "force software rendering adapter")
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

	w := window.NewWindow(
		window.WithTitle(fmt.Sprintf("Panorama Viewer - %s", filepath.Base(path))),
		window.WithWidth(*width),
		window.WithHeight(*height),
	)
	defer w.Close()

	rendererOptions := []renderer.RendererBuilderOption{}
	if *uncapped {
		rendererOptions = append(rendererOptions, renderer.WithPresentMode(renderer.PresentModeUncapped))
	}
	if *software {
		rendererOptions = append(rendererOptions, renderer.WithForceSoftwareRenderer())
	}
	r := renderer.NewRenderer(renderer.BackendTypeWGPU, w, rendererOptions...)
	defer r.Release()

	if err := r.InitPanorama(common.TextureStagingData{
		Pixels: pano.Image.Pix,
		Width:  uint32(pano.Width()),
		Height: uint32(pano.Height()),
	}); err != nil {
		log.Fatalf("init panorama: %v", err)
	}

	view := camera.NewView()
	controller := camera.NewController(view)
	eng := engine.NewEngine(w, view)

	w.SetKeyDownCallback(func(keyCode uint32) {
		if dir, ok := keyDirections[keyCode]; ok {
			controller.Apply(camera.Event{Kind: camera.EventKeyDown, Dir: dir})
			eng.RequestRedraw()
		}
	})
	w.SetKeyUpCallback(func(keyCode uint32) {
		if dir, ok := keyDirections[keyCode]; ok {
			controller.Apply(camera.Event{Kind: camera.EventKeyUp, Dir: dir})
		}
	})
	w.SetMouseDownCallback(func(px, py float64) {
		x, y := camera.NormalizePointer(px, py, w.Width(), w.Height())
		controller.Apply(camera.Event{Kind: camera.EventPointerDown, X: x, Y: y})
	})
	w.SetMouseMoveCallback(func(px, py float64) {
		if !controller.Dragging() {
			return
		}
		x, y := camera.NormalizePointer(px, py, w.Width(), w.Height())
		controller.Apply(camera.Event{Kind: camera.EventPointerMove, X: x, Y: y})
		eng.RequestRedraw()
	})
	w.SetMouseUpCallback(func(px, py float64) {
		x, y := camera.NormalizePointer(px, py, w.Width(), w.Height())
		controller.Apply(camera.Event{Kind: camera.EventPointerUp, X: x, Y: y})
	})
	w.SetScrollCallback(func(delta float32) {
		controller.Apply(camera.Event{Kind: camera.EventWheelLine, Delta: delta})
		eng.RequestRedraw()
	})
	w.SetFocusLostCallback(func() {
		controller.Apply(camera.Event{Kind: camera.EventFocusLost})
	})
	w.SetResizeCallback(func(width, height int) {
		r.Resize(width, height)
		eng.RequestRedraw()
	})

	eng.SetRenderCallback(func() {
		yaw, pitch, roll, zoom := view.Orientation()
		aspect := float32(w.Height()) / float32(w.Width())
		params := renderer.NewViewParams(yaw, pitch, roll, zoom, aspect, pano.Meta)
		if err := r.RenderFrame(params); err != nil {
			// The surface can be transiently outdated mid-resize; the next
			// resize callback reconfigures it, so skip the frame rather
			// than die.
			log.Printf("render frame: %v", err)
		}
	})

	eng.Run()
}
