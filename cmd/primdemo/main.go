// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command primdemo draws a shape scene with prim and saves it as PNG.
//
// Without -scene it draws a built-in scene sized to the image.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gg"

	"github.com/gogpu/prim"
	"github.com/gogpu/prim/batch"
	"github.com/gogpu/prim/internal/scenefile"
	"github.com/gogpu/prim/raster"
)

func main() {
	var (
		width   = flag.Int("width", 640, "image width")
		height  = flag.Int("height", 480, "image height")
		output  = flag.String("output", "primdemo.png", "output file")
		scene   = flag.String("scene", "", "YAML scene file (default: built-in scene)")
		verbose = flag.Bool("v", false, "log shape submissions")
	)
	flag.Parse()

	if *verbose {
		prim.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var (
		b   *batch.Batch
		err error
	)
	if *scene != "" {
		b, err = loadScene(*scene)
	} else {
		b, err = buildDemo(float64(*width), float64(*height))
	}
	if err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}

	dc, err := render(b, *width, *height)
	if err != nil {
		log.Fatalf("Failed to draw: %v", err)
	}
	if err := dc.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Scene saved to %s (%dx%d, %d vertex lists)\n", *output, *width, *height, b.Len())
}

func loadScene(path string) (*batch.Batch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc, err := scenefile.Load(f)
	if err != nil {
		return nil, err
	}
	return sc.Build(nil)
}

func render(b *batch.Batch, w, h int) (*gg.Context, error) {
	dc := gg.NewContext(w, h)
	dc.ClearWithColor(gg.White)
	if err := b.Draw(raster.New(dc)); err != nil {
		return nil, err
	}
	return dc, nil
}

// buildDemo fills one batch with every shape kind. Later calls land above
// earlier ones.
func buildDemo(w, h float64) (*batch.Batch, error) {
	b, err := prim.Polygon(
		[]prim.Point{{X: 200, Y: 100}, {X: 100, Y: 400}, {X: 5, Y: 5}, {X: 100, Y: 20}},
		prim.WithFill(0x000066ff),
		prim.WithStroke([]int{0, 100, 0}),
		prim.WithStrokeWidth(10),
	)
	if err != nil {
		return nil, err
	}

	arcStyle := []prim.Option{
		prim.WithBatch(b),
		prim.WithFill("rosy_brown"),
		prim.WithStroke("midnight_blue"),
		prim.WithStrokeWidth(3),
	}
	center := prim.Pt(w/2, h/2)

	steps := []func() (*batch.Batch, error){
		func() (*batch.Batch, error) {
			return prim.Polygon(
				[]prim.Point{{X: 300, Y: 200}, {X: 400, Y: 120}, {X: 100, Y: 120}},
				prim.WithBatch(b), prim.WithFill([]int{255, 0, 0}), prim.NoStroke())
		},
		func() (*batch.Batch, error) {
			return prim.Ellipse(center, prim.Pt(20, 30),
				prim.WithBatch(b), prim.WithFill("aquamarine"), prim.WithStroke("blue_violet"))
		},
		func() (*batch.Batch, error) {
			return prim.Square(prim.Pt(w-52.5, 52.5), 100,
				prim.WithBatch(b), prim.WithFill("aquamarine"), prim.WithStroke("dark_orange"), prim.WithStrokeWidth(5))
		},
		func() (*batch.Batch, error) {
			return prim.Line(prim.Pt(10, 10), prim.Pt(w-10, h-10),
				prim.WithBatch(b), prim.WithStroke("dark_orange"), prim.WithStrokeWidth(5))
		},
		func() (*batch.Batch, error) {
			return prim.Ellipse(center, prim.Pt(w/2-5, h/2-5),
				prim.WithBatch(b), prim.NoFill(), prim.WithStroke("dark_orange"), prim.WithStrokeWidth(5))
		},
		func() (*batch.Batch, error) {
			return prim.Dot(prim.Pt(2.5, h-2.5),
				prim.WithBatch(b), prim.WithStroke("dark_orange"), prim.WithStrokeWidth(5))
		},
		func() (*batch.Batch, error) {
			return prim.Arc(prim.Pt(500, 400), prim.Pt(50, 30), prim.Span{Start: 0.5, Stop: 5.2}, arcStyle...)
		},
		func() (*batch.Batch, error) {
			return prim.Chord(prim.Pt(500, 330), prim.Pt(50, 30), prim.Span{Start: 0.5, Stop: 5.2}, arcStyle...)
		},
		func() (*batch.Batch, error) {
			return prim.Pie(prim.Pt(600, 350), 30, prim.Span{Start: 1.5, Stop: 6.3}, arcStyle...)
		},
	}
	for _, step := range steps {
		if _, err := step(); err != nil {
			return nil, err
		}
	}
	return b, nil
}
