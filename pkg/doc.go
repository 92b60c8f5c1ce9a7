// Package pkg provides the core libraries for genogrid.
//
// # Overview
//
// genogrid renders a sequence of genotype calls as a fixed-size canvas
// tiled with equal square cells, one per call. The pkg directory is
// organized into these areas:
//
//  1. [colour] - HSV to RGB conversion and perceptual colour distance
//  2. [palette] - Hue sampling strategies and categorical colour mapping
//  3. [grid] - Cell size and raster-order cell positions
//  4. [render] - SVG and PNG sinks plus the external rasterizer
//  5. [genotype] - Tab-delimited genotype file reader
//  6. [pipeline] - Orchestration (layout → palette → render)
//
// # Architecture
//
// The typical data flow through genogrid:
//
//	genotype file
//	     ↓
//	[genotype] package (one item per call)
//	     ↓
//	[grid] package (cell side and positions)
//	     ↓
//	[palette] package (optional colour per distinct call)
//	     ↓
//	[render/sink] package (SVG document, native PNG)
//	     ↓
//	[render] package (rsvg-convert for PNG/PDF)
//
// # Quick Start
//
// Render calls with one colour per genotype:
//
//	import (
//	    "github.com/matzehuels/genogrid/pkg/genotype"
//	    "github.com/matzehuels/genogrid/pkg/palette"
//	    "github.com/matzehuels/genogrid/pkg/render/sink"
//	)
//
//	calls, _ := genotype.ReadFile("genome.txt")
//	p, _ := palette.Generate(len(genotype.Categories(calls)), palette.MethodChromaBisection)
//	doc, _ := sink.RenderSVG(calls, 800, 600, sink.WithPalette(p))
//
// Or run the whole pipeline:
//
//	runner := pipeline.NewRunner(nil, logger)
//	result, err := runner.ExecuteFile(ctx, "genome.txt", pipeline.Options{
//	    ColorBy: pipeline.ColorByCategory,
//	    Formats: []string{"svg", "png"},
//	})
//
// [colour]: github.com/matzehuels/genogrid/pkg/colour
// [palette]: github.com/matzehuels/genogrid/pkg/palette
// [grid]: github.com/matzehuels/genogrid/pkg/grid
// [render]: github.com/matzehuels/genogrid/pkg/render
// [render/sink]: github.com/matzehuels/genogrid/pkg/render/sink
// [genotype]: github.com/matzehuels/genogrid/pkg/genotype
// [pipeline]: github.com/matzehuels/genogrid/pkg/pipeline
package pkg
