// Command dialmesh generates 3D-printable watch dial numerals as STL.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/dialmesh"
	"github.com/gogpu/dialmesh/stl"
	"github.com/gogpu/dialmesh/text"
)

func main() {
	var (
		fontPath = flag.String("font", "", "path to a TTF/OTF font file (required)")
		output   = flag.String("output", "dial.stl", "output STL file")
		report   = flag.String("report", "", "optional report file")

		outerR  = flag.Float64("outer", 49, "outer radius of the numeral band (mm)")
		innerR  = flag.Float64("inner", 36, "inner radius of the numeral band (mm)")
		vMargin = flag.Float64("vmargin", 1, "radial margin (mm)")
		hMargin = flag.Float64("hmargin", 1, "margin between neighboring sectors (mm)")
		depth   = flag.Float64("depth", 1.5, "extrusion depth (mm)")

		style = flag.String("style", "decimal", "label style: decimal or roman")
		set   = flag.String("set", "all", "label set: all or cardinals")

		edge      = flag.Float64("edge", 0, "edge irregularity magnitude")
		rough     = flag.Float64("rough", 0, "roughness magnitude")
		stretch   = flag.Float64("stretch", 0, "perspective stretch magnitude")
		erosion   = flag.Float64("erosion", 0, "erosion magnitude")
		seed      = flag.Int64("seed", 42, "distortion seed")
		verbosity = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *fontPath == "" {
		log.Fatal("missing -font")
	}

	if *verbosity {
		dialmesh.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	fontData, err := os.ReadFile(*fontPath)
	if err != nil {
		log.Fatalf("Failed to read font: %v", err)
	}
	font, err := text.ParseFont(fontData)
	if err != nil {
		log.Fatalf("Failed to parse font: %v", err)
	}

	cfg := dialmesh.Config{
		OuterRadius:      *outerR,
		InnerRadius:      *innerR,
		VerticalMargin:   *vMargin,
		HorizontalMargin: *hMargin,
		Style:            dialmesh.LabelStyle(strings.ToLower(*style)),
		Set:              dialmesh.LabelSet(strings.ToLower(*set)),
		Depth:            *depth,
		Distortion: dialmesh.Distortion{
			EdgeIrregularity:   *edge,
			Roughness:          *rough,
			PerspectiveStretch: *stretch,
			Erosion:            *erosion,
		},
		Seed: *seed,
	}

	gen := dialmesh.NewGenerator(text.NewProvider(font))
	result, err := gen.Generate(cfg)
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}

	out, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	defer out.Close()
	if err := stl.Write(out, result.Mesh); err != nil {
		log.Fatalf("Failed to write STL: %v", err)
	}

	if *report != "" {
		rep, err := os.Create(*report)
		if err != nil {
			log.Fatalf("Failed to create report: %v", err)
		}
		defer rep.Close()
		if err := stl.WriteReport(rep, cfg, result); err != nil {
			log.Fatalf("Failed to write report: %v", err)
		}
	}

	stats := result.Stats()
	log.Printf("Wrote %s: %d labels, %d triangles", *output, stats.Labels, stats.Triangles)
}
