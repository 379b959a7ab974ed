package dialmesh

import (
	"errors"
	"fmt"
)

// OutlineSource produces the vector path for a label string. The text
// subpackage provides the font-backed implementation; the render size
// is the source's own business because the pipeline normalizes every
// outline to the sector height from its measured bounds.
type OutlineSource interface {
	Outline(label string) (*Path, error)
}

// Config carries every knob of a dial generation run. Values are plain
// numbers and strings; Validate rejects invalid configurations at the
// boundary so the geometry stages never see them.
type Config struct {
	// OuterRadius and InnerRadius bound the numeral band, millimeters.
	OuterRadius float64
	InnerRadius float64

	// VerticalMargin pads the band radially; HorizontalMargin pads
	// between neighboring sectors. Millimeters.
	VerticalMargin   float64
	HorizontalMargin float64

	// Style and Set choose the label strings. Labels, when non-empty,
	// overrides both.
	Style  LabelStyle
	Set    LabelSet
	Labels []string

	// Depth is the extrusion depth in millimeters.
	Depth float64

	// Distortion magnitudes and the base seed for their generator.
	Distortion Distortion
	Seed       int64

	// PaddingFactor shrinks the converged fit scale as a safety
	// margin. Zero selects DefaultPaddingFactor.
	PaddingFactor float64

	// FitIterations bounds the fit binary search. Zero selects
	// DefaultFitIterations.
	FitIterations int

	// CurveSegments is the per-curve flattening resolution for the
	// contours that get distorted, fitted and extruded. Zero selects
	// MeshSegments. Measurement always uses AnalysisSegments.
	CurveSegments int
}

// Validate checks the configuration. Invalid configuration is an error
// here, before any geometry runs; degenerate geometry discovered later
// is handled with sentinels instead.
func (c Config) Validate() error {
	if c.InnerRadius < 0 {
		return fmt.Errorf("inner radius %g is negative", c.InnerRadius)
	}
	if c.InnerRadius >= c.OuterRadius {
		return fmt.Errorf("inner radius %g must be less than outer radius %g", c.InnerRadius, c.OuterRadius)
	}
	if c.Depth <= 0 {
		return fmt.Errorf("extrusion depth %g must be positive", c.Depth)
	}
	if len(c.labels()) == 0 {
		return errors.New("no labels to place")
	}
	return nil
}

func (c Config) labels() []string {
	if len(c.Labels) > 0 {
		return c.Labels
	}
	return DialLabels(c.Style, c.Set)
}

func (c Config) paddingFactor() float64 {
	if c.PaddingFactor <= 0 {
		return DefaultPaddingFactor
	}
	return c.PaddingFactor
}

// curveSegments resolves the mesh-path flattening resolution. The
// default must be resolved here: FlattenOptions itself defaults to
// AnalysisSegments, which is the measurement resolution, not the mesh
// one.
func (c Config) curveSegments() int {
	if c.CurveSegments <= 0 {
		return MeshSegments
	}
	return c.CurveSegments
}

// LabelResult is the outcome for a single label: the preview contours
// (positioned and distorted, identical geometry to what fed extrusion)
// and the extruded sub-mesh with its placement metadata.
type LabelResult struct {
	Text      string
	Placement LabelPlacement

	// Scale is the verified fit scale; 0 means the label could not be
	// placed and Mesh is the empty sentinel.
	Scale float64

	// Contours are the final positioned 2D contours in preview space
	// (Y down), exactly what was extruded.
	Contours []Contour

	Mesh TriangleMesh
}

// Stats summarizes a generated mesh for reporting.
type Stats struct {
	Labels    int
	Triangles int
	Min, Max  Vertex
}

// Result is a full generation run: the combined mesh plus per-label
// results in input order.
type Result struct {
	Mesh   TriangleMesh
	Labels []LabelResult
}

// Stats computes summary statistics over the combined mesh.
func (r *Result) Stats() Stats {
	min, max := r.Mesh.Bounds()
	return Stats{
		Labels:    len(r.Labels),
		Triangles: len(r.Mesh),
		Min:       min,
		Max:       max,
	}
}

// Generator runs the dial pipeline against one outline source.
type Generator struct {
	source OutlineSource
}

// NewGenerator creates a Generator reading glyph outlines from source.
func NewGenerator(source OutlineSource) *Generator {
	return &Generator{source: source}
}

// Generate runs the full pipeline: sector computation, then per label
// outline extraction, distortion, rotation, verified sector fitting,
// positioning, grouping, triangulation and extrusion. Per-label
// failures are logged and contribute the empty-mesh sentinel; the batch
// never aborts. Labels are processed and concatenated in input order,
// so identical configurations produce identical output.
func (g *Generator) Generate(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("dialmesh: %w", err)
	}

	labels := cfg.labels()
	placements := ComputeSectors(cfg.OuterRadius, cfg.InnerRadius,
		cfg.VerticalMargin, cfg.HorizontalMargin, labels)

	result := &Result{
		Labels: make([]LabelResult, 0, len(placements)),
	}

	var meshes []TriangleMesh
	for _, placement := range placements {
		lr := g.generateLabel(placement, cfg)
		meshes = append(meshes, lr.Mesh)
		result.Labels = append(result.Labels, lr)
	}

	result.Mesh = Concat(meshes...)

	stats := result.Stats()
	Logger().Debug("dial generated",
		"labels", stats.Labels, "triangles", stats.Triangles)

	return result, nil
}

// generateLabel runs the per-label pipeline. It never returns an error:
// anything that goes wrong is logged and yields the sentinel so the
// label renders as absent while the rest of the dial survives.
func (g *Generator) generateLabel(placement LabelPlacement, cfg Config) LabelResult {
	log := Logger().With("label", placement.Text)
	failed := LabelResult{
		Text:      placement.Text,
		Placement: placement,
		Mesh:      EmptyMesh(),
	}

	path, err := g.source.Outline(placement.Text)
	if err != nil {
		log.Warn("outline extraction failed", "error", err)
		return failed
	}

	// Measure at full analysis resolution to derive the normalization
	// scale that brings the glyph to the sector height.
	measured := ExtractContours(path.Elements(), 1, FlattenOptions{CurveSegments: AnalysisSegments})
	measureBounds, ok := boundsOf(measured)
	if !ok || measureBounds.Height() <= 0 {
		log.Warn("empty or zero-height outline")
		return failed
	}
	normScale := placement.MaxHeight / measureBounds.Height()

	// The working contour set: coarser flattening, since every point
	// becomes wall geometry. Distortion, fitting and extrusion all see
	// this same set.
	contours := ExtractContours(path.Elements(), normScale,
		FlattenOptions{CurveSegments: cfg.curveSegments()})
	contours = stripClosingPoints(contours)
	if len(contours) == 0 {
		log.Warn("no contours after extraction")
		return failed
	}

	contours = cfg.Distortion.Apply(contours, LabelSeed(placement.Text, cfg.Seed))

	// Rotate around the bounding-box center so the numeral aligns
	// radially, then fit the rotated shape: the fit must verify
	// exactly the geometry that gets extruded.
	bounds, _ := boundsOf(contours)
	c := bounds.Center()
	rotation := Translate(c.X, c.Y).
		Multiply(Rotate(placement.Angle)).
		Multiply(Translate(-c.X, -c.Y))
	rotated := rotation.TransformContours(contours)

	scale := FitScale(rotated, placement.Sector, placement.Center(),
		placement.MaxWidth, placement.MaxHeight,
		cfg.paddingFactor(), cfg.FitIterations)
	if scale <= 0 {
		log.Warn("sector unusable, label skipped")
		return failed
	}

	rotatedBounds, _ := boundsOf(rotated)
	offset := CenteringOffset(rotatedBounds, scale, placement.Center())
	positioned := Translate(offset.X, offset.Y).
		Multiply(Scale(scale)).
		TransformContours(rotated)

	groups := GroupContours(toMeshSpace(positioned))
	mesh := ExtrudeGroups(groups, cfg.Depth)

	log.Debug("label generated", "scale", scale, "triangles", len(mesh))

	return LabelResult{
		Text:      placement.Text,
		Placement: placement,
		Scale:     scale,
		Contours:  positioned,
		Mesh:      mesh,
	}
}

// toMeshSpace converts preview contours (screen convention, Y down)
// into mesh space (Y up) by negating Y and reversing point order.
// Reversing keeps each contour's signed area unchanged, so winding
// classification and wall normals stay correct after the mirror.
func toMeshSpace(contours []Contour) []Contour {
	result := make([]Contour, len(contours))
	for i, c := range contours {
		out := make(Contour, len(c))
		for j, p := range c {
			out[len(c)-1-j] = Point{X: p.X, Y: -p.Y}
		}
		result[i] = out
	}
	return result
}
