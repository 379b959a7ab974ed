// Package stl writes dialmesh triangle meshes as binary STL and emits
// a human-readable generation report. It is the export collaborator of
// the geometry core: it consumes TriangleMesh values and performs the
// only file-facing work in the module.
package stl

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/gogpu/dialmesh"
)

// headerText fills the fixed 80-byte binary STL header. Slicers ignore
// it, but it must not begin with "solid" or some readers assume ASCII.
const headerText = "dialmesh binary STL"

// Write encodes the mesh as binary STL: an 80-byte header, a uint32
// triangle count, then one 50-byte record per triangle (normal, three
// vertices, attribute word), all little-endian. Facet normals are
// computed from the triangle winding by the right-hand rule; degenerate
// triangles get a zero normal, which STL permits.
func Write(w io.Writer, mesh dialmesh.TriangleMesh) error {
	var header [80]byte
	copy(header[:], headerText)
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("stl: writing header: %w", err)
	}

	if err := binary.Write(w, binary.LittleEndian, uint32(len(mesh))); err != nil {
		return fmt.Errorf("stl: writing triangle count: %w", err)
	}

	// One record is 12 float32s plus the attribute uint16.
	var record [50]byte
	for i, tri := range mesh {
		n := normal(tri)
		off := 0
		put := func(v float64) {
			binary.LittleEndian.PutUint32(record[off:], math.Float32bits(float32(v)))
			off += 4
		}
		put(n.X)
		put(n.Y)
		put(n.Z)
		for _, v := range tri {
			put(v.X)
			put(v.Y)
			put(v.Z)
		}
		binary.LittleEndian.PutUint16(record[off:], 0)

		if _, err := w.Write(record[:]); err != nil {
			return fmt.Errorf("stl: writing triangle %d: %w", i, err)
		}
	}

	return nil
}

// normal computes the unit facet normal of a triangle from its winding.
func normal(tri dialmesh.Triangle) dialmesh.Vertex {
	ux := tri[1].X - tri[0].X
	uy := tri[1].Y - tri[0].Y
	uz := tri[1].Z - tri[0].Z
	vx := tri[2].X - tri[0].X
	vy := tri[2].Y - tri[0].Y
	vz := tri[2].Z - tri[0].Z

	n := dialmesh.Vertex{
		X: uy*vz - uz*vy,
		Y: uz*vx - ux*vz,
		Z: ux*vy - uy*vx,
	}
	length := math.Sqrt(n.X*n.X + n.Y*n.Y + n.Z*n.Z)
	if length == 0 {
		return dialmesh.Vertex{}
	}
	return dialmesh.Vertex{X: n.X / length, Y: n.Y / length, Z: n.Z / length}
}

// WriteReport writes a human-readable summary of a generation run:
// the configuration, the distortion filters in effect, and per-label
// and combined mesh statistics. All dimensions are millimeters.
func WriteReport(w io.Writer, cfg dialmesh.Config, result *dialmesh.Result) error {
	stats := result.Stats()

	fmt.Fprintln(w, "dialmesh generation report")
	fmt.Fprintln(w, "==========================")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Dial dimensions:")
	fmt.Fprintf(w, "  Outer radius:      %.1f mm\n", cfg.OuterRadius)
	fmt.Fprintf(w, "  Inner radius:      %.1f mm\n", cfg.InnerRadius)
	fmt.Fprintf(w, "  Vertical margin:   %.1f mm\n", cfg.VerticalMargin)
	fmt.Fprintf(w, "  Horizontal margin: %.1f mm\n", cfg.HorizontalMargin)
	fmt.Fprintf(w, "  Extrusion depth:   %.1f mm\n", cfg.Depth)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Distortion filters:")
	d := cfg.Distortion
	if d.IsZero() {
		fmt.Fprintln(w, "  none")
	} else {
		if d.EdgeIrregularity > 0 {
			fmt.Fprintf(w, "  Edge irregularity:  %.2f\n", d.EdgeIrregularity)
		}
		if d.Roughness > 0 {
			fmt.Fprintf(w, "  Roughness:          %.2f\n", d.Roughness)
		}
		if d.PerspectiveStretch > 0 {
			fmt.Fprintf(w, "  Perspective stretch: %.2f\n", d.PerspectiveStretch)
		}
		if d.Erosion > 0 {
			fmt.Fprintf(w, "  Erosion:            %.2f\n", d.Erosion)
		}
		fmt.Fprintf(w, "  Seed:               %d\n", cfg.Seed)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Labels:")
	for _, lr := range result.Labels {
		if lr.Mesh.IsEmptySentinel() {
			fmt.Fprintf(w, "  %-5s skipped (no usable geometry)\n", lr.Text)
			continue
		}
		fmt.Fprintf(w, "  %-5s scale %.3f, %d triangles, sector r %.1f..%.1f mm\n",
			lr.Text, lr.Scale, len(lr.Mesh),
			lr.Placement.Sector.InnerRadius, lr.Placement.Sector.OuterRadius)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Combined mesh: %d triangles\n", stats.Triangles)
	fmt.Fprintf(w, "Bounding box:  (%.2f, %.2f, %.2f) .. (%.2f, %.2f, %.2f) mm\n",
		stats.Min.X, stats.Min.Y, stats.Min.Z,
		stats.Max.X, stats.Max.Y, stats.Max.Z)

	return nil
}
