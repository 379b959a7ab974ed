package stl

import (
	"bytes"
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/dialmesh"
)

func cubeMesh(t *testing.T) dialmesh.TriangleMesh {
	t.Helper()
	square := dialmesh.Contour{
		dialmesh.Pt(0, 0), dialmesh.Pt(10, 0), dialmesh.Pt(10, 10), dialmesh.Pt(0, 10),
	}
	mesh := dialmesh.ExtrudeGroups([]dialmesh.RingGroup{{square}}, 10)
	if mesh.IsEmptySentinel() {
		t.Fatal("extrusion produced the empty sentinel")
	}
	return mesh
}

func TestWriteLayout(t *testing.T) {
	mesh := cubeMesh(t)

	var buf bytes.Buffer
	if err := Write(&buf, mesh); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data := buf.Bytes()
	want := 84 + 50*len(mesh)
	if len(data) != want {
		t.Fatalf("wrote %d bytes, want %d", len(data), want)
	}

	// Binary STL must not start with "solid" or readers take it for
	// the ASCII variant.
	if strings.HasPrefix(string(data[:5]), "solid") {
		t.Error("header starts with \"solid\"")
	}

	count := binary.LittleEndian.Uint32(data[80:84])
	if int(count) != len(mesh) {
		t.Errorf("triangle count = %d, want %d", count, len(mesh))
	}

	// Every attribute byte count word is zero.
	for i := 0; i < len(mesh); i++ {
		off := 84 + i*50 + 48
		if attr := binary.LittleEndian.Uint16(data[off:]); attr != 0 {
			t.Errorf("triangle %d attribute = %d, want 0", i, attr)
		}
	}
}

func TestWriteVertices(t *testing.T) {
	mesh := dialmesh.TriangleMesh{
		{{X: 1, Y: 2, Z: 3}, {X: 4, Y: 5, Z: 6}, {X: 7, Y: 8, Z: 10}},
	}

	var buf bytes.Buffer
	if err := Write(&buf, mesh); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data := buf.Bytes()[84:]
	read := func(off int) float64 {
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(data[off:])))
	}

	// Normal occupies the first 12 bytes; vertices follow.
	wantVerts := []float64{1, 2, 3, 4, 5, 6, 7, 8, 10}
	for i, want := range wantVerts {
		if got := read(12 + i*4); got != want {
			t.Errorf("vertex float %d = %v, want %v", i, got, want)
		}
	}

	// The normal is unit length.
	nx, ny, nz := read(0), read(4), read(8)
	if l := math.Sqrt(nx*nx + ny*ny + nz*nz); math.Abs(l-1) > 1e-6 {
		t.Errorf("normal length = %v, want 1", l)
	}
}

func TestWriteNormalOrientation(t *testing.T) {
	// A counter-clockwise triangle in the XY plane faces +Z.
	mesh := dialmesh.TriangleMesh{
		{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}},
	}

	var buf bytes.Buffer
	if err := Write(&buf, mesh); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data := buf.Bytes()[84:]
	nz := math.Float32frombits(binary.LittleEndian.Uint32(data[8:]))
	if nz != 1 {
		t.Errorf("normal z = %v, want 1", nz)
	}
}

func TestWriteDegenerateTriangle(t *testing.T) {
	// The empty sentinel is a zero-area triangle; it writes with a zero
	// normal instead of failing.
	var buf bytes.Buffer
	if err := Write(&buf, dialmesh.EmptyMesh()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.Len() != 84+50 {
		t.Errorf("wrote %d bytes, want %d", buf.Len(), 84+50)
	}
}

func TestWriteEmptyMesh(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.Len() != 84 {
		t.Errorf("wrote %d bytes, want 84 for zero triangles", buf.Len())
	}
}

func TestWriteReport(t *testing.T) {
	cfg := dialmesh.Config{
		OuterRadius: 49,
		InnerRadius: 36,
		Depth:       1.5,
		Distortion:  dialmesh.Distortion{Roughness: 2},
		Seed:        42,
	}
	mesh := cubeMesh(t)
	result := &dialmesh.Result{
		Mesh: mesh,
		Labels: []dialmesh.LabelResult{
			{Text: "12", Scale: 0.42, Mesh: mesh},
			{Text: "3", Mesh: dialmesh.EmptyMesh()},
		},
	}

	var buf bytes.Buffer
	if err := WriteReport(&buf, cfg, result); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"49.0 mm", "Roughness", "12", "skipped"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}
