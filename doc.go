// Package dialmesh turns font glyph outlines into solid, 3D-printable
// meshes for watch dial numerals.
//
// Each numeral must fit inside a trapezoidal polar sector (an annular
// wedge bounded by two radii and two angles). The package extracts
// closed polygonal contours from a glyph's vector path, optionally
// applies deterministic distortion, computes the maximal uniform scale
// that provably keeps every contour point inside its sector, groups
// contours into outer boundaries with holes, triangulates each group,
// and extrudes the result into a closed triangle mesh.
//
// The typical entry point is [Generator]:
//
//	font, _ := text.ParseFont(ttfData)
//	gen := dialmesh.NewGenerator(text.NewProvider(font))
//	result, err := gen.Generate(dialmesh.Config{
//	    OuterRadius: 49, InnerRadius: 36,
//	    Style: dialmesh.StyleDecimal, Set: dialmesh.SetAll,
//	    Depth: 1.5,
//	})
//
// The combined mesh in result can be written out with the stl
// subpackage. All stages are pure functions of their inputs; distortion
// is seeded explicitly so identical configurations produce bit-identical
// meshes.
package dialmesh
