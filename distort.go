package dialmesh

import (
	"hash/fnv"
	"math"
	"math/rand"
)

// Distortion holds the magnitudes of the four distortion passes applied
// to contour points before fitting. A zero Distortion is a no-op.
//
// Distortion is deterministic: Apply builds a local random generator
// from the seed it is given, so the same (contours, seed, params)
// triple always produces bit-identical output. This lets the fitting
// stage and the final extrusion stage share one distorted contour set
// without threading generator state between them.
type Distortion struct {
	// EdgeIrregularity adds random per-point jitter (range 0-5).
	EdgeIrregularity float64

	// Roughness displaces points along the local contour normal using
	// a cheap two-frequency sine approximation of coherent noise
	// (range 0-5).
	Roughness float64

	// PerspectiveStretch scales points radially outward from the shape
	// centroid, proportionally to their distance from it (range 0-3).
	PerspectiveStretch float64

	// Erosion scales points radially inward with added noise, more
	// strongly near the rim, simulating wear (range 0-5).
	Erosion float64
}

// IsZero reports whether every magnitude is zero or negative, making
// Apply a pass-through.
func (d Distortion) IsZero() bool {
	return d.EdgeIrregularity <= 0 && d.Roughness <= 0 &&
		d.PerspectiveStretch <= 0 && d.Erosion <= 0
}

// LabelSeed derives the per-label distortion seed from the label text
// and the caller's base seed. Recomputing the hash per call keeps the
// pipeline free of shared mutable generator state.
func LabelSeed(text string, base int64) int64 {
	h := fnv.New64a()
	h.Write([]byte(text))
	return int64(h.Sum64()) ^ base
}

// Apply runs the distortion passes over the contours in fixed order:
// edge irregularity, roughness, perspective stretch, erosion. The input
// is never mutated; if every magnitude is zero the input slice is
// returned unchanged.
func (d Distortion) Apply(contours []Contour, seed int64) []Contour {
	if d.IsZero() || len(contours) == 0 {
		return contours
	}

	rng := rand.New(rand.NewSource(seed))

	result := contours
	if d.EdgeIrregularity > 0 {
		result = applyEdgeIrregularity(result, d.EdgeIrregularity, rng)
	}
	if d.Roughness > 0 {
		result = applyRoughness(result, d.Roughness)
	}
	if d.PerspectiveStretch > 0 {
		result = applyPerspectiveStretch(result, d.PerspectiveStretch)
	}
	if d.Erosion > 0 {
		result = applyErosion(result, d.Erosion, rng)
	}
	return result
}

// applyEdgeIrregularity jitters every point by a normal deviate scaled
// by the intensity.
func applyEdgeIrregularity(contours []Contour, intensity float64, rng *rand.Rand) []Contour {
	result := make([]Contour, len(contours))
	for i, c := range contours {
		out := make(Contour, len(c))
		for j, p := range c {
			dx := rng.NormFloat64() * intensity * 0.5
			dy := rng.NormFloat64() * intensity * 0.5
			out[j] = Point{X: p.X + dx, Y: p.Y + dy}
		}
		result[i] = out
	}
	return result
}

// applyRoughness displaces each point along its local contour normal by
// a coherent-noise amount. The noise is a function of position only, so
// this pass needs no random state.
func applyRoughness(contours []Contour, intensity float64) []Contour {
	result := make([]Contour, len(contours))
	for i, c := range contours {
		out := make(Contour, len(c))
		for j, p := range c {
			next := c[(j+1)%len(c)]
			tangent := next.Sub(p).Normalize()
			if tangent == (Point{}) {
				out[j] = p
				continue
			}
			normal := Point{X: -tangent.Y, Y: tangent.X}

			displacement := coherentNoise(p.X, p.Y, 2.0) * intensity * 0.3
			out[j] = p.Add(normal.Mul(displacement))
		}
		result[i] = out
	}
	return result
}

// applyPerspectiveStretch scales points radially outward from the
// centroid, growing with distance from it.
func applyPerspectiveStretch(contours []Contour, intensity float64) []Contour {
	center, maxDist, ok := centroidAndMaxDist(contours)
	if !ok || maxDist == 0 {
		return contours
	}

	result := make([]Contour, len(contours))
	for i, c := range contours {
		out := make(Contour, len(c))
		for j, p := range c {
			delta := p.Sub(center)
			stretch := 1.0 + intensity*0.1*delta.Length()/maxDist
			out[j] = center.Add(delta.Mul(stretch))
		}
		result[i] = out
	}
	return result
}

// applyErosion scales points toward the centroid, more strongly near
// the rim, with added noise.
func applyErosion(contours []Contour, intensity float64, rng *rand.Rand) []Contour {
	center, maxDist, ok := centroidAndMaxDist(contours)
	if !ok || maxDist == 0 {
		return contours
	}

	result := make([]Contour, len(contours))
	for i, c := range contours {
		out := make(Contour, len(c))
		for j, p := range c {
			delta := p.Sub(center)
			erosion := delta.Length() / maxDist * intensity * 0.05
			erosion += rng.NormFloat64() * intensity * 0.02

			out[j] = center.Add(delta.Mul(1.0 - erosion))
		}
		result[i] = out
	}
	return result
}

// centroidAndMaxDist computes the mean of all contour points and the
// largest distance of any point from it.
func centroidAndMaxDist(contours []Contour) (center Point, maxDist float64, ok bool) {
	count := 0
	var sum Point
	for _, c := range contours {
		for _, p := range c {
			sum = sum.Add(p)
			count++
		}
	}
	if count == 0 {
		return Point{}, 0, false
	}
	center = sum.Mul(1.0 / float64(count))

	for _, c := range contours {
		for _, p := range c {
			if d := p.Distance(center); d > maxDist {
				maxDist = d
			}
		}
	}
	return center, maxDist, true
}

// coherentNoise is a cheap two-frequency sine approximation of coherent
// 2D noise, clamped to [-1, 1]. Not Perlin noise, but smooth enough for
// edge roughening and fully deterministic in the coordinates.
func coherentNoise(x, y, frequency float64) float64 {
	x *= frequency
	y *= frequency

	noise := math.Sin(x)*math.Cos(y) + math.Sin(y*1.5+3.7)*math.Cos(x*1.5+2.1)
	noise += 0.5 * (math.Sin(x*2.5+1.23) * math.Cos(y*2.5+4.56))

	return math.Max(-1.0, math.Min(1.0, noise/2.0))
}
