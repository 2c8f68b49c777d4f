package marquee

import "math"

// ComputeDuration returns the length in milliseconds of one loop that moves
// contentWidth pixels at speed pixels per second. A non-positive speed gives
// a result that ValidDuration rejects.
func ComputeDuration(contentWidth, speed float64) float64 {
	return contentWidth / speed * 1000
}

// ValidDuration reports whether d can drive a timeline.
func ValidDuration(d float64) bool {
	return d > 0 && !math.IsInf(d, 0) && !math.IsNaN(d)
}

// ComputeCloneCount returns how many copies of the content must follow the
// original so that the tiled strip spans at least twice the viewport:
//
//	(1 + count) * contentWidth >= 2 * viewportWidth
//
// The result is never below 1. Degenerate widths fall back to 1.
func ComputeCloneCount(contentWidth, viewportWidth float64) int {
	if contentWidth <= 0 || math.IsInf(contentWidth, 0) || math.IsNaN(contentWidth) {
		return 1
	}
	if viewportWidth <= 0 || math.IsNaN(viewportWidth) || math.IsInf(viewportWidth, 0) {
		return 1
	}
	count := int(math.Ceil(2*viewportWidth/contentWidth)) - 1
	return max(1, count)
}
