// Package scale computes target sizes and resamples images to them.
package scale

import (
	"fmt"
	"image"
	"math"
)

type InvalidDimensionError struct {
	Width, Height int
	Scale         float64
}

func (e *InvalidDimensionError) Error() string {
	if e.Scale != 0 {
		return fmt.Sprintf("invalid target dimensions %dx%d for scale %v", e.Width, e.Height, e.Scale)
	}
	return fmt.Sprintf("invalid target dimensions %dx%d", e.Width, e.Height)
}

// TargetSize returns (floor(w*s), floor(h*s)). Both results must be at
// least one pixel.
func TargetSize(w, h int, s float64) (int, int, error) {
	tw := math.Floor(float64(w) * s)
	th := math.Floor(float64(h) * s)
	// also rejects NaN
	if !(tw >= 1) || !(th >= 1) {
		return 0, 0, &InvalidDimensionError{Width: clampInt(tw), Height: clampInt(th), Scale: s}
	}
	if tw > math.MaxInt32 || th > math.MaxInt32 {
		return 0, 0, &InvalidDimensionError{Width: clampInt(tw), Height: clampInt(th), Scale: s}
	}
	return int(tw), int(th), nil
}

func clampInt(v float64) int {
	switch {
	case math.IsNaN(v):
		return 0
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	}
	return int(v)
}

// Scale resamples img to exactly width x height with the default filter.
func Scale(img image.Image, width, height int) (image.Image, error) {
	return ScaleWith(img, width, height, Default)
}

func ScaleWith(img image.Image, width, height int, r Resampler) (image.Image, error) {
	if width < 1 || height < 1 {
		return nil, &InvalidDimensionError{Width: width, Height: height}
	}
	if r == nil {
		r = Default
	}
	return r(img, width, height), nil
}
