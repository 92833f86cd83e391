package scale

import (
	"fmt"
	"image"
	"sort"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// Resampler returns a new image of exactly width x height. Callers
// guarantee both are positive.
type Resampler func(img image.Image, width, height int) image.Image

// Default is the bicubic-equivalent Catmull-Rom filter.
var Default Resampler = interpolator(draw.CatmullRom)

var resamplers = map[string]Resampler{
	"catmullrom": Default,
	"bilinear":   interpolator(draw.BiLinear),
	"lanczos": func(img image.Image, width, height int) image.Image {
		return imaging.Resize(img, width, height, imaging.Lanczos)
	},
	"mitchell": func(img image.Image, width, height int) image.Image {
		return resize.Resize(uint(width), uint(height), img, resize.MitchellNetravali)
	},
}

// interpolator draws onto a transparent canvas so any area the source
// does not cover stays transparent.
func interpolator(s draw.Scaler) Resampler {
	return func(img image.Image, width, height int) image.Image {
		destBounds := image.Rect(0, 0, width, height)
		dest := image.NewRGBA(destBounds)
		s.Scale(dest, destBounds, img, img.Bounds(), draw.Over, nil)
		return dest
	}
}

func Lookup(name string) (Resampler, error) {
	if name == "" {
		return Default, nil
	}
	r, ok := resamplers[name]
	if !ok {
		return nil, fmt.Errorf("unknown resample filter %q", name)
	}
	return r, nil
}

// Filters lists the names accepted by Lookup, sorted.
func Filters() []string {
	names := make([]string, 0, len(resamplers))
	for name := range resamplers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
