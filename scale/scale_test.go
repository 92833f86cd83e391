package scale

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradient(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{uint8(x * 255 / w), uint8(y * 255 / h), 128, 255})
		}
	}
	return img
}

func TestTargetSize(t *testing.T) {
	cases := []struct {
		w, h   int
		s      float64
		tw, th int
	}{
		{100, 50, 2.0, 200, 100},
		{40, 40, 2.0, 80, 80},
		{101, 33, 0.5, 50, 16},
		{3, 7, 1.0 / 3, 1, 2},
		{640, 480, 1.25, 800, 600},
	}
	for _, c := range cases {
		tw, th, err := TargetSize(c.w, c.h, c.s)
		require.NoError(t, err)
		assert.Equal(t, c.tw, tw, "%dx%d*%v", c.w, c.h, c.s)
		assert.Equal(t, c.th, th, "%dx%d*%v", c.w, c.h, c.s)
	}
}

func TestTargetSizeInvalid(t *testing.T) {
	for _, s := range []float64{0, -1, 0.01, math.NaN()} {
		_, _, err := TargetSize(40, 20, s)
		var ide *InvalidDimensionError
		assert.True(t, errors.As(err, &ide), "scale %v: %v", s, err)
	}
}

func TestScaleExactDimensions(t *testing.T) {
	src := gradient(37, 23)
	for _, name := range Filters() {
		r, err := Lookup(name)
		require.NoError(t, err)
		for _, size := range [][2]int{{1, 1}, {74, 46}, {10, 90}, {37, 23}} {
			img, err := ScaleWith(src, size[0], size[1], r)
			require.NoError(t, err)
			b := img.Bounds()
			assert.Equal(t, size[0], b.Dx(), name)
			assert.Equal(t, size[1], b.Dy(), name)
		}
	}
}

func TestScaleRejectsZero(t *testing.T) {
	src := gradient(4, 4)
	for _, size := range [][2]int{{0, 4}, {4, 0}, {-1, 3}} {
		img, err := Scale(src, size[0], size[1])
		assert.Nil(t, img)
		var ide *InvalidDimensionError
		assert.True(t, errors.As(err, &ide))
	}
}

func TestScaleKeepsTransparency(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	img, err := Scale(src, 16, 16)
	require.NoError(t, err)
	_, _, _, a := img.At(5, 5).RGBA()
	assert.Zero(t, a)
}

func TestScaleNonZeroOrigin(t *testing.T) {
	src := gradient(20, 20).(*image.NRGBA).SubImage(image.Rect(5, 5, 15, 10))
	img, err := Scale(src, 20, 10)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 20, 10), img.Bounds())
}

func TestLookup(t *testing.T) {
	r, err := Lookup("")
	require.NoError(t, err)
	assert.NotNil(t, r)

	_, err = Lookup("nearest-ish")
	assert.Error(t, err)

	assert.Equal(t, []string{"bilinear", "catmullrom", "lanczos", "mitchell"}, Filters())
}
