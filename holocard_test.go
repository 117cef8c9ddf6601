package holocard

import (
	"image"
	"image/color"
	"math"
	"testing"
)

const epsilon = 1e-9

func near(got, want float64) bool {
	return math.Abs(got-want) <= epsilon
}

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if !near(got, want) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// testArtwork builds a small synthetic artwork image with enough color
// variation to exercise scaling and quantization.
func testArtwork(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: uint8((x + y) * 255 / (w + h)),
				A: 255,
			})
		}
	}
	return img
}
