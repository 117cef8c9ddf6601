package holocard

import "image"

// blendFunc combines one base and one source channel value, both in
// [0, 1], and returns the blended channel value in [0, 1].
type blendFunc func(base, src float64) float64

// blendOverlay darkens darks and lightens lights: the standard overlay
// equation, 2bs below mid-gray and the inverted screen above it.
func blendOverlay(b, s float64) float64 {
	if b < 0.5 {
		return 2 * b * s
	}
	return 1 - 2*(1-b)*(1-s)
}

// blendScreen inverts, multiplies, and inverts back. Output is always at
// least as bright as both inputs.
func blendScreen(b, s float64) float64 {
	return 1 - (1-b)*(1-s)
}

// blendColorDodge brightens the base by the source: divide by (1-s)
// with the quotient clamped to 1. This is the one approximation the
// package standardizes on for the sparkle layer.
func blendColorDodge(b, s float64) float64 {
	if s >= 1 {
		return 1
	}
	out := b / (1 - s)
	if out > 1 {
		return 1
	}
	return out
}

// compositeBlend merges src onto dst in place using the given blend
// function, weighting each pixel by the source alpha. dst is treated as
// opaque (the card canvas always is); src is premultiplied RGBA as
// produced by the drawing context.
func compositeBlend(dst, src *image.RGBA, blend blendFunc) {
	b := dst.Bounds().Intersect(src.Bounds())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		di := dst.PixOffset(b.Min.X, y)
		si := src.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			sa := float64(src.Pix[si+3]) / 255
			if sa > 0 {
				for c := 0; c < 3; c++ {
					base := float64(dst.Pix[di+c]) / 255
					// Un-premultiply the source channel.
					s := float64(src.Pix[si+c]) / 255 / sa
					if s > 1 {
						s = 1
					}
					out := base*(1-sa) + blend(base, s)*sa
					dst.Pix[di+c] = uint8(clamp01(out)*255 + 0.5)
				}
			}
			di += 4
			si += 4
		}
	}
}

// clamp01 clamps v to [0, 1]. Every gradient stop offset handed to the
// raster API goes through this; out-of-range offsets are invalid there.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
