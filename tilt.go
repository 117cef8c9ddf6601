package holocard

import (
	"math"

	"github.com/tanema/gween/ease"
)

// AffineParams are the 2D parameters the compositor applies around the
// card's center before drawing the card body. They approximate a small
// 3D tilt: rotation about the screen-space Y axis narrows the card
// (ScaleX), rotation about X flattens it (ScaleY), and the skew terms
// fake the perspective shift of the card's edges.
type AffineParams struct {
	ScaleX float64
	ScaleY float64
	SkewX  float64 // radians
	SkewY  float64 // radians
	Rotate float64 // radians, in-plane roll
}

// TiltStrategy maps a float-cycle progress value to affine parameters.
// The keyframe implementation below is a cosmetic approximation; a real
// projective implementation can be substituted without touching the
// compositor.
type TiltStrategy interface {
	Params(progress float64) AffineParams
}

// tiltSkewFactor scales the sin-derived skew terms so the fake
// perspective stays subtle at the default amplitudes.
const tiltSkewFactor = 0.25

// KeyframeTilt interpolates target rotation angles through four linear
// segments spanning quarters of the float cycle. Each axis has five
// keyframe angles (degrees) at progress 0, 0.25, 0.5, 0.75, and 1; the
// first and last must be equal so the loop has no seam.
type KeyframeTilt struct {
	RotX [5]float64
	RotY [5]float64
	RotZ [5]float64
}

// DefaultTilt returns the keyframe set used by the default style: a
// gentle figure-eight float with a slight roll.
func DefaultTilt() KeyframeTilt {
	return KeyframeTilt{
		RotX: [5]float64{0, 8, 0, -8, 0},
		RotY: [5]float64{0, 12, 0, -12, 0},
		RotZ: [5]float64{0, 2, 0, -2, 0},
	}
}

// Params implements TiltStrategy. Progress outside [0,1) wraps via
// modulo.
func (k KeyframeTilt) Params(progress float64) AffineParams {
	rx, ry, rz := k.Angles(progress)
	rx *= math.Pi / 180
	ry *= math.Pi / 180
	rz *= math.Pi / 180
	return AffineParams{
		ScaleX: math.Cos(ry),
		ScaleY: math.Cos(rx),
		SkewX:  math.Sin(rx) * tiltSkewFactor,
		SkewY:  math.Sin(ry) * tiltSkewFactor,
		Rotate: rz,
	}
}

// Angles returns the interpolated rotation angles in degrees for the
// given cycle progress.
func (k KeyframeTilt) Angles(progress float64) (rotX, rotY, rotZ float64) {
	p := math.Mod(progress, 1)
	if p < 0 {
		p += 1
	}

	// Segment index 0..3 and position within the segment.
	seg := int(p * 4)
	if seg > 3 {
		seg = 3
	}
	local := p*4 - float64(seg)

	rotX = lerpSegment(k.RotX[seg], k.RotX[seg+1], local)
	rotY = lerpSegment(k.RotY[seg], k.RotY[seg+1], local)
	rotZ = lerpSegment(k.RotZ[seg], k.RotZ[seg+1], local)
	return rotX, rotY, rotZ
}

// lerpSegment linearly interpolates one keyframe segment.
func lerpSegment(from, to, t float64) float64 {
	return float64(ease.Linear(float32(t), float32(from), float32(to-from), 1))
}
