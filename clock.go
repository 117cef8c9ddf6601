package holocard

import "math"

// Clock maps frame indices onto animation time for one export.
//
// The frame sequence spans exactly one Span, which callers set to the
// longest effect period so the slowest effect completes one full cycle
// over the loop. Shorter periods generally do not divide Span evenly, so
// their effects show a discontinuity at the loop boundary; this is a
// known, signed-off artifact of the sampling scheme, not something the
// clock tries to hide.
type Clock struct {
	// FrameCount is the total number of frames in the sequence.
	FrameCount int
	// Span is the animation time covered by the whole sequence, in seconds.
	Span float64
}

// TimeAt returns the animation time for the given frame index.
// Time increases monotonically with the index and stays in [0, Span).
// A single-frame sequence samples time 0.
func (c Clock) TimeAt(frame int) float64 {
	if c.FrameCount <= 1 {
		return 0
	}
	return c.Span * float64(frame) / float64(c.FrameCount)
}

// Progress reduces an animation time modulo the given period and returns
// the cycle progress in [0, 1). A non-positive period yields 0.
func Progress(t, period float64) float64 {
	if period <= 0 {
		return 0
	}
	p := math.Mod(t, period) / period
	if p < 0 {
		p += 1
	}
	return p
}
