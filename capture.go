package holocard

import (
	"context"
	"fmt"
	"image"
)

// captureFrames drives the compositor once per frame index and captures
// each result as an independent raster snapshot. Frames come back in
// strict index order.
//
// Cancellation is checked between frames; a full export can take tens
// of seconds and callers need a way out. Any draw failure aborts the
// whole export with the failing frame index: rendering is deterministic
// given fixed inputs, so a failure is a defect, not something a retry
// would fix.
func captureFrames(ctx context.Context, comp *compositor, clock Clock) ([]*image.RGBA, error) {
	frames := make([]*image.RGBA, 0, clock.FrameCount)
	for i := 0; i < clock.FrameCount; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := renderFrame(comp, clock.TimeAt(i)); err != nil {
			return nil, &RenderError{Frame: i, Err: err}
		}
		frames = append(frames, snapshot(comp.dc.Image()))
	}
	return frames, nil
}

// renderFrame runs one compositor pass, converting panics out of the
// drawing stack into errors.
func renderFrame(comp *compositor, t float64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("draw panicked: %v", r)
		}
	}()
	comp.drawFrame(t)
	return nil
}

// snapshot deep-copies the context's backing raster so later frames
// cannot mutate captured ones.
func snapshot(img image.Image) *image.RGBA {
	src, ok := img.(*image.RGBA)
	if !ok {
		b := img.Bounds()
		cp := image.NewRGBA(b)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				cp.Set(x, y, img.At(x, y))
			}
		}
		return cp
	}
	cp := image.NewRGBA(src.Bounds())
	copy(cp.Pix, src.Pix)
	return cp
}
