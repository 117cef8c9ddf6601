package holocard

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"math"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ericpauley/go-quantize/quantize"
)

// gifWorkers caps the quantization pool. Color quantization is the
// CPU-heavy step, so it runs off the rendering goroutine on a small
// fixed pool regardless of frame count.
const gifWorkers = 4

// assembleGIF encodes ordered frame snapshots into one looping animated
// GIF. Frames may finish quantizing out of order; a completion counter
// gates assembly until every frame is attached, and attachment is by
// index, so the output order always matches the render order.
//
// The encode is bounded by settings.EncodeTimeout; ErrEncodeTimeout is
// returned instead of hanging on a wedged worker.
func assembleGIF(ctx context.Context, frames []*image.RGBA, settings RenderSettings) ([]byte, error) {
	delay := centiseconds(settings.FrameDelay())
	colors := paletteSize(settings.Quality)

	out := &gif.GIF{
		Image:     make([]*image.Paletted, len(frames)),
		Delay:     make([]int, len(frames)),
		LoopCount: 0, // loop forever
	}

	workers := gifWorkers
	if workers > len(frames) {
		workers = len(frames)
	}
	if n := runtime.NumCPU(); workers > n {
		workers = n
	}

	jobs := make(chan int)
	var attached atomic.Int64
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				out.Image[i] = quantizeFrame(frames[i], colors)
				out.Delay[i] = delay
				attached.Add(1)
			}
		}()
	}

	encoded := make(chan []byte, 1)
	failed := make(chan error, 1)
	go func() {
		// Jobs go out in index order so a shallow pool starts on early
		// frames first even though completion order is unspecified.
		for i := range frames {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
		if int(attached.Load()) != len(frames) {
			// Unreachable unless a worker died; guards the gate.
			failed <- &EncodeError{Err: errIncompleteFrames}
			return
		}
		var buf bytes.Buffer
		if err := gif.EncodeAll(&buf, out); err != nil {
			failed <- &EncodeError{Err: err}
			return
		}
		encoded <- buf.Bytes()
	}()

	timer := time.NewTimer(settings.EncodeTimeout)
	defer timer.Stop()
	select {
	case blob := <-encoded:
		return blob, nil
	case err := <-failed:
		return nil, err
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
		return nil, ErrEncodeTimeout
	}
}

// quantizeFrame reduces one RGBA frame to a paletted image with a
// median-cut palette and Floyd-Steinberg dithering. Deterministic for a
// given frame and palette size.
func quantizeFrame(frame *image.RGBA, colors int) *image.Paletted {
	q := quantize.MedianCutQuantizer{}
	pal := q.Quantize(make(color.Palette, 0, colors), frame)
	pm := image.NewPaletted(frame.Bounds(), pal)
	draw.FloydSteinberg.Draw(pm, frame.Bounds(), frame, image.Point{})
	return pm
}

// paletteSize maps the 1..100 quality setting onto a GIF palette size.
func paletteSize(quality int) int {
	n := quality * 256 / 100
	if n < 16 {
		n = 16
	}
	if n > 256 {
		n = 256
	}
	return n
}

// centiseconds converts a frame delay to the GIF timebase, never below
// the format's practical minimum of one centisecond.
func centiseconds(d time.Duration) int {
	cs := int(math.Round(float64(d.Milliseconds()) / 10))
	if cs < 1 {
		cs = 1
	}
	return cs
}
