package holocard

import (
	"bytes"
	"context"
	"image/png"
	"sync/atomic"

	"github.com/fogleman/gg"
)

// Exporter renders animated and still card exports for one asset set.
//
// An Exporter serializes its exports: the raster pipeline mutates
// shared per-export state frame by frame, so a second export requested
// while one is in flight is rejected with ErrExportActive rather than
// interleaved. Allocate one Exporter per concurrent export if you need
// parallelism.
type Exporter struct {
	settings RenderSettings
	style    Style
	assets   *AssetSet

	inFlight atomic.Bool
}

// NewExporter validates the settings and style up front, before any
// rendering work, and returns an exporter bound to the given assets.
func NewExporter(settings RenderSettings, style Style, assets *AssetSet) (*Exporter, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if err := style.validate(); err != nil {
		return nil, err
	}
	if assets == nil {
		assets = &AssetSet{}
	}
	return &Exporter{settings: settings, style: style, assets: assets}, nil
}

// ExportGIF renders the full animation for one card and encodes it as a
// looping GIF. The context cancels between frames and bounds the encode
// together with the settings' encode timeout.
//
// Each export draws on a fresh context, so a failed export leaves
// nothing behind for the next attempt to trip over.
func (e *Exporter) ExportGIF(ctx context.Context, card CardData) ([]byte, error) {
	release, err := e.acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	comp, err := e.newFrameCompositor(card)
	if err != nil {
		return nil, err
	}

	clock := Clock{FrameCount: e.settings.FrameCount, Span: e.style.Span()}
	frames, err := captureFrames(ctx, comp, clock)
	if err != nil {
		return nil, err
	}
	return assembleGIF(ctx, frames, e.settings)
}

// ExportStill renders the single lossless still for the non-animated
// download path: the same compositor sampled once at the style's fixed
// still time, encoded as PNG at full quality.
func (e *Exporter) ExportStill(card CardData) ([]byte, error) {
	release, err := e.acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	comp, err := e.newFrameCompositor(card)
	if err != nil {
		return nil, err
	}
	if err := renderFrame(comp, e.style.StillTime); err != nil {
		return nil, &RenderError{Frame: 0, Err: err}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, comp.dc.Image()); err != nil {
		return nil, &EncodeError{Err: err}
	}
	return buf.Bytes(), nil
}

// acquire claims the exporter for one export.
func (e *Exporter) acquire() (release func(), err error) {
	if !e.inFlight.CompareAndSwap(false, true) {
		return nil, ErrExportActive
	}
	return func() { e.inFlight.Store(false) }, nil
}

func (e *Exporter) newFrameCompositor(card CardData) (*compositor, error) {
	dc := gg.NewContext(e.settings.OutputWidth, e.settings.OutputHeight)
	return newCompositor(dc, e.settings, e.style, e.assets, card)
}
