package holocard

import "time"

// CardData is the immutable input for one render: the AI artwork plus
// whatever the attendee told us about themselves. How the artwork is
// produced is someone else's problem; by the time it reaches this
// package it is already-materialized bytes.
type CardData struct {
	// Artwork holds the encoded artwork image: raw PNG/JPEG/GIF bytes or
	// a base64 data URI.
	Artwork []byte
	// CreatorName is the attendee's display name, possibly empty.
	CreatorName string
	// Prompt is the free-text generation prompt, used only as a
	// fallback source for the creator name.
	Prompt string
}

// RenderSettings configures one export. There are no implicit global
// defaults; construct with [DefaultSettings] and override as needed.
type RenderSettings struct {
	// FrameCount is the number of frames in the animation. Must be >= 1.
	FrameCount int
	// FrameRate is the playback rate in frames per second. Must be > 0.
	FrameRate float64
	// CardWidth and CardHeight are the card body size in pixels.
	CardWidth  int
	CardHeight int
	// OutputWidth and OutputHeight are the export canvas size. When
	// larger than the card, the card is letterboxed in the center.
	OutputWidth  int
	OutputHeight int
	// Quality controls the GIF palette size, 1 (smallest) to 100
	// (full 256-color palettes).
	Quality int
	// EncodeTimeout bounds the background GIF encode. Must be > 0.
	EncodeTimeout time.Duration
}

// DefaultSettings returns the settings used by the event kiosk build:
// a 15-frame, 10 fps loop of a 500x700 card on a 600x800 canvas.
func DefaultSettings() RenderSettings {
	return RenderSettings{
		FrameCount:    15,
		FrameRate:     10,
		CardWidth:     500,
		CardHeight:    700,
		OutputWidth:   600,
		OutputHeight:  800,
		Quality:       80,
		EncodeTimeout: 60 * time.Second,
	}
}

// Validate rejects out-of-range settings before any rendering work
// starts. All failures are *ConfigError.
func (s RenderSettings) Validate() error {
	if s.FrameCount < 1 {
		return &ConfigError{Field: "FrameCount", Reason: "must be at least 1"}
	}
	if s.FrameRate <= 0 {
		return &ConfigError{Field: "FrameRate", Reason: "must be positive"}
	}
	if s.CardWidth < 1 || s.CardHeight < 1 {
		return &ConfigError{Field: "CardWidth/CardHeight", Reason: "must be positive"}
	}
	if s.OutputWidth < s.CardWidth || s.OutputHeight < s.CardHeight {
		return &ConfigError{Field: "OutputWidth/OutputHeight", Reason: "must not be smaller than the card"}
	}
	if s.Quality < 1 || s.Quality > 100 {
		return &ConfigError{Field: "Quality", Reason: "must be in [1, 100]"}
	}
	if s.EncodeTimeout <= 0 {
		return &ConfigError{Field: "EncodeTimeout", Reason: "must be positive"}
	}
	return nil
}

// FrameDelay returns the per-frame playback delay, rounded to whole
// milliseconds the way the encoder consumes it.
func (s RenderSettings) FrameDelay() time.Duration {
	ms := int(1000/s.FrameRate + 0.5)
	return time.Duration(ms) * time.Millisecond
}
