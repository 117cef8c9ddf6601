package holocard

import (
	"fmt"

	"github.com/BurntSushi/toml"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Style is the single versioned home for every tuned visual parameter:
// cycle periods, palette, panel geometry, glow and sparkle settings, and
// the tilt keyframes. Earlier revisions of this renderer scattered these
// across hand-edited constants; keeping them in one declarative object
// (loadable from TOML) means fidelity tuning is a data change.
type Style struct {
	Version int `toml:"version"`

	// EventTitle is drawn centered under the artwork. HeaderTitle and
	// HeaderSubtitle fill the branded header panel.
	EventTitle     string `toml:"event_title"`
	HeaderTitle    string `toml:"header_title"`
	HeaderSubtitle string `toml:"header_subtitle"`

	// Cycle periods, in seconds of animation time. FloatPeriod is the
	// longest and defines the span of the frame sequence.
	FloatPeriod   float64 `toml:"float_period"`
	ShinePeriod   float64 `toml:"shine_period"`
	HoloPeriod    float64 `toml:"holo_period"`
	SparklePeriod float64 `toml:"sparkle_period"`
	GlowPeriod    float64 `toml:"glow_period"`

	// StillTime is the animation time sampled for the non-animated
	// single-still export path.
	StillTime float64 `toml:"still_time"`

	// Panel geometry, in pixels at the default 500x700 card. Scaled
	// proportionally for other card sizes.
	CornerRadius float64 `toml:"corner_radius"`
	HeaderHeight float64 `toml:"header_height"`
	FooterHeight float64 `toml:"footer_height"`
	Margin       float64 `toml:"margin"`

	// Glow layers drawn behind the card.
	GlowLayers int     `toml:"glow_layers"`
	GlowRadius float64 `toml:"glow_radius"`

	// Sparkle field.
	SparkleCount int   `toml:"sparkle_count"`
	SparkleSeed  int64 `toml:"sparkle_seed"`

	// Palette, as #RRGGBB hex.
	BackgroundTop    string `toml:"background_top"`
	BackgroundBottom string `toml:"background_bottom"`
	PanelColor       string `toml:"panel_color"`
	TextColor        string `toml:"text_color"`
	LetterboxColor   string `toml:"letterbox_color"`
	GlowColor        string `toml:"glow_color"`

	// Tilt keyframes, degrees at progress 0, .25, .5, .75, 1.
	TiltRotX [5]float64 `toml:"tilt_rot_x"`
	TiltRotY [5]float64 `toml:"tilt_rot_y"`
	TiltRotZ [5]float64 `toml:"tilt_rot_z"`
}

// DefaultStyle returns style version 1, the launch look: deep violet
// card, cyan-magenta holographics, 8 second float.
func DefaultStyle() Style {
	tilt := DefaultTilt()
	return Style{
		Version:        1,
		EventTitle:     "HOLO FORGE 2026",
		HeaderTitle:    "TRADING CARD",
		HeaderSubtitle: "LIMITED HOLOGRAPHIC EDITION",

		FloatPeriod:   8,
		ShinePeriod:   3,
		HoloPeriod:    5,
		SparklePeriod: 4,
		GlowPeriod:    6,

		StillTime: 0,

		CornerRadius: 24,
		HeaderHeight: 90,
		FooterHeight: 110,
		Margin:       20,

		GlowLayers: 3,
		GlowRadius: 40,

		SparkleCount: 24,
		SparkleSeed:  0x5eed,

		BackgroundTop:    "#1a1038",
		BackgroundBottom: "#2d1b5e",
		PanelColor:       "#120b28",
		TextColor:        "#f5f0ff",
		LetterboxColor:   "#0a0618",
		GlowColor:        "#7b5cff",

		TiltRotX: tilt.RotX,
		TiltRotY: tilt.RotY,
		TiltRotZ: tilt.RotZ,
	}
}

// LoadStyle reads a style from a TOML file, starting from the defaults
// so partial files only override what they name.
func LoadStyle(path string) (Style, error) {
	s := DefaultStyle()
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return Style{}, fmt.Errorf("error decoding style file: %v", err)
	}
	if err := s.validate(); err != nil {
		return Style{}, err
	}
	return s, nil
}

func (s Style) validate() error {
	for name, p := range map[string]float64{
		"float_period":   s.FloatPeriod,
		"shine_period":   s.ShinePeriod,
		"holo_period":    s.HoloPeriod,
		"sparkle_period": s.SparklePeriod,
		"glow_period":    s.GlowPeriod,
	} {
		if p <= 0 {
			return fmt.Errorf("style: %s must be positive", name)
		}
	}
	for _, hex := range []string{
		s.BackgroundTop, s.BackgroundBottom, s.PanelColor,
		s.TextColor, s.LetterboxColor, s.GlowColor,
	} {
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("style: bad color %q: %v", hex, err)
		}
	}
	return nil
}

// Span returns the longest cycle period, which the clock maps onto the
// whole frame sequence.
func (s Style) Span() float64 {
	span := s.FloatPeriod
	for _, p := range []float64{s.ShinePeriod, s.HoloPeriod, s.SparklePeriod, s.GlowPeriod} {
		if p > span {
			span = p
		}
	}
	return span
}

// Tilt returns the style's keyframes as a TiltStrategy.
func (s Style) Tilt() KeyframeTilt {
	return KeyframeTilt{RotX: s.TiltRotX, RotY: s.TiltRotY, RotZ: s.TiltRotZ}
}

// mustHex parses a validated hex color. Styles are validated on load, so
// a bad value here is a programming error; the fallback keeps rendering
// alive instead of panicking mid-frame.
func mustHex(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	}
	return c
}
