package holocard

import (
	"fmt"
	"image"
	"math"
	"math/rand"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Reference card size the style geometry is authored against. Other card
// sizes scale the geometry proportionally.
const (
	refCardWidth  = 500
	refCardHeight = 700
)

// sparkle is one point in the sparkle field, placed deterministically
// from the style seed.
type sparkle struct {
	x, y   float64 // fractions of the canvas
	radius float64 // pixels
	phase  float64 // radians
}

// compositor draws complete card frames onto one shared raster context.
// All animated values are smooth periodic functions of animation time,
// so a frame is a pure function of its inputs; drawing the same time
// twice produces identical pixels.
type compositor struct {
	dc       *gg.Context
	style    Style
	settings RenderSettings
	assets   *AssetSet
	tilt     TiltStrategy

	// Derived once per export.
	name      NameLayout
	artwork   image.Image // prescaled to the artwork region
	sparkles  []sparkle
	cardX     float64 // letterbox offset
	cardY     float64
	titleFace font.Face
	nameFace  font.Face
	smallFace font.Face

	// Geometry scaled to the configured card size.
	margin  float64
	corner  float64
	headerH float64
	footerH float64
	titleH  float64
}

// newCompositor prepares everything a frame draw needs: fonts, the
// prescaled artwork, the name layout, and the sparkle field.
func newCompositor(dc *gg.Context, s RenderSettings, st Style, assets *AssetSet, card CardData) (*compositor, error) {
	scale := float64(s.CardWidth) / refCardWidth
	vscale := float64(s.CardHeight) / refCardHeight

	c := &compositor{
		dc:       dc,
		style:    st,
		settings: s,
		assets:   assets,
		tilt:     st.Tilt(),
		name:     LayoutName(card.DisplayName()),
		cardX:    float64(s.OutputWidth-s.CardWidth) / 2,
		cardY:    float64(s.OutputHeight-s.CardHeight) / 2,
		margin:   st.Margin * scale,
		corner:   st.CornerRadius * scale,
		headerH:  st.HeaderHeight * vscale,
		footerH:  st.FooterHeight * vscale,
		titleH:   44 * vscale,
	}

	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	c.titleFace = truetype.NewFace(bold, &truetype.Options{Size: 30 * scale})
	c.nameFace = truetype.NewFace(bold, &truetype.Options{Size: 24 * scale})
	c.smallFace = truetype.NewFace(regular, &truetype.Options{Size: 15 * scale})

	if assets.Artwork != nil {
		aw, ah := c.artworkRegion()
		c.artwork = resize.Resize(uint(aw+0.5), uint(ah+0.5), assets.Artwork, resize.Lanczos3)
	}

	// Sparkle placement comes from the seeded generator, never the
	// global one, so the field is stable across exports.
	rng := rand.New(rand.NewSource(st.SparkleSeed))
	c.sparkles = make([]sparkle, st.SparkleCount)
	for i := range c.sparkles {
		c.sparkles[i] = sparkle{
			x:      rng.Float64(),
			y:      rng.Float64(),
			radius: (4 + rng.Float64()*10) * scale,
			phase:  rng.Float64() * 2 * math.Pi,
		}
	}

	return c, nil
}

// artworkRegion returns the width and height of the clipped artwork
// area in card-local pixels.
func (c *compositor) artworkRegion() (w, h float64) {
	w = float64(c.settings.CardWidth) - 2*c.margin
	h = float64(c.settings.CardHeight) - c.headerH - c.footerH - c.titleH - 4*c.margin
	return w, h
}

// drawFrame renders one complete frame at animation time t. Layer order
// is fixed: glow, tilted card body, then the untransformed full-canvas
// overlays. Every sub-layer restores the context state it touches; a
// defect in a layer surfaces as a panic, which the capture loop turns
// into a RenderError.
func (c *compositor) drawFrame(t float64) {
	dc := c.dc

	dc.Push()
	dc.SetColor(mustHex(c.style.LetterboxColor))
	dc.Clear()
	dc.Pop()

	c.drawGlow(t)
	c.drawCardBody(t)
	c.drawOverlays(t)
}

// drawGlow paints the ambient glow layers behind the card: concentric
// radial gradients whose alpha pulses on the glow cycle.
func (c *compositor) drawGlow(t float64) {
	dc := c.dc
	p := Progress(t, c.style.GlowPeriod)
	pulse := 0.5 + 0.5*math.Sin(2*math.Pi*p)

	cx := c.cardX + float64(c.settings.CardWidth)/2
	cy := c.cardY + float64(c.settings.CardHeight)/2
	base := math.Hypot(float64(c.settings.CardWidth), float64(c.settings.CardHeight)) / 2
	glow := mustHex(c.style.GlowColor)

	dc.Push()
	for i := 0; i < c.style.GlowLayers; i++ {
		r := base + c.style.GlowRadius*float64(i+1)
		alpha := (0.10 + 0.08*pulse) / float64(i+1)
		grad := gg.NewRadialGradient(cx, cy, base*0.5, cx, cy, r)
		grad.AddColorStop(clamp01(0), withAlpha(glow, alpha))
		grad.AddColorStop(clamp01(0.7), withAlpha(glow, alpha*0.5))
		grad.AddColorStop(clamp01(1), withAlpha(glow, 0))
		dc.SetFillStyle(grad)
		dc.DrawRectangle(0, 0, float64(c.settings.OutputWidth), float64(c.settings.OutputHeight))
		dc.Fill()
	}
	dc.Pop()
}

// drawCardBody draws the tilted card: background, header, artwork,
// title, footer. The tilt's affine parameters apply around the card
// center; the clip to the rounded card outline is released before
// returning.
func (c *compositor) drawCardBody(t float64) {
	dc := c.dc
	w := float64(c.settings.CardWidth)
	h := float64(c.settings.CardHeight)

	params := c.tilt.Params(Progress(t, c.style.FloatPeriod))
	cx := c.cardX + w/2
	cy := c.cardY + h/2

	dc.Push()
	defer func() {
		dc.ResetClip()
		dc.Pop()
	}()

	dc.RotateAbout(params.Rotate, cx, cy)
	dc.ShearAbout(params.SkewX, params.SkewY, cx, cy)
	dc.ScaleAbout(params.ScaleX, params.ScaleY, cx, cy)
	dc.Translate(c.cardX, c.cardY)

	// Card outline clips everything drawn inside it.
	dc.DrawRoundedRectangle(0, 0, w, h, c.corner)
	dc.Clip()

	bg := gg.NewLinearGradient(0, 0, 0, h)
	bg.AddColorStop(clamp01(0), mustHex(c.style.BackgroundTop))
	bg.AddColorStop(clamp01(1), mustHex(c.style.BackgroundBottom))
	dc.SetFillStyle(bg)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()

	c.drawHeader(t, w)
	c.drawArtwork(w)
	c.drawTitle(w, h)
	c.drawFooter(w, h)
}

// drawHeader draws the branded header panel with its shine pulse.
func (c *compositor) drawHeader(t float64, w float64) {
	dc := c.dc
	m := c.margin

	dc.Push()
	dc.SetColor(mustHex(c.style.PanelColor))
	dc.DrawRoundedRectangle(m, m, w-2*m, c.headerH, c.corner/2)
	dc.Fill()

	if c.assets.BrandMark != nil {
		mark := c.assets.BrandMark
		target := c.headerH - m
		b := mark.Bounds()
		if b.Dy() > 0 {
			s := target / float64(b.Dy())
			dc.Push()
			dc.Translate(m*2, m+(c.headerH-target)/2)
			dc.Scale(s, s)
			dc.DrawImage(mark, 0, 0)
			dc.Pop()
		}
	}

	dc.SetFontFace(c.titleFace)
	dc.SetColor(mustHex(c.style.TextColor))
	dc.DrawStringAnchored(c.style.HeaderTitle, w/2, m+c.headerH/2, 0.5, 0.35)
	dc.SetFontFace(c.smallFace)
	dc.DrawStringAnchored(c.style.HeaderSubtitle, w/2, m+c.headerH*0.78, 0.5, 0.5)

	// Shine: a brightness pulse washed over the panel.
	shine := 0.08 + 0.08*math.Sin(2*math.Pi*Progress(t, c.style.ShinePeriod))
	dc.SetRGBA(1, 1, 1, shine)
	dc.DrawRoundedRectangle(m, m, w-2*m, c.headerH, c.corner/2)
	dc.Fill()
	dc.Pop()
}

// drawArtwork draws the prescaled AI artwork clipped to its rounded
// region. Absent artwork draws nothing; the background shows through.
func (c *compositor) drawArtwork(w float64) {
	if c.artwork == nil {
		return
	}
	dc := c.dc
	aw, ah := c.artworkRegion()
	x := c.margin
	y := 2*c.margin + c.headerH

	dc.Push()
	dc.DrawRoundedRectangle(x, y, aw, ah, c.corner/2)
	dc.Clip()
	dc.DrawImage(c.artwork, int(x), int(y))
	dc.ResetClip()
	dc.Pop()

	// Restore the card-outline clip the artwork clip replaced.
	dc.DrawRoundedRectangle(0, 0, w, float64(c.settings.CardHeight), c.corner)
	dc.Clip()
}

// drawTitle draws the centered event title between artwork and footer.
func (c *compositor) drawTitle(w, h float64) {
	dc := c.dc
	y := h - c.footerH - c.margin - c.titleH/2

	dc.Push()
	dc.SetFontFace(c.titleFace)
	dc.SetColor(mustHex(c.style.TextColor))
	dc.DrawStringAnchored(c.style.EventTitle, w/2, y, 0.5, 0.5)
	dc.Pop()
}

// drawFooter draws the footer panel: partner logos at the edges and the
// creator name centered, on one or two lines.
func (c *compositor) drawFooter(w, h float64) {
	dc := c.dc
	m := c.margin
	y := h - m - c.footerH

	dc.Push()
	dc.SetColor(mustHex(c.style.PanelColor))
	dc.DrawRoundedRectangle(m, y, w-2*m, c.footerH, c.corner/2)
	dc.Fill()

	logoH := c.footerH * 0.45
	drawLogo := func(img image.Image, right bool) {
		if img == nil {
			return
		}
		b := img.Bounds()
		if b.Dy() == 0 {
			return
		}
		s := logoH / float64(b.Dy())
		lw := float64(b.Dx()) * s
		x := m * 2
		if right {
			x = w - 2*m - lw
		}
		dc.Push()
		dc.Translate(x, y+(c.footerH-logoH)/2)
		dc.Scale(s, s)
		dc.DrawImage(img, 0, 0)
		dc.Pop()
	}
	drawLogo(c.assets.PartnerLogo1, false)
	drawLogo(c.assets.PartnerLogo2, true)

	dc.SetFontFace(c.smallFace)
	dc.SetColor(withAlpha(mustHex(c.style.TextColor), 0.7))
	dc.DrawStringAnchored("CREATED BY", w/2, y+c.footerH*0.22, 0.5, 0.5)

	dc.SetFontFace(c.nameFace)
	dc.SetColor(mustHex(c.style.TextColor))
	if c.name.HasTwoLines {
		dc.DrawStringAnchored(c.name.Line1, w/2, y+c.footerH*0.50, 0.5, 0.5)
		dc.DrawStringAnchored(c.name.Line2, w/2, y+c.footerH*0.78, 0.5, 0.5)
	} else {
		dc.DrawStringAnchored(c.name.Line1, w/2, y+c.footerH*0.62, 0.5, 0.5)
	}
	dc.Pop()
}

// drawOverlays composites the full-canvas holographic effects, each
// rendered to its own scratch context and merged with an emulated blend
// mode so the shared context never sees a half-applied layer.
func (c *compositor) drawOverlays(t float64) {
	base, ok := c.dc.Image().(*image.RGBA)
	if !ok {
		return
	}
	w := c.settings.OutputWidth
	h := c.settings.OutputHeight

	holo := gg.NewContext(w, h)
	c.drawHoloSweep(holo, Progress(t, c.style.HoloPeriod))
	compositeBlend(base, holo.Image().(*image.RGBA), blendOverlay)

	spark := gg.NewContext(w, h)
	c.drawSparkles(spark, Progress(t, c.style.SparklePeriod))
	compositeBlend(base, spark.Image().(*image.RGBA), blendColorDodge)

	second := gg.NewContext(w, h)
	c.drawColorSweep(second, Progress(t, c.style.HoloPeriod))
	compositeBlend(base, second.Image().(*image.RGBA), blendScreen)
}

// sweepStops returns the three gradient stop offsets for a sweep band
// centered at the given progress. Offsets are analytically clamped to
// [0,1]; raster gradient APIs reject anything outside that range.
func sweepStops(progress float64) (lead, mid, trail float64) {
	center := progress*1.5 - 0.25 // band travels fully across, off-canvas at both ends
	return clamp01(center - 0.25), clamp01(center), clamp01(center + 0.25)
}

// drawHoloSweep draws the main diagonal holographic band.
func (c *compositor) drawHoloSweep(dc *gg.Context, progress float64) {
	w := float64(c.settings.OutputWidth)
	h := float64(c.settings.OutputHeight)
	lead, mid, trail := sweepStops(progress)

	grad := gg.NewLinearGradient(0, 0, w, h)
	grad.AddColorStop(lead, withAlpha(colorful.Color{R: 0, G: 1, B: 1}, 0))
	grad.AddColorStop(mid, withAlpha(colorful.Color{R: 1, G: 1, B: 1}, 0.35))
	grad.AddColorStop(trail, withAlpha(colorful.Color{R: 1, G: 0, B: 1}, 0))
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()
}

// drawSparkles draws the radial sparkle field. Each sparkle breathes on
// the sparkle cycle, offset by its own phase.
func (c *compositor) drawSparkles(dc *gg.Context, progress float64) {
	w := float64(c.settings.OutputWidth)
	h := float64(c.settings.OutputHeight)

	for _, s := range c.sparkles {
		intensity := math.Sin(2*math.Pi*progress + s.phase)
		if intensity <= 0 {
			continue
		}
		x := s.x * w
		y := s.y * h
		grad := gg.NewRadialGradient(x, y, 0, x, y, s.radius)
		grad.AddColorStop(clamp01(0), withAlpha(colorful.Color{R: 1, G: 1, B: 1}, 0.85*intensity))
		grad.AddColorStop(clamp01(1), withAlpha(colorful.Color{R: 1, G: 1, B: 1}, 0))
		dc.SetFillStyle(grad)
		dc.DrawRectangle(x-s.radius, y-s.radius, s.radius*2, s.radius*2)
		dc.Fill()
	}
}

// drawColorSweep draws the secondary multi-color band on the opposite
// diagonal, hues picked from an HSV ramp keyed to the cycle.
func (c *compositor) drawColorSweep(dc *gg.Context, progress float64) {
	w := float64(c.settings.OutputWidth)
	h := float64(c.settings.OutputHeight)
	lead, mid, trail := sweepStops(1 - progress)

	hue := math.Mod(progress*360+200, 360)
	a := colorful.Hsv(hue, 0.9, 1)
	b := colorful.Hsv(math.Mod(hue+80, 360), 0.9, 1)

	grad := gg.NewLinearGradient(w, 0, 0, h)
	grad.AddColorStop(lead, withAlpha(a, 0))
	grad.AddColorStop(mid, withAlpha(b, 0.18))
	grad.AddColorStop(trail, withAlpha(a, 0))
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()
}

// withAlpha converts a colorful color plus alpha into a premultiplied
// color value the raster API accepts.
func withAlpha(c colorful.Color, alpha float64) alphaColor {
	return alphaColor{c: c, a: clamp01(alpha)}
}

// alphaColor adapts colorful's opaque RGB to color.Color with alpha.
type alphaColor struct {
	c colorful.Color
	a float64
}

func (ac alphaColor) RGBA() (r, g, b, a uint32) {
	// Premultiplied, as color.Color requires.
	r = uint32(clamp01(ac.c.R) * ac.a * 0xffff)
	g = uint32(clamp01(ac.c.G) * ac.a * 0xffff)
	b = uint32(clamp01(ac.c.B) * ac.a * 0xffff)
	a = uint32(ac.a * 0xffff)
	return
}
