package holocard

import (
	"bytes"
	"testing"

	"github.com/fogleman/gg"
)

// testSettings keeps rendering fast: a small card on a slightly larger
// canvas, exercising the letterbox path.
func testSettings() RenderSettings {
	s := DefaultSettings()
	s.CardWidth, s.CardHeight = 100, 140
	s.OutputWidth, s.OutputHeight = 120, 160
	s.FrameCount = 3
	return s
}

func newTestCompositor(t *testing.T, assets *AssetSet, card CardData) *compositor {
	t.Helper()
	s := testSettings()
	if assets == nil {
		assets = &AssetSet{}
	}
	dc := gg.NewContext(s.OutputWidth, s.OutputHeight)
	comp, err := newCompositor(dc, s, DefaultStyle(), assets, card)
	if err != nil {
		t.Fatal(err)
	}
	return comp
}

func TestSweepStopsAlwaysClamped(t *testing.T) {
	// Dense sampling across a full cycle, including values just outside
	// [0,1) that arrive via modulo wrapping.
	for i := -100; i <= 1100; i++ {
		p := float64(i) / 1000
		lead, mid, trail := sweepStops(Progress(p*5, 5))
		for _, off := range []float64{lead, mid, trail} {
			if off < 0 || off > 1 {
				t.Fatalf("progress %v: stop offset %v outside [0,1]", p, off)
			}
		}
		if lead > mid || mid > trail {
			t.Fatalf("progress %v: stops unordered: %v %v %v", p, lead, mid, trail)
		}
	}
}

func TestDrawFrameWithoutAssets(t *testing.T) {
	// Every asset absent: each layer draws nothing rather than aborting.
	comp := newTestCompositor(t, nil, CardData{})
	if err := renderFrame(comp, 1.7); err != nil {
		t.Fatalf("renderFrame with empty asset set: %v", err)
	}
}

func TestDrawFramePartialAssets(t *testing.T) {
	assets := &AssetSet{Artwork: testArtwork(40, 40), PartnerLogo2: testArtwork(16, 8)}
	comp := newTestCompositor(t, assets, CardData{CreatorName: "Jane Middle Doe"})
	if err := renderFrame(comp, 0.4); err != nil {
		t.Fatalf("renderFrame with partial assets: %v", err)
	}
}

func TestDrawFrameDeterministic(t *testing.T) {
	card := CardData{CreatorName: "Nova", Artwork: nil}
	a := newTestCompositor(t, &AssetSet{Artwork: testArtwork(50, 50)}, card)
	b := newTestCompositor(t, &AssetSet{Artwork: testArtwork(50, 50)}, card)

	for _, tt := range []float64{0, 1.3, 4.99} {
		if err := renderFrame(a, tt); err != nil {
			t.Fatal(err)
		}
		if err := renderFrame(b, tt); err != nil {
			t.Fatal(err)
		}
		fa := snapshot(a.dc.Image())
		fb := snapshot(b.dc.Image())
		if !bytes.Equal(fa.Pix, fb.Pix) {
			t.Fatalf("t=%v: identical inputs produced differing rasters", tt)
		}
	}
}

func TestDrawFrameRestoresState(t *testing.T) {
	// If any layer leaked clip, transform, or style state, a repeated
	// draw at the same time would differ from the first.
	comp := newTestCompositor(t, &AssetSet{Artwork: testArtwork(30, 30)}, CardData{CreatorName: "Ada"})

	if err := renderFrame(comp, 2.2); err != nil {
		t.Fatal(err)
	}
	first := snapshot(comp.dc.Image())

	// Interleave a draw at a different time to stir every layer.
	if err := renderFrame(comp, 5.1); err != nil {
		t.Fatal(err)
	}
	if err := renderFrame(comp, 2.2); err != nil {
		t.Fatal(err)
	}
	second := snapshot(comp.dc.Image())

	if !bytes.Equal(first.Pix, second.Pix) {
		t.Fatal("repeated draw at the same time differs: leaked context state")
	}
}

func TestDrawFrameDiffersAcrossTime(t *testing.T) {
	comp := newTestCompositor(t, nil, CardData{})
	if err := renderFrame(comp, 0); err != nil {
		t.Fatal(err)
	}
	first := snapshot(comp.dc.Image())
	if err := renderFrame(comp, 2); err != nil {
		t.Fatal(err)
	}
	second := snapshot(comp.dc.Image())
	if bytes.Equal(first.Pix, second.Pix) {
		t.Fatal("frames at different animation times are identical; effects not animating")
	}
}

func TestHeaderTextComesFromStyle(t *testing.T) {
	// All header copy lives in Style; changing it must change the
	// rendered header, with no hard-coded strings shadowing it.
	s := testSettings()
	base := DefaultStyle()
	custom := base
	custom.HeaderTitle = "NIGHT CARD"
	custom.HeaderSubtitle = "ZERO EDITION"

	render := func(st Style) []byte {
		dc := gg.NewContext(s.OutputWidth, s.OutputHeight)
		comp, err := newCompositor(dc, s, st, &AssetSet{}, CardData{})
		if err != nil {
			t.Fatal(err)
		}
		if err := renderFrame(comp, 0); err != nil {
			t.Fatal(err)
		}
		return snapshot(comp.dc.Image()).Pix
	}

	if bytes.Equal(render(base), render(custom)) {
		t.Fatal("header text override did not change the rendered frame")
	}
}

func TestSparkleFieldStable(t *testing.T) {
	a := newTestCompositor(t, nil, CardData{})
	b := newTestCompositor(t, nil, CardData{})
	if len(a.sparkles) != DefaultStyle().SparkleCount {
		t.Fatalf("sparkle count = %d, want %d", len(a.sparkles), DefaultStyle().SparkleCount)
	}
	for i := range a.sparkles {
		if a.sparkles[i] != b.sparkles[i] {
			t.Fatalf("sparkle %d differs between compositors with the same seed", i)
		}
	}
}

func TestArtworkPrescaledToRegion(t *testing.T) {
	comp := newTestCompositor(t, &AssetSet{Artwork: testArtwork(400, 300)}, CardData{})
	if comp.artwork == nil {
		t.Fatal("artwork not prescaled")
	}
	aw, ah := comp.artworkRegion()
	b := comp.artwork.Bounds()
	if b.Dx() != int(aw+0.5) || b.Dy() != int(ah+0.5) {
		t.Errorf("prescaled artwork %dx%d, want %vx%v", b.Dx(), b.Dy(), int(aw+0.5), int(ah+0.5))
	}
}

func BenchmarkDrawFrame(b *testing.B) {
	s := testSettings()
	dc := gg.NewContext(s.OutputWidth, s.OutputHeight)
	comp, err := newCompositor(dc, s, DefaultStyle(), &AssetSet{Artwork: testArtwork(64, 64)}, CardData{CreatorName: "Bench Mark"})
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		comp.drawFrame(1.5)
	}
}
