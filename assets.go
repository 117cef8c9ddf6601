package holocard

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"os"
	"strings"
	"sync"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// AssetSet holds the decoded images one export draws from. Any entry may
// be nil: a missing or undecodable asset is a normal outcome, and the
// layer that would have drawn it simply draws nothing.
type AssetSet struct {
	BrandMark    image.Image
	Artwork      image.Image
	PartnerLogo1 image.Image
	PartnerLogo2 image.Image
}

// AssetPaths are the fixed relative locations of the static card assets.
// Empty or missing paths are tolerated.
type AssetPaths struct {
	BrandMark    string
	PartnerLogo1 string
	PartnerLogo2 string
}

// DefaultAssetPaths returns the locations the kiosk build ships assets
// at, relative to the working directory.
func DefaultAssetPaths() AssetPaths {
	return AssetPaths{
		BrandMark:    "assets/brand-mark.png",
		PartnerLogo1: "assets/partner-logo-1.png",
		PartnerLogo2: "assets/partner-logo-2.png",
	}
}

// LoadAssets fetches every asset an export needs, concurrently, and
// joins before returning. It never fails as a whole: each individual
// load that errors (missing file, bad encoding, cancelled context)
// yields a nil entry in the returned set. The artwork comes from the
// card's inline bytes; the rest from disk.
func LoadAssets(ctx context.Context, card CardData, paths AssetPaths) *AssetSet {
	set := &AssetSet{}

	var wg sync.WaitGroup
	load := func(dst *image.Image, fn func() image.Image) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			*dst = fn()
		}()
	}

	load(&set.Artwork, func() image.Image { return decodeArtwork(card.Artwork) })
	load(&set.BrandMark, func() image.Image { return loadImageFile(paths.BrandMark) })
	load(&set.PartnerLogo1, func() image.Image { return loadImageFile(paths.PartnerLogo1) })
	load(&set.PartnerLogo2, func() image.Image { return loadImageFile(paths.PartnerLogo2) })

	wg.Wait()
	return set
}

// loadImageFile reads and decodes one image file, returning nil on any
// failure.
func loadImageFile(path string) image.Image {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil
	}
	return img
}

// decodeArtwork decodes inline artwork bytes. Accepts raw PNG/JPEG/GIF
// bytes, a bare base64 payload, or a data URI
// ("data:image/png;base64,..."). Returns nil when nothing decodes.
func decodeArtwork(data []byte) image.Image {
	if len(data) == 0 {
		return nil
	}

	if img, _, err := image.Decode(bytes.NewReader(data)); err == nil {
		return img
	}

	s := string(data)
	if i := strings.Index(s, ";base64,"); i >= 0 && strings.HasPrefix(s, "data:") {
		s = s[i+len(";base64,"):]
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil
	}
	return img
}
