// Package holocard renders animated holographic trading cards.
//
// Given AI-generated artwork and an attendee's name, holocard composes a
// multi-layer card (glow, tilted card body, holographic overlays) frame
// by frame and assembles the frames into a looping animated GIF, or a
// single lossless PNG for the still download path.
//
// # Quick start
//
//	assets := holocard.LoadAssets(ctx, card, holocard.DefaultAssetPaths())
//	exporter, err := holocard.NewExporter(
//		holocard.DefaultSettings(), holocard.DefaultStyle(), assets)
//	if err != nil {
//		return err
//	}
//	blob, err := exporter.ExportGIF(ctx, card)
//
// # Rendering model
//
// Every visual effect is a smooth periodic function of a single
// animation time. [Clock] maps frame indices onto time; each effect
// reduces time modulo its own period from the [Style]. A frame is a
// pure function of its inputs, so identical exports are bit-identical.
//
// The card's float is a cosmetic pseudo-3D tilt: [KeyframeTilt]
// interpolates rotation angles through four linear segments and maps
// them to 2D affine parameters. Substitute any [TiltStrategy] for a
// genuine projection.
//
// Missing assets are normal: every entry of [AssetSet] may be nil, and
// the layer that would have drawn it draws nothing instead.
//
// # Concurrency
//
// Rendering is strictly sequential (one frame at a time on one raster
// context); asset loading and GIF color quantization are concurrent.
// An [Exporter] serializes its exports and rejects overlap with
// [ErrExportActive]; allocate one per concurrent export.
package holocard
