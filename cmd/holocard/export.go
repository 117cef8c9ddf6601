package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/phanxgames/holocard"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render one card to an animated GIF (and optionally a PNG still)",
	Long: `Export renders a card from an artwork file and writes the looping
animated GIF. With --still it also writes the single lossless frame used
by the non-animated download path.

Examples:
  holocard export --art artwork.png --name "Jane Doe" --out card.gif
  holocard export --art artwork.png --prompt "my name is Ada" --out card.gif --still card.png
  holocard export --art artwork.png --style neon.toml --frames 30 --fps 15 --out card.gif`,
	RunE: func(cmd *cobra.Command, args []string) error {
		artPath, _ := cmd.Flags().GetString("art")
		name, _ := cmd.Flags().GetString("name")
		prompt, _ := cmd.Flags().GetString("prompt")
		outPath, _ := cmd.Flags().GetString("out")
		stillPath, _ := cmd.Flags().GetString("still")
		stylePath, _ := cmd.Flags().GetString("style")
		assetDir, _ := cmd.Flags().GetString("assets")

		settings := holocard.DefaultSettings()
		settings.FrameCount, _ = cmd.Flags().GetInt("frames")
		settings.FrameRate, _ = cmd.Flags().GetFloat64("fps")
		settings.Quality, _ = cmd.Flags().GetInt("quality")

		style := holocard.DefaultStyle()
		if stylePath != "" {
			var err error
			style, err = holocard.LoadStyle(stylePath)
			if err != nil {
				return fmt.Errorf("error loading style: %v", err)
			}
		}

		artwork, err := os.ReadFile(artPath)
		if err != nil {
			return fmt.Errorf("error reading artwork: %v", err)
		}
		card := holocard.CardData{Artwork: artwork, CreatorName: name, Prompt: prompt}

		paths := holocard.DefaultAssetPaths()
		if assetDir != "" {
			paths = holocard.AssetPaths{
				BrandMark:    filepath.Join(assetDir, "brand-mark.png"),
				PartnerLogo1: filepath.Join(assetDir, "partner-logo-1.png"),
				PartnerLogo2: filepath.Join(assetDir, "partner-logo-2.png"),
			}
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		assets := holocard.LoadAssets(ctx, card, paths)
		warnMissing(assets)

		exporter, err := holocard.NewExporter(settings, style, assets)
		if err != nil {
			return err
		}

		blob, err := exporter.ExportGIF(ctx, card)
		if err != nil {
			return fmt.Errorf("error exporting gif: %v", err)
		}
		if err := os.WriteFile(outPath, blob, 0o644); err != nil {
			return fmt.Errorf("error writing %s: %v", outPath, err)
		}
		colorize.Green("Wrote %s (%d bytes, %d frames)", outPath, len(blob), settings.FrameCount)

		if stillPath != "" {
			still, err := exporter.ExportStill(card)
			if err != nil {
				return fmt.Errorf("error exporting still: %v", err)
			}
			if err := os.WriteFile(stillPath, still, 0o644); err != nil {
				return fmt.Errorf("error writing %s: %v", stillPath, err)
			}
			colorize.Green("Wrote %s (%d bytes)", stillPath, len(still))
		}
		return nil
	},
}

// warnMissing reports absent optional assets without failing.
func warnMissing(assets *holocard.AssetSet) {
	yellow := colorize.New(colorize.FgYellow)
	if assets.Artwork == nil {
		yellow.Fprintln(os.Stderr, "warning: artwork did not decode; card renders without it")
	}
	if assets.BrandMark == nil {
		yellow.Fprintln(os.Stderr, "note: no brand mark found")
	}
}

func init() {
	exportCmd.Flags().String("art", "", "artwork image file (png/jpeg/gif or base64)")
	exportCmd.Flags().String("name", "", "creator display name")
	exportCmd.Flags().String("prompt", "", "generation prompt (fallback name source)")
	exportCmd.Flags().String("out", "card.gif", "output GIF path")
	exportCmd.Flags().String("still", "", "also write a PNG still to this path")
	exportCmd.Flags().String("style", "", "TOML style file")
	exportCmd.Flags().String("assets", "", "asset directory (brand mark, partner logos)")
	exportCmd.Flags().Int("frames", holocard.DefaultSettings().FrameCount, "frame count")
	exportCmd.Flags().Float64("fps", holocard.DefaultSettings().FrameRate, "frame rate")
	exportCmd.Flags().Int("quality", holocard.DefaultSettings().Quality, "GIF quality 1-100")
	_ = exportCmd.MarkFlagRequired("art")
}
