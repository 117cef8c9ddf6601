package main

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "holocard",
	Short: "Render animated holographic trading cards",
	Long: `Holocard renders an AI-illustrated trading card as a looping animated
GIF with holographic overlay effects, or as a single lossless PNG still.

Artwork comes from a file; the brand mark and partner logos are picked up
from an asset directory and are all optional. Visual tuning lives in a
TOML style file.`,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
