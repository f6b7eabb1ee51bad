package main

import (
	"github.com/spf13/cobra"

	"github.com/xob0t/labelset/pkg/generator"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "labelset",
		Short: "Generate labeled text images for OCR training",
		Long: `labelset renders random uppercase labels centered on blank canvases and
writes them as image-1.png ... image-N.png.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGenerate,
	}

	def := generator.DefaultConfig()
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "path to config file (yaml or toml)")
	flags.Bool("verbose", false, "enable verbose output")
	flags.IntP("count", "n", def.Count, "number of images to generate")
	flags.Int("width", def.Width, "canvas width in pixels")
	flags.Int("height", def.Height, "canvas height in pixels")
	flags.Float64("font-size", def.FontSize, "font size in pixels")
	flags.Int("label-length", def.LabelLength, "letters per label")
	flags.StringP("output-dir", "d", def.OutputDir, "output directory")
	flags.String("font-path", def.FontPath, "TrueType/OpenType font file (falls back to Go Regular)")
	flags.Uint64("seed", 0, "seed for reproducible labels (random when unset)")
	flags.Bool("no-progress", false, "disable the progress bar")

	rootCmd.AddCommand(
		newGenerateCmd(),
		newSampleCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return rootCmd
}
