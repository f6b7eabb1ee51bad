package main

import (
	"fmt"
	"log"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/xob0t/labelset/pkg/generator"
	"github.com/xob0t/labelset/pkg/render"
)

func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate the image dataset (default command)",
		Long: `Generate writes image-1.png through image-N.png into the output directory,
overwriting files with the same names. It stops at the first error; images
written before the error are left in place.`,
		RunE: runGenerate,
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	opts := []generator.Option{generator.WithLabels(s.labels())}

	var bar *progressbar.ProgressBar
	if noProgress, _ := cmd.Flags().GetBool("no-progress"); !noProgress {
		bar = progressbar.NewOptions(s.Count,
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionSetDescription("Generating images"),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
		)
		opts = append(opts, generator.WithProgress(bar))
	}

	g, err := generator.New(s.Config, opts...)
	if err != nil {
		return err
	}
	defer g.Close()

	reportFont(g.Fonts(), s.Verbose)

	if err := g.Run(); err != nil {
		return err
	}
	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(cmd.ErrOrStderr())
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Done: %d images in %s\n", s.Count, s.OutputDir)
	return nil
}

// reportFont logs the font fallback in verbose mode only.
func reportFont(fm *render.FontManager, verbose bool) {
	if !verbose {
		return
	}
	if fm.Source() == render.FontFallback {
		log.Printf("warning: font %q unavailable (%v), using embedded Go Regular", fm.Path(), fm.FallbackReason())
		return
	}
	log.Printf("using font %s", fm.Path())
}
