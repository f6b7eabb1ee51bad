package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xob0t/labelset/pkg/generator"
)

func newSampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Render a single labeled image",
		Long:  "Render one image with the resolved settings and write it to a file or stdout. The label is printed to stderr.",
		RunE:  runSample,
	}
	cmd.Flags().StringP("output", "o", "", "output PNG file (default: stdout)")
	return cmd
}

func runSample(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	g, err := generator.New(s.Config, generator.WithLabels(s.labels()))
	if err != nil {
		return err
	}
	defer g.Close()

	reportFont(g.Fonts(), s.Verbose)

	output, _ := cmd.Flags().GetString("output")
	if output == "" || output == "-" {
		label, err := g.WriteSample(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Label: %s\n", label)
		return nil
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	label, err := g.WriteSample(f)
	if err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", output, err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Label: %s\n", label)
	fmt.Fprintf(cmd.OutOrStdout(), "Done: %s\n", output)
	return nil
}
