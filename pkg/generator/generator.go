// generator.go — The dataset loop.
//
// Every image follows the same pipeline: pick a label, render it centered on
// a fresh canvas, then write the canvas as image-<i>.png. Runs are strictly
// sequential and stop at the first error; files already written are kept.
package generator

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/xob0t/labelset/pkg/render"
)

// Generator renders labeled images with a shared font face.
type Generator struct {
	cfg      Config
	renderer *render.Renderer
	labels   LabelSource
	progress Progress
}

// Option customizes a Generator.
type Option func(*Generator)

// WithLabels replaces the default non-deterministic label source.
func WithLabels(src LabelSource) Option {
	return func(g *Generator) { g.labels = src }
}

// WithProgress reports each written image to p.
func WithProgress(p Progress) Option {
	return func(g *Generator) { g.progress = p }
}

// New validates cfg and resolves the font once for the whole run.
func New(cfg Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	renderer, err := render.NewRenderer(render.Options{
		Width:    cfg.Width,
		Height:   cfg.Height,
		FontPath: cfg.FontPath,
		FontSize: cfg.FontSize,
	})
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}

	g := &Generator{
		cfg:      cfg,
		renderer: renderer,
		labels:   NewRandomLabels(cfg.LabelLength),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Config returns the configuration the generator was built with.
func (g *Generator) Config() Config { return g.cfg }

// Fonts reports which typeface the run uses.
func (g *Generator) Fonts() *render.FontManager { return g.renderer.Fonts() }

// Run writes Count images to OutputDir, creating the directory if needed.
func (g *Generator) Run() error {
	if err := os.MkdirAll(g.cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	for i := 1; i <= g.cfg.Count; i++ {
		img := g.renderer.Render(g.labels.NextLabel())
		if err := writePNG(filepath.Join(g.cfg.OutputDir, FileName(i)), img); err != nil {
			return fmt.Errorf("image %d of %d: %w", i, g.cfg.Count, err)
		}
		if g.progress != nil {
			_ = g.progress.Add(1)
		}
	}
	return nil
}

// WriteSample renders one label and PNG-encodes it to w. It returns the label.
func (g *Generator) WriteSample(w io.Writer) (string, error) {
	label := g.labels.NextLabel()
	if err := png.Encode(w, g.renderer.Render(label)); err != nil {
		return "", fmt.Errorf("encode PNG: %w", err)
	}
	return label, nil
}

// Close releases the font face.
func (g *Generator) Close() error {
	return g.renderer.Close()
}

// FileName returns the name of the i-th image (1-based).
func FileName(i int) string {
	return fmt.Sprintf("image-%d.png", i)
}
