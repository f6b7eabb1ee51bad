// renderer.go - Draws a single text label centered on a solid canvas.
// The label's ink bounding box is measured in the resolved face and placed so
// that its top-left corner lands on ((W-w)/2, (H-h)/2).
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

var (
	// Background is the canvas fill color.
	Background = color.RGBA{255, 255, 255, 255}
	// Foreground is the text color.
	Foreground = color.RGBA{0, 0, 0, 255}
)

// Options configures a Renderer.
type Options struct {
	Width    int
	Height   int
	FontPath string
	FontSize float64
}

// Renderer rasterizes labels onto fixed-size canvases. The face is created
// once and only read afterwards.
type Renderer struct {
	fontManager *FontManager
	face        font.Face
	width       int
	height      int
	dpi         float64
}

// Layout describes where a label is placed on the canvas.
type Layout struct {
	TextWidth  float64 // ink box width in pixels
	TextHeight float64 // ink box height in pixels
	X, Y       float64 // top-left of the ink box, un-rounded
	Dot        fixed.Point26_6
}

// NewRenderer resolves the font and creates the face used for every label.
func NewRenderer(opts Options) (*Renderer, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", opts.Width, opts.Height)
	}
	if opts.FontSize <= 0 {
		return nil, fmt.Errorf("invalid font size %v", opts.FontSize)
	}

	fm, err := NewFontManager(opts.FontPath)
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		fontManager: fm,
		width:       opts.Width,
		height:      opts.Height,
		dpi:         72,
	}

	r.face, err = fm.GetFace(opts.FontSize, r.dpi)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Fonts returns the font manager, which reports whether a fallback happened.
func (r *Renderer) Fonts() *FontManager { return r.fontManager }

// Size returns the canvas dimensions.
func (r *Renderer) Size() (width, height int) { return r.width, r.height }

// Layout measures text and computes its centered placement.
func (r *Renderer) Layout(text string) Layout {
	bounds, _ := font.BoundString(r.face, text)

	w := float64(bounds.Max.X-bounds.Min.X) / 64
	h := float64(bounds.Max.Y-bounds.Min.Y) / 64
	x := (float64(r.width) - w) / 2
	y := (float64(r.height) - h) / 2

	// The dot is the glyph origin; shift it by the ink box minimum so the
	// ink starts at (x, y). 26.6 keeps the fractional part.
	return Layout{
		TextWidth:  w,
		TextHeight: h,
		X:          x,
		Y:          y,
		Dot: fixed.Point26_6{
			X: toFixed(x) - bounds.Min.X,
			Y: toFixed(y) - bounds.Min.Y,
		},
	}
}

// Render returns a new canvas with text drawn centered in the foreground color.
func (r *Renderer) Render(text string) *image.RGBA {
	img := NewSolidImage(r.width, r.height, Background)
	if text == "" {
		return img
	}

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(Foreground),
		Face: r.face,
		Dot:  r.Layout(text).Dot,
	}
	drawer.DrawString(text)
	return img
}

// Close releases the font face.
func (r *Renderer) Close() error {
	return r.face.Close()
}

// NewSolidImage creates a uniform solid-color image using draw.Draw (O(1) fill).
func NewSolidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
	return img
}

// toFixed rounds a pixel coordinate to the nearest 1/64.
func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
