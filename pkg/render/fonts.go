// fonts.go - Font loading with an embedded fallback typeface.
// Uses golang.org/x/image/font/opentype for parsing. Falls back to the Go
// Regular font when the configured file is missing, unreadable or not a font.
package render

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontSource reports where the typeface in use came from.
type FontSource int

const (
	// FontLoaded means the configured font file was parsed successfully.
	FontLoaded FontSource = iota
	// FontFallback means the embedded Go Regular font was substituted.
	FontFallback
)

func (s FontSource) String() string {
	switch s {
	case FontLoaded:
		return "loaded"
	case FontFallback:
		return "fallback"
	default:
		return fmt.Sprintf("FontSource(%d)", int(s))
	}
}

// FontManager holds a parsed typeface and how it was resolved.
type FontManager struct {
	path     string
	parsed   *opentype.Font
	source   FontSource
	fallback error // why the configured font was not used
}

// NewFontManager resolves the font at customPath. An empty, missing or
// unparseable path is not an error: the embedded font is used instead and
// Source reports FontFallback.
func NewFontManager(customPath string) (*FontManager, error) {
	fm := &FontManager{path: customPath}

	if customPath != "" {
		parsed, err := parseFontFile(customPath)
		if err == nil {
			fm.parsed = parsed
			fm.source = FontLoaded
			return fm, nil
		}
		fm.fallback = err
	} else {
		fm.fallback = errors.New("no font path configured")
	}

	parsed, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded font: %w", err)
	}
	fm.parsed = parsed
	fm.source = FontFallback
	return fm, nil
}

func parseFontFile(path string) (*opentype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return parsed, nil
}

// Path returns the configured font path, which may not be the font in use.
func (fm *FontManager) Path() string { return fm.path }

// Source reports whether the configured font or the fallback is in use.
func (fm *FontManager) Source() FontSource { return fm.source }

// FallbackReason returns the error that caused the fallback, or nil.
func (fm *FontManager) FallbackReason() error { return fm.fallback }

// GetFace returns a font.Face at the specified size.
func (fm *FontManager) GetFace(size float64, dpi float64) (font.Face, error) {
	if dpi <= 0 {
		dpi = 72
	}

	face, err := opentype.NewFace(fm.parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}

	return face, nil
}
