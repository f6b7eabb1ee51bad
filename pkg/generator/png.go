// png.go — PNG file writer.
package generator

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// writePNG encodes img to a PNG file at the given path, replacing any
// existing file.
func writePNG(output string, img image.Image) error {
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode PNG %s: %w", output, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", output, err)
	}
	return nil
}
