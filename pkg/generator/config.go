package generator

import "fmt"

// Config holds parameters for dataset generation.
type Config struct {
	Count       int     `mapstructure:"count"       yaml:"count"       toml:"count"`
	Width       int     `mapstructure:"width"       yaml:"width"       toml:"width"`
	Height      int     `mapstructure:"height"      yaml:"height"      toml:"height"`
	FontSize    float64 `mapstructure:"fontSize"    yaml:"fontSize"    toml:"fontSize"`
	LabelLength int     `mapstructure:"labelLength" yaml:"labelLength" toml:"labelLength"`
	OutputDir   string  `mapstructure:"outputDir"   yaml:"outputDir"   toml:"outputDir"`
	FontPath    string  `mapstructure:"fontPath"    yaml:"fontPath"    toml:"fontPath"`
}

// DefaultConfig returns the stock dataset: 15000 images of 300x240 with
// six-letter labels at 64px, written to ./img.
func DefaultConfig() Config {
	return Config{
		Count:       15000,
		Width:       300,
		Height:      240,
		FontSize:    64,
		LabelLength: 6,
		OutputDir:   "img",
		FontPath:    "arial.ttf",
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Count < 0:
		return fmt.Errorf("config: count must not be negative (got %d)", c.Count)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("config: canvas size must be positive (got %dx%d)", c.Width, c.Height)
	case c.FontSize <= 0:
		return fmt.Errorf("config: fontSize must be positive (got %v)", c.FontSize)
	case c.LabelLength <= 0:
		return fmt.Errorf("config: labelLength must be positive (got %d)", c.LabelLength)
	case c.OutputDir == "":
		return fmt.Errorf("config: outputDir is required")
	}
	return nil
}
