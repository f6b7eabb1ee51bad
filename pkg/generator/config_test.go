package generator

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Count != 15000 {
		t.Errorf("Count: got %d, want %d", cfg.Count, 15000)
	}
	if cfg.Width != 300 || cfg.Height != 240 {
		t.Errorf("size: got %dx%d, want 300x240", cfg.Width, cfg.Height)
	}
	if cfg.FontSize != 64 {
		t.Errorf("FontSize: got %v, want %v", cfg.FontSize, 64)
	}
	if cfg.LabelLength != 6 {
		t.Errorf("LabelLength: got %d, want %d", cfg.LabelLength, 6)
	}
	if cfg.OutputDir != "img" {
		t.Errorf("OutputDir: got %q, want %q", cfg.OutputDir, "img")
	}
	if cfg.FontPath != "arial.ttf" {
		t.Errorf("FontPath: got %q, want %q", cfg.FontPath, "arial.ttf")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"zero count", func(c *Config) { c.Count = 0 }, false},
		{"empty font path", func(c *Config) { c.FontPath = "" }, false},
		{"negative count", func(c *Config) { c.Count = -1 }, true},
		{"zero width", func(c *Config) { c.Width = 0 }, true},
		{"negative height", func(c *Config) { c.Height = -5 }, true},
		{"zero font size", func(c *Config) { c.FontSize = 0 }, true},
		{"zero label length", func(c *Config) { c.LabelLength = 0 }, true},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
