package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/xob0t/labelset/pkg/generator"
)

// flagKeys maps config keys to the persistent flags that override them.
var flagKeys = map[string]string{
	"count":       "count",
	"width":       "width",
	"height":      "height",
	"fontSize":    "font-size",
	"labelLength": "label-length",
	"outputDir":   "output-dir",
	"fontPath":    "font-path",
	"seed":        "seed",
}

// settings is the resolved configuration shared by all commands.
type settings struct {
	generator.Config
	Seed    uint64
	Seeded  bool
	Verbose bool
}

// loadSettings merges, lowest first: defaults, the --config file,
// LABELSET_* environment variables, and flags set on the command line.
func loadSettings(cmd *cobra.Command) (*settings, error) {
	v := viper.New()
	v.SetEnvPrefix("LABELSET")
	v.AutomaticEnv()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		v.SetConfigType(configType(path))
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	for key, name := range flagKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return nil, fmt.Errorf("binding flag %s: %w", name, err)
		}
	}

	cfg := generator.DefaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	s := &settings{
		Config: cfg,
		Seed:   v.GetUint64("seed"),
		Seeded: v.IsSet("seed"),
	}
	s.Verbose, _ = cmd.Flags().GetBool("verbose")
	return s, nil
}

// labels returns a seeded source when a seed was given, otherwise a random one.
func (s *settings) labels() generator.LabelSource {
	if s.Seeded {
		return generator.NewSeededLabels(s.LabelLength, s.Seed)
	}
	return generator.NewRandomLabels(s.LabelLength)
}

func configType(path string) string {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "toml":
		return "toml"
	case "json":
		return "json"
	default:
		return "yaml"
	}
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		Long:  "Print the fully resolved configuration after merging defaults, config file, environment and flags.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}

			format, _ := cmd.Flags().GetString("format")
			out := cmd.OutOrStdout()
			switch format {
			case "yaml", "yml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(s.Config); err != nil {
					return fmt.Errorf("encode yaml: %w", err)
				}
				return enc.Close()
			case "toml":
				if err := toml.NewEncoder(out).Encode(s.Config); err != nil {
					return fmt.Errorf("encode toml: %w", err)
				}
				return nil
			default:
				return fmt.Errorf("unsupported format %q: use yaml or toml", format)
			}
		},
	}
	cmd.Flags().String("format", "yaml", "output format: yaml or toml")
	return cmd
}
