package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the settings that can come from a YAML file. Every key has a
// matching command line flag, which wins when set.
type Config struct {
	// Input
	Format string `yaml:"format"`

	// Output
	Output      string  `yaml:"output"`
	Check       bool    `yaml:"check"`
	PNG         string  `yaml:"png"`
	Imgcat      bool    `yaml:"imgcat"`
	Labels      bool    `yaml:"labels"`
	Scale       float64 `yaml:"scale"`
	Verbose     bool    `yaml:"verbose"`
	Diagnostics string  `yaml:"diagnostics"`
	TraceFacets bool    `yaml:"trace_facets"`
}

// Load reads a YAML config file. Fields not set in the file keep their zero
// values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: read %s", path)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "config: parse %s", path)
	}
	return cfg, nil
}

// Flags holds command line values that override the config file. Booleans
// can only switch a setting on.
type Flags struct {
	Format      string
	Output      string
	Check       bool
	PNG         string
	Imgcat      bool
	Labels      bool
	Scale       float64
	Verbose     bool
	Diagnostics string
	TraceFacets bool
}

// Resolve applies flags over the file settings and fills in defaults.
func (c *Config) Resolve(flags Flags) error {
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.PNG != "" {
		c.PNG = flags.PNG
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Diagnostics != "" {
		c.Diagnostics = flags.Diagnostics
	}
	c.Check = c.Check || flags.Check
	c.Imgcat = c.Imgcat || flags.Imgcat
	c.Labels = c.Labels || flags.Labels
	c.Verbose = c.Verbose || flags.Verbose
	c.TraceFacets = c.TraceFacets || flags.TraceFacets

	if c.Format == "" {
		c.Format = "text"
	}
	if c.Output == "" {
		c.Output = "text"
	}

	switch c.Format {
	case "text", "svg":
	default:
		return errors.Errorf("config: unknown input format %q", c.Format)
	}
	switch c.Output {
	case "text", "json":
	default:
		return errors.Errorf("config: unknown output format %q", c.Output)
	}
	if c.Scale < 0 {
		return errors.Errorf("config: negative scale %v", c.Scale)
	}
	return nil
}
