// Package config loads imageview run scenarios from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Step operations understood by the run command.
const (
	OpAllocate  = "allocate"
	OpScale     = "scale"
	OpScaleAt   = "scale_at"
	OpFit       = "fit"
	OpTranslate = "translate"
	OpScrollH   = "scroll_h"
	OpScrollV   = "scroll_v"
	OpDetach    = "detach"
)

var (
	// ErrUnknownOp is returned for a step whose op is not recognized.
	ErrUnknownOp = errors.New("unknown step op")

	// ErrBadSize is returned for a size that is not of the form WxH.
	ErrBadSize = errors.New("size must look like WIDTHxHEIGHT")
)

// Config describes the view to build and the steps to replay on it.
type Config struct {
	// Image is a path to an image file whose dimensions are probed.
	Image string `yaml:"image"`
	// ImageSize is a WxH placeholder used when no image file is given.
	ImageSize string `yaml:"image_size"`

	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Scale starts the view in fixed mode; zero means fit to window.
	Scale         float64 `yaml:"scale"`
	StepIncrement float64 `yaml:"step_increment"`

	Steps []Step `yaml:"steps"`
}

// Step is one host event replayed against the view.
type Step struct {
	Op     string  `yaml:"op"`
	Width  int     `yaml:"width,omitempty"`
	Height int     `yaml:"height,omitempty"`
	Scale  float64 `yaml:"scale,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	DX     float64 `yaml:"dx,omitempty"`
	DY     float64 `yaml:"dy,omitempty"`
	Value  float64 `yaml:"value,omitempty"`
}

// Load reads a scenario file. An empty path yields a zero-value Config.
func Load(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a scenario.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks step ops and the placeholder image size.
func (c *Config) Validate() error {
	for i, s := range c.Steps {
		switch s.Op {
		case OpAllocate, OpScale, OpScaleAt, OpFit, OpTranslate, OpScrollH, OpScrollV, OpDetach:
		default:
			return fmt.Errorf("step %d: %w %q", i, ErrUnknownOp, s.Op)
		}
	}
	if c.ImageSize != "" {
		if _, _, err := ParseSize(c.ImageSize); err != nil {
			return fmt.Errorf("image_size: %w", err)
		}
	}
	return nil
}

// Overrides holds command-line values that take precedence over the file.
type Overrides struct {
	Image     string
	ImageSize string
	Width     int
	Height    int
	Scale     float64
}

// Merge applies flag overrides. Non-zero flags win over config values.
func (c *Config) Merge(o Overrides) {
	if o.Image != "" {
		c.Image = o.Image
	}
	if o.ImageSize != "" {
		c.ImageSize = o.ImageSize
	}
	if o.Width != 0 {
		c.Width = o.Width
	}
	if o.Height != 0 {
		c.Height = o.Height
	}
	if o.Scale != 0 {
		c.Scale = o.Scale
	}
}

// ParseSize parses "800x600" into its width and height.
func ParseSize(s string) (width, height int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%q: %w", s, ErrBadSize)
	}
	width, err = strconv.Atoi(ws)
	if err != nil || width < 0 {
		return 0, 0, fmt.Errorf("%q: %w", s, ErrBadSize)
	}
	height, err = strconv.Atoi(hs)
	if err != nil || height < 0 {
		return 0, 0, fmt.Errorf("%q: %w", s, ErrBadSize)
	}
	return width, height, nil
}
