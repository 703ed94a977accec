package main

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config controls the appearance of the generated chart. All values have
// built-in defaults; an optional YAML file overrides individual fields.
type Config struct {
	Figure struct {
		WidthInches  float64 `yaml:"width_inches"`  // Figure width in inches
		HeightInches float64 `yaml:"height_inches"` // Figure height in inches
	} `yaml:"figure"`
	Chart struct {
		Title           string  `yaml:"title"`              // Chart title drawn above the plot area
		XLabel          string  `yaml:"x_label"`            // Label for the horizontal (date) axis
		BarHeight       float64 `yaml:"bar_height"`         // Bar thickness in row units (rows are 1.0 apart)
		MinBarWidthDays float64 `yaml:"min_bar_width_days"` // Width substituted for zero/negative-duration entries
		EdgeColor       string  `yaml:"edge_color"`         // Bar outline color (hex, e.g. "#000000")
	} `yaml:"chart"`
	Axis struct {
		TickIntervalMonths int    `yaml:"tick_interval_months"` // Months between date-axis ticks
		TickFormat         string `yaml:"tick_format"`          // Go reference-time layout for tick labels
		GridColor          string `yaml:"grid_color"`           // Color of the dashed vertical gridlines (hex)
	} `yaml:"axis"`
	Palette []string `yaml:"palette"` // Bar colors (hex), cycled when there are more rows than colors
}

// getDefaultConfig returns the built-in chart settings: a 10x6 inch figure,
// quarterly "Jan 2006" date ticks, and a 20-color palette that repeats once
// the rows outnumber the colors.
func getDefaultConfig() Config {
	var cfg Config
	cfg.Figure.WidthInches = 10
	cfg.Figure.HeightInches = 6
	cfg.Chart.Title = "PhD Timeline Overview"
	cfg.Chart.XLabel = "Date"
	cfg.Chart.BarHeight = 0.5
	cfg.Chart.MinBarWidthDays = 0.1
	cfg.Chart.EdgeColor = "#000000"
	cfg.Axis.TickIntervalMonths = 3
	cfg.Axis.TickFormat = "Jan 2006"
	cfg.Axis.GridColor = "#c8c8c8"
	cfg.Palette = []string{
		"#1f77b4", "#aec7e8", "#ff7f0e", "#ffbb78", "#2ca02c",
		"#98df8a", "#d62728", "#ff9896", "#9467bd", "#c5b0d5",
		"#8c564b", "#c49c94", "#e377c2", "#f7b6d2", "#7f7f7f",
		"#c7c7c7", "#bcbd22", "#dbdb8d", "#17becf", "#9edae5",
	}
	return cfg
}

// loadConfig loads chart settings from a YAML file, or returns the defaults
// when no file is specified. Fields missing from the file keep their
// default values.
func loadConfig(configPath string) (Config, error) {
	config := getDefaultConfig()
	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("error parsing config file: %w", err)
	}

	return config, nil
}

// parseHexColor converts an "#rrggbb" string to an opaque color.
func parseHexColor(s string) (color.NRGBA, error) {
	hexDigits := strings.TrimPrefix(s, "#")
	if len(hexDigits) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hexDigits, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
