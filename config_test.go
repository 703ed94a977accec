package main

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDefaultConfig(t *testing.T) {
	cfg := getDefaultConfig()

	assert.Equal(t, 10.0, cfg.Figure.WidthInches)
	assert.Equal(t, 6.0, cfg.Figure.HeightInches)
	assert.Equal(t, "PhD Timeline Overview", cfg.Chart.Title)
	assert.Equal(t, "Date", cfg.Chart.XLabel)
	assert.Equal(t, 0.1, cfg.Chart.MinBarWidthDays)
	assert.Equal(t, 3, cfg.Axis.TickIntervalMonths)
	assert.Equal(t, "Jan 2006", cfg.Axis.TickFormat)
	assert.Len(t, cfg.Palette, 20)
}

func TestLoadConfigEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := loadConfig("")

	require.NoError(t, err)
	assert.Equal(t, getDefaultConfig(), cfg)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigOverridesSubsetOfFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yaml")
	contents := "chart:\n  title: Sabbatical plan\naxis:\n  tick_interval_months: 6\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "Sabbatical plan", cfg.Chart.Title)
	assert.Equal(t, 6, cfg.Axis.TickIntervalMonths)
	// Fields the file does not mention keep their defaults.
	assert.Equal(t, 10.0, cfg.Figure.WidthInches)
	assert.Len(t, cfg.Palette, 20)
}

func TestLoadConfigRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chart: [unbalanced"), 0644))

	_, err := loadConfig(path)
	assert.Error(t, err)
}

func TestParseHexColor(t *testing.T) {
	c, err := parseHexColor("#1f77b4")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}, c)

	_, err = parseHexColor("#12345")
	assert.Error(t, err)

	_, err = parseHexColor("#zzzzzz")
	assert.Error(t, err)
}
