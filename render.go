package main

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// bar is the layout of one timeline entry: its row on the chart and its
// horizontal extent in the day encoding of the date axis.
type bar struct {
	label string
	row   int // 0 = earliest start
	left  float64
	width float64
	fill  color.Color
}

// rowY maps a row index to its y coordinate. Row 0 (the earliest entry) gets
// the largest y so it renders at the top of the chart.
func rowY(row, total int) float64 {
	return float64(total - 1 - row)
}

// layoutBars sorts the entries by start date and computes one bar per entry.
// The sort is stable, so entries sharing a start date keep their relative
// order from the schedule. Entries whose end does not fall after their start
// (single-day milestones, or malformed ranges with end before start) get the
// configured minimum width so they stay visible as thin marks.
func layoutBars(entries []TimelineEntry, cfg Config) ([]bar, error) {
	if len(cfg.Palette) == 0 {
		return nil, errors.New("palette must contain at least one color")
	}

	palette := make([]color.Color, len(cfg.Palette))
	for i, hex := range cfg.Palette {
		c, err := parseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		palette[i] = c
	}

	sorted := make([]TimelineEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	bars := make([]bar, len(sorted))
	for i, entry := range sorted {
		left := dateToDays(entry.Start)
		width := dateToDays(entry.End) - left
		if width <= 0 {
			width = cfg.Chart.MinBarWidthDays
		}
		bars[i] = bar{
			label: entry.Label,
			row:   i,
			left:  left,
			width: width,
			fill:  palette[i%len(palette)],
		}
	}
	return bars, nil
}

// ganttBars renders one filled, outlined horizontal bar per row.
type ganttBars struct {
	bars   []bar
	height float64 // bar thickness in row units
	edge   draw.LineStyle
}

// Plot implements plot.Plotter.
func (g *ganttBars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, b := range g.bars {
		y := rowY(b.row, len(g.bars))
		rect := []vg.Point{
			{X: trX(b.left), Y: trY(y - g.height/2)},
			{X: trX(b.left + b.width), Y: trY(y - g.height/2)},
			{X: trX(b.left + b.width), Y: trY(y + g.height/2)},
			{X: trX(b.left), Y: trY(y + g.height/2)},
		}

		fill := c.ClipPolygonXY(rect)
		if len(fill) > 0 {
			c.FillPolygon(b.fill, fill)
		}
		outline := c.ClipLinesXY(append(rect, rect[0]))
		c.StrokeLines(g.edge, outline...)
	}
}

// DataRange implements plot.DataRanger, sizing the axes to hold every bar
// plus half a row of headroom above and below.
func (g *ganttBars) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	for _, b := range g.bars {
		xmin = math.Min(xmin, b.left)
		xmax = math.Max(xmax, b.left+b.width)
	}
	return xmin, xmax, -0.5, float64(len(g.bars)) - 0.5
}

// createTimeline draws a Gantt-style chart of the entries and saves it to
// outputPath. The image format follows the path's extension. Layout and
// file-write errors are returned as-is; there is no retry and no partial
// output.
func createTimeline(entries []TimelineEntry, outputPath string, cfg Config) error {
	if len(entries) == 0 {
		return errors.New("no entries to render")
	}

	bars, err := layoutBars(entries, cfg)
	if err != nil {
		return err
	}

	edgeColor, err := parseHexColor(cfg.Chart.EdgeColor)
	if err != nil {
		return err
	}
	gridColor, err := parseHexColor(cfg.Axis.GridColor)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = cfg.Chart.Title
	p.X.Label.Text = cfg.Chart.XLabel

	p.X.Tick.Marker = monthTicker{interval: cfg.Axis.TickIntervalMonths, format: cfg.Axis.TickFormat}
	p.X.Tick.Label.Rotation = math.Pi / 6
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	yTicks := make([]plot.Tick, len(bars))
	for i, b := range bars {
		yTicks[i] = plot.Tick{Value: rowY(b.row, len(bars)), Label: b.label}
	}
	p.Y.Tick.Marker = plot.ConstantTicks(yTicks)

	grid := verticalGrid{line: draw.LineStyle{
		Color:  gridColor,
		Width:  vg.Points(0.5),
		Dashes: []vg.Length{vg.Points(4), vg.Points(4)},
	}}
	p.Add(grid, &ganttBars{
		bars:   bars,
		height: cfg.Chart.BarHeight,
		edge:   draw.LineStyle{Color: edgeColor, Width: vg.Points(1)},
	})

	width := vg.Length(cfg.Figure.WidthInches) * vg.Inch
	height := vg.Length(cfg.Figure.HeightInches) * vg.Inch
	return p.Save(width, height, outputPath)
}
