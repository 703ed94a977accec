package main

import (
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"
)

const secondsPerDay = 86400

// dateToDays converts a date to the numeric encoding used on the horizontal
// axis: fractional days since the Unix epoch. Day-precision UTC dates map to
// exact integers, so bar widths come out directly in days.
func dateToDays(t time.Time) float64 {
	return float64(t.Unix()) / secondsPerDay
}

// daysToDate is the inverse of dateToDays.
func daysToDate(d float64) time.Time {
	return time.Unix(int64(d*secondsPerDay), 0).UTC()
}

// monthTicker places date-axis ticks on month starts at a fixed interval,
// counted from January so e.g. a 3-month interval lands on Jan/Apr/Jul/Oct
// regardless of where the data range begins.
type monthTicker struct {
	interval int    // months between ticks
	format   string // reference-time layout for tick labels
}

// Ticks implements plot.Ticker.
func (mt monthTicker) Ticks(min, max float64) []plot.Tick {
	interval := mt.interval
	if interval <= 0 {
		interval = 1
	}

	start := daysToDate(min)
	first := date(start.Year(), start.Month(), 1)
	for (int(first.Month())-1)%interval != 0 {
		first = first.AddDate(0, -1, 0)
	}

	var ticks []plot.Tick
	for t := first; ; t = t.AddDate(0, interval, 0) {
		v := dateToDays(t)
		if v > max {
			break
		}
		if v < min {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: t.Format(mt.format)})
	}
	return ticks
}

// verticalGrid draws a vertical gridline through every major tick of the
// horizontal axis. It reads the tick positions from the plot at draw time,
// so the gridlines always line up with whatever ticker the axis uses.
type verticalGrid struct {
	line draw.LineStyle
}

// Plot implements plot.Plotter.
func (g verticalGrid) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	yMin, yMax := trY(plt.Y.Min), trY(plt.Y.Max)
	for _, tick := range plt.X.Tick.Marker.Ticks(plt.X.Min, plt.X.Max) {
		if tick.IsMinor() {
			continue
		}
		x := trX(tick.Value)
		if !c.ContainsX(x) {
			continue
		}
		c.StrokeLine2(g.line, x, yMin, x, yMax)
	}
}
