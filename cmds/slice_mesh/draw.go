package main

import (
	"math"

	"github.com/fogleman/gg"
	"github.com/unixpickle/slice-d/sliced"
)

const drawPadding = 10

// DrawLoops renders loops to a PNG file, scaled so that the larger side of
// their bounding box spans size pixels.
//
// Closed loops are filled with the even-odd rule, so holes are left empty.
// Open loops are stroked in red.
func DrawLoops(path string, loops []*sliced.Loop, size int) error {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, l := range loops {
		for _, p := range l.Points {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if math.IsInf(minX, 1) {
		minX, minY, maxX, maxY = 0, 0, 1, 1
	}
	scale := float64(size) / math.Max(math.Max(maxX-minX, maxY-minY), 1e-8)

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Put the origin at the bottom left.
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	for _, l := range loops {
		if !l.Closed || l.Degenerate() {
			continue
		}
		c.MoveTo(l.Points[0].X, l.Points[0].Y)
		for _, p := range l.Points[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
	}
	c.SetRGB(0.3, 0.5, 0.8)
	c.FillPreserve()
	c.SetRGB(0, 0, 0)
	c.SetLineWidth(2)
	c.Stroke()

	for _, l := range loops {
		if l.Closed {
			continue
		}
		c.MoveTo(l.Points[0].X, l.Points[0].Y)
		for _, p := range l.Points[1:] {
			c.LineTo(p.X, p.Y)
		}
	}
	c.SetRGB(1, 0, 0)
	c.Stroke()

	return c.SavePNG(path)
}
