package plot

import (
	"fmt"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"gonum.org/v1/gonum/floats"
)

// Dimensions of rendered PNG images, in pixels
const (
	Width  = 1000
	Height = 600

	marginLeft   = 80.0
	marginRight  = 30.0
	marginTop    = 50.0
	marginBottom = 60.0

	ticks = 5
)

// PNG renders one line per series against timesteps and writes the
// image to w as a PNG
func PNG(w io.Writer, title, xLabel, yLabel string, series ...Series) error {
	steps, err := validate(series)
	if err != nil {
		return fmt.Errorf("png: %w", err)
	}

	minY, maxY := bounds(series)

	plotW := Width - marginLeft - marginRight
	plotH := Height - marginTop - marginBottom

	// Pixel coordinates of timestep x and value y
	toX := func(x float64) float64 {
		if steps == 1 {
			return marginLeft + plotW/2
		}
		return marginLeft + (x-1)/float64(steps-1)*plotW
	}
	toY := func(y float64) float64 {
		return marginTop + (maxY-y)/(maxY-minY)*plotH
	}

	dc := gg.NewContext(Width, Height)
	dc.SetColor(color.White)
	dc.Clear()

	// Axes and ticks
	dc.SetColor(color.Black)
	dc.SetLineWidth(1)
	dc.DrawLine(marginLeft, marginTop, marginLeft, marginTop+plotH)
	dc.DrawLine(marginLeft, marginTop+plotH, marginLeft+plotW, marginTop+plotH)
	dc.Stroke()

	for i := 0; i <= ticks; i++ {
		frac := float64(i) / ticks

		x := 1 + frac*float64(steps-1)
		px := toX(x)
		dc.DrawLine(px, marginTop+plotH, px, marginTop+plotH+5)
		dc.DrawStringAnchored(fmt.Sprintf("%.0f", x), px, marginTop+plotH+8, 0.5, 1)

		y := minY + frac*(maxY-minY)
		py := toY(y)
		dc.DrawLine(marginLeft-5, py, marginLeft, py)
		dc.DrawStringAnchored(fmt.Sprintf("%.2f", y), marginLeft-8, py, 1, 0.5)
	}
	dc.Stroke()

	// Labels
	dc.DrawStringAnchored(title, Width/2, marginTop/2, 0.5, 0.5)
	dc.DrawStringAnchored(xLabel, marginLeft+plotW/2, Height-marginBottom/4, 0.5, 0.5)
	dc.Push()
	dc.RotateAbout(gg.Radians(-90), marginLeft/4, marginTop+plotH/2)
	dc.DrawStringAnchored(yLabel, marginLeft/4, marginTop+plotH/2, 0.5, 0.5)
	dc.Pop()

	// Lines
	dc.SetLineWidth(1.5)
	for i, s := range series {
		dc.SetColor(Palette[i%len(Palette)])
		dc.MoveTo(toX(1), toY(s.Values[0]))
		for n := 1; n < len(s.Values); n++ {
			dc.LineTo(toX(float64(n+1)), toY(s.Values[n]))
		}
		dc.Stroke()
	}

	// Legend
	for i, s := range series {
		y := marginTop + 15 + float64(i)*18
		dc.SetColor(Palette[i%len(Palette)])
		dc.DrawLine(marginLeft+15, y, marginLeft+40, y)
		dc.Stroke()
		dc.SetColor(color.Black)
		dc.DrawStringAnchored(s.Label, marginLeft+48, y, 0, 0.5)
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("png: could not encode: %w", err)
	}
	return nil
}

// bounds returns the range of values over all series, widened so that
// it is never empty
func bounds(series []Series) (min, max float64) {
	min, max = floats.Min(series[0].Values), floats.Max(series[0].Values)
	for _, s := range series[1:] {
		if m := floats.Min(s.Values); m < min {
			min = m
		}
		if m := floats.Max(s.Values); m > max {
			max = m
		}
	}

	if max == min {
		min, max = min-1, max+1
	}
	return min, max
}
