package main

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// exportText writes the current surface as plain text, one row per
// line, exactly as it appears without styling.
func exportText(filename string, surf *Surface) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	for _, line := range surf.PlainLines() {
		fmt.Fprintln(file, line)
	}
	return nil
}

// exportPNG redraws the committed parameters at pixel scale instead
// of rasterizing the cell surface, so the image keeps full detail.
// A caption with the parameters goes in the bottom-left corner.
func exportPNG(filename string, eng *Engine) error {
	side := eng.Length()
	padding := 40.0
	imageWidth := int(side + 2*padding)
	imageHeight := int(side*math.Sqrt(3)*0.5 + 2*padding)

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(color.White)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	base := baseTriangle(side)
	centered := centerTriangle(base, float64(imageWidth), float64(imageHeight))
	eng.walk(centered, eng.randomColor(), eng.Depth(), func(t triangle, c color.RGBA) {
		dc.MoveTo(t[0].X, t[0].Y)
		dc.LineTo(t[1].X, t[1].Y)
		dc.LineTo(t[2].X, t[2].Y)
		dc.ClosePath()
		dc.SetColor(c)
		dc.FillPreserve()
		dc.SetColor(color.Black)
		dc.SetLineWidth(1.0)
		dc.Stroke()
	})

	dc.SetColor(color.Black)
	dc.DrawString(fmt.Sprintf("depth=%d length=%g", eng.Depth(), eng.Length()), 4, float64(imageHeight)-6)

	return dc.SavePNG(filename)
}
