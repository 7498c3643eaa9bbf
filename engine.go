package main

import (
	"image/color"
	"math"
	"math/rand"
	"time"
)

type vec struct {
	X, Y float64
}

// triangle is three corner points in world units.
type triangle [3]vec

// drawSurface is what the engine needs from a drawing area.
type drawSurface interface {
	WorldWidth() float64
	WorldHeight() float64
	FillTriangle(t triangle, c color.RGBA)
	StrokeTriangle(t triangle, c color.RGBA)
}

// Engine owns the stored triangle parameters and draws the fractal.
// It performs no input validation; callers are expected to hand it
// vetted values. The one read-side guard it keeps is falling back to
// the default side length when the stored value is not positive.
type Engine struct {
	depth  int
	length float64
	rng    *rand.Rand
	diag   *DiagLog
}

func NewEngine(diag *DiagLog) *Engine {
	return &Engine{
		depth:  defaultDepth,
		length: defaultLength,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		diag:   diag,
	}
}

func (e *Engine) Depth() int {
	return e.depth
}

func (e *Engine) SetDepth(depth int) {
	e.depth = depth
}

func (e *Engine) Length() float64 {
	if e.length <= 0 {
		return defaultLength
	}
	return e.length
}

// SetLength refuses non-positive values and keeps the stored one;
// the refusal is traced, not surfaced.
func (e *Engine) SetLength(length float64) {
	if length <= 0 {
		e.diag.Log("length must be positive", false)
		return
	}
	e.length = length
}

// RenderOnce draws one full pass of the fractal with the currently
// stored parameters, centered on the surface.
func (e *Engine) RenderOnce(s drawSurface) {
	base := baseTriangle(e.Length())
	centered := centerTriangle(base, s.WorldWidth(), s.WorldHeight())
	e.walk(centered, e.randomColor(), e.Depth(), func(t triangle, c color.RGBA) {
		s.FillTriangle(t, c)
		s.StrokeTriangle(t, c)
	})
}

// walk visits every triangle of the subdivision down to the given
// depth. Siblings at one level share a color so each level reads as
// one band.
func (e *Engine) walk(t triangle, c color.RGBA, depth int, visit func(triangle, color.RGBA)) {
	if depth == 0 {
		return
	}
	visit(t, c)
	lod := e.randomColor()
	for _, sub := range subTriangles(t) {
		e.walk(sub, lod, depth-1, visit)
	}
}

func (e *Engine) randomColor() color.RGBA {
	return color.RGBA{
		R: uint8(e.rng.Intn(256)),
		G: uint8(e.rng.Intn(256)),
		B: uint8(e.rng.Intn(256)),
		A: 255,
	}
}

// baseTriangle returns the corners of an equilateral triangle with
// the given side length: bottom-left, bottom-right, top.
func baseTriangle(length float64) triangle {
	height := length * math.Sqrt(3) * 0.5
	return triangle{
		{0, height},
		{length, height},
		{length * 0.5, 0},
	}
}

func subTriangles(t triangle) [3]triangle {
	a, b, c := t[0], t[1], t[2]
	ab := midpoint(a, b)
	ac := midpoint(a, c)
	bc := midpoint(b, c)

	return [3]triangle{
		{a, ab, ac},
		{ab, b, bc},
		{ac, bc, c},
	}
}

func midpoint(a, b vec) vec {
	return vec{(a.X + b.X) * 0.5, (a.Y + b.Y) * 0.5}
}

// centerTriangle shifts the triangle so its bounding box is centered
// in a w x h area.
func centerTriangle(t triangle, w, h float64) triangle {
	minX := math.Min(t[0].X, math.Min(t[1].X, t[2].X))
	maxX := math.Max(t[0].X, math.Max(t[1].X, t[2].X))
	minY := math.Min(t[0].Y, math.Min(t[1].Y, t[2].Y))
	maxY := math.Max(t[0].Y, math.Max(t[1].Y, t[2].Y))

	offsetX := w*0.5 - (minX+maxX)*0.5
	offsetY := h*0.5 - (minY+maxY)*0.5

	return triangle{
		{t[0].X + offsetX, t[0].Y + offsetY},
		{t[1].X + offsetX, t[1].Y + offsetY},
		{t[2].X + offsetX, t[2].Y + offsetY},
	}
}
