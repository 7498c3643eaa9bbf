package main

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMidpoint(t *testing.T) {
	mid := midpoint(vec{0, 0}, vec{10, 20})
	if !almostEqual(mid.X, 5) || !almostEqual(mid.Y, 10) {
		t.Errorf("expected (5,10), got %+v", mid)
	}
}

func TestBaseTriangle(t *testing.T) {
	tri := baseTriangle(100)

	if !almostEqual(tri[0].X, 0) || !almostEqual(tri[0].Y, 86.60254037844387) {
		t.Errorf("bottom-left wrong: %+v", tri[0])
	}
	if !almostEqual(tri[1].X, 100) || !almostEqual(tri[1].Y, 86.60254037844387) {
		t.Errorf("bottom-right wrong: %+v", tri[1])
	}
	if !almostEqual(tri[2].X, 50) || !almostEqual(tri[2].Y, 0) {
		t.Errorf("top wrong: %+v", tri[2])
	}
}

func TestSubTriangles(t *testing.T) {
	parent := triangle{{0, 100}, {100, 100}, {50, 13.397459621556151}}

	subs := subTriangles(parent)

	first := subs[0]
	if !almostEqual(first[0].X, 0) || !almostEqual(first[0].Y, 100) {
		t.Errorf("first corner wrong: %+v", first[0])
	}
	if !almostEqual(first[1].X, 50) || !almostEqual(first[1].Y, 100) {
		t.Errorf("second corner wrong: %+v", first[1])
	}
	if !almostEqual(first[2].X, 25) || !almostEqual(first[2].Y, 56.69872981077808) {
		t.Errorf("third corner wrong: %+v", first[2])
	}
}

func TestCenterTriangle(t *testing.T) {
	tri := centerTriangle(baseTriangle(100), 200, 200)

	minX := math.Min(tri[0].X, math.Min(tri[1].X, tri[2].X))
	maxX := math.Max(tri[0].X, math.Max(tri[1].X, tri[2].X))
	minY := math.Min(tri[0].Y, math.Min(tri[1].Y, tri[2].Y))
	maxY := math.Max(tri[0].Y, math.Max(tri[1].Y, tri[2].Y))

	if !almostEqual((minX+maxX)*0.5, 100) {
		t.Errorf("bounding box should center at x=100, got %g", (minX+maxX)*0.5)
	}
	if !almostEqual((minY+maxY)*0.5, 100) {
		t.Errorf("bounding box should center at y=100, got %g", (minY+maxY)*0.5)
	}
}

func TestEngineDefaults(t *testing.T) {
	eng := NewEngine(NewDiagLog(""))
	if eng.Depth() != defaultDepth {
		t.Errorf("expected default depth %d, got %d", defaultDepth, eng.Depth())
	}
	if eng.Length() != defaultLength {
		t.Errorf("expected default length %g, got %g", defaultLength, eng.Length())
	}
}

func TestEngineSetLength(t *testing.T) {
	eng := NewEngine(NewDiagLog(""))

	eng.SetLength(50)
	if eng.Length() != 50 {
		t.Errorf("expected 50, got %g", eng.Length())
	}

	eng.SetLength(-1)
	if eng.Length() != 50 {
		t.Errorf("negative length should be refused, got %g", eng.Length())
	}

	eng.SetLength(0)
	if eng.Length() != 50 {
		t.Errorf("zero length should be refused, got %g", eng.Length())
	}
}

func TestEngineLengthFallback(t *testing.T) {
	eng := NewEngine(NewDiagLog(""))
	eng.length = -3 // stored state gone bad
	if eng.Length() != defaultLength {
		t.Errorf("non-positive stored length should read as default, got %g", eng.Length())
	}
}

func TestRenderOnce_DepthZeroDrawsNothing(t *testing.T) {
	eng := NewEngine(NewDiagLog(""))
	eng.SetDepth(0)

	surf := NewSurface(40, 20)
	eng.RenderOnce(surf)

	if surf.CellCount() != 0 {
		t.Errorf("depth 0 should draw nothing, got %d cells", surf.CellCount())
	}
}

func TestRenderOnce_DrawsOntoSurface(t *testing.T) {
	eng := NewEngine(NewDiagLog(""))
	eng.SetDepth(3)
	eng.SetLength(300)

	surf := NewSurface(80, 24)
	eng.RenderOnce(surf)

	if surf.CellCount() == 0 {
		t.Error("expected a non-blank surface")
	}
}
