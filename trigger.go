package main

import (
	"fmt"
	"strconv"
	"strings"
)

// renderer triggers one synchronous draw pass with the currently
// committed parameters.
type renderer interface {
	RenderOnce(drawSurface)
}

// clearSurface is the trigger's view of the drawing area.
type clearSurface interface {
	drawSurface
	Clear()
}

// renderTrigger is the single path from settled input to a redraw.
type renderTrigger struct {
	bridge  *paramBridge
	surface clearSurface
	engine  renderer
	diag    *DiagLog
}

// parseParams validates the current field contents: depth must parse
// as an integer >= 0 and length as a positive real. A failure names
// every bad field in one report.
func (rt *renderTrigger) parseParams() (RenderParameters, *ValidationError) {
	var p RenderParameters
	var bad []string

	depthStr := strings.TrimSpace(rt.bridge.depth.value)
	depth, err := strconv.Atoi(depthStr)
	if err != nil || depth < 0 {
		bad = append(bad, fmt.Sprintf("depth %q", depthStr))
	} else {
		p.Depth = depth
	}

	lengthStr := strings.TrimSpace(rt.bridge.length.value)
	length, err := strconv.ParseFloat(lengthStr, 64)
	if err != nil || length <= 0 {
		bad = append(bad, fmt.Sprintf("length %q", lengthStr))
	} else {
		p.Length = length
	}

	if len(bad) > 0 {
		return RenderParameters{}, &ValidationError{Fields: bad}
	}
	return p, nil
}

// updateTriangle runs one update cycle: validate, commit, clear,
// draw. Invalid input aborts before anything is touched; the failure
// is logged and the current drawing stays as it is.
func (rt *renderTrigger) updateTriangle() bool {
	params, verr := rt.parseParams()
	if verr != nil {
		rt.diag.Log(verr.Error(), true)
		return false
	}

	rt.bridge.commit(params)
	rt.surface.Clear()
	rt.engine.RenderOnce(rt.surface)
	return true
}
