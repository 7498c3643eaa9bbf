package main

type Mode int

const (
	ModeInitializing Mode = iota
	ModeReady
	ModeFailed
)

// Role names one of the interactive regions the app cannot run without.
type Role int

const (
	RoleOutput Role = iota
	RoleDepth
	RoleLength
	RoleDraw
	RoleCanvas
)

func (r Role) String() string {
	switch r {
	case RoleOutput:
		return "output"
	case RoleDepth:
		return "depth"
	case RoleLength:
		return "length"
	case RoleDraw:
		return "draw"
	case RoleCanvas:
		return "canvas"
	}
	return "unknown"
}

// requiredRoles is the fixed set checked at startup, in report order.
var requiredRoles = []Role{RoleOutput, RoleDepth, RoleLength, RoleDraw, RoleCanvas}

const (
	defaultDepth      = 5
	defaultLength     = 600.0
	defaultDebounceMs = 250
)

// World units per terminal cell. Cells are twice as tall as they are
// wide, so the two values keep drawn triangles close to equilateral.
const (
	cellWidth  = 8.0
	cellHeight = 16.0
)

const outputRows = 4 // visible tail of the diagnostic area
