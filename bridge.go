package main

import "strconv"

// RenderParameters is one validated parse of the two input fields.
type RenderParameters struct {
	Depth  int
	Length float64
}

// paramStore is what the bridge needs from the render engine.
type paramStore interface {
	Depth() int
	SetDepth(int)
	Length() float64
	SetLength(float64)
}

// paramBridge moves the depth/length pair between the input fields
// and the engine's stored state.
type paramBridge struct {
	store  paramStore
	depth  *numberField
	length *numberField
}

// readInitial pulls the engine's stored parameters into the input
// fields, so the UI reflects the engine defaults on load.
func (b *paramBridge) readInitial() RenderParameters {
	p := RenderParameters{Depth: b.store.Depth(), Length: b.store.Length()}
	b.depth.SetValue(strconv.Itoa(p.Depth))
	b.length.SetValue(strconv.FormatFloat(p.Length, 'f', -1, 64))
	return p
}

// commit writes the pair into the engine one field at a time. There
// is no rollback: if the length write is refused, the depth write
// stands. Downstream consumers tolerate the partial state.
func (b *paramBridge) commit(p RenderParameters) {
	b.store.SetDepth(p.Depth)
	b.store.SetLength(p.Length)
}
