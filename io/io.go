// Package io defines the basic interfaces for feeding input into
// the console registers. A frontend implements these and hands them
// to the console runtime which samples every port once at the start
// of each frame, so values only need to be stable for that read.
package io

// Port8 defines an 8 bit input port. For gamepads and mouse buttons
// the value is the register bitmask (1 == pressed).
type Port8 interface {
	// Input will return the current value being set on the given input port.
	Input() uint8
}

// PortIn1 defines a single line input.
type PortIn1 interface {
	// Input returns the current state of the line.
	Input() bool
}

// Pointer defines a positional input such as a mouse.
type Pointer interface {
	// Position returns the current position in screen pixels. This may be
	// outside the screen.
	Position() (x, y int16)
}

// Buttons packs a set of single line inputs into a Port8. Entry n drives bit n
// and nil entries always read as released.
type Buttons [8]PortIn1

// Input implements the interface for io.Port8.
func (b *Buttons) Input() uint8 {
	out := uint8(0x00)
	for i, p := range b {
		if p != nil && p.Input() {
			out |= 1 << uint(i)
		}
	}
	return out
}
