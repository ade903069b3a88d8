// Package mouse reads the WASM-4 mouse registers.
package mouse

import (
	"fmt"

	"github.com/jmchacon/wasm4/memory"
)

const (
	kMOUSE_X       = uint16(0x001A)
	kMOUSE_Y       = uint16(0x001C)
	kMOUSE_BUTTONS = uint16(0x001E)
)

// Button is a mouse button expressed as its bit in MOUSE_BUTTONS.
// Bits 3-7 are unused.
type Button uint8

const (
	Left   Button = 1 << 0
	Right  Button = 1 << 1
	Middle Button = 1 << 2
)

// Buttons lists every mouse button.
var Buttons = [...]Button{Left, Right, Middle}

// X returns the current X position. This can be negative or past the screen edge.
func X() int16 {
	return int16(memory.Read16(memory.System(), kMOUSE_X))
}

// Y returns the current Y position. This can be negative or past the screen edge.
func Y() int16 {
	return int16(memory.Read16(memory.System(), kMOUSE_Y))
}

// State returns the raw MOUSE_BUTTONS register.
func State() uint8 {
	return memory.System().Read(kMOUSE_BUTTONS)
}

// Pressed returns whether the button is currently held down.
func (b Button) Pressed() bool {
	return State()&uint8(b) == uint8(b)
}

func (b Button) String() string {
	switch b {
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	case Middle:
		return "MIDDLE"
	}
	return fmt.Sprintf("Button(%.2X)", uint8(b))
}

// Write stores a full mouse snapshot. Only the console side (see package
// console) should call this; carts treat the registers as read only.
func Write(b memory.Bank, x, y int16, buttons uint8) {
	memory.Write16(b, kMOUSE_X, uint16(x))
	memory.Write16(b, kMOUSE_Y, uint16(y))
	b.Write(kMOUSE_BUTTONS, buttons)
}
