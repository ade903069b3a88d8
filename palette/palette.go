// Package palette implements the WASM-4 palette registers along with
// the packed colour encoding they use.
//
// The palette is 4 little endian 32 bit words starting at 0x04. Each
// holds a 24 bit 0xRRGGBB value with the top byte unused.
package palette

import (
	"fmt"

	"github.com/jmchacon/wasm4/memory"
)

const (
	kPALETTE = uint16(0x0004)

	kSHIFT_RED   = 16
	kSHIFT_GREEN = 8

	kMASK_RGB = uint32(0x00FFFFFF)
)

// Color is a 24 bit colour. There's no alpha on the console.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// RGB returns the colour for the given channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// FromUint32 unpacks a 0xRRGGBB value. Bits 24-31 are ignored.
func FromUint32(v uint32) Color {
	return Color{
		R: uint8(v >> kSHIFT_RED),
		G: uint8(v >> kSHIFT_GREEN),
		B: uint8(v),
	}
}

// Uint32 packs the colour the way the palette registers hold it.
func (c Color) Uint32() uint32 {
	return (uint32(c.R) << kSHIFT_RED) | (uint32(c.G) << kSHIFT_GREEN) | uint32(c.B)
}

// RGBA implements image/color.Color. Palette colours are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xFFFF
}

func (c Color) String() string {
	return fmt.Sprintf("#%.6x", c.Uint32()&kMASK_RGB)
}

// Slot names one of the 4 palette entries.
type Slot uint8

const (
	C1 Slot = iota // Colour 1
	C2             // Colour 2
	C3             // Colour 3
	C4             // Colour 4
)

// Slots lists every palette entry in register order.
var Slots = [...]Slot{C1, C2, C3, C4}

func (s Slot) addr() uint16 {
	return kPALETTE + 4*uint16(s&0x03)
}

// Load returns the colour currently held in the slot. Every call re-reads
// the register.
func (s Slot) Load() Color {
	return FromUint32(memory.Read32(memory.System(), s.addr()))
}

// Store sets the colour for the slot. It's visible to the next read
// (including the console's own renderer) immediately.
func (s Slot) Store(c Color) {
	memory.Write32(memory.System(), s.addr(), c.Uint32())
}

func (s Slot) String() string {
	return fmt.Sprintf("C%d", uint8(s)+1)
}
