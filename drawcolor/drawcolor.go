// Package drawcolor implements the WASM-4 DRAW_COLORS register.
//
// The register is a single 16 bit word at 0x14 holding 4 nibbles. Nibble n
// (bits 4n..4n+3) controls draw colour n: 0 is transparent and 1-4 select
// palette entry 1-4. The drawing functions consult these to pick the palette
// entry for each colour they use.
package drawcolor

import (
	"fmt"

	"github.com/jmchacon/wasm4/memory"
	"github.com/jmchacon/wasm4/palette"
)

const (
	kDRAW_COLORS = uint16(0x0014)

	kMASK_NIBBLE = uint16(0x000F)

	kNIBBLE_TRANSPARENT = uint16(0x0000)
	kNIBBLE_MAX         = uint16(0x0004) // Largest valid nibble (palette C4).

	// Default is the power on value of the register.
	Default = uint16(0x1203)
)

// Ref is the contents of a draw colour: either transparent or a palette entry.
// The zero value is Transparent.
type Ref struct {
	slot palette.Slot
	set  bool
}

// Transparent leaves pixels drawn with this colour untouched.
var Transparent = Ref{}

// Palette returns a reference to the given palette entry.
func Palette(s palette.Slot) Ref {
	return Ref{slot: s, set: true}
}

// Slot returns the referenced palette entry. ok is false for Transparent.
func (r Ref) Slot() (s palette.Slot, ok bool) {
	return r.slot, r.set
}

func (r Ref) nibble() uint16 {
	if !r.set {
		return kNIBBLE_TRANSPARENT
	}
	return uint16(r.slot&0x03) + 1
}

func (r Ref) String() string {
	if !r.set {
		return "transparent"
	}
	return r.slot.String()
}

// Slot names one of the 4 draw colours.
type Slot uint8

const (
	C1 Slot = iota // Draw colour 1 (bits 0-3)
	C2             // Draw colour 2 (bits 4-7)
	C3             // Draw colour 3 (bits 8-11)
	C4             // Draw colour 4 (bits 12-15)
)

// Slots lists every draw colour in register order.
var Slots = [...]Slot{C1, C2, C3, C4}

func (s Slot) offset() uint16 {
	return 4 * uint16(s&0x03)
}

// Load returns the current value of the draw colour.
//
// A nibble of 5-15 can't be produced by Store so finding one means something
// else has scribbled on the register. There's no sane value to return in that
// case so it panics.
func (s Slot) Load() Ref {
	off := s.offset()
	v := (Raw() & (kMASK_NIBBLE << off)) >> off
	switch {
	case v == kNIBBLE_TRANSPARENT:
		return Transparent
	case v <= kNIBBLE_MAX:
		return Palette(palette.Slot(v - 1))
	}
	panic(fmt.Sprintf("drawcolor: invalid nibble %.1X for %s in DRAW_COLORS %.4X", v, s, Raw()))
}

// Store sets the draw colour. The other 3 nibbles are preserved exactly.
// This is a read-modify-write of the shared word so it must not race with
// another writer (see memory.System).
func (s Slot) Store(r Ref) {
	off := s.offset()
	v := Raw() &^ (kMASK_NIBBLE << off)
	v |= r.nibble() << off
	SetRaw(v)
}

func (s Slot) String() string {
	return fmt.Sprintf("DRAW_COLOR_%d", uint8(s)+1)
}

// Raw returns the whole register.
func Raw() uint16 {
	return memory.Read16(memory.System(), kDRAW_COLORS)
}

// SetRaw overwrites the whole register. Callers are responsible for only
// writing valid nibbles.
func SetRaw(v uint16) {
	memory.Write16(memory.System(), kDRAW_COLORS, v)
}
