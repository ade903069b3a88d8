// Package gamepad reads the WASM-4 gamepad registers.
//
// There are 4 one byte registers starting at 0x16, one per player. The
// console owns them so there's nothing here to write.
package gamepad

import (
	"fmt"

	"github.com/jmchacon/wasm4/memory"
)

const (
	kGAMEPADS = uint16(0x0016)
)

// Button is a single gamepad button expressed as its bit in the register.
// Bits 2 and 3 are unused.
type Button uint8

const (
	X     Button = 1 << 0 // X button
	Z     Button = 1 << 1 // Z button
	Left  Button = 1 << 4 // D-pad left
	Right Button = 1 << 5 // D-pad right
	Up    Button = 1 << 6 // D-pad up
	Down  Button = 1 << 7 // D-pad down
)

// Buttons lists every named button.
var Buttons = [...]Button{X, Z, Left, Right, Up, Down}

// Player picks one of the 4 gamepads.
type Player uint8

const (
	P1 Player = iota // Player 1
	P2               // Player 2
	P3               // Player 3
	P4               // Player 4
)

// Players lists every player in register order.
var Players = [...]Player{P1, P2, P3, P4}

// Addr returns the register address for the player. The host runtime uses
// this to feed input in.
func (p Player) Addr() uint16 {
	return kGAMEPADS + uint16(p&0x03)
}

func (p Player) String() string {
	return fmt.Sprintf("P%d", uint8(p)+1)
}

// State returns the raw register for the player.
func State(p Player) uint8 {
	return memory.System().Read(p.Addr())
}

// Pressed returns whether the button is currently held down on the given gamepad.
func (b Button) Pressed(p Player) bool {
	return State(p)&uint8(b) == uint8(b)
}

func (b Button) String() string {
	switch b {
	case X:
		return "X"
	case Z:
		return "Z"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	}
	return fmt.Sprintf("Button(%.2X)", uint8(b))
}
