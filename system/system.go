// Package system handles the WASM-4 SYSTEM_FLAGS and NETPLAY registers.
package system

import (
	"github.com/jmchacon/wasm4/gamepad"
	"github.com/jmchacon/wasm4/memory"
)

const (
	kSYSTEM_FLAGS = uint16(0x001F)
	kNETPLAY      = uint16(0x0020)

	kMASK_NETPLAY_PLAYER = uint8(0x03)
	kMASK_NETPLAY_ACTIVE = uint8(0x04)
)

// Flags are the bits in SYSTEM_FLAGS.
type Flags uint8

const (
	// PreserveFramebuffer stops the console clearing the framebuffer between frames.
	PreserveFramebuffer Flags = 1 << 0
	// HideGamepadOverlay hides the on screen gamepad on touch devices.
	HideGamepadOverlay Flags = 1 << 1
)

// Has returns true if all of f are set.
func Has(f Flags) bool {
	return Flags(memory.System().Read(kSYSTEM_FLAGS))&f == f
}

// Set turns on f leaving every other flag alone.
func Set(f Flags) {
	b := memory.System()
	b.Write(kSYSTEM_FLAGS, b.Read(kSYSTEM_FLAGS)|uint8(f))
}

// Clear turns off f leaving every other flag alone.
func Clear(f Flags) {
	b := memory.System()
	b.Write(kSYSTEM_FLAGS, b.Read(kSYSTEM_FLAGS)&^uint8(f))
}

// Netplay returns the local player and whether a netplay session is running.
// When inactive the player is always P1.
func Netplay() (gamepad.Player, bool) {
	v := memory.System().Read(kNETPLAY)
	if v&kMASK_NETPLAY_ACTIVE == 0 {
		return gamepad.P1, false
	}
	return gamepad.Player(v & kMASK_NETPLAY_PLAYER), true
}
