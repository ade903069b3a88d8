package system

import (
	"testing"

	"github.com/jmchacon/wasm4/gamepad"
	"github.com/jmchacon/wasm4/memory"
)

func TestFlags(t *testing.T) {
	memory.System().PowerOn()
	defer memory.System().PowerOn()

	// Undefined bits belong to someone else and must survive.
	memory.System().Write(0x1F, 0xF0)
	Set(PreserveFramebuffer)
	if !Has(PreserveFramebuffer) || Has(HideGamepadOverlay) {
		t.Errorf("Bad flags after Set: %.2X", memory.System().Read(0x1F))
	}
	Set(HideGamepadOverlay)
	if !Has(PreserveFramebuffer | HideGamepadOverlay) {
		t.Errorf("Both flags should be set: %.2X", memory.System().Read(0x1F))
	}
	Clear(PreserveFramebuffer)
	if Has(PreserveFramebuffer) || !Has(HideGamepadOverlay) {
		t.Errorf("Bad flags after Clear: %.2X", memory.System().Read(0x1F))
	}
	if got, want := memory.System().Read(0x1F), uint8(0xF2); got != want {
		t.Errorf("Other bits disturbed. got %.2X want %.2X", got, want)
	}
}

func TestNetplay(t *testing.T) {
	memory.System().PowerOn()
	defer memory.System().PowerOn()

	tests := []struct {
		name   string
		val    uint8
		player gamepad.Player
		active bool
	}{
		{
			name:   "inactive",
			val:    0x00,
			player: gamepad.P1,
			active: false,
		},
		{
			name:   "inactive ignores player bits",
			val:    0x03,
			player: gamepad.P1,
			active: false,
		},
		{
			name:   "active P3",
			val:    0x06,
			player: gamepad.P3,
			active: true,
		},
		{
			name:   "active P4",
			val:    0x07,
			player: gamepad.P4,
			active: true,
		},
	}
	for _, test := range tests {
		memory.System().Write(0x20, test.val)
		p, a := Netplay()
		if p != test.player || a != test.active {
			t.Errorf("%s: got %s/%t want %s/%t", test.name, p, a, test.player, test.active)
		}
	}
}
