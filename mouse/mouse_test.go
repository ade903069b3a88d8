package mouse

import (
	"testing"

	"github.com/jmchacon/wasm4/memory"
)

func TestPosition(t *testing.T) {
	memory.System().PowerOn()
	defer memory.System().PowerOn()

	tests := []struct {
		name string
		x    int16
		y    int16
		raw  [4]uint8
	}{
		{
			name: "negative x",
			x:    -5,
			y:    120,
			raw:  [4]uint8{0xFB, 0xFF, 0x78, 0x00},
		},
		{
			name: "origin",
			x:    0,
			y:    0,
			raw:  [4]uint8{0x00, 0x00, 0x00, 0x00},
		},
		{
			name: "extremes",
			x:    -32768,
			y:    32767,
			raw:  [4]uint8{0x00, 0x80, 0xFF, 0x7F},
		},
	}
	for _, test := range tests {
		for i, v := range test.raw {
			memory.System().Write(0x1A+uint16(i), v)
		}
		if got, want := X(), test.x; got != want {
			t.Errorf("%s: bad X. got %d want %d", test.name, got, want)
		}
		if got, want := Y(), test.y; got != want {
			t.Errorf("%s: bad Y. got %d want %d", test.name, got, want)
		}
		if got, want := X(), test.x; got != want {
			t.Errorf("%s: X changed on second read. got %d want %d", test.name, got, want)
		}
	}
}

func TestButtons(t *testing.T) {
	memory.System().PowerOn()
	defer memory.System().PowerOn()

	tests := []struct {
		name    string
		state   uint8
		pressed map[Button]bool
	}{
		{
			name:    "right only",
			state:   0x02,
			pressed: map[Button]bool{Left: false, Right: true, Middle: false},
		},
		{
			name:    "all",
			state:   0x07,
			pressed: map[Button]bool{Left: true, Right: true, Middle: true},
		},
		{
			name:    "reserved bits",
			state:   0xF8,
			pressed: map[Button]bool{Left: false, Right: false, Middle: false},
		},
	}
	for _, test := range tests {
		memory.System().Write(0x1E, test.state)
		for _, b := range Buttons {
			if got, want := b.Pressed(), test.pressed[b]; got != want {
				t.Errorf("%s: %s got %t want %t", test.name, b, got, want)
			}
		}
	}
}

func TestWrite(t *testing.T) {
	memory.System().PowerOn()
	defer memory.System().PowerOn()

	Write(memory.System(), -5, 120, uint8(Middle))
	if got, want := X(), int16(-5); got != want {
		t.Errorf("Bad X. got %d want %d", got, want)
	}
	if got, want := Y(), int16(120); got != want {
		t.Errorf("Bad Y. got %d want %d", got, want)
	}
	if !Middle.Pressed() || Left.Pressed() {
		t.Errorf("Bad buttons: %.2X", State())
	}
}
