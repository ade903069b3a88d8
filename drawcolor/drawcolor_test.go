package drawcolor

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"
	"github.com/jmchacon/wasm4/memory"
	"github.com/jmchacon/wasm4/palette"
)

func init() {
	// Ref only has unexported fields.
	deep.CompareUnexportedFields = true
}

func loadAll() []Ref {
	var out []Ref
	for _, s := range Slots {
		out = append(out, s.Load())
	}
	return out
}

func TestDefault(t *testing.T) {
	memory.System().PowerOn()
	defer memory.System().PowerOn()

	SetRaw(Default)
	want := []Ref{Palette(palette.C3), Transparent, Palette(palette.C2), Palette(palette.C1)}
	if diff := deep.Equal(loadAll(), want); diff != nil {
		t.Errorf("Bad decode of default register: %v", diff)
	}
}

func TestIsolation(t *testing.T) {
	memory.System().PowerOn()
	defer memory.System().PowerOn()

	tests := []struct {
		name  string
		start uint16
	}{
		{
			name:  "from zero",
			start: 0x0000,
		},
		{
			name:  "from default",
			start: Default,
		},
		{
			name:  "from all C4",
			start: 0x4444,
		},
	}
	for _, test := range tests {
		SetRaw(test.start)
		C1.Store(Palette(palette.C2))
		C2.Store(Transparent)
		C3.Store(Palette(palette.C4))
		C4.Store(Transparent)
		want := []Ref{Palette(palette.C2), Transparent, Palette(palette.C4), Transparent}
		if diff := deep.Equal(loadAll(), want); diff != nil {
			t.Errorf("%s: bad values after stores: %v\nraw: %.4X", test.name, diff, Raw())
		}
		if got, want := Raw(), uint16(0x0402); got != want {
			t.Errorf("%s: bad raw register. got %.4X want %.4X", test.name, got, want)
		}
	}
}

func TestEveryCombination(t *testing.T) {
	memory.System().PowerOn()
	defer memory.System().PowerOn()

	refs := []Ref{Transparent, Palette(palette.C1), Palette(palette.C2), Palette(palette.C3), Palette(palette.C4)}
	for _, s := range Slots {
		for _, r := range refs {
			// Fill the other slots with something distinct from r each time.
			SetRaw(0x4321)
			before := loadAll()
			s.Store(r)
			after := loadAll()
			for _, o := range Slots {
				want := before[o]
				if o == s {
					want = r
				}
				if got := after[o]; got != want {
					t.Fatalf("Store of %v into %s: %s is %v want %v\nstate: %s", r, s, o, got, want, spew.Sdump(after))
				}
			}
		}
	}
}

func TestNibbleEncoding(t *testing.T) {
	memory.System().PowerOn()
	defer memory.System().PowerOn()

	SetRaw(0xFFFF)
	C3.Store(Transparent)
	if got, want := Raw()&0x0F00, uint16(0x0000); got != want {
		t.Errorf("Transparent in C3 should clear bits 8-11. got %.4X want %.4X", got, want)
	}
	if got, want := Raw(), uint16(0xF0FF); got != want {
		t.Errorf("Other bits disturbed. got %.4X want %.4X", got, want)
	}

	SetRaw(0x0000)
	C1.Store(Palette(palette.C1))
	if got, want := Raw()&0x000F, uint16(0x0001); got != want {
		t.Errorf("Palette C1 in C1 should set bits 0-3 to 0001. got %.4X want %.4X", got, want)
	}

	// Check the register sits at 0x14 in little endian order.
	SetRaw(0x0000)
	C4.Store(Palette(palette.C3))
	if got, want := memory.System().Read(0x15), uint8(0x30); got != want {
		t.Errorf("Bad high byte at 0x15. got %.2X want %.2X", got, want)
	}
	if got, want := memory.System().Read(0x14), uint8(0x00); got != want {
		t.Errorf("Bad low byte at 0x14. got %.2X want %.2X", got, want)
	}
}

func TestIdempotentLoad(t *testing.T) {
	memory.System().PowerOn()
	defer memory.System().PowerOn()

	SetRaw(Default)
	first := loadAll()
	if diff := deep.Equal(loadAll(), first); diff != nil {
		t.Errorf("Repeated loads differ: %v", diff)
	}
	if got, want := Raw(), Default; got != want {
		t.Errorf("Load changed the register. got %.4X want %.4X", got, want)
	}
}

func TestInvalidNibble(t *testing.T) {
	memory.System().PowerOn()
	defer memory.System().PowerOn()

	for v := uint16(0x5); v <= 0xF; v++ {
		for _, s := range Slots {
			SetRaw(v << (4 * uint16(s)))
			func() {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("%s: no panic for nibble %.1X", s, v)
					}
				}()
				s.Load()
			}()
		}
	}
}

func TestRef(t *testing.T) {
	if _, ok := Transparent.Slot(); ok {
		t.Error("Transparent reports a palette slot")
	}
	var zero Ref
	if zero != Transparent {
		t.Error("Zero Ref isn't Transparent")
	}
	for _, p := range palette.Slots {
		got, ok := Palette(p).Slot()
		if !ok || got != p {
			t.Errorf("Palette(%s).Slot() = %s, %t", p, got, ok)
		}
	}
}
