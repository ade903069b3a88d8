package main

import (
	"github.com/jmchacon/wasm4/drawcolor"
	"github.com/jmchacon/wasm4/gamepad"
	"github.com/jmchacon/wasm4/memory"
	"github.com/jmchacon/wasm4/mouse"
	"github.com/jmchacon/wasm4/palette"
	"github.com/jmchacon/wasm4/w4"
)

const (
	kSWATCH_TOP    = 140 // First row of the palette swatches.
	kBYTES_PER_ROW = w4.SCREEN_SIZE / 4
	kSAVE_SIZE     = 4 * 3 // 4 colours of 3 bytes.
)

// viewer is the cart run by regview. It only talks to the console through the
// register packages and w4 like a real cart would.
type viewer struct {
	pads    [4]uint8
	x, y    int16
	buttons uint8
}

func newViewer() *viewer {
	v := &viewer{}
	buf := make([]byte, kSAVE_SIZE)
	if w4.DiskR(buf) == kSAVE_SIZE {
		for i, s := range palette.Slots {
			s.Store(palette.RGB(buf[3*i], buf[3*i+1], buf[3*i+2]))
		}
		w4.Trace("palette restored from disk")
	}
	return v
}

func (v *viewer) update() {
	for i, p := range gamepad.Players {
		st := gamepad.State(p)
		if st == v.pads[i] {
			continue
		}
		for _, b := range gamepad.Buttons {
			if b.Pressed(p) && v.pads[i]&uint8(b) == 0 {
				w4.Tracef("%s %s down (%.2X)", p, b, st)
				v.pressed(b)
			}
		}
		v.pads[i] = st
	}

	if x, y, st := mouse.X(), mouse.Y(), mouse.State(); x != v.x || y != v.y || st != v.buttons {
		if st != v.buttons {
			for _, b := range mouse.Buttons {
				if b.Pressed() {
					w4.Tracef("mouse %s at %d,%d", b, x, y)
				}
			}
		}
		v.x, v.y, v.buttons = x, y, st
	}

	v.drawSwatches()
	drawcolor.C1.Store(drawcolor.Palette(palette.C4))
	drawcolor.C2.Store(drawcolor.Transparent)
	w4.Text("regview", 4, 4)
}

func (v *viewer) pressed(b gamepad.Button) {
	switch b {
	case gamepad.X:
		// Rotate C1 <- C2 <- C3 <- C4 <- C1.
		first := palette.C1.Load()
		for i := 0; i < len(palette.Slots)-1; i++ {
			palette.Slots[i].Store(palette.Slots[i+1].Load())
		}
		palette.C4.Store(first)
	case gamepad.Z:
		buf := make([]byte, 0, kSAVE_SIZE)
		for _, s := range palette.Slots {
			c := s.Load()
			buf = append(buf, c.R, c.G, c.B)
		}
		w4.Tracef("saved %d bytes", w4.DiskW(buf))
	}
}

// drawSwatches writes the 4 palette entries straight into the framebuffer as
// 40 pixel wide bars along the bottom of the screen.
func (v *viewer) drawSwatches() {
	fb := memory.System()
	for y := kSWATCH_TOP; y < w4.SCREEN_SIZE; y++ {
		for x := 0; x < kBYTES_PER_ROW; x++ {
			i := uint8(x * 4 / kBYTES_PER_ROW)
			fb.Write(w4.FRAMEBUFFER+uint16(y*kBYTES_PER_ROW+x), i|i<<2|i<<4|i<<6)
		}
	}
}
