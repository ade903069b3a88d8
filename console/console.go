//go:build !(tinygo && wasm)

// Package console is the off-console runtime for the WASM-4 register
// packages. It owns the register region (memory.System), feeds input
// ports into the gamepad and mouse registers, provides the w4 function
// surface and turns the framebuffer into an image at the end of each frame.
//
// Drawing calls are recorded rather than rasterised. Carts which want pixels
// on screen here write the framebuffer directly.
package console

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"

	"github.com/jmchacon/wasm4/drawcolor"
	"github.com/jmchacon/wasm4/gamepad"
	"github.com/jmchacon/wasm4/io"
	"github.com/jmchacon/wasm4/memory"
	"github.com/jmchacon/wasm4/mouse"
	"github.com/jmchacon/wasm4/palette"
	"github.com/jmchacon/wasm4/system"
	"github.com/jmchacon/wasm4/w4"
	"github.com/spf13/afero"
	xdraw "golang.org/x/image/draw"
)

const (
	kFRAMEBUFFER_SIZE = w4.SCREEN_SIZE * w4.SCREEN_SIZE / 4 // 2 bits per pixel.

	kPIXELS_PER_BYTE = 4
	kMASK_PIXEL      = uint8(0x03)
)

// DefaultPalette is the power on palette in C1-C4 order.
var DefaultPalette = [4]palette.Color{
	palette.FromUint32(0xE0F8CF),
	palette.FromUint32(0x86C06C),
	palette.FromUint32(0x306850),
	palette.FromUint32(0x071821),
}

// Def configures a Console.
type Def struct {
	// Gamepads are sampled into GAMEPAD1-4 on every Tick(). Nil entries read as
	// no buttons held.
	Gamepads [4]io.Port8

	// Mouse if non-nil provides MOUSE_X/MOUSE_Y.
	Mouse io.Pointer

	// MouseButtons if non-nil provides MOUSE_BUTTONS.
	MouseButtons io.Port8

	// Disk if non-nil backs diskr/diskw with DiskPath on this filesystem.
	Disk afero.Fs

	// DiskPath is the file holding persistent storage. Required if Disk is set.
	DiskPath string

	// Image if non-nil has each finished frame scaled onto it.
	Image draw.Image

	// FrameDone if non-nil is called at the end of every frame with Image
	// (or the unscaled frame when Image is nil).
	FrameDone func(draw.Image)

	// Logger receives trace output. Defaults to the standard logger.
	Logger *log.Logger

	// Debug if true will emit output from Debug() calls and log tones.
	Debug bool
}

// Console implements the host side of the WASM-4 console.
type Console struct {
	frames       int  // Total number of frames started.
	debug        bool // If true Debug() emits output.
	tickDone     bool // True if TickDone() was called before the current Tick() call.
	ram          memory.Bank
	gamepads     [4]io.Port8
	mouse        io.Pointer
	mouseButtons io.Port8
	disk         afero.Fs
	diskPath     string
	image        draw.Image
	frameDone    func(draw.Image)
	logger       *log.Logger
	frame        *image.NRGBA // Decoded framebuffer from the most recent TickDone().
	calls        []Call       // Function calls made during the current frame.
}

// Init returns a powered on console and installs it as the w4.Host.
func Init(d *Def) (*Console, error) {
	if d == nil {
		d = &Def{}
	}
	if d.Disk != nil && d.DiskPath == "" {
		return nil, errors.New("disk filesystem given without a DiskPath")
	}
	c := &Console{
		debug:        d.Debug,
		tickDone:     true,
		ram:          memory.System(),
		gamepads:     d.Gamepads,
		mouse:        d.Mouse,
		mouseButtons: d.MouseButtons,
		disk:         d.Disk,
		diskPath:     d.DiskPath,
		image:        d.Image,
		frameDone:    d.FrameDone,
		logger:       d.Logger,
		frame:        image.NewNRGBA(image.Rect(0, 0, w4.SCREEN_SIZE, w4.SCREEN_SIZE)),
	}
	if c.logger == nil {
		c.logger = log.Default()
	}
	c.PowerOn()
	w4.Install(c)
	return c, nil
}

// PowerOn clears the whole region and loads the power on palette and draw colours.
func (c *Console) PowerOn() {
	c.ram.PowerOn()
	for i, s := range palette.Slots {
		s.Store(DefaultPalette[i])
	}
	drawcolor.SetRaw(drawcolor.Default)
	c.frames = 0
	c.tickDone = true
	c.calls = nil
}

// Tick starts a frame. Inputs are latched into their registers and the
// framebuffer is cleared unless the cart asked for it to be preserved. The
// cart's update runs between Tick() and TickDone().
func (c *Console) Tick() error {
	if !c.tickDone {
		return errors.New("called Tick() without calling TickDone() at end of last frame")
	}
	c.tickDone = false
	c.frames++
	c.calls = nil

	for i, p := range gamepad.Players {
		v := uint8(0x00)
		if c.gamepads[i] != nil {
			v = c.gamepads[i].Input()
		}
		c.ram.Write(p.Addr(), v)
	}

	x, y := mouse.X(), mouse.Y()
	if c.mouse != nil {
		x, y = c.mouse.Position()
	}
	buttons := uint8(0x00)
	if c.mouseButtons != nil {
		buttons = c.mouseButtons.Input()
	}
	mouse.Write(c.ram, x, y, buttons)

	if !system.Has(system.PreserveFramebuffer) {
		for i := uint16(0); i < kFRAMEBUFFER_SIZE; i++ {
			c.ram.Write(w4.FRAMEBUFFER+i, 0x00)
		}
	}
	return nil
}

// TickDone ends a frame by decoding the framebuffer through the current
// palette and handing it to the frontend.
func (c *Console) TickDone() {
	c.decodeFrame()
	out := draw.Image(c.frame)
	if c.image != nil {
		xdraw.NearestNeighbor.Scale(c.image, c.image.Bounds(), c.frame, c.frame.Bounds(), xdraw.Src, nil)
		out = c.image
	}
	if c.frameDone != nil {
		c.frameDone(out)
	}
	c.tickDone = true
}

// Frame returns the framebuffer as decoded by the most recent TickDone().
func (c *Console) Frame() *image.NRGBA {
	return c.frame
}

func (c *Console) decodeFrame() {
	var colors [4]palette.Color
	for i, s := range palette.Slots {
		colors[i] = s.Load()
	}
	for i := uint16(0); i < kFRAMEBUFFER_SIZE; i++ {
		b := c.ram.Read(w4.FRAMEBUFFER + i)
		for p := 0; p < kPIXELS_PER_BYTE; p++ {
			pix := int(i)*kPIXELS_PER_BYTE + p
			col := colors[(b>>(2*uint(p)))&kMASK_PIXEL]
			c.frame.SetNRGBA(pix%w4.SCREEN_SIZE, pix/w4.SCREEN_SIZE, colorNRGBA(col))
		}
	}
}

// Debug returns a register dump for the current frame.
func (c *Console) Debug() string {
	if !c.debug {
		return ""
	}
	var pads [4]uint8
	for i, p := range gamepad.Players {
		pads[i] = gamepad.State(p)
	}
	var pal [4]palette.Color
	for i, s := range palette.Slots {
		pal[i] = s.Load()
	}
	return fmt.Sprintf("%.6d palette: %v draw: %.4X gamepads: %.2X mouse: %d,%d %.2X calls: %d\n", c.frames, pal, drawcolor.Raw(), pads, mouse.X(), mouse.Y(), mouse.State(), len(c.calls))
}

func colorNRGBA(c palette.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}
