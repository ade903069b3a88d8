// Package w4 is the WASM-4 function surface: drawing, sound, storage
// and tracing. None of these are implemented here. On the console they're
// imported from the host environment; anywhere else they're forwarded to
// whatever Host has been installed (see package console).
//
// Drawing functions use the DRAW_COLORS register (package drawcolor) to
// pick palette entries. Return values are passed back exactly as the
// host reports them.
package w4

import "fmt"

const (
	SCREEN_SIZE = 160 // Width and height of the screen in pixels.
	FRAMEBUFFER = uint16(0x00A0)
	DISK_SIZE   = 1024 // Maximum persistent storage in bytes.
)

// Blit flags.
const (
	BLIT_1BPP   = uint32(0)
	BLIT_2BPP   = uint32(1)
	BLIT_FLIP_X = uint32(2)
	BLIT_FLIP_Y = uint32(4)
	BLIT_ROTATE = uint32(8)
)

// Tone flags. Channel, duty cycle mode and pan are OR'd together.
const (
	TONE_PULSE1    = uint32(0)
	TONE_PULSE2    = uint32(1)
	TONE_TRIANGLE  = uint32(2)
	TONE_NOISE     = uint32(3)
	TONE_MODE1     = uint32(0)
	TONE_MODE2     = uint32(4)
	TONE_MODE3     = uint32(8)
	TONE_MODE4     = uint32(12)
	TONE_PAN_LEFT  = uint32(16)
	TONE_PAN_RIGHT = uint32(32)
	TONE_NOTE_MODE = uint32(64)
)

// Blit copies a sprite to the framebuffer. DRAW_COLORS maps sprite pixel
// values to palette entries.
func Blit(sprite []byte, x, y int32, width, height, flags uint32) {
	blit(sprite, x, y, width, height, flags)
}

// BlitSub copies a width x height region at (srcX, srcY) of a sprite that is
// stride pixels wide.
func BlitSub(sprite []byte, x, y int32, width, height, srcX, srcY, stride, flags uint32) {
	blitSub(sprite, x, y, width, height, srcX, srcY, stride, flags)
}

// Line draws a line between two points with DRAW_COLOR_1.
func Line(x1, y1, x2, y2 int32) {
	line(x1, y1, x2, y2)
}

// HLine draws a horizontal line with DRAW_COLOR_1.
func HLine(x, y int32, length uint32) {
	hline(x, y, length)
}

// VLine draws a vertical line with DRAW_COLOR_1.
func VLine(x, y int32, length uint32) {
	vline(x, y, length)
}

// Oval draws an oval. DRAW_COLOR_1 fills and DRAW_COLOR_2 outlines.
func Oval(x, y int32, width, height uint32) {
	oval(x, y, width, height)
}

// Rect draws a rectangle. DRAW_COLOR_1 fills and DRAW_COLOR_2 outlines.
func Rect(x, y int32, width, height uint32) {
	rect(x, y, width, height)
}

// Text draws s with the built in font. DRAW_COLOR_1 is the text and
// DRAW_COLOR_2 the background.
func Text(s string, x, y int32) {
	text(s, x, y)
}

// Tone plays a sound. See the TONE_* flags.
func Tone(frequency, duration, volume, flags uint32) {
	tone(frequency, duration, volume, flags)
}

// DiskR reads persistent storage into dst and returns the bytes read.
func DiskR(dst []byte) int {
	return diskr(dst)
}

// DiskW writes src to persistent storage and returns the bytes written.
func DiskW(src []byte) int {
	return diskw(src)
}

// Trace writes a line to the debug console.
func Trace(s string) {
	trace(s)
}

// Tracef formats and traces a line.
func Tracef(format string, args ...interface{}) {
	trace(fmt.Sprintf(format, args...))
}
