//go:build !(tinygo && wasm)

package w4

// Host provides the console functions when not running on the console.
// Buffers are only valid for the duration of the call.
type Host interface {
	Blit(sprite []byte, x, y int32, width, height, flags uint32)
	BlitSub(sprite []byte, x, y int32, width, height, srcX, srcY, stride, flags uint32)
	Line(x1, y1, x2, y2 int32)
	HLine(x, y int32, length uint32)
	VLine(x, y int32, length uint32)
	Oval(x, y int32, width, height uint32)
	Rect(x, y int32, width, height uint32)
	Text(s string, x, y int32)
	Tone(frequency, duration, volume, flags uint32)
	DiskR(dst []byte) int
	DiskW(src []byte) int
	Trace(s string)
}

var host Host

// Install sets the Host every function in this package forwards to.
// Passing nil uninstalls it.
func Install(h Host) {
	host = h
}

func installed() Host {
	if host == nil {
		panic("w4: called without an installed Host")
	}
	return host
}

func blit(sprite []byte, x, y int32, width, height, flags uint32) {
	installed().Blit(sprite, x, y, width, height, flags)
}

func blitSub(sprite []byte, x, y int32, width, height, srcX, srcY, stride, flags uint32) {
	installed().BlitSub(sprite, x, y, width, height, srcX, srcY, stride, flags)
}

func line(x1, y1, x2, y2 int32)             { installed().Line(x1, y1, x2, y2) }
func hline(x, y int32, length uint32)       { installed().HLine(x, y, length) }
func vline(x, y int32, length uint32)       { installed().VLine(x, y, length) }
func oval(x, y int32, width, height uint32) { installed().Oval(x, y, width, height) }
func rect(x, y int32, width, height uint32) { installed().Rect(x, y, width, height) }
func text(s string, x, y int32)             { installed().Text(s, x, y) }
func diskr(dst []byte) int                  { return installed().DiskR(dst) }
func diskw(src []byte) int                  { return installed().DiskW(src) }
func trace(s string)                        { installed().Trace(s) }

func tone(frequency, duration, volume, flags uint32) {
	installed().Tone(frequency, duration, volume, flags)
}
