//go:build tinygo && wasm

package w4

import "unsafe"

//go:wasmimport env blit
func extBlit(sprite *byte, x, y int32, width, height, flags uint32)

//go:wasmimport env blitSub
func extBlitSub(sprite *byte, x, y int32, width, height, srcX, srcY, stride, flags uint32)

//go:wasmimport env line
func extLine(x1, y1, x2, y2 int32)

//go:wasmimport env hline
func extHLine(x, y int32, length uint32)

//go:wasmimport env vline
func extVLine(x, y int32, length uint32)

//go:wasmimport env oval
func extOval(x, y int32, width, height uint32)

//go:wasmimport env rect
func extRect(x, y int32, width, height uint32)

//go:wasmimport env textUtf8
func extText(str *byte, length uint32, x, y int32)

//go:wasmimport env tone
func extTone(frequency, duration, volume, flags uint32)

//go:wasmimport env diskr
func extDiskR(dest *byte, size uint32) uint32

//go:wasmimport env diskw
func extDiskW(src *byte, size uint32) uint32

//go:wasmimport env traceUtf8
func extTrace(str *byte, length uint32)

func blit(sprite []byte, x, y int32, width, height, flags uint32) {
	extBlit(unsafe.SliceData(sprite), x, y, width, height, flags)
}

func blitSub(sprite []byte, x, y int32, width, height, srcX, srcY, stride, flags uint32) {
	extBlitSub(unsafe.SliceData(sprite), x, y, width, height, srcX, srcY, stride, flags)
}

func line(x1, y1, x2, y2 int32)             { extLine(x1, y1, x2, y2) }
func hline(x, y int32, length uint32)       { extHLine(x, y, length) }
func vline(x, y int32, length uint32)       { extVLine(x, y, length) }
func oval(x, y int32, width, height uint32) { extOval(x, y, width, height) }
func rect(x, y int32, width, height uint32) { extRect(x, y, width, height) }

func tone(frequency, duration, volume, flags uint32) {
	extTone(frequency, duration, volume, flags)
}

func text(s string, x, y int32) {
	extText(unsafe.StringData(s), uint32(len(s)), x, y)
}

func diskr(dst []byte) int {
	return int(extDiskR(unsafe.SliceData(dst), uint32(len(dst))))
}

func diskw(src []byte) int {
	return int(extDiskW(unsafe.SliceData(src), uint32(len(src))))
}

func trace(s string) {
	extTrace(unsafe.StringData(s), uint32(len(s)))
}
