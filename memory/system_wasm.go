//go:build tinygo && wasm

package memory

import (
	"runtime/volatile"
	"unsafe"
)

// linear maps the bank directly onto wasm linear memory. Addresses
// 0x0000-0x0003 are reserved by the console and must never be touched
// (address 0 is a nil pointer to the compiler).
type linear struct{}

var system = linear{}

// System returns the process wide register region. On the console this is the
// linear memory itself so every access is a volatile load/store at the absolute
// address.
//
// Nothing here locks. The console model is a single writer per frame: the host
// updates inputs, then the cart runs to completion. Callers must not touch the
// region from other goroutines while a frame is in progress.
func System() Bank {
	return system
}

func (linear) Read(addr uint16) uint8 {
	return volatile.LoadUint8((*uint8)(unsafe.Pointer(uintptr(addr))))
}

func (linear) Write(addr uint16, val uint8) {
	volatile.StoreUint8((*uint8)(unsafe.Pointer(uintptr(addr))), val)
}

// PowerOn is a no-op. The console owns power on state.
func (linear) PowerOn() {}
