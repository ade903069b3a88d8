//go:build !(tinygo && wasm)

package memory

var system = &RAM{}

// System returns the process wide register region. Off the console this is a
// plain RAM bank which the host runtime (see package console) owns and feeds.
//
// Nothing here locks. The console model is a single writer per frame: the host
// updates inputs, then the cart runs to completion. Callers must not touch the
// region from other goroutines while a frame is in progress.
func System() Bank {
	return system
}
