// Package memory defines the basic interfaces for working
// with the WASM-4 linear memory map. Registers live at fixed
// addresses in the first 64k so everything here is addressed
// with a uint16. Multi-byte values are little endian as the
// wasm32 target stores them.
package memory

type Bank interface {
	// Read returns the data byte stored at addr.
	Read(addr uint16) uint8
	// Write updates addr with the new value.
	Write(addr uint16, val uint8)
	// PowerOn performs power on reset of the memory. This is implementation specific as to
	// whether it's preset to all zeros or left alone (the real console owns it).
	PowerOn()
}

// Read16 returns the little endian 16 bit value stored at addr.
func Read16(b Bank, addr uint16) uint16 {
	return (uint16(b.Read(addr+1)) << 8) + uint16(b.Read(addr))
}

// Write16 stores val at addr in little endian order.
func Write16(b Bank, addr uint16, val uint16) {
	b.Write(addr, uint8(val&0xFF))
	b.Write(addr+1, uint8((val&0xFF00)>>8))
}

// Read32 returns the little endian 32 bit value stored at addr.
func Read32(b Bank, addr uint16) uint32 {
	return (uint32(Read16(b, addr+2)) << 16) + uint32(Read16(b, addr))
}

// Write32 stores val at addr in little endian order.
func Write32(b Bank, addr uint16, val uint32) {
	Write16(b, addr, uint16(val&0xFFFF))
	Write16(b, addr+2, uint16((val&0xFFFF0000)>>16))
}

// RAM is a flat 64k bank. It's the backing store for the register
// region whenever code isn't running on the console itself.
type RAM struct {
	addr [65536]uint8
}

var _ = Bank(&RAM{})

// Read implements the interface for memory.Bank.
func (r *RAM) Read(addr uint16) uint8 {
	return r.addr[addr]
}

// Write implements the interface for memory.Bank.
func (r *RAM) Write(addr uint16, val uint8) {
	r.addr[addr] = val
}

// PowerOn implements the interface for memory.Bank and zeros all of RAM.
func (r *RAM) PowerOn() {
	for i := range r.addr {
		r.addr[i] = 0x00
	}
}
